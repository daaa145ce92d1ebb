package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"USERTODO_BACK-END/internal/store"
)

// translate maps driver errors onto the store sentinels. Unknown errors pass through untouched.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return store.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case pgerrcode.ForeignKeyViolation:
		return fmt.Errorf("%w: %s", store.ErrInvalidReference, pgErr.ConstraintName)
	case pgerrcode.NotNullViolation:
		return fmt.Errorf("%w: %s", store.ErrMissingField, pgErr.ColumnName)
	case pgerrcode.InvalidTextRepresentation,
		pgerrcode.StringDataRightTruncationDataException,
		pgerrcode.NumericValueOutOfRange,
		pgerrcode.CheckViolation:
		return fmt.Errorf("%w: %s", store.ErrInvalidInput, pgErr.Message)
	default:
		return err
	}
}
