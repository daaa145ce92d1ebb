package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"USERTODO_BACK-END/internal/store"
	"USERTODO_BACK-END/internal/utils"
)

var errInvalidID = errors.New("id must be a positive integer")

// errorWriter maps store errors onto the response envelope. Raw storage errors only reach
// clients when exposeDetails is set.
type errorWriter struct {
	exposeDetails bool
}

func (e errorWriter) storeError(w http.ResponseWriter, r *http.Request, err error, notFound string) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		utils.WriteErrorResponse(w, http.StatusNotFound, notFound, nil)
	case store.IsClientError(err):
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request", err.Error())
	default:
		slog.ErrorContext(r.Context(), "storage failure",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err,
		)
		var details any
		if e.exposeDetails {
			details = err.Error()
		}
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Internal server error", details)
	}
}

// validationError writes the 400 produced by a failed request-shape check.
func validationError(w http.ResponseWriter, err error) {
	var fe utils.FieldErrors
	if errors.As(err, &fe) {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", fe)
		return
	}
	utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", err.Error())
}

// pathID reads the {id} URL parameter. Ids are SERIAL columns, so anything outside the
// positive int32 range cannot exist.
func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 32)
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}
