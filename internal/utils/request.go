package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// MaxRequestBodyBytes caps JSON request bodies.
const MaxRequestBodyBytes = 1 << 20

// DecodeJSONRequest decodes the request body into dst. On failure it writes a 400 envelope
// and returns the error, so callers only need to return.
func DecodeJSONRequest(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, MaxRequestBodyBytes)

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body", describeDecodeError(err))
		return err
	}
	return nil
}

func describeDecodeError(err error) string {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	var maxErr *http.MaxBytesError

	switch {
	case errors.Is(err, io.EOF):
		return "request body is required"
	case errors.Is(err, io.ErrUnexpectedEOF):
		return "request body is truncated"
	case errors.As(err, &syntaxErr):
		return fmt.Sprintf("malformed JSON at offset %d", syntaxErr.Offset)
	case errors.As(err, &typeErr):
		if typeErr.Field != "" {
			return fmt.Sprintf("%s must be of type %s", typeErr.Field, typeErr.Type)
		}
		return fmt.Sprintf("body must be a JSON %s", typeErr.Type)
	case errors.As(err, &maxErr):
		return fmt.Sprintf("request body must not exceed %d bytes", maxErr.Limit)
	default:
		return "request body could not be decoded"
	}
}
