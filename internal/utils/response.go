package utils

import (
	"encoding/json"
	"net/http"

	"USERTODO_BACK-END/internal/dto"
)

// WriteJSONResponse writes a JSON response to the HTTP response writer
func WriteJSONResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// WriteSuccessResponse writes a success envelope. A nil data is left out of the body.
func WriteSuccessResponse(w http.ResponseWriter, status int, message string, data any) {
	WriteJSONResponse(w, status, dto.Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// WriteErrorResponse writes a failure envelope. A nil details is left out of the body.
func WriteErrorResponse(w http.ResponseWriter, status int, message string, details any) {
	WriteJSONResponse(w, status, dto.Response{
		Success: false,
		Message: message,
		Details: details,
	})
}
