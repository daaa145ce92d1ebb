package handlers

import (
	"net/http"

	"USERTODO_BACK-END/internal/dto"
	"USERTODO_BACK-END/internal/utils"
)

// Root handles GET /
func Root(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("Hello Next Level Developers!"))
}

// NotFound answers every request that matched no route, including known paths hit with an
// unsupported method.
func NotFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSONResponse(w, http.StatusNotFound, dto.Response{
		Success: false,
		Message: "Route not found",
		Path:    r.URL.Path,
	})
}
