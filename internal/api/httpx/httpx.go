// Package httpx holds the JSON response helpers and the single place where
// service errors turn into status codes.
package httpx

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/emrekoca/recipebox/internal/apperr"
)

type message struct {
	Message string `json:"message"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteError(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, message{Message: msg})
}

// Error maps a service error onto the wire. Unclassified errors become a
// bare 500; their detail stays in the log.
func Error(w http.ResponseWriter, err error) {
	switch apperr.KindOf(err) {
	case apperr.Validation:
		WriteError(w, http.StatusBadRequest, err.Error())
	case apperr.Conflict:
		WriteError(w, http.StatusConflict, err.Error())
	case apperr.Unauthorized:
		WriteError(w, http.StatusUnauthorized, err.Error())
	case apperr.Forbidden:
		WriteError(w, http.StatusForbidden, err.Error())
	case apperr.NotFound:
		WriteError(w, http.StatusNotFound, err.Error())
	default:
		slog.Error("internal error", "err", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error")
	}
}
