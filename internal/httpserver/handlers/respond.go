package handlers

import (
	"encoding/json"
	"net/http"

	"linkden/internal/httpserver/deps"
	"linkden/internal/logger"
)

type errorEnvelope struct {
	Error errorMessage `json:"error"`
}

type errorMessage struct {
	Message string `json:"message"`
}

// devErrorResponse is the 500 body outside production: the error detail is
// included to ease debugging.
type devErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// respondError writes the uniform JSON error envelope used by every 4xx path.
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, errorEnvelope{Error: errorMessage{Message: message}})
}

// respondServerError is the terminal responder for store failures. In
// production the detail is suppressed.
func respondServerError(d deps.Deps, w http.ResponseWriter, err error) {
	d.Logger.Error("store failure", logger.Error(err))
	if d.Production {
		respondError(w, http.StatusInternalServerError, "server error")
		return
	}
	respondJSON(w, http.StatusInternalServerError, devErrorResponse{
		Message: err.Error(),
		Error:   err.Error(),
	})
}
