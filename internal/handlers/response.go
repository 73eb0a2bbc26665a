package handlers

import (
	"encoding/json"
	"net/http"
)

// Response is the uniform JSON envelope every endpoint returns.
// swagger:model Response
type Response struct {
	// Whether the request succeeded
	Success bool `json:"success"`
	// Human-readable outcome message
	Message string `json:"message"`
	// Optional payload
	Data any `json:"data,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, resp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(resp)
}

func writeSuccess(w http.ResponseWriter, status int, message string, data any) {
	writeJSON(w, status, Response{Success: true, Message: message, Data: data})
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, Response{Success: false, Message: message})
}

// writeInternalError hides internal failure detail behind a generic message.
func writeInternalError(w http.ResponseWriter) {
	writeError(w, http.StatusInternalServerError, "Internal server error")
}
