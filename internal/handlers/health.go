package handlers

import (
	"net/http"
	"time"
)

// HealthData is the payload returned by the health endpoint
// swagger:model HealthData
type HealthData struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// NewHealthHandler returns a liveness probe handler.
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} handlers.Response "Service is healthy"
// @Router /health [get]
func NewHealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeSuccess(w, http.StatusOK, "OK", HealthData{
			Status:    "healthy",
			Timestamp: time.Now().UTC(),
		})
	}
}
