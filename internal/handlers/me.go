package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/developerom1/Red-Global-Assignment/internal/logger"
	"github.com/developerom1/Red-Global-Assignment/internal/middlewares"
	"github.com/developerom1/Red-Global-Assignment/internal/models"
	"github.com/developerom1/Red-Global-Assignment/internal/services"
)

// UserGetter defines the interface that the identity lookup service must implement.
type UserGetter interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*models.User, error)
}

// NewMeHandler returns an HTTP handler for the authenticated user's profile.
// @Summary Current user profile
// @Description Returns the redacted summary of the authenticated user
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.Response "User summary"
// @Failure 401 {object} handlers.Response "Missing or invalid token"
// @Failure 404 {object} handlers.Response "User not found"
// @Router /auth/me [get]
func NewMeHandler(svc UserGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.UserIDFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "Authorization required")
			return
		}

		user, err := svc.GetByID(r.Context(), userID)
		if err != nil {
			if errors.Is(err, services.ErrNotFound) {
				writeError(w, http.StatusNotFound, "User not found")
				return
			}
			logger.Log.Errorw("internal server error", "err", err)
			writeInternalError(w)
			return
		}

		writeSuccess(w, http.StatusOK, "OK", user)
	}
}
