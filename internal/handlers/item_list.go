package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/developerom1/Red-Global-Assignment/internal/logger"
	"github.com/developerom1/Red-Global-Assignment/internal/middlewares"
	"github.com/developerom1/Red-Global-Assignment/internal/models"
)

// ItemLister defines the interface for listing items.
type ItemLister interface {
	List(ctx context.Context, userID uuid.UUID) ([]models.Item, error)
}

// NewListItemsHandler returns an HTTP handler listing the caller's items.
// @Summary List items
// @Description Returns all items owned by the authenticated user
// @Tags items
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.Response "Items"
// @Failure 401 {object} handlers.Response "Missing or invalid token"
// @Router /items [get]
func NewListItemsHandler(svc ItemLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.UserIDFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "Authorization required")
			return
		}

		items, err := svc.List(r.Context(), userID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeInternalError(w)
			return
		}

		writeSuccess(w, http.StatusOK, "OK", items)
	}
}
