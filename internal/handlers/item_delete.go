package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/developerom1/Red-Global-Assignment/internal/logger"
	"github.com/developerom1/Red-Global-Assignment/internal/middlewares"
	"github.com/developerom1/Red-Global-Assignment/internal/services"
)

// ItemDeleter defines the interface for deleting items.
type ItemDeleter interface {
	Delete(ctx context.Context, userID, itemID uuid.UUID) error
}

// NewDeleteItemHandler returns an HTTP handler deleting one owned item.
// @Summary Delete an item
// @Description Deletes a single item owned by the authenticated user
// @Tags items
// @Produce json
// @Security BearerAuth
// @Param id path string true "Item id"
// @Success 200 {object} handlers.Response "Item deleted"
// @Failure 401 {object} handlers.Response "Missing or invalid token"
// @Failure 404 {object} handlers.Response "Item not found"
// @Router /items/{id} [delete]
func NewDeleteItemHandler(svc ItemDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.UserIDFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "Authorization required")
			return
		}

		itemID, ok := itemIDFromRequest(r)
		if !ok {
			writeError(w, http.StatusNotFound, "Item not found")
			return
		}

		if err := svc.Delete(r.Context(), userID, itemID); err != nil {
			if errors.Is(err, services.ErrNotFound) {
				writeError(w, http.StatusNotFound, "Item not found")
				return
			}
			logger.Log.Errorw("internal server error", "err", err)
			writeInternalError(w)
			return
		}

		writeSuccess(w, http.StatusOK, "Item deleted", nil)
	}
}
