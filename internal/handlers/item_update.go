package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/developerom1/Red-Global-Assignment/internal/logger"
	"github.com/developerom1/Red-Global-Assignment/internal/middlewares"
	"github.com/developerom1/Red-Global-Assignment/internal/models"
	"github.com/developerom1/Red-Global-Assignment/internal/services"
)

// ItemUpdater defines the interface for partially updating items.
type ItemUpdater interface {
	Update(ctx context.Context, userID, itemID uuid.UUID, update models.ItemUpdate) (*models.Item, error)
}

// UpdateItemRequest represents the JSON body for a partial item update.
// Absent fields retain their prior value.
// swagger:model UpdateItemRequest
type UpdateItemRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	Status      *string `json:"status"`
}

// NewUpdateItemHandler returns an HTTP handler for partial item updates.
// @Summary Update an item
// @Description Replaces only the supplied fields of an item owned by the authenticated user
// @Tags items
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Item id"
// @Param updateItemRequest body handlers.UpdateItemRequest true "Partial item update"
// @Success 200 {object} handlers.Response "Updated item"
// @Failure 400 {object} handlers.Response "Invalid request body"
// @Failure 401 {object} handlers.Response "Missing or invalid token"
// @Failure 404 {object} handlers.Response "Item not found"
// @Router /items/{id} [put]
func NewUpdateItemHandler(svc ItemUpdater) http.HandlerFunc {
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

		var req UpdateItemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		item, err := svc.Update(r.Context(), userID, itemID, models.ItemUpdate{
			Title:       req.Title,
			Description: req.Description,
			Category:    req.Category,
			Status:      req.Status,
		})
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidInput):
				writeError(w, http.StatusBadRequest, "Title must not be empty")
			case errors.Is(err, services.ErrNotFound):
				writeError(w, http.StatusNotFound, "Item not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeInternalError(w)
			}
			return
		}

		writeSuccess(w, http.StatusOK, "Item updated", item)
	}
}
