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

// ItemCreator defines the interface for creating items.
type ItemCreator interface {
	Create(ctx context.Context, userID uuid.UUID, title, description, category string) (*models.Item, error)
}

// CreateItemRequest represents the JSON body for item creation
// swagger:model CreateItemRequest
type CreateItemRequest struct {
	// Title
	// required: true
	// default: Buy milk
	Title string `json:"title"`

	// Description
	// default: ""
	Description string `json:"description"`

	// Category
	// default: general
	Category string `json:"category"`
}

// NewCreateItemHandler returns an HTTP handler for item creation.
// @Summary Create an item
// @Description Creates an item owned by the authenticated user
// @Tags items
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param createItemRequest body handlers.CreateItemRequest true "Item creation request"
// @Success 201 {object} handlers.Response "Created item"
// @Failure 400 {object} handlers.Response "Invalid request body or missing title"
// @Failure 401 {object} handlers.Response "Missing or invalid token"
// @Router /items [post]
func NewCreateItemHandler(svc ItemCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.UserIDFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "Authorization required")
			return
		}

		var req CreateItemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		item, err := svc.Create(r.Context(), userID, req.Title, req.Description, req.Category)
		if err != nil {
			if errors.Is(err, services.ErrInvalidInput) {
				writeError(w, http.StatusBadRequest, "Title is required")
				return
			}
			logger.Log.Errorw("internal server error", "err", err)
			writeInternalError(w)
			return
		}

		writeSuccess(w, http.StatusCreated, "Item created", item)
	}
}
