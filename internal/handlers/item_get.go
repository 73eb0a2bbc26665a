package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/developerom1/Red-Global-Assignment/internal/logger"
	"github.com/developerom1/Red-Global-Assignment/internal/middlewares"
	"github.com/developerom1/Red-Global-Assignment/internal/models"
	"github.com/developerom1/Red-Global-Assignment/internal/services"
)

// ItemGetter defines the interface for fetching a single item.
type ItemGetter interface {
	Get(ctx context.Context, userID, itemID uuid.UUID) (*models.Item, error)
}

// itemIDFromRequest parses the {id} path parameter. A malformed id is treated
// the same as an unknown one.
func itemIDFromRequest(r *http.Request) (uuid.UUID, bool) {
	itemID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, false
	}
	return itemID, true
}

// NewGetItemHandler returns an HTTP handler fetching one owned item.
// @Summary Get an item
// @Description Returns a single item owned by the authenticated user
// @Tags items
// @Produce json
// @Security BearerAuth
// @Param id path string true "Item id"
// @Success 200 {object} handlers.Response "Item"
// @Failure 401 {object} handlers.Response "Missing or invalid token"
// @Failure 404 {object} handlers.Response "Item not found"
// @Router /items/{id} [get]
func NewGetItemHandler(svc ItemGetter) http.HandlerFunc {
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

		item, err := svc.Get(r.Context(), userID, itemID)
		if err != nil {
			if errors.Is(err, services.ErrNotFound) {
				writeError(w, http.StatusNotFound, "Item not found")
				return
			}
			logger.Log.Errorw("internal server error", "err", err)
			writeInternalError(w)
			return
		}

		writeSuccess(w, http.StatusOK, "OK", item)
	}
}
