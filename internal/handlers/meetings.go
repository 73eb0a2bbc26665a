package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/developerom1/Red-Global-Assignment/internal/logger"
	"github.com/developerom1/Red-Global-Assignment/internal/middlewares"
	"github.com/developerom1/Red-Global-Assignment/internal/models"
)

// MeetingLister defines the interface for listing uploaded meetings.
type MeetingLister interface {
	ListMeetings(ctx context.Context, userID uuid.UUID) ([]models.Meeting, error)
}

// NewListMeetingsHandler returns an HTTP handler listing the caller's meetings.
// @Summary List meetings
// @Description Returns all uploaded meetings owned by the authenticated user
// @Tags meetings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.Response "Meetings"
// @Failure 401 {object} handlers.Response "Missing or invalid token"
// @Router /meetings [get]
func NewListMeetingsHandler(svc MeetingLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.UserIDFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "Authorization required")
			return
		}

		meetings, err := svc.ListMeetings(r.Context(), userID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeInternalError(w)
			return
		}

		writeSuccess(w, http.StatusOK, "OK", meetings)
	}
}
