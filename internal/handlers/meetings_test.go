package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/developerom1/Red-Global-Assignment/internal/middlewares"
	"github.com/developerom1/Red-Global-Assignment/internal/models"
)

func TestListMeetingsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	t.Run("returns owned meetings", func(t *testing.T) {
		mockSvc := NewMockMeetingLister(ctrl)
		mockSvc.EXPECT().ListMeetings(gomock.Any(), userID).Return([]models.Meeting{
			{
				ID:         uuid.New(),
				Title:      "standup",
				FileFormat: "mp3",
				Status:     models.MeetingStatusUploaded,
				CreatedAt:  time.Now().UTC(),
			},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/meetings", nil)
		req = req.WithContext(middlewares.WithUserID(req.Context(), userID))
		rec := httptest.NewRecorder()

		NewListMeetingsHandler(mockSvc)(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp Response
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Success)

		data, ok := resp.Data.([]any)
		assert.True(t, ok)
		assert.Len(t, data, 1)
	})

	t.Run("no identity in context", func(t *testing.T) {
		mockSvc := NewMockMeetingLister(ctrl)

		req := httptest.NewRequest(http.MethodGet, "/meetings", nil)
		rec := httptest.NewRecorder()

		NewListMeetingsHandler(mockSvc)(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("internal server error", func(t *testing.T) {
		mockSvc := NewMockMeetingLister(ctrl)
		mockSvc.EXPECT().ListMeetings(gomock.Any(), userID).Return(nil, errors.New("database failure"))

		req := httptest.NewRequest(http.MethodGet, "/meetings", nil)
		req = req.WithContext(middlewares.WithUserID(req.Context(), userID))
		rec := httptest.NewRecorder()

		NewListMeetingsHandler(mockSvc)(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
