package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/developerom1/Red-Global-Assignment/internal/middlewares"
	"github.com/developerom1/Red-Global-Assignment/internal/services"
)

func TestDeleteItemHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	itemID := uuid.New()

	tests := []struct {
		name         string
		path         string
		mockSetup    func(m *MockItemDeleter)
		expectedCode int
		expectedMsg  string
	}{
		{
			name: "success",
			path: "/items/" + itemID.String(),
			mockSetup: func(m *MockItemDeleter) {
				m.EXPECT().Delete(gomock.Any(), userID, itemID).Return(nil)
			},
			expectedCode: http.StatusOK,
			expectedMsg:  "Item deleted",
		},
		{
			name: "unknown or foreign item",
			path: "/items/" + itemID.String(),
			mockSetup: func(m *MockItemDeleter) {
				m.EXPECT().Delete(gomock.Any(), userID, itemID).Return(services.ErrNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedMsg:  "Item not found",
		},
		{
			name:         "malformed id",
			path:         "/items/deadbeef",
			mockSetup:    func(m *MockItemDeleter) {},
			expectedCode: http.StatusNotFound,
			expectedMsg:  "Item not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockItemDeleter(ctrl)
			tt.mockSetup(mockSvc)

			router := chi.NewRouter()
			router.Delete("/items/{id}", NewDeleteItemHandler(mockSvc))

			req := httptest.NewRequest(http.MethodDelete, tt.path, nil)
			req = req.WithContext(middlewares.WithUserID(req.Context(), userID))
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)

			var resp Response
			assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.expectedMsg, resp.Message)
		})
	}
}
