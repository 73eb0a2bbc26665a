package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/developerom1/Red-Global-Assignment/internal/services"
)

func TestRegisterHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockRegisterer)
		expectedCode int
		expectedMsg  string
	}{
		{
			name: "success",
			body: `{"username":"john","email":"john@example.com","password":"secret123"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "john", "john@example.com", "secret123").
					Return(userID, nil)
			},
			expectedCode: http.StatusCreated,
			expectedMsg:  "User registered successfully",
		},
		{
			name: "missing fields",
			body: `{"username":"john"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "john", "", "").
					Return(uuid.Nil, services.ErrInvalidInput)
			},
			expectedCode: http.StatusBadRequest,
			expectedMsg:  "Username, email and password are required",
		},
		{
			name: "email already exists",
			body: `{"username":"john","email":"taken@example.com","password":"secret123"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "john", "taken@example.com", "secret123").
					Return(uuid.Nil, services.ErrDuplicateEmail)
			},
			expectedCode: http.StatusConflict,
			expectedMsg:  "Email already exists",
		},
		{
			name: "username already exists",
			body: `{"username":"taken","email":"john@example.com","password":"secret123"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "taken", "john@example.com", "secret123").
					Return(uuid.Nil, services.ErrDuplicateUsername)
			},
			expectedCode: http.StatusConflict,
			expectedMsg:  "Username already exists",
		},
		{
			name: "internal server error",
			body: `{"username":"bob","email":"bob@example.com","password":"secret123"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "bob", "bob@example.com", "secret123").
					Return(uuid.Nil, errors.New("database failure"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedMsg:  "Internal server error",
		},
		{
			name:         "invalid json",
			body:         `{invalid`,
			mockSetup:    func(m *MockRegisterer) {},
			expectedCode: http.StatusBadRequest,
			expectedMsg:  "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockRegisterer(ctrl)
			tt.mockSetup(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()

			NewRegisterHandler(mockSvc)(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)

			var resp Response
			assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.expectedMsg, resp.Message)
			assert.Equal(t, tt.expectedCode < 300, resp.Success)

			if tt.expectedCode == http.StatusCreated {
				data, ok := resp.Data.(map[string]any)
				assert.True(t, ok)
				assert.Equal(t, userID.String(), data["user_id"])
			}
		})
	}
}
