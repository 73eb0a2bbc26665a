package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/developerom1/Red-Global-Assignment/internal/models"
	"github.com/developerom1/Red-Global-Assignment/internal/repositories"
	"github.com/developerom1/Red-Global-Assignment/internal/services"
)

func TestItemService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	owner := uuid.New()
	itemID := uuid.New()

	tests := []struct {
		name         string
		title        string
		description  string
		category     string
		wantCategory string
		writerErr    error
		wantErr      error
		skipSave     bool
	}{
		{
			name:         "success with defaults",
			title:        "Buy milk",
			wantCategory: "general",
		},
		{
			name:         "explicit category kept",
			title:        "Review notes",
			description:  "from last sync",
			category:     "work",
			wantCategory: "work",
		},
		{
			name:     "empty title",
			title:    "",
			wantErr:  services.ErrInvalidInput,
			skipSave: true,
		},
		{
			name:         "store failure",
			title:        "Buy milk",
			wantCategory: "general",
			writerErr:    errors.New("db error"),
			wantErr:      errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader := services.NewMockItemReader(ctrl)
			mockWriter := services.NewMockItemWriter(ctrl)
			mockEvents := services.NewMockEventWriter(ctrl)
			svc := services.NewItemService(mockReader, mockWriter, mockEvents)

			if !tt.skipSave {
				var saved *models.ItemDB
				if tt.writerErr == nil {
					saved = &models.ItemDB{
						ItemID:      itemID,
						UserID:      owner,
						Title:       tt.title,
						Description: tt.description,
						Category:    tt.wantCategory,
						Status:      "active",
					}
				}
				mockWriter.EXPECT().
					Save(gomock.Any(), owner, tt.title, tt.description, tt.wantCategory, "active").
					Return(saved, tt.writerErr)
			}
			if tt.wantErr == nil {
				mockEvents.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)
			}

			item, err := svc.Create(context.Background(), owner, tt.title, tt.description, tt.category)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, item)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, itemID, item.ID)
			assert.Equal(t, tt.title, item.Title)
			assert.Equal(t, tt.wantCategory, item.Category)
			assert.Equal(t, "active", item.Status)
		})
	}
}

func TestItemService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	owner := uuid.New()
	itemID := uuid.New()

	t.Run("found", func(t *testing.T) {
		mockReader := services.NewMockItemReader(ctrl)
		svc := services.NewItemService(mockReader, services.NewMockItemWriter(ctrl), nil)

		mockReader.EXPECT().GetByID(gomock.Any(), owner, itemID).Return(&models.ItemDB{
			ItemID: itemID,
			UserID: owner,
			Title:  "Buy milk",
		}, nil)

		item, err := svc.Get(context.Background(), owner, itemID)
		assert.NoError(t, err)
		assert.Equal(t, itemID, item.ID)
	})

	t.Run("not found maps to service error", func(t *testing.T) {
		mockReader := services.NewMockItemReader(ctrl)
		svc := services.NewItemService(mockReader, services.NewMockItemWriter(ctrl), nil)

		mockReader.EXPECT().GetByID(gomock.Any(), owner, itemID).Return(nil, repositories.ErrNotFound)

		item, err := svc.Get(context.Background(), owner, itemID)
		assert.ErrorIs(t, err, services.ErrNotFound)
		assert.Nil(t, item)
	})
}

func TestItemService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	owner := uuid.New()
	itemID := uuid.New()
	done := "done"
	empty := ""

	t.Run("partial update publishes event", func(t *testing.T) {
		mockWriter := services.NewMockItemWriter(ctrl)
		mockEvents := services.NewMockEventWriter(ctrl)
		svc := services.NewItemService(services.NewMockItemReader(ctrl), mockWriter, mockEvents)

		update := models.ItemUpdate{Status: &done}
		mockWriter.EXPECT().Update(gomock.Any(), owner, itemID, update).Return(&models.ItemDB{
			ItemID:   itemID,
			UserID:   owner,
			Title:    "Buy milk",
			Category: "general",
			Status:   "done",
		}, nil)
		mockEvents.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

		item, err := svc.Update(context.Background(), owner, itemID, update)
		assert.NoError(t, err)
		assert.Equal(t, "done", item.Status)
		assert.Equal(t, "Buy milk", item.Title)
	})

	t.Run("explicit empty title rejected", func(t *testing.T) {
		svc := services.NewItemService(services.NewMockItemReader(ctrl), services.NewMockItemWriter(ctrl), nil)

		item, err := svc.Update(context.Background(), owner, itemID, models.ItemUpdate{Title: &empty})
		assert.ErrorIs(t, err, services.ErrInvalidInput)
		assert.Nil(t, item)
	})

	t.Run("not found", func(t *testing.T) {
		mockWriter := services.NewMockItemWriter(ctrl)
		svc := services.NewItemService(services.NewMockItemReader(ctrl), mockWriter, nil)

		mockWriter.EXPECT().Update(gomock.Any(), owner, itemID, gomock.Any()).Return(nil, repositories.ErrNotFound)

		item, err := svc.Update(context.Background(), owner, itemID, models.ItemUpdate{Status: &done})
		assert.ErrorIs(t, err, services.ErrNotFound)
		assert.Nil(t, item)
	})
}

func TestItemService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	owner := uuid.New()
	itemID := uuid.New()

	t.Run("success publishes event", func(t *testing.T) {
		mockWriter := services.NewMockItemWriter(ctrl)
		mockEvents := services.NewMockEventWriter(ctrl)
		svc := services.NewItemService(services.NewMockItemReader(ctrl), mockWriter, mockEvents)

		mockWriter.EXPECT().Delete(gomock.Any(), owner, itemID).Return(nil)
		mockEvents.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

		assert.NoError(t, svc.Delete(context.Background(), owner, itemID))
	})

	t.Run("not found", func(t *testing.T) {
		mockWriter := services.NewMockItemWriter(ctrl)
		svc := services.NewItemService(services.NewMockItemReader(ctrl), mockWriter, nil)

		mockWriter.EXPECT().Delete(gomock.Any(), owner, itemID).Return(repositories.ErrNotFound)

		assert.ErrorIs(t, svc.Delete(context.Background(), owner, itemID), services.ErrNotFound)
	})

	t.Run("publish failure is not fatal", func(t *testing.T) {
		mockWriter := services.NewMockItemWriter(ctrl)
		mockEvents := services.NewMockEventWriter(ctrl)
		svc := services.NewItemService(services.NewMockItemReader(ctrl), mockWriter, mockEvents)

		mockWriter.EXPECT().Delete(gomock.Any(), owner, itemID).Return(nil)
		mockEvents.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(errors.New("kafka down"))

		assert.NoError(t, svc.Delete(context.Background(), owner, itemID))
	})
}

func TestItemService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	owner := uuid.New()

	mockReader := services.NewMockItemReader(ctrl)
	svc := services.NewItemService(mockReader, services.NewMockItemWriter(ctrl), nil)

	mockReader.EXPECT().ListByOwner(gomock.Any(), owner).Return([]models.ItemDB{
		{ItemID: uuid.New(), UserID: owner, Title: "one"},
		{ItemID: uuid.New(), UserID: owner, Title: "two"},
	}, nil)

	items, err := svc.List(context.Background(), owner)
	assert.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, "one", items[0].Title)
	assert.Equal(t, "two", items[1].Title)
}
