package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/developerom1/Red-Global-Assignment/internal/logger"
	"github.com/developerom1/Red-Global-Assignment/internal/models"
	"github.com/developerom1/Red-Global-Assignment/internal/repositories"
)

// ErrNotFound is returned when no matching owned record exists. Items owned
// by another user surface identically, keeping ownership opaque.
var ErrNotFound = errors.New("not found")

// ItemReader defines read-only operations for items.
type ItemReader interface {
	ListByOwner(ctx context.Context, userID uuid.UUID) ([]models.ItemDB, error)
	GetByID(ctx context.Context, userID, itemID uuid.UUID) (*models.ItemDB, error)
}

// ItemWriter defines write operations for items.
type ItemWriter interface {
	Save(ctx context.Context, userID uuid.UUID, title, description, category, status string) (*models.ItemDB, error)
	Update(ctx context.Context, userID, itemID uuid.UUID, update models.ItemUpdate) (*models.ItemDB, error)
	Delete(ctx context.Context, userID, itemID uuid.UUID) error
}

// ItemService handles owner-scoped item CRUD and event publishing.
type ItemService struct {
	reader ItemReader
	writer ItemWriter
	events EventWriter
}

// NewItemService creates a new ItemService instance.
func NewItemService(reader ItemReader, writer ItemWriter, events EventWriter) *ItemService {
	return &ItemService{
		reader: reader,
		writer: writer,
		events: events,
	}
}

func (svc *ItemService) publish(ctx context.Context, operation string, userID, itemID uuid.UUID) {
	publishEvent(ctx, svc.events, models.Event{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		UserID:    userID.String(),
		Operation: operation,
		SubjectID: itemID.String(),
	})
}

// Create persists a new item for the owner. Description defaults to "",
// category to "general" and status to "active".
func (svc *ItemService) Create(ctx context.Context, userID uuid.UUID, title, description, category string) (*models.Item, error) {
	if title == "" {
		return nil, ErrInvalidInput
	}
	if category == "" {
		category = models.DefaultItemCategory
	}

	itemDB, err := svc.writer.Save(ctx, userID, title, description, category, models.DefaultItemStatus)
	if err != nil {
		logger.Log.Errorw("failed to save item", "userID", userID, "err", err)
		return nil, err
	}

	svc.publish(ctx, models.EventItemCreated, userID, itemDB.ItemID)

	item := itemDB.ToAPI()
	return &item, nil
}

// List returns all items owned by userID.
func (svc *ItemService) List(ctx context.Context, userID uuid.UUID) ([]models.Item, error) {
	itemsDB, err := svc.reader.ListByOwner(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list items", "userID", userID, "err", err)
		return nil, err
	}

	items := make([]models.Item, 0, len(itemsDB))
	for i := range itemsDB {
		items = append(items, itemsDB[i].ToAPI())
	}
	return items, nil
}

// Get returns a single owned item, or ErrNotFound.
func (svc *ItemService) Get(ctx context.Context, userID, itemID uuid.UUID) (*models.Item, error) {
	itemDB, err := svc.reader.GetByID(ctx, userID, itemID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		logger.Log.Errorw("failed to get item", "userID", userID, "itemID", itemID, "err", err)
		return nil, err
	}

	item := itemDB.ToAPI()
	return &item, nil
}

// Update replaces only the supplied fields of an owned item and returns the
// updated record. An explicitly empty title is rejected.
func (svc *ItemService) Update(ctx context.Context, userID, itemID uuid.UUID, update models.ItemUpdate) (*models.Item, error) {
	if update.Title != nil && *update.Title == "" {
		return nil, ErrInvalidInput
	}

	itemDB, err := svc.writer.Update(ctx, userID, itemID, update)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		logger.Log.Errorw("failed to update item", "userID", userID, "itemID", itemID, "err", err)
		return nil, err
	}

	svc.publish(ctx, models.EventItemUpdated, userID, itemID)

	item := itemDB.ToAPI()
	return &item, nil
}

// Delete removes an owned item, or returns ErrNotFound.
func (svc *ItemService) Delete(ctx context.Context, userID, itemID uuid.UUID) error {
	err := svc.writer.Delete(ctx, userID, itemID)
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		logger.Log.Errorw("failed to delete item", "userID", userID, "itemID", itemID, "err", err)
		return err
	}

	svc.publish(ctx, models.EventItemDeleted, userID, itemID)
	return nil
}
