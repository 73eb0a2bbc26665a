package models

import (
	"time"

	"github.com/google/uuid"
)

// Default values applied when a new item is created.
const (
	DefaultItemCategory = "general"
	DefaultItemStatus   = "active"
)

// ItemDB represents a user-owned item record in the database.
type ItemDB struct {
	ItemID      uuid.UUID `db:"item_id"`     // Primary key
	UserID      uuid.UUID `db:"user_id"`     // Owner, foreign key to users
	Title       string    `db:"title"`       // Required, non-empty
	Description string    `db:"description"` // Optional, defaults to ""
	Category    string    `db:"category"`    // Optional, defaults to "general"
	Status      string    `db:"status"`      // Defaults to "active", mutable to any string
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// Item is the item representation exposed through the API.
type Item struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ItemUpdate carries a partial item update. Nil fields retain their prior value.
type ItemUpdate struct {
	Title       *string
	Description *string
	Category    *string
	Status      *string
}

// ToAPI converts a database item record to its API representation.
func (i *ItemDB) ToAPI() Item {
	return Item{
		ID:          i.ItemID,
		Title:       i.Title,
		Description: i.Description,
		Category:    i.Category,
		Status:      i.Status,
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   i.UpdatedAt,
	}
}
