package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/developerom1/Red-Global-Assignment/internal/logger"
	"github.com/developerom1/Red-Global-Assignment/internal/models"
)

// ItemReadRepository provides read-only access to item records.
// Every query is scoped to the owning user.
type ItemReadRepository struct {
	db *sqlx.DB
}

// NewItemReadRepository creates a new ItemReadRepository.
func NewItemReadRepository(db *sqlx.DB) *ItemReadRepository {
	return &ItemReadRepository{db: db}
}

// ListByOwner returns all items owned by userID in insertion order.
func (r *ItemReadRepository) ListByOwner(ctx context.Context, userID uuid.UUID) ([]models.ItemDB, error) {
	const query = `
		SELECT item_id, user_id, title, description, category, status, created_at, updated_at
		FROM items
		WHERE user_id = $1
		ORDER BY created_at
	`

	items := []models.ItemDB{}
	err := r.db.SelectContext(ctx, &items, query, userID)

	logger.Log.Infow("item query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", userID,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return items, nil
}

// GetByID returns the item with the given id owned by userID.
// Returns ErrNotFound both for missing items and items owned by someone else.
func (r *ItemReadRepository) GetByID(ctx context.Context, userID, itemID uuid.UUID) (*models.ItemDB, error) {
	const query = `
		SELECT item_id, user_id, title, description, category, status, created_at, updated_at
		FROM items
		WHERE item_id = $1 AND user_id = $2
	`

	var item models.ItemDB
	err := r.db.GetContext(ctx, &item, query, itemID, userID)

	logger.Log.Infow("item query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{itemID, userID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// ItemWriteRepository provides write access to item records.
type ItemWriteRepository struct {
	db *sqlx.DB
}

// NewItemWriteRepository creates a new ItemWriteRepository.
func NewItemWriteRepository(db *sqlx.DB) *ItemWriteRepository {
	return &ItemWriteRepository{db: db}
}

// Save persists a new item and returns the stored record.
func (r *ItemWriteRepository) Save(ctx context.Context, userID uuid.UUID, title, description, category, status string) (*models.ItemDB, error) {
	const query = `
		INSERT INTO items (user_id, title, description, category, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING item_id, user_id, title, description, category, status, created_at, updated_at
	`

	var item models.ItemDB
	err := r.db.GetContext(ctx, &item, query, userID, title, description, category, status)

	logger.Log.Infow("item insert",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, title, category, status},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Update replaces the supplied fields of an owned item and returns the
// updated record. Nil fields retain their prior value. Returns ErrNotFound
// when no item with that id is owned by userID.
func (r *ItemWriteRepository) Update(ctx context.Context, userID, itemID uuid.UUID, update models.ItemUpdate) (*models.ItemDB, error) {
	const query = `
		UPDATE items
		SET title       = COALESCE($3, title),
		    description = COALESCE($4, description),
		    category    = COALESCE($5, category),
		    status      = COALESCE($6, status),
		    updated_at  = NOW()
		WHERE item_id = $1 AND user_id = $2
		RETURNING item_id, user_id, title, description, category, status, created_at, updated_at
	`

	var item models.ItemDB
	err := r.db.GetContext(ctx, &item, query,
		itemID, userID, update.Title, update.Description, update.Category, update.Status)

	logger.Log.Infow("item update",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{itemID, userID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Delete removes an owned item. Returns ErrNotFound when no item with that
// id is owned by userID.
func (r *ItemWriteRepository) Delete(ctx context.Context, userID, itemID uuid.UUID) error {
	const query = `
		DELETE FROM items
		WHERE item_id = $1 AND user_id = $2
	`

	res, err := r.db.ExecContext(ctx, query, itemID, userID)

	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("item delete",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{itemID, userID},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
