package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/developerom1/Red-Global-Assignment/internal/logger"
	"github.com/developerom1/Red-Global-Assignment/internal/models"
)

// MeetingReadRepository provides read-only access to meeting records,
// scoped to the owning user.
type MeetingReadRepository struct {
	db *sqlx.DB
}

// NewMeetingReadRepository creates a new MeetingReadRepository.
func NewMeetingReadRepository(db *sqlx.DB) *MeetingReadRepository {
	return &MeetingReadRepository{db: db}
}

// ListByOwner returns all meetings owned by userID, newest first.
func (r *MeetingReadRepository) ListByOwner(ctx context.Context, userID uuid.UUID) ([]models.MeetingDB, error) {
	const query = `
		SELECT meeting_id, user_id, title, stored_path, file_format, file_size, status, created_at, updated_at
		FROM meetings
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	meetings := []models.MeetingDB{}
	err := r.db.SelectContext(ctx, &meetings, query, userID)

	logger.Log.Infow("meeting query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", userID,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return meetings, nil
}

// MeetingWriteRepository provides write access to meeting records.
type MeetingWriteRepository struct {
	db *sqlx.DB
}

// NewMeetingWriteRepository creates a new MeetingWriteRepository.
func NewMeetingWriteRepository(db *sqlx.DB) *MeetingWriteRepository {
	return &MeetingWriteRepository{db: db}
}

// Save persists a new meeting record and returns the generated id.
func (r *MeetingWriteRepository) Save(ctx context.Context, userID uuid.UUID, title, storedPath, fileFormat string, fileSize int64) (uuid.UUID, error) {
	const query = `
		INSERT INTO meetings (user_id, title, stored_path, file_format, file_size, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING meeting_id
	`

	var meetingID uuid.UUID
	err := r.db.GetContext(ctx, &meetingID, query,
		userID, title, storedPath, fileFormat, fileSize, models.MeetingStatusUploaded)

	logger.Log.Infow("meeting insert",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, title, storedPath, fileFormat, fileSize},
		"error", err,
	)

	if err != nil {
		return uuid.Nil, err
	}
	return meetingID, nil
}
