package models

import (
	"time"

	"github.com/google/uuid"
)

// Meeting processing statuses. Only "uploaded" is assigned by this service;
// the processing pipeline downstream of the event stream owns the rest.
const (
	MeetingStatusUploaded   = "uploaded"
	MeetingStatusProcessing = "processing"
	MeetingStatusCompleted  = "completed"
	MeetingStatusFailed     = "failed"
)

// MeetingDB represents an uploaded meeting recording in the database.
type MeetingDB struct {
	MeetingID  uuid.UUID `db:"meeting_id"` // Primary key
	UserID     uuid.UUID `db:"user_id"`    // Owner, foreign key to users
	Title      string    `db:"title"`      // Derived from the uploaded filename
	StoredPath string    `db:"stored_path"`
	FileFormat string    `db:"file_format"`
	FileSize   int64     `db:"file_size"`
	Status     string    `db:"status"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

// Meeting is the meeting representation exposed through the API.
type Meeting struct {
	ID         uuid.UUID `json:"id"`
	Title      string    `json:"title"`
	FileFormat string    `json:"file_format"`
	FileSize   int64     `json:"file_size"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

// ToAPI converts a database meeting record to its API representation.
func (m *MeetingDB) ToAPI() Meeting {
	return Meeting{
		ID:         m.MeetingID,
		Title:      m.Title,
		FileFormat: m.FileFormat,
		FileSize:   m.FileSize,
		Status:     m.Status,
		CreatedAt:  m.CreatedAt,
	}
}
