package services

import (
	"context"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/developerom1/Red-Global-Assignment/internal/logger"
	"github.com/developerom1/Red-Global-Assignment/internal/models"
)

// allowedUploadExtensions is the extension allow-list for meeting recordings.
var allowedUploadExtensions = map[string]struct{}{
	".mp4": {},
	".wav": {},
	".mp3": {},
}

// BlobUploader is the external blob-storage sink: a named byte stream in,
// a stored path out.
type BlobUploader interface {
	Upload(ctx context.Context, name string, body io.Reader) (string, error)
}

// MeetingReader defines read-only operations for meetings.
type MeetingReader interface {
	ListByOwner(ctx context.Context, userID uuid.UUID) ([]models.MeetingDB, error)
}

// MeetingWriter defines write operations for meetings.
type MeetingWriter interface {
	Save(ctx context.Context, userID uuid.UUID, title, storedPath, fileFormat string, fileSize int64) (uuid.UUID, error)
}

// UploadService stores meeting recordings in blob storage, records them, and
// announces them on the event stream where the processing pipeline listens.
// Transcription and analysis are not this service's concern.
type UploadService struct {
	blobs  BlobUploader
	reader MeetingReader
	writer MeetingWriter
	events EventWriter
}

// NewUploadService creates a new UploadService instance.
func NewUploadService(blobs BlobUploader, reader MeetingReader, writer MeetingWriter, events EventWriter) *UploadService {
	return &UploadService{
		blobs:  blobs,
		reader: reader,
		writer: writer,
		events: events,
	}
}

// Upload validates the filename, streams the body to blob storage and records
// the meeting with status "uploaded". Returns the new meeting id.
func (svc *UploadService) Upload(ctx context.Context, userID uuid.UUID, filename string, size int64, body io.Reader) (uuid.UUID, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if filename == "" {
		return uuid.Nil, ErrInvalidInput
	}
	if _, ok := allowedUploadExtensions[ext]; !ok {
		return uuid.Nil, ErrInvalidInput
	}

	storedPath, err := svc.blobs.Upload(ctx, filename, body)
	if err != nil {
		logger.Log.Errorw("failed to store upload", "userID", userID, "filename", filename, "err", err)
		return uuid.Nil, err
	}

	base := filepath.Base(filename)
	title := strings.TrimSuffix(base, filepath.Ext(base))
	meetingID, err := svc.writer.Save(ctx, userID, title, storedPath, strings.TrimPrefix(ext, "."), size)
	if err != nil {
		logger.Log.Errorw("failed to save meeting", "userID", userID, "filename", filename, "err", err)
		return uuid.Nil, err
	}

	publishEvent(ctx, svc.events, models.Event{
		EventID:    uuid.NewString(),
		Timestamp:  time.Now().Unix(),
		UserID:     userID.String(),
		Operation:  models.EventMeetingUploaded,
		SubjectID:  meetingID.String(),
		StoredPath: storedPath,
	})

	return meetingID, nil
}

// ListMeetings returns the caller's meeting records.
func (svc *UploadService) ListMeetings(ctx context.Context, userID uuid.UUID) ([]models.Meeting, error) {
	meetingsDB, err := svc.reader.ListByOwner(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list meetings", "userID", userID, "err", err)
		return nil, err
	}

	meetings := make([]models.Meeting, 0, len(meetingsDB))
	for i := range meetingsDB {
		meetings = append(meetings, meetingsDB[i].ToAPI())
	}
	return meetings, nil
}
