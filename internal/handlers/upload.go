package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/developerom1/Red-Global-Assignment/internal/logger"
	"github.com/developerom1/Red-Global-Assignment/internal/middlewares"
	"github.com/developerom1/Red-Global-Assignment/internal/services"
)

// maxUploadSize caps meeting recording uploads at 500MB.
const maxUploadSize = 500 << 20

// Uploader defines the interface that the upload service must implement.
type Uploader interface {
	Upload(ctx context.Context, userID uuid.UUID, filename string, size int64, body io.Reader) (uuid.UUID, error)
}

// UploadData is the payload returned on a successful upload
// swagger:model UploadData
type UploadData struct {
	// Identifier of the recorded meeting
	MeetingID string `json:"meeting_id"`
	// Original filename
	Filename string `json:"filename"`
	// Storage status
	Status string `json:"status"`
	// Pipeline status, always "pending" at upload time
	Processing string `json:"processing"`
}

// NewUploadHandler returns an HTTP handler for meeting recording uploads.
// @Summary Upload a meeting recording
// @Description Stores an .mp4/.wav/.mp3 recording in blob storage and records it for later processing
// @Tags meetings
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Meeting recording"
// @Success 201 {object} handlers.Response "Upload accepted"
// @Failure 400 {object} handlers.Response "Missing file or unsupported file type"
// @Failure 401 {object} handlers.Response "Missing or invalid token"
// @Router /upload [post]
func NewUploadHandler(svc Uploader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.UserIDFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "Authorization required")
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)

		file, header, err := r.FormFile("file")
		if err != nil {
			writeError(w, http.StatusBadRequest, "File is required")
			return
		}
		defer file.Close()

		meetingID, err := svc.Upload(r.Context(), userID, header.Filename, header.Size, file)
		if err != nil {
			if errors.Is(err, services.ErrInvalidInput) {
				writeError(w, http.StatusBadRequest, "Unsupported file type")
				return
			}
			logger.Log.Errorw("internal server error", "err", err)
			writeInternalError(w)
			return
		}

		writeSuccess(w, http.StatusCreated, "File uploaded successfully", UploadData{
			MeetingID:  meetingID.String(),
			Filename:   header.Filename,
			Status:     "uploaded",
			Processing: "pending",
		})
	}
}
