package entities

import (
	"time"

	"github.com/google/uuid"
)

// RecordingStatus represents the status of an uploaded recording
type RecordingStatus string

const (
	RecordingStatusStored      RecordingStatus = "stored"
	RecordingStatusTranscribed RecordingStatus = "transcribed"
	RecordingStatusProcessed   RecordingStatus = "processed"
	RecordingStatusFailed      RecordingStatus = "failed"
)

// Recording represents an uploaded meeting recording
type Recording struct {
	ID          uuid.UUID       `json:"id"`
	Title       string          `json:"title"`
	Filename    string          `json:"filename"`
	ContentType string          `json:"content_type"`
	Size        int64           `json:"size"`
	Location    string          `json:"location"`
	Status      RecordingStatus `json:"status"`
	Error       string          `json:"error,omitempty"`
	UploadedAt  time.Time       `json:"uploaded_at"`
}

// NewRecording creates a recording record for an upload
func NewRecording(title, contentType string, size int64) *Recording {
	return &Recording{
		ID:          uuid.New(),
		Title:       title,
		ContentType: contentType,
		Size:        size,
		Status:      RecordingStatusStored,
		UploadedAt:  time.Now(),
	}
}

