package entities

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Segment is a contiguous stretch of speech by one speaker
type Segment struct {
	Start   float64 `json:"start"`
	End     float64 `json:"end"`
	Text    string  `json:"text"`
	Speaker string  `json:"speaker"`
}

// Transcript is the text produced from a recording by the transcription service
type Transcript struct {
	ID              uuid.UUID `json:"id"`
	RecordingID     uuid.UUID `json:"recording_id"`
	Text            string    `json:"text"`
	Language        string    `json:"language,omitempty"`
	Segments        []Segment `json:"segments,omitempty"`
	ConfidenceScore float64   `json:"confidence_score,omitempty"`
	DurationSeconds int       `json:"duration_seconds,omitempty"`
	ModelUsed       string    `json:"model_used,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// NewTranscript creates a new transcript
func NewTranscript(recordingID uuid.UUID) *Transcript {
	return &Transcript{
		ID:          uuid.New(),
		RecordingID: recordingID,
		CreatedAt:   time.Now(),
	}
}

// SpeakerText renders segments as "[MM:SS Speaker A]: text" lines, which keeps
// speaker labels visible to the extractors. Falls back to the plain text.
func (t *Transcript) SpeakerText() string {
	if len(t.Segments) == 0 {
		return t.Text
	}
	var sb strings.Builder
	for _, s := range t.Segments {
		minutes := int(s.Start) / 60
		seconds := int(s.Start) % 60
		sb.WriteString(fmt.Sprintf("[%02d:%02d Speaker %s]: %s\n", minutes, seconds, s.Speaker, s.Text))
	}
	return sb.String()
}
