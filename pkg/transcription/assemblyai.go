// Package transcription turns uploaded meeting recordings into transcripts.
package transcription

import (
	"context"
	"fmt"
	"io"
	"time"

	aai "github.com/AssemblyAI/assemblyai-go-sdk"
	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cnmi-csc/busybee/internal/domain/entities"
	"github.com/cnmi-csc/busybee/pkg/config"
)

// AssemblyAIClient transcribes recordings with AssemblyAI
type AssemblyAIClient struct {
	client   *aai.Client
	language string
	logger   *zap.Logger
}

// NewAssemblyAIClient creates a client. It returns nil when no API key is configured.
func NewAssemblyAIClient(cfg config.AssemblyAIConfig, logger *zap.Logger) *AssemblyAIClient {
	if cfg.APIKey == "" {
		return nil
	}
	return &AssemblyAIClient{
		client:   aai.NewClient(cfg.APIKey),
		language: cfg.LanguageCode,
		logger:   logger,
	}
}

// Transcribe uploads audio and waits for the finished transcript. The upload
// is retried on transient failures; transcription itself is not.
func (c *AssemblyAIClient) Transcribe(ctx context.Context, recordingID uuid.UUID, audio io.Reader) (*entities.Transcript, error) {
	var uploadURL string
	uploadFn := func() error {
		url, err := c.client.Upload(ctx, audio)
		if err != nil {
			if seeker, ok := audio.(io.Seeker); ok {
				if _, serr := seeker.Seek(0, io.SeekStart); serr != nil {
					return backoff.Permanent(err)
				}
				return err
			}
			return backoff.Permanent(err)
		}
		uploadURL = url
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 2 * time.Second
	bo.MaxElapsedTime = 30 * time.Second
	bo.MaxInterval = 10 * time.Second

	if err := backoff.Retry(uploadFn, backoff.WithContext(bo, ctx)); err != nil {
		if c.logger != nil {
			c.logger.Error("❌ Failed to upload recording to AssemblyAI", zap.Error(err))
		}
		return nil, fmt.Errorf("failed to upload to AssemblyAI: %w", err)
	}

	if c.logger != nil {
		c.logger.Info("🎙️ Starting transcription",
			zap.String("recording_id", recordingID.String()),
			zap.String("language", c.language),
		)
	}

	params := &aai.TranscriptOptionalParams{
		SpeakerLabels: aai.Bool(true),
	}
	if c.language != "" {
		params.LanguageCode = aai.TranscriptLanguageCode(c.language)
	}

	transcript, err := c.client.Transcripts.TranscribeFromURL(ctx, uploadURL, params)
	if err != nil {
		return nil, fmt.Errorf("transcription request failed: %w", err)
	}
	if transcript.Status == aai.TranscriptStatusError {
		msg := "unknown error"
		if transcript.Error != nil {
			msg = *transcript.Error
		}
		return nil, fmt.Errorf("AssemblyAI error: %s", msg)
	}

	result := toTranscript(recordingID, transcript)
	if c.logger != nil {
		c.logger.Info("✅ Transcription completed",
			zap.String("recording_id", recordingID.String()),
			zap.Int("text_length", len(result.Text)),
			zap.Int("segments", len(result.Segments)),
		)
	}
	return result, nil
}

func toTranscript(recordingID uuid.UUID, t aai.Transcript) *entities.Transcript {
	result := entities.NewTranscript(recordingID)
	result.ModelUsed = "assemblyai"

	if t.Text != nil {
		result.Text = *t.Text
	}
	if t.LanguageCode != "" {
		result.Language = string(t.LanguageCode)
	}
	if t.Confidence != nil {
		result.ConfidenceScore = *t.Confidence
	}
	if t.AudioDuration != nil {
		result.DurationSeconds = int(*t.AudioDuration)
	}

	for _, utt := range t.Utterances {
		var seg entities.Segment
		if utt.Text != nil {
			seg.Text = *utt.Text
		}
		if utt.Speaker != nil {
			seg.Speaker = *utt.Speaker
		}
		if utt.Start != nil {
			seg.Start = float64(*utt.Start) / 1000.0 // ms to seconds
		}
		if utt.End != nil {
			seg.End = float64(*utt.End) / 1000.0
		}
		result.Segments = append(result.Segments, seg)
	}
	return result
}
