package errors

import (
	stdErrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	assert.Equal(t, "[TITLE_REQUIRED] Please enter a meeting title", ErrTitleRequired().Error())

	err := ErrStorageFailed("save notes", stdErrors.New("disk full"))
	assert.Equal(t, "[INTEGRATION_STORAGE_FAILED] Storage operation failed: save notes: disk full", err.Error())
	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode)
}

func TestAppError_Unwrap(t *testing.T) {
	cause := stdErrors.New("timeout")
	err := ErrAITranscriptionFailed(cause)

	assert.True(t, stdErrors.Is(err, cause))

	var appErr AppError
	assert.True(t, stdErrors.As(err, &appErr))
	assert.Equal(t, ErrorCode_AI_TRANSCRIPTION_FAILED, appErr.Code)
}

func TestAppError_WithDetailCopies(t *testing.T) {
	base := ErrInvalidMeetingType("council")
	extended := base.WithDetail("hint", "general, board or case")

	assert.Equal(t, map[string]string{"meeting_type": "council"}, base.Details)
	assert.Equal(t, "council", extended.Details["meeting_type"])
	assert.Equal(t, "general, board or case", extended.Details["hint"])
}

func TestErrorCode_String(t *testing.T) {
	assert.Equal(t, "TEMPLATE_NOT_FOUND", ErrorCode_TEMPLATE_NOT_FOUND.String())
	assert.Equal(t, "UNKNOWN", ErrorCode(42).String())
}
