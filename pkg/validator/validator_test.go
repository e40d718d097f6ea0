package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Title string `json:"title" validate:"required,notblank"`
	Type  string `json:"meeting_type" validate:"omitempty,meetingtype"`
	Kind  string `json:"document_kind" validate:"documentkind"`
}

func TestValidate(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&sample{Title: "Regular Meeting", Type: "board", Kind: "minutes"}))
	assert.NoError(t, v.Validate(&sample{Title: "Regular Meeting"}))

	err := v.Validate(&sample{Title: "   "})
	require.Error(t, err)
	assert.Equal(t, map[string]string{"title": "notblank"}, FieldErrors(err))

	err = v.Validate(&sample{Title: "x", Type: "retreat", Kind: "memo"})
	require.Error(t, err)
	assert.Equal(t, map[string]string{"meeting_type": "meetingtype", "document_kind": "documentkind"}, FieldErrors(err))
}
