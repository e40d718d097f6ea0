package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cnmi-csc/busybee/internal/domain/entities"
	"github.com/cnmi-csc/busybee/internal/domain/repositories"
)

var (
	_ repositories.DocumentRepository = (*LocalStore)(nil)
	_ repositories.DocumentRepository = (*MinIOClient)(nil)
)

func TestSanitizeTitle(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Regular Meeting", "Regular_Meeting"},
		{"  CSC Case #24-011: Hearing  ", "CSC_Case_24_011_Hearing"},
		{"Board/Commission -- March", "Board_Commission_March"},
		{"Muña Review", "Muña_Review"},
		{"???", "meeting"},
		{"", "meeting"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SanitizeTitle(tt.in), tt.in)
	}

	long := SanitizeTitle(strings.Repeat("a", 100))
	assert.Len(t, long, maxTitleLength)
}

func TestFilename(t *testing.T) {
	at := time.Date(2025, 3, 14, 9, 5, 0, 0, time.UTC)
	assert.Equal(t, "Regular_Meeting_2025-03-14_09-05_notes.md", Filename("Regular Meeting", at, SuffixNotes))
	assert.Equal(t, "Hearing_2025-03-14_09-05_order.md", Filename("Hearing", at, SuffixOrder))
	assert.Equal(t, "recording.m4a", SuffixRecording(".M4A"))
	assert.Equal(t, "recording.bin", SuffixRecording(""))
}

func TestLocalStore(t *testing.T) {
	ctx := context.Background()
	base := t.TempDir()
	store, err := NewLocalStore(base)
	require.NoError(t, err)

	for _, folder := range entities.Folders {
		assert.DirExists(t, filepath.Join(base, string(folder)))
	}

	location, err := store.Save(ctx, entities.FolderNotes, "a_notes.md", strings.NewReader("# Notes"), 7, "text/markdown")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, "notes", "a_notes.md"), location)

	data, err := os.ReadFile(location)
	require.NoError(t, err)
	assert.Equal(t, "# Notes", string(data))

	older := time.Now().Add(-time.Hour)
	second, err := store.Save(ctx, entities.FolderNotes, "b_notes.md", strings.NewReader("# More"), 6, "text/markdown")
	require.NoError(t, err)
	require.NoError(t, os.Chtimes(second, older, older))

	files, err := store.List(ctx, entities.FolderNotes)
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "a_notes.md", files[0].Name)
	assert.Equal(t, "b_notes.md", files[1].Name)
	assert.Equal(t, int64(7), files[0].Size)

	orders, err := store.List(ctx, entities.FolderOfficialOrders)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestLocalStore_Rejects(t *testing.T) {
	ctx := context.Background()
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Save(ctx, entities.Folder("secrets"), "x.md", strings.NewReader("x"), 1, "")
	assert.Error(t, err)

	_, err = store.Save(ctx, entities.FolderNotes, "../escape.md", strings.NewReader("x"), 1, "")
	assert.Error(t, err)
}

func TestMinIOClient_ObjectName(t *testing.T) {
	m := &MinIOClient{bucket: "busybee", prefix: "BusyBee"}
	assert.Equal(t, "BusyBee/official-orders/x_order.md", m.objectName(entities.FolderOfficialOrders, "x_order.md"))

	m.prefix = ""
	assert.Equal(t, "notes/", m.objectName(entities.FolderNotes, ""))
}
