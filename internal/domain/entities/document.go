package entities

import (
	"time"

	"github.com/google/uuid"
)

// MeetingType is the fixed set of meeting types the service understands
type MeetingType string

const (
	MeetingTypeGeneral MeetingType = "general"
	MeetingTypeBoard   MeetingType = "board"
	MeetingTypeCase    MeetingType = "case"
)

// Valid reports whether t is a known meeting type
func (t MeetingType) Valid() bool {
	switch t {
	case MeetingTypeGeneral, MeetingTypeBoard, MeetingTypeCase:
		return true
	}
	return false
}

// DocumentKind selects the layout of the rendered document
type DocumentKind string

const (
	DocumentKindMinutes     DocumentKind = "minutes"
	DocumentKindGeneral     DocumentKind = "general"
	DocumentKindCaseSummary DocumentKind = "case_summary"
)

// Valid reports whether k is a known document kind
func (k DocumentKind) Valid() bool {
	switch k {
	case DocumentKindMinutes, DocumentKindGeneral, DocumentKindCaseSummary:
		return true
	}
	return false
}

// DefaultDocumentKind maps a meeting type to the document it normally produces
func DefaultDocumentKind(t MeetingType) DocumentKind {
	switch t {
	case MeetingTypeBoard:
		return DocumentKindMinutes
	case MeetingTypeCase:
		return DocumentKindCaseSummary
	default:
		return DocumentKindGeneral
	}
}

// Folder is one of the fixed output destinations
type Folder string

const (
	FolderRecordings     Folder = "recordings"
	FolderTranscripts    Folder = "transcripts"
	FolderNotes          Folder = "notes"
	FolderOfficialOrders Folder = "official-orders"
)

// Folders lists every destination folder
var Folders = []Folder{FolderRecordings, FolderTranscripts, FolderNotes, FolderOfficialOrders}

// Valid reports whether f is one of the output folders
func (f Folder) Valid() bool {
	for _, known := range Folders {
		if f == known {
			return true
		}
	}
	return false
}

// DocumentSource records which path produced a document
type DocumentSource string

const (
	SourceLLM       DocumentSource = "llm"
	SourceHeuristic DocumentSource = "heuristic"
	SourceError     DocumentSource = "error"
)

// OutputDocument is the final rendered markdown plus its classification
type OutputDocument struct {
	ID          uuid.UUID      `json:"id"`
	Title       string         `json:"title"`
	Kind        DocumentKind   `json:"kind"`
	MeetingType MeetingType    `json:"meeting_type"`
	Markdown    string         `json:"markdown"`
	IsOrder     bool           `json:"is_order"`
	Folder      Folder         `json:"folder"`
	Filename    string         `json:"filename"`
	Location    string         `json:"location,omitempty"`
	Source      DocumentSource `json:"source"`
	Notice      string         `json:"notice,omitempty"`
	GeneratedAt time.Time      `json:"generated_at"`
}

// NewOutputDocument creates a document with a fresh ID
func NewOutputDocument(title string, kind DocumentKind, markdown string) *OutputDocument {
	return &OutputDocument{
		ID:          uuid.New(),
		Title:       title,
		Kind:        kind,
		Markdown:    markdown,
		Folder:      FolderNotes,
		GeneratedAt: time.Now(),
	}
}

// HistoryEntry is what the history repository remembers about a processed document
type HistoryEntry struct {
	DocumentID  uuid.UUID      `json:"document_id"`
	Title       string         `json:"title"`
	MeetingType MeetingType    `json:"meeting_type"`
	Folder      Folder         `json:"folder"`
	Filename    string         `json:"filename"`
	Location    string         `json:"location"`
	IsOrder     bool           `json:"is_order"`
	Source      DocumentSource `json:"source"`
	CreatedAt   time.Time      `json:"created_at"`
}

// StoredFile describes a file written to one of the output folders
type StoredFile struct {
	Name       string    `json:"name"`
	Folder     Folder    `json:"folder"`
	Size       int64     `json:"size"`
	Location   string    `json:"location"`
	ModifiedAt time.Time `json:"modified_at"`
}
