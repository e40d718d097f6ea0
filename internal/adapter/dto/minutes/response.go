package minutes

import "time"

// DocumentResponse represents a rendered document in API responses
type DocumentResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Kind        string    `json:"kind"`
	MeetingType string    `json:"meeting_type"`
	Markdown    string    `json:"markdown"`
	HTML        string    `json:"html,omitempty"`
	IsOrder     bool      `json:"is_order"`
	Folder      string    `json:"folder"`
	Filename    string    `json:"filename"`
	Location    string    `json:"location,omitempty"`
	Source      string    `json:"source"`
	Notice      string    `json:"notice,omitempty"`
	GeneratedAt time.Time `json:"generated_at"`
}

// OutcomeResponse tells the caller which analysis path was taken
type OutcomeResponse struct {
	Kind     string `json:"kind"`
	Provider string `json:"provider,omitempty"`
	Cached   bool   `json:"cached"`
	Cause    string `json:"cause,omitempty"`
}

// AnalysisSummary counts what the analysis found
type AnalysisSummary struct {
	Summary         string   `json:"summary,omitempty"`
	Date            string   `json:"date,omitempty"`
	Location        string   `json:"location,omitempty"`
	Attendees       int      `json:"attendees"`
	Present         int      `json:"present"`
	Motions         int      `json:"motions"`
	ActionItems     int      `json:"action_items"`
	Decisions       int      `json:"decisions"`
	CaseNumbers     []string `json:"case_numbers,omitempty"`
	AdjournmentTime string   `json:"adjournment_time,omitempty"`
}

// RecordingResponse represents an uploaded recording
type RecordingResponse struct {
	ID          string    `json:"id"`
	Filename    string    `json:"filename"`
	ContentType string    `json:"content_type"`
	Size        int64     `json:"size"`
	Location    string    `json:"location,omitempty"`
	Status      string    `json:"status"`
	UploadedAt  time.Time `json:"uploaded_at"`
}

// ProcessResponse represents the result of one processing run
type ProcessResponse struct {
	Document           *DocumentResponse  `json:"document"`
	Outcome            OutcomeResponse    `json:"outcome"`
	Analysis           *AnalysisSummary   `json:"analysis"`
	TranscriptLocation string             `json:"transcript_location,omitempty"`
	Recording          *RecordingResponse `json:"recording,omitempty"`
}

// MentionResponse is one roster name found in normalized text
type MentionResponse struct {
	Name    string `json:"name"`
	Written string `json:"written"`
	Offset  int    `json:"offset"`
}

// NormalizeResponse represents normalized text and the names found
type NormalizeResponse struct {
	Text     string             `json:"text"`
	Changed  bool               `json:"changed"`
	Mentions []*MentionResponse `json:"mentions"`
}

// ClassifyResponse represents the order/note decision for a document
type ClassifyResponse struct {
	IsOrder bool   `json:"is_order"`
	Folder  string `json:"folder"`
}

// HistoryEntryResponse represents one processed document in the history
type HistoryEntryResponse struct {
	DocumentID  string    `json:"document_id"`
	Title       string    `json:"title"`
	MeetingType string    `json:"meeting_type"`
	Folder      string    `json:"folder"`
	Filename    string    `json:"filename"`
	Location    string    `json:"location,omitempty"`
	IsOrder     bool      `json:"is_order"`
	Source      string    `json:"source"`
	CreatedAt   time.Time `json:"created_at"`
}

// StoredFileResponse represents a file in one of the output folders
type StoredFileResponse struct {
	Name       string    `json:"name"`
	Folder     string    `json:"folder"`
	Size       int64     `json:"size"`
	Location   string    `json:"location"`
	ModifiedAt time.Time `json:"modified_at"`
}

// TemplateResponse represents a raw document template
type TemplateResponse struct {
	Kind string `json:"kind"`
	Body string `json:"body"`
}
