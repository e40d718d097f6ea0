package minutes

// ProcessRequest represents the request to turn a transcript into minutes
type ProcessRequest struct {
	Title          string `json:"title" validate:"required,notblank,max=200"`
	Transcript     string `json:"transcript" validate:"required,notblank"`
	MeetingType    string `json:"meeting_type,omitempty" validate:"meetingtype"`
	DocumentKind   string `json:"document_kind,omitempty" validate:"documentkind"`
	Mode           string `json:"mode,omitempty" validate:"omitempty,oneof=ai heuristic"`
	NormalizeNames *bool  `json:"normalize_names,omitempty"`
}

// RecordingForm represents the form fields sent with a recording upload
type RecordingForm struct {
	Title          string `form:"title" json:"title" validate:"required,notblank,max=200"`
	MeetingType    string `form:"meeting_type" json:"meeting_type,omitempty" validate:"meetingtype"`
	DocumentKind   string `form:"document_kind" json:"document_kind,omitempty" validate:"documentkind"`
	Mode           string `form:"mode" json:"mode,omitempty" validate:"omitempty,oneof=ai heuristic"`
	NormalizeNames *bool  `form:"normalize_names" json:"normalize_names,omitempty"`
}

// NormalizeRequest represents the request to correct roster names in text
type NormalizeRequest struct {
	Text string `json:"text" validate:"required"`
}

// ClassifyRequest represents the request to classify a written document
type ClassifyRequest struct {
	Title string `json:"title"`
	Text  string `json:"text" validate:"required,notblank"`
}

// HistoryQuery represents the query parameters of the history listing
type HistoryQuery struct {
	Limit int64 `query:"limit" json:"limit" validate:"omitempty,min=1,max=500"`
}

// DocumentsQuery represents the query parameters of the document listing
type DocumentsQuery struct {
	Folder string `query:"folder" json:"folder" validate:"required,oneof=recordings transcripts notes official-orders"`
}
