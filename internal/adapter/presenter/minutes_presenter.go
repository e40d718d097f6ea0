package presenter

import (
	"github.com/cnmi-csc/busybee/internal/adapter/dto/minutes"
	"github.com/cnmi-csc/busybee/internal/domain/entities"
	minutesUsecase "github.com/cnmi-csc/busybee/internal/usecase/minutes"
	"github.com/cnmi-csc/busybee/internal/usecase/names"
)

// ToProcessResponse converts a processing result to its API shape
func ToProcessResponse(res *minutesUsecase.Result) *minutes.ProcessResponse {
	if res == nil {
		return nil
	}
	resp := &minutes.ProcessResponse{
		Document: ToDocumentResponse(res.Document),
		Outcome: minutes.OutcomeResponse{
			Kind:     string(res.Outcome.Kind),
			Provider: res.Outcome.Provider,
			Cached:   res.Outcome.Cached,
			Cause:    res.Outcome.Cause,
		},
		Analysis:           ToAnalysisSummary(res.Analysis),
		TranscriptLocation: res.TranscriptLocation,
		Recording:          ToRecordingResponse(res.Recording),
	}
	if resp.Document != nil {
		resp.Document.HTML = res.HTML
	}
	return resp
}

// ToDocumentResponse converts an OutputDocument to DocumentResponse DTO
func ToDocumentResponse(d *entities.OutputDocument) *minutes.DocumentResponse {
	if d == nil {
		return nil
	}
	return &minutes.DocumentResponse{
		ID:          d.ID.String(),
		Title:       d.Title,
		Kind:        string(d.Kind),
		MeetingType: string(d.MeetingType),
		Markdown:    d.Markdown,
		IsOrder:     d.IsOrder,
		Folder:      string(d.Folder),
		Filename:    d.Filename,
		Location:    d.Location,
		Source:      string(d.Source),
		Notice:      d.Notice,
		GeneratedAt: d.GeneratedAt,
	}
}

// ToAnalysisSummary reduces an analysis to counts
func ToAnalysisSummary(r *entities.AnalysisResult) *minutes.AnalysisSummary {
	if r == nil {
		return nil
	}
	present := 0
	for _, a := range r.Attendance {
		if a.Present {
			present++
		}
	}
	return &minutes.AnalysisSummary{
		Summary:         r.Summary,
		Date:            r.Metadata.Date,
		Location:        r.Metadata.Location,
		Attendees:       len(r.Attendance),
		Present:         present,
		Motions:         len(r.Motions),
		ActionItems:     len(r.ActionItems),
		Decisions:       len(r.Decisions),
		CaseNumbers:     r.CaseNumbers,
		AdjournmentTime: r.AdjournmentTime,
	}
}

// ToRecordingResponse converts a Recording entity to RecordingResponse DTO
func ToRecordingResponse(r *entities.Recording) *minutes.RecordingResponse {
	if r == nil {
		return nil
	}
	return &minutes.RecordingResponse{
		ID:          r.ID.String(),
		Filename:    r.Filename,
		ContentType: r.ContentType,
		Size:        r.Size,
		Location:    r.Location,
		Status:      string(r.Status),
		UploadedAt:  r.UploadedAt,
	}
}

// ToNormalizeResponse converts normalized text and its mentions
func ToNormalizeResponse(original, normalized string, mentions []names.Mention) *minutes.NormalizeResponse {
	out := make([]*minutes.MentionResponse, len(mentions))
	for i, m := range mentions {
		out[i] = &minutes.MentionResponse{Name: m.Name, Written: m.Text, Offset: m.Start}
	}
	return &minutes.NormalizeResponse{
		Text:     normalized,
		Changed:  normalized != original,
		Mentions: out,
	}
}

// ToHistoryResponse converts history entries to their API shape
func ToHistoryResponse(entries []*entities.HistoryEntry) []*minutes.HistoryEntryResponse {
	out := make([]*minutes.HistoryEntryResponse, len(entries))
	for i, e := range entries {
		out[i] = &minutes.HistoryEntryResponse{
			DocumentID:  e.DocumentID.String(),
			Title:       e.Title,
			MeetingType: string(e.MeetingType),
			Folder:      string(e.Folder),
			Filename:    e.Filename,
			Location:    e.Location,
			IsOrder:     e.IsOrder,
			Source:      string(e.Source),
			CreatedAt:   e.CreatedAt,
		}
	}
	return out
}

// ToStoredFilesResponse converts stored files to their API shape
func ToStoredFilesResponse(files []*entities.StoredFile) []*minutes.StoredFileResponse {
	out := make([]*minutes.StoredFileResponse, len(files))
	for i, f := range files {
		out[i] = &minutes.StoredFileResponse{
			Name:       f.Name,
			Folder:     string(f.Folder),
			Size:       f.Size,
			Location:   f.Location,
			ModifiedAt: f.ModifiedAt,
		}
	}
	return out
}
