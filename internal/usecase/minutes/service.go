// Package minutes orchestrates one processing run: validation, name
// correction, analysis (model or heuristics), rendering, classification and
// storage.
package minutes

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cnmi-csc/busybee/errors"
	"github.com/cnmi-csc/busybee/internal/domain/entities"
	"github.com/cnmi-csc/busybee/internal/domain/repositories"
	"github.com/cnmi-csc/busybee/internal/infrastructure/metrics"
	"github.com/cnmi-csc/busybee/internal/infrastructure/storage"
	"github.com/cnmi-csc/busybee/internal/usecase/analysis"
	"github.com/cnmi-csc/busybee/internal/usecase/classify"
	"github.com/cnmi-csc/busybee/internal/usecase/names"
	"github.com/cnmi-csc/busybee/internal/usecase/synth"
	"github.com/cnmi-csc/busybee/pkg/llm"
)

// Mode selects the analysis path
type Mode string

const (
	ModeAI        Mode = "ai"
	ModeHeuristic Mode = "heuristic"
)

// cacheKeyPrefixLen is how much of the transcript goes into the cache key
const cacheKeyPrefixLen = 200

// Analyzer is the model client used for AI analysis
type Analyzer interface {
	Analyze(ctx context.Context, req llm.Request) (*llm.Response, error)
	Provider() string
}

// Transcriber turns a recording into a transcript
type Transcriber interface {
	Transcribe(ctx context.Context, recordingID uuid.UUID, audio io.Reader) (*entities.Transcript, error)
}

// Request is one transcript to process
type Request struct {
	Title          string
	Transcript     string
	MeetingType    entities.MeetingType // detected when empty
	Kind           entities.DocumentKind
	Mode           Mode
	NormalizeNames *bool
}

// RecordingRequest is one uploaded recording to transcribe and process
type RecordingRequest struct {
	Request
	Filename    string
	ContentType string
	Body        io.Reader
}

// Result is everything a processing run produced
type Result struct {
	Document           *entities.OutputDocument `json:"document"`
	Analysis           *entities.AnalysisResult `json:"analysis"`
	Outcome            AnalysisOutcome          `json:"outcome"`
	TranscriptLocation string                   `json:"transcript_location,omitempty"`
	Recording          *entities.Recording      `json:"recording,omitempty"`
	HTML               string                   `json:"html,omitempty"`
}

// Service defines minutes processing methods
type Service interface {
	Process(ctx context.Context, req *Request) (*Result, error)
	Preview(ctx context.Context, req *Request) (*Result, error)
	ProcessRecording(ctx context.Context, req *RecordingRequest) (*Result, error)
	Normalize(text string) (string, []names.Mention)
	Classify(title, text string) (bool, entities.Folder)
	History(ctx context.Context, limit int64) ([]*entities.HistoryEntry, error)
	Documents(ctx context.Context, folder entities.Folder) ([]*entities.StoredFile, error)
	Template(ctx context.Context, kind entities.DocumentKind) (string, error)
}

// Dependencies are the collaborators of the service. Analyzer, Cache,
// Documents, History, Templates, Transcriber and Metrics may be nil.
type Dependencies struct {
	Matcher     *names.Matcher
	Aggregator  *analysis.Aggregator
	Synthesizer *synth.Synthesizer
	Analyzer    Analyzer
	Cache       repositories.CacheRepository
	Documents   repositories.DocumentRepository
	History     repositories.HistoryRepository
	Templates   repositories.TemplateRepository
	Transcriber Transcriber
	Metrics     *metrics.Metrics
	Logger      *zap.Logger
}

// Settings are the processing defaults
type Settings struct {
	NormalizeNames bool
	DefaultMode    Mode
	CacheTTL       time.Duration
	Fallback       bool // use heuristics when the model fails
	PreviewChars   int
}

type minutesService struct {
	deps     Dependencies
	settings Settings
	logger   *zap.Logger
	now      func() time.Time
}

// NewService constructs the minutes service
func NewService(deps Dependencies, settings Settings) Service {
	if settings.DefaultMode == "" {
		settings.DefaultMode = ModeAI
	}
	if settings.PreviewChars <= 0 {
		settings.PreviewChars = 500
	}
	s := &minutesService{
		deps:     deps,
		settings: settings,
		logger:   deps.Logger,
		now:      time.Now,
	}
	if deps.Synthesizer != nil && deps.Metrics != nil {
		s.deps.Synthesizer = deps.Synthesizer.OnTemplateFallback(func(kind entities.DocumentKind) {
			deps.Metrics.ObserveTemplateFallback(string(kind))
		})
	}
	return s
}

// Process analyzes a transcript, renders the document and stores the
// document and the transcript in their folders.
func (s *minutesService) Process(ctx context.Context, req *Request) (*Result, error) {
	res, text, err := s.run(ctx, req)
	if err != nil {
		return nil, err
	}
	if err := s.store(ctx, req.Title, text, res); err != nil {
		return nil, err
	}
	return res, nil
}

// Preview runs the same pipeline without writing anything and adds an HTML rendering
func (s *minutesService) Preview(ctx context.Context, req *Request) (*Result, error) {
	res, _, err := s.run(ctx, req)
	if err != nil {
		return nil, err
	}
	html, err := synth.RenderHTML(res.Document.Markdown)
	if err != nil {
		if s.logger != nil {
			s.logger.Warn("⚠️ HTML preview failed", zap.Error(err))
		}
	} else {
		res.HTML = html
	}
	return res, nil
}

// ProcessRecording stores an uploaded recording, transcribes it and processes
// the transcript.
func (s *minutesService) ProcessRecording(ctx context.Context, req *RecordingRequest) (*Result, error) {
	if s.deps.Transcriber == nil {
		return nil, errors.ErrAIServiceUnavailable("assemblyai")
	}
	if req == nil || req.Body == nil {
		return nil, errors.ErrRecordingRequired()
	}
	if strings.TrimSpace(req.Title) == "" {
		return nil, errors.ErrTitleRequired()
	}

	data, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, errors.ErrInvalidArgument("could not read recording")
	}
	if len(data) == 0 {
		return nil, errors.ErrRecordingRequired()
	}

	recording := entities.NewRecording(req.Title, req.ContentType, int64(len(data)))
	recording.Filename = storage.Filename(req.Title, s.now(), storage.SuffixRecording(filepath.Ext(req.Filename)))

	if s.deps.Documents != nil {
		location, err := s.deps.Documents.Save(ctx, entities.FolderRecordings, recording.Filename,
			bytes.NewReader(data), recording.Size, req.ContentType)
		if err != nil {
			return nil, errors.ErrStorageFailed("save recording", err)
		}
		recording.Location = location
	}

	transcript, err := s.deps.Transcriber.Transcribe(ctx, recording.ID, bytes.NewReader(data))
	if err != nil {
		recording.Status = entities.RecordingStatusFailed
		recording.Error = err.Error()
		if s.logger != nil {
			s.logger.Error("❌ Transcription failed",
				zap.String("recording_id", recording.ID.String()),
				zap.Error(err),
			)
		}
		return nil, errors.ErrAITranscriptionFailed(err)
	}
	recording.Status = entities.RecordingStatusTranscribed

	inner := req.Request
	inner.Transcript = transcript.SpeakerText()
	res, err := s.Process(ctx, &inner)
	if err != nil {
		return nil, err
	}
	recording.Status = entities.RecordingStatusProcessed
	res.Recording = recording
	return res, nil
}

// Normalize corrects roster names in text
func (s *minutesService) Normalize(text string) (string, []names.Mention) {
	if s.deps.Matcher == nil {
		return text, nil
	}
	return s.deps.Matcher.Normalize(text), s.deps.Matcher.Mentions(text)
}

// Classify decides order vs note for an already written document
func (s *minutesService) Classify(title, text string) (bool, entities.Folder) {
	isOrder := classify.IsOrderText(title, text)
	return isOrder, classify.FolderFor(isOrder)
}

// History lists processed documents, newest first
func (s *minutesService) History(ctx context.Context, limit int64) ([]*entities.HistoryEntry, error) {
	if s.deps.History == nil {
		return []*entities.HistoryEntry{}, nil
	}
	entries, err := s.deps.History.List(ctx, limit)
	if err != nil {
		return nil, errors.ErrCacheFailed("list history", err)
	}
	return entries, nil
}

// Documents lists the files stored in one output folder, newest first
func (s *minutesService) Documents(ctx context.Context, folder entities.Folder) ([]*entities.StoredFile, error) {
	if !folder.Valid() {
		return nil, errors.ErrInvalidArgument(fmt.Sprintf("unknown folder %q", folder))
	}
	if s.deps.Documents == nil {
		return []*entities.StoredFile{}, nil
	}
	files, err := s.deps.Documents.List(ctx, folder)
	if err != nil {
		return nil, errors.ErrStorageFailed("list documents", err)
	}
	return files, nil
}

// Template returns the raw template for a document kind
func (s *minutesService) Template(ctx context.Context, kind entities.DocumentKind) (string, error) {
	if !kind.Valid() {
		return "", errors.ErrInvalidDocumentKind(string(kind))
	}
	if s.deps.Templates == nil {
		return "", errors.ErrTemplateNotFound(string(kind))
	}
	body, err := s.deps.Templates.Get(ctx, kind)
	if err != nil {
		return "", errors.ErrTemplateNotFound(string(kind))
	}
	return body, nil
}

// run produces the document without storing it. It returns the analyzed text.
func (s *minutesService) run(ctx context.Context, req *Request) (*Result, string, error) {
	start := s.now()
	if err := validate(req); err != nil {
		return nil, "", err
	}

	text := req.Transcript
	if s.normalize(req) && s.deps.Matcher != nil {
		text = s.deps.Matcher.Normalize(text)
	}

	result := s.deps.Aggregator.Analyze(text, req.Title)
	if req.MeetingType != "" {
		result.MeetingType = req.MeetingType
	}
	kind := req.Kind
	if kind == "" {
		kind = entities.DefaultDocumentKind(result.MeetingType)
	}

	mode := req.Mode
	if mode == "" {
		mode = s.settings.DefaultMode
	}
	outcome := s.analyze(ctx, mode, req.Title, text, result)

	var doc *entities.OutputDocument
	if outcome.Kind == OutcomeLLMFailed {
		doc = errorDocument(req.Title, text, outcome.Cause, s.settings.PreviewChars, kind, s.now())
		doc.MeetingType = result.MeetingType
	} else {
		doc = s.deps.Synthesizer.Synthesize(ctx, result, kind)
		doc.Source = entities.SourceHeuristic
		if outcome.UsedLLM() {
			doc.Source = entities.SourceLLM
		}
		doc.Notice = outcome.Cause
		doc.IsOrder = classify.IsOrder(result)
	}
	doc.Folder = classify.FolderFor(doc.IsOrder)
	suffix := storage.SuffixNotes
	if doc.IsOrder {
		suffix = storage.SuffixOrder
	}
	doc.Filename = storage.Filename(req.Title, doc.GeneratedAt, suffix)

	s.deps.Metrics.ObserveDuration(string(mode), start)
	if s.logger != nil {
		s.logger.Info("✅ Minutes generated",
			zap.String("document_id", doc.ID.String()),
			zap.String("title", req.Title),
			zap.String("meeting_type", string(result.MeetingType)),
			zap.String("outcome", string(outcome.Kind)),
			zap.Bool("is_order", doc.IsOrder),
		)
	}
	return &Result{Document: doc, Analysis: result, Outcome: outcome}, text, nil
}

// analyze runs the model when asked to and merges its answer into result.
// Heuristic analysis has already been done, so fallback needs no extra work.
func (s *minutesService) analyze(ctx context.Context, mode Mode, title, text string, result *entities.AnalysisResult) AnalysisOutcome {
	if mode == ModeHeuristic {
		return AnalysisOutcome{Kind: OutcomeHeuristic}
	}
	if s.deps.Analyzer == nil {
		return AnalysisOutcome{Kind: OutcomeHeuristicFallback, Cause: "No AI service is configured; minutes were generated by pattern analysis."}
	}

	provider := s.deps.Analyzer.Provider()
	resp, cached, err := s.callLLM(ctx, title, text, result.MeetingType)
	if err == nil {
		s.deps.Metrics.ObserveLLM(provider, "succeeded")
		mergeResponse(result, resp, s.deps.Matcher)
		return AnalysisOutcome{Kind: OutcomeLLMSucceeded, Provider: provider, Cached: cached}
	}

	cause := llm.DescribeFailure(err)
	if s.logger != nil {
		s.logger.Warn("⚠️ LLM analysis failed",
			zap.String("provider", provider),
			zap.String("failure", string(llm.Classify(err))),
			zap.Bool("fallback", s.settings.Fallback),
			zap.Error(err),
		)
	}
	if s.settings.Fallback {
		s.deps.Metrics.ObserveLLM(provider, "fallback")
		return AnalysisOutcome{
			Kind:     OutcomeHeuristicFallback,
			Provider: provider,
			Cause:    cause + " Minutes were generated by pattern analysis.",
			Err:      err,
		}
	}
	s.deps.Metrics.ObserveLLM(provider, "failed")
	return AnalysisOutcome{Kind: OutcomeLLMFailed, Provider: provider, Cause: cause, Err: err}
}

// callLLM consults the cache before calling the model
func (s *minutesService) callLLM(ctx context.Context, title, text string, meetingType entities.MeetingType) (*llm.Response, bool, error) {
	key := cacheKey(meetingType, text)
	if s.deps.Cache != nil {
		value, ok, err := s.deps.Cache.Get(ctx, key)
		if err != nil && s.logger != nil {
			s.logger.Warn("⚠️ Cache lookup failed", zap.Error(err))
		}
		s.deps.Metrics.ObserveCache(ok)
		if ok {
			var resp llm.Response
			if err := json.Unmarshal([]byte(value), &resp); err == nil {
				return &resp, true, nil
			}
		}
	}

	resp, err := s.deps.Analyzer.Analyze(ctx, llm.Request{
		Transcript:  text,
		Title:       title,
		MeetingType: string(meetingType),
	})
	if err != nil {
		return nil, false, err
	}

	if s.deps.Cache != nil && s.settings.CacheTTL > 0 {
		if data, err := json.Marshal(resp); err == nil {
			if err := s.deps.Cache.Set(ctx, key, string(data), s.settings.CacheTTL); err != nil && s.logger != nil {
				s.logger.Warn("⚠️ Cache store failed", zap.Error(err))
			}
		}
	}
	return resp, false, nil
}

// store writes the transcript and the document, then records history
func (s *minutesService) store(ctx context.Context, title, text string, res *Result) error {
	doc := res.Document
	if s.deps.Documents != nil {
		transcriptName := storage.Filename(title, doc.GeneratedAt, storage.SuffixTranscript)
		location, err := s.deps.Documents.Save(ctx, entities.FolderTranscripts, transcriptName,
			strings.NewReader(text), int64(len(text)), "text/plain; charset=utf-8")
		if err != nil {
			return errors.ErrStorageFailed("save transcript", err)
		}
		res.TranscriptLocation = location

		location, err = s.deps.Documents.Save(ctx, doc.Folder, doc.Filename,
			strings.NewReader(doc.Markdown), int64(len(doc.Markdown)), "text/markdown; charset=utf-8")
		if err != nil {
			return errors.ErrStorageFailed("save document", err)
		}
		doc.Location = location
	}

	s.deps.Metrics.ObserveDocument(string(doc.Source), string(doc.Folder))

	if s.deps.History != nil {
		entry := &entities.HistoryEntry{
			DocumentID:  doc.ID,
			Title:       doc.Title,
			MeetingType: doc.MeetingType,
			Folder:      doc.Folder,
			Filename:    doc.Filename,
			Location:    doc.Location,
			IsOrder:     doc.IsOrder,
			Source:      doc.Source,
			CreatedAt:   doc.GeneratedAt,
		}
		if err := s.deps.History.Append(ctx, entry); err != nil && s.logger != nil {
			s.logger.Warn("⚠️ Failed to record history",
				zap.String("document_id", doc.ID.String()),
				zap.Error(err),
			)
		}
	}
	return nil
}

func (s *minutesService) normalize(req *Request) bool {
	if req.NormalizeNames != nil {
		return *req.NormalizeNames
	}
	return s.settings.NormalizeNames
}

func validate(req *Request) error {
	if req == nil {
		return errors.ErrInvalidPayload()
	}
	if strings.TrimSpace(req.Title) == "" {
		return errors.ErrTitleRequired()
	}
	if strings.TrimSpace(req.Transcript) == "" {
		return errors.ErrTranscriptRequired()
	}
	if req.MeetingType != "" && !req.MeetingType.Valid() {
		return errors.ErrInvalidMeetingType(string(req.MeetingType))
	}
	if req.Kind != "" && !req.Kind.Valid() {
		return errors.ErrInvalidDocumentKind(string(req.Kind))
	}
	switch req.Mode {
	case "", ModeAI, ModeHeuristic:
	default:
		return errors.ErrInvalidArgument(fmt.Sprintf("unsupported mode %q", req.Mode))
	}
	return nil
}

// cacheKey is the meeting type plus the first characters of the transcript
func cacheKey(meetingType entities.MeetingType, text string) string {
	runes := []rune(text)
	if len(runes) > cacheKeyPrefixLen {
		runes = runes[:cacheKeyPrefixLen]
	}
	return string(meetingType) + ":" + string(runes)
}

