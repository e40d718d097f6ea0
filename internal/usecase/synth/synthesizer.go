// Package synth renders an analysis into a markdown document, either by
// filling a template or by assembling sections directly.
package synth

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/cnmi-csc/busybee/internal/domain/entities"
	"github.com/cnmi-csc/busybee/internal/domain/repositories"
)

// Synthesizer turns an AnalysisResult into an OutputDocument
type Synthesizer struct {
	templates  repositories.TemplateRepository
	logger     *zap.Logger
	now        func() time.Time
	onFallback func(entities.DocumentKind)
}

// NewSynthesizer creates a synthesizer. templates may be nil, in which case
// every document is assembled directly.
func NewSynthesizer(templates repositories.TemplateRepository, logger *zap.Logger) *Synthesizer {
	return &Synthesizer{
		templates: templates,
		logger:    logger,
		now:       time.Now,
	}
}

// WithClock returns a copy of the synthesizer using now for generation dates
func (s *Synthesizer) WithClock(now func() time.Time) *Synthesizer {
	cp := *s
	cp.now = now
	return &cp
}

// OnTemplateFallback returns a copy that calls fn whenever a template could
// not be used and the document was assembled directly.
func (s *Synthesizer) OnTemplateFallback(fn func(entities.DocumentKind)) *Synthesizer {
	cp := *s
	cp.onFallback = fn
	return &cp
}

// Synthesize renders the analysis. A template that cannot be fetched is not
// an error: the document is assembled directly instead.
func (s *Synthesizer) Synthesize(ctx context.Context, r *entities.AnalysisResult, kind entities.DocumentKind) *entities.OutputDocument {
	generated := s.now()
	markdown := s.render(ctx, r, kind, generated)

	doc := entities.NewOutputDocument(r.Title, kind, markdown)
	doc.MeetingType = r.MeetingType
	doc.GeneratedAt = generated
	return doc
}

func (s *Synthesizer) render(ctx context.Context, r *entities.AnalysisResult, kind entities.DocumentKind, generated time.Time) string {
	if kind == entities.DocumentKindGeneral || s.templates == nil {
		return Assemble(r, kind, generated)
	}

	tmpl, err := s.templates.Get(ctx, kind)
	if err != nil || tmpl == "" {
		if s.logger != nil {
			s.logger.Warn("Template unavailable, assembling document directly",
				zap.String("kind", string(kind)),
				zap.Error(err),
			)
		}
		if s.onFallback != nil {
			s.onFallback(kind)
		}
		return Assemble(r, kind, generated)
	}
	return Fill(tmpl, r, generated)
}
