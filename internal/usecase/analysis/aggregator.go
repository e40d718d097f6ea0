package analysis

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/cnmi-csc/busybee/internal/domain/entities"
	"github.com/cnmi-csc/busybee/internal/usecase/extract"
)

// Aggregator runs every extractor over one transcript and packs the results.
// Overlaps between extractors are kept as found.
type Aggregator struct {
	extractor *extract.Extractor
	logger    *zap.Logger
}

// NewAggregator creates an aggregator
func NewAggregator(extractor *extract.Extractor, logger *zap.Logger) *Aggregator {
	return &Aggregator{
		extractor: extractor,
		logger:    logger,
	}
}

// Analyze never fails: an extractor that panics contributes nothing and the
// rest of the result is still returned.
func (a *Aggregator) Analyze(transcript, title string) *entities.AnalysisResult {
	result := entities.NewAnalysisResult(title)
	result.SourceText = transcript
	e := a.extractor

	a.run("metadata", func() { result.Metadata = e.Metadata(transcript) })
	if result.Metadata.Date == "" {
		result.Metadata = e.Metadata("")
	}
	a.run("meeting_type", func() { result.MeetingType = e.MeetingType(transcript, title) })
	a.run("attendance", func() { result.Attendance = e.Attendance(transcript) })
	a.run("motions", func() { result.Motions = e.Motions(transcript) })
	a.run("action_items", func() { result.ActionItems = e.ActionItems(transcript) })
	a.run("decisions", func() { result.Decisions = e.Decisions(transcript) })
	a.run("discussion", func() { result.Discussion = e.DiscussionTopics(transcript) })
	a.run("old_business", func() { result.OldBusiness = e.OldBusiness(transcript) })
	a.run("new_business", func() { result.NewBusiness = e.NewBusiness(transcript) })
	a.run("public_comment", func() { result.PublicComments = e.PublicComments(transcript) })
	a.run("case_numbers", func() { result.CaseNumbers = e.CaseNumbers(transcript) })
	a.run("adjournment", func() { result.AdjournmentTime = e.Adjournment(transcript) })

	result.Summary = Summarize(result)

	if a.logger != nil {
		a.logger.Debug("Transcript analyzed",
			zap.String("title", title),
			zap.String("meeting_type", string(result.MeetingType)),
			zap.Int("motions", len(result.Motions)),
			zap.Int("action_items", len(result.ActionItems)),
			zap.Int("decisions", len(result.Decisions)),
		)
	}
	return result
}

func (a *Aggregator) run(name string, fn func()) {
	defer func() {
		if r := recover(); r != nil && a.logger != nil {
			a.logger.Error("Extractor panicked",
				zap.String("extractor", name),
				zap.Any("panic", r),
			)
		}
	}()
	fn()
}

// Summarize writes a short plain-language overview of what was found. An
// empty analysis gives an empty summary.
func Summarize(r *entities.AnalysisResult) string {
	var parts []string

	if len(r.Attendance) > 0 {
		parts = append(parts, fmt.Sprintf("%d of %d roster members were present.", len(r.Present()), len(r.Attendance)))
	}
	if n := len(r.Motions); n > 0 {
		carried := 0
		for _, m := range r.Motions {
			if m.Result == entities.MotionResultCarried || m.Result == entities.MotionResultUnanimous {
				carried++
			}
		}
		parts = append(parts, fmt.Sprintf("%s considered, %d carried.", plural(n, "motion was", "motions were"), carried))
	}
	if n := len(r.Decisions); n > 0 {
		parts = append(parts, fmt.Sprintf("%s recorded.", plural(n, "decision was", "decisions were")))
	}
	if n := len(r.ActionItems); n > 0 {
		parts = append(parts, fmt.Sprintf("%s assigned.", plural(n, "action item was", "action items were")))
	}
	if len(r.CaseNumbers) > 0 {
		parts = append(parts, fmt.Sprintf("Cases referenced: %s.", strings.Join(r.CaseNumbers, ", ")))
	}
	return strings.Join(parts, " ")
}

func plural(n int, one, many string) string {
	if n == 1 {
		return "1 " + one
	}
	return fmt.Sprintf("%d %s", n, many)
}
