// Package extract holds the heuristic extractors that pull structured facts
// out of free meeting text. Every extractor is independent and returns an
// empty value when it finds nothing.
package extract

import (
	"time"

	"github.com/cnmi-csc/busybee/internal/usecase/names"
)

// Extractor runs pattern extractors against a transcript using a fixed roster
type Extractor struct {
	names *names.Matcher
	now   func() time.Time
}

// Option configures an Extractor
type Option func(*Extractor)

// WithClock overrides the clock used for default dates
func WithClock(now func() time.Time) Option {
	return func(e *Extractor) {
		if now != nil {
			e.now = now
		}
	}
}

// New creates an Extractor for the roster held by matcher
func New(matcher *names.Matcher, opts ...Option) *Extractor {
	e := &Extractor{
		names: matcher,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Names returns the roster matcher
func (e *Extractor) Names() *names.Matcher {
	return e.names
}

// mentionsIn returns canonical names mentioned in text[start:end] with
// offsets relative to text.
func (e *Extractor) mentionsIn(text string, start, end int) []names.Mention {
	if start < 0 {
		start = 0
	}
	if end > len(text) {
		end = len(text)
	}
	if start >= end {
		return nil
	}
	mentions := e.names.Mentions(text[start:end])
	for i := range mentions {
		mentions[i].Start += start
		mentions[i].End += start
	}
	return mentions
}

// speaker resolves the speaker label of the line at pos to a canonical name
// when possible.
func (e *Extractor) speaker(text string, pos int) string {
	label := speakerLabel(text, pos)
	if label == "" {
		return ""
	}
	if name, ok := e.names.Resolve(label); ok {
		return name
	}
	return label
}
