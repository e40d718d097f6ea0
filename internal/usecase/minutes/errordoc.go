package minutes

import (
	"fmt"
	"strings"
	"time"

	"github.com/cnmi-csc/busybee/internal/domain/entities"
	"github.com/cnmi-csc/busybee/internal/usecase/synth"
)

// errorDocument is produced when the model fails and heuristic fallback is
// disabled. It never hides the failure.
func errorDocument(title, transcript, cause string, previewChars int, kind entities.DocumentKind, generated time.Time) *entities.OutputDocument {
	var sb strings.Builder
	sb.WriteString("# Processing Error\n\n")
	fmt.Fprintf(&sb, "**Meeting:** %s  \n", title)
	fmt.Fprintf(&sb, "**Cause:** %s\n\n", cause)
	sb.WriteString("Minutes could not be generated for this meeting. The transcript was saved; ")
	sb.WriteString("process it again later or switch to heuristic analysis.\n\n")
	sb.WriteString("## Transcript Preview\n\n```text\n")
	sb.WriteString(preview(transcript, previewChars))
	sb.WriteString("\n```\n\n")
	fmt.Fprintf(&sb, "---\n*Generated %s*\n", generated.Format(synth.GeneratedLayout))

	doc := entities.NewOutputDocument(title, kind, sb.String())
	doc.Source = entities.SourceError
	doc.Notice = cause
	doc.GeneratedAt = generated
	return doc
}

// preview returns at most n runes of text, marking the cut with "..."
func preview(text string, n int) string {
	text = strings.TrimSpace(text)
	runes := []rune(text)
	if n <= 0 || len(runes) <= n {
		return text
	}
	return strings.TrimSpace(string(runes[:n])) + "..."
}
