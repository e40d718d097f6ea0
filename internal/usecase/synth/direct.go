package synth

import (
	"fmt"
	"strings"
	"time"

	"github.com/cnmi-csc/busybee/internal/domain/entities"
)

// Assemble builds a document straight from the analysis. Only sections with
// data are written.
func Assemble(r *entities.AnalysisResult, kind entities.DocumentKind, generated time.Time) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", orDefault(r.Title, "Meeting Notes"))

	meta := r.Metadata
	header := [][2]string{
		{"Date", meta.Date},
		{"Time", meta.Time},
		{"Location", meta.Location},
		{"Presiding Officer", meta.PresidingOfficer},
	}
	if kind != entities.DocumentKindGeneral {
		header = append(header, [2]string{"Meeting Type", meetingTypeLabel(r)})
	}
	wroteHeader := false
	for _, h := range header {
		if h[1] != "" {
			fmt.Fprintf(&sb, "**%s:** %s  \n", h[0], h[1])
			wroteHeader = true
		}
	}
	if wroteHeader {
		sb.WriteString("\n")
	}

	for _, s := range sectionsFor(r, kind) {
		if s.body == "" {
			continue
		}
		fmt.Fprintf(&sb, "## %s\n\n%s\n\n", s.heading, s.body)
	}

	fmt.Fprintf(&sb, "---\n*Generated %s*\n", generated.Format(GeneratedLayout))
	return sb.String()
}

type section struct {
	heading string
	body    string
}

func sectionsFor(r *entities.AnalysisResult, kind entities.DocumentKind) []section {
	summary := section{"Summary", r.Summary}
	discussion := section{"Discussion", emptyIfNone(formatTopics(r.Discussion))}
	decisions := section{"Decisions", emptyIfNone(bullets(r.Decisions))}
	actions := section{"Action Items", emptyIfNone(formatActionItems(r.ActionItems))}

	switch kind {
	case entities.DocumentKindGeneral:
		return []section{summary, discussion, decisions, actions}
	case entities.DocumentKindCaseSummary:
		return []section{
			{"Case Numbers", emptyIfNone(bullets(r.CaseNumbers))},
			summary,
			{"Attendance", attendanceBody(r)},
			discussion,
			{"Motions", emptyIfNone(formatMotions(r.Motions))},
			{"Rulings and Decisions", decisions.body},
			actions,
			{"Adjournment", adjournmentBody(r)},
		}
	default:
		return []section{
			summary,
			{"Call to Order", callToOrderBody(r)},
			{"Attendance", attendanceBody(r)},
			{"Case Numbers", emptyIfNone(bullets(r.CaseNumbers))},
			{"Old Business", emptyIfNone(formatBusiness(r.OldBusiness))},
			{"New Business", emptyIfNone(formatBusiness(r.NewBusiness))},
			{"Motions", emptyIfNone(formatMotions(r.Motions))},
			discussion,
			decisions,
			actions,
			{"Public Comment", emptyIfNone(formatComments(r.PublicComments))},
			{"Adjournment", adjournmentBody(r)},
		}
	}
}

func callToOrderBody(r *entities.AnalysisResult) string {
	meta := r.Metadata
	switch {
	case meta.CallToOrderTime != "" && meta.PresidingOfficer != "":
		return fmt.Sprintf("The meeting was called to order at %s by %s.", meta.CallToOrderTime, meta.PresidingOfficer)
	case meta.CallToOrderTime != "":
		return fmt.Sprintf("The meeting was called to order at %s.", meta.CallToOrderTime)
	case meta.PresidingOfficer != "":
		return fmt.Sprintf("The meeting was called to order by %s.", meta.PresidingOfficer)
	}
	return ""
}

func attendanceBody(r *entities.AnalysisResult) string {
	if len(r.Attendance) == 0 {
		return ""
	}
	var parts []string
	if present := memberLines(r, true); len(present) > 0 {
		parts = append(parts, "**Present:**\n"+bullets(present))
	}
	if absent := memberLines(r, false); len(absent) > 0 {
		parts = append(parts, "**Absent:**\n"+bullets(absent))
	}
	return strings.Join(parts, "\n\n")
}

func adjournmentBody(r *entities.AnalysisResult) string {
	if r.AdjournmentTime == "" {
		return ""
	}
	return fmt.Sprintf("The meeting was adjourned at %s.", r.AdjournmentTime)
}

func emptyIfNone(s string) string {
	if s == None {
		return ""
	}
	return s
}
