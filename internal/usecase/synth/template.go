package synth

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/cnmi-csc/busybee/internal/domain/entities"
)

// GeneratedLayout is how the generation date is written into documents
const GeneratedLayout = "January 2, 2006 3:04 PM"

var (
	tokenRe    = regexp.MustCompile(`\[[A-Z][A-Z0-9_]+\]`)
	numberedRe = regexp.MustCompile(`^(MOTION|ACTION_ITEM|DECISION)_(\d+)$`)
)

// Fill substitutes template tokens with values from the analysis in a single
// pass, so text copied from the transcript is never re-scanned. Tokens
// without data become "None"; numbered slots past the first that have no
// data are removed together with their line.
func Fill(template string, r *entities.AnalysisResult, generated time.Time) string {
	values := tokenValues(r, generated)
	numbered := map[string][]string{
		"MOTION":      make([]string, len(r.Motions)),
		"ACTION_ITEM": make([]string, len(r.ActionItems)),
		"DECISION":    r.Decisions,
	}
	for i, m := range r.Motions {
		numbered["MOTION"][i] = formatMotion(m)
	}
	for i, a := range r.ActionItems {
		numbered["ACTION_ITEM"][i] = formatActionItem(a)
	}

	// resolve returns the value for a token name, or false when the line
	// holding the token should be dropped.
	resolve := func(name string) (string, bool) {
		m := numberedRe.FindStringSubmatch(name)
		if m == nil {
			if v, ok := values[name]; ok {
				return v, true
			}
			return None, true
		}
		n, _ := strconv.Atoi(m[2])
		list := numbered[m[1]]
		switch {
		case n >= 1 && n <= len(list):
			return list[n-1], true
		case n <= 1:
			return None, true
		default:
			return "", false
		}
	}

	lines := strings.Split(template, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		keep := true
		var sb strings.Builder
		last := 0
		for _, loc := range tokenRe.FindAllStringIndex(line, -1) {
			v, ok := resolve(line[loc[0]+1 : loc[1]-1])
			if !ok {
				keep = false
				break
			}
			sb.WriteString(line[last:loc[0]])
			sb.WriteString(v)
			last = loc[1]
			// "10:42 a.m." before a sentence period keeps a single period
			if strings.HasSuffix(v, ".") && strings.HasPrefix(line[last:], ".") && !strings.HasPrefix(line[last:], "..") {
				last++
			}
		}
		if !keep {
			continue
		}
		sb.WriteString(line[last:])
		out = append(out, sb.String())
	}
	return strings.Join(out, "\n")
}

func tokenValues(r *entities.AnalysisResult, generated time.Time) map[string]string {
	meta := r.Metadata
	return map[string]string{
		"MEETING_TITLE":      orDefault(r.Title, None),
		"MEETING_DATE":       orDefault(meta.Date, None),
		"MEETING_TIME":       orDefault(meta.Time, None),
		"MEETING_LOCATION":   orDefault(meta.Location, None),
		"MEETING_TYPE":       meetingTypeLabel(r),
		"PRESIDING_OFFICER":  orDefault(meta.PresidingOfficer, None),
		"CALL_TO_ORDER_TIME": orDefault(meta.CallToOrderTime, None),
		"ATTENDANCE_STATUS":  attendanceStatus(r),
		"MEMBERS_PRESENT":    bullets(memberLines(r, true)),
		"MEMBERS_ABSENT":     bullets(memberLines(r, false)),
		"MOTIONS":            formatMotions(r.Motions),
		"ACTION_ITEMS":       formatActionItems(r.ActionItems),
		"DECISIONS":          bullets(r.Decisions),
		"DISCUSSION_TOPICS":  formatTopics(r.Discussion),
		"OLD_BUSINESS":       formatBusiness(r.OldBusiness),
		"NEW_BUSINESS":       formatBusiness(r.NewBusiness),
		"PUBLIC_COMMENT":     formatComments(r.PublicComments),
		"CASE_NUMBERS":       orDefault(strings.Join(r.CaseNumbers, ", "), None),
		"ADJOURNMENT_TIME":   orDefault(r.AdjournmentTime, None),
		"SUMMARY":            orDefault(r.Summary, None),
		"GENERATED_DATE":     generated.Format(GeneratedLayout),
	}
}
