package extract

import (
	"regexp"

	"github.com/cnmi-csc/busybee/internal/domain/entities"
	"github.com/cnmi-csc/busybee/internal/usecase/names"
)

const (
	rollCallSpan  = 800
	stampLookback = 120
)

var (
	rollCallRe  = regexp.MustCompile(`(?i)\b(?:roll\s*call|attendance|members\s+present|commissioners\s+present|present\s*:)`)
	rollCallEnd = regexp.MustCompile(`(?i)\b(?:approval\s+of|old\s+business|new\s+business|unfinished\s+business|public\s+comments?|first\s+item|agenda\s+item)\b`)
	absentRe    = regexp.MustCompile(`(?i)\b(?:absent|excused|not\s+present|unable\s+to\s+attend)\b`)
	presentRe   = regexp.MustCompile(`(?i)\b(?:present|here|in\s+attendance)\b`)
	absentAfter = regexp.MustCompile(`(?i)^[\s,]*(?:(?:is|was|were|is\s+listed\s+as|has\s+been)\s+)?(?:absent|excused|not\s+present|unable\s+to\s+attend)\b`)
	arrivalRe   = regexp.MustCompile(`(?i)\b(?:arrived|arrives|joined|joins)\b`)
	departureRe = regexp.MustCompile(`(?i)\b(?:left|leaves|departed|departs|excused\s+(?:himself|herself|themselves))\b`)
)

// Attendance reports, for every roster member, whether they attended. It
// returns an empty list when no roster member is mentioned at all.
func (e *Extractor) Attendance(text string) []entities.AttendanceRecord {
	records := []entities.AttendanceRecord{}
	all := e.names.Mentions(text)
	if len(all) == 0 {
		return records
	}

	scope := all
	if loc := rollCallRe.FindStringIndex(text); loc != nil {
		end := clamp(loc[0]+rollCallSpan, 0, len(text))
		if stop := rollCallEnd.FindStringIndex(text[loc[1]:end]); stop != nil {
			end = loc[1] + stop[0]
		}
		if inSection := e.mentionsIn(text, loc[0], end); len(inSection) > 0 {
			scope = inSection
		}
	}

	spans := sentences(text)
	for _, person := range e.names.Roster().People {
		record := entities.AttendanceRecord{Name: person.Name, Role: person.Role}

		for _, m := range scope {
			if m.Name != person.Name {
				continue
			}
			if !markedAbsent(text, sentenceAt(spans, m.Start), m) {
				record.Present = true
				break
			}
		}

		first := true
		for _, m := range all {
			if m.Name != person.Name {
				continue
			}
			if first {
				record.FirstMention = stampBefore(text, m.Start)
				first = false
			}
			sentence := sentenceAt(spans, m.Start)
			if record.ArrivalTime == "" && arrivalRe.MatchString(sentence.Text) {
				record.ArrivalTime = firstTime(sentence.Text)
			}
			if record.DepartureTime == "" && departureRe.MatchString(sentence.Text) {
				record.DepartureTime = firstTime(sentence.Text)
			}
		}

		if record.ArrivalTime != "" {
			record.Present = true
		}
		records = append(records, record)
	}
	return records
}

// markedAbsent reports whether the sentence around a mention lists the person
// as absent ("Absent: X" or "X was excused").
func markedAbsent(text string, sentence span, m names.Mention) bool {
	if absentAfter.MatchString(text[m.End:clamp(sentence.End, m.End, len(text))]) {
		return true
	}
	before := text[clamp(sentence.Start, 0, m.Start):m.Start]
	absentLocs := absentRe.FindAllStringIndex(before, -1)
	if len(absentLocs) == 0 {
		return false
	}
	lastAbsent := absentLocs[len(absentLocs)-1][0]
	for _, loc := range presentRe.FindAllStringIndex(before, -1) {
		if loc[0] > lastAbsent {
			return false
		}
	}
	return true
}

// stampBefore finds the nearest time on the same line before pos
func stampBefore(text string, pos int) string {
	lineStart := 0
	for i := pos - 1; i >= 0; i-- {
		if text[i] == '\n' {
			lineStart = i + 1
			break
		}
	}
	from := pos - stampLookback
	if from < lineStart {
		from = lineStart
	}
	locs := timeRe.FindAllStringIndex(text[from:pos], -1)
	if len(locs) == 0 {
		return ""
	}
	last := locs[len(locs)-1]
	return cleanTime(text[from+last[0] : from+last[1]])
}
