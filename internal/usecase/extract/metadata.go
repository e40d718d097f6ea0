package extract

import (
	"regexp"
	"strings"

	"github.com/cnmi-csc/busybee/internal/domain/entities"
)

// DateLayout is how default meeting dates are written
const DateLayout = "January 2, 2006"

const months = `January|February|March|April|May|June|July|August|September|October|November|December`

// datePatterns are tried in order; the first match wins.
var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b((?:` + months + `)\s+\d{1,2}(?:st|nd|rd|th)?,?\s+\d{4})\b`),
	regexp.MustCompile(`(?i)\b(\d{1,2}(?:st|nd|rd|th)?\s+(?:of\s+)?(?:` + months + `),?\s+\d{4})\b`),
	regexp.MustCompile(`\b(\d{4}-\d{2}-\d{2})\b`),
	regexp.MustCompile(`\b(\d{1,2}/\d{1,2}/\d{2,4})\b`),
}

var (
	callToOrderRe = regexp.MustCompile(`(?i)\bcall(?:ed|ing|s)?\s+(?:the\s+)?(?:(?:regular|special)\s+)?(?:meeting|session|hearing)?\s*to\s+order\b`)
	convenedRe    = regexp.MustCompile(`(?i)\b(?:meeting|session|hearing)\s+(?:began|started|convened|commenced)\b`)
	locationRe    = regexp.MustCompile(`\b(?i:held|convened|located|meeting\s+place\s+is)\s+(?i:at|in)\s+(?:(?i:the)\s+)?([A-Z][^.;\n]{2,80})`)
	locationLabel = regexp.MustCompile(`(?i)\blocation\s*:\s*([^\n.;]{3,80})`)
	locationCut   = regexp.MustCompile(`(?i)\s+(?:on|at|beginning|starting|from|with)\s+`)
	meetingKindRe = regexp.MustCompile(`(?i)\b(?:(regular|special|emergency|annual)\s+(?:meeting|session)|(public\s+hearing|status\s+conference|work\s+session|executive\s+session|hearing))\b`)
	presidedRe    = regexp.MustCompile(`(?i)\b(?:presided|presiding|chaired)\b`)

	caseMeetingRe  = regexp.MustCompile(`(?i)\b(?:csc-\d|case\s+(?:number|no\.?)|appeal|appellant|hearing\s+officer|respondent|petitioner|status\s+conference)`)
	boardMeetingRe = regexp.MustCompile(`(?i)\b(?:commission(?:ers?)?|board|regular\s+meeting|special\s+meeting|quorum|roll\s*call|motion)\b`)

	caseNumberRe  = regexp.MustCompile(`(?i)\b(CSC[-\s]?\d{2,4}[-\s]\d{2,4}(?:-[A-Z0-9]+)?)\b`)
	caseLabeledRe = regexp.MustCompile(`(?i)\bcase\s+(?:number|no\.?)\s*[:#]?\s*([A-Z0-9][A-Z0-9\-]{2,20})`)

	adjournRe = regexp.MustCompile(`(?i)\b(?:adjourn(?:ed|s|ment)?|concluded|meeting\s+(?:was\s+|is\s+)?closed|meeting\s+ended)\b`)
)

// Metadata extracts date, time, location, meeting type, presiding officer and
// call-to-order time. A missing date defaults to today.
func (e *Extractor) Metadata(text string) entities.MeetingMetadata {
	meta := entities.MeetingMetadata{Date: e.now().Format(DateLayout)}

	for _, re := range datePatterns {
		if m := re.FindStringSubmatch(text); m != nil {
			meta.Date = collapse(m[1])
			break
		}
	}

	spans := sentences(text)
	if loc := callToOrderRe.FindStringIndex(text); loc != nil {
		sentence := sentenceAt(spans, loc[0])
		meta.CallToOrderTime = firstTime(sentence.Text)
		if before := e.mentionsIn(text, sentence.Start, loc[0]); len(before) > 0 {
			meta.PresidingOfficer = before[len(before)-1].Name
		} else if after := e.mentionsIn(text, loc[1], sentence.End); len(after) > 0 {
			meta.PresidingOfficer = after[0].Name
		} else {
			meta.PresidingOfficer = e.speaker(text, loc[0])
		}
	}
	if meta.PresidingOfficer == "" {
		if loc := presidedRe.FindStringIndex(text); loc != nil {
			sentence := sentenceAt(spans, loc[0])
			if mentions := e.mentionsIn(text, sentence.Start, sentence.End); len(mentions) > 0 {
				meta.PresidingOfficer = mentions[0].Name
			}
		}
	}

	meta.Time = meta.CallToOrderTime
	if meta.Time == "" {
		if loc := convenedRe.FindStringIndex(text); loc != nil {
			meta.Time = firstTime(sentenceAt(spans, loc[0]).Text)
		}
	}
	if meta.Time == "" && len(text) > 0 {
		meta.Time = firstTime(text[:clamp(500, 0, len(text))])
	}

	meta.Location = location(text)
	if m := meetingKindRe.FindStringSubmatch(text); m != nil {
		kind := m[1]
		if kind != "" {
			kind += " meeting"
		} else {
			kind = m[2]
		}
		meta.Type = titleCase(collapse(kind))
	}
	return meta
}

func location(text string) string {
	var raw string
	if m := locationLabel.FindStringSubmatch(text); m != nil {
		raw = m[1]
	} else if m := locationRe.FindStringSubmatch(text); m != nil {
		raw = m[1]
	}
	if loc := locationCut.FindStringIndex(raw); loc != nil {
		raw = raw[:loc[0]]
	}
	return strings.TrimRight(collapse(raw), " ,")
}

// MeetingType guesses whether a transcript is a case hearing, a board
// meeting, or a general meeting.
func (e *Extractor) MeetingType(text, title string) entities.MeetingType {
	all := title + "\n" + text
	switch {
	case caseMeetingRe.MatchString(all):
		return entities.MeetingTypeCase
	case boardMeetingRe.MatchString(all):
		return entities.MeetingTypeBoard
	default:
		return entities.MeetingTypeGeneral
	}
}

// CaseNumbers returns commission case numbers in order of appearance
func (e *Extractor) CaseNumbers(text string) []string {
	numbers := []string{}
	seen := make(map[string]bool)
	for _, m := range caseNumberRe.FindAllStringSubmatch(text, -1) {
		n := strings.ToUpper(strings.Join(strings.Fields(m[1]), "-"))
		numbers = appendUnique(numbers, seen, n)
	}
	for _, m := range caseLabeledRe.FindAllStringSubmatch(text, -1) {
		if strings.ContainsAny(m[1], "0123456789") {
			numbers = appendUnique(numbers, seen, strings.ToUpper(strings.TrimRight(m[1], "-")))
		}
	}
	return numbers
}

// Adjournment returns the time of the last adjournment phrase that carries
// a time, or "" when none does.
func (e *Extractor) Adjournment(text string) string {
	spans := sentences(text)
	found := ""
	for _, loc := range adjournRe.FindAllStringIndex(text, -1) {
		sentence := sentenceAt(spans, loc[0])
		after := text[loc[1]:clamp(sentence.End, loc[1], len(text))]
		if t := firstTime(after); t != "" {
			found = t
			continue
		}
		if t := firstTime(sentence.Text); t != "" {
			found = t
		}
	}
	return found
}

func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		words[i] = capitalize(w)
	}
	return strings.Join(words, " ")
}
