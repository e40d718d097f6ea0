package extract

import (
	"regexp"
	"strings"

	"github.com/cnmi-csc/busybee/internal/domain/entities"
	"github.com/cnmi-csc/busybee/internal/usecase/names"
)

const (
	motionWindow     = 600
	solicitWindow    = 400
	discussionMaxLen = 300
)

var (
	motionTriggerRe = regexp.MustCompile(`(?i)\b(?:i\s+(?:would\s+like\s+to\s+)?move|i'd\s+like\s+to\s+move|so\s+moved?|(?:make|makes|made)\s+a\s+motion|motion\s+(?:to|that|for)|moved?\s+(?:to|that)|moves\s+(?:to|that))\b`)
	firstPersonRe   = regexp.MustCompile(`(?i)^(?:i\b|i'd\b|so\s+move)`)
	restatementRe   = regexp.MustCompile(`(?i)\b(?:there\s+is|we\s+have|have\s+a|the)\s+motion\b|\bmotion\s+on\s+the\s+floor\b|\bmotion\s+(?:has\s+been|was)\s+(?:made|moved|seconded)\b`)
	agendaMoveRe    = regexp.MustCompile(`(?i)^\s*(?:on\s+)?(?:the\s+)?(?:next\b|item\b|new\s+business|old\s+business|public\s+comment|agenda\s+item|on\s+to)`)
	leadingLinkRe   = regexp.MustCompile(`(?i)^(?:to|that|for|we|the\s+commission)\s+`)
	byNameRe        = regexp.MustCompile(`(?i)\bby\s*$`)
	secondClauseRe  = regexp.MustCompile(`(?i),?\s+(?:and\s+)?(?:seconded|second(?:ed)?\s+by)\b`)
	makerClauseRe   = regexp.MustCompile(`(?i),?\s+(?:(?:was|were|has\s+been)\s+)?(?:made|moved|offered|introduced)\s+by\b`)
	passiveMotionRe = regexp.MustCompile(`(?i)\bmotion\s+(?:to|that|for)\b.*?\b(?:made|moved|offered|introduced)\s+by\b`)

	secondRe       = regexp.MustCompile(`(?i)\b(?:seconded\s+by|second(?:ed)?\s+by|seconded|seconds|i(?:'ll|\s+will)?\s+second|second\s+the\s+motion|second)\b`)
	secondSolicit  = regexp.MustCompile(`(?i)\b(?:is\s+there\s+a|do\s+i\s+have\s+a|any|need\s+a|hear\s+a)\s+second\b`)
	secondAfterRe  = regexp.MustCompile(`(?i)by$`)
	bareSecondNext = regexp.MustCompile(`^\s*(?:[.!,;]|$)`)

	resultRe    = regexp.MustCompile(`(?i)\b(carried|carries|passed|passes|approved|adopted|failed|fails|defeated|denied|tabled|withdrawn|withdrew|unanimous(?:ly)?|all\s+in\s+favor)\b`)
	noOppRe     = regexp.MustCompile(`(?i)\b(?:none\s+opposed|no\s+opposition|no\s+nays|no\s+objections?|without\s+objection)\b`)
	rollCallVRe = regexp.MustCompile(`(?i)\broll[\s-]*call\b`)

	countWord  = `(\d+|zero|one|two|three|four|five|six|seven|eight|nine|ten|eleven|twelve)`
	yesBefore  = regexp.MustCompile(`(?i)\b` + countWord + `\s+(?:ayes?|yeas?|yes|in\s+favor)\b`)
	yesAfter   = regexp.MustCompile(`(?i)\b(?:ayes?|yeas?)\s*[:\-]?\s*` + countWord + `\b`)
	noBefore   = regexp.MustCompile(`(?i)\b` + countWord + `\s+(?:nays?|noes|opposed|against)\b`)
	noAfter    = regexp.MustCompile(`(?i)\b(?:nays?|noes|opposed)\s*[:\-]?\s*` + countWord + `\b`)
	abstBefore = regexp.MustCompile(`(?i)\b` + countWord + `\s+(?:abstentions?|abstain(?:ed|ing|s)?)\b`)
	abstAfter  = regexp.MustCompile(`(?i)\b(?:abstentions?|abstain(?:ed|ing|s)?)\s*[:\-]?\s*` + countWord + `\b`)
	scoreRe    = regexp.MustCompile(`(?i)\b(?:vote|voted|votes|passed|passes|carried|carries|failed|approved)\s+(?:of\s+|by\s+a\s+vote\s+of\s+)?(\d+)\s*(?:-|to)\s*(\d+)(?:\s*(?:-|to)\s*(\d+))?`)
	ayeRe      = regexp.MustCompile(`(?i)\b(?:aye|yea|yes)\b`)
	nayRe      = regexp.MustCompile(`(?i)\b(?:nay|no)\b`)
	abstainRe  = regexp.MustCompile(`(?i)\babstain`)
)

type trigger struct {
	start, end int
}

// Motions finds formal motions with their maker, seconder, vote and result
func (e *Extractor) Motions(text string) []entities.Motion {
	motions := []entities.Motion{}
	if strings.TrimSpace(text) == "" {
		return motions
	}

	spans := sentences(text)
	triggers := e.motionTriggers(text, spans)

	for i := 0; i < len(triggers); i++ {
		t := triggers[i]
		sentence := sentenceAt(spans, t.start)
		proposal := strings.TrimSpace(text[t.end:clamp(sentence.End, t.end, len(text))])
		makerAt := t

		// "Is there a motion to ...?" takes its maker from the reply.
		solicited := strings.HasSuffix(sentence.Text, "?")
		if solicited && i+1 < len(triggers) && triggers[i+1].start-t.end <= solicitWindow {
			i++
			makerAt = triggers[i]
		}

		windowEnd := clamp(makerAt.end+motionWindow, 0, len(text))
		if i+1 < len(triggers) && triggers[i+1].start < windowEnd {
			windowEnd = triggers[i+1].start
		}

		motion := entities.Motion{
			ID:       len(motions) + 1,
			Text:     motionText(proposal, text, spans, t),
			VoteType: entities.VoteTypeVoice,
		}
		if !solicited || makerAt != t {
			motion.Maker = e.motionMaker(text, spans, makerAt)
		}
		if motion.Maker == "" {
			motion.Maker = entities.DefaultSeconder
		}

		makerSentence := sentenceAt(spans, makerAt.start)
		secondEnd := e.fillSeconder(&motion, text, spans, makerAt.end, windowEnd)
		resultStart := fillResult(&motion, text, spans, clamp(makerSentence.End, makerAt.end, windowEnd), windowEnd)

		if secondEnd > 0 && resultStart > secondEnd {
			motion.Discussion = truncate(collapse(text[secondEnd:resultStart]), discussionMaxLen)
		}
		motions = append(motions, motion)
	}
	return motions
}

// motionTriggers returns trigger phrases that start a new motion. Agenda
// moves ("move on to the next item") and restatements of a motion already on
// the floor are skipped, unless the sentence names who made the motion
// ("The motion to approve was made by X").
func (e *Extractor) motionTriggers(text string, spans []span) []trigger {
	var out []trigger
	for _, loc := range motionTriggerRe.FindAllStringIndex(text, -1) {
		if agendaMoveRe.MatchString(text[loc[1]:]) {
			continue
		}
		phrase := text[loc[0]:loc[1]]
		sentence := sentenceAt(spans, loc[0])
		if restatementRe.MatchString(sentence.Text) && !firstPersonRe.MatchString(phrase) &&
			!strings.HasSuffix(sentence.Text, "?") && !passiveMotionRe.MatchString(sentence.Text) {
			continue
		}
		out = append(out, trigger{start: loc[0], end: loc[1]})
	}
	return out
}

func motionText(proposal, text string, spans []span, t trigger) string {
	for _, re := range []*regexp.Regexp{secondClauseRe, makerClauseRe} {
		if loc := re.FindStringIndex(proposal); loc != nil {
			proposal = proposal[:loc[0]]
		}
	}
	proposal = strings.TrimRight(proposal, ".!?, ")
	proposal = leadingLinkRe.ReplaceAllString(proposal, "")
	if proposal == "" {
		// "So moved." refers back to the previous sentence.
		sentence := sentenceAt(spans, t.start)
		if sentence.Start > 0 {
			prev := sentenceAt(spans, sentence.Start-1)
			proposal = strings.TrimRight(stripLabel(prev.Text), ".!? ")
		}
	}
	return capitalize(collapse(proposal))
}

// motionMaker picks the mover: a name earlier in the trigger sentence, the
// speaker of a first-person trigger, a "by X" phrase, or the speaker label.
func (e *Extractor) motionMaker(text string, spans []span, t trigger) string {
	sentence := sentenceAt(spans, t.start)
	before := e.mentionsIn(text, sentence.Start, t.start)
	phrase := text[t.start:t.end]

	if len(before) > 0 && !firstPersonRe.MatchString(phrase) {
		return before[len(before)-1].Name
	}
	if firstPersonRe.MatchString(phrase) {
		if name := e.speaker(text, t.start); name != "" {
			return name
		}
		if len(before) > 0 {
			return before[len(before)-1].Name
		}
	}
	for _, m := range e.mentionsIn(text, t.end, sentence.End) {
		if byNameRe.MatchString(text[clamp(m.Start-6, t.end, m.Start):m.Start]) {
			return m.Name
		}
	}
	return e.speaker(text, t.start)
}

// fillSeconder sets the seconder and returns the end of the seconding
// sentence, or 0 when the motion was not seconded.
func (e *Extractor) fillSeconder(motion *entities.Motion, text string, spans []span, from, to int) int {
	if from >= to {
		return 0
	}
	for _, loc := range secondRe.FindAllStringIndex(text[from:to], -1) {
		start, end := from+loc[0], from+loc[1]
		phrase := strings.ToLower(text[start:end])
		sentence := sentenceAt(spans, start)
		if strings.HasSuffix(sentence.Text, "?") || secondSolicit.MatchString(sentence.Text) {
			continue
		}
		if phrase == "second" && !bareSecondNext.MatchString(text[end:clamp(sentence.End+1, end, len(text))]) {
			continue
		}

		before := e.mentionsIn(text, sentence.Start, start)
		after := e.mentionsIn(text, end, sentence.End)
		var ordered []names.Mention
		if secondAfterRe.MatchString(phrase) {
			ordered = append(after, reverse(before)...)
		} else {
			ordered = append(reverse(before), after...)
		}

		seconder := ""
		for _, m := range ordered {
			if m.Name != motion.Maker {
				seconder = m.Name
				break
			}
		}
		if seconder == "" {
			if label := e.speaker(text, start); label != "" && label != motion.Maker {
				seconder = label
			}
		}
		if seconder == "" {
			for _, m := range e.mentionsIn(text, sentence.End, to) {
				if m.Name != motion.Maker {
					seconder = m.Name
					break
				}
			}
		}
		if seconder == "" {
			seconder = entities.DefaultSeconder
		}
		motion.Seconder = seconder
		return sentence.End
	}
	return 0
}

// fillResult sets result, vote type and tally from text[from:to] and
// returns the start of the sentence announcing the result, or 0.
func fillResult(motion *entities.Motion, text string, spans []span, from, to int) int {
	if from >= to {
		return 0
	}
	region := text[from:to]
	unanimous := false
	resultStart := 0

	for _, loc := range resultRe.FindAllStringSubmatchIndex(region, -1) {
		word := strings.ToLower(region[loc[2]:loc[3]])
		switch {
		case strings.HasPrefix(word, "unanimous"):
			unanimous = true
		case strings.HasPrefix(word, "all"):
			if noOppRe.MatchString(region) {
				unanimous = true
			}
			continue
		}
		if motion.Result != entities.MotionResultUnknown {
			continue
		}
		switch word {
		case "carried", "carries", "passed", "passes", "approved", "adopted":
			motion.Result = entities.MotionResultCarried
		case "failed", "fails", "defeated", "denied":
			motion.Result = entities.MotionResultFailed
		case "tabled":
			motion.Result = entities.MotionResultTabled
		case "withdrawn", "withdrew":
			motion.Result = entities.MotionResultWithdrawn
		default:
			motion.Result = entities.MotionResultCarried
		}
		resultStart = sentenceAt(spans, from+loc[0]).Start
	}

	if unanimous && (motion.Result == entities.MotionResultCarried || motion.Result == entities.MotionResultUnknown) {
		motion.Result = entities.MotionResultUnanimous
	}

	switch {
	case rollCallVRe.MatchString(region):
		motion.VoteType = entities.VoteTypeRollCall
	case unanimous:
		motion.VoteType = entities.VoteTypeUnanimous
	}
	motion.Tally = tally(region, motion.VoteType == entities.VoteTypeRollCall)
	return resultStart
}

func tally(region string, rollCall bool) *entities.VoteTally {
	var t entities.VoteTally
	found := false

	if m := scoreRe.FindStringSubmatch(region); m != nil {
		t.Yes, _ = parseCount(m[1])
		t.No, _ = parseCount(m[2])
		if m[3] != "" {
			t.Abstain, _ = parseCount(m[3])
		}
		return &t
	}

	count := func(dst *int, res ...*regexp.Regexp) {
		for _, re := range res {
			if m := re.FindStringSubmatch(region); m != nil {
				if n, ok := parseCount(m[1]); ok {
					*dst = n
					found = true
					return
				}
			}
		}
	}
	count(&t.Yes, yesBefore, yesAfter)
	count(&t.No, noBefore, noAfter)
	count(&t.Abstain, abstBefore, abstAfter)

	if !found && rollCall {
		t.Yes = len(ayeRe.FindAllStringIndex(region, -1))
		t.No = len(nayRe.FindAllStringIndex(region, -1))
		t.Abstain = len(abstainRe.FindAllStringIndex(region, -1))
		found = t.Yes+t.No+t.Abstain > 0
	}
	if !found {
		return nil
	}
	return &t
}

func reverse(in []names.Mention) []names.Mention {
	out := make([]names.Mention, len(in))
	for i, m := range in {
		out[len(in)-1-i] = m
	}
	return out
}
