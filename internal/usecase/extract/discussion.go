package extract

import (
	"regexp"
	"strings"

	"github.com/cnmi-csc/busybee/internal/domain/entities"
)

var (
	topicRe    = regexp.MustCompile(`(?i)\b(?:discuss(?:ed|ion|ing)?(?:\s+(?:of|on|about|regarding|concerning))?|agenda\s+item\s+(?:no\.?\s*)?\d+\s*[:\-]?|regarding|concerning|with\s+respect\s+to|the\s+next\s+item\s+(?:is|was)|moving\s+on\s+to|turn(?:ed|ing)?\s+(?:our\s+attention\s+)?to)\s+(?:the\s+)?([^.?!\n]{3,100})`)
	keyPointRe = regexp.MustCompile(`(?i)\b(?:said|noted|asked|explained|stated|pointed\s+out|expressed|concerns?|concerned|suggested|recommended|reported|mentioned|clarified|questioned|proposed)\b`)
	stopTopic  = regexp.MustCompile(`(?i)^(?:order|the\s+meeting|this|that|it|item|agenda)$`)
)

// DiscussionTopics finds subjects introduced during the meeting together
// with who spoke to them and what was said.
func (e *Extractor) DiscussionTopics(text string) []entities.DiscussionTopic {
	topics := []entities.DiscussionTopic{}
	seen := make(map[string]bool)
	locs := topicRe.FindAllStringSubmatchIndex(text, -1)
	if len(locs) == 0 {
		return topics
	}
	spans := sentences(text)

	for i, loc := range locs {
		if len(topics) >= maxTopics {
			break
		}
		name := strings.TrimSpace(text[loc[2]:loc[3]])
		if cut := strings.IndexAny(name, ",;"); cut > 0 {
			name = name[:cut]
		}
		name = capitalize(collapse(name))
		if len(name) < 3 || stopTopic.MatchString(name) || seen[strings.ToLower(name)] {
			continue
		}
		seen[strings.ToLower(name)] = true

		end := clamp(loc[1]+topicWindow, 0, len(text))
		if i+1 < len(locs) && locs[i+1][0] < end {
			end = locs[i+1][0]
		}

		topic := entities.DiscussionTopic{
			Topic:        name,
			Participants: []string{},
			KeyPoints:    []string{},
		}
		people := make(map[string]bool)
		for _, m := range e.mentionsIn(text, loc[0], end) {
			topic.Participants = appendUnique(topic.Participants, people, m.Name)
		}

		from := sentenceAt(spans, loc[0]).Start
		for _, s := range spans {
			if s.Start < from || s.Start >= end {
				continue
			}
			if speaker := e.speaker(text, s.Start); speaker != "" {
				topic.Participants = appendUnique(topic.Participants, people, speaker)
			}
			body := stripLabel(s.Text)
			if len(topic.KeyPoints) < maxKeyPoints && keyPointRe.MatchString(body) {
				topic.KeyPoints = append(topic.KeyPoints, truncate(body, keyPointMaxLength))
			}
			if topic.Outcome == "" && decisionRe.MatchString(body) {
				topic.Outcome = truncate(body, keyPointMaxLength)
			}
		}
		topics = append(topics, topic)
	}
	return topics
}
