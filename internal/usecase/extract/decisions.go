package extract

import (
	"regexp"
	"strings"
)

const (
	maxDecisions      = 10
	decisionMinLen    = 15
	decisionMaxLen    = 400
	maxTopics         = 10
	topicWindow       = 600
	maxKeyPoints      = 3
	keyPointMaxLength = 200
)

var (
	decisionRe   = regexp.MustCompile(`(?i)\b(?:approved|denied|carried|passed|adopted|tabled|rejected|ratified|granted|dismissed|upheld|overturned|remanded|sustained|decided|resolved|ordered)\b`)
	governanceRe = regexp.MustCompile(`(?i)\b(?:motion|votes?|voted|commission|board|members?|resolution|chair(?:man|person|woman)?|panel|appeal)\b`)
)

// Decisions returns sentences that record a decision of the body
func (e *Extractor) Decisions(text string) []string {
	decisions := []string{}
	seen := make(map[string]bool)
	for _, s := range sentences(text) {
		if len(decisions) >= maxDecisions {
			break
		}
		d := stripLabel(s.Text)
		if len(d) < decisionMinLen || len(d) > decisionMaxLen || strings.HasSuffix(d, "?") {
			continue
		}
		if decisionRe.MatchString(d) && governanceRe.MatchString(d) {
			decisions = appendUnique(decisions, seen, d)
		}
	}
	return decisions
}
