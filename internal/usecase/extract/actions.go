package extract

import (
	"regexp"
	"strings"

	"github.com/cnmi-csc/busybee/internal/domain/entities"
)

const (
	actionMinLen   = 20
	actionMaxLen   = 300
	maxActionItems = 15
	defaultOffice  = "Staff"
	defaultTopic   = "General"
)

var (
	obligationRe = regexp.MustCompile(`(?i)\b(?:will|shall|must|needs?\s+to|should|responsible\s+for|follow\s+up|action\s+item|assigned\s+to|directed\s+to|tasked\s+with|is\s+to\s+(?:prepare|provide|submit|draft|review))\b`)
	proceduralRe = regexp.MustCompile(`(?i)\b(?:call(?:ed)?\s+(?:the\s+)?(?:meeting|session|hearing)?\s*to\s+order|will\s+now|adjourn\w*|entertain\s+a\s+motion|roll\s*call|will\s+be\s+brief|pledge\s+of\s+allegiance)\b`)

	deadlineRe = regexp.MustCompile(`(?i)\b((?:by|before|no\s+later\s+than|prior\s+to|until)\s+(?:the\s+)?(?:end\s+of\s+(?:the\s+)?(?:day|week|month|year|quarter)|next\s+(?:week|month|meeting|monday|tuesday|wednesday|thursday|friday)|(?:monday|tuesday|wednesday|thursday|friday|saturday|sunday)|(?:january|february|march|april|may|june|july|august|september|october|november|december)\s+\d{1,2}(?:st|nd|rd|th)?(?:,?\s+\d{4})?|\d{1,2}/\d{1,2}(?:/\d{2,4})?|tomorrow|today)|within\s+(?:\d+|one|two|three|four|five|six|seven|ten|thirty)\s+(?:business\s+)?(?:days?|weeks?|months?))`)

	urgentRe = regexp.MustCompile(`(?i)\b(?:urgent(?:ly)?|immediately|asap|as\s+soon\s+as\s+possible|right\s+away|critical)\b`)
	highRe   = regexp.MustCompile(`(?i)\b(?:must|shall|required|mandatory|deadline|no\s+later\s+than)\b`)
	mediumRe = regexp.MustCompile(`(?i)\b(?:should|needs?\s+to|will)\b`)
)

// officeRule maps subject keywords to the office that usually owns the task
// and the topic tag for the item.
type officeRule struct {
	re     *regexp.Regexp
	office string
	topic  string
}

var officeRules = []officeRule{
	{regexp.MustCompile(`(?i)\b(?:budget|fund(?:s|ing)?|appropriations?|expenditures?|procurement|payments?|fiscal)\b`), "Budget Officer", "Budget"},
	{regexp.MustCompile(`(?i)\b(?:legal|counsel|attorney|appeals?|hearings?|litigation|case|ruling|order)\b`), "Legal Counsel", "Legal"},
	{regexp.MustCompile(`(?i)\b(?:personnel|hiring|hire|recruit\w*|positions?|employees?|classification|salary|salaries|payroll)\b`), "Personnel Officer", "Personnel"},
	{regexp.MustCompile(`(?i)\b(?:minutes|agenda|schedul\w*|notices?|calendar|correspondence)\b`), "Commission Secretary", "Administrative"},
	{regexp.MustCompile(`(?i)\b(?:polic(?:y|ies)|regulations?|rules?|procedures?|handbook)\b`), "Executive Director", "Policy"},
	{regexp.MustCompile(`(?i)\b(?:website|system|computer|software|e-?mail|database|technology)\b`), "IT Staff", "Technology"},
}

// ActionItems finds sentences that commit someone to a follow-up task
func (e *Extractor) ActionItems(text string) []entities.ActionItem {
	items := []entities.ActionItem{}
	seen := make(map[string]bool)

	for _, s := range sentences(text) {
		if len(items) >= maxActionItems {
			break
		}
		desc := stripLabel(s.Text)
		if len(desc) < actionMinLen || len(desc) > actionMaxLen {
			continue
		}
		if strings.HasSuffix(desc, "?") || !obligationRe.MatchString(desc) || proceduralRe.MatchString(desc) {
			continue
		}
		key := strings.ToLower(desc)
		if seen[key] {
			continue
		}
		seen[key] = true

		item := entities.ActionItem{
			Description: desc,
			AssignedTo:  defaultOffice,
			Priority:    actionPriority(desc),
			Topic:       defaultTopic,
		}
		if rule, ok := matchOffice(desc); ok {
			item.AssignedTo = rule.office
			item.Topic = rule.topic
		}
		if mentions := e.names.Mentions(desc); len(mentions) > 0 {
			item.AssignedTo = mentions[0].Name
		}
		if m := deadlineRe.FindStringSubmatch(desc); m != nil {
			item.Deadline = collapse(m[1])
		}
		items = append(items, item)
	}
	return items
}

func matchOffice(s string) (officeRule, bool) {
	for _, rule := range officeRules {
		if rule.re.MatchString(s) {
			return rule, true
		}
	}
	return officeRule{}, false
}

func actionPriority(s string) entities.Priority {
	switch {
	case urgentRe.MatchString(s):
		return entities.PriorityUrgent
	case highRe.MatchString(s):
		return entities.PriorityHigh
	case mediumRe.MatchString(s):
		return entities.PriorityMedium
	default:
		return entities.PriorityLow
	}
}
