package extract

import (
	"regexp"
	"strings"

	"github.com/cnmi-csc/busybee/internal/domain/entities"
)

const (
	itemMinLen      = 20
	itemTitleMaxLen = 100
	itemBodyMaxLen  = 400
)

type section int

const (
	sectionOldBusiness section = iota
	sectionNewBusiness
	sectionPublicComment
)

var sectionHeaders = map[section]*regexp.Regexp{
	sectionOldBusiness:   regexp.MustCompile(`(?i)\b(?:old|unfinished)\s+business\b`),
	sectionNewBusiness:   regexp.MustCompile(`(?i)\bnew\s+business\b`),
	sectionPublicComment: regexp.MustCompile(`(?i)\bpublic\s+comments?\b`),
}

var (
	boundaryRe  = regexp.MustCompile(`(?i)\b(?:executive\s+session|other\s+matters|announcements|adjourn(?:ment|ed)?|next\s+meeting|director'?s\s+report|reports?\s+of\s+(?:the\s+)?(?:chair|director|staff|committees?))\b`)
	noneRe      = regexp.MustCompile(`(?i)^\W*(?:(?:there\s+(?:is|was|were|are)\s+)?(?:none|nothing|no\s+(?:old|new|unfinished)\s+business|no\s+items?))\b`)
	itemStartRe = regexp.MustCompile(`(?:^|[\s:;])(\d{1,2}[.)][ \t]+|[-*•][ \t]+|(?i:item\s+(?:no\.?\s*)?\d+\s*[:.\-]?\s*|(?:the\s+)?next\s+item(?:\s+(?:is|was))?\s*[:\-]?\s*|(?:first|second|third|another)\s+item(?:\s+(?:is|was))?\s*[:\-]?\s*|moving\s+on\s+to\s+))`)
	presenterRe = regexp.MustCompile(`(?i)\b(?:present(?:ed|s|ing)|report(?:ed|s|ing)|introduc(?:ed|es|ing)|brought\s+forward|explained|gave)\b`)
	leadingRe   = regexp.MustCompile(`(?i)^[\s,:;\-]*(?:(?:is|was|are|were|under)\b)?[\s,:;\-]*`)
)

// OldBusiness returns items from the old or unfinished business section
func (e *Extractor) OldBusiness(text string) []entities.BusinessItem {
	return e.businessItems(sectionSlice(text, sectionOldBusiness))
}

// NewBusiness returns items from the new business section
func (e *Extractor) NewBusiness(text string) []entities.BusinessItem {
	return e.businessItems(sectionSlice(text, sectionNewBusiness))
}

// sectionSlice returns the text after the first header of kind up to the
// next section boundary. Later mentions of the same header stay inside.
func sectionSlice(text string, kind section) string {
	loc := sectionHeaders[kind].FindStringIndex(text)
	if loc == nil {
		return ""
	}
	body := text[loc[1]:]
	end := len(body)
	if b := boundaryRe.FindStringIndex(body); b != nil {
		end = b[0]
	}
	for other, re := range sectionHeaders {
		if other == kind {
			continue
		}
		if b := re.FindStringIndex(body); b != nil && b[0] < end {
			end = b[0]
		}
	}
	return strings.TrimSpace(strings.TrimLeft(body[:end], " \t\r\n:;,.-"))
}

func (e *Extractor) businessItems(slice string) []entities.BusinessItem {
	items := []entities.BusinessItem{}
	if slice == "" || noneRe.MatchString(slice) {
		return items
	}

	for _, chunk := range chunkItems(slice) {
		item, ok := e.businessItem(chunk)
		if ok {
			items = append(items, item)
		}
	}
	return items
}

// chunkItems splits a section at item markers: numbered or bulleted entries
// and phrases such as "the next item is".
func chunkItems(slice string) []string {
	var markers [][2]int
	for _, loc := range itemStartRe.FindAllStringSubmatchIndex(slice, -1) {
		start, end := loc[2], loc[3]
		if isDigit(slice[start]) && (end >= len(slice) || !isUpper(slice[end])) {
			continue
		}
		markers = append(markers, [2]int{start, end})
	}
	if len(markers) == 0 {
		return []string{slice}
	}

	var chunks []string
	if lead := strings.TrimSpace(slice[:markers[0][0]]); len(lead) >= itemMinLen {
		chunks = append(chunks, lead)
	}
	for i, m := range markers {
		end := len(slice)
		if i+1 < len(markers) {
			end = markers[i+1][0]
		}
		chunks = append(chunks, strings.TrimSpace(slice[m[1]:end]))
	}
	return chunks
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isUpper(b byte) bool { return b >= 'A' && b <= 'Z' }

func (e *Extractor) businessItem(chunk string) (entities.BusinessItem, bool) {
	chunk = strings.TrimSpace(leadingRe.ReplaceAllString(chunk, ""))
	if len(chunk) < itemMinLen {
		return entities.BusinessItem{}, false
	}

	spans := sentences(chunk)
	if len(spans) == 0 {
		return entities.BusinessItem{}, false
	}
	item := entities.BusinessItem{
		Title:     truncate(strings.TrimRight(stripLabel(spans[0].Text), ".!? "), itemTitleMaxLen),
		HasMotion: motionTriggerRe.MatchString(chunk),
	}
	if rest := strings.TrimSpace(chunk[spans[0].End:]); rest != "" {
		item.Discussion = truncate(collapse(rest), itemBodyMaxLen)
	}

	mentions := e.names.Mentions(chunk)
	for _, m := range mentions {
		if presenterRe.MatchString(sentenceAt(spans, m.Start).Text) {
			item.Presenter = m.Name
			break
		}
	}
	if item.Presenter == "" && len(mentions) > 0 {
		item.Presenter = mentions[0].Name
	}

	for _, s := range spans {
		if decisionRe.MatchString(s.Text) {
			item.Outcome = strings.TrimRight(stripLabel(s.Text), " ")
			break
		}
	}
	return item, true
}
