package extract

import (
	"regexp"
	"strings"

	"github.com/cnmi-csc/busybee/internal/domain/entities"
)

const commentMaxLen = 300

var (
	honorificRe    = regexp.MustCompile(`\b((?:Mr|Ms|Mrs|Dr)\.?\s+[A-Z][\p{L}'\-]+(?:\s+[A-Z][\p{L}'\-]+)?)`)
	publicSpeechRe = regexp.MustCompile(`\b([A-Z][\p{L}'\-]+\s+[A-Z][\p{L}'\-]+)\s+(?:spoke|commented|addressed|stated|asked|expressed|testified|shared|raised|urged|requested)\b`)
)

// PublicComments returns speakers from the public comment period. Roster
// members responding to the public are not listed as commenters.
func (e *Extractor) PublicComments(text string) []entities.PublicComment {
	comments := []entities.PublicComment{}
	slice := sectionSlice(text, sectionPublicComment)
	if slice == "" {
		return comments
	}

	seen := make(map[string]bool)
	spans := sentences(slice)
	for _, s := range spans {
		speaker := ""
		if m := honorificRe.FindStringSubmatch(s.Text); m != nil {
			speaker = m[1]
		} else if m := publicSpeechRe.FindStringSubmatch(s.Text); m != nil {
			speaker = m[1]
		}
		speaker = collapse(speaker)
		if speaker == "" || seen[strings.ToLower(speaker)] {
			continue
		}
		if _, member := e.names.Resolve(speaker); member {
			continue
		}
		seen[strings.ToLower(speaker)] = true
		comments = append(comments, entities.PublicComment{
			Speaker: speaker,
			Summary: truncate(stripLabel(s.Text), commentMaxLen),
		})
	}
	return comments
}
