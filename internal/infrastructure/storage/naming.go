package storage

import (
	"strings"
	"time"
	"unicode"
)

// Filename suffixes per output kind
const (
	SuffixTranscript = "transcript.txt"
	SuffixNotes      = "notes.md"
	SuffixOrder      = "order.md"
)

// StampLayout is the date/time part of every output filename
const StampLayout = "2006-01-02_15-04"

const maxTitleLength = 80

// SuffixRecording returns the recording suffix for a file extension such as ".m4a"
func SuffixRecording(ext string) string {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	if ext == "" {
		ext = "bin"
	}
	return "recording." + ext
}

// Filename builds <sanitized_title>_<YYYY-MM-DD_HH-MM>_<suffix>
func Filename(title string, at time.Time, suffix string) string {
	return SanitizeTitle(title) + "_" + at.Format(StampLayout) + "_" + suffix
}

// SanitizeTitle keeps letters and digits and joins everything else with a
// single underscore.
func SanitizeTitle(title string) string {
	var sb strings.Builder
	pending := false
	for _, r := range title {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pending && sb.Len() > 0 {
				sb.WriteByte('_')
			}
			pending = false
			sb.WriteRune(r)
			continue
		}
		pending = true
	}

	out := sb.String()
	if out == "" {
		return "meeting"
	}
	if runes := []rune(out); len(runes) > maxTitleLength {
		out = strings.TrimRight(string(runes[:maxTitleLength]), "_")
	}
	return out
}
