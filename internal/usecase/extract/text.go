package extract

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// span is a sentence with its byte offsets in the transcript
type span struct {
	Start int
	End   int
	Text  string
}

var abbreviations = map[string]bool{
	"mr": true, "mrs": true, "ms": true, "dr": true, "no": true, "vs": true,
	"st": true, "jr": true, "sr": true, "e.g": true,
	"i.e": true, "approx": true, "hon": true, "gov": true, "sec": true,
}

// sentences splits text at terminal punctuation and line breaks
func sentences(text string) []span {
	var out []span
	start := 0
	emit := func(end int) {
		raw := text[start:end]
		trimmed := strings.TrimSpace(raw)
		if trimmed != "" {
			lead := strings.Index(raw, trimmed)
			out = append(out, span{Start: start + lead, End: start + lead + len(trimmed), Text: trimmed})
		}
		start = end
	}

	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\n':
			emit(i)
			start = i + 1
		case '.', '!', '?':
			if i+1 < len(text) && !isSpaceByte(text[i+1]) && text[i+1] != '"' {
				continue
			}
			if text[i] == '.' && isAbbreviation(text[start:i], text[i+1:]) {
				continue
			}
			if text[i] == '.' && nextIsLower(text[i+1:]) {
				continue
			}
			emit(i + 1)
		}
	}
	emit(len(text))
	return out
}

func isAbbreviation(before, after string) bool {
	prefix, word := "", before
	if idx := strings.LastIndexFunc(before, func(r rune) bool { return unicode.IsSpace(r) || r == '(' }); idx >= 0 {
		_, size := utf8.DecodeRuneInString(before[idx:])
		prefix, word = before[:idx], before[idx+size:]
	}
	if abbreviations[strings.ToLower(word)] {
		return true
	}
	r, size := utf8.DecodeRuneInString(word)
	if size != len(word) || !unicode.IsUpper(r) {
		return false
	}
	return isInitial(prefix, after)
}

var nextInitialRe = regexp.MustCompile(`^\s+\p{Lu}\.`)

// isInitial reports whether a single capital letter followed by a period is
// part of a name ("J. Camacho", "Joseph R. Camacho") rather than the last
// word of a sentence ("approve item A.").
func isInitial(prefix, after string) bool {
	words := strings.Fields(prefix)
	if len(words) == 0 {
		return true
	}
	prev, _ := utf8.DecodeRuneInString(words[len(words)-1])
	if unicode.IsUpper(prev) {
		return true
	}
	return nextInitialRe.MatchString(after)
}

func nextIsLower(rest string) bool {
	rest = strings.TrimLeft(rest, " \t")
	if rest == "" || rest[0] == '\n' || rest[0] == '\r' {
		return false
	}
	r, _ := utf8.DecodeRuneInString(rest)
	return unicode.IsLower(r)
}

func isSpaceByte(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

// sentenceAt returns the sentence containing offset pos
func sentenceAt(spans []span, pos int) span {
	for _, s := range spans {
		if pos >= s.Start && pos < s.End {
			return s
		}
	}
	for _, s := range spans {
		if s.Start >= pos {
			return s
		}
	}
	return span{Start: pos, End: pos}
}

var (
	timeRe = regexp.MustCompile(`(?i)\b(\d{1,2}(?::\d{2}){1,2}(?:\s*[ap]\.?\s?m\b\.?)?|\d{1,2}\s*[ap]\.?\s?m\b\.?)`)

	bracketLabelRe = regexp.MustCompile(`^\s*\[\s*(?:\d{1,2}:\d{2}(?::\d{2})?\s*)?([^\]]*)\]\s*:?\s*`)
	plainLabelRe   = regexp.MustCompile(`^\s*([A-Z][\p{L}.'\- ]{1,40}?)\s*:\s+`)
	genericLabelRe = regexp.MustCompile(`(?i)^(?:speaker\s*\w*|unknown|unidentified.*)$`)
)

// findTimes returns time expressions in text, skipping elapsed-time stamps
// written inside brackets.
func findTimes(text string) [][]int {
	var out [][]int
	for _, loc := range timeRe.FindAllStringIndex(text, -1) {
		if loc[0] > 0 && text[loc[0]-1] == '[' {
			continue
		}
		out = append(out, loc)
	}
	return out
}

func firstTime(text string) string {
	times := findTimes(text)
	if len(times) == 0 {
		return ""
	}
	return cleanTime(text[times[0][0]:times[0][1]])
}

func cleanTime(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	// "4:30 pm." keeps the sentence period; "9:05 a.m." does not end with one
	if strings.HasSuffix(s, ".") && strings.Count(s, ".") == 1 {
		s = strings.TrimSuffix(s, ".")
	}
	return s
}

// lineAt returns the full line containing pos
func lineAt(text string, pos int) string {
	start := strings.LastIndexByte(text[:pos], '\n') + 1
	end := strings.IndexByte(text[pos:], '\n')
	if end < 0 {
		return text[start:]
	}
	return text[start : pos+end]
}

// speakerLabel returns the speaker label of the line containing pos, or ""
// for anonymous labels such as "Speaker A".
func speakerLabel(text string, pos int) string {
	line := lineAt(text, pos)
	var label string
	if m := bracketLabelRe.FindStringSubmatch(line); m != nil {
		label = strings.TrimSpace(m[1])
	} else if m := plainLabelRe.FindStringSubmatch(line); m != nil {
		label = strings.TrimSpace(m[1])
	}
	if label == "" || genericLabelRe.MatchString(label) {
		return ""
	}
	return label
}

// stripLabel removes a leading speaker label from a sentence
func stripLabel(s string) string {
	if loc := bracketLabelRe.FindStringIndex(s); loc != nil {
		s = s[loc[1]:]
	} else if loc := plainLabelRe.FindStringIndex(s); loc != nil {
		s = s[loc[1]:]
	}
	return strings.TrimSpace(s)
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// truncate shortens s to at most n runes, cutting at a word boundary
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	cut := string(runes[:n])
	if idx := strings.LastIndexByte(cut, ' '); idx > n/2 {
		cut = cut[:idx]
	}
	return strings.TrimRight(cut, " ,;:") + "..."
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

var numberWords = map[string]int{
	"zero": 0, "none": 0, "no": 0, "one": 1, "two": 2, "three": 3, "four": 4,
	"five": 5, "six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
	"eleven": 11, "twelve": 12,
}

func parseCount(s string) (int, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if n, err := strconv.Atoi(s); err == nil {
		return n, true
	}
	n, ok := numberWords[s]
	return n, ok
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

func appendUnique(list []string, seen map[string]bool, item string) []string {
	key := strings.ToLower(item)
	if item == "" || seen[key] {
		return list
	}
	seen[key] = true
	return append(list, item)
}
