package names

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/cnmi-csc/busybee/internal/domain/entities"
)

// Mention is one occurrence of a roster member in a text
type Mention struct {
	Name  string // canonical name
	Text  string // text as written
	Start int    // byte offset
	End   int
}

// Matcher recognizes roster members, including their known misspellings.
// It is built once from the roster and is safe for concurrent use.
type Matcher struct {
	roster   entities.Roster
	pattern  *regexp.Regexp
	lookup   map[string]string // normalized term -> canonical name
	roles    map[string]string // canonical name -> role
	surnames map[string]bool   // terms that are a bare last name
}

// titles may stand directly before a bare last name ("Commissioner Bellas")
var titles = map[string]bool{
	"chairman": true, "chairwoman": true, "chairperson": true, "chair": true,
	"vice": true, "commissioner": true, "director": true, "executive": true,
	"secretary": true, "counsel": true, "attorney": true, "member": true,
	"mr": true, "mrs": true, "ms": true, "dr": true, "madam": true, "hon": true,
}

// NewMatcher compiles a matcher for the roster
func NewMatcher(roster entities.Roster) *Matcher {
	m := &Matcher{
		roster:   roster,
		lookup:   make(map[string]string),
		roles:    make(map[string]string),
		surnames: make(map[string]bool),
	}

	for _, p := range roster.People {
		name := collapse(p.Name)
		if name == "" {
			continue
		}
		m.roles[name] = p.Role
		for _, term := range termsFor(p) {
			key := strings.ToLower(term)
			// First person in roster order wins a shared spelling.
			if _, taken := m.lookup[key]; !taken {
				m.lookup[key] = name
			}
		}
	}

	// Last names come after every spelled-out term so an explicit variant
	// of one person is never claimed by another person's last name.
	for _, p := range roster.People {
		name := collapse(p.Name)
		tokens := strings.Fields(name)
		if len(tokens) < 2 {
			continue
		}
		key := strings.ToLower(tokens[len(tokens)-1])
		if _, taken := m.lookup[key]; !taken {
			m.lookup[key] = name
			m.surnames[key] = true
		}
	}

	if len(m.lookup) == 0 {
		return m
	}

	terms := make([]string, 0, len(m.lookup))
	for key := range m.lookup {
		terms = append(terms, key)
	}
	// Longest first so "Raymond Muña" wins over "Muña" at the same offset.
	sort.Slice(terms, func(i, j int) bool {
		if len(terms[i]) != len(terms[j]) {
			return len(terms[i]) > len(terms[j])
		}
		return terms[i] < terms[j]
	})

	alts := make([]string, len(terms))
	for i, term := range terms {
		words := strings.Fields(term)
		for j, w := range words {
			words[j] = regexp.QuoteMeta(w)
		}
		alts[i] = strings.Join(words, `\s+`)
	}
	m.pattern = regexp.MustCompile(`(?i)(?:^|[^\p{L}\p{N}_])(` + strings.Join(alts, "|") + `)`)
	return m
}

// termsFor returns the canonical name, the variants, and each variant written
// next to the remaining parts of the canonical name.
func termsFor(p entities.Person) []string {
	canonical := collapse(p.Name)
	tokens := strings.Fields(canonical)
	terms := []string{canonical}

	for _, v := range p.Variants {
		v = collapse(v)
		if v == "" || strings.EqualFold(v, canonical) {
			continue
		}
		terms = append(terms, v)
		if strings.Contains(v, " ") {
			continue
		}
		for i := 1; i < len(tokens); i++ {
			terms = append(terms,
				strings.Join(tokens[:i], " ")+" "+v,
				v+" "+strings.Join(tokens[i:], " "),
			)
		}
	}
	return terms
}

// Roster returns the roster the matcher was built from
func (m *Matcher) Roster() entities.Roster {
	return m.roster
}

// Role returns the role of a canonical name
func (m *Matcher) Role(name string) string {
	return m.roles[name]
}

// Mentions returns every whole-word roster mention in text, in order
func (m *Matcher) Mentions(text string) []Mention {
	if m.pattern == nil || text == "" {
		return nil
	}

	var mentions []Mention
	for _, loc := range m.pattern.FindAllStringSubmatchIndex(text, -1) {
		start, end := loc[2], loc[3]
		if !boundaryAfter(text, end) {
			continue
		}
		written := text[start:end]
		key := strings.ToLower(collapse(written))
		name, ok := m.lookup[key]
		if !ok {
			continue
		}
		if m.surnames[key] && followsForename(text[:start]) {
			continue
		}
		mentions = append(mentions, Mention{Name: name, Text: written, Start: start, End: end})
	}
	return mentions
}

// Resolve maps free text such as a speaker label to a canonical name
func (m *Matcher) Resolve(text string) (string, bool) {
	mentions := m.Mentions(text)
	if len(mentions) == 0 {
		return "", false
	}
	return mentions[0].Name, true
}

// Normalize replaces every known variant with its canonical name
func (m *Matcher) Normalize(text string) string {
	mentions := m.Mentions(text)
	if len(mentions) == 0 {
		return text
	}

	var sb strings.Builder
	sb.Grow(len(text))
	last := 0
	for _, mention := range mentions {
		sb.WriteString(text[last:mention.Start])
		sb.WriteString(mention.Name)
		last = mention.End
	}
	sb.WriteString(text[last:])
	return sb.String()
}

// followsForename reports whether prefix ends in a capitalized word that is
// not a title, as in "John Santos" where Santos is someone else.
func followsForename(prefix string) bool {
	trimmed := strings.TrimRightFunc(prefix, unicode.IsSpace)
	if trimmed == "" || len(trimmed) == len(prefix) {
		return false
	}
	word := trimmed
	if idx := strings.LastIndexFunc(trimmed, func(r rune) bool { return !isWordRune(r) }); idx >= 0 {
		_, size := utf8.DecodeRuneInString(trimmed[idx:])
		word = trimmed[idx+size:]
	}
	r, _ := utf8.DecodeRuneInString(word)
	if word == "" || !unicode.IsUpper(r) {
		return false
	}
	return !titles[strings.ToLower(word)]
}

func boundaryAfter(text string, end int) bool {
	if end >= len(text) {
		return true
	}
	before, _ := utf8.DecodeLastRuneInString(text[:end])
	if !isWordRune(before) {
		return true
	}
	next, _ := utf8.DecodeRuneInString(text[end:])
	return !isWordRune(next)
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
