package service

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"campusbot/internal/models"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	// \s is ASCII-only in RE2; \p{Z} adds no-break and ideographic spaces.
	punctuationPattern = regexp.MustCompile(`[^\p{L}\p{N}_\s\p{Z}]`)
	whitespacePattern  = regexp.MustCompile(`[\s\p{Z}]+`)
)

// Small stop set used only for synthetic questions; the similarity index has its own.
var keyTermStopWords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "but": {}, "in": {},
	"on": {}, "at": {}, "to": {}, "for": {}, "of": {}, "with": {}, "by": {},
}

const (
	maxKeyTerms      = 4
	minKeyTermLength = 4
)

// sanitizeUTF8 removes invalid UTF-8 sequences from string
func sanitizeUTF8(s string) string {
	if utf8.ValidString(s) {
		return s
	}

	var result strings.Builder
	result.Grow(len(s))

	for len(s) > 0 {
		r, size := utf8.DecodeRuneInString(s)
		if r == utf8.RuneError && size == 1 {
			s = s[1:]
			continue
		}
		result.WriteRune(r)
		s = s[size:]
	}

	return result.String()
}

// preprocessQuery lower-cases and trims text, strips punctuation and collapses whitespace.
func preprocessQuery(text string) string {
	text = strings.TrimSpace(strings.ToLower(text))
	text = punctuationPattern.ReplaceAllString(text, "")
	return whitespacePattern.ReplaceAllString(text, " ")
}

// extractKeyTerms returns up to four meaningful words of fact joined by spaces,
// or "" when none survive.
func extractKeyTerms(fact string) string {
	words := strings.Fields(punctuationPattern.ReplaceAllString(fact, " "))

	terms := make([]string, 0, maxKeyTerms)
	for _, w := range words {
		w = strings.ToLower(w)
		if _, stop := keyTermStopWords[w]; stop {
			continue
		}
		if utf8.RuneCountInString(w) < minKeyTermLength {
			continue
		}
		terms = append(terms, w)
		if len(terms) == maxKeyTerms {
			break
		}
	}
	return strings.Join(terms, " ")
}

// categoryLabel turns fee_structure into "Fee Structure".
func categoryLabel(category models.Category) string {
	return titleCase(string(category))
}

func titleCase(s string) string {
	// Casers carry state, so each call gets its own.
	return cases.Title(language.English).String(strings.ReplaceAll(s, "_", " "))
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
