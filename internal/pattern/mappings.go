package pattern

import (
	"regexp"
	"strings"
	"unicode"
)

// Mappings supplies alternate spellings for a pattern: extra pattern text
// matched as an alternative to the pattern itself, such as accent-folded
// renderings or alternate keyboard layouts. An empty fragment means no
// alternative.
type Mappings interface {
	AlternateSpellings(pattern string, caseInsensitive bool) string
}

// NoMappings never offers an alternative spelling.
var NoMappings Mappings = noMappings{}

type noMappings struct{}

func (noMappings) AlternateSpellings(string, bool) string { return "" }

// accentFolds maps plain ASCII letters to the accented codepoints a pattern
// containing them should also match.
var accentFolds = map[rune]string{
	'a': "àáâãäå",
	'c': "ç",
	'e': "èéêë",
	'i': "ìíîï",
	'n': "ñ",
	'o': "òóôõö",
	'u': "ùúûü",
	'y': "ýÿ",
}

// AccentFolding offers accent-folded alternatives: a pattern of plain ASCII
// letters also matches the common accented forms of those letters. Patterns
// with no foldable letter produce no alternative.
type AccentFolding struct{}

// AlternateSpellings implements Mappings.
func (AccentFolding) AlternateSpellings(pat string, _ bool) string {
	var b strings.Builder
	folded := false
	for _, r := range pat {
		alts, ok := accentFolds[unicode.ToLower(r)]
		if !ok {
			b.WriteString(regexp.QuoteMeta(string(r)))
			continue
		}
		folded = true
		b.WriteByte('[')
		b.WriteRune(r)
		b.WriteString(alts)
		b.WriteByte(']')
	}
	if !folded {
		return ""
	}
	return b.String()
}
