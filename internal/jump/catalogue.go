package jump

import (
	"fmt"

	"github.com/dshills/linehop/internal/pattern"
	"github.com/dshills/linehop/internal/textutil"
)

// Mode identifies a matcher in the catalogue.
type Mode uint8

const (
	// ModeWord targets the start of each run of word characters.
	ModeWord Mode = iota

	// ModeCamelCase targets camel-case and other token boundaries inside
	// source-like text.
	ModeCamelCase

	// ModeLineStart targets the first column of every line.
	ModeLineStart

	// ModeLineStartSkipBlank targets the first non-blank column of a line.
	ModeLineStartSkipBlank

	// ModeVertical targets the window's first visible column on each line.
	ModeVertical

	// ModeAnywhere targets any syntactically meaningful boundary.
	ModeAnywhere
)

// String returns the mode's name.
func (m Mode) String() string {
	switch m {
	case ModeWord:
		return "word"
	case ModeCamelCase:
		return "camel"
	case ModeLineStart:
		return "line-start"
	case ModeLineStartSkipBlank:
		return "skip-blank"
	case ModeVertical:
		return "vertical"
	case ModeAnywhere:
		return "anywhere"
	}
	return "unknown"
}

// ParseMode returns the Mode named by s.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "word":
		return ModeWord, nil
	case "camel":
		return ModeCamelCase, nil
	case "line-start":
		return ModeLineStart, nil
	case "skip-blank":
		return ModeLineStartSkipBlank, nil
	case "vertical":
		return ModeVertical, nil
	case "anywhere":
		return ModeAnywhere, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// Modes lists every mode in the catalogue.
func Modes() []Mode {
	return []Mode{
		ModeWord, ModeCamelCase, ModeLineStart,
		ModeLineStartSkipBlank, ModeVertical, ModeAnywhere,
	}
}

// Catalogue patterns, compiled once at init. Each alternation branch
// captures the portion of the match it reports; branch order decides ties
// at the same column.
var (
	// wordPattern matches a run of keyword characters.
	wordPattern = pattern.MustCompileRaw(`\w+`, false)

	// tokenPattern matches the next semantic token: a camel-case word, an
	// acronym run (trailing camel-case word consumed but not reported),
	// upper or lower runs, numeric literals, or a literal sigil. The
	// prefixed numeric literals sit before the decimal run so "0x" beats a
	// bare digit run at the same column.
	tokenPattern = pattern.MustCompileRaw(`(?:`+
		`([A-Z][a-z]+)`+ // CamelWord
		`|([A-Z]+)[A-Z][a-z]`+ // Acronym
		`|([A-Z]+)`+ // AllUpper
		`|([a-z]+)`+ // AllLower
		`|(#[0-9A-Fa-f]+)\b`+ // hex color
		`|(0[xX][0-9A-Fa-f]+)\b`+ // hex integer
		`|(0[oO][0-7]+)\b`+ // octal integer
		`|(0[bB][01]+)\b`+ // binary integer
		`|([0-9]+)`+ // decimal run
		`|([~!@#$])`+ // literal sigils
		`)`, false)

	// skipBlankPattern matches the first non-blank character.
	skipBlankPattern = pattern.MustCompileRaw(`\S`, false)

	// anywherePattern matches word starts and ends, lower-to-upper case
	// transitions (uppercase letter reported), and the character after an
	// underscore or '#'. The empty-line branches are zero width and
	// filtered by patternMatch.
	anywherePattern = pattern.MustCompileRaw(`(?:`+
		`(\b\w|^$)`+ // word start or empty line
		`|(\w\b|^$)`+ // word end or empty line
		`|[a-z]([A-Z])`+ // case transition
		`|_(.)`+ // after an underscore
		`|#(.)`+ // after a '#'
		`)`, false)
)

// ByWordStart returns the matcher for the start of each word.
func ByWordStart() *Matcher {
	return &Matcher{match: patternMatch(wordPattern)}
}

// ByCamelCase returns the matcher for camel-case and other token
// boundaries.
func ByCamelCase() *Matcher {
	return &Matcher{match: patternMatch(tokenPattern)}
}

// ByLineStart returns the matcher for column zero of every line. It matches
// unconditionally, empty lines included; callers treat the span as a
// linewise marker.
func ByLineStart() *Matcher {
	return &Matcher{
		Oneshot:  true,
		Linewise: true,
		match: func(string, Context, Options) (Span, bool) {
			return Span{Start: 0, End: 1}, true
		},
	}
}

// ByLineStartSkipBlank returns the matcher for the first non-blank column.
// All-blank lines yield no match.
func ByLineStartSkipBlank() *Matcher {
	return &Matcher{
		Oneshot:  true,
		Linewise: true,
		match:    patternMatch(skipBlankPattern),
	}
}

// ByVertical returns the matcher for the window's first visible column.
// Scanning forward it degrades to line starts by convention. Otherwise the
// visible cell column is converted to a byte offset in each line; a line
// that ends left of the viewport clamps to its last byte.
func ByVertical() *Matcher {
	return &Matcher{
		Oneshot:  true,
		Linewise: true,
		match: func(line string, ctx Context, _ Options) (Span, bool) {
			if ctx.Direction == DirectionAfterCursor {
				return Span{Start: 0, End: 1}, true
			}
			char := textutil.CellToCharIndex(line, ctx.Window.ColumnFirst)
			off := textutil.CharIndexToByteOffset(line, char)
			if off < len(line) {
				return Span{Start: off, End: off + 1}, true
			}
			if line == "" {
				return Span{Start: 0, End: 1}, true
			}
			return Span{Start: len(line) - 1, End: len(line)}, true
		},
	}
}

// ByAnywhere returns the matcher for any word, case, or sigil boundary.
func ByAnywhere() *Matcher {
	return &Matcher{match: patternMatch(anywherePattern)}
}

// ByPattern returns a matcher for a user search pattern. When plain is true
// the pattern is matched literally. Case folding and alternate spellings
// follow opts.
func ByPattern(raw string, plain bool, opts Options) (*Matcher, error) {
	c, err := pattern.Compile(raw, plain, pattern.Options{
		CaseInsensitive: opts.CaseInsensitive,
		SmartCase:       opts.SmartCase,
		Mappings:        opts.Mappings,
	})
	if err != nil {
		return nil, err
	}
	return &Matcher{match: patternMatch(c)}, nil
}

// ForMode returns the catalogue matcher for mode.
func ForMode(mode Mode) (*Matcher, error) {
	switch mode {
	case ModeWord:
		return ByWordStart(), nil
	case ModeCamelCase:
		return ByCamelCase(), nil
	case ModeLineStart:
		return ByLineStart(), nil
	case ModeLineStartSkipBlank:
		return ByLineStartSkipBlank(), nil
	case ModeVertical:
		return ByVertical(), nil
	case ModeAnywhere:
		return ByAnywhere(), nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownMode, mode)
}
