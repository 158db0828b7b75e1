package pattern

import (
	"regexp"

	"github.com/dshills/linehop/internal/textutil"
)

// Options controls case negotiation and alternate-spelling merging when
// compiling a user pattern.
type Options struct {
	// CaseInsensitive forces case-insensitive matching.
	CaseInsensitive bool

	// SmartCase makes matching case-insensitive unless the pattern itself
	// starts with an uppercase letter. Takes precedence over
	// CaseInsensitive.
	SmartCase bool

	// Mappings supplies alternate spellings merged into the compiled
	// pattern. Nil means no alternatives.
	Mappings Mappings
}

// Compiled is a pattern ready to run against a single line of text.
type Compiled struct {
	re  *regexp.Regexp
	src string
}

// Compile builds a pattern from user input. When plain is true the pattern
// is matched literally. Alternate spellings from opts.Mappings are merged
// as an alternation of the raw pattern, and the resolved case directive is
// applied to the combined result.
func Compile(raw string, plain bool, opts Options) (*Compiled, error) {
	pat := raw
	if plain {
		pat = regexp.QuoteMeta(raw)
	}

	if opts.Mappings != nil {
		if frag := opts.Mappings.AlternateSpellings(raw, opts.CaseInsensitive); frag != "" {
			pat = "(?:" + pat + ")|(?:" + frag + ")"
		}
	}

	if insensitive(raw, opts) {
		pat = "(?i)" + pat
	}
	return compile(pat)
}

// CompileRaw compiles a fixed catalogue pattern with no case or mapping
// negotiation. When plain is true the pattern is escaped first.
func CompileRaw(raw string, plain bool) (*Compiled, error) {
	pat := raw
	if plain {
		pat = regexp.QuoteMeta(raw)
	}
	return compile(pat)
}

// MustCompileRaw is CompileRaw for patterns known valid at build time. It
// panics on failure.
func MustCompileRaw(raw string, plain bool) *Compiled {
	c, err := CompileRaw(raw, plain)
	if err != nil {
		panic(err)
	}
	return c
}

// insensitive resolves the case sensitivity of a user pattern. Smart-case
// inspects the pattern's first codepoint and wins over the explicit flag.
func insensitive(raw string, opts Options) bool {
	if opts.SmartCase {
		return !textutil.StartsWithUppercase(raw)
	}
	return opts.CaseInsensitive
}

func compile(pat string) (*Compiled, error) {
	re, err := regexp.Compile(pat)
	if err != nil {
		return nil, &CompileError{Pattern: pat, Err: err}
	}
	return &Compiled{re: re, src: pat}, nil
}

// String returns the source text of the compiled pattern.
func (c *Compiled) String() string { return c.src }

// FindFirst returns the half-open byte span of the leftmost match in s.
func (c *Compiled) FindFirst(s string) (start, end int, ok bool) {
	loc := c.re.FindStringIndex(s)
	if loc == nil {
		return 0, 0, false
	}
	return loc[0], loc[1], true
}

// FindFirstGroup returns the span of the first capture group that
// participated in the leftmost match. Alternation branches mark the portion
// of the match they report with a capture group; a branch that needs
// trailing context to decide a boundary consumes it outside the group,
// which stands in for a zero-width lookahead. A match with no participating
// group reports its whole span.
func (c *Compiled) FindFirstGroup(s string) (start, end int, ok bool) {
	idx := c.re.FindStringSubmatchIndex(s)
	if idx == nil {
		return 0, 0, false
	}
	for i := 2; i < len(idx); i += 2 {
		if idx[i] >= 0 {
			return idx[i], idx[i+1], true
		}
	}
	return idx[0], idx[1], true
}
