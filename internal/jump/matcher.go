package jump

import "github.com/dshills/linehop/internal/pattern"

// Span is a half-open byte range [Start, End) local to one line.
type Span struct {
	Start int
	End   int
}

// Options carries the per-invocation matching options.
type Options struct {
	// CaseInsensitive forces case-insensitive matching of user patterns.
	CaseInsensitive bool

	// SmartCase folds user patterns to case-insensitive unless they start
	// with an uppercase letter.
	SmartCase bool

	// Mappings supplies alternate spellings for user patterns. Nil
	// disables the merge.
	Mappings pattern.Mappings
}

// matchFunc locates the leftmost target span in one line.
type matchFunc func(line string, ctx Context, opts Options) (Span, bool)

// Matcher locates jump targets within a single line.
type Matcher struct {
	// Oneshot marks matchers that answer a line-level yes/no; the scan
	// stops after the first hit on each line.
	Oneshot bool

	// Linewise marks matchers whose target is the line itself rather than
	// the matched span.
	Linewise bool

	match matchFunc
}

// Match returns the leftmost target span in line, or ok=false when the line
// has none. Spans from pattern-backed matchers always satisfy
// 0 <= Start < End <= len(line); the linewise matchers report the
// positional marker (0, 1) even on an empty line, and the vertical matcher
// clamps to the last byte of a line shorter than the viewport's left edge.
func (m *Matcher) Match(line string, ctx Context, opts Options) (Span, bool) {
	return m.match(line, ctx, opts)
}

// patternMatch adapts a compiled pattern to the matcher contract. Zero-width
// matches are dropped so the span invariant holds even for branches that
// can match an empty line.
func patternMatch(c *pattern.Compiled) matchFunc {
	return func(line string, _ Context, _ Options) (Span, bool) {
		start, end, ok := c.FindFirstGroup(line)
		if !ok || start == end {
			return Span{}, false
		}
		return Span{Start: start, End: end}, true
	}
}
