package jump

// Target is one candidate jump destination inside a window.
type Target struct {
	// Line is the absolute line number the target sits on.
	Line int

	// Span is the matched byte range within that line's text.
	Span Span

	// Label is the hint label assigned by AssignLabels; empty until then.
	Label string
}

// Collect scans the visible lines of a window with a matcher and returns
// every target it yields, in line-then-column order. lines holds the text
// of the visible lines, lines[0] sitting on ctx.Window.TopLine. Oneshot
// matchers contribute at most one target per line. The jump direction trims
// targets on the wrong side of the cursor.
//
// Successive in-line matches are found by re-running the matcher on the
// line text past the previous span, with offsets translated back to the
// full line.
func Collect(lines []string, m *Matcher, ctx Context, opts Options) []Target {
	var targets []Target
	for i, line := range lines {
		lineNo := ctx.Window.TopLine + i
		offset := 0
		rest := line
		for {
			span, ok := m.Match(rest, ctx, opts)
			if !ok {
				break
			}
			t := Target{
				Line: lineNo,
				Span: Span{Start: offset + span.Start, End: offset + span.End},
			}
			if inDirection(t, ctx) {
				targets = append(targets, t)
			}
			if m.Oneshot || span.End >= len(rest) {
				break
			}
			offset += span.End
			rest = rest[span.End:]
		}
	}
	return targets
}

// inDirection reports whether t lies on the requested side of the cursor.
func inDirection(t Target, ctx Context) bool {
	switch ctx.Direction {
	case DirectionBeforeCursor:
		return t.Line < ctx.Cursor.Line ||
			(t.Line == ctx.Cursor.Line && t.Span.Start < ctx.Cursor.Col)
	case DirectionAfterCursor:
		return t.Line > ctx.Cursor.Line ||
			(t.Line == ctx.Cursor.Line && t.Span.Start > ctx.Cursor.Col)
	}
	return true
}
