package jump

import (
	"strings"
	"testing"
)

func TestCollectMultipleMatchesPerLine(t *testing.T) {
	ctx := Context{Window: Window{TopLine: 5}}
	targets := Collect([]string{"foo bar", "baz"}, ByWordStart(), ctx, Options{})

	want := []Target{
		{Line: 5, Span: Span{0, 3}},
		{Line: 5, Span: Span{4, 7}},
		{Line: 6, Span: Span{0, 3}},
	}
	if len(targets) != len(want) {
		t.Fatalf("got %d targets %v, want %d", len(targets), targets, len(want))
	}
	for i := range want {
		if targets[i].Line != want[i].Line || targets[i].Span != want[i].Span {
			t.Errorf("target[%d] = %+v, want %+v", i, targets[i], want[i])
		}
	}
}

func TestCollectOneshotStopsPerLine(t *testing.T) {
	targets := Collect([]string{"a b c", "d e"}, ByLineStart(), Context{}, Options{})
	if len(targets) != 2 {
		t.Fatalf("oneshot matcher yielded %d targets, want one per line", len(targets))
	}
	for _, tgt := range targets {
		if tgt.Span != (Span{0, 1}) {
			t.Errorf("span = %v, want {0 1}", tgt.Span)
		}
	}
}

func TestCollectDirectionTrimsTargets(t *testing.T) {
	lines := []string{"foo bar", "baz qux"}

	before := Context{
		Direction: DirectionBeforeCursor,
		Cursor:    Position{Line: 0, Col: 3},
	}
	targets := Collect(lines, ByWordStart(), before, Options{})
	if len(targets) != 1 || targets[0].Span != (Span{0, 3}) {
		t.Errorf("before cursor: %v, want just the first word", targets)
	}

	after := Context{
		Direction: DirectionAfterCursor,
		Cursor:    Position{Line: 0, Col: 3},
	}
	targets = Collect(lines, ByWordStart(), after, Options{})
	if len(targets) != 3 {
		t.Errorf("after cursor: got %d targets %v, want 3", len(targets), targets)
	}
	for _, tgt := range targets {
		if tgt.Line == 0 && tgt.Span.Start <= 3 {
			t.Errorf("target %+v is not after the cursor", tgt)
		}
	}
}

func TestCollectEmptyAndBlankLines(t *testing.T) {
	targets := Collect([]string{"", "   ", "x"}, ByWordStart(), Context{}, Options{})
	if len(targets) != 1 {
		t.Fatalf("got %v, want only the target on the last line", targets)
	}
	if targets[0].Line != 2 {
		t.Errorf("target line = %d, want 2", targets[0].Line)
	}
}

func TestAssignLabelsSingleKeys(t *testing.T) {
	targets := make([]Target, 4)
	AssignLabels(targets, "asdf")

	want := []string{"a", "s", "d", "f"}
	for i, tgt := range targets {
		if tgt.Label != want[i] {
			t.Errorf("label[%d] = %q, want %q", i, tgt.Label, want[i])
		}
	}
}

func TestAssignLabelsPrefixFree(t *testing.T) {
	targets := make([]Target, 30)
	AssignLabels(targets, DefaultKeys)

	seen := make(map[string]bool, len(targets))
	for _, tgt := range targets {
		if tgt.Label == "" {
			t.Fatal("unlabeled target")
		}
		if seen[tgt.Label] {
			t.Errorf("duplicate label %q", tgt.Label)
		}
		seen[tgt.Label] = true
	}

	// No label may be a prefix of another or typing it would be ambiguous.
	for a := range seen {
		for b := range seen {
			if a != b && strings.HasPrefix(b, a) {
				t.Errorf("label %q is a prefix of %q", a, b)
			}
		}
	}
}

func TestAssignLabelsDegenerateAlphabet(t *testing.T) {
	// One key cannot distinguish two targets; the default alphabet takes
	// over.
	targets := make([]Target, 3)
	AssignLabels(targets, "a")
	if targets[0].Label == targets[1].Label {
		t.Error("labels must be distinct")
	}

	AssignLabels(targets, "")
	for _, tgt := range targets {
		if tgt.Label == "" {
			t.Error("empty alphabet should fall back to DefaultKeys")
		}
	}
}
