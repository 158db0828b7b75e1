// Package jump locates candidate jump targets inside single lines of text.
//
// A Matcher pairs a match function with two contract flags: Oneshot
// matchers answer a line-level yes/no and stop the scan after the first hit
// on each line; Linewise matchers target the line as a whole rather than
// the matched span. The catalogue covers word starts, camel-case token
// boundaries, line starts, the first non-blank column, the window's first
// visible column, a permissive "anywhere" boundary, and user search
// patterns.
//
// Matchers are immutable and hold no state between calls, so a single
// Matcher may be used concurrently across lines. Spans are half-open byte
// ranges local to the line text.
//
// Collect scans the visible lines of a window with a matcher and
// AssignLabels gives the resulting targets prefix-free hint labels.
package jump
