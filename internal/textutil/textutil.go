package textutil

import (
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// StartsWithUppercase reports whether the first codepoint of s is an
// uppercase letter. A leading blank counts as lowercase regardless of what
// the case tables say about it. The empty string is not uppercase.
func StartsWithUppercase(s string) bool {
	if s == "" {
		return false
	}
	r, _ := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || unicode.IsSpace(r) {
		return false
	}
	return unicode.IsUpper(r)
}

// IsWordRune reports whether r belongs to the keyword character class used
// by the word matcher: letters, digits, and underscore.
func IsWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// CellToCharIndex converts a display-cell column into a character index in
// line. Wide characters occupy multiple cells; a column landing inside a
// wide character resolves to that character. A column at or past the line's
// display width returns the character count.
func CellToCharIndex(line string, cell int) int {
	if cell <= 0 {
		return 0
	}
	var chars, cells int
	g := uniseg.NewGraphemes(line)
	for g.Next() {
		w := g.Width()
		if cells+w > cell {
			return chars
		}
		cells += w
		chars++
	}
	return chars
}

// CharIndexToByteOffset converts a character index into a byte offset in
// line. An index at or past the end returns len(line).
func CharIndexToByteOffset(line string, idx int) int {
	if idx <= 0 {
		return 0
	}
	g := uniseg.NewGraphemes(line)
	for i := 0; g.Next(); i++ {
		if i == idx {
			start, _ := g.Positions()
			return start
		}
	}
	return len(line)
}

// CellsBefore returns the number of display cells occupied by line[:off].
// Offsets past the end of the line measure the whole line.
func CellsBefore(line string, off int) int {
	if off > len(line) {
		off = len(line)
	}
	if off <= 0 {
		return 0
	}
	return uniseg.StringWidth(line[:off])
}
