// Package textutil provides the low-level text inspection helpers shared by
// the jump matchers: codepoint-aware case tests, the keyword character
// class, and conversions between display cells, characters, and byte
// offsets within a single line.
package textutil
