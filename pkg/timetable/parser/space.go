package parser

import (
	"strings"
	"unicode"
)

// spaceClass matches one whitespace character the way spreadsheet text
// pasted from web pages uses it: ASCII blanks, every Zs space (including
// U+00A0), line and paragraph separators and the byte order mark.
const spaceClass = `[\t\n\v\f\r\p{Zs}\x{2028}\x{2029}\x{FEFF}]`

// isSpace reports whether r belongs to spaceClass.
func isSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', '\u2028', '\u2029', '\uFEFF':
		return true
	}
	return unicode.Is(unicode.Zs, r)
}

// trimSpace removes leading and trailing spaceClass characters.
func trimSpace(s string) string {
	return strings.TrimFunc(s, isSpace)
}
