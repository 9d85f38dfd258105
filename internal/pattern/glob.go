package pattern

import (
	"regexp"
	"strings"
)

// GlobToRegexp translates a glob into an anchored regular expression source.
// Unbalanced braces are taken literally.
func GlobToRegexp(glob string) string {
	var b strings.Builder
	b.Grow(len(glob) + 8)
	b.WriteByte('^')
	b.WriteString(GlobBody(glob))
	b.WriteByte('$')
	return b.String()
}

// GlobBody translates a glob without adding anchors, so callers can embed it
// in a larger expression.
func GlobBody(glob string) string {
	var b strings.Builder
	depth := 0
	for i := 0; i < len(glob); i++ {
		c := glob[i]
		switch {
		case c == '\\' && i+1 < len(glob):
			i++
			b.WriteString(regexp.QuoteMeta(glob[i : i+1]))
		case c == '*':
			b.WriteString("[^/]*")
		case c == '?':
			b.WriteString("[^/]")
		case c == '{' && hasClosingBrace(glob[i+1:]):
			depth++
			b.WriteString("(?:")
		case c == '}' && depth > 0:
			depth--
			b.WriteByte(')')
		case c == ',' && depth > 0:
			b.WriteByte('|')
		default:
			b.WriteString(regexp.QuoteMeta(glob[i : i+1]))
		}
	}
	return b.String()
}

// hasClosingBrace reports whether rest holds the "}" balancing an opening brace.
func hasClosingBrace(rest string) bool {
	depth := 0
	for i := 0; i < len(rest); i++ {
		switch rest[i] {
		case '\\':
			i++
		case '{':
			depth++
		case '}':
			if depth == 0 {
				return true
			}
			depth--
		}
	}
	return false
}

// CompileGlob compiles a glob into an anchored regexp.
func CompileGlob(glob string) (*regexp.Regexp, error) {
	return regexp.Compile(GlobToRegexp(glob))
}
