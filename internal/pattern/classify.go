package pattern

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	errTooShort     = errors.New("too short to be a delimited regex")
	errBadDelimiter = errors.New("delimiter must not be alphanumeric, backslash or whitespace")
	errNoEnd        = errors.New("no ending delimiter")
)

// closing delimiters of bracket-style delimiters
var bracketPairs = map[byte]byte{
	'(': ')',
	'[': ']',
	'{': '}',
	'<': '>',
}

// supported trailing modifiers, mapped onto RE2 flags
const regexFlags = "imsU"

// ParseRegex parses s as a delimited regular expression such as "/^a.+\.png$/i"
// or "#^blog/#". The end delimiter is the first unescaped closing delimiter
// (bracket delimiters nest); anything after it must be modifiers from "imsU".
// The returned regexp carries the modifiers as a leading flag group.
func ParseRegex(s string) (*regexp.Regexp, error) {
	if len(s) < 2 {
		return nil, errTooShort
	}

	open := s[0]
	if !isDelimiter(open) {
		return nil, errBadDelimiter
	}
	closing := open
	if c, ok := bracketPairs[open]; ok {
		closing = c
	}

	end := -1
	depth := 0
	for i := 1; i < len(s) && end < 0; i++ {
		c := s[i]
		switch {
		case c == '\\':
			i++
		case closing != open && c == open:
			depth++
		case c == closing:
			if depth == 0 {
				end = i
			} else {
				depth--
			}
		}
	}
	if end < 0 {
		return nil, errNoEnd
	}

	flags := s[end+1:]
	for _, f := range flags {
		if !strings.ContainsRune(regexFlags, f) {
			return nil, fmt.Errorf("unknown modifier %q", f)
		}
	}

	expr := s[1:end]
	if flags != "" {
		expr = "(?" + flags + ")" + expr
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, err
	}
	return re, nil
}

func isDelimiter(c byte) bool {
	switch {
	case c >= 0x80, c == 0:
		return false
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return false
	case c == '\\', c == ' ', c == '\t', c == '\n', c == '\r', c == '\v', c == '\f':
		return false
	}
	return true
}

// IsRegex reports whether s is a valid delimited regular expression.
func IsRegex(s string) bool {
	_, err := ParseRegex(s)
	return err == nil
}

// IsGlob reports whether s is not a regex and contains a glob token:
// "*", "?" or a "{...}" group.
func IsGlob(s string) bool {
	if IsRegex(s) {
		return false
	}
	if strings.ContainsAny(s, "*?") {
		return true
	}
	open := strings.IndexByte(s, '{')
	return open >= 0 && strings.IndexByte(s[open+1:], '}') >= 0
}

// Kind is the classification of a pattern string.
type Kind int

const (
	KindLiteral Kind = iota
	KindGlob
	KindRegex
)

func (k Kind) String() string {
	switch k {
	case KindGlob:
		return "glob"
	case KindRegex:
		return "regex"
	default:
		return "literal"
	}
}

// Classify returns the kind of s. Regex detection is checked first.
func Classify(s string) Kind {
	switch {
	case IsRegex(s):
		return KindRegex
	case IsGlob(s):
		return KindGlob
	default:
		return KindLiteral
	}
}
