package pattern

import (
	"fmt"
	"regexp"
	"strings"
)

// Matcher tests strings against a compiled pattern.
type Matcher interface {
	// Match reports whether s matches the pattern.
	Match(s string) bool

	// Kind returns the classification the matcher was compiled from.
	Kind() Kind

	// String returns the source pattern.
	String() string
}

// Compile classifies s and compiles it into a Matcher.
// Literal matchers compare for equality.
func Compile(s string) (Matcher, error) {
	switch Classify(s) {
	case KindRegex:
		re, err := ParseRegex(s)
		if err != nil {
			return nil, err
		}
		return &regexMatcher{source: s, re: re, kind: KindRegex}, nil
	case KindGlob:
		re, err := CompileGlob(s)
		if err != nil {
			return nil, fmt.Errorf("invalid glob %q: %w", s, err)
		}
		return &regexMatcher{source: s, re: re, kind: KindGlob}, nil
	default:
		return literalMatcher(s), nil
	}
}

// CompileAll compiles every pattern, stopping at the first failure.
func CompileAll(patterns []string) ([]Matcher, error) {
	matchers := make([]Matcher, 0, len(patterns))
	for _, p := range patterns {
		m, err := Compile(p)
		if err != nil {
			return nil, fmt.Errorf("pattern %q: %w", p, err)
		}
		matchers = append(matchers, m)
	}
	return matchers, nil
}

// CompileContains is like Compile, except that literals match as substrings
// and globs are not anchored. Used for matching inside larger text.
func CompileContains(s string) (Matcher, error) {
	switch Classify(s) {
	case KindRegex:
		return Compile(s)
	case KindGlob:
		re, err := regexp.Compile(GlobBody(s))
		if err != nil {
			return nil, fmt.Errorf("invalid glob %q: %w", s, err)
		}
		return &regexMatcher{source: s, re: re, kind: KindGlob}, nil
	default:
		return substringMatcher(s), nil
	}
}

type literalMatcher string

func (m literalMatcher) Match(s string) bool { return string(m) == s }
func (m literalMatcher) Kind() Kind          { return KindLiteral }
func (m literalMatcher) String() string      { return string(m) }

type substringMatcher string

func (m substringMatcher) Match(s string) bool { return strings.Contains(s, string(m)) }
func (m substringMatcher) Kind() Kind          { return KindLiteral }
func (m substringMatcher) String() string      { return string(m) }

type regexMatcher struct {
	source string
	re     *regexp.Regexp
	kind   Kind
}

func (m *regexMatcher) Match(s string) bool { return m.re.MatchString(s) }
func (m *regexMatcher) Kind() Kind          { return m.kind }
func (m *regexMatcher) String() string      { return m.source }

// Any reports whether s matches at least one matcher.
func Any(matchers []Matcher, s string) bool {
	for _, m := range matchers {
		if m.Match(s) {
			return true
		}
	}
	return false
}
