package query

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/vvka-141/contree/pkg/contree"
)

// Comparator kinds accepted by NewComparator.
const (
	KindNumber = "number"
	KindDate   = "date"
	KindString = "string"
)

// Operator is a comparison operator.
type Operator string

const (
	OpEqual        Operator = "="
	OpNotEqual     Operator = "!="
	OpGreater      Operator = ">"
	OpGreaterEqual Operator = ">="
	OpLess         Operator = "<"
	OpLessEqual    Operator = "<="
)

// operator prefixes, longest first
var operators = []struct {
	token string
	op    Operator
}{
	{">=", OpGreaterEqual},
	{"<=", OpLessEqual},
	{"==", OpEqual},
	{"!=", OpNotEqual},
	{">", OpGreater},
	{"<", OpLess},
	{"=", OpEqual},
}

// word operators of date expressions
var dateAliases = map[string]Operator{
	"since":  OpGreater,
	"after":  OpGreater,
	"until":  OpLess,
	"before": OpLess,
}

// dateLayouts are tried in order when parsing date operands.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

var relativeDays = regexp.MustCompile(`^([+-]?\d+)\s*(d|w)$`)

// now is replaced in tests.
var now = time.Now

// Comparator compares values against a fixed operand, such as "> 3" or
// "since 2024-01-01".
type Comparator struct {
	kind    string
	op      Operator
	operand string
	number  float64
	date    time.Time
}

// NewComparator parses expr as a comparison of the given kind.
//
// An expression is an optional operator followed by an operand; a bare operand
// means equality. Date expressions also accept since/after (">") and
// until/before ("<"), and operands such as "now", "today", "-7d" or "-36h".
func NewComparator(kind, expr string) (Comparator, error) {
	switch kind {
	case KindNumber, KindDate, KindString:
	default:
		return Comparator{}, fmt.Errorf("%w: %q", contree.ErrUnknownComparator, kind)
	}

	c := Comparator{kind: kind, op: OpEqual}
	rest := strings.TrimSpace(expr)

	parsed := false
	if kind == KindDate {
		word, tail, _ := strings.Cut(rest, " ")
		if op, ok := dateAliases[strings.ToLower(word)]; ok {
			c.op, rest, parsed = op, tail, true
		}
	}
	if !parsed {
		for _, o := range operators {
			if strings.HasPrefix(rest, o.token) {
				c.op, rest = o.op, rest[len(o.token):]
				break
			}
		}
	}

	c.operand = strings.TrimSpace(rest)
	if c.operand == "" {
		return Comparator{}, fmt.Errorf("%w: empty operand in %q", contree.ErrInvalidCriterion, expr)
	}

	switch kind {
	case KindNumber:
		n, err := strconv.ParseFloat(c.operand, 64)
		if err != nil {
			return Comparator{}, fmt.Errorf("%w: %q is not a number", contree.ErrInvalidCriterion, c.operand)
		}
		c.number = n
	case KindDate:
		t, err := parseDate(c.operand)
		if err != nil {
			return Comparator{}, fmt.Errorf("%w: %q is not a date", contree.ErrInvalidCriterion, c.operand)
		}
		c.date = t
	}
	return c, nil
}

// MustComparator is like NewComparator but panics on error.
func MustComparator(kind, expr string) Comparator {
	c, err := NewComparator(kind, expr)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Comparator) Kind() string       { return c.kind }
func (c Comparator) Operator() Operator { return c.op }

func (c Comparator) String() string {
	return string(c.op) + " " + c.operand
}

// Match converts v to the comparator kind and compares it with the operand.
// Values that cannot be converted never match.
func (c Comparator) Match(v any) bool {
	switch c.kind {
	case KindNumber:
		n, ok := toNumber(v)
		return ok && c.MatchNumber(n)
	case KindDate:
		t, ok := toTime(v)
		return ok && c.MatchTime(t)
	default:
		if v == nil {
			return false
		}
		return c.MatchString(fmt.Sprint(v))
	}
}

// MatchNumber compares n numerically.
func (c Comparator) MatchNumber(n float64) bool {
	switch {
	case n < c.number:
		return c.holds(-1)
	case n > c.number:
		return c.holds(1)
	default:
		return c.holds(0)
	}
}

// MatchTime compares t chronologically. The zero time never matches.
func (c Comparator) MatchTime(t time.Time) bool {
	if t.IsZero() {
		return false
	}
	return c.holds(t.Compare(c.date))
}

// MatchString compares s lexically with the operand.
func (c Comparator) MatchString(s string) bool {
	return c.holds(strings.Compare(s, c.operand))
}

// holds reports whether the operator accepts a three-way comparison result.
func (c Comparator) holds(cmp int) bool {
	switch c.op {
	case OpNotEqual:
		return cmp != 0
	case OpGreater:
		return cmp > 0
	case OpGreaterEqual:
		return cmp >= 0
	case OpLess:
		return cmp < 0
	case OpLessEqual:
		return cmp <= 0
	default:
		return cmp == 0
	}
}

func parseDate(s string) (time.Time, error) {
	switch strings.ToLower(s) {
	case "now":
		return now(), nil
	case "today":
		y, m, d := now().Date()
		return time.Date(y, m, d, 0, 0, 0, 0, now().Location()), nil
	}
	if m := relativeDays.FindStringSubmatch(s); m != nil {
		n, _ := strconv.Atoi(m[1])
		if m[2] == "w" {
			n *= 7
		}
		return now().AddDate(0, 0, n), nil
	}
	if strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+") {
		if d, err := time.ParseDuration(s); err == nil {
			return now().Add(d), nil
		}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

func toNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	}
	return 0, false
}

func toTime(v any) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, true
	case *time.Time:
		if t == nil {
			return time.Time{}, false
		}
		return *t, true
	case string:
		parsed, err := parseDate(t)
		return parsed, err == nil
	}
	return time.Time{}, false
}
