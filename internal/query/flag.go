package query

import (
	"fmt"
	"strings"

	"github.com/vvka-141/contree/pkg/contree"
)

// Flag is a tri-state boolean criterion.
type Flag int

const (
	Any Flag = iota // ignore the setting
	Yes
	No
)

func (f Flag) String() string {
	switch f {
	case Yes:
		return "true"
	case No:
		return "false"
	default:
		return "any"
	}
}

// matches reports whether v satisfies f.
func (f Flag) matches(v bool) bool {
	switch f {
	case Yes:
		return v
	case No:
		return !v
	default:
		return true
	}
}

// ParseFlag parses "true"/"yes", "false"/"no" or "any"/"" into a Flag.
func ParseFlag(s string) (Flag, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "any":
		return Any, nil
	case "true", "yes", "1":
		return Yes, nil
	case "false", "no", "0":
		return No, nil
	}
	return Any, fmt.Errorf("%w: flag %q: want true, false or any", contree.ErrInvalidCriterion, s)
}

// Mode combines the values of a multi-value criterion.
type Mode int

const (
	ModeAnd Mode = iota // every value must be present
	ModeOr              // at least one value must be present
)

func (m Mode) String() string {
	if m == ModeOr {
		return "or"
	}
	return "and"
}

// ParseMode parses "and" or "or". An empty string means ModeAnd.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "and":
		return ModeAnd, nil
	case "or":
		return ModeOr, nil
	}
	return ModeAnd, fmt.Errorf("%w: mode %q: want \"and\" or \"or\"", contree.ErrInvalidCriterion, s)
}
