package tui

import (
	"io"
	"os"

	"golang.org/x/term"
)

// Mode represents how contree writes results.
type Mode int

const (
	// ModePlain is used for CI/CD pipelines, scripts and redirected output.
	ModePlain Mode = iota
	// ModeStyled is used when a human is reading the terminal.
	ModeStyled
)

// DetectMode determines whether output written to w should be styled.
//
// Returns ModePlain if:
//   - CONTREE_PLAIN=1 is set
//   - CI is set (common CI/CD convention)
//   - NO_COLOR is set (accessibility/automation indicator)
//   - w is not a terminal
//
// Returns ModeStyled otherwise.
func DetectMode(w io.Writer) Mode {
	if os.Getenv("CONTREE_PLAIN") == "1" {
		return ModePlain
	}
	if os.Getenv("CI") != "" {
		return ModePlain
	}
	if os.Getenv("NO_COLOR") != "" {
		return ModePlain
	}

	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return ModePlain
	}
	return ModeStyled
}

// IsStyled is a convenience function that returns true if output to w is styled.
func IsStyled(w io.Writer) bool {
	return DetectMode(w) == ModeStyled
}
