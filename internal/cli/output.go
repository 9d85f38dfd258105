package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/vvka-141/contree/internal/tree"
	"github.com/vvka-141/contree/internal/tui"
)

// pageView is the JSON form of a queried page.
type pageView struct {
	UID            string     `json:"uid"`
	Path           string     `json:"path"`
	FilesystemPath string     `json:"filesystem_path,omitempty"`
	Depth          int        `json:"depth"`
	Title          string     `json:"title,omitempty"`
	Slug           string     `json:"slug"`
	Type           string     `json:"type"`
	Date           *time.Time `json:"date,omitempty"`
	Published      bool       `json:"published"`
	Visible        bool       `json:"visible"`
	Files          int        `json:"files"`
}

func newPageView(n *tree.Node, depth int) pageView {
	return pageView{
		UID:            n.UID.String(),
		Path:           n.Path,
		FilesystemPath: n.FilesystemPath,
		Depth:          depth,
		Title:          n.Title(),
		Slug:           n.Slug(),
		Type:           n.ContentType(),
		Date:           n.Date(),
		Published:      n.Settings.Published,
		Visible:        n.Settings.Visible,
		Files:          len(n.Files()),
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return nil
}

// validateFormat rejects unknown --format values before any work is done.
func validateFormat(format string) error {
	switch format {
	case formatText, formatJSON:
		return nil
	default:
		return fmt.Errorf("invalid argument %q for --format: want %s or %s", format, formatText, formatJSON)
	}
}

func newRenderer(w io.Writer) *tui.Renderer {
	return tui.NewRenderer(w, tui.IsStyled(w))
}
