package tui

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vvka-141/contree/internal/tree"
	"github.com/vvka-141/contree/pkg/contree"
)

// Renderer writes resolved files and queried pages for humans.
// Plain renderers never emit escape sequences.
type Renderer struct {
	out    io.Writer
	styled bool
}

// NewRenderer creates a renderer writing to out.
// Panics if out is nil.
func NewRenderer(out io.Writer, styled bool) *Renderer {
	if out == nil {
		panic("out cannot be nil")
	}
	return &Renderer{out: out, styled: styled}
}

func (r *Renderer) render(style lipgloss.Style, s string) string {
	if !r.styled {
		return s
	}
	return style.Render(s)
}

// File writes one file as "→ /pathname  type  key=value ...".
func (r *Renderer) File(f contree.File) {
	var b strings.Builder
	b.WriteString(r.render(MutedStyle, SymbolArrowRight))
	b.WriteByte(' ')
	b.WriteString(r.render(PathStyle, f.Pathname))
	b.WriteString("  ")
	b.WriteString(r.render(TagStyle, f.Type))
	for _, key := range slices.Sorted(maps.Keys(f.Metadata)) {
		fmt.Fprintf(&b, "  %s=%v", r.render(KeyStyle, key), f.Metadata[key])
	}
	fmt.Fprintln(r.out, b.String())
}

// Files writes every file followed by a count line.
func (r *Renderer) Files(files []contree.File) {
	for _, f := range files {
		r.File(f)
	}
	r.Summary(len(files), "file", "files")
}

// Page writes one page indented by depth as "• /path  Title  [type]".
func (r *Renderer) Page(n *tree.Node, depth int) {
	var b strings.Builder
	b.WriteString(strings.Repeat("  ", depth))
	b.WriteString(r.render(MutedStyle, SymbolBullet))
	b.WriteByte(' ')
	b.WriteString(r.render(PathStyle, n.Path))
	if title := n.Title(); title != "" {
		b.WriteString("  ")
		b.WriteString(r.render(TitleStyle, title))
	}
	b.WriteString("  ")
	b.WriteString(r.render(TagStyle, "["+n.ContentType()+"]"))
	if date := n.Date(); date != nil {
		b.WriteString("  ")
		b.WriteString(r.render(MutedStyle, date.Format("2006-01-02")))
	}
	fmt.Fprintln(r.out, b.String())
}

// Summary writes a muted count line such as "3 files".
func (r *Renderer) Summary(count int, singular, plural string) {
	noun := plural
	if count == 1 {
		noun = singular
	}
	fmt.Fprintln(r.out, r.render(MutedStyle, fmt.Sprintf("%d %s", count, noun)))
}

// NotFound writes the message printed when a lookup yields nothing.
func (r *Renderer) NotFound(what string) {
	fmt.Fprintln(r.out, r.render(ErrorStyle, SymbolCross)+" no match for "+what)
}

// Count writes a bare count.
func (r *Renderer) Count(n int) {
	fmt.Fprintln(r.out, r.render(SuccessStyle, fmt.Sprint(n)))
}
