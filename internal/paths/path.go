package paths

import (
	"regexp"
	"strings"

	"github.com/vvka-141/contree/internal/pattern"
)

// Path is a parsed slash-delimited address, possibly relative, glob or regex.
type Path struct {
	elements  []Element
	absolute  bool
	directory bool
	raw       string // string form as parsed or last rebuilt
}

// Parse parses s into a Path.
//
// A string that is a valid delimited regex becomes a single regex element,
// neither absolute nor directory. Otherwise the path is absolute when s starts
// with "/", a directory when s ends with "/", and empty and "." segments are
// dropped.
func Parse(s string) Path {
	if pattern.IsRegex(s) {
		return Path{elements: []Element{regexElement(s)}, raw: s}
	}

	p := Path{
		absolute:  strings.HasPrefix(s, "/"),
		directory: s != "" && strings.HasSuffix(s, "/"),
		raw:       s,
	}
	for _, segment := range strings.Split(s, "/") {
		if segment == "" || segment == "." {
			continue
		}
		p.elements = append(p.elements, NewElement(segment))
	}
	return p
}

// New builds a Path from elements and flags.
func New(elements []Element, absolute, directory bool) Path {
	p := Path{absolute: absolute, directory: directory}
	p.SetElements(elements)
	return p
}

// Elements returns a copy of the path elements.
func (p Path) Elements() []Element {
	return append([]Element(nil), p.elements...)
}

// Names returns the element names in order.
func (p Path) Names() []string {
	names := make([]string, len(p.elements))
	for i, e := range p.elements {
		names[i] = e.name
	}
	return names
}

func (p Path) Len() int          { return len(p.elements) }
func (p Path) IsEmpty() bool     { return len(p.elements) == 0 }
func (p Path) IsAbsolute() bool  { return p.absolute }
func (p Path) IsDirectory() bool { return p.directory }

// IsRegex reports whether any element is a regex.
func (p Path) IsRegex() bool {
	for _, e := range p.elements {
		if e.isRegex {
			return true
		}
	}
	return false
}

// IsGlob reports whether any element is a glob and none is a regex.
func (p Path) IsGlob() bool {
	glob := false
	for _, e := range p.elements {
		if e.isRegex {
			return false
		}
		glob = glob || e.isGlob
	}
	return glob
}

// isWholeRegex reports whether p was parsed from a delimited regex as a whole.
func (p Path) isWholeRegex() bool {
	return len(p.elements) == 1 && p.elements[0].isRegex && !p.absolute && !p.directory
}

// Regexp compiles the whole-path regex of a regex Path.
// Returns nil for any other path.
func (p Path) Regexp() *regexp.Regexp {
	if !p.isWholeRegex() {
		return nil
	}
	re, err := pattern.ParseRegex(p.elements[0].name)
	if err != nil {
		return nil
	}
	return re
}

// String returns the path as parsed, or as last rebuilt by a structural change.
func (p Path) String() string {
	if p.raw == "" && len(p.elements) > 0 {
		return p.Rebuild()
	}
	return p.raw
}

// Rebuild reconstructs the string form from elements and flags.
// Collapsed segments ("a//b", "./a") do not survive a rebuild.
func (p Path) Rebuild() string {
	if p.isWholeRegex() {
		return p.elements[0].name
	}
	if len(p.elements) == 0 {
		if p.absolute {
			return "/"
		}
		return ""
	}

	var b strings.Builder
	if p.absolute {
		b.WriteByte('/')
	}
	b.WriteString(strings.Join(p.Names(), "/"))
	if p.directory {
		b.WriteByte('/')
	}
	return b.String()
}

// Clone returns a deep copy of p.
func (p Path) Clone() Path {
	c := p
	c.elements = p.Elements()
	return c
}

// AppendElement adds e at the end of the path.
func (p *Path) AppendElement(e Element) {
	elements := make([]Element, 0, len(p.elements)+1)
	elements = append(elements, p.elements...)
	p.SetElements(append(elements, e))
}

// SetElements replaces the elements and rebuilds the string form.
func (p *Path) SetElements(elements []Element) {
	p.elements = append([]Element(nil), elements...)
	p.raw = p.Rebuild()
}

// SetAbsolute changes the absolute flag and rebuilds the string form.
func (p *Path) SetAbsolute(absolute bool) {
	p.absolute = absolute
	p.raw = p.Rebuild()
}

// SetDirectory changes the directory flag and rebuilds the string form.
func (p *Path) SetDirectory(directory bool) {
	p.directory = directory
	p.raw = p.Rebuild()
}

// DropLastElement removes the last element in place and marks the path a directory.
func (p *Path) DropLastElement() {
	p.directory = true
	if len(p.elements) == 0 {
		p.raw = p.Rebuild()
		return
	}
	p.SetElements(p.elements[:len(p.elements)-1])
}

// AppendPath returns p followed by child's elements.
// The result keeps p's absolute flag and takes child's directory flag.
func (p Path) AppendPath(child Path) Path {
	elements := make([]Element, 0, len(p.elements)+len(child.elements))
	elements = append(elements, p.elements...)
	elements = append(elements, child.elements...)
	return New(elements, p.absolute, child.directory)
}

// Directory returns the containing directory of p.
// A directory path is returned unchanged; p itself is never modified.
func (p Path) Directory() Path {
	dir := p.Clone()
	if !dir.directory {
		dir.DropLastElement()
	}
	return dir
}

// File returns a single-element relative path holding the last element's name.
// The second result is false when p is a directory or has no elements.
func (p Path) File() (Path, bool) {
	if p.directory || len(p.elements) == 0 {
		return Path{}, false
	}
	last := p.elements[len(p.elements)-1]
	return New([]Element{NewElement(last.name)}, false, false), true
}
