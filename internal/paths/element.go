package paths

import "github.com/vvka-141/contree/internal/pattern"

// ParentRef is the element name that refers to the parent directory.
const ParentRef = ".."

// Element is one segment of a Path.
type Element struct {
	name    string
	isGlob  bool
	isRegex bool
}

// NewElement classifies name as literal, glob or regex.
// ".." is always a literal parent reference.
func NewElement(name string) Element {
	if name == ParentRef {
		return Element{name: name}
	}
	if pattern.IsRegex(name) {
		return Element{name: name, isRegex: true}
	}
	return Element{name: name, isGlob: pattern.IsGlob(name)}
}

// regexElement builds a whole-path regex element without reclassifying it.
func regexElement(expr string) Element {
	return Element{name: expr, isRegex: true}
}

func (e Element) Name() string   { return e.name }
func (e Element) IsGlob() bool   { return e.isGlob }
func (e Element) IsRegex() bool  { return e.isRegex }
func (e Element) IsParent() bool { return !e.isRegex && e.name == ParentRef }
func (e Element) String() string { return e.name }
