package paths

import "github.com/vvka-141/contree/pkg/contree"

// Normalize resolves ".." elements of path.
//
// A parent reference first cancels the previous element of path itself. With
// nothing left to cancel it borrows from parent, shortening it. When both are
// exhausted the path would escape its boundary and a *contree.TraversalError
// is returned.
//
// Both the normalized path and the possibly shortened parent are returned.
// Regex paths are returned unchanged. Pass an empty Path when there is no parent.
func Normalize(path, parent Path) (Path, Path, error) {
	if path.IsRegex() {
		return path, parent, nil
	}

	out := make([]Element, 0, len(path.elements))
	boundary := parent.Elements()
	for _, e := range path.elements {
		if !e.IsParent() {
			out = append(out, e)
			continue
		}
		switch {
		case len(out) > 0:
			out = out[:len(out)-1]
		case len(boundary) > 0:
			boundary = boundary[:len(boundary)-1]
		default:
			return path, parent, &contree.TraversalError{Path: path.String()}
		}
	}

	normalized := path.Clone()
	normalized.SetElements(out)
	reduced := parent.Clone()
	reduced.SetElements(boundary)
	return normalized, reduced, nil
}
