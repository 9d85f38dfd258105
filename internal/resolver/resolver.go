package resolver

import (
	"strings"

	"github.com/vvka-141/contree/internal/paths"
	"github.com/vvka-141/contree/pkg/contree"
)

// Resolver resolves a path, relative to an optional parent, to a single file.
type Resolver interface {
	// Get returns the file at path, or nil if there is none.
	// Pass an empty Path when there is no parent.
	Get(path, parent paths.Path) (*contree.File, error)
}

// MultiResolver can also resolve patterns to many files.
type MultiResolver interface {
	Resolver

	// Find returns every file matching path. The result is empty, not nil,
	// when nothing matches.
	Find(path, parent paths.Path) ([]contree.File, error)
}

// FindOne tries Get first and falls back to Find when r is a MultiResolver.
//
// A single match is returned as is. With several matches, strict lookups fail
// with a *contree.AmbiguityError and non-strict lookups return the first.
// No match returns nil.
func FindOne(r Resolver, path, parent paths.Path, strict bool) (*contree.File, error) {
	file, err := r.Get(path, parent)
	if err != nil || file != nil {
		return file, err
	}

	multi, ok := r.(MultiResolver)
	if !ok {
		return nil, nil
	}
	files, err := multi.Find(path, parent)
	if err != nil {
		return nil, err
	}

	switch {
	case len(files) == 0:
		return nil, nil
	case len(files) > 1 && strict:
		matches := make([]string, len(files))
		for i, f := range files {
			matches[i] = f.Pathname
		}
		return nil, &contree.AmbiguityError{Pattern: path.String(), Matches: matches}
	default:
		return &files[0], nil
	}
}

// joinNames joins the element names of several paths with "/".
func joinNames(parts ...[]string) string {
	var all []string
	for _, p := range parts {
		all = append(all, p...)
	}
	return strings.Join(all, "/")
}
