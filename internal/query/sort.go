package query

import (
	"cmp"
	"fmt"
	"strings"
	"time"

	"github.com/vvka-141/contree/internal/tree"
	"github.com/vvka-141/contree/pkg/contree"
)

// Built-in sort names accepted by Finder.SortBy. "extra.<key>" sorts by an
// extra setting.
const (
	SortName           = "name"
	SortSlug           = "slug"
	SortTitle          = "title"
	SortDate           = "date"
	SortPublishDate    = "publish_date"
	SortPath           = "path"
	SortFilesystemPath = "filesystem_path"

	extraSortPrefix = "extra."
)

// SortNames lists the built-in sorts, without the extra.<key> form.
var SortNames = []string{SortName, SortSlug, SortTitle, SortDate, SortPublishDate, SortPath, SortFilesystemPath}

// sorter returns the comparison of a built-in sort.
func sorter(name string) (func(a, b *tree.Node) int, error) {
	switch strings.ToLower(name) {
	case SortName:
		return byString(func(n *tree.Node) string { return n.Name }), nil
	case SortSlug:
		return byString((*tree.Node).Slug), nil
	case SortTitle:
		return byString((*tree.Node).Title), nil
	case SortDate:
		return byTime((*tree.Node).Date), nil
	case SortPublishDate:
		return byTime(func(n *tree.Node) *time.Time { return n.Settings.PublishDate }), nil
	case SortPath:
		return byPath, nil
	case SortFilesystemPath:
		return func(a, b *tree.Node) int { return compareFold(a.FilesystemPath, b.FilesystemPath) }, nil
	}

	if len(name) > len(extraSortPrefix) && strings.EqualFold(name[:len(extraSortPrefix)], extraSortPrefix) {
		key := name[len(extraSortPrefix):]
		return byString(func(n *tree.Node) string {
			v, ok := n.Settings.Lookup(extraSortPrefix + key)
			if !ok || v == nil {
				return ""
			}
			return fmt.Sprint(v)
		}), nil
	}
	return nil, fmt.Errorf("%w: %q", contree.ErrUnknownSort, name)
}

func compareFold(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

func byPath(a, b *tree.Node) int { return compareFold(a.Path, b.Path) }

// byString compares case-insensitively, breaking ties by path.
func byString(value func(*tree.Node) string) func(a, b *tree.Node) int {
	return func(a, b *tree.Node) int {
		return cmp.Or(compareFold(value(a), value(b)), byPath(a, b))
	}
}

// byTime sorts pages without a time last and breaks ties by path.
func byTime(value func(*tree.Node) *time.Time) func(a, b *tree.Node) int {
	return func(a, b *tree.Node) int {
		ta, tb := value(a), value(b)
		switch {
		case ta == nil && tb == nil:
			return byPath(a, b)
		case ta == nil:
			return 1
		case tb == nil:
			return -1
		}
		return cmp.Or(ta.Compare(*tb), byPath(a, b))
	}
}
