package query

import (
	"iter"

	"github.com/vvka-141/contree/internal/tree"
	"github.com/vvka-141/contree/pkg/contree"
)

// Finder builds and runs queries over a tree.
//
// Builder methods record criteria and return the Finder for chaining.
// Criteria are validated when the query runs.
type Finder struct {
	tree     *tree.Tree
	registry *Registry
	sources  []source
	criteria Criteria
}

// source is one page list, traversed, or one raw sequence, not traversed.
type source struct {
	roots []tree.NodeID
	seq   iter.Seq[*tree.Node]
}

// New creates a Finder over t. t may be nil when only Append is used.
func New(t *tree.Tree) *Finder {
	return &Finder{tree: t}
}

// WithRegistry sets the registry that Use resolves filter names against.
func (f *Finder) WithRegistry(r *Registry) *Finder {
	f.registry = r
	return f
}

// In adds a page list. Each page is traversed in pre-order with its
// descendants; the listed pages have depth 0.
// Panics if the Finder has no tree.
func (f *Finder) In(ids ...tree.NodeID) *Finder {
	if f.tree == nil {
		panic("finder has no tree: use Append for raw sequences")
	}
	f.sources = append(f.sources, source{roots: append([]tree.NodeID(nil), ids...)})
	return f
}

// Append adds a raw sequence. Its pages are filtered but not traversed and
// have depth 0.
func (f *Finder) Append(seq iter.Seq[*tree.Node]) *Finder {
	if seq == nil {
		panic("sequence cannot be nil")
	}
	f.sources = append(f.sources, source{seq: seq})
	return f
}

// Criteria returns a copy of the recorded criteria.
func (f *Finder) Criteria() Criteria { return f.criteria.Clone() }

// Where replaces the recorded criteria with a copy of c.
func (f *Finder) Where(c Criteria) *Finder {
	f.criteria = c.Clone()
	return f
}

func (f *Finder) Name(patterns ...string) *Finder {
	f.criteria.Names = append(f.criteria.Names, patterns...)
	return f
}

func (f *Finder) NotName(patterns ...string) *Finder {
	f.criteria.NotNames = append(f.criteria.NotNames, patterns...)
	return f
}

func (f *Finder) Slug(patterns ...string) *Finder {
	f.criteria.Slugs = append(f.criteria.Slugs, patterns...)
	return f
}

func (f *Finder) NotSlug(patterns ...string) *Finder {
	f.criteria.NotSlugs = append(f.criteria.NotSlugs, patterns...)
	return f
}

func (f *Finder) Title(patterns ...string) *Finder {
	f.criteria.Titles = append(f.criteria.Titles, patterns...)
	return f
}

func (f *Finder) NotTitle(patterns ...string) *Finder {
	f.criteria.NotTitles = append(f.criteria.NotTitles, patterns...)
	return f
}

func (f *Finder) ContentType(patterns ...string) *Finder {
	f.criteria.ContentTypes = append(f.criteria.ContentTypes, patterns...)
	return f
}

func (f *Finder) NotContentType(patterns ...string) *Finder {
	f.criteria.NotContentTypes = append(f.criteria.NotContentTypes, patterns...)
	return f
}

// Path matches the full page path, such as "/blog/*".
func (f *Finder) Path(patterns ...string) *Finder {
	f.criteria.Paths = append(f.criteria.Paths, patterns...)
	return f
}

func (f *Finder) NotPath(patterns ...string) *Finder {
	f.criteria.NotPaths = append(f.criteria.NotPaths, patterns...)
	return f
}

// FilesystemPath matches the source directory of the page.
func (f *Finder) FilesystemPath(patterns ...string) *Finder {
	f.criteria.FilesystemPaths = append(f.criteria.FilesystemPaths, patterns...)
	return f
}

func (f *Finder) NotFilesystemPath(patterns ...string) *Finder {
	f.criteria.NotFilesystemPaths = append(f.criteria.NotFilesystemPaths, patterns...)
	return f
}

// Depth keeps pages whose traversal depth satisfies every expression,
// such as "> 0" or "<= 2". A bare number means equality.
func (f *Finder) Depth(exprs ...string) *Finder {
	f.criteria.Depths = append(f.criteria.Depths, exprs...)
	return f
}

// Date keeps pages whose modification time satisfies every expression,
// such as "since 2024-01-01" or "< -7d".
func (f *Finder) Date(exprs ...string) *Finder {
	f.criteria.Dates = append(f.criteria.Dates, exprs...)
	return f
}

// Contains keeps pages whose raw content contains a substring, glob or regex.
func (f *Finder) Contains(patterns ...string) *Finder {
	f.criteria.Contains = append(f.criteria.Contains, patterns...)
	return f
}

func (f *Finder) NotContains(patterns ...string) *Finder {
	f.criteria.NotContains = append(f.criteria.NotContains, patterns...)
	return f
}

// Taxonomy keeps pages tagged under name with all (ModeAnd) or any (ModeOr)
// of values.
func (f *Finder) Taxonomy(name string, values []string, mode Mode) *Finder {
	return f.taxonomy(name, values, mode, false)
}

// NotTaxonomy excludes the pages Taxonomy would keep.
func (f *Finder) NotTaxonomy(name string, values []string, mode Mode) *Finder {
	return f.taxonomy(name, values, mode, true)
}

func (f *Finder) taxonomy(name string, values []string, mode Mode, negate bool) *Finder {
	f.criteria.Taxonomies = append(f.criteria.Taxonomies, TaxonomyCriterion{
		Name:   name,
		Values: append([]string(nil), values...),
		Mode:   mode,
		Negate: negate,
	})
	return f
}

// Setting keeps pages whose setting under the dotted key equals value.
func (f *Finder) Setting(key string, value any) *Finder {
	f.criteria.Settings = append(f.criteria.Settings, SettingCriterion{Key: key, Value: value})
	return f
}

func (f *Finder) NotSetting(key string, value any) *Finder {
	f.criteria.Settings = append(f.criteria.Settings, SettingCriterion{Key: key, Value: value, Negate: true})
	return f
}

// Extra compares the extra setting under key using a comparator of kind.
func (f *Finder) Extra(key, kind, expr string) *Finder {
	f.criteria.Extras = append(f.criteria.Extras, ExtraCriterion{Key: key, Kind: kind, Expr: expr})
	return f
}

func (f *Finder) NotExtra(key, kind, expr string) *Finder {
	f.criteria.Extras = append(f.criteria.Extras, ExtraCriterion{Key: key, Kind: kind, Expr: expr, Negate: true})
	return f
}

// Files compares the number of page files with expr.
func (f *Finder) Files(expr string) *Finder {
	f.criteria.FileCounts = append(f.criteria.FileCounts, expr)
	return f
}

func (f *Finder) Images(expr string) *Finder {
	f.criteria.ImageCounts = append(f.criteria.ImageCounts, expr)
	return f
}

func (f *Finder) Documents(expr string) *Finder {
	f.criteria.DocumentCounts = append(f.criteria.DocumentCounts, expr)
	return f
}

func (f *Finder) Published(flag Flag) *Finder {
	f.criteria.Published = flag
	return f
}

func (f *Finder) Modular(flag Flag) *Finder {
	f.criteria.Modular = flag
	return f
}

func (f *Finder) Module(flag Flag) *Finder {
	f.criteria.Module = flag
	return f
}

func (f *Finder) Visible(flag Flag) *Finder {
	f.criteria.Visible = flag
	return f
}

// Filter keeps the pages a accepts.
func (f *Finder) Filter(a Acceptor) *Finder {
	if a == nil {
		panic("acceptor cannot be nil")
	}
	f.criteria.Filters = append(f.criteria.Filters, a)
	return f
}

// FilterFunc keeps the pages fn accepts.
func (f *Finder) FilterFunc(fn func(n *tree.Node) bool) *Finder {
	return f.Filter(AcceptFunc(fn))
}

// Use enables registry filters by name.
func (f *Finder) Use(names ...string) *Finder {
	f.criteria.Named = append(f.criteria.Named, names...)
	return f
}

// Sort orders the results with cmp, replacing any earlier sort.
func (f *Finder) Sort(cmp func(a, b *tree.Node) int) *Finder {
	f.criteria.SortFunc = cmp
	f.criteria.SortBy = ""
	return f
}

// SortBy orders the results with a built-in sort, replacing any earlier sort.
// See SortNames.
func (f *Finder) SortBy(name string) *Finder {
	f.criteria.SortBy = name
	f.criteria.SortFunc = nil
	return f
}

func (f *Finder) Limit(n int) *Finder {
	f.criteria.Limit = n
	return f
}

func (f *Finder) Offset(n int) *Finder {
	f.criteria.Offset = n
	return f
}

// Items runs the query and returns the resulting pages with their depths.
// Panics with contree.ErrNoSource if neither In nor Append was called.
func (f *Finder) Items() (iter.Seq[Item], error) {
	if len(f.sources) == 0 {
		panic(contree.ErrNoSource)
	}
	p, err := compile(f.criteria, f.registry)
	if err != nil {
		return nil, err
	}

	sources := make([]iter.Seq[Item], len(f.sources))
	for i, src := range f.sources {
		sources[i] = src.items(f.tree)
	}
	return p.run(sources), nil
}

// All runs the query and returns the resulting pages.
func (f *Finder) All() (iter.Seq[*tree.Node], error) {
	items, err := f.Items()
	if err != nil {
		return nil, err
	}
	return func(yield func(*tree.Node) bool) {
		for it := range items {
			if !yield(it.Node) {
				return
			}
		}
	}, nil
}

// Pages runs the query and collects the resulting pages.
func (f *Finder) Pages() ([]*tree.Node, error) {
	all, err := f.All()
	if err != nil {
		return nil, err
	}
	pages := []*tree.Node{}
	for n := range all {
		pages = append(pages, n)
	}
	return pages, nil
}

// Count runs the query and counts the resulting pages.
func (f *Finder) Count() (int, error) {
	items, err := f.Items()
	if err != nil {
		return 0, err
	}
	count := 0
	for range items {
		count++
	}
	return count, nil
}

func (s source) items(t *tree.Tree) iter.Seq[Item] {
	if s.seq != nil {
		return func(yield func(Item) bool) {
			for n := range s.seq {
				if n == nil {
					continue
				}
				if !yield(Item{Node: n}) {
					return
				}
			}
		}
	}
	return func(yield func(Item) bool) {
		for _, id := range s.roots {
			ok := t.Walk(id, func(n *tree.Node, depth int) bool {
				return yield(Item{Node: n, Depth: depth})
			})
			if !ok {
				return
			}
		}
	}
}
