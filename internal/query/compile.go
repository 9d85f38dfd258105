package query

import (
	"fmt"
	"iter"
	"reflect"
	"slices"
	"time"

	"github.com/vvka-141/contree/internal/pattern"
	"github.com/vvka-141/contree/internal/tree"
	"github.com/vvka-141/contree/pkg/contree"
)

// Item is a page yielded by a query with its depth below the source root.
type Item struct {
	Node  *tree.Node
	Depth int
}

// stage transforms a sequence of items.
type stage interface {
	apply(seq iter.Seq[Item]) iter.Seq[Item]
}

// filterStage yields the items accepted by its predicate, in order.
type filterStage struct {
	name   string
	accept func(Item) bool
}

func (s filterStage) apply(seq iter.Seq[Item]) iter.Seq[Item] {
	return func(yield func(Item) bool) {
		for it := range seq {
			if s.accept(it) && !yield(it) {
				return
			}
		}
	}
}

// sortStage collects the sequence and re-yields it stably sorted.
type sortStage struct {
	cmp func(a, b *tree.Node) int
}

func (s sortStage) apply(seq iter.Seq[Item]) iter.Seq[Item] {
	return func(yield func(Item) bool) {
		items := slices.Collect(seq)
		slices.SortStableFunc(items, func(a, b Item) int { return s.cmp(a.Node, b.Node) })
		for _, it := range items {
			if !yield(it) {
				return
			}
		}
	}
}

// sliceStage collects the sequence and yields items[offset:offset+limit].
type sliceStage struct {
	offset int
	limit  int
}

func (s sliceStage) apply(seq iter.Seq[Item]) iter.Seq[Item] {
	return func(yield func(Item) bool) {
		items := slices.Collect(seq)
		start := min(max(s.offset, 0), len(items))
		end := len(items)
		if s.limit > 0 {
			end = min(start+s.limit, end)
		}
		for _, it := range items[start:end] {
			if !yield(it) {
				return
			}
		}
	}
}

// pipeline is a compiled query. Filters run over each source; the tail runs
// over the concatenation of all sources.
type pipeline struct {
	filters []stage
	tail    []stage
}

func (p pipeline) run(sources []iter.Seq[Item]) iter.Seq[Item] {
	filtered := make([]iter.Seq[Item], len(sources))
	for i, src := range sources {
		seq := src
		for _, s := range p.filters {
			seq = s.apply(seq)
		}
		filtered[i] = seq
	}

	var seq iter.Seq[Item] = func(yield func(Item) bool) {
		for _, src := range filtered {
			for it := range src {
				if !yield(it) {
					return
				}
			}
		}
	}
	for _, s := range p.tail {
		seq = s.apply(seq)
	}
	return seq
}

// compile validates c and builds its pipeline. Depth and name filters come
// first; named registry filters are resolved against registry.
func compile(c Criteria, registry *Registry) (pipeline, error) {
	var p pipeline
	add := func(name string, accept func(Item) bool) {
		p.filters = append(p.filters, filterStage{name: name, accept: accept})
	}
	addNode := func(name string, accept func(*tree.Node) bool) {
		add(name, func(it Item) bool { return accept(it.Node) })
	}

	depths, err := compileComparators("depth", KindNumber, c.Depths)
	if err != nil {
		return pipeline{}, err
	}
	if len(depths) > 0 {
		add("depth", func(it Item) bool { return allMatch(depths, float64(it.Depth)) })
	}

	patterns := []struct {
		name             string
		include, exclude []string
		value            func(*tree.Node) string
		compile          func(string) (pattern.Matcher, error)
	}{
		{"name", c.Names, c.NotNames, func(n *tree.Node) string { return n.Name }, pattern.Compile},
		{"slug", c.Slugs, c.NotSlugs, (*tree.Node).Slug, pattern.Compile},
		{"title", c.Titles, c.NotTitles, (*tree.Node).Title, pattern.Compile},
		{"content type", c.ContentTypes, c.NotContentTypes, (*tree.Node).ContentType, pattern.Compile},
		{"path", c.Paths, c.NotPaths, func(n *tree.Node) string { return n.Path }, pattern.Compile},
		{"filesystem path", c.FilesystemPaths, c.NotFilesystemPaths, func(n *tree.Node) string { return n.FilesystemPath }, pattern.Compile},
		{"contains", c.Contains, c.NotContains, func(n *tree.Node) string { return n.RawContent }, pattern.CompileContains},
	}
	for _, crit := range patterns {
		set, err := newMatchSet(crit.include, crit.exclude, crit.compile)
		if err != nil {
			return pipeline{}, fmt.Errorf("%w: %s: %w", contree.ErrInvalidCriterion, crit.name, err)
		}
		if set.empty() {
			continue
		}
		value := crit.value
		addNode(crit.name, func(n *tree.Node) bool { return set.accept(value(n)) })
	}

	dates, err := compileComparators("date", KindDate, c.Dates)
	if err != nil {
		return pipeline{}, err
	}
	if len(dates) > 0 {
		addNode("date", func(n *tree.Node) bool {
			for _, d := range dates {
				if !d.MatchTime(n.Modified) {
					return false
				}
			}
			return true
		})
	}

	for _, t := range c.Taxonomies {
		addNode("taxonomy", t.accept)
	}

	for _, s := range c.Settings {
		addNode("setting", func(n *tree.Node) bool {
			v, ok := n.Settings.Lookup(s.Key)
			return (ok && valuesEqual(v, s.Value)) != s.Negate
		})
	}

	for _, e := range c.Extras {
		cmp, err := NewComparator(e.Kind, e.Expr)
		if err != nil {
			return pipeline{}, fmt.Errorf("extra %q: %w", e.Key, err)
		}
		addNode("extra", func(n *tree.Node) bool {
			v, ok := n.Settings.Lookup("extra." + e.Key)
			return (ok && cmp.Match(v)) != e.Negate
		})
	}

	counts := []struct {
		name  string
		exprs []string
		count func(*tree.Node) int
	}{
		{"files", c.FileCounts, func(n *tree.Node) int { return len(n.Files()) }},
		{"images", c.ImageCounts, func(n *tree.Node) int { return len(n.Images()) }},
		{"documents", c.DocumentCounts, func(n *tree.Node) int { return len(n.Documents()) }},
	}
	for _, crit := range counts {
		cmps, err := compileComparators(crit.name, KindNumber, crit.exprs)
		if err != nil {
			return pipeline{}, err
		}
		if len(cmps) == 0 {
			continue
		}
		count := crit.count
		addNode(crit.name, func(n *tree.Node) bool { return allMatch(cmps, float64(count(n))) })
	}

	flags := []struct {
		name  string
		flag  Flag
		value func(tree.Settings) bool
	}{
		{"published", c.Published, func(s tree.Settings) bool { return s.Published }},
		{"modular", c.Modular, func(s tree.Settings) bool { return s.Modular }},
		{"module", c.Module, func(s tree.Settings) bool { return s.Module }},
		{"visible", c.Visible, func(s tree.Settings) bool { return s.Visible }},
	}
	for _, crit := range flags {
		if crit.flag == Any {
			continue
		}
		flag, value := crit.flag, crit.value
		addNode(crit.name, func(n *tree.Node) bool { return flag.matches(value(n.Settings)) })
	}

	for _, a := range c.Filters {
		addNode("filter", a.Accept)
	}
	for _, name := range c.Named {
		var a Acceptor
		ok := false
		if registry != nil {
			a, ok = registry.Lookup(name)
		}
		if !ok {
			return pipeline{}, fmt.Errorf("%w: %q", contree.ErrUnknownFilter, name)
		}
		addNode(name, a.Accept)
	}

	switch {
	case c.SortFunc != nil:
		p.tail = append(p.tail, sortStage{cmp: c.SortFunc})
	case c.SortBy != "":
		cmp, err := sorter(c.SortBy)
		if err != nil {
			return pipeline{}, err
		}
		p.tail = append(p.tail, sortStage{cmp: cmp})
	}
	if c.Limit < 0 || c.Offset < 0 {
		return pipeline{}, fmt.Errorf("%w: limit and offset cannot be negative", contree.ErrInvalidCriterion)
	}
	if c.Limit > 0 || c.Offset > 0 {
		p.tail = append(p.tail, sliceStage{offset: c.Offset, limit: c.Limit})
	}
	return p, nil
}

func compileComparators(name, kind string, exprs []string) ([]Comparator, error) {
	cmps := make([]Comparator, 0, len(exprs))
	for _, expr := range exprs {
		cmp, err := NewComparator(kind, expr)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		cmps = append(cmps, cmp)
	}
	return cmps, nil
}

func allMatch(cmps []Comparator, n float64) bool {
	for _, c := range cmps {
		if !c.MatchNumber(n) {
			return false
		}
	}
	return true
}

// matchSet is a compiled include/exclude pattern pair.
type matchSet struct {
	include []pattern.Matcher
	exclude []pattern.Matcher
}

func newMatchSet(include, exclude []string, compile func(string) (pattern.Matcher, error)) (matchSet, error) {
	var set matchSet
	for _, p := range include {
		m, err := compile(p)
		if err != nil {
			return matchSet{}, fmt.Errorf("pattern %q: %w", p, err)
		}
		set.include = append(set.include, m)
	}
	for _, p := range exclude {
		m, err := compile(p)
		if err != nil {
			return matchSet{}, fmt.Errorf("pattern %q: %w", p, err)
		}
		set.exclude = append(set.exclude, m)
	}
	return set, nil
}

func (m matchSet) empty() bool { return len(m.include) == 0 && len(m.exclude) == 0 }

func (m matchSet) accept(s string) bool {
	if len(m.include) > 0 && !pattern.Any(m.include, s) {
		return false
	}
	return !pattern.Any(m.exclude, s)
}

func (t TaxonomyCriterion) accept(n *tree.Node) bool {
	values, ok := n.Settings.Taxonomy[t.Name]
	has := func(v string) bool { return slices.Contains(values, v) }

	var match bool
	switch {
	case len(t.Values) == 0:
		match = ok
	case t.Mode == ModeOr:
		match = slices.ContainsFunc(t.Values, has)
	default:
		match = !slices.ContainsFunc(t.Values, func(v string) bool { return !has(v) })
	}
	return match != t.Negate
}

// valuesEqual compares a setting with an expected value. Numbers compare by
// value, times by instant, and a string expectation matches the printed form
// of a scalar setting.
func valuesEqual(actual, expected any) bool {
	if reflect.DeepEqual(actual, expected) {
		return true
	}
	if a, ok := toNumber(actual); ok {
		if e, ok := toNumber(expected); ok {
			return a == e
		}
	}
	if a, ok := actual.(time.Time); ok {
		if e, ok := toTime(expected); ok {
			return a.Equal(e)
		}
	}
	if e, ok := expected.(string); ok {
		switch actual.(type) {
		case bool, int, int64, float64, uint64:
			return fmt.Sprint(actual) == e
		}
	}
	return false
}
