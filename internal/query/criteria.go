package query

import (
	"slices"

	"github.com/vvka-141/contree/internal/tree"
)

// Criteria is the configuration of a query. Finder methods update a copy of
// it; compile turns it into a pipeline.
//
// Pattern lists accept literals, globs and delimited regexes. Positive
// patterns of one criterion are OR'ed; any matching negative pattern
// excludes the page.
type Criteria struct {
	Names, NotNames                     []string
	Slugs, NotSlugs                     []string
	Titles, NotTitles                   []string
	ContentTypes, NotContentTypes       []string
	Paths, NotPaths                     []string
	FilesystemPaths, NotFilesystemPaths []string

	Depths []string // number comparators against traversal depth, AND'ed
	Dates  []string // date comparators against the modification time, AND'ed

	Contains, NotContains []string // matched inside the raw content

	Taxonomies []TaxonomyCriterion
	Settings   []SettingCriterion
	Extras     []ExtraCriterion

	FileCounts     []string
	ImageCounts    []string
	DocumentCounts []string

	Published Flag
	Modular   Flag
	Module    Flag
	Visible   Flag

	Filters []Acceptor
	Named   []string // registry filters

	SortBy   string
	SortFunc func(a, b *tree.Node) int

	Limit  int // 0 means no limit
	Offset int
}

// TaxonomyCriterion matches pages by the values listed under a taxonomy.
// A criterion with no values matches pages that have the taxonomy at all.
type TaxonomyCriterion struct {
	Name   string
	Values []string
	Mode   Mode
	Negate bool
}

// SettingCriterion matches a setting, looked up by dotted key, by equality.
type SettingCriterion struct {
	Key    string
	Value  any
	Negate bool
}

// ExtraCriterion compares a value of the extra settings map.
type ExtraCriterion struct {
	Key    string
	Kind   string // comparator kind
	Expr   string
	Negate bool
}

// Clone returns a copy of c sharing no slices with it.
func (c Criteria) Clone() Criteria {
	out := c
	out.Names, out.NotNames = slices.Clone(c.Names), slices.Clone(c.NotNames)
	out.Slugs, out.NotSlugs = slices.Clone(c.Slugs), slices.Clone(c.NotSlugs)
	out.Titles, out.NotTitles = slices.Clone(c.Titles), slices.Clone(c.NotTitles)
	out.ContentTypes, out.NotContentTypes = slices.Clone(c.ContentTypes), slices.Clone(c.NotContentTypes)
	out.Paths, out.NotPaths = slices.Clone(c.Paths), slices.Clone(c.NotPaths)
	out.FilesystemPaths, out.NotFilesystemPaths = slices.Clone(c.FilesystemPaths), slices.Clone(c.NotFilesystemPaths)
	out.Depths = slices.Clone(c.Depths)
	out.Dates = slices.Clone(c.Dates)
	out.Contains, out.NotContains = slices.Clone(c.Contains), slices.Clone(c.NotContains)
	out.Taxonomies = make([]TaxonomyCriterion, len(c.Taxonomies))
	for i, t := range c.Taxonomies {
		t.Values = slices.Clone(t.Values)
		out.Taxonomies[i] = t
	}
	out.Settings = slices.Clone(c.Settings)
	out.Extras = slices.Clone(c.Extras)
	out.FileCounts = slices.Clone(c.FileCounts)
	out.ImageCounts = slices.Clone(c.ImageCounts)
	out.DocumentCounts = slices.Clone(c.DocumentCounts)
	out.Filters = slices.Clone(c.Filters)
	out.Named = slices.Clone(c.Named)
	return out
}
