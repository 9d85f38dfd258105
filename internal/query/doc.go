// Package query filters, sorts and paginates the pages of a content tree.
//
// A Finder accumulates criteria and runs them when the caller counts or
// iterates:
//
//	pages, err := query.New(t).
//	    In(t.Root()).
//	    Depth("> 0").
//	    Taxonomy("tag", []string{"news", "go"}, query.ModeOr).
//	    Published(query.Yes).
//	    SortBy("date").
//	    Limit(10).
//	    Pages()
//
// Every criterion must pass for a page to be yielded. Filters never reorder
// pages; only sorting does, after all sources have been concatenated.
package query
