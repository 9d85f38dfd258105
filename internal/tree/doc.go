// Package tree holds the materialized content tree.
//
// Pages live in an arena owned by Tree and are addressed by NodeID. Each node
// stores its parent ID and the ordered IDs of its children, so walking up or
// down the tree never needs pointers between nodes.
//
//	t := tree.New()
//	blog, _ := t.Add(t.Root(), "blog")
//	post, _ := t.Add(blog.ID, "hello")
//	post.Settings.Title = "Hello"
//
// A Repository flattens a Tree into a full-path index for page lookups.
// LoadManifest builds a Tree from a YAML document.
package tree
