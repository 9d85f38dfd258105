// Package scanner maps a content directory into a tree.Tree.
//
// Every directory becomes a page. Inside a directory:
//   - page.yaml holds the page settings
//   - content.md holds the raw page content
//   - metadata sidecars (cover.png.meta.yaml) are attached to their file
//   - every other file is attached to the page, keyed by its name
//
// Entries whose names start with "." are ignored.
//
// The scanner is filesystem-agnostic through filesystem.FileSystemProvider,
// enabling both production use with the OS filesystem and testing with
// in-memory filesystems.
package scanner
