// Package metadata reads YAML metadata documents that live next to content.
//
// # Sidecar files
//
// A file's metadata is stored in a sibling document named after the file plus
// a suffix (contree.DefaultMetadataSuffix by default):
//
//	images/cover.png
//	images/cover.png.meta.yaml
//
// The sidecar holds a free-form YAML mapping:
//
//	alt: A lighthouse at dusk
//	credit: J. Doe
//	tags: [sea, night]
//
// Sidecar files are never addressable as content files themselves; use
// IsSidecar to filter them from listings.
//
// # Page settings
//
// Decode reads any YAML document (such as a page's page.yaml) into a typed
// value. Syntax and type errors are reported as *MetadataError with the file
// path and, when known, the line number.
package metadata
