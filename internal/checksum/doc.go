// Package checksum derives fixed-length digests for cache keys.
//
// Parts are hashed with a separator between them, so ("a-b", "c") and
// ("a", "b-c") never share a digest even though they slugify identically.
//
//	h := checksum.New()
//	key := "find-" + slug + "-" + h.Short(path, parent)
package checksum
