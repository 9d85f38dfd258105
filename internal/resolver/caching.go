package resolver

import (
	"strings"

	"github.com/vvka-141/contree/internal/checksum"
	"github.com/vvka-141/contree/internal/paths"
	"github.com/vvka-141/contree/pkg/contree"
)

// Caching memoizes the results of another resolver.
// Get results are stored as zero- or one-element slices.
type Caching struct {
	inner  Resolver
	cache  contree.Cache[[]contree.File]
	logger contree.Logger
	hasher checksum.SHA256
}

// NewCaching decorates inner with cache.
// Panics if any argument is nil.
func NewCaching(inner Resolver, cache contree.Cache[[]contree.File], logger contree.Logger) *Caching {
	if inner == nil {
		panic("inner cannot be nil")
	}
	if cache == nil {
		panic("cache cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Caching{inner: inner, cache: cache, logger: logger, hasher: checksum.New()}
}

// Get returns the cached result of inner.Get, computing it on a miss.
// Errors are never cached.
func (c *Caching) Get(path, parent paths.Path) (*contree.File, error) {
	files, err := c.memoize("get", path, parent, func() ([]contree.File, error) {
		file, err := c.inner.Get(path, parent)
		if err != nil || file == nil {
			return []contree.File{}, err
		}
		return []contree.File{*file}, nil
	})
	if err != nil || len(files) == 0 {
		return nil, err
	}
	return &files[0], nil
}

// Find returns the cached result of inner.Find. The result is empty when the
// wrapped resolver cannot find patterns.
func (c *Caching) Find(path, parent paths.Path) ([]contree.File, error) {
	multi, ok := c.inner.(MultiResolver)
	if !ok {
		return []contree.File{}, nil
	}
	return c.memoize("find", path, parent, func() ([]contree.File, error) {
		return multi.Find(path, parent)
	})
}

func (c *Caching) memoize(method string, path, parent paths.Path, compute func() ([]contree.File, error)) ([]contree.File, error) {
	key := c.Key(method, path, parent)
	if c.cache.Has(key) {
		if files, ok := c.cache.Get(key); ok {
			c.logger.Verbose("Cache hit: %s", key)
			return cloneFiles(files), nil
		}
	}

	c.logger.Verbose("Cache miss: %s", key)
	files, err := compute()
	if err != nil {
		return nil, err
	}
	c.cache.Set(key, cloneFiles(files))
	return files, nil
}

// cloneFiles copies files so callers never share a slice with the cache.
// The copy is never nil.
func cloneFiles(files []contree.File) []contree.File {
	out := make([]contree.File, len(files))
	copy(out, files)
	return out
}

// Key returns the cache key of a call: the method, a slug of both paths and
// a hash keeping keys with equal slugs apart.
func (c *Caching) Key(method string, path, parent paths.Path) string {
	slug := slugify(path.String() + "-" + parent.String())
	return method + "-" + slug + "-" + c.hasher.Short(path.String(), parent.String())
}

// slugify lowercases s and replaces every run of characters other than
// ASCII letters and digits with a single "-".
func slugify(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	dash := false
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// Verify Caching implements MultiResolver
var _ MultiResolver = (*Caching)(nil)
