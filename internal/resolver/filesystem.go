package resolver

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/vvka-141/contree/internal/files/filesystem"
	"github.com/vvka-141/contree/internal/metadata"
	"github.com/vvka-141/contree/internal/paths"
	"github.com/vvka-141/contree/internal/pattern"
	"github.com/vvka-141/contree/pkg/contree"
)

// Filesystem resolves paths against the files below the factory base path.
// Metadata sidecars are never returned.
type Filesystem struct {
	provider       filesystem.FileSystemProvider
	files          contree.FileFactory
	logger         contree.Logger
	metadataSuffix string
}

// NewFilesystem creates a filesystem resolver.
// Panics if any argument is nil.
func NewFilesystem(provider filesystem.FileSystemProvider, files contree.FileFactory, logger contree.Logger) *Filesystem {
	if provider == nil {
		panic("provider cannot be nil")
	}
	if files == nil {
		panic("files cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Filesystem{
		provider:       provider,
		files:          files,
		logger:         logger,
		metadataSuffix: contree.DefaultMetadataSuffix,
	}
}

// WithMetadataSuffix changes the sidecar suffix. An empty suffix keeps the default.
func (r *Filesystem) WithMetadataSuffix(suffix string) *Filesystem {
	if suffix != "" {
		r.metadataSuffix = suffix
	}
	return r
}

// Get returns the file at path. Absolute paths ignore parent.
// Patterns and directories never resolve through Get.
func (r *Filesystem) Get(path, parent paths.Path) (*contree.File, error) {
	if path.IsRegex() || path.IsGlob() || path.IsDirectory() {
		return nil, nil
	}

	path, parent, err := paths.Normalize(path, parent)
	if err != nil {
		return nil, err
	}
	if path.IsEmpty() {
		return nil, nil
	}

	rel := joinNames(parent.Names(), path.Names())
	if path.IsAbsolute() {
		rel = joinNames(path.Names())
	}
	if metadata.IsSidecar(rel, r.metadataSuffix) {
		return nil, nil
	}

	ok, err := filesystem.IsFile(r.provider, r.files.BasePath()+"/"+rel)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", rel, err)
	}
	if !ok {
		return nil, nil
	}

	file, err := r.files.CreateFile("/" + rel)
	if err != nil {
		return nil, err
	}
	return &file, nil
}

// Find returns the files matching path, sorted by pathname.
//
// Relative patterns match below base+parent; absolute patterns match from the
// base path and ignore parent. A directory path matches the files directly
// inside it. A regex path is matched, unanchored, against pathnames relative
// to base+parent.
func (r *Filesystem) Find(path, parent paths.Path) ([]contree.File, error) {
	q, err := r.prepare(path, parent)
	if err != nil {
		return nil, err
	}

	relPaths, err := r.scan(q)
	if err != nil {
		return nil, err
	}
	r.logger.Verbose("Find %q under %q: %d matches", path.String(), q.root, len(relPaths))

	result := make([]contree.File, 0, len(relPaths))
	for _, rel := range relPaths {
		pathname := "/" + rel
		if q.root != "" {
			pathname = "/" + q.root + "/" + rel
		}
		file, err := r.files.CreateFile(pathname)
		if err != nil {
			return nil, err
		}
		result = append(result, file)
	}
	return result, nil
}

// findQuery is a prepared Find: a search root relative to the base path and
// the expression matched against pathnames relative to that root.
type findQuery struct {
	root     string
	re       *regexp.Regexp
	segments int // fixed segment count of matches, 0 when unbounded
}

func (r *Filesystem) prepare(path, parent paths.Path) (findQuery, error) {
	if path.IsRegex() {
		re := path.Regexp()
		if re == nil {
			return findQuery{}, fmt.Errorf("%w: invalid regex %q", contree.ErrInvalidCriterion, path.String())
		}
		return findQuery{root: joinNames(parent.Names()), re: re}, nil
	}

	path, parent, err := paths.Normalize(path, parent)
	if err != nil {
		return findQuery{}, err
	}

	names := path.Names()
	root := parent.Names()
	if path.IsAbsolute() {
		root = nil
	} else {
		// hoist static leading segments into the search root
		elements := path.Elements()
		hoist := 0
		for hoist < len(elements)-1 && !elements[hoist].IsGlob() {
			hoist++
		}
		if path.IsDirectory() && hoist == len(elements)-1 && !elements[hoist].IsGlob() {
			hoist++
		}
		root = append(root, names[:hoist]...)
		names = names[hoist:]
	}

	var expr strings.Builder
	expr.WriteByte('^')
	for i, name := range names {
		if i > 0 {
			expr.WriteByte('/')
		}
		expr.WriteString(pattern.GlobBody(name))
	}
	segments := len(names)
	if path.IsDirectory() {
		if len(names) > 0 {
			expr.WriteByte('/')
		}
		expr.WriteString("[^/]+")
		segments++
	}
	expr.WriteByte('$')

	re, err := regexp.Compile(expr.String())
	if err != nil {
		return findQuery{}, fmt.Errorf("%w: invalid pattern %q: %w", contree.ErrInvalidCriterion, path.String(), err)
	}
	return findQuery{root: joinNames(root), re: re, segments: segments}, nil
}

// scan walks the search root and returns the matching relative pathnames.
func (r *Filesystem) scan(q findQuery) ([]string, error) {
	dirPath := r.files.BasePath()
	if q.root != "" {
		dirPath += "/" + q.root
	}

	info, err := r.provider.Stat(dirPath)
	if err != nil {
		if filesystem.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to stat %s: %w", dirPath, err)
	}
	if !info.IsDir() {
		return nil, nil
	}

	dir, err := r.provider.Open(dirPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", dirPath, err)
	}

	seen := make(map[string]struct{})
	err = dir.Walk(func(file filesystem.File, err error) error {
		if err != nil {
			return err
		}
		rel := file.RelativePath()
		if rel == "." {
			return nil
		}
		if file.Info().IsDir() {
			if q.segments > 0 && strings.Count(rel, "/")+1 >= q.segments {
				return filesystem.SkipDir
			}
			return nil
		}
		if metadata.IsSidecar(rel, r.metadataSuffix) || !q.re.MatchString(rel) {
			return nil
		}
		seen[rel] = struct{}{}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", dirPath, err)
	}

	matches := make([]string, 0, len(seen))
	for rel := range seen {
		matches = append(matches, rel)
	}
	slices.Sort(matches)
	return matches, nil
}

// Verify Filesystem implements MultiResolver
var _ MultiResolver = (*Filesystem)(nil)
