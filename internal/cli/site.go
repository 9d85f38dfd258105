package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/vvka-141/contree/internal/cache"
	"github.com/vvka-141/contree/internal/config"
	"github.com/vvka-141/contree/internal/files/factory"
	"github.com/vvka-141/contree/internal/files/filesystem"
	"github.com/vvka-141/contree/internal/files/scanner"
	"github.com/vvka-141/contree/internal/resolver"
	"github.com/vvka-141/contree/internal/tree"
	"github.com/vvka-141/contree/pkg/contree"
)

// site is an opened content tree with its resolver stack.
type site struct {
	cfg      *config.ProjectConfig
	root     string
	tree     *tree.Tree
	resolver resolver.MultiResolver
	closers  []func()
}

// openSite loads the tree and builds the resolvers described by cfg.
//
// A scanned tree resolves through the filesystem only. A manifest tree adds
// page files, consulted after the filesystem. Both are wrapped in the
// configured cache unless the driver is "none".
func openSite(ctx context.Context, cfg *config.ProjectConfig, logger contree.Logger) (*site, error) {
	return openSiteWithFS(ctx, filesystem.NewOSFileSystem(), cfg, logger)
}

func openSiteWithFS(ctx context.Context, provider filesystem.FileSystemProvider, cfg *config.ProjectConfig, logger contree.Logger) (*site, error) {
	root, err := filepath.Abs(cfg.Root)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to resolve root %s: %w", contree.ErrInvalidConfig, cfg.Root, err)
	}
	root = filepath.ToSlash(root)

	s := &site{cfg: cfg, root: root}

	files := resolver.NewFilesystem(provider, factory.New(provider, root, cfg.MetadataSuffix), logger).
		WithMetadataSuffix(cfg.MetadataSuffix)

	var base resolver.MultiResolver = files
	if cfg.Tree != "" {
		logger.Verbose("Loading tree manifest %s", cfg.Tree)
		s.tree, err = tree.LoadManifestFile(provider, cfg.Tree)
		if err != nil {
			return nil, err
		}
		base = resolver.NewCombined(files, resolver.NewTree(tree.NewRepository(s.tree), logger))
	} else {
		logger.Verbose("Scanning content root %s", root)
		s.tree, err = scanner.NewScannerWithFS(provider, logger).
			WithMetadataSuffix(cfg.MetadataSuffix).
			ScanDirectory(root)
		if err != nil {
			return nil, err
		}
	}
	logger.Verbose("Loaded %d pages", s.tree.Len())

	switch cfg.Cache.Driver {
	case config.DriverNone:
		s.resolver = base
	case config.DriverPostgres:
		timeout, err := cfg.CacheTimeout()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", contree.ErrInvalidConfig, err)
		}
		pg, err := cache.OpenPostgres[[]contree.File](ctx, cfg.Cache.DSN, cache.PostgresOptions{
			Table:        cfg.Cache.Table,
			Timeout:      timeout,
			ConnectRetry: 3,
		}, logger)
		if err != nil {
			return nil, err
		}
		s.closers = append(s.closers, pg.Close)
		s.resolver = resolver.NewCaching(base, pg, logger)
	default:
		s.resolver = resolver.NewCaching(base, cache.NewMemory[[]contree.File](), logger)
	}

	return s, nil
}

// Close releases the cache connection, if any.
func (s *site) Close() {
	for _, closeFn := range s.closers {
		closeFn()
	}
}
