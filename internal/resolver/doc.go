// Package resolver turns path expressions into files.
//
// A Resolver answers Get with at most one file. A MultiResolver also answers
// Find with every file matching a glob or regex. Resolvers compose:
//
//	fs := resolver.NewFilesystem(provider, files, logger)
//	pages := resolver.NewTree(tree.NewRepository(t), logger)
//	r := resolver.NewCaching(resolver.NewCombined(fs, pages), cache.NewMemory[[]contree.File](), logger)
//
//	file, err := resolver.FindOne(r, paths.Parse("images/*.png"), paths.Parse("blog"), true)
//
// Missing files are never errors: Get returns nil and Find an empty slice.
// Errors are reserved for paths escaping their boundary, ambiguous strict
// lookups and I/O failures.
package resolver
