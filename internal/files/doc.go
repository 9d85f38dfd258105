// Package files provides file-related functionality organized into sub-packages:
//   - filesystem: Filesystem abstraction interfaces and implementations (OS and in-memory)
//   - factory: File value creation with content-type detection and sidecar metadata
//   - scanner: Mapping a content directory into a page tree
//
// # Usage
//
//	import (
//	    "github.com/vvka-141/contree/internal/files/filesystem"
//	    "github.com/vvka-141/contree/internal/files/scanner"
//	)
//
//	s := scanner.NewScanner(logger)
//	t, err := s.ScanDirectory("./content")
package files
