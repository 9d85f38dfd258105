// Package filesystem provides the read-only filesystem abstraction behind the
// filesystem resolver and the directory mapper.
//
// Key interfaces:
//   - FileSystemProvider: stat, read and list files, open directories for walking
//   - Directory: a directory tree that can be walked in lexical order
//   - File: an individual entry with metadata and a content accessor
//
// Implementations:
//   - OSFileSystem: production implementation over the OS filesystem
//   - MemoryFileSystem: in-memory implementation for tests and fixtures
//
// Paths given to providers use forward slashes. Missing entries are reported
// with errors wrapping fs.ErrNotExist.
package filesystem
