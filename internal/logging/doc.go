// Package logging provides concrete implementations of the contree.Logger interface.
//
// Available implementations:
//   - ConsoleLogger: Writes prefixed lines to stderr (or any writer)
//   - ZerologLogger: Writes structured JSON lines through zerolog
//   - NullLogger: Discards all messages (useful for testing)
//
// All logger implementations are safe for concurrent use by multiple goroutines.
package logging
