// Package logging provides concrete implementations of the ufind.Logger interface.
//
// Available implementations:
//   - ConsoleLogger: zap-backed, writes "[LEVEL] message" lines to stderr or any writer
//   - NullLogger: Discards all messages (useful for testing)
//
// All logger implementations are safe for concurrent use by multiple goroutines.
package logging
