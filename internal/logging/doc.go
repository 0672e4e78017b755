// Package logging provides concrete implementations of the emploader.Logger interface.
//
// Available implementations:
//   - ConsoleLogger: Writes formatted messages to stderr (or any io.Writer)
//   - NullLogger: Discards all messages (useful for testing)
//
// Loggers never write to stdout: stdout carries the getnames report only.
package logging
