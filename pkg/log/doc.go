// Package log provides the logging abstraction used by minidxf components.
//
// Library code accepts a [Logger] and never writes to stderr on its own.
// A zerolog-backed implementation is provided for the CLI, and a no-op
// logger is the default everywhere else.
//
//	logger := log.NewZerologLogger(os.Stderr, zerolog.InfoLevel)
//	logger.Info("rendered", log.String("out", path), log.Int("entities", n))
package log
