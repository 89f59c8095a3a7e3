// Package logging provides a minimal logging interface and adapters for the
// chat relay.
//
// The Logger interface defines the standard logging methods (Debug, Info,
// Warn, Error) that the relay and API layers use for observability. This
// package includes:
//
//   - Logger interface for dependency injection
//   - RelayLogger wrapping Go's structured logging with contextual helpers
//   - NoOpLogger for silent operation (testing, minimal setups)
//
// Usage:
//
//	logger := logging.NewSlogLogger(logging.LogLevelInfo, "json", false)
//	r := relay.New(store, mdl, func(o *relay.Options) { o.Logger = logger })
//
// The design intentionally keeps the interface minimal to avoid vendor
// lock-in while supporting structured logging where available.
package logging
