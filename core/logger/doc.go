// Package logger provides a structured logging facility based on Zap.
//
// It builds a configured logger for the CLI and the HTTP server, and offers
// helpers that scope a logger to a request (WithRayID) or to a reconciliation
// run (WithRunID) so every line of one run or request can be correlated.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Format: json or console
//
// # Usage
//
//	log, _ := logger.New(&cfg.Log)
//	log.Info("Server started")
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Error("Handler failed", zap.Error(err))
package logger
