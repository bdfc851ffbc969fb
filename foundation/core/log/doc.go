// Package log provides structured logging for the consoleargs packages.
//
// Package: log
// Title: Structured Logging
// Description: Leveled, structured logger with contextual fields and JSON,
//              text or console output. Engine components derive their logger
//              from GetDefault with a "component" field; the shared default
//              only writes warnings and above to stderr.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-08-04
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2025-08-04 v0.2.0: Trimmed to synchronous logging for the command router
//
// Usage:
//
//	logger := log.New().
//		WithLevel(log.LevelDebug).
//		WithFormat(log.FormatJSON).
//		WithField("component", "router")
//
//	logger.Debug("command resolved", log.Fields{"command": "build", "via": "alias"})
//	logger.LogError(err)
package log
