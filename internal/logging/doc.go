// Package logging provides structured logging for the field builder.
//
// This package wraps zap logger with package-level convenience functions so
// that the editor, the storage gateway and the record server all log the same
// way without passing a logger around.
//
// # Log Levels
//
//   - Debug: rejected drafts, request bodies
//   - Info: served requests, saved fields
//   - Warn: unreadable local state, echo mismatches
//   - Error: failed remote deliveries, local write failures
//
// # Configuration
//
// Logging is silent unless a level is given, either explicitly or through
// FIELDBUILDER_LOG_LEVEL:
//
//	if err := logging.Initialize("debug"); err != nil {
//	    log.Fatal(err)
//	}
//	defer logging.Sync()
//
// The editor TUI owns the terminal; set FIELDBUILDER_LOG_FILE to send its
// logs to a file instead of stdout.
//
// # Structured Logging
//
//	logging.Info("Field saved",
//	    zap.String("destination", "local"),
//	    zap.String("label", "Color"),
//	)
//
// All logging functions are safe for concurrent use.
package logging
