// Package logging provides structured logging for goxbar plugins.
//
// This package wraps zap with convenience functions for the logging
// patterns used throughout the library. Because a plugin's standard
// output is parsed by the status-bar host, every log path writes to
// stderr only.
//
// # Log Levels
//
// The package supports standard log levels:
//   - Debug: detailed debugging info (shell argv, config var dumps)
//   - Info: normal operations
//   - Warn: non-fatal issues (failed non-strict shell commands)
//   - Error: fatal issues
//
// # Configuration
//
// Logging is silent unless enabled, so a plugin never has to opt out:
//
//	if err := logging.InitializeFromEnv(); err != nil {
//	    log.Fatal(err)
//	}
//	defer logging.Sync()
//
// and then run the plugin with GOXBAR_LOG_LEVEL=debug to see output.
//
// # Thread Safety
//
// All logging functions are safe for concurrent use. The underlying
// zap logger handles synchronization automatically.
package logging
