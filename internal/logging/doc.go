// Package logger provides leveled logging for libset and its CLI.
//
// The library packages (tree, store, registry, app) accept a Logger through
// their options and report writes at info level and path resolution at
// debug level. The zero value is quiet except for warnings and errors.
//
// # Verbosity Levels
//
// Logging behavior is controlled by two flags:
//
//   - --verbose: Shows info messages
//   - --debug: Shows all messages including debug details
//
// # Log Methods
//
//	Logger.Infof()           // Shown with --verbose or --debug
//	Logger.Debugf()          // Shown only with --debug
//	Logger.Warnf()           // Always shown
//	Logger.Errorf()          // Always shown
//	Logger.ErrorfAndReturn() // Logged with --debug, always returned
//
// # Usage
//
//	log := Logger{Verbose: verbose, Debug: debug}
//	log.Infof("Wrote %d files", count)
//
// Commands create a logger in their PersistentPreRun and pass it to the
// library through options.
package logger
