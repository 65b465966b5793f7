// Package utils provides shared helpers for the libset packages and CLI.
//
// # Filesystem Utilities
//
//   - WriteFileAtomic: replaces a file through a synced temp file and a rename
//   - IsTempFile: recognizes temp files a failed write may leave behind
//
// # String Utilities
//
//   - FormatPaths: formats file paths for human-readable output
//   - SplitSlashPath: splits CLI supplied slash paths into elements
//
// # System Utilities
//
//   - GetUsername, DefaultAuthor: the current user, for author metadata
//
// # I/O and Terminal Utilities
//
//   - ReadStdin: reads piped values for `store set`
//   - IsTerminal, IsStdoutTerminal: decide when to show a spinner
package utils
