// Package registry keeps per-project metadata and the loose files stored
// next to it in the project's data directory.
//
// A project is identified by qualifier, organization and application. Its
// record is written on creation and rewritten by every setter. Files are
// placed with AddFiles and looked up by name substring with Find and
// GetFile, which walk the directory with doublestar over an afero io/fs view.
package registry
