// Package app describes an application's config root: a directory under the
// data dir holding an element tree and an app.toml (or app.json) manifest
// that records who wrote the tree and what it contains.
//
// Lookups take the application name explicitly; there is no process-wide
// "current" application.
package app
