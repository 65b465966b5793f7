// Package paths resolves the base directories libset writes under and
// validates the names joined onto them.
//
// A Resolver supplies two roots: ConfigDir for keyed stores and DataDir for
// element trees and projects. OS follows platform conventions with
// LIBSET_CONFIG_HOME and LIBSET_DATA_HOME as explicit overrides; Static pins
// both roots to one directory.
//
// Every application name, scope and key is checked with Sanitize before it
// is joined onto a root, so nothing escapes the directory it belongs to.
package paths
