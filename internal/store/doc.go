// Package store is a keyed settings store: each key is one file under a
// versioned application root, serialized in the format the caller picks.
//
//	s, err := store.Open("demo", 1, "", store.WithLogger(log))
//	err = s.Set("colors", format.JSON, colors)       // <config>/demo/v1/colors.json
//	colors, err := store.GetAs[Colors](s, "colors", format.JSON)
//
// Keys, application names and scopes must be single path components.
// Writes go through a temp file and a rename, so a reader never sees a
// partially written value. There is no index; Has, Get and Keys read the
// directory directly.
package store
