// Package configs persists small metadata records as TOML files.
//
// SaveTOML writes through utils.WriteFileAtomic, so a record is either the
// previous version or the new one, never a mix. LoadTOML is strict about
// keys the target type does not know.
package configs
