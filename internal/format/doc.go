// Package format defines the serialization formats libset stores values in
// and the codecs behind them.
//
// TOML goes through BurntSushi/toml and JSON through encoding/json. RON is
// encoded by reflection using JSON field names and decoded by parsing into
// generic values that encoding/json then maps onto the target, so any type
// that round-trips through JSON also round-trips through RON. Plain writes
// strings verbatim and cannot be decoded structurally.
package format
