package errors

import "errors"

// Name errors indicate a key, application name or scope that is not a
// single safe path component.
var (
	// ErrInvalidName indicates a name that failed sanitization.
	ErrInvalidName = errors.New("invalid name")
)

// Location errors indicate the platform could not provide a base directory.
var (
	// ErrNoConfigDirectory indicates the OS config or data directory could not be resolved.
	ErrNoConfigDirectory = errors.New("config directory not found")
)

// Filesystem errors indicate a failure reading or writing the disk.
var (
	// ErrIO indicates a generic filesystem failure.
	ErrIO = errors.New("filesystem error")

	// ErrGetKey indicates a stored key could not be read.
	ErrGetKey = errors.New("failed to get key")

	// ErrInvalidTree indicates an element tree that cannot be materialized,
	// such as a file node with children or a node that was never rooted.
	ErrInvalidTree = errors.New("invalid element tree")
)

// Codec errors indicate a failure converting between values and bytes.
var (
	// ErrSerialize indicates a value could not be serialized.
	ErrSerialize = errors.New("failed to serialize")

	// ErrDeserialize indicates stored bytes could not be parsed.
	ErrDeserialize = errors.New("failed to deserialize")

	// ErrUnsupportedFormat indicates an operation that the format does not support.
	ErrUnsupportedFormat = errors.New("unsupported format")
)

// Lookup errors indicate a registry search with an unexpected number of results.
var (
	// ErrNotFound indicates nothing matched.
	ErrNotFound = errors.New("not found")

	// ErrAmbiguous indicates more than one match where exactly one was required.
	ErrAmbiguous = errors.New("ambiguous match")
)
