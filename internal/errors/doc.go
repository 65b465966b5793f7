// Package errors provides typed error values for libset.
//
// Using sentinel errors allows callers to handle specific error conditions
// programmatically with errors.Is() rather than string matching.
//
// # Error Categories
//
// Errors are grouped by category:
//
//   - Name errors: ErrInvalidName (see NameError)
//   - Location errors: ErrNoConfigDirectory
//   - Filesystem errors: ErrIO (see IOError), ErrGetKey (see KeyError), ErrInvalidTree
//   - Codec errors: ErrSerialize, ErrDeserialize (see CodecError), ErrUnsupportedFormat
//   - Lookup errors: ErrNotFound, ErrAmbiguous
//
// The typed errors carry the offending name, path or key and unwrap to the
// underlying cause, so both checks work:
//
//	var s settings
//	err := st.Get("colors", format.JSON, &s)
//	if errors.Is(err, kerrors.ErrGetKey) && errors.Is(err, fs.ErrNotExist) {
//	    // Key was never written.
//	}
//
// Wrap errors with additional context:
//
//	return fmt.Errorf("opening store for %s: %w", name, err)
package errors
