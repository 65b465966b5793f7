package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"

	kerrors "github.com/PolarWolf314/libset/internal/errors"
	"github.com/PolarWolf314/libset/internal/format"
	logger "github.com/PolarWolf314/libset/internal/logging"
	"github.com/PolarWolf314/libset/internal/paths"
	"github.com/PolarWolf314/libset/internal/utils"
)

// Store reads and writes individual settings files under a versioned,
// optionally scoped application root:
//
//	<config dir>/<name>/v<version>[/<scope>]/<key>[.<ext>]
type Store struct {
	fs   afero.Fs
	root string
	log  logger.Logger
}

type options struct {
	fs       afero.Fs
	resolver paths.Resolver
	log      logger.Logger
}

// Option configures Open.
type Option func(*options)

// WithFs sets the filesystem the store operates on. Defaults to the OS filesystem.
func WithFs(fs afero.Fs) Option {
	return func(o *options) { o.fs = fs }
}

// WithResolver sets how the base config directory is found. Defaults to paths.OS.
func WithResolver(r paths.Resolver) Option {
	return func(o *options) { o.resolver = r }
}

// WithLogger sets the logger for write and resolution messages.
func WithLogger(l logger.Logger) Option {
	return func(o *options) { o.log = l }
}

// Open resolves the store root for name, version and scope, and creates it
// if it does not exist. An empty scope means no scope.
func Open(name string, version uint64, scope string, opts ...Option) (*Store, error) {
	o := options{fs: afero.NewOsFs(), resolver: paths.OS{}}
	for _, opt := range opts {
		opt(&o)
	}

	name, err := paths.Sanitize(name)
	if err != nil {
		return nil, err
	}
	if scope != "" {
		if scope, err = paths.Sanitize(scope); err != nil {
			return nil, err
		}
	}

	base, err := o.resolver.ConfigDir()
	if err != nil {
		return nil, err
	}
	o.log.Debugf("Resolved config directory %s", base)

	root := filepath.Join(base, name, fmt.Sprintf("v%d", version))
	if scope != "" {
		root = filepath.Join(root, scope)
	}

	if err := o.fs.MkdirAll(root, 0o755); err != nil {
		return nil, kerrors.IO("mkdir", root, err)
	}
	o.log.Debugf("Opened store at %s", root)

	return &Store{fs: o.fs, root: root, log: o.log}, nil
}

// Root returns the directory every key is stored in.
func (s *Store) Root() string {
	return s.root
}

// Path returns where key is stored in format f. Plain keys may not end in
// the extension of a structured format, since the file would share its name
// with a typed key.
func (s *Store) Path(key string, f format.Format) (string, error) {
	key, err := paths.Sanitize(key)
	if err != nil {
		return "", err
	}
	if f == format.Plain {
		if owner := format.FromExtension(key); owner != format.Plain {
			return "", fmt.Errorf("%w: plain key %q ends in the %s extension", kerrors.ErrInvalidName, key, owner)
		}
	}
	return filepath.Join(s.root, f.FileName(key)), nil
}

// Has reports whether key exists in format f. Any error, including an
// invalid key, reads as false.
func (s *Store) Has(key string, f format.Format) bool {
	p, err := s.Path(key, f)
	if err != nil {
		return false
	}
	_, err = s.fs.Stat(p)
	return err == nil
}

// Get decodes the value stored under key into out. A missing or unreadable
// file is a KeyError; Plain must be read with GetPlain.
func (s *Store) Get(key string, f format.Format, out any) error {
	if f == format.Plain {
		return fmt.Errorf("%w: read plain values with GetPlain", kerrors.ErrUnsupportedFormat)
	}
	data, err := s.read(key, f)
	if err != nil {
		return err
	}
	return format.Unmarshal(data, f, out)
}

// GetAs is Get returning the decoded value.
func GetAs[T any](s *Store, key string, f format.Format) (T, error) {
	var v T
	err := s.Get(key, f, &v)
	return v, err
}

// Set serializes v and atomically replaces whatever is stored under key.
func (s *Store) Set(key string, f format.Format, v any) error {
	data, err := format.Marshal(v, f)
	if err != nil {
		return err
	}
	return s.write(key, f, data)
}

// GetPlain returns the file stored under key verbatim.
func (s *Store) GetPlain(key string) (string, error) {
	data, err := s.read(key, format.Plain)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// SetPlain stores value verbatim under key.
func (s *Store) SetPlain(key, value string) error {
	return s.write(key, format.Plain, []byte(value))
}

// Delete removes key. Deleting a key that does not exist is not an error.
func (s *Store) Delete(key string, f format.Format) error {
	p, err := s.Path(key, f)
	if err != nil {
		return err
	}
	if err := s.fs.Remove(p); err != nil && !os.IsNotExist(err) {
		return kerrors.IO("remove", p, err)
	}
	s.log.Infof("Deleted %s", p)
	return nil
}

// Keys lists the keys stored in format f, sorted. Plain lists files
// without an extension of a known format.
func (s *Store) Keys(f format.Format) ([]string, error) {
	entries, err := afero.ReadDir(s.fs, s.root)
	if err != nil {
		return nil, kerrors.IO("readdir", s.root, err)
	}

	var keys []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || utils.IsTempFile(name) || format.FromExtension(name) != f {
			continue
		}
		if ext := f.Extension(); ext != "" {
			name = strings.TrimSuffix(name, "."+ext)
		}
		keys = append(keys, name)
	}
	sort.Strings(keys)
	return keys, nil
}

// Clean removes the store root and everything in it.
func (s *Store) Clean() error {
	if err := s.fs.RemoveAll(s.root); err != nil {
		return kerrors.IO("remove", s.root, err)
	}
	s.log.Infof("Removed %s", s.root)
	return nil
}

func (s *Store) read(key string, f format.Format) ([]byte, error) {
	p, err := s.Path(key, f)
	if err != nil {
		return nil, err
	}
	data, err := afero.ReadFile(s.fs, p)
	if err != nil {
		return nil, &kerrors.KeyError{Key: key, Err: err}
	}
	return data, nil
}

func (s *Store) write(key string, f format.Format, data []byte) error {
	p, err := s.Path(key, f)
	if err != nil {
		return err
	}
	if err := utils.WriteFileAtomic(s.fs, p, data, 0o644); err != nil {
		return kerrors.IO("write", p, err)
	}
	s.log.Infof("Wrote %s", p)
	return nil
}
