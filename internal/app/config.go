package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	kerrors "github.com/PolarWolf314/libset/internal/errors"
	"github.com/PolarWolf314/libset/internal/format"
	logger "github.com/PolarWolf314/libset/internal/logging"
	"github.com/PolarWolf314/libset/internal/paths"
	"github.com/PolarWolf314/libset/internal/tree"
)

const manifestName = "app"

// Manifest is the self-description written next to an application's tree.
type Manifest struct {
	Name     string       `toml:"name" json:"name"`
	Author   string       `toml:"author" json:"author"`
	Version  string       `toml:"version" json:"version"`
	About    string       `toml:"about" json:"about"`
	Elements []tree.Entry `toml:"elements" json:"elements"`
}

// Config is an application's config root: the directory
// <data dir>/<name> and the element tree that lives in it.
type Config struct {
	name    string
	base    string
	author  string
	version string
	about   string

	root     *tree.Node
	manifest *tree.Node

	fs  afero.Fs
	log logger.Logger
}

type options struct {
	fs             afero.Fs
	resolver       paths.Resolver
	log            logger.Logger
	manifestFormat format.Format
	formatSet      bool
}

// Option configures New and Current.
type Option func(*options)

// WithFs sets the filesystem. Defaults to the OS filesystem.
func WithFs(fs afero.Fs) Option {
	return func(o *options) { o.fs = fs }
}

// WithResolver sets how the data directory is found. Defaults to paths.OS.
func WithResolver(r paths.Resolver) Option {
	return func(o *options) { o.resolver = r }
}

// WithLogger sets the logger.
func WithLogger(l logger.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithManifestFormat writes the manifest as app.json instead of app.toml.
// Only TOML and JSON are accepted.
func WithManifestFormat(f format.Format) Option {
	return func(o *options) {
		o.manifestFormat = f
		o.formatSet = true
	}
}

func resolve(name string, opts []Option) (options, string, error) {
	o := options{fs: afero.NewOsFs(), resolver: paths.OS{}, manifestFormat: format.TOML}
	for _, opt := range opts {
		opt(&o)
	}
	if o.manifestFormat != format.TOML && o.manifestFormat != format.JSON {
		return o, "", fmt.Errorf("%w: manifest must be toml or json, got %s", kerrors.ErrUnsupportedFormat, o.manifestFormat)
	}

	name, err := paths.Sanitize(name)
	if err != nil {
		return o, "", err
	}
	dataDir, err := o.resolver.DataDir()
	if err != nil {
		return o, "", err
	}
	return o, filepath.Join(dataDir, name), nil
}

// New describes the config root of application name. Nothing is written
// until Write.
func New(name string, opts ...Option) (*Config, error) {
	o, base, err := resolve(name, opts)
	if err != nil {
		return nil, err
	}
	o.log.Debugf("Config root for %s is %s", name, base)

	root := tree.NewDirectory("")
	tree.Rebase(root, base)
	manifest := tree.NewFile(o.manifestFormat.FileName(manifestName)).WithFormat(o.manifestFormat)
	root.AddChild(manifest)

	return &Config{
		name:     name,
		base:     base,
		root:     root,
		manifest: manifest,
		fs:       o.fs,
		log:      o.log,
	}, nil
}

// WithAuthor sets the author recorded in the manifest.
func (c *Config) WithAuthor(author string) *Config {
	c.author = author
	return c
}

// WithVersion sets the version recorded in the manifest.
func (c *Config) WithVersion(version string) *Config {
	c.version = version
	return c
}

// WithAbout sets the description recorded in the manifest.
func (c *Config) WithAbout(about string) *Config {
	c.about = about
	return c
}

// Add attaches nodes under the config root.
func (c *Config) Add(nodes ...*tree.Node) *Config {
	for _, n := range nodes {
		c.root.AddChild(n)
	}
	return c
}

func (c *Config) Name() string         { return c.name }
func (c *Config) BasePath() string     { return c.base }
func (c *Config) Root() *tree.Node     { return c.root }
func (c *Config) Author() string       { return c.author }
func (c *Config) Version() string      { return c.version }
func (c *Config) About() string        { return c.about }
func (c *Config) ManifestPath() string { return c.manifest.Path() }

// Manifest returns the description Write records.
func (c *Config) Manifest() Manifest {
	return Manifest{
		Name:     c.name,
		Author:   c.author,
		Version:  c.version,
		About:    c.about,
		Elements: c.root.Snapshot().Children,
	}
}

// Write materializes the tree, manifest included. The data directory is
// created if needed; below it the tree writer's rules apply.
func (c *Config) Write() error {
	parent := filepath.Dir(c.base)
	if err := c.fs.MkdirAll(parent, 0o755); err != nil {
		return kerrors.IO("mkdir", parent, err)
	}

	c.manifest.WithContent(c.Manifest())
	if err := tree.NewWriter(c.fs, c.log).Write(c.root); err != nil {
		return err
	}
	c.log.Infof("Wrote config for %s to %s", c.name, c.base)
	return nil
}

// IsWritten reports whether the manifest exists on disk.
func (c *Config) IsWritten() bool {
	ok, err := afero.Exists(c.fs, c.ManifestPath())
	return err == nil && ok
}

// Clear removes the config root and everything in it.
func (c *Config) Clear() error {
	if err := c.fs.RemoveAll(c.base); err != nil {
		return kerrors.IO("remove", c.base, err)
	}
	c.log.Infof("Removed %s", c.base)
	return nil
}

// Current reads the manifest last written for application name. Without
// WithManifestFormat both app.toml and app.json are tried, in that order.
// ErrNotFound when neither exists.
func Current(name string, opts ...Option) (*Manifest, error) {
	o, base, err := resolve(name, opts)
	if err != nil {
		return nil, err
	}

	candidates := []format.Format{format.TOML, format.JSON}
	if o.formatSet {
		candidates = []format.Format{o.manifestFormat}
	}

	for _, f := range candidates {
		p := filepath.Join(base, f.FileName(manifestName))
		data, err := afero.ReadFile(o.fs, p)
		if errors.Is(err, os.ErrNotExist) {
			o.log.Debugf("No manifest at %s", p)
			continue
		}
		if err != nil {
			return nil, kerrors.IO("read", p, err)
		}

		var m Manifest
		if err := format.Unmarshal(data, f, &m); err != nil {
			return nil, fmt.Errorf("reading %s: %w", p, err)
		}
		return &m, nil
	}
	return nil, fmt.Errorf("%w: %s has not been written", kerrors.ErrNotFound, name)
}
