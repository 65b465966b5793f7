package registry

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/afero"

	"github.com/PolarWolf314/libset/internal/configs"
	kerrors "github.com/PolarWolf314/libset/internal/errors"
	"github.com/PolarWolf314/libset/internal/format"
	logger "github.com/PolarWolf314/libset/internal/logging"
	"github.com/PolarWolf314/libset/internal/paths"
	"github.com/PolarWolf314/libset/internal/utils"
)

// Project is an application's metadata record, kept in
// <project dir>/<qualifier>.<organization>.<application>.toml. Every setter
// rewrites the whole record.
type Project struct {
	Qualifier    string `toml:"qualifier"`
	Organization string `toml:"organization"`
	Application  string `toml:"application"`
	Author       string `toml:"author"`
	Version      string `toml:"version"`
	About        string `toml:"about"`

	fs   afero.Fs
	dir  string
	file string
	log  logger.Logger
}

type options struct {
	fs       afero.Fs
	resolver paths.Resolver
	log      logger.Logger
}

// Option configures OpenOrCreate and Open.
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

func locate(qualifier, organization, application string, opts []Option) (*Project, error) {
	o := options{fs: afero.NewOsFs(), resolver: paths.OS{}}
	for _, opt := range opts {
		opt(&o)
	}

	dir, err := paths.ProjectDir(o.resolver, qualifier, organization, application)
	if err != nil {
		return nil, err
	}
	file, err := paths.ProjectFileName(qualifier, organization, application)
	if err != nil {
		return nil, err
	}
	o.log.Debugf("Project directory for %s.%s.%s is %s", qualifier, organization, application, dir)

	return &Project{
		Qualifier:    qualifier,
		Organization: organization,
		Application:  application,
		fs:           o.fs,
		dir:          dir,
		file:         file,
		log:          o.log,
	}, nil
}

// OpenOrCreate loads the project's record, creating the project directory
// and an empty record if there is none yet.
func OpenOrCreate(qualifier, organization, application string, opts ...Option) (*Project, error) {
	p, err := locate(qualifier, organization, application, opts)
	if err != nil {
		return nil, err
	}

	if err := p.load(); err == nil {
		return p, nil
	} else if !errors.Is(err, kerrors.ErrNotFound) {
		return nil, err
	}

	if err := p.fs.MkdirAll(p.dir, 0o755); err != nil {
		return nil, kerrors.IO("mkdir", p.dir, err)
	}
	if err := p.save(); err != nil {
		return nil, err
	}
	p.log.Infof("Created project %s", p.RecordPath())
	return p, nil
}

// Open loads an existing project record. ErrNotFound if it was never created.
func Open(qualifier, organization, application string, opts ...Option) (*Project, error) {
	p, err := locate(qualifier, organization, application, opts)
	if err != nil {
		return nil, err
	}
	if err := p.load(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Project) load() error {
	path := p.RecordPath()
	var rec Project
	if err := configs.LoadTOML(p.fs, path, &rec); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: project record %s", kerrors.ErrNotFound, path)
		}
		var unknown *configs.UnknownKeysError
		if errors.As(err, &unknown) {
			return err
		}
		return &kerrors.CodecError{Format: format.TOML.String(), Decode: true, Err: err}
	}
	p.Author, p.Version, p.About = rec.Author, rec.Version, rec.About
	return nil
}

func (p *Project) save() error {
	path := p.RecordPath()
	if err := configs.SaveTOML(p.fs, path, p); err != nil {
		return kerrors.IO("write", path, err)
	}
	p.log.Debugf("Saved project record %s", path)
	return nil
}

// SetAuthor records the author and persists the record.
func (p *Project) SetAuthor(author string) error {
	p.Author = author
	return p.save()
}

// SetVersion records the version and persists the record.
func (p *Project) SetVersion(version string) error {
	p.Version = version
	return p.save()
}

// SetAbout records the description and persists the record.
func (p *Project) SetAbout(about string) error {
	p.About = about
	return p.save()
}

// Dir returns the project's data directory.
func (p *Project) Dir() string {
	return p.dir
}

// RecordPath returns the path of the metadata record.
func (p *Project) RecordPath() string {
	return filepath.Join(p.dir, p.file)
}

// AddFiles writes each file into the project directory unless a file with
// that name already exists there. Existing files are left untouched.
func (p *Project) AddFiles(files ...File) error {
	for _, f := range files {
		name, err := paths.Sanitize(f.FileName())
		if err != nil {
			return err
		}
		path := filepath.Join(p.dir, name)

		exists, err := afero.Exists(p.fs, path)
		if err != nil {
			return kerrors.IO("stat", path, err)
		}
		if exists {
			p.log.Debugf("Skipping %s, it already exists", path)
			continue
		}
		if err := utils.WriteFileAtomic(p.fs, path, []byte(f.Content), 0o644); err != nil {
			return kerrors.IO("write", path, err)
		}
		p.log.Infof("Added %s", path)
	}
	return nil
}

// WriteFile replaces the file at f.Path, or at its name in the project
// directory when f has no path yet, with f's content.
func (p *Project) WriteFile(f File) error {
	path := f.Path
	if path == "" {
		name, err := paths.Sanitize(f.FileName())
		if err != nil {
			return err
		}
		path = filepath.Join(p.dir, name)
	}
	if err := utils.WriteFileAtomic(p.fs, path, []byte(f.Content), 0o644); err != nil {
		return kerrors.IO("write", path, err)
	}
	p.log.Infof("Wrote %s", path)
	return nil
}

// Find returns every TOML, JSON and RON file under the project directory
// whose name contains substr, content loaded, ordered by path. ErrNotFound
// when nothing matches.
func (p *Project) Find(substr string) ([]File, error) {
	files, err := p.scan(func(name string, f format.Format) bool {
		return f != format.Plain && strings.Contains(name, substr)
	})
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: no files matching %q in %s", kerrors.ErrNotFound, substr, p.dir)
	}
	return files, nil
}

// GetFile returns the single file in format f whose name contains name.
// ErrNotFound when there is none, ErrAmbiguous when there are several.
func (p *Project) GetFile(name string, f format.Format) (File, error) {
	files, err := p.scan(func(fileName string, ff format.Format) bool {
		return ff == f && strings.Contains(fileName, name)
	})
	if err != nil {
		return File{}, err
	}
	switch len(files) {
	case 0:
		return File{}, fmt.Errorf("%w: no %s file matching %q in %s", kerrors.ErrNotFound, f, name, p.dir)
	case 1:
		return files[0], nil
	default:
		names := make([]string, len(files))
		for i, file := range files {
			names[i] = file.FileName()
		}
		return File{}, fmt.Errorf("%w: %d %s files match %q: %s", kerrors.ErrAmbiguous, len(files), f, name, strings.Join(names, ", "))
	}
}

// scan walks every regular file in the project directory and loads the ones
// match accepts. Names passed to match include the extension.
func (p *Project) scan(match func(name string, f format.Format) bool) ([]File, error) {
	fsys := afero.NewIOFS(afero.NewBasePathFs(p.fs, p.dir))

	var files []File
	err := doublestar.GlobWalk(fsys, "**/*", func(rel string, d fs.DirEntry) error {
		name := d.Name()
		if utils.IsTempFile(name) {
			return nil
		}
		f := format.FromExtension(name)
		if !match(name, f) {
			return nil
		}

		full := filepath.Join(p.dir, filepath.FromSlash(rel))
		content, err := afero.ReadFile(p.fs, full)
		if err != nil {
			return kerrors.IO("read", full, err)
		}
		if ext := f.Extension(); ext != "" {
			name = strings.TrimSuffix(name, "."+ext)
		}
		files = append(files, File{Name: name, Path: full, Format: f, Content: string(content)})
		return nil
	}, doublestar.WithFilesOnly())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: project directory %s", kerrors.ErrNotFound, p.dir)
		}
		return nil, err
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
	return files, nil
}

// Clear removes the project directory, record included.
func (p *Project) Clear() error {
	if err := p.fs.RemoveAll(p.dir); err != nil {
		return kerrors.IO("remove", p.dir, err)
	}
	p.log.Infof("Removed %s", p.dir)
	return nil
}
