package app

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	kerrors "github.com/PolarWolf314/libset/internal/errors"
	"github.com/PolarWolf314/libset/internal/format"
	"github.com/PolarWolf314/libset/internal/paths"
	"github.com/PolarWolf314/libset/internal/tree"
)

type appSettings struct {
	Theme string `toml:"theme" json:"theme"`
}

func memOpts() (afero.Fs, []Option) {
	fs := afero.NewMemMapFs()
	return fs, []Option{WithFs(fs), WithResolver(paths.Static("/data"))}
}

func TestNewLayout(t *testing.T) {
	_, opts := memOpts()
	c, err := New("demo", opts...)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join("/data", "demo"), c.BasePath())
	assert.Equal(t, c.BasePath(), c.Root().Path())
	assert.Equal(t, filepath.Join("/data", "demo", "app.toml"), c.ManifestPath())
	assert.False(t, c.IsWritten())
}

func TestWriteAndCurrent(t *testing.T) {
	fs, opts := memOpts()
	c, err := New("demo", opts...)
	require.NoError(t, err)

	c.WithAuthor("Jane").WithVersion("0.2.0").WithAbout("Demo app").
		Add(tree.NewDirectory("config").
			AddChild(tree.NewFile("config.toml").WithFormat(format.TOML).WithContent(appSettings{Theme: "dark"})))
	require.NoError(t, c.Write())
	assert.True(t, c.IsWritten())

	exists, err := afero.Exists(fs, filepath.Join("/data", "demo", "config", "config.toml"))
	require.NoError(t, err)
	assert.True(t, exists)

	m, err := Current("demo", opts...)
	require.NoError(t, err)
	assert.Equal(t, "demo", m.Name)
	assert.Equal(t, "Jane", m.Author)
	assert.Equal(t, "0.2.0", m.Version)
	assert.Equal(t, "Demo app", m.About)

	require.Len(t, m.Elements, 2)
	assert.Equal(t, "app.toml", m.Elements[0].Name)
	assert.Equal(t, tree.Directory, m.Elements[1].Kind)
	require.Len(t, m.Elements[1].Children, 1)
	assert.Equal(t, format.TOML, m.Elements[1].Children[0].Format)
}

func TestJSONManifest(t *testing.T) {
	_, opts := memOpts()
	c, err := New("demo", append(opts, WithManifestFormat(format.JSON))...)
	require.NoError(t, err)
	assert.Equal(t, "app.json", filepath.Base(c.ManifestPath()))
	require.NoError(t, c.WithAuthor("Jane").Write())

	// Probing finds app.json without being told.
	m, err := Current("demo", opts...)
	require.NoError(t, err)
	assert.Equal(t, "Jane", m.Author)
}

func TestManifestFormatMustBeStructured(t *testing.T) {
	_, opts := memOpts()
	_, err := New("demo", append(opts, WithManifestFormat(format.Plain))...)
	assert.True(t, errors.Is(err, kerrors.ErrUnsupportedFormat))
}

func TestCurrentNotWritten(t *testing.T) {
	_, opts := memOpts()
	_, err := Current("demo", opts...)
	assert.True(t, errors.Is(err, kerrors.ErrNotFound))
}

func TestInvalidName(t *testing.T) {
	_, opts := memOpts()
	_, err := New("../demo", opts...)
	assert.True(t, errors.Is(err, kerrors.ErrInvalidName))
}

func TestRewriteKeepsDirectories(t *testing.T) {
	fs, opts := memOpts()
	c, err := New("demo", opts...)
	require.NoError(t, err)
	c.Add(tree.NewDirectory("cache"))
	require.NoError(t, c.Write())

	require.NoError(t, afero.WriteFile(fs, "/data/demo/cache/blob", []byte("x"), 0o644))
	require.NoError(t, c.WithVersion("2").Write())

	exists, err := afero.Exists(fs, "/data/demo/cache/blob")
	require.NoError(t, err)
	assert.True(t, exists)

	m, err := Current("demo", opts...)
	require.NoError(t, err)
	assert.Equal(t, "2", m.Version)
}

func TestClear(t *testing.T) {
	fs, opts := memOpts()
	c, err := New("demo", opts...)
	require.NoError(t, err)
	require.NoError(t, c.Write())
	require.NoError(t, c.Clear())

	exists, err := afero.DirExists(fs, c.BasePath())
	require.NoError(t, err)
	assert.False(t, exists)
	assert.False(t, c.IsWritten())
}
