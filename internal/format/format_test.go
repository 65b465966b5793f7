package format

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	kerrors "github.com/PolarWolf314/libset/internal/errors"
)

type palette struct {
	Accent  string   `json:"accent" toml:"accent"`
	Opacity float64  `json:"opacity" toml:"opacity"`
	Layers  []string `json:"layers" toml:"layers"`
	Dark    bool     `json:"dark" toml:"dark"`
	Depth   int64    `json:"depth" toml:"depth"`
}

type theme struct {
	Name     string            `json:"name"`
	Palette  palette           `json:"palette"`
	Fallback *palette          `json:"fallback"`
	Tags     map[string]string `json:"tags,omitempty"`
	Hidden   string            `json:"-"`
}

func samplePalette() palette {
	return palette{
		Accent:  "#ff8800",
		Opacity: 0.75,
		Layers:  []string{"base", "overlay"},
		Dark:    true,
		Depth:   3,
	}
}

func TestExtensionsAndFileNames(t *testing.T) {
	assert.Equal(t, "", Plain.Extension())
	assert.Equal(t, "toml", TOML.Extension())
	assert.Equal(t, "json", JSON.Extension())
	assert.Equal(t, "ron", RON.Extension())

	assert.Equal(t, "colors.json", JSON.FileName("colors"))
	assert.Equal(t, "notes", Plain.FileName("notes"))
	assert.False(t, Format(42).Valid())
}

func TestParse(t *testing.T) {
	for _, f := range All {
		got, err := Parse(f.String())
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}

	got, err := Parse(".TOML")
	require.NoError(t, err)
	assert.Equal(t, TOML, got)

	_, err = Parse("yaml")
	assert.True(t, errors.Is(err, kerrors.ErrUnsupportedFormat))
}

func TestFromExtension(t *testing.T) {
	assert.Equal(t, TOML, FromExtension("app.toml"))
	assert.Equal(t, JSON, FromExtension("colors.json"))
	assert.Equal(t, RON, FromExtension("state.ron"))
	assert.Equal(t, Plain, FromExtension("README"))
	assert.Equal(t, Plain, FromExtension("archive.tar"))
}

func TestRoundTrip(t *testing.T) {
	for _, f := range []Format{TOML, JSON, RON} {
		t.Run(f.String(), func(t *testing.T) {
			data, err := Marshal(samplePalette(), f)
			require.NoError(t, err)

			var got palette
			require.NoError(t, Unmarshal(data, f, &got))
			assert.Equal(t, samplePalette(), got)
		})
	}
}

func TestJSONIsIndented(t *testing.T) {
	data, err := Marshal(map[string]string{"accent": "red"}, JSON)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"accent\": \"red\"\n}", string(data))
}

func TestPlain(t *testing.T) {
	data, err := Marshal("hello", Plain)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))

	data, err = Marshal([]byte("raw"), Plain)
	require.NoError(t, err)
	assert.Equal(t, "raw", string(data))

	_, err = Marshal(samplePalette(), Plain)
	assert.True(t, errors.Is(err, kerrors.ErrSerialize))

	var out string
	err = Unmarshal([]byte("hello"), Plain, &out)
	assert.True(t, errors.Is(err, kerrors.ErrUnsupportedFormat))
}

func TestDecodeErrorsAreWrapped(t *testing.T) {
	var out palette
	err := Unmarshal([]byte("{not json"), JSON, &out)
	require.Error(t, err)
	assert.True(t, errors.Is(err, kerrors.ErrDeserialize))

	var codecErr *kerrors.CodecError
	require.True(t, errors.As(err, &codecErr))
	assert.Equal(t, "json", codecErr.Format)
}

func TestRONLayout(t *testing.T) {
	data, err := Marshal(theme{
		Name:    "night",
		Palette: palette{Accent: "blue", Opacity: 1, Layers: []string{}},
		Hidden:  "secret",
	}, RON)
	require.NoError(t, err)

	want := `(
    name: "night",
    palette: (
        accent: "blue",
        opacity: 1.0,
        layers: [],
        dark: false,
        depth: 0,
    ),
    fallback: None,
)
`
	assert.Equal(t, want, string(data))
}

func TestRONNestedRoundTrip(t *testing.T) {
	fallback := samplePalette()
	in := theme{
		Name:     "day \"bright\"\n",
		Palette:  samplePalette(),
		Fallback: &fallback,
		Tags:     map[string]string{"b": "2", "a": "1"},
	}

	data, err := Marshal(in, RON)
	require.NoError(t, err)

	var got theme
	require.NoError(t, Unmarshal(data, RON, &got))
	assert.Equal(t, in, got)
}

func TestRONRejectsNonFiniteFloats(t *testing.T) {
	for _, f := range []float64{math.Inf(1), math.Inf(-1), math.NaN()} {
		_, err := Marshal(palette{Opacity: f}, RON)
		assert.True(t, errors.Is(err, kerrors.ErrSerialize), "%v", f)
	}
}

func TestRONKeepsNilCollectionsNil(t *testing.T) {
	in := struct {
		Layers []string          `json:"layers"`
		Tags   map[string]string `json:"tags"`
		Empty  []string          `json:"empty"`
	}{Empty: []string{}}

	data, err := Marshal(in, RON)
	require.NoError(t, err)
	assert.Equal(t, "(\n    layers: None,\n    tags: None,\n    empty: [],\n)\n", string(data))

	got := in
	got.Empty = nil
	require.NoError(t, Unmarshal(data, RON, &got))
	assert.Nil(t, got.Layers)
	assert.Nil(t, got.Tags)
	assert.Equal(t, []string{}, got.Empty)
}

func TestRONParsesHandWrittenInput(t *testing.T) {
	src := `#![enable(implicit_some)]
// a palette
Palette(
    accent: r#"raw "quoted""#,
    opacity: 1_0.5e-1, /* block /* nested */ comment */
    layers: ["a", 'b', Base,],
    dark: true,
    depth: 0x1F,
)`

	var got palette
	require.NoError(t, Unmarshal([]byte(src), RON, &got))
	assert.Equal(t, palette{
		Accent:  `raw "quoted"`,
		Opacity: 1.05,
		Layers:  []string{"a", "b", "Base"},
		Dark:    true,
		Depth:   31,
	}, got)
}

func TestRONOptionsAndNewtypes(t *testing.T) {
	var got struct {
		Some  *int   `json:"some"`
		None  *int   `json:"none"`
		Meter int    `json:"meter"`
		Pair  []int  `json:"pair"`
		Enum  string `json:"enum"`
	}
	src := `(some: Some(4), none: None, meter: Meters(12), pair: (1, 2), enum: Dark)`
	require.NoError(t, Unmarshal([]byte(src), RON, &got))

	require.NotNil(t, got.Some)
	assert.Equal(t, 4, *got.Some)
	assert.Nil(t, got.None)
	assert.Equal(t, 12, got.Meter)
	assert.Equal(t, []int{1, 2}, got.Pair)
	assert.Equal(t, "Dark", got.Enum)
}

func TestRONMaps(t *testing.T) {
	in := map[string]int{"z": 26, "a": 1}
	data, err := Marshal(in, RON)
	require.NoError(t, err)
	assert.Equal(t, "{\n    \"a\": 1,\n    \"z\": 26,\n}\n", string(data))

	var got map[string]int
	require.NoError(t, Unmarshal(data, RON, &got))
	assert.Equal(t, in, got)

	var numeric map[int]string
	require.NoError(t, Unmarshal([]byte(`{1: "one", 2: "two"}`), RON, &numeric))
	assert.Equal(t, map[int]string{1: "one", 2: "two"}, numeric)
}

func TestRONRejectsMalformedInput(t *testing.T) {
	cases := []string{
		`(accent: "open`,
		`[1, 2`,
		`(accent "x")`,
		`(opacity: inf)`,
		`"a" "b"`,
	}
	for _, src := range cases {
		var got palette
		err := Unmarshal([]byte(src), RON, &got)
		assert.Error(t, err, src)
		assert.True(t, errors.Is(err, kerrors.ErrDeserialize), src)
	}
}

func TestRONFormatMarshalsAsText(t *testing.T) {
	data, err := Marshal(struct {
		Kind Format `json:"kind"`
	}{Kind: JSON}, RON)
	require.NoError(t, err)
	assert.Equal(t, "(\n    kind: \"json\",\n)\n", string(data))
}
