package hcl_adapter

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

// writeFrameFile drops an HCL frame file into dir and returns its path.
func writeFrameFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoader_LoadSingleFile(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	frame := `
resource "texture" "hdr_color" {
  params {
    format = "rgba16f"
  }
}

resource "texture" "depth" {}

pass "work" "gbuffer" {
  writes = ["hdr_color", "depth"]

  params {
    duration_ms = 2
    label       = "geometry"
    enabled     = true
  }
}

pass "work" "lighting" {
  reads      = ["hdr_color", "depth"]
  writes     = ["hdr_color"]
  depends_on = ["gbuffer"]
}
`
	path := writeFrameFile(t, t.TempDir(), "frame.hcl", frame)

	// --- Act ---
	model, err := NewLoader().Load(context.Background(), path)

	// --- Assert ---
	require.NoError(t, err)
	require.Len(t, model.Passes, 2)
	require.Len(t, model.Resources, 2)

	gbuffer := model.Passes[0]
	assert.Equal(t, "work", gbuffer.Runner)
	assert.Equal(t, "gbuffer", gbuffer.Name)
	assert.Empty(t, gbuffer.Reads)
	assert.Equal(t, []string{"hdr_color", "depth"}, gbuffer.Writes)
	require.NotNil(t, gbuffer.Params)
	assert.True(t, gbuffer.Params["duration_ms"].RawEquals(cty.NumberIntVal(2)))
	assert.True(t, gbuffer.Params["label"].RawEquals(cty.StringVal("geometry")))
	assert.True(t, gbuffer.Params["enabled"].RawEquals(cty.True))

	lighting := model.Passes[1]
	assert.Equal(t, []string{"hdr_color", "depth"}, lighting.Reads)
	assert.Equal(t, []string{"gbuffer"}, lighting.DependsOn)
	assert.Nil(t, lighting.Params)

	hdr := model.Resources[0]
	assert.Equal(t, "texture", hdr.Kind)
	assert.Equal(t, "hdr_color", hdr.Name)
	assert.True(t, hdr.Params["format"].RawEquals(cty.StringVal("rgba16f")))
	assert.Nil(t, model.Resources[1].Params)
}

func TestLoader_LoadDirectoryPreservesFileOrder(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := t.TempDir()
	writeFrameFile(t, dir, "01_first.hcl", `pass "work" "alpha" {}`)
	writeFrameFile(t, dir, "02_second.hcl", `pass "work" "beta" {}`)

	// --- Act ---
	model, err := NewLoader().Load(context.Background(), dir)

	// --- Assert ---
	require.NoError(t, err)
	require.Len(t, model.Passes, 2)
	assert.Equal(t, "alpha", model.Passes[0].Name)
	assert.Equal(t, "beta", model.Passes[1].Name)
}

func TestLoader_DuplicatePathsLoadOnce(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFrameFile(t, dir, "frame.hcl", `pass "work" "only" {}`)

	model, err := NewLoader().Load(context.Background(), path, path, dir)
	require.NoError(t, err)
	assert.Len(t, model.Passes, 1)
}

func TestLoader_Errors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "unterminated block",
			content: `pass "work" "broken" {`,
			wantErr: "failed to parse",
		},
		{
			name:    "unknown attribute in pass",
			content: `pass "work" "p" { retries = 3 }`,
			wantErr: "failed to decode",
		},
		{
			name:    "missing pass label",
			content: `pass "work" {}`,
			wantErr: "failed to decode",
		},
		{
			name: "non-literal param",
			content: `pass "work" "p" {
  params {
    value = some.reference
  }
}`,
			wantErr: `invalid value for param "value"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			path := writeFrameFile(t, t.TempDir(), "frame.hcl", tc.content)
			_, err := NewLoader().Load(context.Background(), path)
			require.Error(t, err)
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestLoader_MissingPathFails(t *testing.T) {
	t.Parallel()

	_, err := NewLoader().Load(context.Background(), filepath.Join(t.TempDir(), "nope.hcl"))
	require.Error(t, err)
	assert.ErrorContains(t, err, "error accessing path")
}
