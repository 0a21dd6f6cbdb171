package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nodegraph/internal/geometry"
	"nodegraph/internal/graph"
)

const samplePalette = `
version: "1"
description: arithmetic blocks
templates:
  - name: const
    outputs: [value]
  - name: add
    label: Add
    inputs: [a, b]
    outputs: [sum]
  - name: print
    inputs: [value]
`

func TestParsePalette(t *testing.T) {
	p, err := ParsePalette([]byte(samplePalette))
	require.NoError(t, err)

	assert.Equal(t, "1", p.Version)
	assert.Equal(t, "arithmetic blocks", p.Description)

	templates := p.Templates()
	require.Len(t, templates, 3)
	assert.Equal(t, "const", templates[0].Name)
	assert.Equal(t, "const", templates[0].Label, "label defaults to name")
	assert.Equal(t, "print", templates[2].Name)

	add, ok := p.Template("add")
	require.True(t, ok)
	assert.Equal(t, "Add", add.Label)
	assert.Equal(t, []string{"a", "b"}, add.Inputs)
	assert.Equal(t, []string{"sum"}, add.Outputs)

	_, ok = p.Template("missing")
	assert.False(t, ok)
}

func TestParsePaletteErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"invalid yaml", "templates: [unclosed"},
		{"duplicate template", "templates:\n  - name: a\n  - name: a\n"},
		{"empty name", "templates:\n  - inputs: [x]\n"},
		{"duplicate port", "templates:\n  - name: a\n    inputs: [x, x]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePalette([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestParsePaletteReportsEveryTemplate(t *testing.T) {
	data := "templates:\n  - name: a\n    inputs: [x, x]\n  - name: ''\n"
	_, err := ParsePalette([]byte(data))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "template 0")
	assert.Contains(t, err.Error(), "template 1")
}

func TestPaletteInstantiate(t *testing.T) {
	p, err := ParsePalette([]byte(samplePalette))
	require.NoError(t, err)

	n, err := p.Instantiate("add", geometry.Pt(10, 20), graph.DefaultLayout())
	require.NoError(t, err)
	assert.Equal(t, "add", n.Name())
	assert.Equal(t, geometry.Pt(10, 20), n.Position())
	assert.Len(t, n.Inputs(), 2)
	assert.Len(t, n.Outputs(), 1)
	assert.NotNil(t, n.Input("b"))

	_, err = p.Instantiate("nope", geometry.Point{}, graph.DefaultLayout())
	assert.Error(t, err)
}

func TestTemplateSpecCopiesPorts(t *testing.T) {
	tmpl := Template{Name: "t", Inputs: []string{"x"}}
	spec := tmpl.Spec(geometry.Point{}, graph.DefaultLayout())
	spec.Inputs[0] = "changed"
	assert.Equal(t, "x", tmpl.Inputs[0])
}

func TestLoadPalette(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "palette.yaml")
	require.NoError(t, os.WriteFile(path, []byte(samplePalette), 0644))

	p, err := LoadPalette(path)
	require.NoError(t, err)
	assert.Len(t, p.Templates(), 3)

	_, err = LoadPalette(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestExportPaletteRoundTrip(t *testing.T) {
	p, err := ParsePalette([]byte(samplePalette))
	require.NoError(t, err)

	data, err := ExportPalette(p)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "label: const")

	again, err := ParsePalette(data)
	require.NoError(t, err)
	assert.Equal(t, p.Templates(), again.Templates())
}
