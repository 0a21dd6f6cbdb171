// Package loader reads node definitions from outside the process: YAML
// template palettes and Go source files.
package loader

import (
	"fmt"
	"os"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"nodegraph/internal/geometry"
	"nodegraph/internal/graph"
)

// PaletteYAML represents the YAML file structure
type PaletteYAML struct {
	Version     string         `yaml:"version"`
	Description string         `yaml:"description,omitempty"`
	Templates   []TemplateYAML `yaml:"templates"`
}

// TemplateYAML represents one node template
type TemplateYAML struct {
	Name    string   `yaml:"name"`
	Label   string   `yaml:"label,omitempty"`
	Inputs  []string `yaml:"inputs,omitempty"`
	Outputs []string `yaml:"outputs,omitempty"`
}

// Template is a reusable node definition
type Template struct {
	Name    string
	Label   string
	Inputs  []string
	Outputs []string
}

// Spec returns the node spec for an instance of t placed at pos
func (t Template) Spec(pos geometry.Point, layout graph.Layout) graph.NodeSpec {
	return graph.NodeSpec{
		Name:     t.Name,
		Label:    t.Label,
		Inputs:   append([]string(nil), t.Inputs...),
		Outputs:  append([]string(nil), t.Outputs...),
		Position: pos,
		Layout:   layout,
	}
}

// Palette is an ordered set of templates with unique names
type Palette struct {
	Version     string
	Description string
	templates   []Template
	byName      map[string]int
}

// Templates returns the templates in file order
func (p *Palette) Templates() []Template {
	return append([]Template(nil), p.templates...)
}

// Template looks up a template by name
func (p *Palette) Template(name string) (Template, bool) {
	i, ok := p.byName[name]
	if !ok {
		return Template{}, false
	}
	return p.templates[i], true
}

// Instantiate builds a node from the named template
func (p *Palette) Instantiate(name string, pos geometry.Point, layout graph.Layout) (*graph.Node, error) {
	t, ok := p.Template(name)
	if !ok {
		return nil, fmt.Errorf("unknown template %q", name)
	}
	return graph.NewNode(t.Spec(pos, layout))
}

// LoadPalette loads a palette from a YAML file
func LoadPalette(path string) (*Palette, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	return ParsePalette(data)
}

// ParsePalette parses a palette from YAML bytes. Every template problem is
// reported, not just the first.
func ParsePalette(data []byte) (*Palette, error) {
	var y PaletteYAML
	if err := yaml.Unmarshal(data, &y); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	return convertYAMLToPalette(&y)
}

func convertYAMLToPalette(y *PaletteYAML) (*Palette, error) {
	p := &Palette{
		Version:     y.Version,
		Description: y.Description,
		templates:   make([]Template, 0, len(y.Templates)),
		byName:      make(map[string]int, len(y.Templates)),
	}

	var errs error
	for i, ty := range y.Templates {
		t := Template{
			Name:    ty.Name,
			Label:   ty.Label,
			Inputs:  ty.Inputs,
			Outputs: ty.Outputs,
		}
		if t.Label == "" {
			t.Label = t.Name
		}

		if _, dup := p.byName[t.Name]; dup {
			errs = multierr.Append(errs, fmt.Errorf("template %d: duplicate name %q", i, t.Name))
			continue
		}
		// build a throwaway node so port rules are checked up front
		if _, err := graph.NewNode(t.Spec(geometry.Point{}, graph.Layout{})); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("template %d: %w", i, err))
			continue
		}

		p.byName[t.Name] = len(p.templates)
		p.templates = append(p.templates, t)
	}
	if errs != nil {
		return nil, errs
	}

	return p, nil
}

// ExportPalette exports a palette to YAML format
func ExportPalette(p *Palette) ([]byte, error) {
	y := &PaletteYAML{
		Version:     p.Version,
		Description: p.Description,
		Templates:   make([]TemplateYAML, 0, len(p.templates)),
	}
	for _, t := range p.templates {
		ty := TemplateYAML{
			Name:    t.Name,
			Inputs:  t.Inputs,
			Outputs: t.Outputs,
		}
		if t.Label != t.Name {
			ty.Label = t.Label
		}
		y.Templates = append(y.Templates, ty)
	}

	return yaml.Marshal(y)
}
