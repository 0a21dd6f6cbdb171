package config

// Config is the root configuration structure
type Config struct {
	Version int           `yaml:"version"`
	Layout  LayoutConfig  `yaml:"layout"`
	Log     LogConfig     `yaml:"log"`
	Palette PaletteConfig `yaml:"palette"`
}

// LayoutConfig holds node metrics in scene units
type LayoutConfig struct {
	BaseWidth  float64 `yaml:"base_width"`
	BaseHeight float64 `yaml:"base_height"`
	PortWidth  float64 `yaml:"port_width"`
	PortHeight float64 `yaml:"port_height"`
	PortGap    float64 `yaml:"port_gap"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  Level  `yaml:"level"`
	Format Format `yaml:"format"`
}

// PaletteConfig points at the node template palette
type PaletteConfig struct {
	Path string `yaml:"path,omitempty"`
}
