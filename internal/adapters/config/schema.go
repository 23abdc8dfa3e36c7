package config

// Schema is the YAML shape of the optional config file.
type Schema struct {
	// DataDir overrides where tag files are stored.
	DataDir string `yaml:"data_dir"`
	// Debug enables debug output by default.
	Debug bool `yaml:"debug"`
	// JSON switches debug output to a JSON blob on stdout. Implies Debug.
	JSON bool `yaml:"json"`
}
