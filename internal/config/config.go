package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config controls one generation run.
type Config struct {
	// OutputBase is the base name of the two generated files
	// (<OutputBase>.h and <OutputBase>.c).
	OutputBase string `yaml:"output_base"`
	// HeaderExtensions lists the file extensions collected during
	// discovery, compared case-insensitively.
	HeaderExtensions []string `yaml:"header_extensions"`
	// AllowedReturnTypes and RequiredParamFragments form the signature
	// filter. An explicitly empty allowed_return_types list in the YAML
	// file disables the return-type check.
	AllowedReturnTypes     []string `yaml:"allowed_return_types"`
	RequiredParamFragments []string `yaml:"required_param_fragments"`
	LogLevel               string   `yaml:"log_level"`
}

// Default is the QPC state-handler shape: QState handlers taking the
// framework's immutable event pointer.
func Default() Config {
	return Config{
		OutputBase:             "qp_snapshot",
		HeaderExtensions:       []string{".h"},
		AllowedReturnTypes:     []string{"QState"},
		RequiredParamFragments: []string{"QEvt const * const"},
		LogLevel:               "info",
	}
}

// Load reads a YAML configuration file and overlays it on the defaults;
// keys absent from the file keep their default values. An empty path
// returns the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.OutputBase == "" {
		return Config{}, fmt.Errorf("config %s: output_base must not be empty", path)
	}
	return cfg, nil
}
