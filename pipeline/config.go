// Package pipeline - ordered filter steps loaded from YAML or JSON files.
package pipeline

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Supported step operations.
const (
	OpGrayscale  = "grayscale"
	OpBrightness = "brightness"
)

var (
	// ErrUnknownOp is returned for a step whose op is not supported.
	ErrUnknownOp = errors.New("unknown pipeline op")
	// ErrEmptyPipeline is returned for a config with no steps.
	ErrEmptyPipeline = errors.New("pipeline has no steps")
	// ErrUnsupportedConfig is returned for config files that are neither YAML nor JSON.
	ErrUnsupportedConfig = errors.New("unsupported config file")
)

// Step is one filter application.
type Step struct {
	// Op is OpGrayscale or OpBrightness.
	Op string `json:"op" yaml:"op"`
	// Factor is the brightness offset; ignored by grayscale.
	Factor int `json:"factor,omitempty" yaml:"factor,omitempty"`
}

// Config represents a named, ordered list of steps.
type Config struct {
	Name  string `json:"name"  yaml:"name"`
	Steps []Step `json:"steps" yaml:"steps"`
}

// Validate checks every step's op.
func (c *Config) Validate() error {
	if len(c.Steps) == 0 {
		return ErrEmptyPipeline
	}
	for i, s := range c.Steps {
		switch strings.ToLower(s.Op) {
		case OpGrayscale, OpBrightness:
		default:
			return errors.Wrapf(ErrUnknownOp, "step %d: %q", i, s.Op)
		}
	}
	return nil
}

// LoadConfig loads a pipeline configuration from a .yaml, .yml or .json file.
//
// Arguments:
// - filename: The config file path.
//
// Returns:
// - *Config: The validated configuration.
// - error: An error if the file cannot be read, parsed, or validated.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config file")
	}

	var config Config
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &config)
	case ".json":
		err = json.Unmarshal(data, &config)
	default:
		return nil, errors.Wrapf(ErrUnsupportedConfig, "%s", filename)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	if err := config.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid config %s", filename)
	}
	return &config, nil
}

// SaveConfig writes the configuration as YAML or JSON, by extension.
func (c *Config) SaveConfig(filename string) error {
	var (
		data []byte
		err  error
	)
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(c)
	case ".json":
		data, err = json.MarshalIndent(c, "", "  ")
	default:
		return errors.Wrapf(ErrUnsupportedConfig, "%s", filename)
	}
	if err != nil {
		return errors.Wrap(err, "failed to marshal config")
	}

	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return errors.Wrap(err, "failed to write config file")
	}
	return nil
}
