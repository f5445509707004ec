package config

import (
	"os"
	"path/filepath"

	"github.com/juju/errors"
	"gopkg.in/yaml.v3"
)

// DefaultBufferSize is the chunk size used when nothing else is configured.
const DefaultBufferSize = 64000

// DefaultFile is the config file looked up when --config is not given.
const DefaultFile = ".gosplice.yaml"

// Config holds the gosplice settings shared by all commands.
type Config struct {
	// Bytes held in memory while shifting or copying file data
	BufferSize ByteSize `yaml:"buffer_size"`

	// Copy/move behaviour when the destination already exists
	Overwrite bool `yaml:"overwrite"`
	SkipExist bool `yaml:"skip_exist"`

	// Show a progress bar for copy and move
	Progress bool `yaml:"progress"`

	LogLevel string `yaml:"log_level"` // debug, info, warn, error

	RetainTimes TimeConfig `yaml:"retain_times"`
}

// TimeConfig selects which timestamps copies inherit from their source.
type TimeConfig struct {
	Modification bool `yaml:"modification"`
	Access       bool `yaml:"access"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		BufferSize: DefaultBufferSize,
		LogLevel:   "info",
	}
}

// Load reads configuration from a YAML file on top of the defaults. A
// missing file is not an error. Environment overrides are applied last.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, errors.Annotatef(err, "reading config %s", path)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.Annotatef(err, "parsing config %s", path)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, errors.Trace(err)
	}
	return cfg, nil
}

// Save writes the configuration to a YAML file, creating its directory.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Annotate(err, "creating config directory")
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.Annotate(err, "marshaling config")
	}
	return errors.Annotatef(os.WriteFile(path, data, 0644), "writing config %s", path)
}

func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv("GOSPLICE_BUFFER_SIZE"); v != "" {
		if err := c.BufferSize.Set(v); err != nil {
			return errors.Annotate(err, "GOSPLICE_BUFFER_SIZE")
		}
	}
	if v := os.Getenv("GOSPLICE_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	return nil
}

// Validate checks settings that cannot be fixed by defaults.
func (c *Config) Validate() error {
	if c.BufferSize < 1 {
		return errors.NotValidf("buffer size %d", c.BufferSize)
	}
	return nil
}
