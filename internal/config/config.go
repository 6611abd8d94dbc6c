// Package config loads salgolc configuration from TOML file.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// EnvVar names environment variable containing configuration file path.
const EnvVar = "SALGOL_CONFIG"

// Output formats.
const (
	JSONFormat = "json"
	YAMLFormat = "yaml"
)

// Formats lists supported output formats.
var Formats = []string{JSONFormat, YAMLFormat}

type Config struct {
	Log     LogConfig     `toml:"log"`
	Grammar GrammarConfig `toml:"grammar"`
	Output  OutputConfig  `toml:"output"`
	Source  SourceConfig  `toml:"source"`
}

type LogConfig struct {
	// Verbosity is passed to commonlog.Configure, higher values log more.
	Verbosity int `toml:"verbosity"`

	// File is the log file path, stderr if empty.
	File string `toml:"file"`
}

type GrammarConfig struct {
	// File is the grammar description used instead of embedded one.
	File string `toml:"file"`
}

type OutputConfig struct {
	Format string `toml:"format"`
}

type SourceConfig struct {
	// Prelude is the file prepended to programs, embedded forward declarations are used if empty.
	Prelude string `toml:"prelude"`

	// NoPrelude disables prelude.
	NoPrelude bool `toml:"no_prelude"`
}

// Default returns configuration with default values.
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Decode parses configuration text.
func Decode(text string) (*Config, error) {
	var c Config
	md, e := toml.Decode(text, &c)
	if e != nil {
		return nil, fmt.Errorf("failed to parse config: %w", e)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("unknown config keys: %s", strings.Join(keys, ", "))
	}

	c.applyDefaults()
	if e := c.Validate(); e != nil {
		return nil, e
	}
	return &c, nil
}

// Load reads configuration file.
func Load(path string) (*Config, error) {
	content, e := os.ReadFile(os.ExpandEnv(path))
	if e != nil {
		return nil, fmt.Errorf("failed to read config: %w", e)
	}

	return Decode(string(content))
}

// LoadDefault reads configuration file given by path or EnvVar.
// Returns default configuration if neither is set.
func LoadDefault(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvVar)
	}
	if path == "" {
		return Default(), nil
	}

	return Load(path)
}

func (c *Config) applyDefaults() {
	if c.Output.Format == "" {
		c.Output.Format = JSONFormat
	}
	c.Output.Format = strings.ToLower(c.Output.Format)
}

// Validate checks configuration values.
func (c *Config) Validate() error {
	if !IsFormat(c.Output.Format) {
		return fmt.Errorf("unknown output format %q, expecting one of: %s", c.Output.Format, strings.Join(Formats, ", "))
	}
	return nil
}

// IsFormat tells whether f is a supported output format.
func IsFormat(f string) bool {
	for _, format := range Formats {
		if f == format {
			return true
		}
	}
	return false
}
