// Package config loads the optional YAML configuration file of the command line tools
package config

import (
	"fmt"
	"unicode/utf8"

	"github.com/go-sif/sifprep/datasource/parser/dsv"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Config is the complete configuration of a pipeline invocation
type Config struct {
	Log    LogConfig    `yaml:"log"`
	Input  InputConfig  `yaml:"input"`
	Output OutputConfig `yaml:"output"`
}

// LogConfig configures logging
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // console, json
}

// InputConfig configures the parsing of input files
type InputConfig struct {
	Delimiter string `yaml:"delimiter"` // a single character
	Comment   string `yaml:"comment"`   // a single character, or empty for none
}

// OutputConfig configures where outputs are written
type OutputConfig struct {
	Dir string `yaml:"dir"` // empty means beside the input file
}

// Default returns the configuration used when no file is supplied
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
		Input: InputConfig{
			Delimiter: ",",
		},
	}
}

// Load reads a YAML file from fs over the defaults. Keys absent from the file keep their default values.
func Load(fs afero.Fs, path string) (*Config, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("Unable to parse config file %s: %w", path, err)
	}
	if _, err := cfg.ParserConf(); err != nil {
		return nil, fmt.Errorf("Invalid config file %s: %w", path, err)
	}
	return cfg, nil
}

// ParserConf converts the input configuration into a DSV ParserConf
func (c *Config) ParserConf() (*dsv.ParserConf, error) {
	delimiter, err := singleRune("input.delimiter", c.Input.Delimiter)
	if err != nil {
		return nil, err
	}
	comment, err := singleRune("input.comment", c.Input.Comment)
	if err != nil {
		return nil, err
	}
	if delimiter != 0 && delimiter == comment {
		return nil, fmt.Errorf("input.comment cannot be equal to input.delimiter")
	}
	return &dsv.ParserConf{Delimiter: delimiter, Comment: comment}, nil
}

func singleRune(key string, value string) (rune, error) {
	if value == "" {
		return 0, nil
	}
	r, size := utf8.DecodeRuneInString(value)
	if r == utf8.RuneError || size != len(value) {
		return 0, fmt.Errorf("%s must be a single character, got %q", key, value)
	}
	return r, nil
}
