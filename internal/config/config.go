// Package config loads ufind settings from ufind.yaml, a dotenv file and the
// process environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/budymann/OODesign/pkg/ufind"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Environment variables read by ApplyEnv.
const (
	EnvTree     = ufind.EnvPrefix + "TREE"
	EnvSource   = ufind.EnvPrefix + "SOURCE"
	EnvOperator = ufind.EnvPrefix + "OPERATOR"
	EnvColor    = ufind.EnvPrefix + "COLOR"
	EnvVerbose  = ufind.EnvPrefix + "VERBOSE"
)

// Config holds the settings shared by all commands.
type Config struct {
	// Tree is a YAML tree document to search.
	Tree string `yaml:"tree,omitempty"`
	// Source is a real directory to snapshot and search.
	Source string `yaml:"source,omitempty"`
	// Operator is the default filter operator for find: and | or.
	Operator string `yaml:"operator,omitempty"`
	// Color selects styled output: auto | always | never.
	Color   string `yaml:"color,omitempty"`
	Verbose bool   `yaml:"verbose,omitempty"`
}

// Default returns the settings used when nothing is configured.
func Default() *Config {
	return &Config{
		Operator: "and",
		Color:    ColorAuto,
	}
}

// Load reads ufind.yaml from dir on top of the defaults. Relative tree and
// source paths are resolved against dir.
func Load(dir string) (*Config, error) {
	configPath := filepath.Join(dir, ufind.ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, fmt.Errorf("%w: %v", ufind.ErrInvalidConfig, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ufind.ErrInvalidConfig, configPath, err)
	}

	cfg.Tree = resolveAgainst(dir, cfg.Tree)
	cfg.Source = resolveAgainst(dir, cfg.Source)
	return cfg, nil
}

func resolveAgainst(dir, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}

// ApplyEnv overlays UFIND_* variables. Values come first from envFile (if it
// exists; "" skips the file) and then from the process environment, which
// wins. Empty values leave the setting untouched. Setting a tree clears a
// source from a lower layer and vice versa.
func (c *Config) ApplyEnv(envFile string) error {
	if envFile != "" {
		fileValues, err := godotenv.Read(envFile)
		switch {
		case err == nil:
			if err := c.applyValues(fileValues); err != nil {
				return fmt.Errorf("%s: %w", envFile, err)
			}
		case errors.Is(err, os.ErrNotExist):
		default:
			return fmt.Errorf("%w: failed to read %s: %v", ufind.ErrInvalidConfig, envFile, err)
		}
	}

	processValues := map[string]string{}
	for _, key := range []string{EnvTree, EnvSource, EnvOperator, EnvColor, EnvVerbose} {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			processValues[key] = v
		}
	}
	return c.applyValues(processValues)
}

func (c *Config) applyValues(values map[string]string) error {
	treePath, sourcePath := values[EnvTree], values[EnvSource]
	switch {
	case treePath != "" && sourcePath != "":
		// Left for Validate to reject.
		c.Tree, c.Source = treePath, sourcePath
	case treePath != "":
		c.Tree, c.Source = treePath, ""
	case sourcePath != "":
		c.Tree, c.Source = "", sourcePath
	}

	if v := values[EnvOperator]; v != "" {
		c.Operator = v
	}
	if v := values[EnvColor]; v != "" {
		c.Color = v
	}

	if v := values[EnvVerbose]; v != "" {
		verbose, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a boolean", ufind.ErrInvalidConfig, EnvVerbose, v)
		}
		c.Verbose = verbose
	}
	return nil
}

// Validate checks values that cannot be checked by the YAML decoder.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Operator) {
	case "and", "or":
	default:
		return fmt.Errorf("%w: operator %q (want and|or)", ufind.ErrInvalidConfig, c.Operator)
	}

	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("%w: color %q (want auto|always|never)", ufind.ErrInvalidConfig, c.Color)
	}

	if c.Tree != "" && c.Source != "" {
		return fmt.Errorf("%w: tree and source are mutually exclusive", ufind.ErrInvalidConfig)
	}
	return nil
}
