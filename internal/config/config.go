// Package config loads the application definitions that hotkeys refer to.
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// FileName is the base name of the default configuration file.
const FileName = "niri-app-hotkey"

// Format is a configuration file syntax.
type Format string

const (
	FormatYAML  Format = "yaml"
	FormatTOML  Format = "toml"
	FormatJSONC Format = "jsonc"
	FormatKDL   Format = "kdl"
)

// Document is the configuration file as written by the user.
type Document struct {
	Applications []ApplicationConfig `yaml:"applications" toml:"applications" json:"applications"`
}

// ApplicationConfig describes one application. Exactly one of Spawn and
// SpawnSh must be given.
type ApplicationConfig struct {
	Name     string       `yaml:"name"               toml:"name"               json:"name"`
	Spawn    []string     `yaml:"spawn,omitempty"    toml:"spawn,omitempty"    json:"spawn,omitempty"`
	SpawnSh  *string      `yaml:"spawn-sh,omitempty" toml:"spawn-sh,omitempty" json:"spawn-sh,omitempty"`
	Matches  []RuleConfig `yaml:"matches,omitempty"  toml:"matches,omitempty"  json:"matches,omitempty"`
	Excludes []RuleConfig `yaml:"excludes,omitempty" toml:"excludes,omitempty" json:"excludes,omitempty"`
}

// RuleConfig is an uncompiled match rule. Patterns are regular expressions.
type RuleConfig struct {
	AppID *string `yaml:"app-id,omitempty" toml:"app-id,omitempty" json:"app-id,omitempty"`
	Title *string `yaml:"title,omitempty"  toml:"title,omitempty"  json:"title,omitempty"`
	Index *int    `yaml:"index,omitempty"  toml:"index,omitempty"  json:"index,omitempty"`
}

// FormatFromPath picks the decoder from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".json", ".jsonc":
		return FormatJSONC, nil
	case ".kdl":
		return FormatKDL, nil
	default:
		return "", fmt.Errorf("unsupported config extension %q (use .yaml, .yml, .kdl, .toml, .json or .jsonc)", filepath.Ext(path))
	}
}

// Parse decodes data. Unknown keys are rejected so typos surface early.
func Parse(data []byte, format Format) (*Document, error) {
	var doc Document
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode toml: %w", err)
		}
	case FormatJSONC:
		dec := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
	case FormatKDL:
		kdoc, err := parseKDL(data)
		if err != nil {
			return nil, fmt.Errorf("decode kdl: %w", err)
		}
		doc = *kdoc
	default:
		return nil, fmt.Errorf("unsupported config format %q", format)
	}
	return &doc, nil
}

// Load reads, validates and compiles the configuration at path.
func Load(path string) (*Config, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	doc, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cfg, err := doc.Compile()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cfg.Path = path
	return cfg, nil
}

// DefaultPath returns $XDG_CONFIG_HOME/niri/niri-app-hotkey.yaml, or the
// first existing .yml, .kdl, .toml, .jsonc or .json sibling when the yaml
// file is absent.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("could not determine default config path, please provide one via --config: %w", err)
	}
	base := filepath.Join(dir, "niri", FileName)
	primary := base + ".yaml"
	for _, candidate := range []string{primary, base + ".yml", base + ".kdl", base + ".toml", base + ".jsonc", base + ".json"} {
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}
	return primary, nil
}
