// Package config resolves the parser's size policy. Precedence, lowest to
// highest: built-in default, ~/.ziprobe.yaml, the ZIPROBE_MAX_COMPRESSED_SIZE
// environment variable. The CLI layers its --max-size flag on top.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"

	"github.com/ziprobe/ziprobe/pkg/rawzip"
)

const (
	DefaultConfigLocation = "~/.ziprobe.yaml"
	ConfigFileEnvVar      = "ZIPROBE_CONFIG"
	MaxSizeEnvVar         = "ZIPROBE_MAX_COMPRESSED_SIZE"
)

type Config struct {
	Limits struct {
		MaxCompressedSize uint32 `yaml:"max_compressed_size"`
	} `yaml:"limits"`
}

// Load returns the effective per-entry compressed size ceiling.
func Load() (uint32, error) {
	maxSize := uint32(rawzip.DefaultMaxCompressedSize)

	fromFile, found, err := loadConfigFile()
	if err != nil {
		return 0, err
	}
	if found && fromFile.Limits.MaxCompressedSize != 0 {
		maxSize = fromFile.Limits.MaxCompressedSize
	}

	if v := os.Getenv(MaxSizeEnvVar); v != "" {
		parsed, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return 0, fmt.Errorf("invalid %s value %q: %w", MaxSizeEnvVar, v, err)
		}
		maxSize = uint32(parsed)
	}
	return maxSize, nil
}

func loadConfigFile() (*Config, bool, error) {
	location := os.Getenv(ConfigFileEnvVar)
	if location == "" {
		location = DefaultConfigLocation
	}
	location, err := homedir.Expand(location)
	if err != nil {
		return nil, false, err
	}
	data, err := os.ReadFile(location)
	if os.IsNotExist(err) {
		return nil, false, nil
	} else if err != nil {
		return nil, false, err
	}
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, false, fmt.Errorf("could not parse %s: %w", location, err)
	}
	return cfg, true, nil
}
