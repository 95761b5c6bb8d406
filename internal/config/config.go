// Copyright 2026 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config loads the frdict build configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/ianlewis/go-frdict/dictdata"
	"github.com/ianlewis/go-frdict/internal/logging"
)

// DefaultOutput is the default artifact file name.
const DefaultOutput = "fren_dict.data"

// Config is the build configuration. Only the input and output paths can be
// set from the environment.
type Config struct {
	// Lexicon is the path to the .mlex lexicon.
	Lexicon string `yaml:"lexicon" env:"FRDICT_LEXICON"`

	// Container is the path to the Body.data container.
	Container string `yaml:"container" env:"FRDICT_CONTAINER"`

	// Output is the path of the artifact to write.
	Output string `yaml:"output" env:"FRDICT_OUTPUT" env-default:"fren_dict.data"`

	// Format is the artifact compression format, "gzip" or "dictzip".
	Format string `yaml:"format" env-default:"gzip"`

	// Parallel reads the lexicon and the container concurrently.
	Parallel bool `yaml:"parallel"`

	// Checksum writes a BLAKE3 sidecar file next to the artifact.
	Checksum bool `yaml:"checksum"`

	Log LogConfig `yaml:"log"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env-default:"info"`
	Format string `yaml:"format" env-default:"text"`
}

// DefaultPath returns the path of the user's config file. The file may not
// exist.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("config: %w", err)
	}
	return filepath.Join(dir, "frdict", "config.yaml"), nil
}

// Load reads the configuration from the YAML file at path and the
// environment. Environment values override file values. If path is empty the
// file at [DefaultPath] is used when it exists, otherwise only the
// environment and defaults are read.
func Load(path string) (*Config, error) {
	var cfg Config

	if path == "" {
		if p, err := DefaultPath(); err == nil {
			if _, err := os.Stat(p); err == nil {
				path = p
			} else if !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("config: file %s: %w", p, err)
			}
		}
	}

	if path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

// Validate checks that the enumerated settings have known values.
func (c *Config) Validate() error {
	if _, err := dictdata.ParseFormat(c.Format); err != nil {
		return err
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return err
	}
	if _, err := logging.ParseFormat(c.Log.Format); err != nil {
		return err
	}
	return nil
}
