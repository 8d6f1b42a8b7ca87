// Copyright 2025 hwyblas Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config loads the runtime settings of the library.
//
// Settings come from, in increasing precedence: built-in defaults, a YAML
// file named by HWYBLAS_CONFIG, and individual environment variables:
//
//	HWYBLAS_BACKEND          backend name, e.g. "native", "cblas"
//	HWYBLAS_MAX_PARALLELISM  worker count for the native backend
//	HWYBLAS_LOG_LEVEL        zerolog level name
//	HWY_NO_SIMD              any value other than "" or "0" forces scalar kernels
//
// An example file:
//
//	backend: cblas
//	max_parallelism: 8
//	log_level: info
package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Environment variable names.
const (
	EnvConfig         = "HWYBLAS_CONFIG"
	EnvBackend        = "HWYBLAS_BACKEND"
	EnvMaxParallelism = "HWYBLAS_MAX_PARALLELISM"
	EnvLogLevel       = "HWYBLAS_LOG_LEVEL"
	EnvNoSIMD         = "HWY_NO_SIMD"
)

// MaxParallelismLimit bounds MaxParallelism.
const MaxParallelismLimit = 1024

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid configuration")

// Config holds the library settings.
type Config struct {
	// Backend names the registered backend to activate. Empty means native.
	Backend string `yaml:"backend"`
	// MaxParallelism caps the workers of the native backend. Values <= 0
	// select runtime.GOMAXPROCS(0).
	MaxParallelism int `yaml:"max_parallelism"`
	// LogLevel is a zerolog level name.
	LogLevel string `yaml:"log_level"`
	// NoSIMD forces the scalar kernels.
	NoSIMD bool `yaml:"no_simd"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		MaxParallelism: runtime.GOMAXPROCS(0),
		LogLevel:       zerolog.LevelWarnValue,
	}
}

// Load reads the YAML file named by HWYBLAS_CONFIG, if any, then applies
// environment overrides and validates the result. On error the returned
// Config is Default().
func Load() (Config, error) {
	cfg := Default()
	if path := os.Getenv(EnvConfig); path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return Default(), err
		}
	}
	if err := cfg.mergeEnv(os.LookupEnv); err != nil {
		return Default(), err
	}
	if err := cfg.normalize(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// Parse decodes YAML settings over the defaults and validates them.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := cfg.mergeYAML(data); err != nil {
		return Default(), err
	}
	if err := cfg.normalize(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := c.mergeYAML(data); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

func (c *Config) mergeYAML(data []byte) error {
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("%w: yaml unmarshal: %w", ErrInvalid, err)
	}
	return nil
}

func (c *Config) mergeEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvBackend); ok && v != "" {
		c.Backend = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvMaxParallelism); ok && v != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %w", ErrInvalid, EnvMaxParallelism, v, err)
		}
		c.MaxParallelism = n
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.LogLevel = v
	}
	if v, ok := lookup(EnvNoSIMD); ok {
		c.NoSIMD = v != "" && v != "0"
	}
	return nil
}

func (c *Config) normalize() error {
	if c.MaxParallelism <= 0 {
		c.MaxParallelism = runtime.GOMAXPROCS(0)
	}
	c.MaxParallelism = min(c.MaxParallelism, MaxParallelismLimit)
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = zerolog.LevelWarnValue
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log level: %w", ErrInvalid, err)
	}
	return nil
}

// Level returns the parsed LogLevel, or zerolog.WarnLevel if it does not
// parse.
func (c Config) Level() zerolog.Level {
	l, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || c.LogLevel == "" {
		return zerolog.WarnLevel
	}
	return l
}
