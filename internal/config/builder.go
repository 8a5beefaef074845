package config

import (
	"errors"
	"fmt"
	"os"

	"dario.cat/mergo"
	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

type builder struct {
	configs []*Config
	err     error
}

func newBuilder() *builder {
	return &builder{configs: make([]*Config, 0, 4)}
}

func (b *builder) build() (*Config, error) {
	if b.err != nil {
		return nil, fmt.Errorf("building config: %w", b.err)
	}

	cfg := new(Config)
	for _, src := range b.configs {
		if err := mergo.Merge(cfg, src, mergo.WithOverride, mergo.WithoutDereference); err != nil {
			return nil, fmt.Errorf("merging config: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (b *builder) withDefaults() *builder {
	cfg, err := Default()
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	return b.with(cfg)
}

func (b *builder) withFile(path string) *builder {
	if path == "" {
		return b
	}
	cfg, err := parseFile(path)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	return b.with(cfg)
}

func (b *builder) withEnv() *builder {
	cfg, err := parseEnv()
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	return b.with(cfg)
}

func (b *builder) with(cfg *Config) *builder {
	if cfg != nil {
		b.configs = append(b.configs, cfg)
	}
	return b
}

// parseFile reads a YAML config file.
func parseFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return &cfg, nil
}

// parseEnv reads CT_-prefixed environment variables.
func parseEnv() (*Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	return &cfg, nil
}
