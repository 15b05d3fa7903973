package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix        = "APP_"
	defaultConfigDir = "configs"
)

// Option configures Load.
type Option func(*loadOptions)

type loadOptions struct {
	configDir string
}

// WithConfigDir sets where base.yaml and the profile files live. The
// default is "configs" under the working directory.
func WithConfigDir(dir string) Option {
	return func(o *loadOptions) { o.configDir = dir }
}

// Load resolves the configuration of profile from, in rising precedence,
// the built-in defaults, base.yaml, <profile>.yaml and APP_* environment
// variables, then validates it.
//
// Environment names map onto known keys first, so APP_SERVER_READ_TIMEOUT
// sets server.read_timeout rather than server.read.timeout.
func Load(profile string, opts ...Option) (*Config, error) {
	if err := validateProfile(profile); err != nil {
		return nil, err
	}
	o := loadOptions{configDir: defaultConfigDir}
	for _, opt := range opts {
		opt(&o)
	}

	k := koanf.New(".")
	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}
	for _, name := range []string{"base", profile} {
		path := filepath.Join(o.configDir, name+".yaml")
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading %s: %w", path, err)
		}
	}
	if err := k.Load(envProvider(k.Keys()), nil); err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// envProvider reads APP_* variables. Names matching a known key, once
// upper-cased with dots as underscores, take that key; others split on
// every underscore.
func envProvider(knownKeys []string) *env.Env {
	byEnvName := make(map[string]string, len(knownKeys))
	for _, key := range knownKeys {
		byEnvName[envPrefix+strings.ToUpper(strings.ReplaceAll(key, ".", "_"))] = key
	}

	return env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(name, value string) (string, any) {
			if key, ok := byEnvName[name]; ok {
				return key, value
			}
			rest := strings.ToLower(strings.TrimPrefix(name, envPrefix))
			return strings.ReplaceAll(rest, "_", "."), value
		},
	})
}

// validateProfile keeps the profile a plain file stem inside the config
// directory.
func validateProfile(profile string) error {
	switch {
	case strings.TrimSpace(profile) == "":
		return errors.New("profile must not be empty")
	case strings.ContainsAny(profile, `/\`), strings.Contains(profile, ".."):
		return fmt.Errorf("profile %q must be a bare name", profile)
	}
	return nil
}
