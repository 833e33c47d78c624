package translatable

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	// DefaultConfigFile is read by LoadConfig when no file is given.
	DefaultConfigFile = "translatable.toml"
	// DefaultLocalesPath is the store root used when none is configured.
	DefaultLocalesPath = "./translations"
	// EnvPrefix prefixes every environment override, e.g. TRANSLATABLE_OVERLAP.
	EnvPrefix = "TRANSLATABLE_"
)

// Config controls where translations are read from and how files are merged.
type Config struct {
	// Path is the store root directory.
	Path string
	// SeekMode orders files before merging. Default Alphabetical.
	SeekMode SeekMode
	// Overlap resolves duplicate translations. Default Ignore.
	Overlap Overlap
	// FallbackLanguage, when set, is used whenever the requested language has
	// no text at a path.
	FallbackLanguage Language
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		Path:     DefaultLocalesPath,
		SeekMode: Alphabetical,
		Overlap:  Ignore,
	}
}

// rawConfig mirrors the sources: the TOML file and the environment. Values
// stay strings until build so every source reports errors the same way.
type rawConfig struct {
	LocalesPath      string `toml:"locales_path"      env:"LOCALES_PATH"`
	SeekMode         string `toml:"seek_mode"         env:"SEEK_MODE"`
	Overlap          string `toml:"overlap"           env:"OVERLAP"`
	FallbackLanguage string `toml:"fallback_language" env:"FALLBACK_LANGUAGE"`
}

// LoadConfig builds a Config. Priority, highest first: process environment
// (TRANSLATABLE_*), a .env file in the working directory, the TOML file,
// then DefaultConfig. Missing files are not an error.
func LoadConfig(file string) (Config, error) {
	return loadConfig(file, ".env", os.Environ())
}

func loadConfig(file, dotenv string, environ []string) (Config, error) {
	if file == "" {
		file = DefaultConfigFile
	}

	var raw rawConfig
	md, err := toml.DecodeFile(file, &raw)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return Config{}, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, file, err)
	default:
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return Config{}, fmt.Errorf("%w: %s: unknown key %q", ErrInvalidConfig, file, undecoded[0].String())
		}
	}

	vars, err := environment(dotenv, environ)
	if err != nil {
		return Config{}, err
	}
	if err := env.ParseWithOptions(&raw, env.Options{
		Prefix:      EnvPrefix,
		Environment: vars,
	}); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return raw.build()
}

// environment merges the .env file under the process environment.
func environment(dotenv string, environ []string) (map[string]string, error) {
	vars := map[string]string{}
	if dotenv != "" {
		fileVars, err := godotenv.Read(dotenv)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, dotenv, err)
		default:
			for k, v := range fileVars {
				vars[k] = v
			}
		}
	}
	for _, kv := range environ {
		k, v, ok := strings.Cut(kv, "=")
		if ok {
			vars[k] = v
		}
	}
	return vars, nil
}

func (r rawConfig) build() (Config, error) {
	cfg := DefaultConfig()
	if r.LocalesPath != "" {
		cfg.Path = r.LocalesPath
	}
	if r.SeekMode != "" {
		if err := cfg.SeekMode.UnmarshalText([]byte(r.SeekMode)); err != nil {
			return Config{}, err
		}
	}
	if r.Overlap != "" {
		if err := cfg.Overlap.UnmarshalText([]byte(r.Overlap)); err != nil {
			return Config{}, err
		}
	}
	if r.FallbackLanguage != "" {
		lang, err := ParseLanguage(r.FallbackLanguage)
		if err != nil {
			return Config{}, &ConfigError{Key: "fallback_language", Value: r.FallbackLanguage}
		}
		cfg.FallbackLanguage = lang
	}
	return cfg, cfg.Validate()
}

// Validate checks values that cannot be enforced by the type system.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Path) == "" {
		return &ConfigError{Key: "locales_path", Value: c.Path}
	}
	if c.SeekMode != Alphabetical && c.SeekMode != Unalphabetical {
		return &ConfigError{Key: "seek_mode", Value: c.SeekMode.String()}
	}
	if c.Overlap != Ignore && c.Overlap != Overwrite {
		return &ConfigError{Key: "overlap", Value: c.Overlap.String()}
	}
	return nil
}
