// Package config loads MenuForge settings from a TOML file.
//
// The file lives at <user config dir>/menuforge/config.toml. A missing file
// yields the defaults; unknown keys are ignored so older binaries tolerate
// newer config files.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/menuforge/menuforge/pkg/errors"
)

// Config holds user-level settings.
type Config struct {
	// OutputDir is where export artifacts are written. Defaults to the
	// current directory.
	OutputDir string `toml:"output_dir"`

	// CurrencyFlag controls whether prices carry the flag glyph prefix.
	CurrencyFlag bool `toml:"currency_flag"`

	// Font is the preferred font family for bitmap exports. Empty means
	// the renderer's own candidate list.
	Font string `toml:"font"`

	// Store selects the project storage backend.
	Store StoreConfig `toml:"store"`
}

// StoreConfig selects and configures the project store backend.
type StoreConfig struct {
	// Backend is one of "file", "memory", "redis", "mongo".
	Backend string `toml:"backend"`

	// Dir is the file backend's directory. Defaults to
	// <user config dir>/menuforge/projects.
	Dir string `toml:"dir"`

	// RedisAddr is the redis backend's host:port.
	RedisAddr string `toml:"redis_addr"`

	// MongoURI is the mongo backend's connection string.
	MongoURI string `toml:"mongo_uri"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		OutputDir:    ".",
		CurrencyFlag: true,
		Store: StoreConfig{
			Backend:   "file",
			Dir:       filepath.Join(Dir(), "projects"),
			RedisAddr: "localhost:6379",
			MongoURI:  "mongodb://localhost:27017",
		},
	}
}

// Dir returns the MenuForge config directory.
func Dir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		base = "."
	}
	return filepath.Join(base, "menuforge")
}

// Path returns the config file location.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// Load reads the config file at path, layering it over the defaults.
// A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidPath, err, "read config %s", path)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), errors.Wrap(errors.ErrCodeInvalidInput, err, "parse config %s", path)
	}
	return cfg, nil
}

// LoadDefault reads the config from the standard location.
func LoadDefault() (Config, error) {
	return Load(Path())
}

// Save writes the config as TOML, creating the directory if needed.
func Save(cfg Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "create config dir")
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "create config %s", path)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return errors.Wrap(errors.ErrCodeEncodeFailed, err, "encode config")
	}
	return nil
}
