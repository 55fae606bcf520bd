// Package config handles loading and saving user configuration for findwords.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// FileName is the config file inside the config directory.
const FileName = "config.yaml"

// Dictionary providers.
const (
	ProviderAPI  = "api"
	ProviderFile = "file"
)

// Config holds all user configuration.
type Config struct {
	Dictionary DictionaryConfig `yaml:"dictionary"`
	Store      StoreConfig      `yaml:"store"`
	UI         UIConfig         `yaml:"ui"`
	Log        LogConfig        `yaml:"log"`
}

// DictionaryConfig selects and tunes the word validator.
type DictionaryConfig struct {
	Provider string        `yaml:"provider"` // "api" or "file"
	BaseURL  string        `yaml:"base_url"`
	Language string        `yaml:"language"`
	Timeout  time.Duration `yaml:"timeout"`
	File     string        `yaml:"file"` // offline JSONL dictionary
}

// StoreConfig locates the session database.
type StoreConfig struct {
	Path string `yaml:"path"`
}

// UIConfig holds terminal UI settings.
type UIConfig struct {
	RejectCue time.Duration `yaml:"reject_cue"`
}

// LogConfig holds debug logging settings.
type LogConfig struct {
	File string `yaml:"file"`
}

// Default returns the configuration used when no file exists. Relative
// paths are resolved against dir.
func Default(dir string) *Config {
	return &Config{
		Dictionary: DictionaryConfig{
			Provider: ProviderAPI,
			BaseURL:  "https://api.dictionaryapi.dev/api/v2/entries",
			Language: "en",
			Timeout:  10 * time.Second,
		},
		Store: StoreConfig{Path: filepath.Join(dir, "findwords.db")},
		UI:    UIConfig{RejectCue: 400 * time.Millisecond},
	}
}

// Load reads <dir>/config.yaml over the defaults. A missing file is not an
// error.
func Load(dir string) (*Config, error) {
	cfg := Default(dir)

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cfg.resolvePaths(dir)
	return cfg, nil
}

// Save writes cfg to <dir>/config.yaml.
func Save(dir string, cfg *Config) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(filepath.Join(dir, FileName), out, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// Validate checks values that would otherwise fail much later.
func (c *Config) Validate() error {
	switch c.Dictionary.Provider {
	case ProviderAPI, ProviderFile:
	default:
		return fmt.Errorf("unknown dictionary provider %q", c.Dictionary.Provider)
	}
	if c.Dictionary.Provider == ProviderFile && c.Dictionary.File == "" {
		return errors.New("dictionary provider \"file\" needs dictionary.file")
	}
	if c.Dictionary.Timeout < 0 || c.UI.RejectCue < 0 {
		return errors.New("durations must not be negative")
	}
	return nil
}

func (c *Config) resolvePaths(dir string) {
	for _, p := range []*string{&c.Store.Path, &c.Dictionary.File, &c.Log.File} {
		if *p != "" && !filepath.IsAbs(*p) {
			*p = filepath.Join(dir, *p)
		}
	}
}

// ApplyOverrides copies any keys set in v (flags or FINDWORDS_* environment
// variables) over cfg.
func ApplyOverrides(cfg *Config, v *viper.Viper) error {
	strs := map[string]*string{
		"dictionary.provider": &cfg.Dictionary.Provider,
		"dictionary.base_url": &cfg.Dictionary.BaseURL,
		"dictionary.language": &cfg.Dictionary.Language,
		"dictionary.file":     &cfg.Dictionary.File,
		"store.path":          &cfg.Store.Path,
		"log.file":            &cfg.Log.File,
	}
	for key, dst := range strs {
		if v.IsSet(key) {
			*dst = v.GetString(key)
		}
	}

	durs := map[string]*time.Duration{
		"dictionary.timeout": &cfg.Dictionary.Timeout,
		"ui.reject_cue":      &cfg.UI.RejectCue,
	}
	for key, dst := range durs {
		if v.IsSet(key) {
			*dst = v.GetDuration(key)
		}
	}

	return cfg.Validate()
}

// Template is the commented config written by `findwords init`.
const Template = `# findwords configuration

dictionary:
  # "api" queries an online dictionary, "file" reads an offline JSONL file.
  provider: api
  base_url: https://api.dictionaryapi.dev/api/v2/entries
  language: en
  timeout: 10s
  # One JSON entry per line. Also used for "did you mean" suggestions.
  # file: dictionary.jsonl

store:
  # Relative paths are resolved against this directory. Leave empty to
  # keep the session in memory only.
  path: findwords.db

ui:
  # How long a rejected word stays highlighted.
  reject_cue: 400ms

log:
  # file: debug.log
`

// GetConfigDir returns the default configuration directory.
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "findwords"), nil
}

// EnsureConfigDir creates dir if it doesn't exist.
func EnsureConfigDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}
