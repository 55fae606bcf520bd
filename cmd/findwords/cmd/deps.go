package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/viper"

	"github.com/f3rmion/findwords/internal/config"
	"github.com/f3rmion/findwords/internal/dictionary"
	"github.com/f3rmion/findwords/internal/session"
	"github.com/f3rmion/findwords/internal/store"
)

// loadConfig reads the config file and applies flag and environment
// overrides.
func loadConfig() (*config.Config, error) {
	dir := getConfigDir()
	cfg, err := config.Load(dir)
	if err != nil {
		return nil, err
	}
	if err := config.ApplyOverrides(cfg, viper.GetViper()); err != nil {
		return nil, fmt.Errorf("applying overrides: %w", err)
	}
	return cfg, nil
}

// openSessionStore opens the sqlite-backed session store. An empty store
// path keeps the session in memory for this run only.
func openSessionStore(cfg *config.Config) (*session.Store, io.Closer, error) {
	if cfg.Store.Path == "" {
		return session.NewStore(store.NewMemory()), io.NopCloser(nil), nil
	}
	db, err := store.OpenSQLite(cfg.Store.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening session store: %w", err)
	}
	return session.NewStore(db), db, nil
}

// openDictionary builds the configured validator. The offline file, when
// configured, is also returned for suggestions.
func openDictionary(cfg *config.Config) (dictionary.Lookuper, *dictionary.File, error) {
	var file *dictionary.File
	if cfg.Dictionary.File != "" {
		file = dictionary.NewFile()
		if err := file.LoadFromFile(cfg.Dictionary.File); err != nil {
			if cfg.Dictionary.Provider == config.ProviderFile {
				return nil, nil, err
			}
			fmt.Fprintf(os.Stderr, "Warning: Could not load dictionary file: %v\n", err)
			file = nil
		}
	}

	if cfg.Dictionary.Provider == config.ProviderFile {
		return file, file, nil
	}

	client := dictionary.NewClient(
		dictionary.WithBaseURL(cfg.Dictionary.BaseURL),
		dictionary.WithLanguage(cfg.Dictionary.Language),
		dictionary.WithTimeout(cfg.Dictionary.Timeout),
	)
	return client, file, nil
}

// setupTUILogging sends the standard logger to a file while the TUI owns the
// terminal, or discards it when no log file is configured.
func setupTUILogging(cfg *config.Config) (func(), error) {
	path := cfg.Log.File
	if path == "" && viper.GetBool("verbose") {
		path = filepath.Join(getConfigDir(), "debug.log")
	}
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("creating log dir: %w", err)
	}
	f, err := tea.LogToFile(path, "findwords")
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	return func() { f.Close() }, nil
}

// loadSession reads the stored session for the read-only commands.
func loadSession(ctx context.Context, st *session.Store) (session.State, error) {
	state, err := st.Load(ctx)
	if errors.Is(err, session.ErrNoSession) {
		return session.State{}, fmt.Errorf("%w; run 'findwords play' to start one", err)
	}
	return state, err
}
