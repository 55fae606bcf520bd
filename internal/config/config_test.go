package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(dir)
	require.NoError(t, err)
	require.Equal(t, Default(dir), cfg)
	require.Equal(t, filepath.Join(dir, "findwords.db"), cfg.Store.Path)
	require.Equal(t, 400*time.Millisecond, cfg.UI.RejectCue)
}

func TestLoadTemplate(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(Template), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	require.Equal(t, ProviderAPI, cfg.Dictionary.Provider)
	require.Equal(t, 10*time.Second, cfg.Dictionary.Timeout)
	require.Equal(t, filepath.Join(dir, "findwords.db"), cfg.Store.Path)
	require.Empty(t, cfg.Log.File)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	body := "dictionary:\n  provider: file\n  file: words.jsonl\nui:\n  reject_cue: 1s\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(body), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	require.Equal(t, ProviderFile, cfg.Dictionary.Provider)
	require.Equal(t, filepath.Join(dir, "words.jsonl"), cfg.Dictionary.File)
	require.Equal(t, "en", cfg.Dictionary.Language)
	require.Equal(t, time.Second, cfg.UI.RejectCue)
}

func TestLoadErrors(t *testing.T) {
	cases := map[string]string{
		"malformed":         "dictionary: [",
		"unknown provider":  "dictionary:\n  provider: carrier-pigeon\n",
		"file without path": "dictionary:\n  provider: file\n",
		"negative cue":      "ui:\n  reject_cue: -1s\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(body), 0644))
			_, err := Load(dir)
			require.Error(t, err)
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	cfg := Default(dir)
	cfg.Dictionary.Language = "es"
	cfg.Log.File = filepath.Join(dir, "debug.log")

	require.NoError(t, Save(dir, cfg))
	got, err := Load(dir)
	require.NoError(t, err)
	require.Equal(t, cfg, got)
}

func TestApplyOverrides(t *testing.T) {
	t.Setenv("FINDWORDS_DICTIONARY_LANGUAGE", "fr")
	t.Setenv("FINDWORDS_UI_REJECT_CUE", "250ms")

	v := viper.New()
	v.SetEnvPrefix("FINDWORDS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.Set("store.path", "/tmp/other.db")

	cfg := Default("/cfg")
	require.NoError(t, ApplyOverrides(cfg, v))
	require.Equal(t, "fr", cfg.Dictionary.Language)
	require.Equal(t, 250*time.Millisecond, cfg.UI.RejectCue)
	require.Equal(t, "/tmp/other.db", cfg.Store.Path)
	require.Equal(t, ProviderAPI, cfg.Dictionary.Provider)

	v.Set("dictionary.provider", "smoke-signals")
	require.Error(t, ApplyOverrides(cfg, v))
}
