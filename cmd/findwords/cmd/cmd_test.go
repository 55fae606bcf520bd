package cmd

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/f3rmion/findwords/internal/anki"
	"github.com/f3rmion/findwords/internal/config"
	"github.com/f3rmion/findwords/internal/letters"
	"github.com/f3rmion/findwords/internal/session"
	"github.com/f3rmion/findwords/internal/store"
)

func run(t *testing.T, args ...string) error {
	t.Helper()
	rootCmd.SetArgs(args)
	t.Cleanup(func() { rootCmd.SetArgs(nil) })
	return rootCmd.Execute()
}

func TestInitWritesTemplate(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, run(t, "--config", dir, "init"))
	data, err := os.ReadFile(filepath.Join(dir, config.FileName))
	require.NoError(t, err)
	require.Equal(t, config.Template, string(data))

	require.Error(t, run(t, "--config", dir, "init"), "refuses to overwrite")
	require.NoError(t, run(t, "--config", dir, "init", "--force"))
}

func TestStatusAndReset(t *testing.T) {
	dir := t.TempDir()

	require.Error(t, run(t, "--config", dir, "status"), "no saved game yet")

	db, err := store.OpenSQLite(filepath.Join(dir, "findwords.db"))
	require.NoError(t, err)
	rack, err := letters.FromStrings([]string{"C", "A", "T", "E", "R", "S", "P"})
	require.NoError(t, err)
	st := session.New(rack, session.ModeRandom)
	st.Found.Add("CAT")
	st.Count = 1
	require.NoError(t, session.NewStore(db).Persist(context.Background(), st))
	require.NoError(t, db.Close())

	require.NoError(t, run(t, "--config", dir, "status"))
	require.NoError(t, run(t, "--config", dir, "reset"))
	require.Error(t, run(t, "--config", dir, "status"))
}

func TestLookupOffline(t *testing.T) {
	dir := t.TempDir()
	dict := filepath.Join(dir, "words.jsonl")
	require.NoError(t, os.WriteFile(dict, []byte(
		`{"word":"cat","meanings":[{"partOfSpeech":"noun","definitions":[{"definition":"A feline."}]}]}`+"\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.FileName), []byte(
		"dictionary:\n  provider: file\n  file: words.jsonl\n"), 0644))

	require.NoError(t, run(t, "--config", dir, "lookup", "cat"))
	require.NoError(t, run(t, "--config", dir, "lookup", "cart"))
}

func TestExportOffline(t *testing.T) {
	dir := t.TempDir()
	dict := filepath.Join(dir, "words.jsonl")
	require.NoError(t, os.WriteFile(dict, []byte(
		`{"word":"cat","meanings":[{"partOfSpeech":"noun","definitions":[{"definition":"A feline."}]}]}`+"\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.FileName), []byte(
		"dictionary:\n  provider: file\n  file: words.jsonl\n"), 0644))

	db, err := store.OpenSQLite(filepath.Join(dir, "findwords.db"))
	require.NoError(t, err)
	rack, err := letters.FromStrings([]string{"C", "A", "T", "E", "R", "S", "P"})
	require.NoError(t, err)
	st := session.New(rack, session.ModeRandom)
	st.Found.Add("CAT")
	st.Found.Add("RAT")
	st.Count = 2
	require.NoError(t, session.NewStore(db).Persist(context.Background(), st))
	require.NoError(t, db.Close())

	out := filepath.Join(dir, "words.apkg")
	require.NoError(t, run(t, "--config", dir, "export", out))

	pkg, err := anki.OpenPackage(out)
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"CAT", "RAT"}, pkg.Words())
	def, ok := pkg.Definition("CAT")
	require.True(t, ok)
	require.Contains(t, def, "A feline.")

	missing := anki.Entry{Word: "PEST"}
	require.ErrorContains(t, verifyDeck(pkg, []anki.Entry{{Word: "CAT", Definition: def}, {Word: "RAT"}, missing}),
		"deck holds 2 words, want 3")
}
