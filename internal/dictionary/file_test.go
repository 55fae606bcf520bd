package dictionary

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeJSONL(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.jsonl")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0644))
	return path
}

func TestFileLookup(t *testing.T) {
	t.Parallel()

	path := writeJSONL(t,
		`{"word":"cat","meanings":[{"partOfSpeech":"noun","definitions":[{"definition":"A feline."}]}]}`,
		`not json at all`,
		``,
		`{"word":"Cat","meanings":[{"partOfSpeech":"verb","definitions":[{"definition":"To vomit."}]}]}`,
		`{"word":"act","meanings":[]}`,
	)

	d := NewFile()
	require.NoError(t, d.LoadFromFile(path))
	require.Equal(t, 2, d.Size())

	res, err := d.Lookup(context.Background(), "cAt")
	require.NoError(t, err)
	require.Len(t, res, 2)
	require.Equal(t, "A feline.", res.First())

	_, err = d.Lookup(context.Background(), "dog")
	require.ErrorIs(t, err, ErrNotFound)

	require.Error(t, NewFile().LoadFromFile(filepath.Join(t.TempDir(), "missing.jsonl")))
}

func TestSuggest(t *testing.T) {
	t.Parallel()

	d := NewFile()
	for _, w := range []string{"cat", "cart", "coat", "act", "zebra"} {
		d.Add(Entry{Word: w})
	}

	require.Equal(t, []string{"CART", "COAT"}, d.Suggest("cat", 5, 1))
	require.Equal(t, []string{"CART"}, d.Suggest("cat", 1, 1))
	require.Equal(t, []string{"ACT", "CART", "COAT"}, d.Suggest("cat", 5, 2))
	require.Empty(t, d.Suggest("qqqqqqq", 5, 1))
}

func TestLookupFunc(t *testing.T) {
	t.Parallel()

	var got string
	l := LookupFunc(func(_ context.Context, w string) (Result, error) {
		got = w
		return Result{{Word: w}}, nil
	})
	res, err := l.Lookup(context.Background(), "CAT")
	require.NoError(t, err)
	require.Equal(t, "CAT", got)
	require.Len(t, res, 1)
}
