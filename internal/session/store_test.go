package session

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/f3rmion/findwords/internal/letters"
	"github.com/f3rmion/findwords/internal/store"
)

func mustRack(t *testing.T, s string) letters.Rack {
	t.Helper()
	var r letters.Rack
	for _, c := range s {
		r = append(r, letters.Letter(c))
	}
	require.NoError(t, letters.Validate(r))
	return r
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	kv, err := store.OpenSQLite(filepath.Join(t.TempDir(), "s.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = kv.Close() })

	st := State{
		Rack:  mustRack(t, "CATXZBQ"),
		Found: FoundWords{"CAT", "AT"},
		Count: 2,
		Mode:  ModeChoose,
	}
	require.NoError(t, NewStore(kv).Persist(ctx, st))

	// A fresh Store has no in-memory state of its own.
	got, err := NewStore(kv).Load(ctx)
	require.NoError(t, err)
	require.Equal(t, st, got)
}

func TestHasResumableAndClear(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	kv := store.NewMemory()
	s := NewStore(kv)

	ok, err := s.HasResumable(ctx)
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, s.Persist(ctx, New(mustRack(t, "CATXZBQ"), ModeRandom)))
	ok, err = s.HasResumable(ctx)
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, s.Clear(ctx))
	require.Equal(t, 0, kv.Len())
	ok, err = s.HasResumable(ctx)
	require.NoError(t, err)
	require.False(t, ok)

	_, err = s.Load(ctx)
	require.ErrorIs(t, err, ErrNoSession)
}

func TestLoadRecoversCorruptFields(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	kv := store.NewMemory()
	require.NoError(t, kv.Set(ctx, KeyRack, `["C","A","T","X","Z","B","Q"]`))
	require.NoError(t, kv.Set(ctx, KeyWords, `{not json`))
	require.NoError(t, kv.Set(ctx, KeyCount, `many`))
	require.NoError(t, kv.Set(ctx, KeyMode, `sideways`))

	st, err := NewStore(kv).Load(ctx)
	require.NoError(t, err)
	require.Equal(t, "CATXZBQ", st.Rack.String())
	require.Equal(t, FoundWords{}, st.Found)
	require.Equal(t, 0, st.Count)
	require.Equal(t, ModeRandom, st.Mode)
}

func TestLoadMissingOptionalFields(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	kv := store.NewMemory()
	require.NoError(t, kv.Set(ctx, KeyRack, `["C","A","T","X","Z","B","Q"]`))

	st, err := NewStore(kv).Load(ctx)
	require.NoError(t, err)
	require.Empty(t, st.Found)
	require.Zero(t, st.Count)
}

func TestLoadRejectsBadRack(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	for name, raw := range map[string]string{
		"not json":    `CATXZBQ`,
		"no vowel":    `["B","C","D","F","G","H","J"]`,
		"too short":   `["C","A"]`,
		"bad letters": `["C","A","T","X","Z","B","??"]`,
	} {
		kv := store.NewMemory()
		require.NoError(t, kv.Set(ctx, KeyRack, raw))
		_, err := NewStore(kv).Load(ctx)
		require.ErrorIs(t, err, ErrNoSession, name)
	}
}

func TestPersistFoundEncoding(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	kv := store.NewMemory()
	require.NoError(t, NewStore(kv).PersistFound(ctx, nil, 0))

	v, err := kv.Get(ctx, KeyWords)
	require.NoError(t, err)
	require.Equal(t, "[]", v)
	v, err = kv.Get(ctx, KeyCount)
	require.NoError(t, err)
	require.Equal(t, "0", v)
}

func TestFoundWords(t *testing.T) {
	t.Parallel()

	var f FoundWords
	require.True(t, f.Add("CAT"))
	require.False(t, f.Add("CAT"))
	require.True(t, f.Add("TAX"))
	require.Equal(t, FoundWords{"CAT", "TAX"}, f)
	require.True(t, f.Contains("TAX"))
	require.False(t, f.Contains("cat"))
}
