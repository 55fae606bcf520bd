package letters

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

func rackOf(s string) Rack {
	var r Rack
	for _, c := range s {
		r = append(r, Letter(c))
	}
	return r
}

func TestGenerateRandomInvariants(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 2000; i++ {
		rack := GenerateRandom(rng)
		require.NoError(t, Validate(rack), "rack %s", rack)
		for _, l := range rack {
			require.NotEqual(t, Letter('Ñ'), l, "random racks draw from A-Z only")
		}
	}
}

func TestGenerateRandomShuffles(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(7, 7))
	firstIsVowel := 0
	const runs = 500
	for i := 0; i < runs; i++ {
		if GenerateRandom(rng)[0].IsVowel() {
			firstIsVowel++
		}
	}
	require.Less(t, firstIsVowel, runs, "the seeded vowel must not always stay first")
}

func TestRackQueries(t *testing.T) {
	t.Parallel()

	r := rackOf("CATXZBQ")
	require.True(t, r.Contains('A'))
	require.False(t, r.Contains('E'))
	require.Equal(t, 1, r.VowelCount())
	require.True(t, r.HasVowel())
	require.Equal(t, 2, r.Index('T'))
	require.Equal(t, "CATXZBQ", r.String())
	require.True(t, r.ContainsAll("CAT"))
	require.False(t, r.ContainsAll("DOG"))
	require.False(t, rackOf("BCDFGHJ").HasVowel())
}

func TestReplace(t *testing.T) {
	t.Parallel()

	r := rackOf("CATXZBQ")

	got, err := r.Replace('X', 'E')
	require.NoError(t, err)
	require.Equal(t, "CATEZBQ", got.String())
	require.Equal(t, "CATXZBQ", r.String(), "receiver untouched")

	_, err = r.Replace('E', 'O')
	require.ErrorIs(t, err, ErrNotInRack)

	_, err = r.Replace('C', 'T')
	require.ErrorIs(t, err, ErrAlreadyInRack)

	_, err = r.Replace('A', 'M')
	require.ErrorIs(t, err, ErrLastVowel)

	got, err = r.Replace('A', 'O')
	require.NoError(t, err)
	require.Equal(t, "COTXZBQ", got.String())

	_, err = r.Replace('C', '3')
	require.ErrorIs(t, err, ErrInvalidLetter)
}

func TestReplaceVowelWhenAnotherRemains(t *testing.T) {
	t.Parallel()

	r := rackOf("CATEZBQ")
	got, err := r.Replace('A', 'M')
	require.NoError(t, err)
	require.Equal(t, 1, got.VowelCount())
}

func TestNormalizeAndParse(t *testing.T) {
	t.Parallel()

	l, ok := Normalize('a')
	require.True(t, ok)
	require.Equal(t, Letter('A'), l)

	l, ok = Normalize('ñ')
	require.True(t, ok)
	require.Equal(t, Letter('Ñ'), l)

	_, ok = Normalize('1')
	require.False(t, ok)

	_, ok = Parse("ab")
	require.False(t, ok)

	l, ok = Parse(" s ")
	require.True(t, ok)
	require.Equal(t, Letter('S'), l)
}

func TestFromStringsRoundTrip(t *testing.T) {
	t.Parallel()

	r := rackOf("ÑAEBCDF")
	back, err := FromStrings(r.Strings())
	require.NoError(t, err)
	require.Equal(t, r, back)

	_, err = FromStrings([]string{"A", "??"})
	require.ErrorIs(t, err, ErrInvalidLetter)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	require.Error(t, Validate(rackOf("CAT")))
	require.Error(t, Validate(rackOf("CATTZBQ")))
	require.Error(t, Validate(rackOf("BCDFGHJ")))
	require.NoError(t, Validate(rackOf("CATXZBQ")))
}
