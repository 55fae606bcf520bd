package bigchar

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
)

func TestRenderBlockShape(t *testing.T) {
	require.True(t, IsAvailable())

	for _, s := range []string{"A", "W", "Ñ", "I"} {
		out := RenderBlock(s, 10, 5)
		lines := strings.Split(out, "\n")
		require.Len(t, lines, 5, s)
		for _, l := range lines {
			require.Equal(t, 10, utf8.RuneCountInString(l), s)
		}
		require.True(t, strings.ContainsAny(out, "█▀▄"), "%s rendered blank", s)
	}
}

func TestRenderBlockEmpty(t *testing.T) {
	require.Empty(t, RenderBlock("", 10, 5))
	require.Empty(t, RenderBlock("A", 0, 5))
}

func TestLettersDiffer(t *testing.T) {
	require.NotEqual(t, RenderBlock("I", 8, 4), RenderBlock("W", 8, 4))
	require.NotEqual(t, RenderBlock("A", 8, 6), RenderBlock("Ñ", 8, 6))
}

func TestGetCached(t *testing.T) {
	first := GetCached("B", 8, 4)
	require.Equal(t, first, GetCached("B", 8, 4))
	require.Equal(t, RenderBlock("B", 8, 4), first)
}
