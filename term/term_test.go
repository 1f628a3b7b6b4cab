package term

import (
	"testing"

	"github.com/coregx/regexset/config"
	"github.com/stretchr/testify/require"
)

func must(t *testing.T, pattern string) *Term {
	t.Helper()
	term, err := FromRegex(pattern, config.DefaultEngineConfig())
	require.NoError(t, err, pattern)
	return term
}

func TestFromRegexRejectsAnchors(t *testing.T) {
	_, err := FromRegex("^abc$", config.DefaultEngineConfig())
	require.Error(t, err)
}

func TestFromRegexRejectsMalformed(t *testing.T) {
	_, err := FromRegex("a(b", config.DefaultEngineConfig())
	require.Error(t, err)
}

func TestToRegexWithoutMaterializationReturnsSource(t *testing.T) {
	term := must(t, "abc")
	out, err := term.ToRegex()
	require.NoError(t, err)
	require.Equal(t, "abc", out)
}

func TestIsEquivalentAcrossRewrites(t *testing.T) {
	a := must(t, "a(b|c)")
	b := must(t, "ab|ac")
	ok, err := a.IsEquivalent(b)
	require.NoError(t, err)
	require.True(t, ok)

	c := must(t, "a*")
	d := must(t, "a*a*")
	ok, err = c.IsEquivalent(d)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestIntersectionSpecExample(t *testing.T) {
	a := must(t, "(abc|de|fg){2,}")
	b := must(t, "de.*")
	c := must(t, ".*abc")

	result, err := Intersection(a, b, c)
	require.NoError(t, err)

	empty, err := result.IsEmpty()
	require.NoError(t, err)
	require.False(t, empty)

	other := must(t, "de(fg)*abc")
	ok, err := result.IsEquivalent(other)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestUnionIsCommutative(t *testing.T) {
	ab, err := Union(must(t, "abc"), must(t, "def"))
	require.NoError(t, err)
	ba, err := Union(must(t, "def"), must(t, "abc"))
	require.NoError(t, err)

	ok, err := ab.IsEquivalent(ba)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestSubtractionAndComplement(t *testing.T) {
	letters := must(t, "[a-z]+")
	abc := must(t, "abc")

	diff, err := letters.Subtraction(abc)
	require.NoError(t, err)
	empty, err := diff.IsEmpty()
	require.NoError(t, err)
	require.False(t, empty)

	reconstructed, err := Union(diff, abc)
	require.NoError(t, err)
	ok, err := reconstructed.IsEquivalent(letters)
	require.NoError(t, err)
	require.True(t, ok)

	comp, err := abc.Complement()
	require.NoError(t, err)
	doubleComp, err := comp.Complement()
	require.NoError(t, err)
	ok, err = doubleComp.IsEquivalent(abc)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestIsSubsetOf(t *testing.T) {
	narrow := must(t, "abc")
	wide := must(t, "[a-z]+")
	ok, err := narrow.IsSubsetOf(wide)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = wide.IsSubsetOf(narrow)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestStructuralViewRoundTripsThroughFromAutomaton(t *testing.T) {
	term := must(t, "a(b|c)*")
	view, err := term.StructuralView()
	require.NoError(t, err)
	require.Greater(t, view.NumStates, 0)
	require.Equal(t, view.NumStates*len(view.Alphabet), len(view.Table))
}

func TestMinimizeIsLanguagePreserving(t *testing.T) {
	term := must(t, "(aa)*a*b")
	other := must(t, "a*b")

	require.NoError(t, term.Minimize())
	ok, err := term.IsEquivalent(other)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestComplexityErrorSurfaces(t *testing.T) {
	cfg := config.DefaultEngineConfig()
	cfg.MaxStates = 1
	_, err := FromRegex("a{1000}", cfg)
	require.Error(t, err)
}
