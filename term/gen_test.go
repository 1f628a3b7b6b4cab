package term

import (
	"fmt"
	"testing"

	"github.com/coregx/regexset/config"
	"github.com/stretchr/testify/require"
)

// bounded regex generator (spec §8): every algebraic-law property test is
// quantified over this fixed, small corpus rather than an unbounded random
// walk, so a failure always names a reproducible counterexample instead of
// a seed.
var generatorCorpus = []string{
	"a", "b", "c",
	"ab", "ba", "abc",
	"a|b", "b|c", "a|b|c",
	"a*", "b*", "(ab)*",
	"a+", "a?",
	"[a-c]", "[^a]",
	"a{2}", "a{1,3}",
	"(a|b)c", "a(b|c)",
}

func genTerm(t *testing.T, pattern string) *Term {
	t.Helper()
	term, err := FromRegex(pattern, config.DefaultEngineConfig())
	require.NoError(t, err, pattern)
	return term
}

func equivalent(t *testing.T, a, b *Term) bool {
	t.Helper()
	ok, err := a.IsEquivalent(b)
	require.NoError(t, err)
	return ok
}

// tripleCorpus is a smaller slice of generatorCorpus for O(n^3) properties
// (associativity, distributivity) so the suite stays fast; the full corpus
// already covers the O(n^2) and O(n) properties below.
var tripleCorpus = generatorCorpus[:8]

func forEachTriple(t *testing.T, f func(a, b, c string)) {
	t.Helper()
	for _, a := range tripleCorpus {
		for _, b := range tripleCorpus {
			for _, c := range tripleCorpus {
				f(a, b, c)
			}
		}
	}
}

func TestLawIdempotence(t *testing.T) {
	for _, p := range generatorCorpus {
		a := genTerm(t, p)
		u, err := Union(genTerm(t, p), genTerm(t, p))
		require.NoError(t, err)
		require.True(t, equivalent(t, u, a), "A ∪ A ≡ A failed for %q", p)

		a2 := genTerm(t, p)
		i, err := Intersection(genTerm(t, p), genTerm(t, p))
		require.NoError(t, err)
		require.True(t, equivalent(t, i, a2), "A ∩ A ≡ A failed for %q", p)
	}
}

func TestLawCommutativity(t *testing.T) {
	for _, a := range generatorCorpus {
		for _, b := range generatorCorpus {
			ab, err := Union(genTerm(t, a), genTerm(t, b))
			require.NoError(t, err)
			ba, err := Union(genTerm(t, b), genTerm(t, a))
			require.NoError(t, err)
			require.True(t, equivalent(t, ab, ba), "A ∪ B ≡ B ∪ A failed for %q, %q", a, b)

			iab, err := Intersection(genTerm(t, a), genTerm(t, b))
			require.NoError(t, err)
			iba, err := Intersection(genTerm(t, b), genTerm(t, a))
			require.NoError(t, err)
			require.True(t, equivalent(t, iab, iba), "A ∩ B ≡ B ∩ A failed for %q, %q", a, b)
		}
	}
}

func TestLawAssociativity(t *testing.T) {
	forEachTriple(t, func(a, b, c string) {
		left, err := Union(genTerm(t, a), genTerm(t, b))
		require.NoError(t, err)
		left, err = Union(left, genTerm(t, c))
		require.NoError(t, err)

		right, err := Union(genTerm(t, b), genTerm(t, c))
		require.NoError(t, err)
		right, err = Union(genTerm(t, a), right)
		require.NoError(t, err)

		require.True(t, equivalent(t, left, right), "(A∪B)∪C ≡ A∪(B∪C) failed for %q,%q,%q", a, b, c)
	})
}

func TestLawDeMorgan(t *testing.T) {
	for _, a := range generatorCorpus {
		for _, b := range generatorCorpus {
			union, err := Union(genTerm(t, a), genTerm(t, b))
			require.NoError(t, err)
			lhs, err := union.Complement()
			require.NoError(t, err)

			notA, err := genTerm(t, a).Complement()
			require.NoError(t, err)
			notB, err := genTerm(t, b).Complement()
			require.NoError(t, err)
			rhs, err := Intersection(notA, notB)
			require.NoError(t, err)

			require.True(t, equivalent(t, lhs, rhs), "¬(A∪B) ≡ ¬A∩¬B failed for %q,%q", a, b)
		}
	}
}

func TestLawDoubleComplement(t *testing.T) {
	for _, p := range generatorCorpus {
		a := genTerm(t, p)
		notA, err := a.Complement()
		require.NoError(t, err)
		notNotA, err := notA.Complement()
		require.NoError(t, err)
		require.True(t, equivalent(t, notNotA, genTerm(t, p)), "¬¬A ≡ A failed for %q", p)
	}
}

func TestLawDistributivity(t *testing.T) {
	forEachTriple(t, func(a, b, c string) {
		bc, err := Union(genTerm(t, b), genTerm(t, c))
		require.NoError(t, err)
		lhs, err := Intersection(genTerm(t, a), bc)
		require.NoError(t, err)

		ab, err := Intersection(genTerm(t, a), genTerm(t, b))
		require.NoError(t, err)
		ac, err := Intersection(genTerm(t, a), genTerm(t, c))
		require.NoError(t, err)
		rhs, err := Union(ab, ac)
		require.NoError(t, err)

		require.True(t, equivalent(t, lhs, rhs), "A∩(B∪C) ≡ (A∩B)∪(A∩C) failed for %q,%q,%q", a, b, c)
	})
}

func TestLawAbsorption(t *testing.T) {
	for _, a := range generatorCorpus {
		for _, b := range generatorCorpus {
			ab, err := Intersection(genTerm(t, a), genTerm(t, b))
			require.NoError(t, err)
			lhs, err := Union(genTerm(t, a), ab)
			require.NoError(t, err)
			require.True(t, equivalent(t, lhs, genTerm(t, a)), "A∪(A∩B) ≡ A failed for %q,%q", a, b)
		}
	}
}

func TestLawSubtractionIdentity(t *testing.T) {
	for _, a := range generatorCorpus {
		for _, b := range generatorCorpus {
			lhs, err := genTerm(t, a).Subtraction(genTerm(t, b))
			require.NoError(t, err)

			notB, err := genTerm(t, b).Complement()
			require.NoError(t, err)
			rhs, err := Intersection(genTerm(t, a), notB)
			require.NoError(t, err)

			require.True(t, equivalent(t, lhs, rhs), "A∖B ≡ A∩¬B failed for %q,%q", a, b)
		}
	}
}

func TestLawRoundTrip(t *testing.T) {
	for _, p := range generatorCorpus {
		term := genTerm(t, p)
		out, err := term.ToRegex()
		require.NoError(t, err)

		rebuilt, err := FromRegex(out, config.DefaultEngineConfig())
		require.NoError(t, err, fmt.Sprintf("round-trip regex %q (from %q) failed to parse", out, p))

		require.True(t, equivalent(t, term, rebuilt), "to_regex(from_regex(%q)) changed the language", p)
	}
}

func TestEquivalenceIsReflexiveSymmetricTransitive(t *testing.T) {
	for _, p := range generatorCorpus {
		a := genTerm(t, p)
		require.True(t, equivalent(t, a, genTerm(t, p)), "reflexivity failed for %q", p)
	}

	a := genTerm(t, "a(b|c)")
	b := genTerm(t, "ab|ac")
	require.Equal(t, equivalent(t, a, b), equivalent(t, b, a))

	c := genTerm(t, "(ab)|(ac)")
	if equivalent(t, a, b) && equivalent(t, b, c) {
		require.True(t, equivalent(t, a, c), "transitivity failed")
	}
}

func TestSubsetIsPartialOrderAndAntisymmetric(t *testing.T) {
	for _, p := range generatorCorpus {
		a := genTerm(t, p)
		ok, err := a.IsSubsetOf(genTerm(t, p))
		require.NoError(t, err)
		require.True(t, ok, "reflexivity of ⊆ failed for %q", p)
	}

	a := genTerm(t, "abc")
	b := genTerm(t, "[a-z]+")
	aSubB, err := a.IsSubsetOf(b)
	require.NoError(t, err)
	bSubA, err := b.IsSubsetOf(a)
	require.NoError(t, err)
	require.True(t, aSubB)
	require.False(t, bSubA)

	eq, err := a.IsEquivalent(b)
	require.NoError(t, err)
	require.Equal(t, aSubB && bSubA, eq)
}

func TestBoundaryCases(t *testing.T) {
	a := genTerm(t, "abc")

	selfDiff, err := a.Subtraction(genTerm(t, "abc"))
	require.NoError(t, err)
	empty, err := selfDiff.IsEmpty()
	require.NoError(t, err)
	require.True(t, empty, "A∖A must be the empty language")

	universal, err := selfDiff.Complement()
	require.NoError(t, err)
	universalEmpty, err := universal.IsEmpty()
	require.NoError(t, err)
	require.False(t, universalEmpty, "¬(A∖A) must be the universal language")

	emptyString := genTerm(t, "")
	emptyStrEmpty, err := emptyString.IsEmpty()
	require.NoError(t, err)
	require.False(t, emptyStrEmpty, `regex "" matches the empty string, not nothing`)

	negatedFull := genTerm(t, `[^\x00-\x{10FFFF}]`)
	negatedFullEmpty, err := negatedFull.IsEmpty()
	require.NoError(t, err)
	require.True(t, negatedFullEmpty)

	surrogateBoundary := genTerm(t, `[\x{D7FF}-\x{E000}]`)
	surrogateEmpty, err := surrogateBoundary.IsEmpty()
	require.NoError(t, err)
	require.False(t, surrogateEmpty)
}

func TestEndToEndScenarios(t *testing.T) {
	r1, err := Intersection(genTerm(t, "(abc|de|fg){2,}"), genTerm(t, "de.*"), genTerm(t, ".*abc"))
	require.NoError(t, err)
	require.True(t, equivalent(t, r1, genTerm(t, "de(fg)*abc")))

	r2, err := Union(genTerm(t, "abc"), genTerm(t, "de"), genTerm(t, "fghi"))
	require.NoError(t, err)
	require.True(t, equivalent(t, r2, genTerm(t, "(abc|de|fghi)")))

	r3, err := genTerm(t, "(abc|de)").Subtraction(genTerm(t, "de"))
	require.NoError(t, err)
	require.True(t, equivalent(t, r3, genTerm(t, "abc")))

	r4base, err := Intersection(genTerm(t, "(abc|de|fg){2,}"), genTerm(t, "de.*"), genTerm(t, ".*abc"))
	require.NoError(t, err)
	r4, err := r4base.Subtraction(genTerm(t, ".+(abc|de).+"))
	require.NoError(t, err)
	require.True(t, equivalent(t, r4, genTerm(t, "de(fg)*abc")))

	ok, err := genTerm(t, "a").IsSubsetOf(genTerm(t, "[a-z]"))
	require.NoError(t, err)
	require.True(t, ok)
	ok, err = genTerm(t, "[a-z]").IsSubsetOf(genTerm(t, "a"))
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = genTerm(t, "a(b|c)").IsEquivalent(genTerm(t, "ab|ac"))
	require.NoError(t, err)
	require.True(t, ok)
	ok, err = genTerm(t, "a*").IsEquivalent(genTerm(t, "a*a*"))
	require.NoError(t, err)
	require.True(t, ok)
}
