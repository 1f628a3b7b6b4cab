package charclass

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmptyAndAny(t *testing.T) {
	assert.True(t, Empty().IsEmpty())
	assert.False(t, Any().IsEmpty())
	assert.True(t, Any().Contains('a'))
	assert.True(t, Any().Contains(0x10FFFF))
	assert.False(t, Any().Contains(0xD800)) // surrogate gap excluded
}

func TestOfRangeSplitsSurrogateGap(t *testing.T) {
	c := OfRange(0xD700, 0xE000)
	assert.False(t, c.Contains(0xD800))
	assert.True(t, c.Contains(0xD700))
	assert.True(t, c.Contains(0xE000))
}

func TestUnionIntersectSubtract(t *testing.T) {
	a := OfRange('a', 'm')
	b := OfRange('g', 'z')

	u := a.UnionWith(b)
	assert.True(t, u.Equal(OfRange('a', 'z')))

	i := a.IntersectWith(b)
	assert.True(t, i.Equal(OfRange('g', 'm')))

	d := a.Subtract(b)
	assert.True(t, d.Equal(OfRange('a', 'f')))
}

func TestNegateDoubleIsIdentity(t *testing.T) {
	a := OfRange('a', 'z').UnionWith(OfRange('0', '9'))
	assert.True(t, a.Negate().Negate().Equal(a))
}

func TestDeMorgan(t *testing.T) {
	a := OfRange('a', 'm')
	b := OfRange('g', 'z')
	lhs := a.UnionWith(b).Negate()
	rhs := a.Negate().IntersectWith(b.Negate())
	assert.True(t, lhs.Equal(rhs))
}

func TestIsSubsetOf(t *testing.T) {
	assert.True(t, OfScalar('a').IsSubsetOf(OfRange('a', 'z')))
	assert.False(t, OfRange('a', 'z').IsSubsetOf(OfScalar('a')))
}

func TestCanonicalFormMergesAdjacent(t *testing.T) {
	c := OfRanges([]ScalarRange{{Lo: 'a', Hi: 'c'}, {Lo: 'd', Hi: 'f'}})
	assert.Equal(t, 1, len(c.IterRanges()))
	assert.True(t, c.Equal(OfRange('a', 'f')))
}

func TestEqualityIsStructural(t *testing.T) {
	a := OfRange('a', 'c').UnionWith(OfRange('x', 'z'))
	b := OfRange('x', 'z').UnionWith(OfRange('a', 'c'))
	assert.True(t, a.Equal(b))
}

func TestIdempotence(t *testing.T) {
	a := OfRange('a', 'z')
	assert.True(t, a.UnionWith(a).Equal(a))
	assert.True(t, a.IntersectWith(a).Equal(a))
}
