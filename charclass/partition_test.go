package charclass

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPartitionerDisjointAndCovering(t *testing.T) {
	classes := []CharClass{
		OfRange('a', 'm'),
		OfRange('g', 'z'),
		OfRange('0', '9'),
	}
	part := PartitionAll(classes)

	// Blocks are pairwise disjoint.
	for i := 0; i < len(part.Classes); i++ {
		for j := i + 1; j < len(part.Classes); j++ {
			inter := part.Classes[i].IntersectWith(part.Classes[j])
			assert.True(t, inter.IsEmpty(), "blocks %d and %d overlap", i, j)
		}
	}

	// Every original class is exactly the union of its membership blocks.
	for i, c := range classes {
		var union CharClass
		for _, idx := range part.Membership[i] {
			union = union.UnionWith(part.Classes[idx])
		}
		assert.True(t, union.Equal(c), "class %d not reconstructed", i)
	}
}

func TestPartitionerSingleClass(t *testing.T) {
	part := PartitionAll([]CharClass{OfRange('a', 'z')})
	assert.Len(t, part.Classes, 1)
	assert.True(t, part.Classes[0].Equal(OfRange('a', 'z')))
}

func TestPartitionerIdenticalClasses(t *testing.T) {
	part := PartitionAll([]CharClass{OfRange('a', 'z'), OfRange('a', 'z')})
	assert.Len(t, part.Classes, 1)
	assert.Equal(t, []int{0}, part.Membership[0])
	assert.Equal(t, []int{0}, part.Membership[1])
}

func TestPartitionerDeterministic(t *testing.T) {
	classes := []CharClass{OfRange('a', 'm'), OfRange('g', 'z'), OfRange('d', 'k')}
	p1 := PartitionAll(classes)
	p2 := PartitionAll(classes)
	assert.Equal(t, len(p1.Classes), len(p2.Classes))
	for i := range p1.Classes {
		assert.True(t, p1.Classes[i].Equal(p2.Classes[i]))
	}
}
