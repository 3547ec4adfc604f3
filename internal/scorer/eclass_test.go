package scorer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassMerger_FindUnmerged(t *testing.T) {
	m := newClassMerger()
	assert.Equal(t, 42, m.Find(42))
}

func TestClassMerger_SmallestWins(t *testing.T) {
	m := newClassMerger()
	m.Union(9, 5)
	assert.Equal(t, 5, m.Find(9))
	assert.Equal(t, 5, m.Find(5))

	// Transitive merge still normalizes to the smallest member.
	m.Union(9, 3)
	assert.Equal(t, 3, m.Find(5))
	assert.Equal(t, 3, m.Find(9))
	assert.Equal(t, 3, m.Find(3))
}

func TestClassMerger_NormalizeSet(t *testing.T) {
	m := newClassMerger()
	m.Union(5, 9)

	set := map[int]struct{}{5: {}, 9: {}, 12: {}}
	m.NormalizeSet(set)

	assert.Equal(t, map[int]struct{}{5: {}, 12: {}}, set)

	// Idempotent: a second pass changes nothing.
	m.NormalizeSet(set)
	assert.Equal(t, map[int]struct{}{5: {}, 12: {}}, set)
}

func TestClassMerger_NormalizeSetNil(t *testing.T) {
	m := newClassMerger()
	assert.NotPanics(t, func() { m.NormalizeSet(nil) })
}

func TestClassMerger_SetOnlyShrinks(t *testing.T) {
	m := newClassMerger()
	m.Union(1, 2)
	m.Union(3, 4)

	set := map[int]struct{}{2: {}, 4: {}, 7: {}}
	before := len(set)
	m.NormalizeSet(set)
	assert.LessOrEqual(t, len(set), before)
	assert.Equal(t, map[int]struct{}{1: {}, 3: {}, 7: {}}, set)
}
