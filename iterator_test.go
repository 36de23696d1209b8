package utf8span

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScalarsSeq(t *testing.T) {
	s := mustSpan(t, mixedWidths)
	var offsets []int
	var runes []rune
	for i, r := range s.Scalars() {
		offsets = append(offsets, i)
		runes = append(runes, r)
	}
	assert.Equal(t, []int{0, 1, 3, 6}, offsets)
	assert.Equal(t, []rune(mixedWidths), runes)

	n := 0
	for range s.Scalars() {
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)
}

func TestCharactersSeq(t *testing.T) {
	s := mustSpan(t, "e\u0301\U0001F1E9\U0001F1EAx")
	var offsets []int
	var chars []string
	for i, c := range s.Characters() {
		offsets = append(offsets, i)
		chars = append(chars, c.String())
	}
	assert.Equal(t, []int{0, 3, 11}, offsets)
	assert.Equal(t, []string{"e\u0301", "\U0001F1E9\U0001F1EA", "x"}, chars)
}

func TestScalarIterator(t *testing.T) {
	s := mustSpan(t, mixedWidths)
	it := NewScalarIterator(s)

	_, ok := it.Previous()
	assert.False(t, ok)

	var forward []rune
	for r, ok := it.Next(); ok; r, ok = it.Next() {
		forward = append(forward, r)
	}
	assert.Equal(t, []rune(mixedWidths), forward)
	assert.Equal(t, 10, it.Offset())

	r, ok := it.Previous()
	require.True(t, ok)
	assert.Equal(t, '\U0001F600', r)
	assert.Equal(t, 6, it.Offset())

	assert.Equal(t, 2, it.SkipBack(2))
	assert.Equal(t, 1, it.Offset())
	assert.Equal(t, "a", it.Prefix().String())
	assert.Equal(t, "\u00e9\u20ac\U0001F600", it.Suffix().String())

	assert.Equal(t, 1, it.SkipBack(5))
	assert.Equal(t, 0, it.Offset())
	assert.Equal(t, 4, it.SkipForward(10))
	assert.Equal(t, 10, it.Offset())

	it.ResetRoundingBackwards(2)
	assert.Equal(t, 1, it.Offset())
	it.ResetRoundingForwards(2)
	assert.Equal(t, 3, it.Offset())
	it.Reset(6)
	assert.Equal(t, 6, it.Offset())
	assert.Panics(t, func() { it.Reset(2) })
	assert.Panics(t, func() { it.Reset(11) })
}

func TestCharacterIterator(t *testing.T) {
	// Characters start at 0, 3 and 11; the flag spans [3, 11).
	s := mustSpan(t, "e\u0301\U0001F1E9\U0001F1EAx")
	it := NewCharacterIterator(s)

	var forward []string
	for c, ok := it.Next(); ok; c, ok = it.Next() {
		forward = append(forward, c.String())
	}
	assert.Equal(t, []string{"e\u0301", "\U0001F1E9\U0001F1EA", "x"}, forward)

	var backward []string
	for c, ok := it.Previous(); ok; c, ok = it.Previous() {
		backward = append(backward, c.String())
	}
	assert.Equal(t, []string{"x", "\U0001F1E9\U0001F1EA", "e\u0301"}, backward)
	assert.Equal(t, 0, it.Offset())

	assert.Equal(t, 2, it.SkipForward(2))
	assert.Equal(t, 11, it.Offset())
	assert.Equal(t, "e\u0301\U0001F1E9\U0001F1EA", it.Prefix().String())
	assert.Equal(t, "x", it.Suffix().String())
	assert.Equal(t, 1, it.SkipForward(2))
	assert.Equal(t, 3, it.SkipBack(5))

	it.ResetRoundingForwards(5)
	assert.Equal(t, 11, it.Offset())
	it.ResetRoundingBackwards(7)
	assert.Equal(t, 3, it.Offset())
	it.ResetRoundingBackwards(1)
	assert.Equal(t, 0, it.Offset())

	it.Reset(3)
	assert.Equal(t, 3, it.Offset())
	assert.Panics(t, func() { it.Reset(7) })
	assert.Panics(t, func() { it.Reset(1) })
}
