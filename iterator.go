package utf8span

import "iter"

// Scalars returns an iterator over the scalars of s and their byte offsets.
func (s Span) Scalars() iter.Seq2[int, rune] {
	s.checkOwner()
	return func(yield func(int, rune) bool) {
		for i := 0; i < len(s.b); {
			s.checkOwner()
			r, next := s.decodeNextScalar(i)
			if !yield(i, r) {
				return
			}
			i = next
		}
	}
}

// Characters returns an iterator over the characters of s, as sub-spans, and
// their byte offsets.
func (s Span) Characters() iter.Seq2[int, Span] {
	s.checkOwner()
	return func(yield func(int, Span) bool) {
		for i := 0; i < len(s.b); {
			s.checkOwner()
			c, next := s.decodeNextCharacter(i)
			if !yield(i, c) {
				return
			}
			i = next
		}
	}
}

// ScalarIterator moves over the scalars of a span in both directions. Its
// position is always scalar aligned.
type ScalarIterator struct {
	s   Span
	pos int
}

// NewScalarIterator returns an iterator positioned at the start of s.
func NewScalarIterator(s Span) *ScalarIterator {
	return &ScalarIterator{s: s}
}

// Next returns the scalar after the current position and advances past it.
// It returns false at the end of the span.
func (it *ScalarIterator) Next() (rune, bool) {
	it.s.checkOwner()
	if it.pos >= len(it.s.b) {
		return 0, false
	}
	r, next := it.s.decodeNextScalar(it.pos)
	it.pos = next
	return r, true
}

// Previous returns the scalar before the current position and moves before
// it. It returns false at the start of the span.
func (it *ScalarIterator) Previous() (rune, bool) {
	it.s.checkOwner()
	if it.pos <= 0 {
		return 0, false
	}
	r, start := it.s.decodePreviousScalar(it.pos)
	it.pos = start
	return r, true
}

// SkipForward advances by up to n scalars and returns how many were skipped.
func (it *ScalarIterator) SkipForward(n int) int {
	it.s.checkOwner()
	skipped := 0
	for skipped < n && it.pos < len(it.s.b) {
		it.pos = it.s.nextScalarStart(it.pos)
		skipped++
	}
	return skipped
}

// SkipBack moves back by up to n scalars and returns how many were skipped.
func (it *ScalarIterator) SkipBack(n int) int {
	it.s.checkOwner()
	skipped := 0
	for skipped < n && it.pos > 0 {
		it.pos = it.s.previousScalarStart(it.pos)
		skipped++
	}
	return skipped
}

// Offset returns the current byte offset.
func (it *ScalarIterator) Offset() int {
	return it.pos
}

// Reset moves the iterator to i, which must be scalar aligned.
func (it *ScalarIterator) Reset(i int) {
	it.s.checkOwner()
	it.s.checkBounds(i)
	it.s.checkScalarAligned(i)
	it.pos = i
}

// ResetRoundingForwards moves the iterator to i, or to the end of the scalar
// containing it.
func (it *ScalarIterator) ResetRoundingForwards(i int) {
	it.pos = it.s.ScalarAlignForwards(i)
}

// ResetRoundingBackwards moves the iterator to i, or to the start of the
// scalar containing it.
func (it *ScalarIterator) ResetRoundingBackwards(i int) {
	it.pos = it.s.ScalarAlignBackwards(i)
}

// Prefix returns the part of the span before the current position.
func (it *ScalarIterator) Prefix() Span {
	it.s.checkOwner()
	return it.s.sub(0, it.pos)
}

// Suffix returns the part of the span from the current position on.
func (it *ScalarIterator) Suffix() Span {
	it.s.checkOwner()
	return it.s.sub(it.pos, len(it.s.b))
}

// CharacterIterator moves over the characters of a span in both directions.
// Its position is always character aligned.
type CharacterIterator struct {
	s   Span
	pos int
}

// NewCharacterIterator returns an iterator positioned at the start of s.
func NewCharacterIterator(s Span) *CharacterIterator {
	return &CharacterIterator{s: s}
}

// Next returns the character after the current position and advances past
// it. It returns false at the end of the span.
func (it *CharacterIterator) Next() (Span, bool) {
	it.s.checkOwner()
	if it.pos >= len(it.s.b) {
		return Span{}, false
	}
	c, next := it.s.decodeNextCharacter(it.pos)
	it.pos = next
	return c, true
}

// Previous returns the character before the current position and moves
// before it. It returns false at the start of the span.
func (it *CharacterIterator) Previous() (Span, bool) {
	it.s.checkOwner()
	if it.pos <= 0 {
		return Span{}, false
	}
	c, start := it.s.decodePreviousCharacter(it.pos)
	it.pos = start
	return c, true
}

// SkipForward advances by up to n characters and returns how many were
// skipped.
func (it *CharacterIterator) SkipForward(n int) int {
	it.s.checkOwner()
	skipped := 0
	for skipped < n && it.pos < len(it.s.b) {
		it.pos = it.s.nextCharacterStart(it.pos)
		skipped++
	}
	return skipped
}

// SkipBack moves back by up to n characters and returns how many were
// skipped.
func (it *CharacterIterator) SkipBack(n int) int {
	it.s.checkOwner()
	skipped := 0
	for skipped < n && it.pos > 0 {
		it.pos = it.s.previousCharacterStart(it.pos)
		skipped++
	}
	return skipped
}

// Offset returns the current byte offset.
func (it *CharacterIterator) Offset() int {
	return it.pos
}

// Reset moves the iterator to i, which must be character aligned.
func (it *CharacterIterator) Reset(i int) {
	it.s.checkOwner()
	it.s.checkBounds(i)
	it.s.checkCharacterAligned(i)
	it.pos = i
}

// ResetRoundingForwards moves the iterator to i, or to the end of the
// character containing it.
func (it *CharacterIterator) ResetRoundingForwards(i int) {
	it.pos = it.s.CharacterAlignForwards(i)
}

// ResetRoundingBackwards moves the iterator to i, or to the start of the
// character containing it.
func (it *CharacterIterator) ResetRoundingBackwards(i int) {
	it.pos = it.s.CharacterAlignBackwards(i)
}

// Prefix returns the part of the span before the current position.
func (it *CharacterIterator) Prefix() Span {
	it.s.checkOwner()
	return it.s.sub(0, it.pos)
}

// Suffix returns the part of the span from the current position on.
func (it *CharacterIterator) Suffix() Span {
	it.s.checkOwner()
	return it.s.sub(it.pos, len(it.s.b))
}
