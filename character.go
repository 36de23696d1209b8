package utf8span

// Characters are extended grapheme clusters as defined by UAX #29. When the
// span is known to consist of single-scalar characters, character
// boundaries are scalar boundaries and navigation defers to the scalar
// functions.

func (s Span) isCharacterAligned(i int) bool {
	if !s.isScalarAligned(i) {
		return false
	}
	return s.characterStartAtOrBefore(i) == i
}

func (s Span) nextCharacterStart(i int) int {
	if s.flags&flagSingleScalar != 0 {
		return s.nextScalarStart(i)
	}
	return s.stepCharacter(i)
}

func (s Span) previousCharacterStart(i int) int {
	if s.flags&flagSingleScalar != 0 {
		return s.previousScalarStart(i)
	}
	return s.characterStartAtOrBefore(s.previousScalarStart(i))
}

func (s Span) decodeNextCharacter(i int) (Span, int) {
	next := s.nextCharacterStart(i)
	return s.sub(i, next), next
}

func (s Span) decodePreviousCharacter(i int) (Span, int) {
	start := s.previousCharacterStart(i)
	return s.sub(start, i), start
}

// IsCharacterAligned reports whether i is a grapheme cluster boundary. It
// panics if i is outside [0, Len()].
func (s Span) IsCharacterAligned(i int) bool {
	s.checkOwner()
	s.checkBounds(i)
	return s.isCharacterAligned(i)
}

// IsCharacterAlignedUnchecked is like [Span.IsCharacterAligned] without the
// range check.
func (s Span) IsCharacterAlignedUnchecked(i int) bool {
	return s.isCharacterAligned(i)
}

// NextCharacterStart returns the offset of the character following the one
// that starts at i. It panics unless i is character aligned and in
// [0, Len()).
func (s Span) NextCharacterStart(i int) int {
	s.checkOwner()
	s.checkInterior(i)
	s.checkCharacterAligned(i)
	return s.nextCharacterStart(i)
}

// NextCharacterStartUnchecked is like [Span.NextCharacterStart] without the
// range check.
func (s Span) NextCharacterStartUnchecked(i int) int {
	s.checkCharacterAligned(i)
	return s.nextCharacterStart(i)
}

// NextCharacterStartUncheckedAssumingAligned is like
// [Span.NextCharacterStart] without range or alignment checks.
func (s Span) NextCharacterStartUncheckedAssumingAligned(i int) int {
	return s.nextCharacterStart(i)
}

// PreviousCharacterStart returns the offset of the character that ends at i.
// It panics unless i is character aligned and in (0, Len()].
func (s Span) PreviousCharacterStart(i int) int {
	s.checkOwner()
	s.checkStart(i)
	s.checkCharacterAligned(i)
	return s.previousCharacterStart(i)
}

// PreviousCharacterStartUnchecked is like [Span.PreviousCharacterStart]
// without the range check.
func (s Span) PreviousCharacterStartUnchecked(i int) int {
	s.checkCharacterAligned(i)
	return s.previousCharacterStart(i)
}

// PreviousCharacterStartUncheckedAssumingAligned is like
// [Span.PreviousCharacterStart] without range or alignment checks.
func (s Span) PreviousCharacterStartUncheckedAssumingAligned(i int) int {
	return s.previousCharacterStart(i)
}

// DecodeNextCharacter returns the character starting at i as a sub-span,
// along with the offset of the following character. It panics unless i is
// character aligned and in [0, Len()).
func (s Span) DecodeNextCharacter(i int) (Span, int) {
	s.checkOwner()
	s.checkInterior(i)
	s.checkCharacterAligned(i)
	return s.decodeNextCharacter(i)
}

// DecodeNextCharacterUnchecked is like [Span.DecodeNextCharacter] without the
// range check.
func (s Span) DecodeNextCharacterUnchecked(i int) (Span, int) {
	s.checkCharacterAligned(i)
	return s.decodeNextCharacter(i)
}

// DecodeNextCharacterUncheckedAssumingAligned is like
// [Span.DecodeNextCharacter] without range or alignment checks.
func (s Span) DecodeNextCharacterUncheckedAssumingAligned(i int) (Span, int) {
	return s.decodeNextCharacter(i)
}

// DecodePreviousCharacter returns the character ending at i as a sub-span,
// along with its starting offset. It panics unless i is character aligned
// and in (0, Len()].
func (s Span) DecodePreviousCharacter(i int) (Span, int) {
	s.checkOwner()
	s.checkStart(i)
	s.checkCharacterAligned(i)
	return s.decodePreviousCharacter(i)
}

// DecodePreviousCharacterUnchecked is like [Span.DecodePreviousCharacter]
// without the range check.
func (s Span) DecodePreviousCharacterUnchecked(i int) (Span, int) {
	s.checkCharacterAligned(i)
	return s.decodePreviousCharacter(i)
}

// DecodePreviousCharacterUncheckedAssumingAligned is like
// [Span.DecodePreviousCharacter] without range or alignment checks.
func (s Span) DecodePreviousCharacterUncheckedAssumingAligned(i int) (Span, int) {
	return s.decodePreviousCharacter(i)
}

// CharacterCount returns the number of characters in the span.
func (s Span) CharacterCount() int {
	s.checkOwner()
	if s.flags&flagSingleScalar != 0 {
		return s.ScalarCount()
	}
	n := 0
	for i := 0; i < len(s.b); i = s.stepCharacter(i) {
		n++
	}
	return n
}
