package utf8span

// Decoding masks for the payload bits of lead and continuation bytes.
const (
	maskx = 0x3f // 0011 1111
	mask2 = 0x1f // 0001 1111
	mask3 = 0x0f // 0000 1111
	mask4 = 0x07 // 0000 0111
)

func isContinuation(c byte) bool {
	return c&0xc0 == 0x80
}

// scalarLength returns the encoded length of the scalar whose lead byte is c.
// The span's content is valid, so every lead byte has a length.
func scalarLength(c byte) int {
	switch {
	case c < 0x80:
		return 1
	case c < 0xe0:
		return 2
	case c < 0xf0:
		return 3
	default:
		return 4
	}
}

func (s Span) isScalarAligned(i int) bool {
	if i == 0 || i == len(s.b) {
		return true
	}
	return !isContinuation(s.b[i])
}

func (s Span) nextScalarStart(i int) int {
	return i + scalarLength(s.b[i])
}

func (s Span) previousScalarStart(i int) int {
	j := i - 1
	for isContinuation(s.b[j]) {
		j--
	}
	return j
}

func (s Span) decodeNextScalar(i int) (rune, int) {
	b := s.b
	c := b[i]
	switch scalarLength(c) {
	case 1:
		return rune(c), i + 1
	case 2:
		return rune(c&mask2)<<6 | rune(b[i+1]&maskx), i + 2
	case 3:
		return rune(c&mask3)<<12 | rune(b[i+1]&maskx)<<6 | rune(b[i+2]&maskx), i + 3
	default:
		return rune(c&mask4)<<18 | rune(b[i+1]&maskx)<<12 | rune(b[i+2]&maskx)<<6 | rune(b[i+3]&maskx), i + 4
	}
}

func (s Span) decodePreviousScalar(i int) (rune, int) {
	start := s.previousScalarStart(i)
	r, _ := s.decodeNextScalar(start)
	return r, start
}

// IsScalarAligned reports whether i is 0, Len(), or the offset of a lead
// byte. It panics if i is outside [0, Len()].
func (s Span) IsScalarAligned(i int) bool {
	s.checkOwner()
	s.checkBounds(i)
	return s.isScalarAligned(i)
}

// IsScalarAlignedUnchecked is like [Span.IsScalarAligned] without the range
// check.
func (s Span) IsScalarAlignedUnchecked(i int) bool {
	return s.isScalarAligned(i)
}

// NextScalarStart returns the offset of the scalar following the one that
// starts at i. It panics unless i is scalar aligned and in [0, Len()).
func (s Span) NextScalarStart(i int) int {
	s.checkOwner()
	s.checkInterior(i)
	s.checkScalarAligned(i)
	return s.nextScalarStart(i)
}

// NextScalarStartUnchecked is like [Span.NextScalarStart] without the range
// check.
func (s Span) NextScalarStartUnchecked(i int) int {
	s.checkScalarAligned(i)
	return s.nextScalarStart(i)
}

// NextScalarStartUncheckedAssumingAligned is like [Span.NextScalarStart]
// without range or alignment checks.
func (s Span) NextScalarStartUncheckedAssumingAligned(i int) int {
	return s.nextScalarStart(i)
}

// PreviousScalarStart returns the offset of the scalar that ends at i. It
// panics unless i is scalar aligned and in (0, Len()].
func (s Span) PreviousScalarStart(i int) int {
	s.checkOwner()
	s.checkStart(i)
	s.checkScalarAligned(i)
	return s.previousScalarStart(i)
}

// PreviousScalarStartUnchecked is like [Span.PreviousScalarStart] without the
// range check.
func (s Span) PreviousScalarStartUnchecked(i int) int {
	s.checkScalarAligned(i)
	return s.previousScalarStart(i)
}

// PreviousScalarStartUncheckedAssumingAligned is like
// [Span.PreviousScalarStart] without range or alignment checks.
func (s Span) PreviousScalarStartUncheckedAssumingAligned(i int) int {
	return s.previousScalarStart(i)
}

// DecodeNextScalar decodes the scalar starting at i and returns it along with
// the offset of the following scalar. It panics unless i is scalar aligned
// and in [0, Len()).
func (s Span) DecodeNextScalar(i int) (rune, int) {
	s.checkOwner()
	s.checkInterior(i)
	s.checkScalarAligned(i)
	return s.decodeNextScalar(i)
}

// DecodeNextScalarUnchecked is like [Span.DecodeNextScalar] without the range
// check.
func (s Span) DecodeNextScalarUnchecked(i int) (rune, int) {
	s.checkScalarAligned(i)
	return s.decodeNextScalar(i)
}

// DecodeNextScalarUncheckedAssumingAligned is like [Span.DecodeNextScalar]
// without range or alignment checks.
func (s Span) DecodeNextScalarUncheckedAssumingAligned(i int) (rune, int) {
	return s.decodeNextScalar(i)
}

// DecodePreviousScalar decodes the scalar ending at i and returns it along
// with its starting offset. It panics unless i is scalar aligned and in
// (0, Len()].
func (s Span) DecodePreviousScalar(i int) (rune, int) {
	s.checkOwner()
	s.checkStart(i)
	s.checkScalarAligned(i)
	return s.decodePreviousScalar(i)
}

// DecodePreviousScalarUnchecked is like [Span.DecodePreviousScalar] without
// the range check.
func (s Span) DecodePreviousScalarUnchecked(i int) (rune, int) {
	s.checkScalarAligned(i)
	return s.decodePreviousScalar(i)
}

// DecodePreviousScalarUncheckedAssumingAligned is like
// [Span.DecodePreviousScalar] without range or alignment checks.
func (s Span) DecodePreviousScalarUncheckedAssumingAligned(i int) (rune, int) {
	return s.decodePreviousScalar(i)
}

// ScalarCount returns the number of scalars in the span.
func (s Span) ScalarCount() int {
	s.checkOwner()
	if s.flags&flagASCII != 0 {
		return len(s.b)
	}
	n := 0
	for _, c := range s.b {
		if !isContinuation(c) {
			n++
		}
	}
	return n
}
