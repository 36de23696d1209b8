package utf8span

import "fmt"

// spanFlags caches facts about the content of a span. Flags are only ever
// set, never cleared.
type spanFlags uint8

const (
	flagASCII spanFlags = 1 << iota
	flagNFC
	flagSingleScalar
)

// Span is a read-only view of a byte slice that is known to hold valid
// UTF-8. It does not own the bytes it views.
//
// A Span is created by [Validate], [ValidateString], [Buffer.Span], or, when
// validity is established by other means, [UnsafeAssumingValid]. The zero
// Span is a valid empty span.
//
// Positions passed to Span methods are byte offsets into the viewed bytes.
// Methods without a suffix check that a position lies within [0, Len()] and
// is aligned as required, and panic otherwise. The "Unchecked" variants skip
// the range check and the "UncheckedAssumingAligned" variants skip the
// alignment check as well; passing them a bad position yields unspecified
// results or a runtime panic.
//
// All methods except [Span.CheckForNFC] and [Span.CheckForSingleScalarCharacters]
// only read the span and may be called concurrently. Those two update the
// span's cached flags and must not run concurrently with any other use of
// the same Span value.
type Span struct {
	b     []byte
	flags spanFlags

	// Set for spans handed out by a Buffer.
	owner *Buffer
	gen   uint64
}

// UnsafeAssumingValid returns a span viewing b without validating it. The
// caller guarantees that b is valid UTF-8; every Span operation relies on it.
// No content flags are set.
func UnsafeAssumingValid(b []byte) Span {
	return Span{b: b}
}

// Len returns the number of bytes in the span.
func (s Span) Len() int {
	return len(s.b)
}

// IsEmpty reports whether the span has no bytes.
func (s Span) IsEmpty() bool {
	return len(s.b) == 0
}

// Bytes returns the viewed bytes. The slice aliases the span's storage and
// must not be modified.
func (s Span) Bytes() []byte {
	s.checkOwner()
	return s.b
}

// String returns a copy of the span's content as a Go string.
func (s Span) String() string {
	s.checkOwner()
	return string(s.b)
}

// Slice returns the sub-span for the byte range [lo, hi). Both ends must be
// scalar aligned.
func (s Span) Slice(lo, hi int) Span {
	s.checkOwner()
	if lo < 0 || hi < lo || hi > len(s.b) {
		panic(fmt.Sprintf("utf8span: slice bounds [%d:%d] out of range [0, %d]", lo, hi, len(s.b)))
	}
	s.checkScalarAligned(lo)
	s.checkScalarAligned(hi)
	return s.sub(lo, hi)
}

// sub returns the sub-span for [lo, hi), which the caller guarantees is
// scalar aligned. Flags that hold for every substring are carried over.
func (s Span) sub(lo, hi int) Span {
	return Span{
		b:     s.b[lo:hi:hi],
		flags: inheritable(s.flags),
		owner: s.owner,
		gen:   s.gen,
	}
}

// inheritable returns the flags a substring keeps: ASCII text stays ASCII
// (and therefore NFC). Nothing else survives slicing.
func inheritable(f spanFlags) spanFlags {
	if f&flagASCII != 0 {
		return flagASCII | flagNFC
	}
	return 0
}

// checkOwner panics if the span came from a Buffer whose content has been
// replaced since.
func (s Span) checkOwner() {
	if s.owner != nil && s.owner.gen.Load() != s.gen {
		panic("utf8span: span is invalid after buffer reuse")
	}
}

// checkBounds panics unless 0 <= i <= Len().
func (s Span) checkBounds(i int) {
	if i < 0 || i > len(s.b) {
		panic(fmt.Sprintf("utf8span: offset %d out of range [0, %d]", i, len(s.b)))
	}
}

// checkInterior panics unless 0 <= i < Len().
func (s Span) checkInterior(i int) {
	if i < 0 || i >= len(s.b) {
		panic(fmt.Sprintf("utf8span: offset %d out of range [0, %d)", i, len(s.b)))
	}
}

// checkStart panics unless 0 < i <= Len().
func (s Span) checkStart(i int) {
	if i <= 0 || i > len(s.b) {
		panic(fmt.Sprintf("utf8span: offset %d out of range (0, %d]", i, len(s.b)))
	}
}

func (s Span) checkScalarAligned(i int) {
	if !s.isScalarAligned(i) {
		panic(fmt.Sprintf("utf8span: offset %d is not scalar aligned", i))
	}
}

func (s Span) checkCharacterAligned(i int) {
	if !s.isCharacterAligned(i) {
		panic(fmt.Sprintf("utf8span: offset %d is not character aligned", i))
	}
}
