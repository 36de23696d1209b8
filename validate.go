package utf8span

import "unsafe"

// The default lowest and highest continuation byte.
const (
	locb = 0x80 // 1000 0000
	hicb = 0xbf // 1011 1111
)

// Lead byte classes. The values at or above "as" are one-byte outcomes: ASCII
// or one of the three kinds of bytes that can never start a scalar. Below
// that, the high nibble indexes acceptRanges and the low nibble is the
// sequence length.
const (
	as = 0xf0 // ASCII: size 1
	uc = 0xf1 // continuation byte where a lead was expected
	ol = 0xf2 // 0xC0, 0xC1: always overlong
	iv = 0xf3 // 0xF5-0xFF: always above U+10FFFF
	s1 = 0x02 // accept 0, size 2
	s2 = 0x13 // accept 1, size 3
	s3 = 0x03 // accept 0, size 3
	s4 = 0x23 // accept 2, size 3
	s5 = 0x34 // accept 3, size 4
	s6 = 0x04 // accept 0, size 4
	s7 = 0x44 // accept 4, size 4

	sizeMask    = 7
	acceptShift = 4
)

// first is information about the first byte in a UTF-8 sequence.
var first = [256]uint8{
	//   1   2   3   4   5   6   7   8   9   A   B   C   D   E   F
	as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, // 0x00-0x0F
	as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, // 0x10-0x1F
	as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, // 0x20-0x2F
	as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, // 0x30-0x3F
	as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, // 0x40-0x4F
	as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, // 0x50-0x5F
	as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, // 0x60-0x6F
	as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, // 0x70-0x7F
	//   1   2   3   4   5   6   7   8   9   A   B   C   D   E   F
	uc, uc, uc, uc, uc, uc, uc, uc, uc, uc, uc, uc, uc, uc, uc, uc, // 0x80-0x8F
	uc, uc, uc, uc, uc, uc, uc, uc, uc, uc, uc, uc, uc, uc, uc, uc, // 0x90-0x9F
	uc, uc, uc, uc, uc, uc, uc, uc, uc, uc, uc, uc, uc, uc, uc, uc, // 0xA0-0xAF
	uc, uc, uc, uc, uc, uc, uc, uc, uc, uc, uc, uc, uc, uc, uc, uc, // 0xB0-0xBF
	ol, ol, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, // 0xC0-0xCF
	s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, // 0xD0-0xDF
	s2, s3, s3, s3, s3, s3, s3, s3, s3, s3, s3, s3, s3, s4, s3, s3, // 0xE0-0xEF
	s5, s6, s6, s6, s7, iv, iv, iv, iv, iv, iv, iv, iv, iv, iv, iv, // 0xF0-0xFF
}

// acceptRange gives the range of valid values for the second byte in a UTF-8
// sequence, and the kind of error a continuation byte outside of it denotes.
type acceptRange struct {
	lo   uint8 // lowest value for second byte.
	hi   uint8 // highest value for second byte.
	kind ErrorKind
}

// acceptRanges has size 16 to avoid bounds checks in the code that uses it.
var acceptRanges = [16]acceptRange{
	0: {locb, hicb, OverlongEncodingByte},
	1: {0xa0, hicb, OverlongEncodingByte},             // E0: below A0 is overlong
	2: {locb, 0x9f, SurrogateCodePointByte},           // ED: above 9F is U+D800-U+DFFF
	3: {0x90, hicb, OverlongEncodingByte},             // F0: below 90 is overlong
	4: {locb, 0x8f, InvalidNonSurrogateCodePointByte}, // F4: above 8F is beyond U+10FFFF
}

// scalarStep examines the sequence starting at b[i], which must not be ASCII
// for the fast paths in callers to matter, and returns the offset at which
// scanning resumes. If the sequence is ill-formed, failed is true and the
// ill-formed bytes are b[i:next]. A TruncatedScalar covers all of them; any
// other kind applies to each of those bytes individually.
func scalarStep(b []byte, i int) (next int, kind ErrorKind, failed bool) {
	n := len(b)
	x := first[b[i]]
	if x >= as {
		switch x {
		case as:
			return i + 1, 0, false
		case uc:
			return i + 1, UnexpectedContinuationByte, true
		case ol:
			return i + 1, OverlongEncodingByte, true
		default:
			return i + 1, InvalidNonSurrogateCodePointByte, true
		}
	}
	size := int(x & sizeMask)
	accept := acceptRanges[x>>acceptShift]

	// The first continuation byte carries the tightened range. A byte that is
	// not a continuation at all means the sequence was cut short; one that is
	// a continuation but out of range identifies the sequence as overlong,
	// a surrogate, or too large.
	if i+1 >= n {
		return i + 1, TruncatedScalar, true
	}
	if c := b[i+1]; c < locb || hicb < c {
		return i + 1, TruncatedScalar, true
	} else if c < accept.lo || accept.hi < c {
		return i + 2, accept.kind, true
	}
	for j := 2; j < size; j++ {
		if i+j >= n {
			return i + j, TruncatedScalar, true
		}
		if c := b[i+j]; c < locb || hicb < c {
			return i + j, TruncatedScalar, true
		}
	}
	return i + size, 0, false
}

// firstError returns the first error reported for the ill-formed bytes
// b[i:next] produced by scalarStep.
func firstError(kind ErrorKind, i, next int) EncodingError {
	if kind == TruncatedScalar {
		return EncodingError{Kind: kind, Range: Range{i, next}}
	}
	return EncodingError{Kind: kind, Range: Range{i, i + 1}}
}

// validate scans b from the start and stops at the first ill-formed
// subsequence. It reports whether all bytes were ASCII.
func validate(b []byte) (ascii bool, err *EncodingError) {
	n := len(b)
	ascii = true
	i := 0
	for i < n {
		// Eight bytes at a time while the input stays ASCII.
		if ascii {
			for n-i >= 8 {
				first32 := uint32(b[i]) | uint32(b[i+1])<<8 | uint32(b[i+2])<<16 | uint32(b[i+3])<<24
				second32 := uint32(b[i+4]) | uint32(b[i+5])<<8 | uint32(b[i+6])<<16 | uint32(b[i+7])<<24
				if (first32|second32)&0x80808080 != 0 {
					break
				}
				i += 8
			}
			if i >= n {
				break
			}
		}
		if b[i] < 0x80 {
			i++
			continue
		}
		ascii = false
		next, kind, failed := scalarStep(b, i)
		if failed {
			e := firstError(kind, i, next)
			return false, &e
		}
		i = next
	}
	return ascii, nil
}

// Validate checks that b holds valid UTF-8 and returns a span viewing it.
// On failure it returns the first [EncodingError] in scan order and no span.
//
// The span does not copy b. The caller must not modify b while the span or
// anything derived from it is in use.
func Validate(b []byte) (Span, error) {
	ascii, err := validate(b)
	if err != nil {
		return Span{}, *err
	}
	s := Span{b: b}
	if ascii {
		s.flags = flagASCII | flagNFC
	}
	return s, nil
}

// ValidateString is like [Validate] but views the storage of str without
// copying it. Go strings are immutable, so the resulting span can never
// observe a modification. The bytes returned by [Span.Bytes] for such a span
// must never be written to.
func ValidateString(str string) (Span, error) {
	return Validate(unsafe.Slice(unsafe.StringData(str), len(str)))
}

// AllErrors scans all of b and returns every ill-formed subsequence in scan
// order, resuming after each one by the same rules [Validate] uses. It
// returns nil if b is valid UTF-8.
func AllErrors(b []byte) []EncodingError {
	var errs []EncodingError
	for i := 0; i < len(b); {
		if b[i] < 0x80 {
			i++
			continue
		}
		next, kind, failed := scalarStep(b, i)
		if failed {
			if kind == TruncatedScalar {
				errs = append(errs, EncodingError{Kind: kind, Range: Range{i, next}})
			} else {
				for j := i; j < next; j++ {
					errs = append(errs, EncodingError{Kind: kind, Range: Range{j, j + 1}})
				}
			}
		}
		i = next
	}
	return errs
}
