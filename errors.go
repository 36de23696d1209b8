package utf8span

import "fmt"

// ErrorKind classifies why a byte sequence is not valid UTF-8.
type ErrorKind uint8

// The kinds of encoding errors reported by [Validate] and [AllErrors].
const (
	// UnexpectedContinuationByte is a continuation byte (0x80-0xBF) found
	// where a new scalar was expected.
	UnexpectedContinuationByte ErrorKind = iota

	// SurrogateCodePointByte is a byte belonging to a UTF-16 surrogate code
	// point (U+D800-U+DFFF) encoded as UTF-8.
	SurrogateCodePointByte

	// InvalidNonSurrogateCodePointByte is a byte belonging to a code point
	// above U+10FFFF, including the lead bytes 0xF5-0xFF.
	InvalidNonSurrogateCodePointByte

	// OverlongEncodingByte is a byte belonging to a scalar encoded with more
	// bytes than necessary, including the lead bytes 0xC0 and 0xC1.
	OverlongEncodingByte

	// TruncatedScalar is a multi-byte sequence cut off before completion.
	TruncatedScalar
)

// String returns the name of the error kind.
func (k ErrorKind) String() string {
	switch k {
	case UnexpectedContinuationByte:
		return "unexpectedContinuationByte"
	case SurrogateCodePointByte:
		return "surrogateCodePointByte"
	case InvalidNonSurrogateCodePointByte:
		return "invalidNonSurrogateCodePointByte"
	case OverlongEncodingByte:
		return "overlongEncodingByte"
	case TruncatedScalar:
		return "truncatedScalar"
	default:
		return fmt.Sprintf("ErrorKind(%d)", uint8(k))
	}
}

// Range is a half-open range of byte offsets [Lower, Upper).
type Range struct {
	Lower int
	Upper int
}

// Len returns the number of bytes covered by the range.
func (r Range) Len() int {
	return r.Upper - r.Lower
}

// String formats the range as "[lower, upper)".
func (r Range) String() string {
	return fmt.Sprintf("[%d, %d)", r.Lower, r.Upper)
}

// EncodingError describes an ill-formed UTF-8 subsequence. The range covers
// the maximal subpart of the ill-formed subsequence: a truncated multi-byte
// prefix is one error, while bytes of an overlong, surrogate, or out-of-range
// sequence are reported one byte at a time.
type EncodingError struct {
	Kind  ErrorKind
	Range Range
}

// Error implements the error interface.
func (e EncodingError) Error() string {
	return fmt.Sprintf("utf8span: %s at %s", e.Kind, e.Range)
}
