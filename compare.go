package utf8span

import (
	"bytes"
	"iter"

	"golang.org/x/text/unicode/norm"
)

// BytesEqual reports whether s and other hold the same bytes.
func (s Span) BytesEqual(other Span) bool {
	s.checkOwner()
	other.checkOwner()
	return bytes.Equal(s.b, other.b)
}

// BytesEqualTo reports whether s holds exactly the bytes b.
func (s Span) BytesEqualTo(b []byte) bool {
	s.checkOwner()
	return bytes.Equal(s.b, b)
}

// ScalarsEqual reports whether the scalars of s are, in order, the values
// produced by seq. Neither side is materialized; comparison stops at the
// first difference.
func (s Span) ScalarsEqual(seq iter.Seq[rune]) bool {
	s.checkOwner()
	next, stop := iter.Pull(seq)
	defer stop()
	for i := 0; i < len(s.b); {
		r, after := s.decodeNextScalar(i)
		o, ok := next()
		if !ok || o != r {
			return false
		}
		i = after
	}
	_, more := next()
	return !more
}

// CharactersEqual reports whether the characters of s are, in order, the
// strings produced by seq. Each string is compared byte for byte with one
// character of s; comparison stops at the first difference.
func (s Span) CharactersEqual(seq iter.Seq[string]) bool {
	s.checkOwner()
	next, stop := iter.Pull(seq)
	defer stop()
	for i := 0; i < len(s.b); {
		after := s.nextCharacterStart(i)
		o, ok := next()
		if !ok || string(s.b[i:after]) != o {
			return false
		}
		i = after
	}
	_, more := next()
	return !more
}

// IsCanonicallyEquivalent reports whether s and other denote the same text
// under Unicode canonical equivalence, that is, whether their NFC forms are
// identical.
func (s Span) IsCanonicallyEquivalent(other Span) bool {
	s.checkOwner()
	other.checkOwner()
	if bytes.Equal(s.b, other.b) {
		return true
	}
	if s.flags&flagNFC != 0 && other.flags&flagNFC != 0 {
		return false
	}
	return compareNFC(s, other) == 0
}

// IsCanonicallyLessThan reports whether the NFC form of s sorts before the
// NFC form of other, comparing code units lexicographically. For UTF-8 this
// is also scalar order.
func (s Span) IsCanonicallyLessThan(other Span) bool {
	s.checkOwner()
	other.checkOwner()
	if s.flags&flagNFC != 0 && other.flags&flagNFC != 0 {
		return bytes.Compare(s.b, other.b) < 0
	}
	return compareNFC(s, other) < 0
}

// nfcStream yields the NFC form of a span in segments. A span known to be
// in NFC is its own single segment.
type nfcStream struct {
	it  norm.Iter
	nfc bool
	seg []byte
}

func (ns *nfcStream) init(s Span) {
	if s.flags&flagNFC != 0 {
		ns.nfc = true
		ns.seg = s.b
		return
	}
	ns.it.Init(norm.NFC, s.b)
}

// fill makes sure seg is non-empty unless the stream is exhausted, and
// reports whether it is.
func (ns *nfcStream) fill() bool {
	for len(ns.seg) == 0 {
		if ns.nfc || ns.it.Done() {
			return false
		}
		ns.seg = ns.it.Next()
	}
	return true
}

// compareNFC compares the NFC forms of a and b, normalizing only as far as
// the first difference.
func compareNFC(a, b Span) int {
	var sa, sb nfcStream
	sa.init(a)
	sb.init(b)
	for {
		moreA, moreB := sa.fill(), sb.fill()
		switch {
		case !moreA && !moreB:
			return 0
		case !moreA:
			return -1
		case !moreB:
			return 1
		}
		n := min(len(sa.seg), len(sb.seg))
		if c := bytes.Compare(sa.seg[:n], sb.seg[:n]); c != 0 {
			return c
		}
		sa.seg = sa.seg[n:]
		sb.seg = sb.seg[n:]
	}
}
