package utf8span

import "golang.org/x/text/unicode/norm"

// IsASCII reports whether the span is known to hold only ASCII. It is set by
// validation.
func (s Span) IsASCII() bool {
	return s.flags&flagASCII != 0
}

// IsKnownNFC reports whether the span is known to be in Normalization Form
// C. A false result means unknown, not "not NFC"; see [Span.CheckForNFC].
func (s Span) IsKnownNFC() bool {
	return s.flags&flagNFC != 0
}

// IsKnownSingleScalarCharacters reports whether every character of the span
// is known to consist of exactly one scalar. A false result means unknown;
// see [Span.CheckForSingleScalarCharacters].
func (s Span) IsKnownSingleScalarCharacters() bool {
	return s.flags&flagSingleScalar != 0
}

// CheckForNFC determines whether the span is in NFC and caches a positive
// result. With quickCheck, only a fast test is run that can prove but not
// disprove NFC, so false means "unknown". Without it, the answer is exact.
//
// CheckForNFC updates s and must not be called concurrently with any other
// method on the same Span.
func (s *Span) CheckForNFC(quickCheck bool) bool {
	if s.flags&flagNFC != 0 {
		return true
	}
	s.checkOwner()
	var nfc bool
	if quickCheck {
		nfc = norm.NFC.QuickSpan(s.b) == len(s.b)
	} else {
		nfc = norm.NFC.IsNormal(s.b)
	}
	if nfc {
		s.flags |= flagNFC
	}
	return nfc
}

// CheckForSingleScalarCharacters determines whether every character of the
// span is a single scalar and caches a positive result. With quickCheck,
// only a fast test is run that can prove but not disprove the property:
// it accepts spans whose scalars are all below U+0300 and that contain no
// CR LF pair. Without it, the span is segmented and the answer is exact.
//
// CheckForSingleScalarCharacters updates s and must not be called
// concurrently with any other method on the same Span.
func (s *Span) CheckForSingleScalarCharacters(quickCheck bool) bool {
	if s.flags&flagSingleScalar != 0 {
		return true
	}
	s.checkOwner()
	var single bool
	if quickCheck {
		single = s.belowCombiningMarks()
	} else {
		single = s.allCharactersSingleScalar()
	}
	if single {
		s.flags |= flagSingleScalar
	}
	return single
}

// belowCombiningMarks reports whether all scalars are below U+0300 and no CR
// is followed by LF. No scalar in that range extends or is extended by its
// neighbors other than CR LF, so every character is one scalar.
func (s Span) belowCombiningMarks() bool {
	b := s.b
	for i, c := range b {
		switch {
		case c == '\r':
			if i+1 < len(b) && b[i+1] == '\n' {
				return false
			}
		case c >= 0xcc:
			// Lead bytes from 0xCC encode U+0300 and above.
			return false
		}
	}
	return true
}

func (s Span) allCharactersSingleScalar() bool {
	for i := 0; i < len(s.b); {
		next := s.stepCharacter(i)
		if next != s.nextScalarStart(i) {
			return false
		}
		i = next
	}
	return true
}
