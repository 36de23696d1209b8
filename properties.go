package utf8span

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

//go:generate go run gen_properties.go

// gcbProperty is a Grapheme_Cluster_Break property value (UAX #29), plus
// the Extended_Pictographic property which the break rules treat alike.
type gcbProperty uint8

const (
	prAny                  gcbProperty = iota // Default/any property (must be 0)
	prPrepend                                 // Characters that don't break before following char
	prCR                                      // Carriage return
	prLF                                      // Line feed
	prControl                                 // Control characters
	prExtend                                  // Extending characters (combining marks)
	prRegionalIndicator                       // Flag emoji components (paired)
	prSpacingMark                             // Spacing combining marks
	prL                                       // Hangul leading consonant (Jamo L)
	prV                                       // Hangul vowel (Jamo V)
	prT                                       // Hangul trailing consonant (Jamo T)
	prLV                                      // Hangul syllable LV
	prLVT                                     // Hangul syllable LVT
	prZWJ                                     // Zero Width Joiner
	prExtendedPictographic                    // Emoji and pictographic characters
)

// incbProperty is an Indic_Conjunct_Break property value, used by rule GB9c.
type incbProperty uint8

const (
	prInCBNone      incbProperty = iota // Default - not part of conjunct
	prInCBLinker                        // Virama - links consonants in conjuncts
	prInCBConsonant                     // Consonant - can form conjuncts
	prInCBExtend                        // Extend - extends within conjuncts
)

// Hangul syllable arithmetic (Unicode chapter 3.12).
const (
	hangulSBase  = 0xac00
	hangulSCount = 11172
	hangulTCount = 28
)

// propertyRange assigns a property value to the code points lo through hi.
type propertyRange[P ~uint8] struct {
	lo, hi rune
	prop   P
}

// propertySearch performs a binary search on a sorted property table.
// Returns the matching entry's property, or the zero value if not found.
func propertySearch[P ~uint8](dictionary []propertyRange[P], r rune) P {
	// Run a binary search.
	from := 0
	to := len(dictionary)
	for to > from {
		middle := (from + to) / 2
		cpRange := dictionary[middle]
		if r < cpRange.lo {
			to = middle
			continue
		}
		if r > cpRange.hi {
			from = middle + 1
			continue
		}
		return cpRange.prop
	}
	return 0
}

// propertyGraphemes returns the Unicode grapheme cluster property value of the
// given code point while fast tracking ASCII characters.
func propertyGraphemes(r rune) gcbProperty {
	if r >= 0x20 && r <= 0x7e {
		return prAny
	}
	if r == 0x0a {
		return prLF
	}
	if r == 0x0d {
		return prCR
	}
	if r >= 0 && r <= 0x1f || r >= 0x7f && r <= 0x9f {
		return prControl
	}
	if r < 0x0300 {
		// Latin-1 and the spacing modifier letters. U+00A9 and U+00AE are
		// pictographic; U+00AD is a format character.
		switch r {
		case 0xa9, 0xae:
			return prExtendedPictographic
		case 0xad:
			return prControl
		}
		return prAny
	}
	return propertyGraphemesSlow(r)
}

// propertyGraphemesSlow classifies code points from U+0300 up. Tables for
// properties that Go's unicode package does not carry live in
// propertytables.go; everything else is derived from general categories as
// UAX #29 defines it.
func propertyGraphemesSlow(r rune) gcbProperty {
	switch {
	case r == 0x200d:
		return prZWJ
	case r == 0x200c:
		return prExtend
	case r >= 0x1f1e6 && r <= 0x1f1ff:
		return prRegionalIndicator
	case r >= 0x1f3fb && r <= 0x1f3ff:
		// Emoji modifiers.
		return prExtend
	}
	if p := hangulProperty(r); p != prAny {
		return p
	}
	if p := propertySearch(graphemeCodePoints, r); p != prAny {
		return p
	}
	if unicode.In(r, unicode.Mn, unicode.Me, unicode.Other_Grapheme_Extend) {
		return prExtend
	}
	if unicode.In(r, unicode.Cc, unicode.Cf, unicode.Zl, unicode.Zp) {
		return prControl
	}
	if unicode.Is(unicode.Other_Default_Ignorable_Code_Point, r) && !unicode.In(r, unicode.L, unicode.M) {
		// Unassigned default ignorables.
		return prControl
	}
	if unicode.Is(unicode.Mc, r) {
		if unicode.Is(spacingMarkExceptions, r) {
			return prAny
		}
		return prSpacingMark
	}
	return prAny
}

// hangulProperty returns the Hangul-specific property of r, or prAny.
func hangulProperty(r rune) gcbProperty {
	switch {
	case r < 0x1100:
		return prAny
	case r <= 0x115f, r >= 0xa960 && r <= 0xa97c:
		return prL
	case r <= 0x11a7, r >= 0xd7b0 && r <= 0xd7c6:
		return prV
	case r <= 0x11ff, r >= 0xd7cb && r <= 0xd7fb:
		return prT
	case r >= hangulSBase && r < hangulSBase+hangulSCount:
		if (r-hangulSBase)%hangulTCount == 0 {
			return prLV
		}
		return prLVT
	}
	return prAny
}

// propertyInCB returns the Indic_Conjunct_Break property value for the given
// code point. This is used for the GB9c grapheme cluster boundary rule.
func propertyInCB(r rune, prop gcbProperty) incbProperty {
	// Fast track Latin - no InCB properties
	if r < 0x0300 {
		return prInCBNone
	}
	if p := propertySearch(incbCodePoints, r); p != prInCBNone {
		return p
	}
	if prop == prZWJ {
		return prInCBExtend
	}
	if prop == prExtend && combiningClass(r) != 0 {
		return prInCBExtend
	}
	return prInCBNone
}

// combiningClass returns the canonical combining class of r.
func combiningClass(r rune) uint8 {
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)
	return norm.NFD.Properties(buf[:n]).CCC()
}
