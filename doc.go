/*
Package utf8span provides Span, a read-only view of a byte slice that is
guaranteed to hold valid UTF-8, along with the operations that this guarantee
makes cheap: navigating scalar and character boundaries, and comparing text by
bytes, scalars, characters, or Unicode canonical equivalence.

This package conforms to:
  - The Unicode Standard, chapter 3.9, for UTF-8 well-formedness and the
    "maximal subpart" practice for reporting ill-formed subsequences
  - Unicode Standard Annex #29 (https://unicode.org/reports/tr29/) for
    extended grapheme clusters
  - Unicode Standard Annex #15 (https://unicode.org/reports/tr15/) for
    Normalization Form C

# Unicode Versions

Character properties come from three sources that need not agree on a
Unicode version. Prepend, Extended_Pictographic and Indic_Conjunct_Break are
generated tables at [UnicodeVersion]. Extend, Control and SpacingMark are
derived from the general categories in Go's [unicode] package
([unicode.Version]). Canonical equivalence and NFC checks use
golang.org/x/text/unicode/norm, which carries its own version. Code points
whose properties changed between these versions, such as linker and
virama characters added to InCB=Linker in later releases, may segment
differently than the newest UAX #29 test data expects.

# Getting Started

A span is created by validating bytes:

	s, err := utf8span.Validate(b)
	if err != nil {
		var e utf8span.EncodingError
		errors.As(err, &e) // e.Kind, e.Range
	}

Validation stops at the first ill-formed subsequence. [AllErrors] reports all
of them instead.

# Positions

Positions are byte offsets. A position is scalar aligned if it is 0, the
length of the span, or the offset of a byte that starts a scalar. It is
character aligned if it is also a grapheme cluster boundary.

Navigation comes in three flavors. The plain methods check that a position is
in range and aligned, and panic if it is not: passing a bad position is a
programming error, not a condition to handle. The Unchecked methods skip the
range check and the UncheckedAssumingAligned methods skip the alignment check
too, for callers that already know both hold.

	for i := 0; i < s.Len(); {
		r, next := s.DecodeNextScalar(i)
		fmt.Println(i, r)
		i = next
	}

[Span.Scalars], [Span.Characters], [ScalarIterator] and [CharacterIterator]
offer the same traversal in iterator form.

# Characters

A character is what users perceive as a single unit, for example an "e"
followed by a combining acute accent, a flag made of two regional indicators,
or an emoji ZWJ sequence. Character boundaries are found with the UAX #29
rules, including the Indic conjunct rule GB9c.

# Comparison

[Span.BytesEqual] compares bytes. [Span.ScalarsEqual] and
[Span.CharactersEqual] compare against another sequence lazily.
[Span.IsCanonicallyEquivalent] and [Span.IsCanonicallyLessThan] compare the
NFC forms of two spans, normalizing incrementally and only as far as needed.

# Cached Flags

A span caches three facts about its content: whether it is ASCII (known
after validation), whether it is in NFC, and whether all of its characters
are single scalars. The latter two are established by [Span.CheckForNFC] and
[Span.CheckForSingleScalarCharacters] and enable fast paths in comparison and
navigation. Flags are only ever set.

# Lifetime

A span does not own its bytes. The bytes must not be modified while a span
viewing them is in use. Spans created from a Go string with
[ValidateString] can never observe a modification. Spans handed out by a
[Buffer] are checked: once the buffer's content is replaced, any checked
operation on an older span panics.
*/
package utf8span
