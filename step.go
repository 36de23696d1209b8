package utf8span

// stepCharacter returns the end of the grapheme cluster (user-perceived
// character) that starts at the cluster boundary i < Len(). Running the
// parser from grAny is correct at any cluster boundary: none of the rules
// that look back more than one code point can reach across a boundary.
func (s Span) stepCharacter(i int) int {
	b := s.b
	n := len(b)

	// ASCII other than CR breaks before any following ASCII.
	if c := b[i]; c < 0x80 {
		switch {
		case i+1 == n:
			return n
		case c == '\r':
			if b[i+1] == '\n' {
				return i + 2
			}
			return i + 1
		case b[i+1] < 0x80:
			return i + 1
		}
	}

	r, next := s.decodeNextScalar(i)
	state, _, _ := transitionGraphemeState(grAny, r)
	for next < n {
		r, after := s.decodeNextScalar(next)
		var boundary bool
		state, _, boundary = transitionGraphemeState(state, r)
		if boundary {
			return next
		}
		next = after
	}
	return n
}

// pairBreaks reports whether there is a cluster boundary between left and
// right no matter what precedes left.
func pairBreaks(left, right rune) bool {
	state, leftProp, _ := transitionGraphemeState(grAny, left)
	_, rightProp, boundary := transitionGraphemeState(state, right)
	if !boundary {
		return false
	}
	return !joinsAcross(leftProp, rightProp, propertyInCB(right, rightProp))
}

// anchorAtOrBefore walks back from the scalar aligned offset i to the nearest
// offset that is a cluster boundary regardless of earlier context.
func (s Span) anchorAtOrBefore(i int) int {
	j := i
	for j > 0 && j < len(s.b) {
		if s.regionalIndicatorAt(j) {
			// Regional indicators pair up from the start of their run (GB12,
			// GB13), so the parity of the run before j decides.
			if n := s.regionalIndicatorsBefore(j); n > 0 {
				if n%2 == 0 {
					return j
				}
				if n > 1 {
					return j - 4
				}
			}
		}
		right, _ := s.decodeNextScalar(j)
		left, start := s.decodePreviousScalar(j)
		if pairBreaks(left, right) {
			return j
		}
		j = start
	}
	return j
}

// regionalIndicatorAt reports whether a regional indicator (U+1F1E6 to
// U+1F1FF, encoded F0 9F 87 A6-BF) starts at the scalar aligned offset i.
func (s Span) regionalIndicatorAt(i int) bool {
	b := s.b
	return i+4 <= len(b) && b[i] == 0xf0 && b[i+1] == 0x9f && b[i+2] == 0x87 && b[i+3] >= 0xa6
}

// regionalIndicatorsBefore counts the regional indicators that end at the
// scalar aligned offset i.
func (s Span) regionalIndicatorsBefore(i int) int {
	n := 0
	for i >= 4 && s.regionalIndicatorAt(i-4) {
		n++
		i -= 4
	}
	return n
}

// characterStartAtOrBefore returns the largest cluster boundary that is not
// greater than the scalar aligned offset i.
func (s Span) characterStartAtOrBefore(i int) int {
	if i == 0 || i == len(s.b) {
		return i
	}
	if s.flags&flagSingleScalar != 0 {
		return i
	}
	p := s.anchorAtOrBefore(i)
	for p < i {
		q := s.stepCharacter(p)
		if q > i {
			break
		}
		p = q
	}
	return p
}
