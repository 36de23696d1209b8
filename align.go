package utf8span

// ScalarAlignBackwards returns i if it is scalar aligned and otherwise the
// start of the scalar containing it. It panics if i is outside [0, Len()].
func (s Span) ScalarAlignBackwards(i int) int {
	s.checkOwner()
	s.checkBounds(i)
	return s.scalarAlignBackwards(i)
}

// ScalarAlignForwards returns i if it is scalar aligned and otherwise the
// end of the scalar containing it. It panics if i is outside [0, Len()].
func (s Span) ScalarAlignForwards(i int) int {
	s.checkOwner()
	s.checkBounds(i)
	return s.scalarAlignForwards(i)
}

// CharacterAlignBackwards returns i if it is character aligned and otherwise
// the start of the character containing it. It panics if i is outside
// [0, Len()].
func (s Span) CharacterAlignBackwards(i int) int {
	s.checkOwner()
	s.checkBounds(i)
	return s.characterStartAtOrBefore(s.scalarAlignBackwards(i))
}

// CharacterAlignForwards returns i if it is character aligned and otherwise
// the end of the character containing it. It panics if i is outside
// [0, Len()].
func (s Span) CharacterAlignForwards(i int) int {
	s.checkOwner()
	s.checkBounds(i)
	j := s.scalarAlignForwards(i)
	p := s.characterStartAtOrBefore(j)
	if p == j {
		return j
	}
	return s.nextCharacterStart(p)
}

func (s Span) scalarAlignBackwards(i int) int {
	for i > 0 && i < len(s.b) && isContinuation(s.b[i]) {
		i--
	}
	return i
}

func (s Span) scalarAlignForwards(i int) int {
	for i < len(s.b) && isContinuation(s.b[i]) {
		i++
	}
	return i
}
