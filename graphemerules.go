package utf8span

// grState is the state of the grapheme cluster parser. The low byte holds the
// base state, bits 8-11 the Indic conjunct tracking for rule GB9c.
type grState uint16

// The base states of the grapheme cluster parser.
const (
	grAny grState = iota
	grCR
	grControlLF
	grL
	grLVV
	grLVTT
	grPrepend
	grExtendedPictographic
	grExtendedPictographicZWJ
	grRIOdd
	grRIEven

	// grNone is returned by grTransitions when no transition is listed.
	grNone grState = 0xff
)

// GB9c InCB state tracking constants (stored in upper bits of state).
const (
	grInCBNone      grState = 0x0000 // No InCB tracking / InCB=None
	grInCBConsonant grState = 0x0100 // Seen InCB=Consonant
	grInCBExtend    grState = 0x0200 // Seen InCB=Consonant + [Extend]* (no Linker yet)
	grInCBLinker    grState = 0x0300 // Seen InCB=Consonant + [Extend|Linker]*Linker[Extend|Linker]*
	grInCBMask      grState = 0x0f00
	grBaseMask      grState = 0x00ff
)

// ruleDefault is the rule number of transitions that only establish a state.
// It loses against every numbered rule.
const ruleDefault = 9990

// grTransitions implements the grapheme cluster parser's state transitions.
// Maps state and property to a new state, whether the boundary between the
// last and the next code point is a cluster boundary, and the rule number
// (GBn is rule n*10). Returns grNone if no transition is listed.
//
// Transitions are resolved as follows:
//
//  1. Find specific state + specific property. Stop if found.
//  2. Find specific state + any property.
//  3. Find any state + specific property.
//  4. If only (2) or (3) (but not both) was found, stop.
//  5. If both (2) and (3) were found, use state from (3) and the boundary
//     from the transition with the lower rule number, prefer (3) if rule
//     numbers are equal. Stop.
//  6. Assume grAny and a boundary (GB999).
func grTransitions(state grState, prop gcbProperty) (newState grState, boundary bool, rule int) {
	// A switch over a combined key is much faster than a map.
	switch uint32(state) | uint32(prop)<<16 {
	// GB5
	case uint32(grAny) | uint32(prCR)<<16:
		return grCR, true, 50
	case uint32(grAny) | uint32(prLF)<<16:
		return grControlLF, true, 50
	case uint32(grAny) | uint32(prControl)<<16:
		return grControlLF, true, 50

	// GB4
	case uint32(grCR) | uint32(prAny)<<16:
		return grAny, true, 40
	case uint32(grControlLF) | uint32(prAny)<<16:
		return grAny, true, 40

	// GB3
	case uint32(grCR) | uint32(prLF)<<16:
		return grControlLF, false, 30

	// GB6
	case uint32(grAny) | uint32(prL)<<16:
		return grL, true, ruleDefault
	case uint32(grL) | uint32(prL)<<16:
		return grL, false, 60
	case uint32(grL) | uint32(prV)<<16:
		return grLVV, false, 60
	case uint32(grL) | uint32(prLV)<<16:
		return grLVV, false, 60
	case uint32(grL) | uint32(prLVT)<<16:
		return grLVTT, false, 60

	// GB7
	case uint32(grAny) | uint32(prLV)<<16:
		return grLVV, true, ruleDefault
	case uint32(grAny) | uint32(prV)<<16:
		return grLVV, true, ruleDefault
	case uint32(grLVV) | uint32(prV)<<16:
		return grLVV, false, 70
	case uint32(grLVV) | uint32(prT)<<16:
		return grLVTT, false, 70

	// GB8
	case uint32(grAny) | uint32(prLVT)<<16:
		return grLVTT, true, ruleDefault
	case uint32(grAny) | uint32(prT)<<16:
		return grLVTT, true, ruleDefault
	case uint32(grLVTT) | uint32(prT)<<16:
		return grLVTT, false, 80

	// GB9
	case uint32(grAny) | uint32(prExtend)<<16:
		return grAny, false, 90
	case uint32(grAny) | uint32(prZWJ)<<16:
		return grAny, false, 90

	// GB9a
	case uint32(grAny) | uint32(prSpacingMark)<<16:
		return grAny, false, 91

	// GB9b
	case uint32(grAny) | uint32(prPrepend)<<16:
		return grPrepend, true, ruleDefault
	case uint32(grPrepend) | uint32(prAny)<<16:
		return grAny, false, 92

	// GB11
	case uint32(grAny) | uint32(prExtendedPictographic)<<16:
		return grExtendedPictographic, true, ruleDefault
	case uint32(grExtendedPictographic) | uint32(prExtend)<<16:
		return grExtendedPictographic, false, 110
	case uint32(grExtendedPictographic) | uint32(prZWJ)<<16:
		return grExtendedPictographicZWJ, false, 110
	case uint32(grExtendedPictographicZWJ) | uint32(prExtendedPictographic)<<16:
		return grExtendedPictographic, false, 110

	// GB12 / GB13
	case uint32(grAny) | uint32(prRegionalIndicator)<<16:
		return grRIOdd, true, ruleDefault
	case uint32(grRIOdd) | uint32(prRegionalIndicator)<<16:
		return grRIEven, false, 120
	case uint32(grRIEven) | uint32(prRegionalIndicator)<<16:
		return grRIOdd, true, 120
	default:
		return grNone, false, -1
	}
}

// transitionGraphemeState determines the new state of the grapheme cluster
// parser given the current state and the next code point. It also returns the
// code point's grapheme property and whether a cluster boundary precedes the
// code point.
func transitionGraphemeState(state grState, r rune) (newState grState, prop gcbProperty, boundary bool) {
	prop = propertyGraphemes(r)
	incbState := state & grInCBMask
	state &= grBaseMask

	// Find the applicable transition.
	if next, brk, _ := grTransitions(state, prop); next != grNone {
		newState, boundary = next, brk
	} else {
		// No specific transition found. Try the less specific ones.
		anyPropState, anyPropBoundary, anyPropRule := grTransitions(state, prAny)
		anyStateState, anyStateBoundary, anyStateRule := grTransitions(grAny, prop)
		switch {
		case anyPropState != grNone && anyStateState != grNone:
			newState, boundary = anyStateState, anyStateBoundary
			if anyPropRule < anyStateRule {
				boundary = anyPropBoundary
			}
		case anyPropState != grNone:
			newState, boundary = anyPropState, anyPropBoundary
		case anyStateState != grNone:
			newState, boundary = anyStateState, anyStateBoundary
		default:
			// GB999: Any ÷ Any.
			newState, boundary = grAny, true
		}
	}

	// GB9c: \p{InCB=Consonant} [\p{InCB=Extend}\p{InCB=Linker}]* \p{InCB=Linker}
	// [\p{InCB=Extend}\p{InCB=Linker}]* × \p{InCB=Consonant}
	switch propertyInCB(r, prop) {
	case prInCBConsonant:
		if incbState == grInCBLinker {
			boundary = false
		}
		newState |= grInCBConsonant
	case prInCBLinker:
		if incbState != grInCBNone {
			newState |= grInCBLinker
		}
	case prInCBExtend:
		switch incbState {
		case grInCBConsonant, grInCBExtend:
			newState |= grInCBExtend
		case grInCBLinker:
			newState |= grInCBLinker
		}
	}
	return
}

// joinsAcross reports whether a break between a code point with property
// left and one with property right could be suppressed by code points further
// to the left. Only GB9c, GB11, and GB12/GB13 look further back than one
// code point.
func joinsAcross(left, right gcbProperty, rightInCB incbProperty) bool {
	switch {
	case left == prZWJ && right == prExtendedPictographic:
		return true
	case left == prRegionalIndicator && right == prRegionalIndicator:
		return true
	case rightInCB == prInCBConsonant && (left == prExtend || left == prZWJ):
		// Linkers are Extend as well.
		return true
	}
	return false
}
