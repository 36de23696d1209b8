package utf8span

import "unicode"

// UnicodeVersion is the version of the Unicode Character Database that the
// grapheme break and Indic conjunct tables were generated from.
const UnicodeVersion = "15.1.0"

// graphemeCodePoints lists the grapheme break properties that cannot be
// derived from general categories: Prepend and the two Lo SpacingMarks from
// GraphemeBreakProperty.txt, and Extended_Pictographic from emoji-data.txt
// (Unicode 15.1). Run "go generate" to refresh it; see gen_properties.go.
var graphemeCodePoints = []propertyRange[gcbProperty]{
	{0x00a9, 0x00a9, prExtendedPictographic},
	{0x00ae, 0x00ae, prExtendedPictographic},
	{0x0600, 0x0605, prPrepend},
	{0x06dd, 0x06dd, prPrepend},
	{0x070f, 0x070f, prPrepend},
	{0x0890, 0x0891, prPrepend},
	{0x08e2, 0x08e2, prPrepend},
	{0x0d4e, 0x0d4e, prPrepend},
	{0x0e33, 0x0e33, prSpacingMark},
	{0x0eb3, 0x0eb3, prSpacingMark},
	{0x203c, 0x203c, prExtendedPictographic},
	{0x2049, 0x2049, prExtendedPictographic},
	{0x2122, 0x2122, prExtendedPictographic},
	{0x2139, 0x2139, prExtendedPictographic},
	{0x2194, 0x2199, prExtendedPictographic},
	{0x21a9, 0x21aa, prExtendedPictographic},
	{0x231a, 0x231b, prExtendedPictographic},
	{0x2328, 0x2328, prExtendedPictographic},
	{0x2388, 0x2388, prExtendedPictographic},
	{0x23cf, 0x23cf, prExtendedPictographic},
	{0x23e9, 0x23f3, prExtendedPictographic},
	{0x23f8, 0x23fa, prExtendedPictographic},
	{0x24c2, 0x24c2, prExtendedPictographic},
	{0x25aa, 0x25ab, prExtendedPictographic},
	{0x25b6, 0x25b6, prExtendedPictographic},
	{0x25c0, 0x25c0, prExtendedPictographic},
	{0x25fb, 0x25fe, prExtendedPictographic},
	{0x2600, 0x2605, prExtendedPictographic},
	{0x2607, 0x2612, prExtendedPictographic},
	{0x2614, 0x2685, prExtendedPictographic},
	{0x2690, 0x2705, prExtendedPictographic},
	{0x2708, 0x2712, prExtendedPictographic},
	{0x2714, 0x2714, prExtendedPictographic},
	{0x2716, 0x2716, prExtendedPictographic},
	{0x271d, 0x271d, prExtendedPictographic},
	{0x2721, 0x2721, prExtendedPictographic},
	{0x2728, 0x2728, prExtendedPictographic},
	{0x2733, 0x2734, prExtendedPictographic},
	{0x2744, 0x2744, prExtendedPictographic},
	{0x2747, 0x2747, prExtendedPictographic},
	{0x274c, 0x274c, prExtendedPictographic},
	{0x274e, 0x274e, prExtendedPictographic},
	{0x2753, 0x2755, prExtendedPictographic},
	{0x2757, 0x2757, prExtendedPictographic},
	{0x2763, 0x2767, prExtendedPictographic},
	{0x2795, 0x2797, prExtendedPictographic},
	{0x27a1, 0x27a1, prExtendedPictographic},
	{0x27b0, 0x27b0, prExtendedPictographic},
	{0x27bf, 0x27bf, prExtendedPictographic},
	{0x2934, 0x2935, prExtendedPictographic},
	{0x2b05, 0x2b07, prExtendedPictographic},
	{0x2b1b, 0x2b1c, prExtendedPictographic},
	{0x2b50, 0x2b50, prExtendedPictographic},
	{0x2b55, 0x2b55, prExtendedPictographic},
	{0x3030, 0x3030, prExtendedPictographic},
	{0x303d, 0x303d, prExtendedPictographic},
	{0x3297, 0x3297, prExtendedPictographic},
	{0x3299, 0x3299, prExtendedPictographic},
	{0x110bd, 0x110bd, prPrepend},
	{0x110cd, 0x110cd, prPrepend},
	{0x111c2, 0x111c3, prPrepend},
	{0x1193f, 0x1193f, prPrepend},
	{0x11941, 0x11941, prPrepend},
	{0x11a3a, 0x11a3a, prPrepend},
	{0x11a84, 0x11a89, prPrepend},
	{0x11d46, 0x11d46, prPrepend},
	{0x11f02, 0x11f02, prPrepend},
	{0x1f000, 0x1f0ff, prExtendedPictographic},
	{0x1f10d, 0x1f10f, prExtendedPictographic},
	{0x1f12f, 0x1f12f, prExtendedPictographic},
	{0x1f16c, 0x1f171, prExtendedPictographic},
	{0x1f17e, 0x1f17f, prExtendedPictographic},
	{0x1f18e, 0x1f18e, prExtendedPictographic},
	{0x1f191, 0x1f19a, prExtendedPictographic},
	{0x1f1ad, 0x1f1e5, prExtendedPictographic},
	{0x1f201, 0x1f20f, prExtendedPictographic},
	{0x1f21a, 0x1f21a, prExtendedPictographic},
	{0x1f22f, 0x1f22f, prExtendedPictographic},
	{0x1f232, 0x1f23a, prExtendedPictographic},
	{0x1f23c, 0x1f23f, prExtendedPictographic},
	{0x1f249, 0x1f3fa, prExtendedPictographic},
	{0x1f400, 0x1f53d, prExtendedPictographic},
	{0x1f546, 0x1f64f, prExtendedPictographic},
	{0x1f680, 0x1f6ff, prExtendedPictographic},
	{0x1f774, 0x1f77f, prExtendedPictographic},
	{0x1f7d5, 0x1f7ff, prExtendedPictographic},
	{0x1f80c, 0x1f80f, prExtendedPictographic},
	{0x1f848, 0x1f84f, prExtendedPictographic},
	{0x1f85a, 0x1f85f, prExtendedPictographic},
	{0x1f888, 0x1f88f, prExtendedPictographic},
	{0x1f8ae, 0x1f8ff, prExtendedPictographic},
	{0x1f90c, 0x1f93a, prExtendedPictographic},
	{0x1f93c, 0x1f945, prExtendedPictographic},
	{0x1f947, 0x1faff, prExtendedPictographic},
	{0x1fc00, 0x1fffd, prExtendedPictographic},
}

// incbCodePoints lists the Indic_Conjunct_Break Linker and Consonant values
// from DerivedCoreProperties.txt (Unicode 15.1). InCB=Extend is derived in
// propertyInCB.
var incbCodePoints = []propertyRange[incbProperty]{
	{0x0915, 0x0939, prInCBConsonant},
	{0x094d, 0x094d, prInCBLinker},
	{0x0958, 0x095f, prInCBConsonant},
	{0x0978, 0x097f, prInCBConsonant},
	{0x0995, 0x09a8, prInCBConsonant},
	{0x09aa, 0x09b0, prInCBConsonant},
	{0x09b2, 0x09b2, prInCBConsonant},
	{0x09b6, 0x09b9, prInCBConsonant},
	{0x09cd, 0x09cd, prInCBLinker},
	{0x09dc, 0x09dd, prInCBConsonant},
	{0x09df, 0x09df, prInCBConsonant},
	{0x09f0, 0x09f1, prInCBConsonant},
	{0x0a95, 0x0aa8, prInCBConsonant},
	{0x0aaa, 0x0ab0, prInCBConsonant},
	{0x0ab2, 0x0ab3, prInCBConsonant},
	{0x0ab5, 0x0ab9, prInCBConsonant},
	{0x0acd, 0x0acd, prInCBLinker},
	{0x0af9, 0x0af9, prInCBConsonant},
	{0x0b15, 0x0b28, prInCBConsonant},
	{0x0b2a, 0x0b30, prInCBConsonant},
	{0x0b32, 0x0b33, prInCBConsonant},
	{0x0b35, 0x0b39, prInCBConsonant},
	{0x0b4d, 0x0b4d, prInCBLinker},
	{0x0b5c, 0x0b5d, prInCBConsonant},
	{0x0b5f, 0x0b5f, prInCBConsonant},
	{0x0b71, 0x0b71, prInCBConsonant},
	{0x0c15, 0x0c28, prInCBConsonant},
	{0x0c2a, 0x0c39, prInCBConsonant},
	{0x0c4d, 0x0c4d, prInCBLinker},
	{0x0c58, 0x0c5a, prInCBConsonant},
	{0x0d15, 0x0d3a, prInCBConsonant},
	{0x0d4d, 0x0d4d, prInCBLinker},
}

// spacingMarkExceptions are spacing combining marks (gc=Mc) that UAX #29
// excludes from Grapheme_Cluster_Break=SpacingMark.
var spacingMarkExceptions = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x102b, Hi: 0x102c, Stride: 1},
		{Lo: 0x1038, Hi: 0x1038, Stride: 1},
		{Lo: 0x1062, Hi: 0x1064, Stride: 1},
		{Lo: 0x1067, Hi: 0x106d, Stride: 1},
		{Lo: 0x1083, Hi: 0x1083, Stride: 1},
		{Lo: 0x1087, Hi: 0x108c, Stride: 1},
		{Lo: 0x108f, Hi: 0x108f, Stride: 1},
		{Lo: 0x109a, Hi: 0x109c, Stride: 1},
		{Lo: 0x1a61, Hi: 0x1a61, Stride: 1},
		{Lo: 0x1a63, Hi: 0x1a64, Stride: 1},
		{Lo: 0xaa7b, Hi: 0xaa7b, Stride: 1},
		{Lo: 0xaa7d, Hi: 0xaa7d, Stride: 1},
	},
	R32: []unicode.Range32{
		{Lo: 0x11720, Hi: 0x11721, Stride: 1},
	},
}
