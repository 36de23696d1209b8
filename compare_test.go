package utf8span

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBytesEqual(t *testing.T) {
	a := mustSpan(t, "caf\u00e9")
	b := mustSpan(t, "caf\u00e9")
	c := mustSpan(t, "cafe\u0301")

	assert.True(t, a.BytesEqual(b))
	assert.False(t, a.BytesEqual(c))
	assert.True(t, a.BytesEqualTo([]byte("caf\u00e9")))
	assert.False(t, a.BytesEqualTo([]byte("cafe")))
	assert.True(t, Span{}.BytesEqualTo(nil))
}

func TestScalarsEqual(t *testing.T) {
	s := mustSpan(t, "e\u0301x")
	tests := []struct {
		name  string
		runes []rune
		want  bool
	}{
		{"same", []rune{'e', 0x301, 'x'}, true},
		{"precomposed", []rune{0xe9, 'x'}, false},
		{"shorter", []rune{'e', 0x301}, false},
		{"longer", []rune{'e', 0x301, 'x', 'y'}, false},
		{"empty", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.ScalarsEqual(slices.Values(tt.runes)))
		})
	}
	assert.True(t, Span{}.ScalarsEqual(slices.Values([]rune(nil))))
}

func TestCharactersEqual(t *testing.T) {
	s := mustSpan(t, "e\u0301x")
	tests := []struct {
		name  string
		chars []string
		want  bool
	}{
		{"same", []string{"e\u0301", "x"}, true},
		{"split scalars", []string{"e", "\u0301", "x"}, false},
		{"precomposed", []string{"\u00e9", "x"}, false},
		{"shorter", []string{"e\u0301"}, false},
		{"longer", []string{"e\u0301", "x", ""}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.CharactersEqual(slices.Values(tt.chars)))
		})
	}
}

func TestIsCanonicallyEquivalent(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{"identical", "abc", "abc", true},
		{"different ascii", "abc", "abd", false},
		{"composed and decomposed", "\u00e9", "e\u0301", true},
		{"angstrom", "\u212b", "\u00c5", true},
		{"angstrom and ring", "\u212b", "A\u030a", true},
		{"mark order", "q\u0307\u0323", "q\u0323\u0307", true},
		{"blocked marks", "a\u0301\u0301", "\u00e1", false},
		{"base only", "e", "\u00e9", false},
		{"hangul", "\uac01", "\u1100\u1161\u11a8", true},
		{"empty", "", "", true},
		{"empty and mark", "", "\u0301", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := mustSpan(t, tt.a), mustSpan(t, tt.b)
			assert.Equal(t, tt.want, a.IsCanonicallyEquivalent(b))
			assert.Equal(t, tt.want, b.IsCanonicallyEquivalent(a))

			// Known-NFC flags do not change the answer.
			a.CheckForNFC(false)
			b.CheckForNFC(false)
			assert.Equal(t, tt.want, a.IsCanonicallyEquivalent(b))
		})
	}
}

func TestIsCanonicallyLessThan(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{"ascii", "a", "b", true},
		{"ascii reversed", "b", "a", false},
		{"prefix", "ab", "abc", true},
		{"equal", "abc", "abc", false},
		{"equivalent", "\u00e9", "e\u0301", false},
		{"equivalent reversed", "e\u0301", "\u00e9", false},
		{"base before composed", "e", "e\u0301", true},
		{"composed after ascii", "\u00e9", "f", false},
		{"ascii before composed", "f", "e\u0301", true},
		{"empty first", "", "a", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := mustSpan(t, tt.a), mustSpan(t, tt.b)
			assert.Equal(t, tt.want, a.IsCanonicallyLessThan(b))

			a.CheckForNFC(false)
			b.CheckForNFC(false)
			assert.Equal(t, tt.want, a.IsCanonicallyLessThan(b))
		})
	}
}

func TestCanonicalOrderIsTotal(t *testing.T) {
	texts := []string{
		"", "a", "ab", "\u00e9", "e\u0301", "e", "f", "\u212b", "\u00c5",
		"A\u030a", "q\u0307\u0323", "q\u0323\u0307", "\uac01", "\u1100\u1161\u11a8",
	}
	for _, x := range texts {
		for _, y := range texts {
			a, b := mustSpan(t, x), mustSpan(t, y)
			less, greater, equiv := a.IsCanonicallyLessThan(b), b.IsCanonicallyLessThan(a), a.IsCanonicallyEquivalent(b)

			n := 0
			for _, v := range []bool{less, greater, equiv} {
				if v {
					n++
				}
			}
			assert.Equal(t, 1, n, "%q vs %q: less=%v greater=%v equiv=%v", x, y, less, greater, equiv)
		}
	}
}
