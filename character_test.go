package utf8span

import (
	"bufio"
	"slices"
	"strings"
	"testing"

	"github.com/clipperhouse/uax29/v2/graphemes"
	"github.com/rivo/uniseg"
)

// mustSpan validates str or fails the test.
func mustSpan(t testing.TB, str string) Span {
	t.Helper()
	s, err := ValidateString(str)
	if err != nil {
		t.Fatalf("ValidateString(%q): %v", str, err)
	}
	return s
}

var characterTests = []struct {
	name     string
	input    string
	expected []string
}{
	{"empty", "", nil},
	{"ascii", "abc", []string{"a", "b", "c"}},
	{"combining acute", "e\u0301x", []string{"e\u0301", "x"}},
	{"stacked marks", "a\u0308\u0301b", []string{"a\u0308\u0301", "b"}},
	{"crlf", "a\r\nb", []string{"a", "\r\n", "b"}},
	{"cr cr lf", "\r\r\n", []string{"\r", "\r\n"}},
	{"lf then mark", "\n\u0301", []string{"\n", "\u0301"}},
	{"flags", "\U0001F1E9\U0001F1EA\U0001F1EB\U0001F1F7", []string{"\U0001F1E9\U0001F1EA", "\U0001F1EB\U0001F1F7"}},
	{"odd regional indicators", "\U0001F1E9\U0001F1EA\U0001F1EB", []string{"\U0001F1E9\U0001F1EA", "\U0001F1EB"}},
	{"family", "\U0001F468\u200D\U0001F469\u200D\U0001F467\u200D\U0001F466!", []string{"\U0001F468\u200D\U0001F469\u200D\U0001F467\u200D\U0001F466", "!"}},
	{"rainbow flag", "\U0001F3F3\uFE0F\u200D\U0001F308", []string{"\U0001F3F3\uFE0F\u200D\U0001F308"}},
	{"skin tone", "\U0001F44D\U0001F3FD\U0001F44D", []string{"\U0001F44D\U0001F3FD", "\U0001F44D"}},
	{"zwj without pictographic", "a\u200Db", []string{"a\u200D", "b"}},
	{"hangul syllables", "\uD55C\uAD6D\uC5B4", []string{"\uD55C", "\uAD6D", "\uC5B4"}},
	{"hangul jamo", "\u1100\u1161\u11A8\u1100", []string{"\u1100\u1161\u11A8", "\u1100"}},
	{"prepend", "\u0600a", []string{"\u0600a"}},
	{"spacing mark", "a\u0903b", []string{"a\u0903", "b"}},
	{"indic conjunct", "\u0915\u094D\u0937\u093F", []string{"\u0915\u094D\u0937\u093F"}},
	{"indic conjunct with nukta", "\u0915\u093C\u094D\u0937", []string{"\u0915\u093C\u094D\u0937"}},
	{"virama without consonant", "\u0915\u094Da", []string{"\u0915\u094D", "a"}},
}

// forwardCharacters splits s using DecodeNextCharacter.
func forwardCharacters(s Span) []string {
	var out []string
	for i := 0; i < s.Len(); {
		c, next := s.DecodeNextCharacter(i)
		out = append(out, c.String())
		i = next
	}
	return out
}

// backwardCharacters splits s using DecodePreviousCharacter and returns the
// characters in forward order.
func backwardCharacters(s Span) []string {
	var out []string
	for i := s.Len(); i > 0; {
		c, start := s.DecodePreviousCharacter(i)
		out = append(out, c.String())
		i = start
	}
	slices.Reverse(out)
	return out
}

func TestCharacters(t *testing.T) {
	for _, tt := range characterTests {
		t.Run(tt.name, func(t *testing.T) {
			s := mustSpan(t, tt.input)

			if got := forwardCharacters(s); !slices.Equal(got, tt.expected) {
				t.Errorf("forward: got %q, want %q", got, tt.expected)
			}
			if got := backwardCharacters(s); !slices.Equal(got, tt.expected) {
				t.Errorf("backward: got %q, want %q", got, tt.expected)
			}
			if n := s.CharacterCount(); n != len(tt.expected) {
				t.Errorf("CharacterCount: got %d, want %d", n, len(tt.expected))
			}
		})
	}
}

func TestIsCharacterAligned(t *testing.T) {
	for _, tt := range characterTests {
		t.Run(tt.name, func(t *testing.T) {
			s := mustSpan(t, tt.input)
			boundaries := map[int]bool{0: true}
			offset := 0
			for _, c := range tt.expected {
				offset += len(c)
				boundaries[offset] = true
			}
			for i := 0; i <= s.Len(); i++ {
				if got := s.IsCharacterAligned(i); got != boundaries[i] {
					t.Errorf("IsCharacterAligned(%d): got %v, want %v", i, got, boundaries[i])
				}
			}
		})
	}
}

func TestCharacterAlign(t *testing.T) {
	s := mustSpan(t, "e\u0301x")
	tests := []struct {
		i, back, forward int
	}{
		{0, 0, 0},
		{1, 0, 3},
		{2, 0, 3},
		{3, 3, 3},
		{4, 4, 4},
	}
	for _, tt := range tests {
		if got := s.CharacterAlignBackwards(tt.i); got != tt.back {
			t.Errorf("CharacterAlignBackwards(%d): got %d, want %d", tt.i, got, tt.back)
		}
		if got := s.CharacterAlignForwards(tt.i); got != tt.forward {
			t.Errorf("CharacterAlignForwards(%d): got %d, want %d", tt.i, got, tt.forward)
		}
	}
}

func TestCharacterNavigationPanics(t *testing.T) {
	s := mustSpan(t, "e\u0301x")
	tests := []struct {
		name string
		f    func()
	}{
		{"next inside character", func() { s.NextCharacterStart(1) }},
		{"next at end", func() { s.NextCharacterStart(4) }},
		{"previous at start", func() { s.PreviousCharacterStart(0) }},
		{"previous inside scalar", func() { s.PreviousCharacterStart(2) }},
		{"decode inside character", func() { s.DecodeNextCharacter(1) }},
		{"aligned out of range", func() { s.IsCharacterAligned(5) }},
		{"unchecked still checks alignment", func() { s.NextCharacterStartUnchecked(1) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			tt.f()
		})
	}
}

func TestRegionalIndicatorRuns(t *testing.T) {
	for _, n := range []int{1, 2, 3, 2000, 2001} {
		s := mustSpan(t, "a\u0301"+strings.Repeat("\U0001F1E9", n)+"x")
		want := 1 + (n+1)/2 + 1

		forward := forwardCharacters(s)
		backward := backwardCharacters(s)
		if len(forward) != want || s.CharacterCount() != want {
			t.Errorf("n=%d: got %d characters forward, CharacterCount %d, want %d", n, len(forward), s.CharacterCount(), want)
		}
		if !slices.Equal(forward, backward) {
			t.Errorf("n=%d: forward and backward traversals differ", n)
		}
		for k := 0; k <= n; k++ {
			i := 3 + 4*k
			if got, want := s.IsCharacterAligned(i), k%2 == 0 || k == n; got != want {
				t.Errorf("n=%d: IsCharacterAligned(%d) = %v, want %v", n, i, got, want)
			}
		}
	}
}

func TestSingleScalarFastPath(t *testing.T) {
	inputs := []string{"hello", "na\u00efve caf\u00e9", "\u20ac100 \u00a5200", "\u00c0\u00c9\u00ce\u00d5\u00dc\r\t"}
	for _, str := range inputs {
		plain := mustSpan(t, str)
		fast := mustSpan(t, str)
		if !fast.CheckForSingleScalarCharacters(false) {
			t.Fatalf("%q: expected single-scalar characters", str)
		}
		if got, want := forwardCharacters(fast), forwardCharacters(plain); !slices.Equal(got, want) {
			t.Errorf("%q forward: got %q, want %q", str, got, want)
		}
		if got, want := backwardCharacters(fast), backwardCharacters(plain); !slices.Equal(got, want) {
			t.Errorf("%q backward: got %q, want %q", str, got, want)
		}
		if fast.CharacterCount() != plain.CharacterCount() {
			t.Errorf("%q: character counts differ", str)
		}
	}
}

// oracleTexts avoid Indic conjuncts, which older segmenters split
// differently.
var oracleTexts = []string{
	"Hello, world!",
	"e\u0327\u0301 o\u0308",
	"a\r\nb\rc\nd",
	"\U0001F1E9\U0001F1EA\U0001F1EB\U0001F1F7\U0001F1EE\U0001F1F9\U0001F1EA",
	"\U0001F468\u200D\U0001F469\u200D\U0001F467 and \U0001F3F3\uFE0F\u200D\U0001F308 and \U0001F44D\U0001F3FD",
	"\uD55C\uAD6D\uC5B4 \uAC01 \u1100\uAC00",
	"ab\u200Dc\u200D",
	"\u0915\u093F\u0924\u093E\u092C",
	"\u0E20\u0E32\u0E29\u0E32\u0E44\u0E17\u0E22",
	"\u0600\u0661\u0662",
	"Z\u0351\u036B\u0343\u036A\u0302a\u0351l\u0304g\u0311o",
	strings.Repeat("x\u0301", 10),
}

// TestCharactersAgainstUniseg compares cluster boundaries with
// github.com/rivo/uniseg.
func TestCharactersAgainstUniseg(t *testing.T) {
	for _, str := range oracleTexts {
		var want []string
		g := uniseg.NewGraphemes(str)
		for g.Next() {
			want = append(want, g.Str())
		}

		s := mustSpan(t, str)
		if got := forwardCharacters(s); !slices.Equal(got, want) {
			t.Errorf("%q forward: got %q, want %q", str, got, want)
		}
		if got := backwardCharacters(s); !slices.Equal(got, want) {
			t.Errorf("%q backward: got %q, want %q", str, got, want)
		}
	}
}

// TestCharactersAgainstUAX29 compares cluster boundaries with
// github.com/clipperhouse/uax29.
func TestCharactersAgainstUAX29(t *testing.T) {
	for _, str := range oracleTexts {
		var want []string
		sc := bufio.NewScanner(strings.NewReader(str))
		sc.Split(graphemes.SplitFunc)
		for sc.Scan() {
			want = append(want, sc.Text())
		}
		if err := sc.Err(); err != nil {
			t.Fatalf("%q: %v", str, err)
		}

		s := mustSpan(t, str)
		if got := forwardCharacters(s); !slices.Equal(got, want) {
			t.Errorf("%q: got %q, want %q", str, got, want)
		}
	}
}

func FuzzCharacters(f *testing.F) {
	for _, str := range oracleTexts {
		f.Add(str)
	}
	for _, tt := range characterTests {
		f.Add(tt.input)
	}
	f.Fuzz(func(t *testing.T, str string) {
		s, err := ValidateString(str)
		if err != nil {
			return
		}
		fw, bw := forwardCharacters(s), backwardCharacters(s)
		if !slices.Equal(fw, bw) {
			t.Fatalf("%q: forward %q, backward %q", str, fw, bw)
		}
		if strings.Join(fw, "") != str {
			t.Fatalf("%q: characters do not cover the span", str)
		}
	})
}
