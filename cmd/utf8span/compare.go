package main

import (
	"fmt"
	"iter"
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/scalecode-solutions/utf8span"
)

var compareDiff bool

var compareCmd = &cobra.Command{
	Use:   "compare <a> <b>",
	Short: "Compare two files as text",
	Long: `Compare validates two files and reports whether they are equal as bytes, as
scalars, as grapheme clusters and under Unicode canonical equivalence, and
how they order canonically. With --diff the human output also shows how the
text of a turns into that of b.`,
	Args: cobra.ExactArgs(2),
	RunE: runCompare,
}

func init() {
	compareCmd.Flags().BoolVar(&compareDiff, "diff", false, "Show a scalar diff of the two texts")
}

// comparison is the report printed by the compare command. Order is "<",
// "=" or ">" for the canonical order of a relative to b.
type comparison struct {
	BytesEqual            bool   `json:"bytes_equal" yaml:"bytes_equal"`
	ScalarsEqual          bool   `json:"scalars_equal" yaml:"scalars_equal"`
	CharactersEqual       bool   `json:"characters_equal" yaml:"characters_equal"`
	CanonicallyEquivalent bool   `json:"canonically_equivalent" yaml:"canonically_equivalent"`
	Order                 string `json:"order" yaml:"order"`
}

func runCompare(cmd *cobra.Command, args []string) error {
	var spans [2]utf8span.Span
	for i, path := range args {
		b, err := readInput(cmd, path)
		if err != nil {
			return err
		}
		s, err := utf8span.Validate(b)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		s.CheckForNFC(true)
		spans[i] = s
	}

	c := compareSpans(spans[0], spans[1])
	debugf(cmd, "compared %s (%d bytes) with %s (%d bytes)", args[0], spans[0].Len(), args[1], spans[1].Len())

	rows := [][]string{
		{"Bytes equal", yesNo(c.BytesEqual)},
		{"Scalars equal", yesNo(c.ScalarsEqual)},
		{"Characters equal", yesNo(c.CharactersEqual)},
		{"Canonically equivalent", yesNo(c.CanonicallyEquivalent)},
		{"Canonical order", "a " + c.Order + " b"},
	}
	format := viper.GetString("format")
	if err := writeResult(cmd, format, c, [2]string{"Relation", "Result"}, rows); err != nil {
		return err
	}
	if compareDiff && (format == formatHuman || format == "") && !c.BytesEqual {
		st := stylesFor(cmd.OutOrStdout())
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n%s\n", st.heading.Sprint("Diff:"), renderDiff(st, spans[0].String(), spans[1].String()))
	}
	return nil
}

// renderDiff shows how a turns into b. Deleted text is marked [-like this-]
// and inserted text {+like this+}, or colored when colors are enabled.
func renderDiff(st *styles, a, b string) string {
	dmp := diffpatch.New()
	diffs := dmp.DiffMain(a, b, strings.Contains(a, "\n") && strings.Contains(b, "\n"))
	diffs = dmp.DiffCleanupSemantic(diffs)

	var sb strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffDelete:
			if st.enabled {
				sb.WriteString(st.bad.Sprint(d.Text))
			} else {
				sb.WriteString("[-" + d.Text + "-]")
			}
		case diffpatch.DiffInsert:
			if st.enabled {
				sb.WriteString(st.ok.Sprint(d.Text))
			} else {
				sb.WriteString("{+" + d.Text + "+}")
			}
		default:
			sb.WriteString(d.Text)
		}
	}
	return sb.String()
}

func compareSpans(a, b utf8span.Span) comparison {
	c := comparison{
		BytesEqual:            a.BytesEqual(b),
		ScalarsEqual:          a.ScalarsEqual(scalarsOf(b)),
		CharactersEqual:       a.CharactersEqual(charactersOf(b)),
		CanonicallyEquivalent: a.IsCanonicallyEquivalent(b),
	}
	switch {
	case a.IsCanonicallyLessThan(b):
		c.Order = "<"
	case b.IsCanonicallyLessThan(a):
		c.Order = ">"
	default:
		c.Order = "="
	}
	return c
}

func scalarsOf(s utf8span.Span) iter.Seq[rune] {
	return func(yield func(rune) bool) {
		for _, r := range s.Scalars() {
			if !yield(r) {
				return
			}
		}
	}
}

func charactersOf(s utf8span.Span) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, c := range s.Characters() {
			if !yield(c.String()) {
				return
			}
		}
	}
}
