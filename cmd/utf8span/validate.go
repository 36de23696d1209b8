package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/scalecode-solutions/utf8span"
)

// excerptRadius is the number of bytes shown on each side of an error.
const excerptRadius = 4

var validateAll bool

var validateCmd = &cobra.Command{
	Use:   "validate <file>...",
	Short: "Check that files are well-formed UTF-8",
	Long: `Validate reads each file and reports whether it is well-formed UTF-8. For an
invalid file the first ill-formed subsequence is shown with its byte range and
the surrounding bytes; --all reports every one. Use "-" to read stdin.

The command fails if any file is invalid.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().BoolVar(&validateAll, "all", false, "Report every error instead of the first")
}

func runValidate(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	st := stylesFor(out)

	invalid := 0
	for _, path := range args {
		b, err := readInput(cmd, path)
		if err != nil {
			return err
		}
		debugf(cmd, "read %d bytes from %s", len(b), path)

		s, err := utf8span.Validate(b)
		if err == nil {
			kind := "utf-8"
			if s.IsASCII() {
				kind = "ascii"
			}
			fmt.Fprintf(out, "%s: %s (%d bytes, %s)\n", st.path.Sprint(path), st.ok.Sprint("OK"), s.Len(), kind)
			continue
		}
		invalid++

		var first utf8span.EncodingError
		if !errors.As(err, &first) {
			return fmt.Errorf("validating %s: %w", path, err)
		}
		errs := []utf8span.EncodingError{first}
		if validateAll {
			errs = utf8span.AllErrors(b)
		}
		fmt.Fprintf(out, "%s: %s\n", st.path.Sprint(path), st.bad.Sprint("INVALID"))
		if !validateAll {
			debugf(cmd, "%s: showing the first error only, use --all for every error", path)
		}
		for _, e := range errs {
			fmt.Fprintf(out, "  %s at %s: %s\n", e.Kind, e.Range, excerpt(st, b, e.Range))
		}
	}

	if invalid > 0 {
		return fmt.Errorf("%d of %d files are not valid UTF-8", invalid, len(args))
	}
	return nil
}

// readInput reads the named file, or stdin for "-".
func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		b, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return b, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return b, nil
}

// excerpt formats the bytes around r in hex and highlights the bytes inside
// r, with color or, without it, with brackets.
func excerpt(st *styles, b []byte, r utf8span.Range) string {
	lo := max(r.Lower-excerptRadius, 0)
	hi := min(r.Upper+excerptRadius, len(b))

	var sb strings.Builder
	if lo > 0 {
		sb.WriteString("... ")
	}
	for i := lo; i < hi; i++ {
		if i > lo {
			sb.WriteByte(' ')
		}
		h := fmt.Sprintf("%02x", b[i])
		if i >= r.Lower && i < r.Upper {
			switch {
			case st.enabled:
				h = st.bad.Sprint(h)
			case i == r.Lower && i == r.Upper-1:
				h = "[" + h + "]"
			case i == r.Lower:
				h = "[" + h
			case i == r.Upper-1:
				h += "]"
			}
		}
		sb.WriteString(h)
	}
	if hi < len(b) {
		sb.WriteString(" ...")
	}
	return sb.String()
}
