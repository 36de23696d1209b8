package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/scalecode-solutions/utf8span"
)

var statsCmd = &cobra.Command{
	Use:   "stats <file>",
	Short: "Show scalar, character and normalization statistics",
	Long: `Stats validates a file and reports its size in bytes, scalars and grapheme
clusters, and whether it is ASCII, in NFC, and made only of single-scalar
characters. Use "-" to read stdin.`,
	Args: cobra.ExactArgs(1),
	RunE: runStats,
}

// fileStats is the report printed by the stats command.
type fileStats struct {
	Path                   string `json:"path" yaml:"path"`
	Bytes                  int    `json:"bytes" yaml:"bytes"`
	Scalars                int    `json:"scalars" yaml:"scalars"`
	Characters             int    `json:"characters" yaml:"characters"`
	ASCII                  bool   `json:"ascii" yaml:"ascii"`
	NFC                    bool   `json:"nfc" yaml:"nfc"`
	SingleScalarCharacters bool   `json:"single_scalar_characters" yaml:"single_scalar_characters"`
}

func runStats(cmd *cobra.Command, args []string) error {
	path := args[0]
	b, err := readInput(cmd, path)
	if err != nil {
		return err
	}
	st, err := collectStats(path, b)
	if err != nil {
		return err
	}
	debugf(cmd, "%s: %d bytes, %d characters", path, st.Bytes, st.Characters)

	rows := [][]string{
		{"Path", st.Path},
		{"Bytes", itoa(st.Bytes)},
		{"Scalars", itoa(st.Scalars)},
		{"Characters", itoa(st.Characters)},
		{"ASCII", yesNo(st.ASCII)},
		{"NFC", yesNo(st.NFC)},
		{"Single-scalar characters", yesNo(st.SingleScalarCharacters)},
	}
	return writeResult(cmd, viper.GetString("format"), st, [2]string{"Property", "Value"}, rows)
}

// collectStats validates b and gathers its statistics. The exact NFC and
// single-scalar checks run first so that counting can use their fast paths.
func collectStats(path string, b []byte) (fileStats, error) {
	s, err := utf8span.Validate(b)
	if err != nil {
		return fileStats{}, fmt.Errorf("%s: %w", path, err)
	}
	nfc := s.CheckForNFC(false)
	single := s.CheckForSingleScalarCharacters(false)
	return fileStats{
		Path:                   path,
		Bytes:                  s.Len(),
		Scalars:                s.ScalarCount(),
		Characters:             s.CharacterCount(),
		ASCII:                  s.IsASCII(),
		NFC:                    nfc,
		SingleScalarCharacters: single,
	}, nil
}
