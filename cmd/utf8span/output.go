package main

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Output formats accepted by --format.
const (
	formatHuman = "human"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

// writeResult writes v in the requested format. For human output the rows
// are rendered as a two-column table headed by the given titles.
func writeResult(cmd *cobra.Command, format string, v any, header [2]string, rows [][]string) error {
	out := cmd.OutOrStdout()
	switch format {
	case formatJSON:
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(v)
	case formatYAML:
		encoder := yaml.NewEncoder(out)
		encoder.SetIndent(2)
		if err := encoder.Encode(v); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return encoder.Close()
	case formatHuman, "":
		table := tablewriter.NewWriter(out)
		table.Header(header[0], header[1])
		for _, row := range rows {
			table.Append(row)
		}
		return table.Render()
	default:
		return fmt.Errorf("unknown format %q (want human, json or yaml)", format)
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
