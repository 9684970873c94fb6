package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"gopkg.in/yaml.v3"
)

// printResult writes data as JSON or YAML, or as a table built from
// headers and rows.
func printResult(w io.Writer, format string, data any, headers []string, rows [][]string) error {
	switch format {
	case "json":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(data)
	case "yaml":
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(data); err != nil {
			return err
		}
		return encoder.Close()
	default:
		t := table.New().
			Border(lipgloss.NormalBorder()).
			Headers(headers...).
			Rows(rows...)
		_, err := fmt.Fprintln(w, t.Render())
		return err
	}
}

// printPlaceholder explains an empty result in table mode. Structured
// formats still print the empty value.
func printPlaceholder(w io.Writer, format string, data any, msg string) error {
	if format == "json" || format == "yaml" {
		return printResult(w, format, data, nil, nil)
	}
	_, err := fmt.Fprintln(w, msg)
	return err
}
