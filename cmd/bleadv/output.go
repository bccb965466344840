package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// styles carries the colors used for table output; all of them are plain when
// output is not a terminal or --no-color is set.
type styles struct {
	header *color.Color
	label  *color.Color
	accent *color.Color
}

func newStyles(cmd *cobra.Command) styles {
	noColor, _ := cmd.Flags().GetBool("no-color")
	enabled := !noColor && isTerminal(cmd.OutOrStdout())

	s := styles{
		header: color.New(color.Bold, color.FgCyan),
		label:  color.New(color.Bold),
		accent: color.New(color.FgGreen),
	}
	for _, c := range []*color.Color{s.header, s.label, s.accent} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return s
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

// writeHeader writes a tab-separated header row in the header style.
func (s styles) writeHeader(w io.Writer, columns ...string) {
	for i := range columns {
		columns[i] = s.header.Sprint(columns[i])
	}
	fmt.Fprintln(w, strings.Join(columns, "\t"))
}

func validateFormat(format string) error {
	switch format {
	case "table", "json", "yaml":
		return nil
	default:
		return fmt.Errorf("invalid format '%s': must be one of [table json yaml]", format)
	}
}

// writeStructured encodes v as indented JSON or YAML.
func writeStructured(w io.Writer, format string, v any) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported structured format %q", format)
	}
}

// formatFlag resolves --format, falling back to the config file value.
func formatFlag(cmd *cobra.Command, configured string) (string, error) {
	format := configured
	if cmd.Flags().Changed("format") || format == "" {
		format, _ = cmd.Flags().GetString("format")
	}
	return format, validateFormat(format)
}
