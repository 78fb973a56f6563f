// Package output renders command results as a table, JSON or YAML.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"

	"github.com/leefowlercu/rootdirs/internal/rootdir"
)

// Format selects how results are written.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// ParseFormat converts a flag value to a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatTable, FormatJSON, FormatYAML:
		return f, nil
	case "":
		return FormatTable, nil
	}
	return "", fmt.Errorf("unsupported output format %q (expected table, json or yaml)", s)
}

// RootDirs writes root directories in the requested format.
func RootDirs(w io.Writer, format Format, dirs []rootdir.RootDir) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, dirs)
	case FormatYAML:
		return writeYAML(w, dirs)
	}

	table := tablewriter.NewWriter(w)
	table.Header("ID", "PATH")
	for _, d := range dirs {
		if err := table.Append([]string{strconv.FormatInt(d.ID, 10), d.Path}); err != nil {
			return fmt.Errorf("failed to add table row; %w", err)
		}
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table; %w", err)
	}
	return nil
}

// RootDir writes a single root directory. JSON and YAML emit an object
// rather than a one-element list.
func RootDir(w io.Writer, format Format, dir rootdir.RootDir) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, dir)
	case FormatYAML:
		return writeYAML(w, dir)
	}
	return RootDirs(w, format, []rootdir.RootDir{dir})
}

// Paths writes a list of paths in the requested format. Table format prints
// one path per line.
func Paths(w io.Writer, format Format, paths []string) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, paths)
	case FormatYAML:
		return writeYAML(w, paths)
	}

	for _, p := range paths {
		if _, err := fmt.Fprintln(w, p); err != nil {
			return err
		}
	}
	return nil
}

// Value writes v as JSON or YAML. Table format is not supported because
// there are no columns to lay out.
func Value(w io.Writer, format Format, v any) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, v)
	case FormatYAML:
		return writeYAML(w, v)
	}
	return fmt.Errorf("output format %q is not supported here", format)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON; %w", err)
	}
	return nil
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode YAML; %w", err)
	}
	return enc.Close()
}
