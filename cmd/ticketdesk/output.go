package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

type outputFormat string

const (
	outputTable outputFormat = "table"
	outputJSON  outputFormat = "json"
	outputYAML  outputFormat = "yaml"
)

func (f *outputFormat) String() string { return string(*f) }

func (f *outputFormat) Set(v string) error {
	switch outputFormat(strings.ToLower(strings.TrimSpace(v))) {
	case outputTable, "":
		*f = outputTable
	case outputJSON:
		*f = outputJSON
	case outputYAML, "yml":
		*f = outputYAML
	default:
		return fmt.Errorf("invalid output format %q (valid options: table, json, yaml)", v)
	}
	return nil
}

func (f *outputFormat) Type() string { return "format" }

var _ pflag.Value = (*outputFormat)(nil)

func addOutputFlag(fs *pflag.FlagSet) *outputFormat {
	f := outputTable
	fs.VarP(&f, "output", "o", "Output format: table, json or yaml")
	return &f
}

// render writes v as JSON or YAML, or calls table for the table format.
func render(w io.Writer, format outputFormat, v any, table func(tw *tabwriter.Writer) error) error {
	switch format {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		if err := table(tw); err != nil {
			return err
		}
		return tw.Flush()
	}
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
