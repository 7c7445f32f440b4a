package main

import (
	"encoding/json"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/statblock-importer/internal/entities/schema"
	"github.com/KirkDiggler/statblock-importer/internal/errors"
	"github.com/KirkDiggler/statblock-importer/internal/orchestrators/importer"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
)

type actorReport struct {
	ActorID  string          `json:"actorId,omitempty"  yaml:"actorId,omitempty"`
	Actor    *schema.Actor   `json:"actor"              yaml:"actor"`
	Items    []*schema.Item  `json:"items"              yaml:"items"`
	Failures []failureReport `json:"failures,omitempty" yaml:"failures,omitempty"`
	Warnings []string        `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

type failureReport struct {
	Name  string `json:"name"  yaml:"name"`
	Error string `json:"error" yaml:"error"`
}

func newImportReport(out *importer.ImportOutput) *actorReport {
	report := &actorReport{
		ActorID:  out.ActorID,
		Actor:    out.Actor,
		Items:    out.Items,
		Warnings: out.Warnings,
	}
	for _, f := range out.ItemFailures {
		report.Failures = append(report.Failures, failureReport{Name: f.Name, Error: f.Err.Error()})
	}
	return report
}

func newPreviewReport(out *importer.PreviewOutput) *actorReport {
	return &actorReport{
		Actor:    out.Actor,
		Items:    out.Items,
		Warnings: out.Warnings,
	}
}

// render writes v to w in the given format
func render(w io.Writer, format string, v any) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return errors.Wrap(err, "failed to encode json")
		}
		return nil
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return errors.Wrap(err, "failed to encode yaml")
		}
		if err := enc.Close(); err != nil {
			return errors.Wrap(err, "failed to encode yaml")
		}
		return nil
	default:
		return errors.InvalidArgumentf("unknown output format %q", format)
	}
}

// readInput returns the stat block text from the named file, or from stdin
// when the argument is missing or "-"
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", errors.Wrap(err, "failed to read stdin")
		}
		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", errors.NotFoundf("file %q not found", args[0])
		}
		return "", errors.Wrapf(err, "failed to read %s", args[0])
	}
	return string(data), nil
}
