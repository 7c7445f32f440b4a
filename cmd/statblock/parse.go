package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/statblock-importer/internal/errors"
	"github.com/KirkDiggler/statblock-importer/internal/orchestrators/importer"
	"github.com/KirkDiggler/statblock-importer/internal/repositories/actor"
)

const (
	viewModel  = "model"
	viewActor  = "actor"
	viewItems  = "items"
	viewImport = "import"
)

var view string

var parseCmd = &cobra.Command{
	Use:   "parse [file|-]",
	Short: "Parse a stat block and print the result without storing it",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().StringVar(&view, "schema", viewImport, "what to print: model, actor, items or import")
}

func runParse(cmd *cobra.Command, args []string) error {
	text, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	svc, err := newService(cfg, actor.NewInMemory())
	if err != nil {
		return err
	}

	preview, err := svc.Preview(cmd.Context(), &importer.PreviewInput{Text: text})
	if err != nil {
		return err
	}

	for _, w := range preview.Warnings {
		slog.WarnContext(cmd.Context(), w)
	}

	var v any
	switch view {
	case viewModel:
		v = preview.Model
	case viewActor:
		v = preview.Actor
	case viewItems:
		v = preview.Items
	case viewImport:
		v = newPreviewReport(preview)
	default:
		return errors.InvalidArgumentf("unknown schema %q", view)
	}

	return render(cmd.OutOrStdout(), output, v)
}
