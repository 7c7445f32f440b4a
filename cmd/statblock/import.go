package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/statblock-importer/internal/orchestrators/importer"
	"github.com/KirkDiggler/statblock-importer/internal/repositories/actor"
)

var (
	rollHP bool
	dryRun bool
)

var importCmd = &cobra.Command{
	Use:   "import [file|-]",
	Short: "Parse a stat block and store it as an actor",
	Long: `Parse a stat block, store the actor and its items, then look up every
spell it casts in the compendium. Reads stdin when no file is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().BoolVar(&rollHP, "roll-hp", false, "roll hit points from the hit dice instead of using the average")
	importCmd.Flags().BoolVar(&dryRun, "dry-run", false, "store into memory instead of redis")
}

func runImport(cmd *cobra.Command, args []string) error {
	text, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	var repo actor.Repository
	if dryRun {
		repo = actor.NewInMemory()
	} else {
		redisRepo, closeFn, err := newRedisRepository(cfg)
		if err != nil {
			return err
		}
		defer closeFn()
		repo = redisRepo
	}

	svc, err := newService(cfg, repo)
	if err != nil {
		return err
	}

	result, err := svc.Import(cmd.Context(), &importer.ImportInput{
		Text:          text,
		RollHitPoints: rollHP,
	})
	if err != nil {
		if result != nil && result.ActorID != "" {
			slog.WarnContext(cmd.Context(), "import interrupted", "actor_id", result.ActorID)
		}
		return err
	}

	for _, w := range result.Warnings {
		slog.WarnContext(cmd.Context(), w)
	}

	return render(cmd.OutOrStdout(), output, newImportReport(result))
}
