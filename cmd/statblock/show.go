package main

import (
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/statblock-importer/internal/orchestrators/importer"
)

var showCmd = &cobra.Command{
	Use:   "show <actor-id>",
	Short: "Print a stored actor and its items",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	repo, closeFn, err := newRedisRepository(cfg)
	if err != nil {
		return err
	}
	defer closeFn()

	svc, err := newService(cfg, repo)
	if err != nil {
		return err
	}

	result, err := svc.Show(cmd.Context(), &importer.ShowInput{ActorID: args[0]})
	if err != nil {
		return err
	}

	return render(cmd.OutOrStdout(), output, &actorReport{
		ActorID: result.Actor.ID,
		Actor:   result.Actor,
		Items:   result.Items,
	})
}
