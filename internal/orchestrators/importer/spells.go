package importer

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/statblock-importer/internal/entities/schema"
	"github.com/KirkDiggler/statblock-importer/internal/errors"
)

type spellLookup struct {
	item    *schema.Item
	warning string
}

// lookupSpells resolves every name against the compendium with bounded
// concurrency and returns the spell items in name order. Misses and
// compendium failures become warnings. Only cancellation is an error.
func (o *orchestrator) lookupSpells(ctx context.Context, names []string) ([]*schema.Item, []string, error) {
	if len(names) == 0 {
		return nil, nil, nil
	}

	results := make([]spellLookup, len(names))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.concurrency)
	for i, name := range names {
		g.Go(func() error {
			spell, err := o.compendium.LookupSpell(gctx, name)
			if err != nil {
				if gctx.Err() != nil {
					return errors.FromContext(gctx.Err(), "spell lookup canceled")
				}
				results[i].warning = lookupWarning(name, err)
				slog.WarnContext(gctx, "spell lookup failed",
					"spell", name,
					"error", err.Error())
				return nil
			}
			results[i].item = o.mapper.ToSpellItem(spell)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	var items []*schema.Item
	var warnings []string
	for _, r := range results {
		if r.item != nil {
			items = append(items, r.item)
		}
		if r.warning != "" {
			warnings = append(warnings, r.warning)
		}
	}
	return items, warnings, nil
}

func lookupWarning(name string, err error) string {
	if errors.IsNotFound(err) {
		if suggestion, ok := errors.GetMeta(err)["suggestion"].(string); ok && suggestion != "" {
			return fmt.Sprintf("spell %q not found in compendium (did you mean %q?)", name, suggestion)
		}
		return fmt.Sprintf("spell %q not found in compendium", name)
	}
	return fmt.Sprintf("spell %q could not be looked up: %s", name, errors.GetMessage(err))
}
