// Package importer turns stat block text into a stored actor with its items
package importer

//go:generate mockgen -destination=mock/mock_service.go -package=importermock github.com/KirkDiggler/statblock-importer/internal/orchestrators/importer Service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/statblock-importer/internal/clients/compendium"
	"github.com/KirkDiggler/statblock-importer/internal/entities/creature"
	"github.com/KirkDiggler/statblock-importer/internal/entities/dnd5e"
	"github.com/KirkDiggler/statblock-importer/internal/entities/schema"
	"github.com/KirkDiggler/statblock-importer/internal/errors"
	"github.com/KirkDiggler/statblock-importer/internal/parser"
	"github.com/KirkDiggler/statblock-importer/internal/pkg/idgen"
	"github.com/KirkDiggler/statblock-importer/internal/repositories/actor"
	"github.com/KirkDiggler/statblock-importer/internal/services/conversion"
	"github.com/KirkDiggler/statblock-importer/internal/services/derivation"
)

// DefaultLookupConcurrency bounds parallel compendium lookups when Config
// leaves it unset
const DefaultLookupConcurrency = 4

// Service defines the interface for stat block imports
type Service interface {
	// Import parses, maps and stores a stat block.
	// Returns errors.InvalidArgument for text that is not a stat block
	// Returns the store error if the actor cannot be created
	// Returns the partial output with errors.CodeCanceled if the context ends
	// after the actor is stored
	Import(ctx context.Context, input *ImportInput) (*ImportOutput, error)

	// Preview parses and maps a stat block without touching the store or
	// the compendium
	Preview(ctx context.Context, input *PreviewInput) (*PreviewOutput, error)

	// Show reads a stored actor and its items
	Show(ctx context.Context, input *ShowInput) (*ShowOutput, error)
}

// Config holds the dependencies for the import orchestrator
type Config struct {
	ActorRepo  actor.Repository
	Compendium compendium.Client
	// Mapper defaults to conversion.NewMapper
	Mapper conversion.Mapper
	// Roller defaults to dice.DefaultRoller
	Roller dice.Roller
	// LookupConcurrency defaults to DefaultLookupConcurrency
	LookupConcurrency int
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()
	if c.ActorRepo == nil {
		vb.RequiredField("ActorRepo")
	}
	if c.Compendium == nil {
		vb.RequiredField("Compendium")
	}
	if c.LookupConcurrency < 0 {
		vb.Field("LookupConcurrency", "must not be negative")
	}
	return vb.Build()
}

type orchestrator struct {
	actorRepo   actor.Repository
	compendium  compendium.Client
	mapper      conversion.Mapper
	roller      dice.Roller
	concurrency int
}

// NewOrchestrator creates a new import orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	o := &orchestrator{
		actorRepo:   cfg.ActorRepo,
		compendium:  cfg.Compendium,
		mapper:      cfg.Mapper,
		roller:      cfg.Roller,
		concurrency: cfg.LookupConcurrency,
	}
	if o.mapper == nil {
		o.mapper = conversion.NewMapper()
	}
	if o.roller == nil {
		o.roller = dice.DefaultRoller
	}
	if o.concurrency == 0 {
		o.concurrency = DefaultLookupConcurrency
	}
	return o, nil
}

func (o *orchestrator) Preview(ctx context.Context, input *PreviewInput) (*PreviewOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	return o.preview(ctx, input.Text)
}

func (o *orchestrator) preview(ctx context.Context, text string) (*PreviewOutput, error) {
	model, err := parser.Parse(text)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse stat block")
	}

	prof := derivation.Proficiency(model)
	slog.DebugContext(ctx, "parsed stat block",
		"name", model.Name,
		"proficiency", prof,
		"abilities", model.Abilities.Len(),
		"legendary_actions", model.LegendaryActions.Len())

	output := &PreviewOutput{
		Model:       model,
		Proficiency: prof,
		Actor:       o.mapper.ToActor(model, prof),
		Items:       o.mapper.ToItems(model),
		SpellNames:  spellNames(model),
	}
	for _, name := range model.Collisions {
		output.Warnings = append(output.Warnings,
			fmt.Sprintf("ability %q appears more than once; the last entry was kept", name))
	}
	return output, nil
}

func (o *orchestrator) Import(ctx context.Context, input *ImportInput) (*ImportOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	preview, err := o.preview(ctx, input.Text)
	if err != nil {
		return nil, err
	}

	output := &ImportOutput{Warnings: preview.Warnings}

	if input.RollHitPoints {
		if warning := o.rollHitPoints(preview); warning != "" {
			output.Warnings = append(output.Warnings, warning)
		}
	}

	created, err := o.actorRepo.CreateActor(ctx, actor.CreateActorInput{Actor: preview.Actor})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create actor")
	}
	output.ActorID = created.Actor.ID
	output.Actor = created.Actor

	slog.InfoContext(ctx, "created actor",
		"actor_id", output.ActorID,
		"name", output.Actor.Name)

	o.createItems(ctx, output, preview.Items)

	spells, warnings, err := o.lookupSpells(ctx, preview.SpellNames)
	if err != nil {
		return output, err
	}
	output.Warnings = append(output.Warnings, warnings...)

	o.createItems(ctx, output, spells)

	slog.InfoContext(ctx, "import complete",
		"actor_id", output.ActorID,
		"items", len(output.Items),
		"item_failures", len(output.ItemFailures),
		"warnings", len(output.Warnings))

	return output, nil
}

// rollHitPoints replaces the mapped hit points with a roll. It returns a
// warning when the formula cannot be rolled; the printed value is kept.
func (o *orchestrator) rollHitPoints(preview *PreviewOutput) string {
	hp := preview.Model.HitPoints
	if hp == nil || hp.Formula == "" {
		return "no hit dice formula to roll; using printed hit points"
	}

	rolled, err := derivation.RollHitPoints(o.roller, hp.Formula)
	if err != nil {
		return fmt.Sprintf("could not roll hit points %q: %s", hp.Formula, errors.GetMessage(err))
	}

	preview.Actor.Data.Attributes.HP.Value = rolled
	preview.Actor.Data.Attributes.HP.Max = rolled
	return ""
}

// createItems stores one batch and records per-item failures. A batch-level
// store error fails every item of the batch.
func (o *orchestrator) createItems(ctx context.Context, output *ImportOutput, items []*schema.Item) {
	if len(items) == 0 {
		return
	}

	result, err := o.actorRepo.CreateItems(ctx, actor.CreateItemsInput{
		ActorID: output.ActorID,
		Items:   items,
	})
	if err != nil {
		slog.WarnContext(ctx, "item batch rejected",
			"actor_id", output.ActorID,
			"count", len(items),
			"error", err.Error())
		for _, item := range items {
			output.ItemFailures = append(output.ItemFailures, ItemFailure{Name: item.Name, Err: err})
		}
		return
	}

	output.Items = append(output.Items, result.Items...)
	for _, f := range result.Failures {
		slog.WarnContext(ctx, "item rejected",
			"actor_id", output.ActorID,
			"item", f.Name,
			"error", f.Err.Error())
		output.ItemFailures = append(output.ItemFailures, ItemFailure{Name: f.Name, Err: f.Err})
	}
}

// spellNames lists the spells of every spell group once, in first-seen order
func spellNames(model *creature.Model) []string {
	seen := make(map[string]bool)
	var names []string
	for _, group := range model.Spells {
		for _, name := range group.Spells {
			key := dnd5e.Fold(name)
			if key == "" || seen[key] {
				continue
			}
			seen[key] = true
			names = append(names, name)
		}
	}
	return names
}

func (o *orchestrator) Show(ctx context.Context, input *ShowInput) (*ShowOutput, error) {
	if input == nil || input.ActorID == "" {
		return nil, errors.InvalidArgument("actor ID is required")
	}
	if !idgen.HasPrefix(input.ActorID, idgen.PrefixActor) {
		return nil, errors.InvalidArgumentf("%q is not an actor handle", input.ActorID)
	}

	got, err := o.actorRepo.GetActor(ctx, actor.GetActorInput{ID: input.ActorID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get actor")
	}

	items, err := o.actorRepo.ListItems(ctx, actor.ListItemsInput{ActorID: input.ActorID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list items")
	}

	return &ShowOutput{Actor: got.Actor, Items: items.Items}, nil
}
