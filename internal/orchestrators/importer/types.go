package importer

import (
	"github.com/KirkDiggler/statblock-importer/internal/entities/creature"
	"github.com/KirkDiggler/statblock-importer/internal/entities/schema"
)

// ImportInput defines the request for importing a stat block
type ImportInput struct {
	Text string
	// RollHitPoints replaces the printed average with a roll of the hit dice
	RollHitPoints bool
}

// ImportOutput defines the response for importing a stat block
type ImportOutput struct {
	ActorID      string
	Actor        *schema.Actor
	Items        []*schema.Item
	ItemFailures []ItemFailure
	Warnings     []string
}

// ItemFailure is an item the store rejected. The import continues past it.
type ItemFailure struct {
	Name string
	Err  error
}

// PreviewInput defines the request for mapping a stat block without storing it
type PreviewInput struct {
	Text string
}

// PreviewOutput defines the response for a preview
type PreviewOutput struct {
	Model       *creature.Model
	Proficiency int
	Actor       *schema.Actor
	Items       []*schema.Item
	// SpellNames lists the distinct spells an import would look up
	SpellNames []string
	Warnings   []string
}

// ShowInput defines the request for reading a stored actor
type ShowInput struct {
	ActorID string
}

// ShowOutput defines the response for reading a stored actor
type ShowOutput struct {
	Actor *schema.Actor
	Items []*schema.Item
}
