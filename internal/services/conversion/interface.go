// Package conversion maps a parsed creature model onto the actor and item
// records the document store accepts.
package conversion

import (
	"github.com/KirkDiggler/statblock-importer/internal/clients/compendium"
	"github.com/KirkDiggler/statblock-importer/internal/entities/creature"
	"github.com/KirkDiggler/statblock-importer/internal/entities/schema"
)

// Mapper handles conversions from the creature model to store records.
// It holds no state; every method is deterministic for its input.
//
//go:generate mockgen -destination=mock/mock_mapper.go -package=conversionmock github.com/KirkDiggler/statblock-importer/internal/services/conversion Mapper
type Mapper interface {
	// ToActor builds the actor record. prof is the proficiency bonus chosen
	// by the derivation layer. Missing fragments map to their defaults.
	ToActor(model *creature.Model, prof int) *schema.Actor

	// ToItems builds one item per ability followed by one per legendary
	// action, in parse order.
	ToItems(model *creature.Model) []*schema.Item

	// ToItem builds the item for a single ability. stats select the attack
	// ability of weapons.
	ToItem(ability *creature.Ability, stats creature.Stats) *schema.Item

	// ToSpellItem builds a spell item from a compendium record
	ToSpellItem(spell *compendium.Spell) *schema.Item
}

type mapper struct{}

// NewMapper creates a new mapper instance
func NewMapper() Mapper {
	return &mapper{}
}
