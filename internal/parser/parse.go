package parser

import (
	"github.com/KirkDiggler/statblock-importer/internal/entities/creature"
	"github.com/KirkDiggler/statblock-importer/internal/errors"
)

// Parse runs every extractor and block parser over text. A missing name or
// stat table is malformed input and returns an InvalidArgument error; every
// other missing fragment is left nil.
func Parse(text string) (*creature.Model, error) {
	vb := errors.NewValidationBuilder()

	name, ok := Name(text)
	if !ok {
		vb.RequiredField("name")
	}
	stats, ok := Stats(text)
	if !ok {
		vb.Field("stats", "expected 6 ability scores")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	model := &creature.Model{
		Name:  name,
		Stats: stats,
	}

	if sta, ok := ExtractSizeTypeAlignment(text); ok {
		model.Size = sta.Size
		model.Type = sta.Type
		model.Alignment = sta.Alignment
	}
	if armor, ok := Armor(text); ok {
		model.Armor = armor
	}
	if hp, ok := HitPoints(text); ok {
		model.HitPoints = hp
	}
	if speed, ok := Speed(text); ok {
		model.Speed = speed
	}
	if saves, ok := SavingThrows(text); ok {
		model.SavingThrows = saves
	}
	if skills, ok := Skills(text); ok {
		model.Skills = skills
	}
	if mods, ok := DamageModifiers(text); ok {
		model.DamageModifiers = mods
	}
	if senses, ok := Senses(text); ok {
		model.Senses = senses
	}
	if languages, ok := Languages(text); ok {
		model.Languages = &languages
	}
	if challenge, ok := Challenge(text); ok {
		model.Challenge = challenge
	}

	if result, ok := Abilities(text); ok {
		model.Abilities = result.Abilities
		model.Collisions = append(model.Collisions, result.Collisions...)
	}
	if actions, collisions, ok := LegendaryActions(text); ok {
		model.LegendaryActions = actions
		model.Collisions = append(model.Collisions, collisions...)
	}
	if n, ok := LegendaryActionCount(text); ok {
		model.LegendaryActionCount = n
	}
	if n, ok := LegendaryResistanceCount(text); ok {
		model.LegendaryResistanceCount = n
	}

	if spells, ok := Spells(text); ok {
		model.Spells = spells
	}
	if slots, ok := SpellSlots(text); ok {
		model.SpellSlots = slots
	}

	return model, nil
}
