package conversion

import (
	"strconv"

	"github.com/KirkDiggler/statblock-importer/internal/entities/creature"
	"github.com/KirkDiggler/statblock-importer/internal/entities/dnd5e"
	"github.com/KirkDiggler/statblock-importer/internal/entities/schema"
	"github.com/KirkDiggler/statblock-importer/internal/services/derivation"
)

// defaultArmorClass applies when the stat block has no armor class line
const defaultArmorClass = 10

// ToActor converts a creature model to an actor record
func (m *mapper) ToActor(model *creature.Model, prof int) *schema.Actor {
	if model == nil {
		return nil
	}

	actor := &schema.Actor{
		Name: model.Name,
		Type: schema.ActorTypeNPC,
		Data: schema.ActorData{
			Abilities:  convertAbilities(model.Stats, model.SavingThrows, prof),
			Attributes: convertAttributes(model, prof),
			Details:    convertDetails(model),
			Traits:     convertTraits(model),
			Skills:     convertSkills(model.Skills, prof),
			Resources: schema.Resources{
				Legact: schema.Resource{Value: model.LegendaryActionCount, Max: model.LegendaryActionCount},
				Legres: schema.Resource{Value: model.LegendaryResistanceCount, Max: model.LegendaryResistanceCount},
			},
			Spells: convertSpellSlots(model.SpellSlots),
		},
	}

	return actor
}

func convertAbilities(stats creature.Stats, saves creature.SavingThrows, prof int) schema.Abilities {
	var out schema.Abilities
	for _, a := range dnd5e.Abilities {
		score := stats.Score(a)
		proficient := saves.Proficient(a)

		entry := out.Get(a)
		entry.Value = score
		entry.Mod = derivation.AbilityModifier(score)
		entry.Save = derivation.SavingThrow(score, proficient, prof)
		if proficient {
			entry.Proficient = 1
			entry.Prof = prof
		}
	}
	return out
}

func convertAttributes(model *creature.Model, prof int) schema.Attributes {
	attrs := schema.Attributes{
		AC:       schema.ArmorClass{Value: defaultArmorClass},
		Movement: schema.Movement{Units: schema.UnitsFeet},
		Senses: schema.Senses{
			Units:             schema.UnitsFeet,
			PassivePerception: 10 + derivation.AbilityModifier(model.Stats.Wisdom),
		},
		Prof: prof,
	}

	if model.Armor != nil {
		attrs.AC = schema.ArmorClass{Value: model.Armor.Value, Source: model.Armor.Source}
	}
	if model.HitPoints != nil {
		attrs.HP = schema.HitPoints{
			Value:   model.HitPoints.Value,
			Max:     model.HitPoints.Value,
			Formula: model.HitPoints.Formula,
		}
	}
	if sp := model.Speed; sp != nil {
		attrs.Movement.Walk = sp.Walk
		attrs.Movement.Burrow = sp.Burrow
		attrs.Movement.Climb = sp.Climb
		attrs.Movement.Fly = sp.Fly
		attrs.Movement.Swim = sp.Swim
		attrs.Movement.Hover = sp.Hover
	}
	if se := model.Senses; se != nil {
		attrs.Senses.Blindsight = se.Blindsight
		attrs.Senses.Darkvision = se.Darkvision
		attrs.Senses.Tremorsense = se.Tremorsense
		attrs.Senses.Truesight = se.Truesight
		attrs.Senses.PassivePerception = se.PassivePerception
	}
	if sc := spellcasting(model); sc != nil {
		attrs.Spellcasting = string(sc.Ability)
	}

	return attrs
}

func convertDetails(model *creature.Model) schema.Details {
	details := schema.Details{
		Alignment: model.Alignment,
		Type:      model.Type,
	}
	if model.Challenge != nil {
		details.CR = model.Challenge.Rating
		details.XP = schema.Experience{Value: model.Challenge.XP}
	}
	if sc := spellcasting(model); sc != nil {
		details.SpellLevel = sc.Level
	}
	return details
}

func convertTraits(model *creature.Model) schema.Traits {
	traits := schema.Traits{
		Size:      sizeCode(model.Size),
		Languages: emptyTraitSet(),
	}
	if model.Languages != nil {
		traits.Languages = SplitLanguages(*model.Languages)
	}
	for _, category := range dnd5e.ModifierCategories() {
		*traits.Modifier(category) = SplitModifiers(model.DamageModifiers[category])
	}
	return traits
}

// convertSkills keys skills by code. The sheet stores a proficiency
// multiplier, recovered by dividing the printed bonus by prof.
func convertSkills(skills []creature.SkillValue, prof int) map[string]schema.Skill {
	out := make(map[string]schema.Skill, len(skills))
	for _, sk := range skills {
		code, ok := dnd5e.SkillCode(sk.Name)
		if !ok {
			continue
		}
		value := 0
		if prof != 0 {
			value = sk.Bonus / prof
		}
		out[code] = schema.Skill{Value: value}
	}
	return out
}

func convertSpellSlots(slots map[int]int) map[string]schema.SpellSlot {
	out := make(map[string]schema.SpellSlot, len(slots))
	for level, count := range slots {
		out["spell"+strconv.Itoa(level)] = schema.SpellSlot{Value: count, Max: count}
	}
	return out
}

// spellcasting returns the first spellcasting trait, if any
func spellcasting(model *creature.Model) *creature.SpellcastingData {
	for _, a := range model.Abilities.All() {
		if a.Spellcasting != nil {
			return a.Spellcasting
		}
	}
	return nil
}
