package conversion

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/KirkDiggler/statblock-importer/internal/clients/compendium"
	"github.com/KirkDiggler/statblock-importer/internal/entities/dnd5e"
	"github.com/KirkDiggler/statblock-importer/internal/entities/schema"
)

var (
	castingTimeRegex = regexp.MustCompile(`^([0-9]+) (bonus action|reaction|action|minute|hour)`)
	spellRangeRegex  = regexp.MustCompile(`^([0-9]+) (?:feet|foot|ft)`)
)

var activationTypes = map[string]string{
	"action":       schema.ActivationAction,
	"bonus action": "bonus",
	"reaction":     "reaction",
	"minute":       "minute",
	"hour":         "hour",
}

// ToSpellItem converts a compendium spell to a spell item
func (m *mapper) ToSpellItem(spell *compendium.Spell) *schema.Item {
	if spell == nil {
		return nil
	}

	item := &schema.Item{
		Name: spell.Name,
		Type: schema.ItemTypeSpell,
		Data: schema.ItemData{
			Description: schema.Description{Value: spell.Description},
			Activation:  spellActivation(spell.CastingTime),
			Damage:      schema.Damage{Parts: [][2]string{}},
			Range:       spellRange(spell.Range),
			Spell: &schema.SpellData{
				Key:           spell.Key,
				Level:         spell.Level,
				School:        spell.School,
				CastingTime:   spell.CastingTime,
				Range:         spell.Range,
				Duration:      spell.Duration,
				Concentration: spell.Concentration,
				Ritual:        spell.Ritual,
				Classes:       append([]string{}, spell.Classes...),
			},
		},
	}

	if spell.BaseDamage != "" {
		item.Data.Damage.Parts = append(item.Data.Damage.Parts, [2]string{spell.BaseDamage, strings.ToLower(spell.DamageType)})
	}
	if spell.SaveAbility != "" {
		if a, ok := dnd5e.AbilityFromName(spell.SaveAbility); ok {
			item.Data.ActionType = schema.ActionTypeSave
			item.Data.Save = &schema.ItemSave{Ability: string(a), Scaling: schema.SaveScalingSpell}
		}
	}
	if spell.AreaType != "" {
		item.Data.Target = &schema.ItemTarget{
			Value: spell.AreaSize,
			Units: schema.UnitsFeet,
			Type:  spell.AreaType,
		}
	}

	return item
}

func spellActivation(castingTime string) schema.Activation {
	m := castingTimeRegex.FindStringSubmatch(strings.ToLower(strings.TrimSpace(castingTime)))
	if m == nil {
		return schema.Activation{}
	}
	cost, _ := strconv.Atoi(m[1])
	return schema.Activation{Type: activationTypes[m[2]], Cost: cost}
}

// spellRange encodes "Self", "Touch" and "N feet" ranges. Anything else is
// left for manual entry.
func spellRange(raw string) *schema.ItemRange {
	lower := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case strings.HasPrefix(lower, schema.UnitsSelf):
		return &schema.ItemRange{Units: schema.UnitsSelf}
	case lower == schema.UnitsTouch:
		return &schema.ItemRange{Units: schema.UnitsTouch}
	}
	m := spellRangeRegex.FindStringSubmatch(lower)
	if m == nil {
		return nil
	}
	value, _ := strconv.Atoi(m[1])
	return &schema.ItemRange{Value: &value, Units: schema.UnitsFeet}
}
