package conversion

import (
	"strings"

	"github.com/KirkDiggler/statblock-importer/internal/entities/creature"
	"github.com/KirkDiggler/statblock-importer/internal/entities/dnd5e"
	"github.com/KirkDiggler/statblock-importer/internal/entities/schema"
	"github.com/KirkDiggler/statblock-importer/internal/services/derivation"
)

// ToItems converts traits, actions and legendary actions to items
func (m *mapper) ToItems(model *creature.Model) []*schema.Item {
	if model == nil {
		return nil
	}

	items := make([]*schema.Item, 0, model.Abilities.Len()+model.LegendaryActions.Len())
	for _, a := range model.Abilities.All() {
		items = append(items, m.ToItem(a, model.Stats))
	}
	for _, a := range model.LegendaryActions.All() {
		items = append(items, m.ToItem(a, model.Stats))
	}
	return items
}

// ToItem converts one ability to an item
func (m *mapper) ToItem(ability *creature.Ability, stats creature.Stats) *schema.Item {
	if ability == nil {
		return nil
	}

	item := &schema.Item{
		Name: ability.Name,
		Type: schema.ItemTypeFeat,
		Data: schema.ItemData{
			Description: schema.Description{Value: ability.Description},
			Damage:      schema.Damage{Parts: [][2]string{}},
		},
	}

	attack := ability.Attack
	if attack == nil {
		if ability.Legendary {
			item.Data.Activation = legendaryActivation(ability)
		}
		return item
	}

	if a, ok := attackAbility(attack, stats); ok {
		item.Type = schema.ItemTypeWeapon
		item.Data.Ability = string(a)
		item.Data.Equipped = true
	}

	item.Data.ActionType = actionType(item.Type, ability.Description, attack)
	item.Data.Activation = activation(ability, attack)

	for _, part := range attack.Damage {
		item.Data.Damage.Parts = append(item.Data.Damage.Parts, [2]string{part.Formula, part.Type})
	}
	if attack.Save != nil {
		item.Data.Save = &schema.ItemSave{
			Ability: string(attack.Save.Ability),
			DC:      attack.Save.DC,
			Scaling: schema.SaveScalingFlat,
		}
	}

	item.Data.Range, item.Data.Target = rangeAndTarget(attack.Range)

	return item
}

// attackAbility returns the first ability, in column order, whose modifier
// equals the flat bonus of the first damage part
func attackAbility(attack *creature.AttackData, stats creature.Stats) (dnd5e.Ability, bool) {
	bonus, ok := attack.FirstDamageBonus()
	if !ok {
		return "", false
	}
	for _, a := range dnd5e.Abilities {
		if derivation.AbilityModifier(stats.Score(a)) == bonus {
			return a, true
		}
	}
	return "", false
}

func actionType(itemType, description string, attack *creature.AttackData) string {
	switch {
	case itemType == schema.ItemTypeWeapon && (strings.Contains(description, "Ranged") || attack.Range.Double != nil):
		return schema.ActionTypeRangedWeapon
	case itemType == schema.ItemTypeWeapon:
		return schema.ActionTypeMeleeWeapon
	case attack.Save != nil:
		return schema.ActionTypeSave
	default:
		return ""
	}
}

// activation is legendary for legendary actions, a single action for
// anything that deals damage or forces a save, and manual otherwise
func activation(ability *creature.Ability, attack *creature.AttackData) schema.Activation {
	if ability.Legendary {
		return legendaryActivation(ability)
	}
	if len(attack.Damage) > 0 || attack.Save != nil {
		return schema.Activation{Type: schema.ActivationAction, Cost: 1}
	}
	return schema.Activation{}
}

func legendaryActivation(ability *creature.Ability) schema.Activation {
	cost := ability.Cost
	if cost < 1 {
		cost = 1
	}
	return schema.Activation{Type: schema.ActivationLegendary, Cost: cost}
}

// rangeAndTarget encodes the attack shape. A shaped single range is an area
// originating from the creature; otherwise a short/long range wins over a
// plain reach.
func rangeAndTarget(r creature.Range) (*schema.ItemRange, *schema.ItemTarget) {
	switch {
	case r.Single != nil && r.Single.Shape != "":
		return &schema.ItemRange{Units: schema.UnitsSelf}, &schema.ItemTarget{
			Value: r.Single.Value,
			Units: schema.UnitsFeet,
			Type:  r.Single.Shape,
		}
	case r.Double != nil:
		short, long := r.Double.Short, r.Double.Long
		return &schema.ItemRange{Value: &short, Long: &long, Units: r.Double.Units}, nil
	case r.Single != nil:
		value := r.Single.Value
		return &schema.ItemRange{Value: &value, Units: r.Single.Units}, nil
	default:
		return nil, nil
	}
}
