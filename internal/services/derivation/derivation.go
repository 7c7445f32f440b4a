// Package derivation computes values the stat block implies but does not
// print: ability modifiers, proficiency bonus and saving throw totals.
package derivation

import (
	"math"

	"github.com/KirkDiggler/statblock-importer/internal/entities/creature"
)

// MinimumProficiency is the proficiency bonus of any creature
const MinimumProficiency = 2

// AbilityModifier returns floor((score-10)/2)
func AbilityModifier(score int) int {
	d := score - 10
	if d < 0 {
		return (d - 1) / 2
	}
	return d / 2
}

// ProficiencyFromChallenge returns max(floor((cr-1)/4)+2, 2)
func ProficiencyFromChallenge(cr float64) int {
	p := int(math.Floor((cr-1)/4)) + 2
	if p < MinimumProficiency {
		return MinimumProficiency
	}
	return p
}

// InferProficiency derives the bonus from the first attack that prints both a
// to-hit bonus and a flat damage bonus. ok is false when no attack qualifies.
func InferProficiency(collections ...*creature.Abilities) (int, bool) {
	for _, c := range collections {
		for _, a := range c.All() {
			if a.Attack == nil || a.Attack.ToHit == nil {
				continue
			}
			bonus, ok := a.Attack.FirstDamageBonus()
			if !ok {
				continue
			}
			return *a.Attack.ToHit - bonus, true
		}
	}
	return 0, false
}

// Proficiency prefers the challenge rating, then inference from attacks, and
// falls back to the minimum
func Proficiency(model *creature.Model) int {
	if model.Challenge != nil {
		return ProficiencyFromChallenge(model.Challenge.Rating)
	}
	if p, ok := InferProficiency(model.Abilities, model.LegendaryActions); ok && p > 0 {
		return p
	}
	return MinimumProficiency
}

// SavingThrow returns the save total for an ability score
func SavingThrow(score int, proficient bool, prof int) int {
	if proficient {
		return AbilityModifier(score) + prof
	}
	return AbilityModifier(score)
}
