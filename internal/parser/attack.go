package parser

import (
	"regexp"

	"github.com/KirkDiggler/statblock-importer/internal/entities/creature"
	"github.com/KirkDiggler/statblock-importer/internal/entities/dnd5e"
)

var (
	damageRe      = regexp.MustCompile(`\(([0-9]+d[0-9]+)(?: ?([+\-]) ?([0-9]+))?\) (\w+) damage`)
	singleRangeRe = regexp.MustCompile(` ([0-9]+)[ \-](?:ft|feet|foot)\b(?: (line|cone|cube|sphere))?`)
	doubleRangeRe = regexp.MustCompile(` ([0-9]+)/([0-9]+) (\w+)`)
	attackSaveRe  = regexp.MustCompile(`DC ([0-9]+) (\w+)`)
	toHitRe       = regexp.MustCompile(`([+\-]) ?([0-9]+) to hit`)
)

const (
	// modPlaceholder stands in for the attack ability modifier in a formula
	modPlaceholder = "@mod"
	unitsFeet      = "ft"
)

// Attack runs the attack sub-parser over an ability body
func Attack(body string) *creature.AttackData {
	return &creature.AttackData{
		Damage: attackDamage(body),
		Range:  attackRange(body),
		Save:   attackSave(body),
		ToHit:  attackToHit(body),
	}
}

func attackDamage(body string) []creature.DamagePart {
	var parts []creature.DamagePart
	for _, m := range damageRe.FindAllStringSubmatch(body, -1) {
		part := creature.DamagePart{Formula: m[1], Type: m[4]}
		if m[3] != "" {
			bonus := signed(m[2], m[3])
			part.Bonus = &bonus
			part.Formula = m[1] + " + " + modPlaceholder
		}
		parts = append(parts, part)
	}
	return parts
}

func attackRange(body string) creature.Range {
	var r creature.Range
	if m := singleRangeRe.FindStringSubmatch(body); m != nil {
		r.Single = &creature.SingleRange{
			Value: atoi(m[1]),
			Units: unitsFeet,
			Shape: m[2],
		}
	}
	if m := doubleRangeRe.FindStringSubmatch(body); m != nil {
		r.Double = &creature.DoubleRange{
			Short: atoi(m[1]),
			Long:  atoi(m[2]),
			Units: unitsFeet,
		}
	}
	return r
}

func attackSave(body string) *creature.Save {
	m := attackSaveRe.FindStringSubmatch(body)
	if m == nil {
		return nil
	}
	ability, ok := dnd5e.AbilityFromName(m[2])
	if !ok {
		return nil
	}
	return &creature.Save{DC: atoi(m[1]), Ability: ability}
}

func attackToHit(body string) *int {
	m := toHitRe.FindStringSubmatch(body)
	if m == nil {
		return nil
	}
	v := signed(m[1], m[2])
	return &v
}
