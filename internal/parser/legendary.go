package parser

import (
	"regexp"
	"strings"

	"github.com/KirkDiggler/statblock-importer/internal/entities/creature"
)

var (
	legendaryActionRe     = regexp.MustCompile(`> \*\*([^*].*?)(?: \(Costs ([0-9]+) Actions?\))?\.\*\* (.*)`)
	legendaryCountRe      = regexp.MustCompile(`can take ([0-9]+) legendary actions`)
	legendaryResistanceRe = regexp.MustCompile(`Legendary Resistance \(([0-9]+)/Day\)`)
)

// LegendaryActions collects "> **Name (Costs N Actions).** body" entries.
// Cost defaults to 1.
func LegendaryActions(text string) (*creature.Abilities, []string, bool) {
	actions := creature.NewAbilities()
	var collisions []string
	for _, m := range legendaryActionRe.FindAllStringSubmatch(text, -1) {
		cost := 1
		if m[2] != "" {
			cost = atoi(m[2])
		}
		body := m[3]
		a := &creature.Ability{
			Name:        strings.TrimSpace(m[1]),
			Description: cleanText(body),
			Legendary:   true,
			Cost:        cost,
			Attack:      Attack(body),
		}
		if actions.Put(a) {
			collisions = append(collisions, a.Name)
		}
	}
	if actions.Len() == 0 {
		return nil, nil, false
	}
	return actions, collisions, true
}

// LegendaryActionCount reads "can take N legendary actions"
func LegendaryActionCount(text string) (int, bool) {
	m := legendaryCountRe.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	return atoi(m[1]), true
}

// LegendaryResistanceCount reads "Legendary Resistance (N/Day)"
func LegendaryResistanceCount(text string) (int, bool) {
	m := legendaryResistanceRe.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	return atoi(m[1]), true
}
