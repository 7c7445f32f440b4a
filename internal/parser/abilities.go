package parser

import (
	"regexp"
	"strings"

	"github.com/KirkDiggler/statblock-importer/internal/entities/creature"
	"github.com/KirkDiggler/statblock-importer/internal/entities/dnd5e"
)

var (
	abilityRe        = regexp.MustCompile(`\*\*\*(.*?)\.\*\*\* (.*)`)
	continuationRe   = regexp.MustCompile(`(?:&nbsp;)+\*\*(.*?)\.\*\* (.*)`)
	casterLevelRe    = regexp.MustCompile(`([0-9]+)\w{1,2}-level spellcaster`)
	castingAbilityRe = regexp.MustCompile(`spell ?casting ability is (\w+)`)
)

// spellcastingNames are the headers parsed for caster stats instead of attacks
var spellcastingNames = map[string]bool{
	"Spellcasting":        true,
	"Innate Spellcasting": true,
}

// AbilitiesResult is the output of the traits and actions scan
type AbilitiesResult struct {
	Abilities *creature.Abilities
	// Collisions names every header that replaced an earlier entry
	Collisions []string
}

// Abilities collects every "***Name.*** body" trait or action followed by
// every "&nbsp;**Name.** body" continuation. A repeated name replaces the
// earlier entry in place.
func Abilities(text string) (*AbilitiesResult, bool) {
	result := &AbilitiesResult{Abilities: creature.NewAbilities()}

	put := func(a *creature.Ability) {
		if result.Abilities.Put(a) {
			result.Collisions = append(result.Collisions, a.Name)
		}
	}

	for _, m := range abilityRe.FindAllStringSubmatch(text, -1) {
		name := strings.TrimSpace(m[1])
		body := m[2]
		a := &creature.Ability{Name: name, Description: cleanText(body)}
		if spellcastingNames[name] {
			a.Spellcasting = Spellcasting(body)
		} else {
			a.Attack = Attack(body)
		}
		put(a)
	}

	for _, m := range continuationRe.FindAllStringSubmatch(text, -1) {
		body := m[2]
		put(&creature.Ability{
			Name:        strings.TrimSpace(m[1]),
			Description: cleanText(body),
			Attack:      Attack(body),
		})
	}

	if result.Abilities.Len() == 0 {
		return nil, false
	}
	return result, true
}

// Spellcasting reads the caster level and casting ability of a spellcasting
// trait. Level is 0 for innate casters.
func Spellcasting(body string) *creature.SpellcastingData {
	data := &creature.SpellcastingData{}
	if m := casterLevelRe.FindStringSubmatch(body); m != nil {
		data.Level = atoi(m[1])
	}
	if m := castingAbilityRe.FindStringSubmatch(body); m != nil {
		if ability, ok := dnd5e.AbilityFromName(m[1]); ok {
			data.Ability = ability
		}
	}
	return data
}

// cleanText drops underscore emphasis markup
func cleanText(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, "_", ""))
}
