package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/KirkDiggler/statblock-importer/internal/entities/creature"
	"github.com/KirkDiggler/statblock-importer/internal/entities/dnd5e"
)

var (
	nameRe       = regexp.MustCompile(`(?m)^[>\s]*##\s+(\S.*)`)
	sizeLineRe   = regexp.MustCompile(`(?m)^[>\s]*\*(\w+) (\w+)[^*\n]*, ([^*\n]+?)\*`)
	armorRe      = regexp.MustCompile(`\*\*Armor Class\*\* ([0-9]+) ?(.*)`)
	hitPointsRe  = regexp.MustCompile(`\*\*Hit Points\*\* ([0-9]+)(?: \((.*?)\))?`)
	speedRe      = regexp.MustCompile(`\*\*Speed\*\* ([0-9]+) ft\.?,? ?(.*)`)
	speedModeRe  = regexp.MustCompile(`(\w+) ([0-9]+)`)
	statRe       = regexp.MustCompile(`\|\s*([0-9]+)\s*\([+\-−–]?[0-9]+\)`)
	savesLineRe  = regexp.MustCompile(`\*\*Saving Throws\*\* (.*)`)
	saveRe       = regexp.MustCompile(`(\w{3})\w* ([+\-])([0-9]+)`)
	skillsLineRe = regexp.MustCompile(`\*\*Skills\*\* (.*)`)
	skillRe      = regexp.MustCompile(`^(.+?) ([+\-])([0-9]+)$`)
	modifierRe   = regexp.MustCompile(`\*\*(Damage \w+|Condition Immunities)\*\* (.*)`)
	sensesRe     = regexp.MustCompile(`\*\*Senses\*\* ?(.*?),? ?passive Perception ([0-9]+)`)
	visionRe     = regexp.MustCompile(`(\w+) ([0-9]+)`)
	languagesRe  = regexp.MustCompile(`\*\*Languages\*\* (.*)`)
)

// SizeTypeAlignment is the combined size, creature type and alignment line
type SizeTypeAlignment struct {
	Size      string
	Type      string
	Alignment string
}

// Name extracts the creature name from the "## Name" heading, blockquoted or
// not
func Name(text string) (string, bool) {
	m := nameRe.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	name := strings.TrimSpace(m[1])
	return name, name != ""
}

// ExtractSizeTypeAlignment splits "*Medium humanoid (goblinoid), neutral evil*"
// into its three parts
func ExtractSizeTypeAlignment(text string) (*SizeTypeAlignment, bool) {
	m := sizeLineRe.FindStringSubmatch(text)
	if m == nil {
		return nil, false
	}
	return &SizeTypeAlignment{
		Size:      m[1],
		Type:      m[2],
		Alignment: strings.TrimSpace(m[3]),
	}, true
}

// Armor extracts armor class and its source
func Armor(text string) (*creature.Armor, bool) {
	m := armorRe.FindStringSubmatch(text)
	if m == nil {
		return nil, false
	}
	return &creature.Armor{
		Value:  atoi(m[1]),
		Source: strings.TrimSpace(m[2]),
	}, true
}

// HitPoints extracts average hit points and the dice formula
func HitPoints(text string) (*creature.HitPoints, bool) {
	m := hitPointsRe.FindStringSubmatch(text)
	if m == nil {
		return nil, false
	}
	return &creature.HitPoints{
		Value:   atoi(m[1]),
		Formula: strings.TrimSpace(m[2]),
	}, true
}

// Speed extracts walking speed plus burrow, climb, fly and swim
func Speed(text string) (*creature.Speed, bool) {
	m := speedRe.FindStringSubmatch(text)
	if m == nil {
		return nil, false
	}
	speed := &creature.Speed{Walk: atoi(m[1])}
	special := m[2]
	for _, mode := range speedModeRe.FindAllStringSubmatch(special, -1) {
		value := atoi(mode[2])
		switch dnd5e.Fold(mode[1]) {
		case "burrow":
			speed.Burrow = value
		case "climb":
			speed.Climb = value
		case "fly":
			speed.Fly = value
		case "swim":
			speed.Swim = value
		}
	}
	speed.Hover = strings.Contains(dnd5e.Fold(special), "(hover)")
	return speed, true
}

// Stats extracts the six ability score cells in table order
func Stats(text string) (creature.Stats, bool) {
	cells := statRe.FindAllStringSubmatch(text, 6)
	if len(cells) < len(dnd5e.Abilities) {
		return creature.Stats{}, false
	}
	return creature.Stats{
		Strength:     atoi(cells[0][1]),
		Dexterity:    atoi(cells[1][1]),
		Constitution: atoi(cells[2][1]),
		Intelligence: atoi(cells[3][1]),
		Wisdom:       atoi(cells[4][1]),
		Charisma:     atoi(cells[5][1]),
	}, true
}

// SavingThrows extracts printed save bonuses keyed by ability
func SavingThrows(text string) (creature.SavingThrows, bool) {
	line := savesLineRe.FindStringSubmatch(text)
	if line == nil {
		return nil, false
	}
	saves := make(creature.SavingThrows)
	for _, m := range saveRe.FindAllStringSubmatch(line[1], -1) {
		ability, ok := dnd5e.AbilityFromName(m[1])
		if !ok {
			continue
		}
		saves[ability] = signed(m[2], m[3])
	}
	return saves, true
}

// Skills extracts skill bonuses in printed order
func Skills(text string) ([]creature.SkillValue, bool) {
	line := skillsLineRe.FindStringSubmatch(text)
	if line == nil {
		return nil, false
	}
	var skills []creature.SkillValue
	for _, entry := range strings.Split(line[1], ",") {
		m := skillRe.FindStringSubmatch(strings.TrimSpace(entry))
		if m == nil {
			continue
		}
		skills = append(skills, creature.SkillValue{
			Name:  strings.TrimSpace(m[1]),
			Bonus: signed(m[2], m[3]),
		})
	}
	return skills, true
}

// DamageModifiers extracts the raw text of the damage and condition lines
func DamageModifiers(text string) (creature.DamageModifiers, bool) {
	matches := modifierRe.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil, false
	}
	mods := make(creature.DamageModifiers)
	for _, m := range matches {
		category, ok := dnd5e.ModifierCategoryFromHeader(m[1])
		if !ok {
			continue
		}
		mods[category] = strings.TrimSpace(m[2])
	}
	if len(mods) == 0 {
		return nil, false
	}
	return mods, true
}

// Senses extracts vision distances and passive Perception
func Senses(text string) (*creature.Senses, bool) {
	m := sensesRe.FindStringSubmatch(text)
	if m == nil {
		return nil, false
	}
	senses := &creature.Senses{PassivePerception: atoi(m[2])}
	for _, v := range visionRe.FindAllStringSubmatch(m[1], -1) {
		value := atoi(v[2])
		switch dnd5e.Fold(v[1]) {
		case "blindsight":
			senses.Blindsight = value
		case "darkvision":
			senses.Darkvision = value
		case "tremorsense":
			senses.Tremorsense = value
		case "truesight":
			senses.Truesight = value
		}
	}
	return senses, true
}

// Languages extracts the raw languages line
func Languages(text string) (string, bool) {
	m := languagesRe.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return strings.TrimSpace(m[1]), true
}

// atoi is only called on [0-9]+ captures
func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

func signed(sign, digits string) int {
	n := atoi(digits)
	if sign == "-" {
		return -n
	}
	return n
}
