// Package creature holds the normalized creature model produced by the stat
// block parser. A Model lives for a single parse-and-map call.
package creature

import "github.com/KirkDiggler/statblock-importer/internal/entities/dnd5e"

// Model is the root aggregate of one parsed stat block
type Model struct {
	Name      string
	Size      string
	Type      string
	Alignment string

	Armor     *Armor
	HitPoints *HitPoints
	Speed     *Speed
	Stats     Stats

	SavingThrows    SavingThrows
	Skills          []SkillValue
	DamageModifiers DamageModifiers
	Senses          *Senses
	Languages       *string
	Challenge       *Challenge

	Abilities        *Abilities
	LegendaryActions *Abilities

	// Counters are zero when the stat block does not mention them
	LegendaryActionCount     int
	LegendaryResistanceCount int

	Spells     []SpellGroup
	SpellSlots map[int]int

	// Collisions lists ability names whose header appeared more than once.
	// The later entry replaced the earlier one.
	Collisions []string
}

// Armor is the armor class line
type Armor struct {
	Value  int
	Source string
}

// HitPoints is the hit points line
type HitPoints struct {
	Value   int
	Formula string
}

// Speed separates the walking speed from special movement modes
type Speed struct {
	Walk   int
	Burrow int
	Climb  int
	Fly    int
	Swim   int
	Hover  bool
}

// Stats holds the six ability scores
type Stats struct {
	Strength     int
	Dexterity    int
	Constitution int
	Intelligence int
	Wisdom       int
	Charisma     int
}

// Score returns the score for an ability
func (s Stats) Score(a dnd5e.Ability) int {
	switch a {
	case dnd5e.AbilityStrength:
		return s.Strength
	case dnd5e.AbilityDexterity:
		return s.Dexterity
	case dnd5e.AbilityConstitution:
		return s.Constitution
	case dnd5e.AbilityIntelligence:
		return s.Intelligence
	case dnd5e.AbilityWisdom:
		return s.Wisdom
	case dnd5e.AbilityCharisma:
		return s.Charisma
	default:
		return 0
	}
}

// SavingThrows maps an ability to its printed save bonus. A nil map means the
// stat block has no saving throws line; a missing key means not proficient.
type SavingThrows map[dnd5e.Ability]int

// Proficient reports whether the creature has a printed save for the ability
func (s SavingThrows) Proficient(a dnd5e.Ability) bool {
	_, ok := s[a]
	return ok
}

// SkillValue is one skill with its total bonus as printed
type SkillValue struct {
	Name  string
	Bonus int
}

// DamageModifiers maps a modifier category to the raw text of its line
type DamageModifiers map[dnd5e.ModifierCategory]string

// Senses holds vision distances in feet and passive Perception
type Senses struct {
	Blindsight        int
	Darkvision        int
	Tremorsense       int
	Truesight         int
	PassivePerception int
}

// Challenge pairs a numeric challenge rating with its XP award
type Challenge struct {
	Rating float64
	XP     int
}

// SpellGroup is one line of a spell list. Key is "Cantrips", "1".."9",
// "atWill" or "<n>/day".
type SpellGroup struct {
	Key    string
	Spells []string
}
