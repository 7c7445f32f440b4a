package compendium

import (
	"fmt"
	"strings"

	"github.com/fadedpez/dnd5e-api/entities"
)

// Spell is a compendium spell record
type Spell struct {
	Key           string
	Name          string
	Level         int
	School        string
	CastingTime   string
	Range         string
	Duration      string
	Concentration bool
	Ritual        bool
	Classes       []string

	// DamageType and BaseDamage are empty for spells that deal no damage
	DamageType string
	BaseDamage string

	// SaveAbility is the API ability name ("DEX") of the saving throw, if any
	SaveAbility string
	SaveSuccess string

	// AreaType and AreaSize describe an area of effect in feet
	AreaType string
	AreaSize int

	Description string
}

func convertSpell(spell *entities.Spell) *Spell {
	out := &Spell{
		Key:           spell.Key,
		Name:          spell.Name,
		Level:         spell.SpellLevel,
		CastingTime:   spell.CastingTime,
		Range:         spell.Range,
		Duration:      spell.Duration,
		Concentration: spell.Concentration,
		Ritual:        spell.Ritual,
	}
	if spell.SpellSchool != nil {
		out.School = spell.SpellSchool.Name
	}
	for _, class := range spell.SpellClasses {
		if class != nil {
			out.Classes = append(out.Classes, class.Name)
		}
	}
	if spell.SpellDamage != nil {
		if spell.SpellDamage.SpellDamageType != nil {
			out.DamageType = spell.SpellDamage.SpellDamageType.Name
		}
		if spell.SpellDamage.SpellDamageAtSlotLevel != nil {
			out.BaseDamage = baseDamage(spell.SpellLevel, spell.SpellDamage.SpellDamageAtSlotLevel)
		}
	}
	if spell.DC != nil {
		if spell.DC.DCType != nil {
			out.SaveAbility = spell.DC.DCType.Name
		}
		out.SaveSuccess = spell.DC.DCSuccess
	}
	if spell.AreaOfEffect != nil {
		out.AreaType = spell.AreaOfEffect.Type
		out.AreaSize = spell.AreaOfEffect.Size
	}
	out.Description = describe(out)
	return out
}

// baseDamage returns the damage at the spell's lowest casting level
func baseDamage(level int, slots *entities.SpellDamageAtSlotLevel) string {
	switch level {
	case 0, 1:
		return slots.FirstLevel
	case 2:
		return slots.SecondLevel
	case 3:
		return slots.ThirdLevel
	case 4:
		return slots.FourthLevel
	case 5:
		return slots.FifthLevel
	case 6:
		return slots.SixthLevel
	case 7:
		return slots.SeventhLevel
	case 8:
		return slots.EighthLevel
	case 9:
		return slots.NinthLevel
	default:
		return ""
	}
}

// describe builds a summary from the structured fields. The API does not
// carry the full rules text.
func describe(s *Spell) string {
	level := "Cantrip"
	if s.Level > 0 {
		level = fmt.Sprintf("Level %d", s.Level)
	}
	school := s.School
	if school == "" {
		school = "Unknown School"
	}

	parts := []string{fmt.Sprintf("%s %s spell", level, school)}
	if s.CastingTime != "" {
		parts = append(parts, "Casting Time: "+s.CastingTime)
	}
	if s.Range != "" {
		parts = append(parts, "Range: "+s.Range)
	}
	if s.Duration != "" {
		parts = append(parts, "Duration: "+s.Duration)
	}

	var properties []string
	if s.Ritual {
		properties = append(properties, "Ritual")
	}
	if s.Concentration {
		properties = append(properties, "Concentration")
	}
	if len(properties) > 0 {
		parts = append(parts, "Properties: "+strings.Join(properties, ", "))
	}

	if s.DamageType != "" {
		parts = append(parts, "Damage Type: "+s.DamageType)
	}
	if s.BaseDamage != "" {
		parts = append(parts, "Base Damage: "+s.BaseDamage)
	}
	if s.SaveAbility != "" {
		save := s.SaveAbility + " Save"
		if s.SaveSuccess != "" {
			save += fmt.Sprintf(" (%s)", s.SaveSuccess)
		}
		parts = append(parts, save)
	}
	if s.AreaType != "" {
		parts = append(parts, fmt.Sprintf("Area: %s (%d ft)", s.AreaType, s.AreaSize))
	}
	if len(s.Classes) > 0 {
		parts = append(parts, "Classes: "+strings.Join(s.Classes, ", "))
	}

	return strings.Join(parts, ". ")
}
