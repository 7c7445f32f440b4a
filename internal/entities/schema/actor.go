// Package schema defines the actor and item records handed to the document
// store. Field names follow the host sheet layout.
package schema

import "github.com/KirkDiggler/statblock-importer/internal/entities/dnd5e"

// ActorTypeNPC is the only actor type produced by an import
const ActorTypeNPC = "npc"

// Actor is one imported creature
type Actor struct {
	ID        string    `json:"id,omitempty" yaml:"id,omitempty"`
	Name      string    `json:"name" yaml:"name"`
	Type      string    `json:"type" yaml:"type"`
	Data      ActorData `json:"data" yaml:"data"`
	CreatedAt int64     `json:"createdAt,omitempty" yaml:"createdAt,omitempty"`
}

// ActorData is the sheet payload of an actor
type ActorData struct {
	Abilities  Abilities            `json:"abilities" yaml:"abilities"`
	Attributes Attributes           `json:"attributes" yaml:"attributes"`
	Details    Details              `json:"details" yaml:"details"`
	Traits     Traits               `json:"traits" yaml:"traits"`
	Skills     map[string]Skill     `json:"skills" yaml:"skills"`
	Resources  Resources            `json:"resources" yaml:"resources"`
	Spells     map[string]SpellSlot `json:"spells" yaml:"spells"`
}

// Abilities holds one entry per ability score
type Abilities struct {
	Str AbilityScore `json:"str" yaml:"str"`
	Dex AbilityScore `json:"dex" yaml:"dex"`
	Con AbilityScore `json:"con" yaml:"con"`
	Int AbilityScore `json:"int" yaml:"int"`
	Wis AbilityScore `json:"wis" yaml:"wis"`
	Cha AbilityScore `json:"cha" yaml:"cha"`
}

// Get returns the entry for a
func (a *Abilities) Get(ability dnd5e.Ability) *AbilityScore {
	switch ability {
	case dnd5e.AbilityStrength:
		return &a.Str
	case dnd5e.AbilityDexterity:
		return &a.Dex
	case dnd5e.AbilityConstitution:
		return &a.Con
	case dnd5e.AbilityIntelligence:
		return &a.Int
	case dnd5e.AbilityWisdom:
		return &a.Wis
	case dnd5e.AbilityCharisma:
		return &a.Cha
	default:
		return nil
	}
}

// AbilityScore is a score with its derived modifier and save.
// Proficient is 1 or 0.
type AbilityScore struct {
	Value      int `json:"value" yaml:"value"`
	Proficient int `json:"proficient" yaml:"proficient"`
	Prof       int `json:"prof" yaml:"prof"`
	Mod        int `json:"mod" yaml:"mod"`
	Save       int `json:"save" yaml:"save"`
}

// Attributes holds combat attributes
type Attributes struct {
	AC           ArmorClass `json:"ac" yaml:"ac"`
	HP           HitPoints  `json:"hp" yaml:"hp"`
	Movement     Movement   `json:"movement" yaml:"movement"`
	Senses       Senses     `json:"senses" yaml:"senses"`
	Prof         int        `json:"prof" yaml:"prof"`
	Spellcasting string     `json:"spellcasting" yaml:"spellcasting"`
}

type ArmorClass struct {
	Value  int    `json:"value" yaml:"value"`
	Source string `json:"source" yaml:"source"`
}

type HitPoints struct {
	Value   int    `json:"value" yaml:"value"`
	Max     int    `json:"max" yaml:"max"`
	Formula string `json:"formula" yaml:"formula"`
}

type Movement struct {
	Burrow int    `json:"burrow" yaml:"burrow"`
	Climb  int    `json:"climb" yaml:"climb"`
	Fly    int    `json:"fly" yaml:"fly"`
	Swim   int    `json:"swim" yaml:"swim"`
	Walk   int    `json:"walk" yaml:"walk"`
	Units  string `json:"units" yaml:"units"`
	Hover  bool   `json:"hover" yaml:"hover"`
}

type Senses struct {
	Blindsight        int    `json:"blindsight" yaml:"blindsight"`
	Darkvision        int    `json:"darkvision" yaml:"darkvision"`
	Tremorsense       int    `json:"tremorsense" yaml:"tremorsense"`
	Truesight         int    `json:"truesight" yaml:"truesight"`
	Units             string `json:"units" yaml:"units"`
	PassivePerception int    `json:"passivePerception" yaml:"passivePerception"`
}

// Details holds descriptive fields
type Details struct {
	Alignment  string     `json:"alignment" yaml:"alignment"`
	Type       string     `json:"type" yaml:"type"`
	CR         float64    `json:"cr" yaml:"cr"`
	XP         Experience `json:"xp" yaml:"xp"`
	SpellLevel int        `json:"spellLevel" yaml:"spellLevel"`
}

type Experience struct {
	Value int `json:"value" yaml:"value"`
}

// Traits holds size, languages and the four modifier categories
type Traits struct {
	Size      string   `json:"size" yaml:"size"`
	Languages TraitSet `json:"languages" yaml:"languages"`
	DI        TraitSet `json:"di" yaml:"di"`
	DR        TraitSet `json:"dr" yaml:"dr"`
	DV        TraitSet `json:"dv" yaml:"dv"`
	CI        TraitSet `json:"ci" yaml:"ci"`
}

// Modifier returns the trait set for a damage or condition category
func (t *Traits) Modifier(c dnd5e.ModifierCategory) *TraitSet {
	switch c {
	case dnd5e.CategoryDamageImmunities:
		return &t.DI
	case dnd5e.CategoryDamageResistances:
		return &t.DR
	case dnd5e.CategoryDamageVulnerabilities:
		return &t.DV
	case dnd5e.CategoryConditionImmunities:
		return &t.CI
	default:
		return nil
	}
}

// TraitSet splits entries into known vocabulary values and a
// semicolon-joined custom remainder
type TraitSet struct {
	Value  []string `json:"value" yaml:"value"`
	Custom string   `json:"custom" yaml:"custom"`
}

// Skill value is 0 (none), 1 (proficient) or 2 (expertise)
type Skill struct {
	Value int `json:"value" yaml:"value"`
}

type Resources struct {
	Legact Resource `json:"legact" yaml:"legact"`
	Legres Resource `json:"legres" yaml:"legres"`
}

type Resource struct {
	Value int `json:"value" yaml:"value"`
	Max   int `json:"max" yaml:"max"`
}

type SpellSlot struct {
	Value int `json:"value" yaml:"value"`
	Max   int `json:"max" yaml:"max"`
}
