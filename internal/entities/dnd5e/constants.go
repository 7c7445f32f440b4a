// Package dnd5e holds the closed D&D 5e vocabularies the importer classifies
// stat block tokens against. Everything here is read-only after init.
package dnd5e

import (
	"golang.org/x/text/cases"
)

// Ability is the three-letter abbreviation of an ability score
type Ability string

// Ability constants, in stat block column order
const (
	AbilityStrength     Ability = "str"
	AbilityDexterity    Ability = "dex"
	AbilityConstitution Ability = "con"
	AbilityIntelligence Ability = "int"
	AbilityWisdom       Ability = "wis"
	AbilityCharisma     Ability = "cha"
)

// Abilities lists the six ability scores in stat block column order
var Abilities = []Ability{
	AbilityStrength,
	AbilityDexterity,
	AbilityConstitution,
	AbilityIntelligence,
	AbilityWisdom,
	AbilityCharisma,
}

var abilityNames = map[string]Ability{
	"strength":     AbilityStrength,
	"dexterity":    AbilityDexterity,
	"constitution": AbilityConstitution,
	"intelligence": AbilityIntelligence,
	"wisdom":       AbilityWisdom,
	"charisma":     AbilityCharisma,
}

// Size codes used by the actor schema
const (
	SizeTiny       = "tiny"
	SizeSmall      = "sm"
	SizeMedium     = "med"
	SizeLarge      = "lg"
	SizeHuge       = "huge"
	SizeGargantuan = "grg"
)

// Sizes lists the size words a stat block may open its type line with
var Sizes = []string{"Tiny", "Small", "Medium", "Large", "Huge", "Gargantuan"}

var sizeCodes = map[string]string{
	"Tiny":       SizeTiny,
	"Small":      SizeSmall,
	"Medium":     SizeMedium,
	"Large":      SizeLarge,
	"Huge":       SizeHuge,
	"Gargantuan": SizeGargantuan,
}

// ModifierCategory identifies one damage or condition modifier line
type ModifierCategory string

// Modifier categories, named after their actor trait keys
const (
	CategoryDamageImmunities      ModifierCategory = "di"
	CategoryDamageResistances     ModifierCategory = "dr"
	CategoryDamageVulnerabilities ModifierCategory = "dv"
	CategoryConditionImmunities   ModifierCategory = "ci"
)

var modifierHeaders = map[string]ModifierCategory{
	"Damage Immunities":      CategoryDamageImmunities,
	"Damage Resistances":     CategoryDamageResistances,
	"Damage Vulnerabilities": CategoryDamageVulnerabilities,
	"Condition Immunities":   CategoryConditionImmunities,
}

// DamageTypes is the closed damage type vocabulary
var DamageTypes = []string{
	"acid", "bludgeoning", "cold", "fire", "force", "lightning", "necrotic",
	"piercing", "poison", "psychic", "radiant", "slashing", "thunder",
}

// Conditions is the closed condition vocabulary
var Conditions = []string{
	"blinded", "charmed", "deafened", "diseased", "exhaustion", "frightened",
	"grappled", "incapacitated", "invisible", "paralyzed", "petrified",
	"poisoned", "prone", "restrained", "stunned", "unconscious",
}

// Languages is the closed language vocabulary, stored lowercase
var Languages = []string{
	"aarakocra", "abyssal", "aquan", "auran", "celestial", "common",
	"deep speech", "draconic", "druidic", "dwarvish", "elvish", "giant",
	"gith", "gnoll", "gnomish", "goblin", "halfling", "ignan", "infernal",
	"orc", "primordial", "sylvan", "terran", "cant", "undercommon",
}

// Skill codes keyed by the skill name as printed
var skillCodes = map[string]string{
	"Acrobatics":      "acr",
	"Animal Handling": "ani",
	"Arcana":          "arc",
	"Athletics":       "ath",
	"Deception":       "dec",
	"History":         "his",
	"Insight":         "ins",
	"Intimidation":    "itm",
	"Investigation":   "inv",
	"Medicine":        "med",
	"Nature":          "nat",
	"Perception":      "prc",
	"Performance":     "prf",
	"Persuasion":      "per",
	"Religion":        "rel",
	"Sleight of Hand": "slt",
	"Stealth":         "ste",
	"Survival":        "sur",
}

var (
	fold = cases.Fold()

	damageTypeSet = newFoldedSet(DamageTypes)
	conditionSet  = newFoldedSet(Conditions)
	languageSet   = newFoldedSet(Languages)
	skillByFolded = foldKeys(skillCodes)
)

func newFoldedSet(values []string) map[string]string {
	set := make(map[string]string, len(values))
	for _, v := range values {
		set[fold.String(v)] = v
	}
	return set
}

func foldKeys(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[fold.String(k)] = v
	}
	return out
}
