package dnd5e

import "strings"

// Fold case-folds and trims s for vocabulary comparisons
func Fold(s string) string {
	return fold.String(strings.TrimSpace(s))
}

// AbilityFromName converts a full ability name ("Dexterity") or an
// abbreviation ("Dex") to its Ability. ok is false for anything else.
func AbilityFromName(name string) (Ability, bool) {
	folded := Fold(name)
	if a, ok := abilityNames[folded]; ok {
		return a, true
	}
	for _, a := range Abilities {
		if string(a) == folded {
			return a, true
		}
	}
	return "", false
}

// SizeCode converts a size word to its actor schema code
func SizeCode(size string) (string, bool) {
	code, ok := sizeCodes[strings.TrimSpace(size)]
	return code, ok
}

// SizeFromCode reverses SizeCode
func SizeFromCode(code string) (string, bool) {
	for size, c := range sizeCodes {
		if c == code {
			return size, true
		}
	}
	return "", false
}

// ModifierCategoryFromHeader converts a bold line header such as
// "Damage Resistances" to its category
func ModifierCategoryFromHeader(header string) (ModifierCategory, bool) {
	c, ok := modifierHeaders[strings.TrimSpace(header)]
	return c, ok
}

// ModifierCategories lists all categories in actor trait order
func ModifierCategories() []ModifierCategory {
	return []ModifierCategory{
		CategoryConditionImmunities,
		CategoryDamageImmunities,
		CategoryDamageResistances,
		CategoryDamageVulnerabilities,
	}
}

// SkillCode converts a printed skill name to its three-letter code
func SkillCode(name string) (string, bool) {
	code, ok := skillByFolded[Fold(name)]
	return code, ok
}

// StandardModifier reports whether token is a known damage type or condition
// and returns its canonical spelling
func StandardModifier(token string) (string, bool) {
	folded := Fold(token)
	if v, ok := damageTypeSet[folded]; ok {
		return v, true
	}
	v, ok := conditionSet[folded]
	return v, ok
}

// StandardLanguage reports whether token is a known language and returns its
// canonical lowercase spelling
func StandardLanguage(token string) (string, bool) {
	v, ok := languageSet[Fold(token)]
	return v, ok
}
