package conversion

import (
	"regexp"
	"strings"

	"github.com/KirkDiggler/statblock-importer/internal/entities/dnd5e"
	"github.com/KirkDiggler/statblock-importer/internal/entities/schema"
)

var (
	tokenSeparatorRegex = regexp.MustCompile(`[,;]`)
	commaRegex          = regexp.MustCompile(`,`)
	leadingAndRegex     = regexp.MustCompile(`(?i)^and\s+`)
)

// customSeparator joins the custom remainder of a trait set
const customSeparator = ";"

// SplitModifiers classifies a damage or condition modifier line. The comma
// list before the first semicolon is tested token by token against the damage
// type and condition vocabulary. Each later clause counts only when the whole
// clause is a vocabulary word and is otherwise kept in Custom as written. A
// list whose last entry carries a qualifier ("slashing from nonmagical
// attacks") is custom as a whole.
func SplitModifiers(raw string) schema.TraitSet {
	set := emptyTraitSet()
	var custom []string
	for i, clause := range strings.Split(raw, ";") {
		clause = strings.TrimSpace(clause)
		if clause == "" {
			continue
		}
		if i > 0 {
			if v, ok := dnd5e.StandardModifier(clause); ok {
				set.Value = append(set.Value, v)
			} else {
				custom = append(custom, clause)
			}
			continue
		}
		tokens := splitTokens(clause, commaRegex)
		if qualified(tokens, dnd5e.StandardModifier) {
			custom = append(custom, clause)
			continue
		}
		for _, token := range tokens {
			if v, ok := dnd5e.StandardModifier(token); ok {
				set.Value = append(set.Value, v)
				continue
			}
			custom = append(custom, token)
		}
	}
	set.Custom = strings.Join(custom, customSeparator)
	return set
}

// SplitLanguages classifies a languages line against the language vocabulary.
// Standard languages are emitted lowercase; custom entries keep their
// spelling. A dash or empty line is an empty set.
func SplitLanguages(raw string) schema.TraitSet {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "—" || trimmed == "-" || trimmed == "–" {
		return emptyTraitSet()
	}
	return split(trimmed, dnd5e.StandardLanguage)
}

// JoinTraitSet renders a trait set back to a single line that splits into
// the same set
func JoinTraitSet(set schema.TraitSet) string {
	parts := append([]string{}, set.Value...)
	if set.Custom != "" {
		parts = append(parts, set.Custom)
	}
	return strings.Join(parts, "; ")
}

func split(raw string, standard func(string) (string, bool)) schema.TraitSet {
	set := emptyTraitSet()
	var custom []string
	for _, token := range splitTokens(raw, tokenSeparatorRegex) {
		if v, ok := standard(token); ok {
			set.Value = append(set.Value, v)
			continue
		}
		custom = append(custom, token)
	}
	set.Custom = strings.Join(custom, customSeparator)
	return set
}

// splitTokens cuts a list on sep and drops blanks and a leading "and"
func splitTokens(raw string, sep *regexp.Regexp) []string {
	var tokens []string
	for _, token := range sep.Split(raw, -1) {
		token = strings.TrimSpace(leadingAndRegex.ReplaceAllString(strings.TrimSpace(token), ""))
		if token != "" {
			tokens = append(tokens, token)
		}
	}
	return tokens
}

// qualified reports whether the last token opens with a vocabulary word and
// goes on past it, which scopes the whole list
func qualified(tokens []string, standard func(string) (string, bool)) bool {
	if len(tokens) == 0 {
		return false
	}
	last := tokens[len(tokens)-1]
	if _, ok := standard(last); ok {
		return false
	}
	words := strings.Fields(last)
	if len(words) < 2 {
		return false
	}
	_, ok := standard(words[0])
	return ok
}

func emptyTraitSet() schema.TraitSet {
	return schema.TraitSet{Value: []string{}}
}

// sizeCode maps a size word to its schema code, defaulting to medium
func sizeCode(size string) string {
	if code, ok := dnd5e.SizeCode(size); ok {
		return code
	}
	return dnd5e.SizeMedium
}
