package parser

import (
	"regexp"
	"sort"
	"strings"

	"github.com/KirkDiggler/statblock-importer/internal/entities/creature"
)

// Spell group keys that are not spell levels
const (
	SpellGroupCantrips = "Cantrips"
	SpellGroupAtWill   = "atWill"
)

var (
	leveledSpellsRe = regexp.MustCompile(`(Cantrips|([0-9]+)\w{1,2} level) \(.*?\): _(.*)_`)
	atWillSpellsRe  = regexp.MustCompile(`At will: _(.*)_`)
	perDaySpellsRe  = regexp.MustCompile(`([0-9]+/day)(?: each)?: _(.*)_`)
	spellSlotsRe    = regexp.MustCompile(`([0-9]+)\w{1,2} level \(([0-9]+) slots?\)`)
)

type spellLine struct {
	pos    int
	key    string
	spells []string
}

// Spells collects the spell list lines into groups ordered by first
// appearance. Lines that share a key are merged.
func Spells(text string) ([]creature.SpellGroup, bool) {
	var lines []spellLine

	for _, idx := range leveledSpellsRe.FindAllStringSubmatchIndex(text, -1) {
		key := SpellGroupCantrips
		if idx[4] >= 0 {
			key = text[idx[4]:idx[5]]
		}
		lines = append(lines, spellLine{pos: idx[0], key: key, spells: splitSpells(text[idx[6]:idx[7]])})
	}
	for _, idx := range atWillSpellsRe.FindAllStringSubmatchIndex(text, -1) {
		lines = append(lines, spellLine{pos: idx[0], key: SpellGroupAtWill, spells: splitSpells(text[idx[2]:idx[3]])})
	}
	for _, idx := range perDaySpellsRe.FindAllStringSubmatchIndex(text, -1) {
		lines = append(lines, spellLine{pos: idx[0], key: text[idx[2]:idx[3]], spells: splitSpells(text[idx[4]:idx[5]])})
	}

	if len(lines) == 0 {
		return nil, false
	}
	sort.SliceStable(lines, func(i, j int) bool { return lines[i].pos < lines[j].pos })

	var groups []creature.SpellGroup
	index := make(map[string]int)
	for _, line := range lines {
		if i, ok := index[line.key]; ok {
			groups[i].Spells = append(groups[i].Spells, line.spells...)
			continue
		}
		index[line.key] = len(groups)
		groups = append(groups, creature.SpellGroup{Key: line.key, Spells: line.spells})
	}
	return groups, true
}

// SpellSlots reads "Nth level (M slots)" into level -> slots
func SpellSlots(text string) (map[int]int, bool) {
	matches := spellSlotsRe.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil, false
	}
	slots := make(map[int]int, len(matches))
	for _, m := range matches {
		slots[atoi(m[1])] = atoi(m[2])
	}
	return slots, true
}

func splitSpells(list string) []string {
	list = strings.NewReplacer("*", "", "_", "").Replace(list)
	var spells []string
	for _, name := range strings.Split(list, ",") {
		if name = strings.TrimSpace(name); name != "" {
			spells = append(spells, name)
		}
	}
	return spells
}
