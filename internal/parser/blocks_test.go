package parser_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/statblock-importer/internal/entities/creature"
	"github.com/KirkDiggler/statblock-importer/internal/entities/dnd5e"
	"github.com/KirkDiggler/statblock-importer/internal/parser"
	"github.com/KirkDiggler/statblock-importer/internal/testutils"
)

type BlocksTestSuite struct {
	suite.Suite
}

func TestBlocksTestSuite(t *testing.T) {
	suite.Run(t, new(BlocksTestSuite))
}

func names(abilities []*creature.Ability) []string {
	out := make([]string, len(abilities))
	for i, a := range abilities {
		out[i] = a.Name
	}
	return out
}

func (s *BlocksTestSuite) TestAbilities() {
	s.Run("traits then actions in order", func() {
		result, ok := parser.Abilities(testutils.GoblinStatBlock)
		s.Require().True(ok)
		s.Equal([]string{"Nimble Escape", "Scimitar", "Shortbow"}, names(result.Abilities.All()))
		s.Empty(result.Collisions)
	})

	s.Run("legendary action lines are not traits", func() {
		result, ok := parser.Abilities(testutils.DragonStatBlock)
		s.Require().True(ok)
		s.Equal([]string{
			"Amphibious",
			"Legendary Resistance (3/Day)",
			"Multiattack",
			"Bite",
			"Claw",
			"Acid Breath (Recharge 5–6)",
		}, names(result.Abilities.All()))
	})

	s.Run("underscores are cleared from descriptions", func() {
		result, ok := parser.Abilities(testutils.GoblinStatBlock)
		s.Require().True(ok)
		scimitar, ok := result.Abilities.Get("Scimitar")
		s.Require().True(ok)
		s.NotContains(scimitar.Description, "_")
		s.Contains(scimitar.Description, "Melee Weapon Attack:")
	})

	s.Run("continuations are appended and collisions replace in place", func() {
		result, ok := parser.Abilities(testutils.GnomeStatBlock)
		s.Require().True(ok)
		s.Equal([]string{
			"Innate Spellcasting",
			"Stone Camouflage",
			"War Pick",
			"Poisoned Dart",
		}, names(result.Abilities.All()))
		s.Equal([]string{"Stone Camouflage"}, result.Collisions)

		camo, _ := result.Abilities.Get("Stone Camouflage")
		s.Equal("The gnome blends into stone.", camo.Description)
		s.NotNil(camo.Attack)

		dart, _ := result.Abilities.Get("Poisoned Dart")
		s.Require().NotNil(dart.Attack)
		s.Equal(&creature.DoubleRange{Short: 30, Long: 120, Units: "ft"}, dart.Attack.Range.Double)
	})

	s.Run("spellcasting traits get caster stats", func() {
		result, ok := parser.Abilities(testutils.MageStatBlock)
		s.Require().True(ok)
		casting, ok := result.Abilities.Get("Spellcasting")
		s.Require().True(ok)
		s.Nil(casting.Attack)
		s.Equal(&creature.SpellcastingData{Level: 9, Ability: dnd5e.AbilityIntelligence}, casting.Spellcasting)

		result, ok = parser.Abilities(testutils.GnomeStatBlock)
		s.Require().True(ok)
		innate, _ := result.Abilities.Get("Innate Spellcasting")
		s.Equal(&creature.SpellcastingData{Level: 0, Ability: dnd5e.AbilityIntelligence}, innate.Spellcasting)
	})

	s.Run("none", func() {
		result, ok := parser.Abilities(testutils.MalformedStatBlock)
		s.False(ok)
		s.Nil(result)
	})
}

func (s *BlocksTestSuite) TestLegendaryActions() {
	s.Run("cost defaults to one", func() {
		actions, collisions, ok := parser.LegendaryActions(testutils.DragonStatBlock)
		s.Require().True(ok)
		s.Empty(collisions)
		s.Equal([]string{"Detect", "Tail Attack", "Wing Attack"}, names(actions.All()))

		detect, _ := actions.Get("Detect")
		s.True(detect.Legendary)
		s.Equal(1, detect.Cost)

		wing, _ := actions.Get("Wing Attack")
		s.Equal(2, wing.Cost)
		s.Require().NotNil(wing.Attack)
		s.Equal(&creature.Save{DC: 19, Ability: dnd5e.AbilityDexterity}, wing.Attack.Save)
		s.Equal("2d6 + @mod", wing.Attack.Damage[0].Formula)
	})

	s.Run("singular cost", func() {
		actions, _, ok := parser.LegendaryActions("> **Bite (Costs 1 Action).** The dragon makes a bite attack.\n")
		s.Require().True(ok)
		s.Equal([]string{"Bite"}, names(actions.All()))

		bite, _ := actions.Get("Bite")
		s.Equal(1, bite.Cost)
	})

	s.Run("creature without legendary actions", func() {
		actions, _, ok := parser.LegendaryActions(testutils.GoblinStatBlock)
		s.False(ok)
		s.Nil(actions)
	})
}

func (s *BlocksTestSuite) TestLegendaryCounters() {
	n, ok := parser.LegendaryActionCount(testutils.DragonStatBlock)
	s.True(ok)
	s.Equal(3, n)

	n, ok = parser.LegendaryResistanceCount(testutils.DragonStatBlock)
	s.True(ok)
	s.Equal(3, n)

	_, ok = parser.LegendaryActionCount(testutils.GoblinStatBlock)
	s.False(ok)
	_, ok = parser.LegendaryResistanceCount(testutils.GoblinStatBlock)
	s.False(ok)
}

func (s *BlocksTestSuite) TestSpells() {
	s.Run("leveled spells", func() {
		groups, ok := parser.Spells(testutils.MageStatBlock)
		s.Require().True(ok)
		s.Equal([]creature.SpellGroup{
			{Key: "Cantrips", Spells: []string{"fire bolt", "light", "mage hand", "prestidigitation"}},
			{Key: "1", Spells: []string{"detect magic", "mage armor", "magic missile", "shield"}},
			{Key: "2", Spells: []string{"misty step", "suggestion"}},
			{Key: "3", Spells: []string{"counterspell", "fireball", "fly"}},
			{Key: "4", Spells: []string{"greater invisibility", "ice storm"}},
			{Key: "5", Spells: []string{"cone of cold"}},
		}, groups)
	})

	s.Run("innate spells", func() {
		groups, ok := parser.Spells(testutils.GnomeStatBlock)
		s.Require().True(ok)
		s.Equal([]creature.SpellGroup{
			{Key: "atWill", Spells: []string{"nondetection"}},
			{Key: "1/day", Spells: []string{"blindness/deafness", "blur", "disguise self"}},
		}, groups)
	})

	s.Run("markup is stripped and repeated keys merge", func() {
		text := "At will: _*detect magic*, mage hand_<br>\n3/day: _fog cloud_\nAt will: _light_\n"
		groups, ok := parser.Spells(text)
		s.Require().True(ok)
		s.Equal([]creature.SpellGroup{
			{Key: "atWill", Spells: []string{"detect magic", "mage hand", "light"}},
			{Key: "3/day", Spells: []string{"fog cloud"}},
		}, groups)
	})

	s.Run("no spells", func() {
		_, ok := parser.Spells(testutils.GoblinStatBlock)
		s.False(ok)
	})
}

func (s *BlocksTestSuite) TestSpellSlots() {
	slots, ok := parser.SpellSlots(testutils.MageStatBlock)
	s.Require().True(ok)
	s.Equal(map[int]int{1: 4, 2: 3, 3: 3, 4: 3, 5: 1}, slots)

	_, ok = parser.SpellSlots(testutils.GnomeStatBlock)
	s.False(ok)
}
