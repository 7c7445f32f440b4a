package conversion_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/statblock-importer/internal/entities/creature"
	"github.com/KirkDiggler/statblock-importer/internal/entities/dnd5e"
	"github.com/KirkDiggler/statblock-importer/internal/entities/schema"
	"github.com/KirkDiggler/statblock-importer/internal/parser"
	"github.com/KirkDiggler/statblock-importer/internal/services/conversion"
	"github.com/KirkDiggler/statblock-importer/internal/services/derivation"
	"github.com/KirkDiggler/statblock-importer/internal/testutils"
)

type ActorTestSuite struct {
	suite.Suite
	mapper conversion.Mapper
}

func TestActorTestSuite(t *testing.T) {
	suite.Run(t, new(ActorTestSuite))
}

func (s *ActorTestSuite) SetupTest() {
	s.mapper = conversion.NewMapper()
}

func (s *ActorTestSuite) parse(text string) *creature.Model {
	model, err := parser.Parse(text)
	s.Require().NoError(err)
	return model
}

func (s *ActorTestSuite) TestGoblin() {
	model := s.parse(testutils.GoblinStatBlock)
	actor := s.mapper.ToActor(model, derivation.Proficiency(model))

	s.Equal("Goblin", actor.Name)
	s.Equal(schema.ActorTypeNPC, actor.Type)

	data := actor.Data
	s.Equal(schema.AbilityScore{Value: 14, Mod: 2, Save: 2}, data.Abilities.Dex)
	s.Equal(schema.AbilityScore{Value: 8, Mod: -1, Save: -1}, data.Abilities.Str)
	s.Equal(schema.ArmorClass{Value: 15, Source: "(leather armor, shield)"}, data.Attributes.AC)
	s.Equal(schema.HitPoints{Value: 7, Max: 7, Formula: "2d6"}, data.Attributes.HP)
	s.Equal(schema.Movement{Walk: 30, Units: schema.UnitsFeet}, data.Attributes.Movement)
	s.Equal(schema.Senses{Darkvision: 60, Units: schema.UnitsFeet, PassivePerception: 9}, data.Attributes.Senses)
	s.Equal(2, data.Attributes.Prof)
	s.Empty(data.Attributes.Spellcasting)

	s.Equal(schema.Details{Alignment: "neutral evil", Type: "humanoid", CR: 0.25, XP: schema.Experience{Value: 50}}, data.Details)

	s.Equal(dnd5e.SizeSmall, data.Traits.Size)
	s.Equal([]string{"common", "goblin"}, data.Traits.Languages.Value)
	s.Empty(data.Traits.Languages.Custom)
	for _, set := range []schema.TraitSet{data.Traits.DI, data.Traits.DR, data.Traits.DV, data.Traits.CI} {
		s.NotNil(set.Value)
		s.Empty(set.Value)
		s.Empty(set.Custom)
	}

	s.Equal(map[string]schema.Skill{"ste": {Value: 3}}, data.Skills)
	s.Equal(schema.Resources{}, data.Resources)
	s.NotNil(data.Spells)
	s.Empty(data.Spells)
}

func (s *ActorTestSuite) TestDragon() {
	model := s.parse(testutils.DragonStatBlock)
	actor := s.mapper.ToActor(model, derivation.Proficiency(model))
	data := actor.Data

	s.Equal(5, data.Attributes.Prof)
	s.Equal(schema.AbilityScore{Value: 14, Proficient: 1, Prof: 5, Mod: 2, Save: 7}, data.Abilities.Dex)
	s.Equal(schema.AbilityScore{Value: 23, Mod: 6, Save: 6}, data.Abilities.Str)
	s.Equal(schema.Movement{Walk: 40, Fly: 80, Swim: 40, Units: schema.UnitsFeet}, data.Attributes.Movement)
	s.Equal(schema.TraitSet{Value: []string{"acid"}}, data.Traits.DI)
	s.Equal(dnd5e.SizeHuge, data.Traits.Size)
	s.Equal(map[string]schema.Skill{"prc": {Value: 2}, "ste": {Value: 1}}, data.Skills)
	s.Equal(schema.Resources{
		Legact: schema.Resource{Value: 3, Max: 3},
		Legres: schema.Resource{Value: 3, Max: 3},
	}, data.Resources)
}

func (s *ActorTestSuite) TestMageSpellcasting() {
	model := s.parse(testutils.MageStatBlock)
	actor := s.mapper.ToActor(model, derivation.Proficiency(model))
	data := actor.Data

	s.Equal(3, data.Attributes.Prof)
	s.Equal(string(dnd5e.AbilityIntelligence), data.Attributes.Spellcasting)
	s.Equal(9, data.Details.SpellLevel)
	s.Equal(map[string]schema.SpellSlot{
		"spell1": {Value: 4, Max: 4},
		"spell2": {Value: 3, Max: 3},
		"spell3": {Value: 3, Max: 3},
		"spell4": {Value: 3, Max: 3},
		"spell5": {Value: 1, Max: 1},
	}, data.Spells)
	s.Equal(6, data.Abilities.Int.Save)
	s.Equal(schema.TraitSet{Value: []string{}, Custom: "any four languages"}, data.Traits.Languages)
}

func (s *ActorTestSuite) TestGnomeTraits() {
	model := s.parse(testutils.GnomeStatBlock)
	actor := s.mapper.ToActor(model, derivation.Proficiency(model))
	traits := actor.Data.Traits

	s.Equal(schema.TraitSet{
		Value:  []string{"poison"},
		Custom: "bludgeoning, piercing, and slashing from nonmagical attacks",
	}, traits.DR)
	s.Equal(schema.TraitSet{Value: []string{"charmed", "exhaustion"}}, traits.CI)
	s.Equal(schema.TraitSet{
		Value:  []string{"gnomish", "terran", "undercommon"},
		Custom: "Thieves' Cant",
	}, traits.Languages)
	s.Equal(string(dnd5e.AbilityIntelligence), actor.Data.Attributes.Spellcasting)
	s.Zero(actor.Data.Details.SpellLevel)
}

func (s *ActorTestSuite) TestDefaults() {
	model := &creature.Model{
		Name:  "Blob",
		Stats: creature.Stats{Strength: 10, Dexterity: 10, Constitution: 10, Intelligence: 10, Wisdom: 14, Charisma: 10},
	}

	actor := s.mapper.ToActor(model, 2)
	data := actor.Data

	s.Equal(schema.ArmorClass{Value: 10}, data.Attributes.AC)
	s.Equal(schema.HitPoints{}, data.Attributes.HP)
	s.Equal(schema.Movement{Units: schema.UnitsFeet}, data.Attributes.Movement)
	s.Equal(schema.Senses{Units: schema.UnitsFeet, PassivePerception: 12}, data.Attributes.Senses)
	s.Equal(schema.Details{}, data.Details)
	s.Equal(dnd5e.SizeMedium, data.Traits.Size)
	s.Equal(schema.TraitSet{Value: []string{}}, data.Traits.Languages)
	s.Empty(data.Skills)
	s.NotNil(data.Skills)
	s.Empty(data.Spells)
	for _, a := range dnd5e.Abilities {
		s.Zero(data.Abilities.Get(a).Proficient)
	}
}

func (s *ActorTestSuite) TestSizeRoundTrip() {
	for _, size := range dnd5e.Sizes {
		s.Run(size, func() {
			actor := s.mapper.ToActor(&creature.Model{Size: size}, 2)
			back, ok := dnd5e.SizeFromCode(actor.Data.Traits.Size)
			s.True(ok)
			s.Equal(size, back)
		})
	}

	actor := s.mapper.ToActor(&creature.Model{Size: "Colossal"}, 2)
	s.Equal(dnd5e.SizeMedium, actor.Data.Traits.Size)
}

func (s *ActorTestSuite) TestSkills() {
	model := &creature.Model{
		Skills: []creature.SkillValue{
			{Name: "Perception", Bonus: 5},
			{Name: "Sleight of Hand", Bonus: 4},
			{Name: "Basket Weaving", Bonus: 9},
		},
	}

	s.Run("divides by proficiency", func() {
		actor := s.mapper.ToActor(model, 2)
		s.Equal(map[string]schema.Skill{"prc": {Value: 2}, "slt": {Value: 2}}, actor.Data.Skills)
	})

	s.Run("zero proficiency", func() {
		actor := s.mapper.ToActor(model, 0)
		s.Equal(map[string]schema.Skill{"prc": {Value: 0}, "slt": {Value: 0}}, actor.Data.Skills)
	})
}

func (s *ActorTestSuite) TestNilModel() {
	s.Nil(s.mapper.ToActor(nil, 2))
	s.Nil(s.mapper.ToItems(nil))
}
