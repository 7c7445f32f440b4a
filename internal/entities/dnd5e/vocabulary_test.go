package dnd5e_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/statblock-importer/internal/entities/dnd5e"
)

func TestAbilityFromName(t *testing.T) {
	testCases := []struct {
		input    string
		expected dnd5e.Ability
		ok       bool
	}{
		{"Dexterity", dnd5e.AbilityDexterity, true},
		{"wisdom", dnd5e.AbilityWisdom, true},
		{"Con", dnd5e.AbilityConstitution, true},
		{"CHA", dnd5e.AbilityCharisma, true},
		{"Luck", "", false},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, ok := dnd5e.AbilityFromName(tc.input)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestSizeCodeRoundTrip(t *testing.T) {
	for _, size := range dnd5e.Sizes {
		t.Run(size, func(t *testing.T) {
			code, ok := dnd5e.SizeCode(size)
			assert.True(t, ok)

			back, ok := dnd5e.SizeFromCode(code)
			assert.True(t, ok)
			assert.Equal(t, size, back)
		})
	}

	_, ok := dnd5e.SizeCode("Colossal")
	assert.False(t, ok)
}

func TestSkillCode(t *testing.T) {
	code, ok := dnd5e.SkillCode("Sleight of Hand")
	assert.True(t, ok)
	assert.Equal(t, "slt", code)

	code, ok = dnd5e.SkillCode("animal handling")
	assert.True(t, ok)
	assert.Equal(t, "ani", code)

	_, ok = dnd5e.SkillCode("Basket Weaving")
	assert.False(t, ok)
}

func TestStandardModifier(t *testing.T) {
	v, ok := dnd5e.StandardModifier(" Fire ")
	assert.True(t, ok)
	assert.Equal(t, "fire", v)

	v, ok = dnd5e.StandardModifier("poisoned")
	assert.True(t, ok)
	assert.Equal(t, "poisoned", v)

	_, ok = dnd5e.StandardModifier("slashing from nonmagical attacks")
	assert.False(t, ok)
}

func TestStandardLanguage(t *testing.T) {
	v, ok := dnd5e.StandardLanguage("Deep Speech")
	assert.True(t, ok)
	assert.Equal(t, "deep speech", v)

	_, ok = dnd5e.StandardLanguage("Thieves' Cant")
	assert.False(t, ok)
}
