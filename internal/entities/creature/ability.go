package creature

import (
	"encoding/json"

	"github.com/KirkDiggler/statblock-importer/internal/entities/dnd5e"
)

// Ability is a named trait, action or legendary action. At most one of
// Attack and Spellcasting is set.
type Ability struct {
	Name        string
	Description string

	// Legendary is set for entries of the legendary actions block, which
	// always carry a Cost of at least 1
	Legendary bool
	Cost      int

	Attack       *AttackData
	Spellcasting *SpellcastingData
}

// AttackData is what the attack sub-parser recovers from an ability body
type AttackData struct {
	Damage []DamagePart
	Range  Range
	Save   *Save
	ToHit  *int
}

// FirstDamageBonus returns the flat bonus of the first damage part, if any
func (a *AttackData) FirstDamageBonus() (int, bool) {
	if a == nil || len(a.Damage) == 0 || a.Damage[0].Bonus == nil {
		return 0, false
	}
	return *a.Damage[0].Bonus, true
}

// DamagePart is one "(XdY + Z) type damage" occurrence. Formula carries the
// "@mod" placeholder when the printed roll had a flat bonus.
type DamagePart struct {
	Formula string
	Type    string
	Bonus   *int
}

// Range holds whichever range forms appeared in the ability text
type Range struct {
	Single *SingleRange
	Double *DoubleRange
}

// SingleRange is a reach, a simple range or a self-originating area when
// Shape is set
type SingleRange struct {
	Value int
	Units string
	Shape string
}

// DoubleRange is a short/long weapon range
type DoubleRange struct {
	Short int
	Long  int
	Units string
}

// Save is a saving throw demanded by an ability
type Save struct {
	DC      int
	Ability dnd5e.Ability
}

// SpellcastingData summarizes a Spellcasting trait
type SpellcastingData struct {
	Level   int
	Ability dnd5e.Ability
}

// Abilities is an ordered collection of abilities keyed by name. Put on an
// existing name replaces the entry in place.
type Abilities struct {
	order []*Ability
	index map[string]int
}

// NewAbilities creates an empty collection
func NewAbilities() *Abilities {
	return &Abilities{index: make(map[string]int)}
}

// Put stores a, replacing any entry with the same name. It reports whether an
// entry was replaced.
func (c *Abilities) Put(a *Ability) bool {
	if i, ok := c.index[a.Name]; ok {
		c.order[i] = a
		return true
	}
	c.index[a.Name] = len(c.order)
	c.order = append(c.order, a)
	return false
}

// Get returns the ability with the given name
func (c *Abilities) Get(name string) (*Ability, bool) {
	if c == nil {
		return nil, false
	}
	i, ok := c.index[name]
	if !ok {
		return nil, false
	}
	return c.order[i], true
}

// All returns the abilities in first-seen order
func (c *Abilities) All() []*Ability {
	if c == nil {
		return nil
	}
	out := make([]*Ability, len(c.order))
	copy(out, c.order)
	return out
}

// Len returns the number of abilities
func (c *Abilities) Len() int {
	if c == nil {
		return 0
	}
	return len(c.order)
}

// MarshalJSON renders the collection as a list in first-seen order
func (c *Abilities) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.All())
}

// MarshalYAML renders the collection as a list in first-seen order
func (c *Abilities) MarshalYAML() (interface{}, error) {
	return c.All(), nil
}
