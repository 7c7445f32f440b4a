package schema

// Item types
const (
	ItemTypeWeapon = "weapon"
	ItemTypeFeat   = "feat"
	ItemTypeSpell  = "spell"
)

// Action types
const (
	ActionTypeMeleeWeapon  = "mwak"
	ActionTypeRangedWeapon = "rwak"
	ActionTypeSave         = "save"
)

// Activation types
const (
	ActivationAction    = "action"
	ActivationLegendary = "legendary"
)

// Units
const (
	UnitsFeet  = "ft"
	UnitsSelf  = "self"
	UnitsTouch = "touch"
)

// Save scaling. A flat DC is printed on the item; a spell DC comes from the
// caster's spellcasting ability.
const (
	SaveScalingFlat  = "flat"
	SaveScalingSpell = "spell"
)

// Item is one attack, feature or spell owned by an actor
type Item struct {
	ID      string   `json:"id,omitempty" yaml:"id,omitempty"`
	ActorID string   `json:"actorId,omitempty" yaml:"actorId,omitempty"`
	Name    string   `json:"name" yaml:"name"`
	Type    string   `json:"type" yaml:"type"`
	Data    ItemData `json:"data" yaml:"data"`
}

type ItemData struct {
	Description Description `json:"description" yaml:"description"`
	Activation  Activation  `json:"activation" yaml:"activation"`
	Ability     string      `json:"ability,omitempty" yaml:"ability,omitempty"`
	ActionType  string      `json:"actionType,omitempty" yaml:"actionType,omitempty"`
	Damage      Damage      `json:"damage" yaml:"damage"`
	Save        *ItemSave   `json:"save,omitempty" yaml:"save,omitempty"`
	Equipped    bool        `json:"equipped" yaml:"equipped"`
	Range       *ItemRange  `json:"range,omitempty" yaml:"range,omitempty"`
	Target      *ItemTarget `json:"target,omitempty" yaml:"target,omitempty"`
	Spell       *SpellData  `json:"spell,omitempty" yaml:"spell,omitempty"`
}

type Description struct {
	Value string `json:"value" yaml:"value"`
}

// Activation with an empty Type is resolved manually at the table
type Activation struct {
	Type      string `json:"type" yaml:"type"`
	Cost      int    `json:"cost" yaml:"cost"`
	Condition string `json:"condition" yaml:"condition"`
}

// Damage parts are [formula, damage type] pairs
type Damage struct {
	Parts [][2]string `json:"parts" yaml:"parts"`
}

type ItemSave struct {
	Ability string `json:"ability" yaml:"ability"`
	DC      int    `json:"dc" yaml:"dc"`
	Scaling string `json:"scaling" yaml:"scaling"`
}

// ItemRange leaves Value and Long nil for self-originating effects
type ItemRange struct {
	Value *int   `json:"value" yaml:"value"`
	Long  *int   `json:"long" yaml:"long"`
	Units string `json:"units" yaml:"units"`
}

type ItemTarget struct {
	Value int    `json:"value" yaml:"value"`
	Units string `json:"units" yaml:"units"`
	Type  string `json:"type" yaml:"type"`
}

// SpellData carries the compendium fields of a spell item
type SpellData struct {
	Key           string   `json:"key" yaml:"key"`
	Level         int      `json:"level" yaml:"level"`
	School        string   `json:"school" yaml:"school"`
	CastingTime   string   `json:"castingTime" yaml:"castingTime"`
	Range         string   `json:"range" yaml:"range"`
	Duration      string   `json:"duration" yaml:"duration"`
	Concentration bool     `json:"concentration" yaml:"concentration"`
	Ritual        bool     `json:"ritual" yaml:"ritual"`
	Classes       []string `json:"classes" yaml:"classes"`
}
