package testutils

// Stat block fixtures in the Homebrewery markdown dialect. Each one exercises
// a different slice of the parser.

// GoblinStatBlock is a low CR creature with a fractional challenge rating,
// a melee and a ranged weapon
const GoblinStatBlock = `___
> ## Goblin
>*Small humanoid (goblinoid), neutral evil*
> ___
> - **Armor Class** 15 (leather armor, shield)
> - **Hit Points** 7 (2d6)
> - **Speed** 30 ft.
>___
>|STR|DEX|CON|INT|WIS|CHA|
>|:---:|:---:|:---:|:---:|:---:|:---:|
>|8 (-1)|14 (+2)|10 (+0)|10 (+0)|8 (-1)|8 (-1)|
>___
> - **Skills** Stealth +6
> - **Senses** darkvision 60 ft., passive Perception 9
> - **Languages** Common, Goblin
> - **Challenge** 1/4 (50 XP)
> ___
> ***Nimble Escape.*** The goblin can take the Disengage or Hide action as a bonus action on each of its turns.
>
> ### Actions
> ***Scimitar.*** _Melee Weapon Attack:_ +4 to hit, reach 5 ft., one target. _Hit:_ 5 (1d6 + 2) slashing damage.
>
> ***Shortbow.*** _Ranged Weapon Attack:_ +4 to hit, range 80/320 ft., one target. _Hit:_ 5 (1d6 + 2) piercing damage.
`

// DragonStatBlock has saves, special movement, a damage immunity, an area
// breath weapon and a legendary actions block
const DragonStatBlock = `___
___
> ## Adult Black Dragon
>*Huge dragon, chaotic evil*
> ___
> - **Armor Class** 19 (natural armor)
> - **Hit Points** 195 (17d12 + 85)
> - **Speed** 40 ft., fly 80 ft., swim 40 ft.
>___
>|STR|DEX|CON|INT|WIS|CHA|
>|:---:|:---:|:---:|:---:|:---:|:---:|
>|23 (+6)|14 (+2)|21 (+5)|14 (+2)|13 (+1)|17 (+3)|
>___
> - **Saving Throws** Dex +7, Con +10, Wis +6, Cha +8
> - **Skills** Perception +11, Stealth +7
> - **Damage Immunities** acid
> - **Senses** blindsight 60 ft., darkvision 120 ft., passive Perception 21
> - **Languages** Common, Draconic
> - **Challenge** 14 (11,500 XP)
> ___
> ***Amphibious.*** The dragon can breathe air and water.
>
> ***Legendary Resistance (3/Day).*** If the dragon fails a saving throw, it can choose to succeed instead.
>
> ### Actions
> ***Multiattack.*** The dragon can use its Frightful Presence. It then makes three attacks: one with its bite and two with its claws.
>
> ***Bite.*** _Melee Weapon Attack:_ +11 to hit, reach 10 ft., one target. _Hit:_ 17 (2d10 + 6) piercing damage plus 4 (1d8) acid damage.
>
> ***Claw.*** _Melee Weapon Attack:_ +11 to hit, reach 5 ft., one target. _Hit:_ 13 (2d6 + 6) slashing damage.
>
> ***Acid Breath (Recharge 5–6).*** The dragon exhales acid in a 60-foot line that is 5 feet wide. Each creature in that line must make a DC 18 Dexterity saving throw, taking 54 (12d8) acid damage on a failed save, or half as much damage on a successful one.
>
> ### Legendary Actions
> The dragon can take 3 legendary actions, choosing from the options below. Only one legendary action option can be used at a time and only at the end of another creature's turn. The dragon regains spent legendary actions at the start of its turn.
>
> **Detect.** The dragon makes a Wisdom (Perception) check.
>
> **Tail Attack.** The dragon makes a tail attack.
>
> **Wing Attack (Costs 2 Actions).** The dragon beats its wings. Each creature within 10 feet of the dragon must succeed on a DC 19 Dexterity saving throw or take 13 (2d6 + 6) bludgeoning damage and be knocked prone.
`

// MageStatBlock is a prepared caster with spell slots and a weapon that has
// both a reach and a short/long range
const MageStatBlock = `___
> ## Mage
>*Medium humanoid (any race), any alignment*
> ___
> - **Armor Class** 12 (15 with _mage armor_)
> - **Hit Points** 40 (9d8)
> - **Speed** 30 ft.
>___
>|STR|DEX|CON|INT|WIS|CHA|
>|:---:|:---:|:---:|:---:|:---:|:---:|
>|9 (-1)|14 (+2)|11 (+0)|17 (+3)|12 (+1)|11 (+0)|
>___
> - **Saving Throws** Int +6, Wis +4
> - **Skills** Arcana +6, History +6
> - **Senses** passive Perception 11
> - **Languages** any four languages
> - **Challenge** 6 (2,300 XP)
> ___
> ***Spellcasting.*** The mage is a 9th-level spellcaster. Its spellcasting ability is Intelligence (spell save DC 14, +6 to hit with spell attacks). The mage has the following wizard spells prepared:
>
> - Cantrips (at will): _fire bolt, light, mage hand, prestidigitation_
> - 1st level (4 slots): _detect magic, mage armor, magic missile, shield_
> - 2nd level (3 slots): _misty step, suggestion_
> - 3rd level (3 slots): _counterspell, fireball, fly_
> - 4th level (3 slots): _greater invisibility, ice storm_
> - 5th level (1 slot): _cone of cold_
>
> ### Actions
> ***Dagger.*** _Melee or Ranged Weapon Attack:_ +5 to hit, reach 5 ft. or range 20/60 ft., one target. _Hit:_ 4 (1d4 + 2) piercing damage.
`

// GnomeStatBlock is an innate caster with mixed damage resistances, a custom
// language, a repeated trait name and continuation sub-headers
const GnomeStatBlock = `___
> ## Svirfneblin Seer
>*Small humanoid (gnome), neutral good*
> ___
> - **Armor Class** 15 (chain shirt)
> - **Hit Points** 16 (3d6 + 6)
> - **Speed** 20 ft.
>___
>|STR|DEX|CON|INT|WIS|CHA|
>|:---:|:---:|:---:|:---:|:---:|:---:|
>|15 (+2)|14 (+2)|14 (+2)|12 (+1)|10 (+0)|9 (−1)|
>___
> - **Skills** Investigation +3, Perception +2, Stealth +4
> - **Damage Resistances** poison; bludgeoning, piercing, and slashing from nonmagical attacks
> - **Condition Immunities** charmed, exhaustion
> - **Senses** darkvision 120 ft., passive Perception 12
> - **Languages** Gnomish, Terran, Undercommon, Thieves' Cant
> - **Challenge** 1/2 (100 XP)
> ___
> ***Innate Spellcasting.*** The gnome's innate spellcasting ability is Intelligence (spell save DC 11). It can innately cast the following spells, requiring no material components:
>
> At will: _nondetection_ (self only)<br>
> 1/day each: _blindness/deafness, blur, disguise self_
>
> ***Stone Camouflage.*** The gnome has advantage on Dexterity (Stealth) checks made to hide in rocky terrain.
>
> &nbsp;**Stone Camouflage.** The gnome blends into stone.
>
> ### Actions
> ***War Pick.*** _Melee Weapon Attack:_ +4 to hit, reach 5 ft., one target. _Hit:_ 6 (1d8 + 2) piercing damage.
>
> &nbsp;**Poisoned Dart.** _Ranged Weapon Attack:_ +4 to hit, range 30/120 ft., one target. _Hit:_ 4 (1d4 + 2) piercing damage.
`

// MalformedStatBlock has neither a name heading nor a stat table
const MalformedStatBlock = `Just some notes about a goblin.
It has 7 hit points.
`
