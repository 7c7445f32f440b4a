package derivation

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/statblock-importer/internal/errors"
)

var hitDiceRe = regexp.MustCompile(`^\s*([0-9]+)d([0-9]+)\s*(?:([+\-])\s*([0-9]+))?\s*$`)

// RollHitPoints rolls a hit dice formula such as "17d12 + 85". The result is
// never below 1.
func RollHitPoints(roller dice.Roller, formula string) (int, error) {
	if roller == nil {
		roller = dice.DefaultRoller
	}

	m := hitDiceRe.FindStringSubmatch(formula)
	if m == nil {
		return 0, errors.InvalidArgumentf("invalid hit dice formula: %q", formula)
	}
	count, _ := strconv.Atoi(m[1])
	size, _ := strconv.Atoi(m[2])
	if count <= 0 || size <= 0 {
		return 0, errors.InvalidArgumentf("dice count and size must be positive: %q", formula)
	}

	results, err := roller.RollN(count, size)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to roll %s", strings.TrimSpace(formula))
	}

	total := 0
	for _, r := range results {
		total += r
	}
	if m[4] != "" {
		flat, _ := strconv.Atoi(m[4])
		if m[3] == "-" {
			flat = -flat
		}
		total += flat
	}
	if total < 1 {
		total = 1
	}
	return total, nil
}
