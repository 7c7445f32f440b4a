package parser

import (
	"regexp"
	"strings"

	"github.com/KirkDiggler/statblock-importer/internal/entities/creature"
)

var challengeRe = regexp.MustCompile(`\*\*Challenge\*\* ([0-9]+(?:/[0-9]+)?) \((?:[0-9,]+ or )?([0-9,]+) XP\)`)

// fractionalRatings is the closed set of ratings below 1
var fractionalRatings = map[string]float64{
	"1/8": 0.125,
	"1/4": 0.25,
	"1/2": 0.5,
}

// Challenge extracts the challenge rating and its XP award
func Challenge(text string) (*creature.Challenge, bool) {
	m := challengeRe.FindStringSubmatch(text)
	if m == nil {
		return nil, false
	}
	rating, ok := ParseRating(m[1])
	if !ok {
		return nil, false
	}
	return &creature.Challenge{
		Rating: rating,
		XP:     atoi(strings.ReplaceAll(m[2], ",", "")),
	}, true
}

// ParseRating reads a whole number or one of 1/8, 1/4 and 1/2
func ParseRating(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if v, ok := fractionalRatings[s]; ok {
		return v, true
	}
	if s == "" || strings.Trim(s, "0123456789") != "" {
		return 0, false
	}
	return float64(atoi(s)), true
}
