// Package idgen hands out the string handles stored actors and items are
// keyed by. A handle is "<prefix>_<suffix>".
package idgen

import (
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"
)

//go:generate mockgen -destination=mock/mock.go -package=idgenmock github.com/KirkDiggler/statblock-importer/internal/pkg/idgen Generator

// Generator produces unique handles
type Generator interface {
	Generate() string
}

// Handle prefixes
const (
	PrefixActor = "actor"
	PrefixItem  = "item"
)

// Sequential counts up from 1. Handles are stable between runs, which tests
// and dry runs rely on.
type Sequential struct {
	prefix string
	n      atomic.Uint64
}

// NewSequential creates a counter for prefix. An empty prefix yields bare
// numbers.
func NewSequential(prefix string) *Sequential {
	return &Sequential{prefix: prefix}
}

func (g *Sequential) Generate() string {
	return join(g.prefix, strconv.FormatUint(g.n.Add(1), 10))
}

// UUID produces random v4 handles
type UUID struct {
	prefix string
}

// NewUUID creates a UUID generator for prefix
func NewUUID(prefix string) *UUID {
	return &UUID{prefix: prefix}
}

func (g *UUID) Generate() string {
	return join(g.prefix, uuid.NewString())
}

// HasPrefix reports whether id is a non-empty handle of the given prefix
func HasPrefix(id, prefix string) bool {
	suffix, ok := strings.CutPrefix(id, prefix+"_")
	return ok && suffix != ""
}

func join(prefix, suffix string) string {
	if prefix == "" {
		return suffix
	}
	return prefix + "_" + suffix
}
