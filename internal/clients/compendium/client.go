// Package compendium looks up spell records in the D&D 5e SRD
package compendium

//go:generate mockgen -destination=mock/mock_client.go -package=compendiummock github.com/KirkDiggler/statblock-importer/internal/clients/compendium Client

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/antzucaro/matchr"
	"github.com/fadedpez/dnd5e-api/clients/dnd5e"
	"github.com/fadedpez/dnd5e-api/entities"

	internalDnd5e "github.com/KirkDiggler/statblock-importer/internal/entities/dnd5e"
	"github.com/KirkDiggler/statblock-importer/internal/errors"
)

const (
	// DefaultBaseURL is the public SRD API
	DefaultBaseURL = "https://www.dnd5eapi.co/api/2014/"
	// DefaultSuggestionThreshold is the Jaro-Winkler similarity a known name
	// must reach to be offered as a suggestion on a miss
	DefaultSuggestionThreshold = 0.85
)

// Client defines the compendium lookups an import needs
type Client interface {
	// LookupSpell finds a spell by name, ignoring case and surrounding
	// whitespace.
	// Returns errors.NotFound when no spell carries the name. The error meta
	// carries a "suggestion" when a close name exists.
	// Returns errors.Unavailable when the compendium cannot be reached.
	LookupSpell(ctx context.Context, name string) (*Spell, error)
}

// spellSource is the slice of the dnd5e-api client used here
type spellSource interface {
	ListSpells(input *dnd5e.ListSpellsInput) ([]*entities.ReferenceItem, error)
	GetSpell(key string) (*entities.Spell, error)
}

// Config contains configuration options for the compendium client.
type Config struct {
	// BaseURL for the D&D 5e API (optional, defaults to DefaultBaseURL)
	BaseURL string
	// HTTPTimeout for API requests (optional, defaults to 30 seconds)
	HTTPTimeout time.Duration
	// CacheTTL for the cached client (optional, defaults to 24 hours)
	CacheTTL time.Duration
	// SuggestionThreshold (optional, defaults to DefaultSuggestionThreshold)
	SuggestionThreshold float64
}

// Validate validates the Config and sets defaults if not provided.
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = 30 * time.Second
	}
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = 24 * time.Hour
	}
	if cfg.SuggestionThreshold == 0 {
		cfg.SuggestionThreshold = DefaultSuggestionThreshold
	}
	if cfg.HTTPTimeout < 0 || cfg.CacheTTL < 0 {
		return errors.InvalidArgument("timeouts cannot be negative")
	}
	if cfg.SuggestionThreshold < 0 || cfg.SuggestionThreshold > 1 {
		return errors.InvalidArgument("suggestion threshold must be between 0 and 1")
	}
	return nil
}

type client struct {
	source    spellSource
	threshold float64

	indexOnce sync.Once
	index     map[string]*entities.ReferenceItem
	indexErr  error
}

// New creates a compendium client backed by the cached dnd5e-api client.
func New(cfg *Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	baseClient, err := dnd5e.NewDND5eAPI(&dnd5e.DND5eAPIConfig{
		Client:  httpClient,
		BaseURL: cfg.BaseURL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create D&D 5e API client")
	}

	return newClient(dnd5e.NewCachedClient(baseClient, cfg.CacheTTL), cfg.SuggestionThreshold), nil
}

func newClient(source spellSource, threshold float64) *client {
	return &client{
		source:    source,
		threshold: threshold,
	}
}

func (c *client) LookupSpell(ctx context.Context, name string) (*Spell, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.FromContext(err, "spell lookup canceled")
	}

	folded := internalDnd5e.Fold(name)
	if folded == "" {
		return nil, errors.InvalidArgument("spell name is required")
	}

	index, err := c.spellIndex(ctx)
	if err != nil {
		return nil, err
	}

	ref, ok := index[folded]
	if !ok {
		notFound := errors.NotFoundf("spell %q not found", name).WithMeta("spell", name)
		if suggestion := c.suggest(index, folded); suggestion != "" {
			notFound = notFound.WithMeta("suggestion", suggestion)
		}
		return nil, notFound
	}

	spell, err := c.source.GetSpell(ref.Key)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to get spell "+ref.Key)
	}
	if spell == nil {
		return nil, errors.NotFoundf("spell %q not found", name)
	}

	return convertSpell(spell), nil
}

// spellIndex lists every spell once and keys the references by folded name
func (c *client) spellIndex(ctx context.Context) (map[string]*entities.ReferenceItem, error) {
	c.indexOnce.Do(func() {
		slog.DebugContext(ctx, "building spell index")
		refs, err := c.source.ListSpells(nil)
		if err != nil {
			c.indexErr = errors.WrapWithCode(err, errors.CodeUnavailable, "failed to list spells")
			return
		}
		c.index = make(map[string]*entities.ReferenceItem, len(refs))
		for _, ref := range refs {
			if ref == nil {
				continue
			}
			c.index[internalDnd5e.Fold(ref.Name)] = ref
		}
		slog.DebugContext(ctx, "spell index built", "count", len(c.index))
	})
	return c.index, c.indexErr
}

// suggest returns the closest known spell name at or above the threshold
func (c *client) suggest(index map[string]*entities.ReferenceItem, folded string) string {
	best := ""
	bestScore := c.threshold
	for key, ref := range index {
		score := matchr.JaroWinkler(folded, key, false)
		if score > bestScore || (score == bestScore && (best == "" || ref.Name < best)) {
			best = ref.Name
			bestScore = score
		}
	}
	return best
}
