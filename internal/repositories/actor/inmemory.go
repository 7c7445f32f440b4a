package actor

import (
	"context"
	"sync"

	"github.com/KirkDiggler/statblock-importer/internal/entities/schema"
	"github.com/KirkDiggler/statblock-importer/internal/errors"
	"github.com/KirkDiggler/statblock-importer/internal/pkg/clock"
	"github.com/KirkDiggler/statblock-importer/internal/pkg/idgen"
)

// InMemoryRepository implements Repository using in-memory storage. It backs
// dry runs, which exercise the full import without a Redis server.
type InMemoryRepository struct {
	mu       sync.RWMutex
	actors   map[string]*schema.Actor
	items    map[string][]*schema.Item
	clock    clock.Clock
	actorIDs idgen.Generator
	itemIDs  idgen.Generator
}

// NewInMemory creates a new in-memory repository with sequential IDs
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{
		actors:   make(map[string]*schema.Actor),
		items:    make(map[string][]*schema.Item),
		clock:    clock.New(),
		actorIDs: idgen.NewSequential(idgen.PrefixActor),
		itemIDs:  idgen.NewSequential(idgen.PrefixItem),
	}
}

// CreateActor stores a copy of the actor
func (r *InMemoryRepository) CreateActor(_ context.Context, input CreateActorInput) (*CreateActorOutput, error) {
	if err := validateActor(input.Actor); err != nil {
		return nil, err
	}

	actor := *input.Actor
	actor.ID = r.actorIDs.Generate()
	actor.CreatedAt = r.clock.Now().Unix()

	r.mu.Lock()
	defer r.mu.Unlock()

	stored := actor
	r.actors[actor.ID] = &stored

	return &CreateActorOutput{Actor: &actor}, nil
}

// CreateItems stores copies of the valid items
func (r *InMemoryRepository) CreateItems(_ context.Context, input CreateItemsInput) (*CreateItemsOutput, error) {
	if input.ActorID == "" {
		return nil, errors.InvalidArgument(errActorIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.actors[input.ActorID]; !ok {
		return nil, errors.NotFoundf("actor with ID %s not found", input.ActorID)
	}

	output := &CreateItemsOutput{}
	for i, in := range input.Items {
		if err := validateItem(in); err != nil {
			output.Failures = append(output.Failures, ItemFailure{Index: i, Name: itemName(in), Err: err})
			continue
		}

		item := *in
		item.ID = r.itemIDs.Generate()
		item.ActorID = input.ActorID

		stored := item
		r.items[input.ActorID] = append(r.items[input.ActorID], &stored)
		output.Items = append(output.Items, &item)
	}

	return output, nil
}

// GetActor returns a copy of a stored actor
func (r *InMemoryRepository) GetActor(_ context.Context, input GetActorInput) (*GetActorOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errActorIDEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	actor, ok := r.actors[input.ID]
	if !ok {
		return nil, errors.NotFoundf("actor with ID %s not found", input.ID)
	}

	cp := *actor
	return &GetActorOutput{Actor: &cp}, nil
}

// ListItems returns copies of an actor's items in creation order
func (r *InMemoryRepository) ListItems(_ context.Context, input ListItemsInput) (*ListItemsOutput, error) {
	if input.ActorID == "" {
		return nil, errors.InvalidArgument(errActorIDEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]*schema.Item, 0, len(r.items[input.ActorID]))
	for _, item := range r.items[input.ActorID] {
		cp := *item
		items = append(items, &cp)
	}

	return &ListItemsOutput{Items: items}, nil
}

// Delete removes an actor and its items
func (r *InMemoryRepository) Delete(_ context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errActorIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.actors[input.ID]; !ok {
		return nil, errors.NotFoundf("actor with ID %s not found", input.ID)
	}

	deleted := len(r.items[input.ID])
	delete(r.actors, input.ID)
	delete(r.items, input.ID)

	return &DeleteOutput{ItemsDeleted: deleted}, nil
}
