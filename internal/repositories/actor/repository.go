// Package actor provides the interface for actor and item persistence
package actor

//go:generate mockgen -destination=mock/mock_repository.go -package=actormock github.com/KirkDiggler/statblock-importer/internal/repositories/actor Repository

import (
	"context"

	"github.com/KirkDiggler/statblock-importer/internal/entities/schema"
)

// Repository defines the interface for actor persistence
type Repository interface {
	// CreateActor stores a new actor and assigns its ID and creation time
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.Internal for storage failures
	CreateActor(ctx context.Context, input CreateActorInput) (*CreateActorOutput, error)

	// CreateItems stores a batch of items owned by an existing actor. Items
	// that fail are reported in the output; the rest are stored.
	// Returns errors.InvalidArgument for an empty actor ID
	// Returns errors.NotFound if the actor doesn't exist
	// Returns errors.Internal for storage failures
	CreateItems(ctx context.Context, input CreateItemsInput) (*CreateItemsOutput, error)

	// GetActor retrieves an actor by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the actor doesn't exist
	// Returns errors.Internal for storage failures
	GetActor(ctx context.Context, input GetActorInput) (*GetActorOutput, error)

	// ListItems retrieves the items of an actor in creation order
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.Internal for storage failures
	ListItems(ctx context.Context, input ListItemsInput) (*ListItemsOutput, error)

	// Delete removes an actor and all of its items
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the actor doesn't exist
	// Returns errors.Internal for storage failures
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// CreateActorInput defines the input for creating an actor
type CreateActorInput struct {
	Actor *schema.Actor
}

// CreateActorOutput defines the output for creating an actor
type CreateActorOutput struct {
	Actor *schema.Actor
}

// CreateItemsInput defines the input for creating items
type CreateItemsInput struct {
	ActorID string
	Items   []*schema.Item
}

// CreateItemsOutput defines the output for creating items. Items holds the
// stored items with their IDs in input order.
type CreateItemsOutput struct {
	Items    []*schema.Item
	Failures []ItemFailure
}

// ItemFailure is an item the store rejected
type ItemFailure struct {
	Index int
	Name  string
	Err   error
}

// GetActorInput defines the input for getting an actor
type GetActorInput struct {
	ID string
}

// GetActorOutput defines the output for getting an actor
type GetActorOutput struct {
	Actor *schema.Actor
}

// ListItemsInput defines the input for listing the items of an actor
type ListItemsInput struct {
	ActorID string
}

// ListItemsOutput defines the output for listing the items of an actor
type ListItemsOutput struct {
	Items []*schema.Item
}

// DeleteInput defines the input for deleting an actor
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting an actor
type DeleteOutput struct {
	ItemsDeleted int
}
