package actor_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/statblock-importer/internal/errors"
	"github.com/KirkDiggler/statblock-importer/internal/repositories/actor"
)

func TestInMemoryRepository(t *testing.T) {
	ctx := context.Background()
	repo := actor.NewInMemory()

	created, err := repo.CreateActor(ctx, actor.CreateActorInput{Actor: testActor()})
	require.NoError(t, err)
	assert.Equal(t, "actor_1", created.Actor.ID)
	assert.NotZero(t, created.Actor.CreatedAt)

	items, err := repo.CreateItems(ctx, actor.CreateItemsInput{
		ActorID: created.Actor.ID,
		Items:   append(testItems(), nil),
	})
	require.NoError(t, err)
	assert.Len(t, items.Items, 2)
	require.Len(t, items.Failures, 1)
	assert.Equal(t, 2, items.Failures[0].Index)

	got, err := repo.GetActor(ctx, actor.GetActorInput{ID: created.Actor.ID})
	require.NoError(t, err)
	assert.Equal(t, created.Actor, got.Actor)

	list, err := repo.ListItems(ctx, actor.ListItemsInput{ActorID: created.Actor.ID})
	require.NoError(t, err)
	assert.Equal(t, items.Items, list.Items)

	// returned copies do not alias the store
	list.Items[0].Name = "changed"
	again, err := repo.ListItems(ctx, actor.ListItemsInput{ActorID: created.Actor.ID})
	require.NoError(t, err)
	assert.Equal(t, "Scimitar", again.Items[0].Name)

	deleted, err := repo.Delete(ctx, actor.DeleteInput{ID: created.Actor.ID})
	require.NoError(t, err)
	assert.Equal(t, 2, deleted.ItemsDeleted)

	_, err = repo.GetActor(ctx, actor.GetActorInput{ID: created.Actor.ID})
	assert.True(t, errors.IsNotFound(err))

	_, err = repo.CreateItems(ctx, actor.CreateItemsInput{ActorID: created.Actor.ID, Items: testItems()})
	assert.True(t, errors.IsNotFound(err))
}
