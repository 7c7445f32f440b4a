package actor

import (
	"context"
	"encoding/json"
	"log/slog"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/statblock-importer/internal/entities/schema"
	"github.com/KirkDiggler/statblock-importer/internal/errors"
	"github.com/KirkDiggler/statblock-importer/internal/pkg/clock"
	"github.com/KirkDiggler/statblock-importer/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/statblock-importer/internal/redis"
)

const (
	actorKeyPrefix = "actor:"
	itemKeyPrefix  = "item:"
	itemsKeySuffix = ":items"
)

func actorKey(id string) string {
	return actorKeyPrefix + id
}

// itemsKey is the list of an actor's item IDs in creation order
func itemsKey(id string) string {
	return actorKeyPrefix + id + itemsKeySuffix
}

func itemKey(id string) string {
	return itemKeyPrefix + id
}

type redisRepository struct {
	client   redisclient.Client
	clock    clock.Clock
	actorIDs idgen.Generator
	itemIDs  idgen.Generator
}

// RedisConfig contains configuration for the Redis actor repository.
type RedisConfig struct {
	Client redisclient.Client
	// Clock stamps CreatedAt (optional, defaults to the system clock)
	Clock clock.Clock
	// ActorIDGenerator and ItemIDGenerator default to prefixed UUIDs
	ActorIDGenerator idgen.Generator
	ItemIDGenerator  idgen.Generator
}

// Validate validates the RedisConfig and sets defaults if not provided.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	if cfg.Clock == nil {
		cfg.Clock = clock.New()
	}
	if cfg.ActorIDGenerator == nil {
		cfg.ActorIDGenerator = idgen.NewUUID(idgen.PrefixActor)
	}
	if cfg.ItemIDGenerator == nil {
		cfg.ItemIDGenerator = idgen.NewUUID(idgen.PrefixItem)
	}
	return nil
}

// NewRedis creates a new Redis-backed actor repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{
		client:   cfg.Client,
		clock:    cfg.Clock,
		actorIDs: cfg.ActorIDGenerator,
		itemIDs:  cfg.ItemIDGenerator,
	}, nil
}

func (r *redisRepository) CreateActor(ctx context.Context, input CreateActorInput) (*CreateActorOutput, error) {
	if err := validateActor(input.Actor); err != nil {
		return nil, err
	}

	actor := *input.Actor
	actor.ID = r.actorIDs.Generate()
	actor.CreatedAt = r.clock.Now().Unix()

	data, err := json.Marshal(&actor)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal actor data")
	}

	if err := r.client.Set(ctx, actorKey(actor.ID), string(data), 0).Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to create actor")
	}

	slog.DebugContext(ctx, "created actor",
		"actor_id", actor.ID,
		"name", actor.Name)

	return &CreateActorOutput{Actor: &actor}, nil
}

type pendingItem struct {
	index int
	item  *schema.Item
	set   *redis.StatusCmd
	push  *redis.IntCmd
}

func (r *redisRepository) CreateItems(ctx context.Context, input CreateItemsInput) (*CreateItemsOutput, error) {
	if input.ActorID == "" {
		return nil, errors.InvalidArgument(errActorIDEmpty)
	}

	exists, err := r.client.Exists(ctx, actorKey(input.ActorID)).Result()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to check actor existence")
	}
	if exists == 0 {
		return nil, errors.NotFoundf("actor with ID %s not found", input.ActorID)
	}

	output := &CreateItemsOutput{}
	if len(input.Items) == 0 {
		return output, nil
	}

	pipe := r.client.Pipeline()
	pending := make([]pendingItem, 0, len(input.Items))
	for i, in := range input.Items {
		if err := validateItem(in); err != nil {
			output.Failures = append(output.Failures, ItemFailure{Index: i, Name: itemName(in), Err: err})
			continue
		}

		item := *in
		item.ID = r.itemIDs.Generate()
		item.ActorID = input.ActorID

		data, err := json.Marshal(&item)
		if err != nil {
			output.Failures = append(output.Failures, ItemFailure{
				Index: i,
				Name:  item.Name,
				Err:   errors.Wrapf(err, "failed to marshal item data"),
			})
			continue
		}

		pending = append(pending, pendingItem{
			index: i,
			item:  &item,
			set:   pipe.Set(ctx, itemKey(item.ID), string(data), 0),
			push:  pipe.RPush(ctx, itemsKey(input.ActorID), item.ID),
		})
	}

	if len(pending) > 0 {
		if _, err := pipe.Exec(ctx); err != nil {
			slog.WarnContext(ctx, "item batch completed with errors",
				"actor_id", input.ActorID,
				"error", err.Error())
		}
	}

	for _, p := range pending {
		cmdErr := p.set.Err()
		if cmdErr == nil {
			cmdErr = p.push.Err()
		}
		if cmdErr != nil {
			output.Failures = append(output.Failures, ItemFailure{
				Index: p.index,
				Name:  p.item.Name,
				Err:   errors.WrapWithCode(cmdErr, errors.CodeInternal, "failed to store item"),
			})
			continue
		}
		output.Items = append(output.Items, p.item)
	}

	slog.DebugContext(ctx, "created items",
		"actor_id", input.ActorID,
		"created", len(output.Items),
		"failed", len(output.Failures))

	return output, nil
}

func (r *redisRepository) GetActor(ctx context.Context, input GetActorInput) (*GetActorOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errActorIDEmpty)
	}

	result, err := r.client.Get(ctx, actorKey(input.ID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, errors.NotFoundf("actor with ID %s not found", input.ID)
		}
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to get actor")
	}

	var actor schema.Actor
	if err := json.Unmarshal([]byte(result), &actor); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal actor data")
	}

	return &GetActorOutput{Actor: &actor}, nil
}

func (r *redisRepository) ListItems(ctx context.Context, input ListItemsInput) (*ListItemsOutput, error) {
	if input.ActorID == "" {
		return nil, errors.InvalidArgument(errActorIDEmpty)
	}

	ids, err := r.client.LRange(ctx, itemsKey(input.ActorID), 0, -1).Result()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to list item IDs")
	}
	if len(ids) == 0 {
		return &ListItemsOutput{Items: []*schema.Item{}}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = itemKey(id)
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to get items")
	}

	items := make([]*schema.Item, 0, len(values))
	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			slog.WarnContext(ctx, "item listed but missing",
				"actor_id", input.ActorID,
				"item_id", ids[i])
			continue
		}
		var item schema.Item
		if err := json.Unmarshal([]byte(raw), &item); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal item %s", ids[i])
		}
		items = append(items, &item)
	}

	return &ListItemsOutput{Items: items}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errActorIDEmpty)
	}

	exists, err := r.client.Exists(ctx, actorKey(input.ID)).Result()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to check actor existence")
	}
	if exists == 0 {
		return nil, errors.NotFoundf("actor with ID %s not found", input.ID)
	}

	ids, err := r.client.LRange(ctx, itemsKey(input.ID), 0, -1).Result()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to list item IDs")
	}

	keys := make([]string, 0, len(ids)+2)
	keys = append(keys, actorKey(input.ID), itemsKey(input.ID))
	for _, id := range ids {
		keys = append(keys, itemKey(id))
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, keys...)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to delete actor")
	}

	return &DeleteOutput{ItemsDeleted: len(ids)}, nil
}
