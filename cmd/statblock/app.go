package main

import (
	"github.com/KirkDiggler/statblock-importer/internal/clients/compendium"
	"github.com/KirkDiggler/statblock-importer/internal/config"
	"github.com/KirkDiggler/statblock-importer/internal/errors"
	"github.com/KirkDiggler/statblock-importer/internal/orchestrators/importer"
	"github.com/KirkDiggler/statblock-importer/internal/redis"
	"github.com/KirkDiggler/statblock-importer/internal/repositories/actor"
)

// newService wires the importer against repo and the configured compendium
func newService(cfg *config.Config, repo actor.Repository) (importer.Service, error) {
	client, err := compendium.New(cfg.Compendium())
	if err != nil {
		return nil, errors.Wrap(err, "failed to create compendium client")
	}

	return importer.NewOrchestrator(&importer.Config{
		ActorRepo:         repo,
		Compendium:        client,
		LookupConcurrency: cfg.LookupConcurrency,
	})
}

// newRedisRepository opens the document store. The returned func closes the
// connection pool.
func newRedisRepository(cfg *config.Config) (actor.Repository, func(), error) {
	client, err := redis.NewClient(cfg.RedisAddr, &redis.Options{
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to create redis client")
	}

	repo, err := actor.NewRedis(&actor.RedisConfig{Client: client})
	if err != nil {
		_ = client.Close()
		return nil, nil, errors.Wrap(err, "failed to create actor repository")
	}

	return repo, func() { _ = client.Close() }, nil
}
