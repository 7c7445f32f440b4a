// Package redis opens the document store connection. Repositories depend on
// Client rather than a concrete go-redis type so tests can hand them a
// miniredis or redismock client.
package redis

import (
	"crypto/tls"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/statblock-importer/internal/errors"
)

// Client is the command surface the stores use
type Client interface {
	redis.UniversalClient
}

// Options tunes the connection pool. The zero value keeps go-redis defaults.
type Options struct {
	Password string
	DB       int

	PoolSize        int
	MinIdleConns    int
	ConnMaxIdleTime time.Duration
	MaxRetries      int

	// UseTLS dials with TLS 1.2 or newer
	UseTLS bool
}

// NewClient creates a client for a single Redis instance at endpoint. No
// connection is made until the first command.
func NewClient(endpoint string, opts *Options) (Client, error) {
	if endpoint == "" {
		return nil, errors.InvalidArgument("redis endpoint is required")
	}
	if opts == nil {
		opts = &Options{}
	}

	o := &redis.Options{
		Addr:            endpoint,
		Password:        opts.Password,
		DB:              opts.DB,
		PoolSize:        opts.PoolSize,
		MinIdleConns:    opts.MinIdleConns,
		ConnMaxIdleTime: opts.ConnMaxIdleTime,
		MaxRetries:      opts.MaxRetries,
	}
	if opts.UseTLS {
		o.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}

	return redis.NewClient(o), nil
}
