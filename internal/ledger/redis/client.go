// Package redis provides a Ledger backed by a shared Redis instance.
package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/careervault/careervault-server/internal/model"
)

var _ model.Ledger = (*Ledger)(nil)

// Ledger stores ledger values as plain Redis strings under a common
// key prefix. Values never expire.
type Ledger struct {
	client    *redis.Client
	keyPrefix string
}

// New creates a redis-backed ledger from a URL and verifies the
// connection with a ping.
func New(ctx context.Context, url, keyPrefix string) (*Ledger, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis URL: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return NewWithClient(client, keyPrefix), nil
}

// NewWithClient wraps an existing client. The client lifecycle is
// managed by the caller.
func NewWithClient(client *redis.Client, keyPrefix string) *Ledger {
	return &Ledger{
		client:    client,
		keyPrefix: keyPrefix,
	}
}

// Get returns the value under key or model.ErrKeyNotFound.
func (l *Ledger) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := l.client.Get(ctx, l.keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, model.ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %q: %w", key, err)
	}
	return value, nil
}

// Set stores value under key with no expiry.
func (l *Ledger) Set(ctx context.Context, key string, value []byte) error {
	if err := l.client.Set(ctx, l.keyPrefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %q: %w", key, err)
	}
	return nil
}

// Close closes the underlying client.
func (l *Ledger) Close() error {
	return l.client.Close()
}
