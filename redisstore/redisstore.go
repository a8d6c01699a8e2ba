// Package redisstore implements the stock persistence port on a Redis server.
//
// Each collection is stored as a plain string value holding the JSONL
// document, under the collection key prefixed by a namespace. A session lock
// keeps a single writer per namespace.
package redisstore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/bsm/redislock"
	"github.com/redis/go-redis/v9"
)

// ErrLocked is returned by Lock when another session holds the namespace.
var ErrLocked = errors.New("inventory is locked by another session")

// DefaultTimeout bounds every Get and Set.
const DefaultTimeout = 5 * time.Second

// Dial connects to the Redis server at addr and checks it answers.
func Dial(ctx context.Context, addr string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   0, // use default DB
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("could not connect to redis at %q: %w", addr, err)
	}
	return client, nil
}

// KV is a stock.KV on a Redis client.
type KV struct {
	client    *redis.Client
	namespace string
	locker    *redislock.Client
	Timeout   time.Duration
}

// New creates a KV whose keys are prefixed by namespace, e.g. "shop:".
func New(client *redis.Client, namespace string) *KV {
	return &KV{
		client:    client,
		namespace: namespace,
		locker:    redislock.New(client),
		Timeout:   DefaultTimeout,
	}
}

// Get returns the value of key. A key never set yields an error wrapping
// fs.ErrNotExist.
func (kv *KV) Get(key string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(context.Background(), kv.Timeout)
	defer cancel()
	val, err := kv.client.Get(ctx, kv.namespace+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("key %q: %w", kv.namespace+key, fs.ErrNotExist)
	}
	if err != nil {
		return nil, fmt.Errorf("could not get %q: %w", kv.namespace+key, err)
	}
	return val, nil
}

// Set replaces the value of key. It never expires.
func (kv *KV) Set(key string, value []byte) error {
	ctx, cancel := context.WithTimeout(context.Background(), kv.Timeout)
	defer cancel()
	if err := kv.client.Set(ctx, kv.namespace+key, value, 0).Err(); err != nil {
		return fmt.Errorf("could not set %q: %w", kv.namespace+key, err)
	}
	return nil
}

// Lock obtains the session lock of the namespace for ttl, retrying for a few
// seconds. The caller releases it with Release.
func (kv *KV) Lock(ctx context.Context, ttl time.Duration) (*redislock.Lock, error) {
	lock, err := kv.locker.Obtain(ctx, kv.namespace+"lock", ttl, &redislock.Options{
		RetryStrategy: redislock.LimitRetry(redislock.LinearBackoff(100*time.Millisecond), 30),
	})
	if errors.Is(err, redislock.ErrNotObtained) {
		return nil, fmt.Errorf("%w: namespace %q", ErrLocked, kv.namespace)
	}
	if err != nil {
		return nil, fmt.Errorf("could not lock namespace %q: %w", kv.namespace, err)
	}
	return lock, nil
}
