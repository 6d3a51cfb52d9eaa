package traduki

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/traduki-io/traduki/internal/constants"
)

// NATSKVConfig configures the NATS JetStream key-value cache backend.
type NATSKVConfig struct {
	// URL is the NATS server URL, e.g. nats://localhost:4222.
	URL string

	// Bucket is the KV bucket name. Created on first use if missing.
	Bucket string

	// TTL applies to the bucket when it is created.
	TTL time.Duration

	// CredentialsFile is an optional NATS credentials file path.
	CredentialsFile string

	// ConnectTimeout bounds the initial connection attempt.
	ConnectTimeout time.Duration
}

// NATSKVCache stores cache entries in a NATS JetStream key-value bucket,
// letting multiple SDK instances share one cache.
type NATSKVCache struct {
	config *NATSKVConfig

	connectOnce sync.Once
	connectErr  error
	conn        *nats.Conn
	kv          nats.KeyValue
}

// NewNATSKVCache creates a NATS-backed cache. The connection is dialed on
// first use, never at construction.
func NewNATSKVCache(config *NATSKVConfig) (*NATSKVCache, error) {
	if config == nil {
		return nil, ErrNATSConfigRequired
	}

	return &NATSKVCache{config: config}, nil
}

// bucket dials NATS and binds the configured bucket once. A failed dial is
// sticky; every subsequent call reports the same error.
func (c *NATSKVCache) bucket() (nats.KeyValue, error) {
	c.connectOnce.Do(func() {
		opts := []nats.Option{
			nats.Name("traduki-cache"),
		}

		if c.config.CredentialsFile != "" {
			opts = append(opts, nats.UserCredentials(c.config.CredentialsFile))
		}

		if c.config.ConnectTimeout > 0 {
			opts = append(opts, nats.Timeout(c.config.ConnectTimeout))
		}

		conn, err := nats.Connect(c.config.URL, opts...)
		if err != nil {
			c.connectErr = fmt.Errorf("connecting to NATS: %w", err)

			return
		}

		js, err := conn.JetStream()
		if err != nil {
			conn.Close()

			c.connectErr = fmt.Errorf("getting JetStream context: %w", err)

			return
		}

		bucket := c.config.Bucket
		if bucket == "" {
			bucket = "traduki_cache"
		}

		ttl := c.config.TTL
		if ttl <= 0 {
			ttl = constants.DefaultCacheTTL
		}

		kv, err := js.KeyValue(bucket)
		if errors.Is(err, nats.ErrBucketNotFound) {
			kv, err = js.CreateKeyValue(&nats.KeyValueConfig{
				Bucket: bucket,
				TTL:    ttl,
			})
		}

		if err != nil {
			conn.Close()

			c.connectErr = fmt.Errorf("binding KV bucket %q: %w", bucket, err)

			return
		}

		c.conn = conn
		c.kv = kv
	})

	return c.kv, c.connectErr
}

// kvKey hashes cache keys into the restricted NATS KV key alphabet.
func kvKey(key string) string {
	sum := sha256.Sum256([]byte(key))

	return hex.EncodeToString(sum[:])
}

type natsEntry struct {
	Data      []byte    `json:"data"`
	ExpiresAt time.Time `json:"expiresAt"`
	ETag      string    `json:"etag,omitempty"`
}

// Get retrieves an entry from the KV bucket.
func (c *NATSKVCache) Get(ctx context.Context, key string) (*CacheEntry, error) {
	kv, err := c.bucket()
	if err != nil {
		return nil, err
	}

	kvEntry, err := kv.Get(kvKey(key))
	if err != nil {
		if errors.Is(err, nats.ErrKeyNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrCacheKeyNotFound, key)
		}

		return nil, fmt.Errorf("getting cache entry: %w", err)
	}

	var stored natsEntry

	err = json.Unmarshal(kvEntry.Value(), &stored)
	if err != nil {
		return nil, fmt.Errorf("decoding cache entry: %w", err)
	}

	entry := &CacheEntry{
		Data:      stored.Data,
		ExpiresAt: stored.ExpiresAt,
		ETag:      stored.ETag,
	}

	if entry.Expired() {
		_ = kv.Delete(kvKey(key))

		return nil, fmt.Errorf("%w: %s", ErrCacheEntryExpired, key)
	}

	return entry, nil
}

// Set stores an entry in the KV bucket.
func (c *NATSKVCache) Set(ctx context.Context, key string, entry *CacheEntry) error {
	payload, err := json.Marshal(natsEntry{
		Data:      entry.Data,
		ExpiresAt: entry.ExpiresAt,
		ETag:      entry.ETag,
	})
	if err != nil {
		return fmt.Errorf("encoding cache entry: %w", err)
	}

	kv, err := c.bucket()
	if err != nil {
		return err
	}

	_, err = kv.Put(kvKey(key), payload)
	if err != nil {
		return fmt.Errorf("storing cache entry: %w", err)
	}

	return nil
}

// Delete removes an entry from the KV bucket.
func (c *NATSKVCache) Delete(ctx context.Context, key string) error {
	kv, err := c.bucket()
	if err != nil {
		return err
	}

	err = kv.Delete(kvKey(key))
	if err != nil && !errors.Is(err, nats.ErrKeyNotFound) {
		return fmt.Errorf("deleting cache entry: %w", err)
	}

	return nil
}

// Clear removes every key in the bucket.
func (c *NATSKVCache) Clear(ctx context.Context) error {
	kv, err := c.bucket()
	if err != nil {
		return err
	}

	keys, err := kv.Keys()
	if err != nil {
		if errors.Is(err, nats.ErrNoKeysFound) {
			return nil
		}

		return fmt.Errorf("listing cache keys: %w", err)
	}

	for _, key := range keys {
		err = kv.Delete(key)
		if err != nil && !errors.Is(err, nats.ErrKeyNotFound) {
			return fmt.Errorf("deleting cache entry: %w", err)
		}
	}

	return nil
}

// Has reports whether a live entry exists for key.
func (c *NATSKVCache) Has(ctx context.Context, key string) bool {
	entry, err := c.Get(ctx, key)

	return err == nil && entry != nil
}

// Close releases the NATS connection.
func (c *NATSKVCache) Close() {
	if c.conn != nil {
		c.conn.Close()
	}
}
