package kvstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	domainerrors "gdpr-store.backend/internal/domain/errors"
	"gdpr-store.backend/pkg/logger"
)

// indexedFields are the document fields covered by secondary indexes.
var indexedFields = []string{"type", "email", "category", "status"}

// Bucket is a named document collection in the key-value store. It is an
// explicitly constructed, injectable handle: one Bucket is created at the
// composition root and shared by reference across requests. The underlying
// client manages its own connection pooling and is safe for concurrent use.
type Bucket struct {
	client *redis.Client
	name   string
}

// NewBucket creates a bucket handle over an existing client
func NewBucket(client *redis.Client, name string) *Bucket {
	return &Bucket{client: client, name: name}
}

// Dial opens a client for the given connection string and credentials
func Dial(connectionString, username, password string) (*redis.Client, error) {
	opts, err := redis.ParseURL(connectionString)
	if err != nil {
		return nil, fmt.Errorf("invalid kv connection string: %w", err)
	}
	if username != "" {
		opts.Username = username
	}
	if password != "" {
		opts.Password = password
	}
	return redis.NewClient(opts), nil
}

// Name returns the bucket name
func (b *Bucket) Name() string {
	return b.name
}

// Connect verifies the connection and ensures the primary index and the
// secondary indexes exist. Index creation tolerates "already exists" as
// success and logs, rather than fails, any other registration error.
func (b *Bucket) Connect(ctx context.Context) error {
	if err := b.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("kv store connection failed: %w", err)
	}
	b.ensureIndexes(ctx)
	return nil
}

// Close tears down the underlying client
func (b *Bucket) Close() error {
	return b.client.Close()
}

func (b *Bucket) ensureIndexes(ctx context.Context) {
	metaKey := b.name + "/meta:indexes"

	created, err := b.client.HSetNX(ctx, metaKey, "#primary", "meta().id").Result()
	if err != nil {
		logger.Warn(ctx, "failed to create primary index", zap.String("bucket", b.name), zap.Error(err))
	} else if created {
		logger.Info(ctx, "primary index created", zap.String("bucket", b.name))
	}

	for _, field := range indexedFields {
		name := "idx_" + field
		created, err := b.client.HSetNX(ctx, metaKey, name, field).Result()
		if err != nil {
			logger.Warn(ctx, "failed to create index", zap.String("index", name), zap.Error(err))
			continue
		}
		if created {
			logger.Info(ctx, "index created", zap.String("index", name))
		}
	}
}

func (b *Bucket) docKey(key string) string {
	return b.name + "/" + key
}

// Get fetches a document into dest. Returns ErrNotFound when the key is
// absent.
func (b *Bucket) Get(ctx context.Context, key string, dest interface{}) error {
	raw, err := b.client.Get(ctx, b.docKey(key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domainerrors.ErrNotFound
		}
		return err
	}
	return json.Unmarshal([]byte(raw), dest)
}

// Insert stores a new document. Returns ErrAlreadyExists when the key is
// already present.
func (b *Bucket) Insert(ctx context.Context, key string, doc interface{}) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	ok, err := b.client.SetNX(ctx, b.docKey(key), raw, 0).Result()
	if err != nil {
		return err
	}
	if !ok {
		return domainerrors.ErrAlreadyExists
	}
	b.updateIndexes(ctx, key, raw)
	return nil
}

// Upsert stores a document, replacing any existing one without signaling
// which occurred.
func (b *Bucket) Upsert(ctx context.Context, key string, doc interface{}) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	if err := b.client.Set(ctx, b.docKey(key), raw, 0).Err(); err != nil {
		return err
	}
	b.updateIndexes(ctx, key, raw)
	return nil
}

// updateIndexes registers the document key in the secondary index sets
// for every indexed field present on the document. Index maintenance
// failures are logged, not surfaced: the write itself already succeeded.
func (b *Bucket) updateIndexes(ctx context.Context, key string, raw []byte) {
	var fields map[string]interface{}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return
	}
	for _, field := range indexedFields {
		val, ok := fields[field].(string)
		if !ok || val == "" {
			continue
		}
		setKey := fmt.Sprintf("%s/idx:%s:%s", b.name, field, strings.ToLower(val))
		if err := b.client.SAdd(ctx, setKey, key).Err(); err != nil {
			logger.Warn(ctx, "failed to update index", zap.String("field", field), zap.Error(err))
		}
	}
}
