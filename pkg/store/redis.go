package store

import (
	"bytes"
	"context"

	"github.com/redis/go-redis/v9"

	"github.com/menuforge/menuforge/pkg/errors"
	"github.com/menuforge/menuforge/pkg/menu"
	"github.com/menuforge/menuforge/pkg/observability"
)

// keyPrefix namespaces project keys in a shared Redis instance.
const keyPrefix = "menuforge:project:"

// RedisStore persists projects in Redis, one key per project.
type RedisStore struct {
	client *redis.Client
}

// RedisConfig configures the Redis connection.
type RedisConfig struct {
	Addr     string // host:port
	Password string
	DB       int
}

// NewRedisStore connects to Redis and verifies the connection.
func NewRedisStore(ctx context.Context, cfg RedisConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "connect to redis at %s", cfg.Addr)
	}
	return &RedisStore{client: client}, nil
}

// Get retrieves a project by id.
func (s *RedisStore) Get(ctx context.Context, id string) (*menu.MenuProject, error) {
	data, err := s.client.Get(ctx, keyPrefix+id).Bytes()
	if err == redis.Nil {
		observability.Store().OnStoreGet(ctx, "redis", false)
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "get project %s", id)
	}

	observability.Store().OnStoreGet(ctx, "redis", true)
	return menu.ReadJSON(bytes.NewReader(data))
}

// Put stores a project.
func (s *RedisStore) Put(ctx context.Context, p *menu.MenuProject) error {
	var buf bytes.Buffer
	if err := menu.WriteJSON(p, &buf); err != nil {
		return err
	}
	if err := s.client.Set(ctx, keyPrefix+p.ID, buf.Bytes(), 0).Err(); err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "put project %s", p.ID)
	}

	observability.Store().OnStorePut(ctx, "redis", buf.Len())
	return nil
}

// List returns all stored projects. Keys are scanned incrementally so large
// instances are not blocked; undecodable values are skipped.
func (s *RedisStore) List(ctx context.Context) ([]*menu.MenuProject, error) {
	var out []*menu.MenuProject

	iter := s.client.Scan(ctx, 0, keyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		data, err := s.client.Get(ctx, iter.Val()).Bytes()
		if err != nil {
			continue
		}
		p, err := menu.ReadJSON(bytes.NewReader(data))
		if err != nil {
			continue
		}
		out = append(out, p)
	}
	if err := iter.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "scan projects")
	}
	return out, nil
}

// Delete removes a project. Missing ids are ignored.
func (s *RedisStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, keyPrefix+id).Err(); err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "delete project %s", id)
	}

	observability.Store().OnStoreDelete(ctx, "redis")
	return nil
}

// Close closes the Redis connection.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

// Ensure RedisStore implements Store.
var _ Store = (*RedisStore)(nil)
