package repository

import (
	"context"
	"errors"
	"fmt"

	"my_trip/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const defaultRedisNamespace = "my-trip"

// KVRedisRepository stores each key as a plain Redis string under
// "<namespace>:kv:<key>". Values never expire.
type KVRedisRepository struct {
	client    redis.Cmdable
	namespace string
}

var _ interfaces.IKeyValueStore = (*KVRedisRepository)(nil)

func NewKVRedisRepository(client redis.Cmdable) *KVRedisRepository {
	return &KVRedisRepository{
		client:    client,
		namespace: getenvDefault("REDIS_NAMESPACE", defaultRedisNamespace),
	}
}

func (r *KVRedisRepository) GenerateKey(key string) string {
	return fmt.Sprintf("%s:kv:%s", r.namespace, key)
}

func (r *KVRedisRepository) Get(ctx context.Context, key string) (string, bool, error) {
	if err := checkKey(key); err != nil {
		return "", false, err
	}
	v, err := r.client.Get(ctx, r.GenerateKey(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (r *KVRedisRepository) Set(ctx context.Context, key string, value string) error {
	if err := checkKey(key); err != nil {
		return err
	}
	return r.client.Set(ctx, r.GenerateKey(key), value, 0).Err()
}

func (r *KVRedisRepository) Delete(ctx context.Context, key string) error {
	if err := checkKey(key); err != nil {
		return err
	}
	return r.client.Del(ctx, r.GenerateKey(key)).Err()
}
