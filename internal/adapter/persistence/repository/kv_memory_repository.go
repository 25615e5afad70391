package repository

import (
	"context"
	"sync"

	"my_trip/internal/usecase/interfaces"
)

// KVMemoryRepository keeps values in process memory. Nothing survives a restart.
type KVMemoryRepository struct {
	mu     sync.RWMutex
	values map[string]string
}

var _ interfaces.IKeyValueStore = (*KVMemoryRepository)(nil)

func NewKVMemoryRepository() *KVMemoryRepository {
	return &KVMemoryRepository{values: make(map[string]string)}
}

func (r *KVMemoryRepository) Get(ctx context.Context, key string) (string, bool, error) {
	if err := checkKey(key); err != nil {
		return "", false, err
	}
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.values[key]
	return v, ok, nil
}

func (r *KVMemoryRepository) Set(ctx context.Context, key string, value string) error {
	if err := checkKey(key); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values[key] = value
	return nil
}

func (r *KVMemoryRepository) Delete(ctx context.Context, key string) error {
	if err := checkKey(key); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.values, key)
	return nil
}
