package interfaces

import "context"

// IKeyValueStore abstracts the durable key-value store backing the local stores.
//
// Each store owns one key and writes its whole collection as a single JSON blob:
//   - Get returns ok=false when the key was never written (or was deleted)
//   - Set overwrites the value synchronously
type IKeyValueStore interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}
