package storage

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("key not found")

// Storage is a flat byte store keyed by string. Stored values must remain
// stable after Put returns, so implementations copy on both write and read.
type Storage interface {
	Has(ctx context.Context, key string) (bool, error)
	Put(ctx context.Context, key string, content []byte) error
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
}
