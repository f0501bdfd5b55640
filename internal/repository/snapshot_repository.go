package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// SnapshotRepository stores the serialized dispatch state as a single Redis
// value. The whole document is written on every save; readers always get the
// last complete write.
type SnapshotRepository struct {
	client *redis.Client
	key    string
}

// NewSnapshotRepository creates a snapshot repository bound to one key.
func NewSnapshotRepository(client *redis.Client, key string) *SnapshotRepository {
	return &SnapshotRepository{client: client, key: key}
}

// Save overwrites the stored snapshot. No TTL: the snapshot is the system of
// record between restarts.
func (r *SnapshotRepository) Save(ctx context.Context, data []byte) error {
	if err := r.client.Set(ctx, r.key, data, 0).Err(); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

// Load returns the stored snapshot, or nil when none has been written yet.
func (r *SnapshotRepository) Load(ctx context.Context) ([]byte, error) {
	data, err := r.client.Get(ctx, r.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	return data, nil
}
