package state

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/streetify/streetify-backend/pkg/config"
	redisclient "github.com/streetify/streetify-backend/pkg/redis"
)

type snapshotStore interface {
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
}

type snapshotKeyer interface {
	SnapshotKey(userID string) string
}

// Persister saves and loads JSON snapshots of the whole tree in Redis, keyed
// per user. It is the rehydration path for restarts; it never runs on its
// own, the cron worker and shutdown hook drive it.
type Persister struct {
	store snapshotStore
	keyer snapshotKeyer
	ttl   time.Duration
}

// NewPersister builds a persister over the shared Redis client.
func NewPersister(client *redisclient.Client, cfg config.SnapshotConfig) (*Persister, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client required")
	}
	if cfg.TTL <= 0 {
		return nil, fmt.Errorf("snapshot ttl must be positive")
	}
	return &Persister{store: client, keyer: client, ttl: cfg.TTL}, nil
}

// Save serializes the tree and writes it under the user's snapshot key.
func (p *Persister) Save(ctx context.Context, userID string, root RootState) error {
	if userID == "" {
		return fmt.Errorf("user id required")
	}
	payload, err := json.Marshal(root)
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	if err := p.store.Set(ctx, p.keyer.SnapshotKey(userID), payload, p.ttl); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	return nil
}

// Load reads and decodes the user's snapshot. The second return is false when
// no snapshot exists.
func (p *Persister) Load(ctx context.Context, userID string) (RootState, bool, error) {
	if userID == "" {
		return RootState{}, false, fmt.Errorf("user id required")
	}
	raw, err := p.store.Get(ctx, p.keyer.SnapshotKey(userID))
	if err != nil {
		if redisclient.IsNil(err) {
			return RootState{}, false, nil
		}
		return RootState{}, false, fmt.Errorf("reading snapshot: %w", err)
	}

	root := NewRootState()
	if err := json.Unmarshal([]byte(raw), &root); err != nil {
		return RootState{}, false, fmt.Errorf("decoding snapshot: %w", err)
	}
	return root, true, nil
}
