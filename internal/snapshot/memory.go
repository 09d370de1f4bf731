package snapshot

import (
	"encoding/json"
	"sync"

	apperrors "financecontrol/internal/errors"
)

// MemoryRepository keeps serialized snapshots in a map. It is used by tests
// and as a fallback when no durable backend is configured.
type MemoryRepository struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

// NewMemoryRepository creates an empty in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{blobs: make(map[string][]byte)}
}

// Load returns the snapshot stored under owner, or an empty snapshot when
// none exists.
func (r *MemoryRepository) Load(owner string) (Snapshot, error) {
	r.mu.RLock()
	data, ok := r.blobs[owner]
	r.mu.RUnlock()
	if !ok {
		return Snapshot{}, nil
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, apperrors.Wrap(apperrors.ErrSnapshotCorrupt, err)
	}
	return snap, nil
}

// Save replaces the snapshot stored under owner.
func (r *MemoryRepository) Save(owner string, snap Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrPersistence, err)
	}
	r.mu.Lock()
	r.blobs[owner] = data
	r.mu.Unlock()
	return nil
}

// Corrupt overwrites the stored payload for owner with undecodable bytes.
// Test hook for the corrupt-snapshot fallback path.
func (r *MemoryRepository) Corrupt(owner string) {
	r.mu.Lock()
	r.blobs[owner] = []byte("{not json")
	r.mu.Unlock()
}
