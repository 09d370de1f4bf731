package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	apperrors "financecontrol/internal/errors"
)

// FileRepository stores one JSON file per owner under a data directory.
type FileRepository struct {
	dir string
}

// NewFileRepository creates the data directory if needed and returns a
// repository writing into it.
func NewFileRepository(dir string) (*FileRepository, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrPersistence, err)
	}
	return &FileRepository{dir: dir}, nil
}

// Load reads the owner's snapshot file. A missing file yields an empty
// snapshot; an unreadable or undecodable file yields an empty snapshot and
// a persistence error.
func (r *FileRepository) Load(owner string) (Snapshot, error) {
	data, err := os.ReadFile(r.path(owner))
	if err != nil {
		if os.IsNotExist(err) {
			return Snapshot{}, nil
		}
		return Snapshot{}, apperrors.Wrap(apperrors.ErrPersistence, err)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, apperrors.Wrap(apperrors.ErrSnapshotCorrupt, err)
	}
	return snap, nil
}

// Save replaces the owner's snapshot file with the given state.
func (r *FileRepository) Save(owner string, snap Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return apperrors.Wrap(apperrors.ErrPersistence, err)
	}
	if err := os.WriteFile(r.path(owner), data, 0o600); err != nil {
		return apperrors.Wrap(apperrors.ErrPersistence, err)
	}
	return nil
}

func (r *FileRepository) path(owner string) string {
	return filepath.Join(r.dir, fmt.Sprintf("%s.json", ownerKey(owner)))
}

// ownerKey turns an owner identity (typically an email address) into a safe
// file name component.
func ownerKey(owner string) string {
	var b strings.Builder
	for _, r := range owner {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}
