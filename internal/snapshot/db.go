package snapshot

import (
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "financecontrol/internal/errors"
)

// Record is a snapshots table row: one JSON payload per owner key.
type Record struct {
	OwnerKey  string    `gorm:"primaryKey;column:owner_key"`
	Payload   []byte    `gorm:"column:payload;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

// TableName overrides the GORM default.
func (Record) TableName() string { return "snapshots" }

// DBRepository stores snapshots in a database table through GORM. It works
// against both the embedded sqlite backend and postgres.
type DBRepository struct {
	db *gorm.DB
}

// NewDBRepository wraps an open GORM connection.
func NewDBRepository(db *gorm.DB) *DBRepository {
	return &DBRepository{db: db}
}

// Load reads the owner's snapshot row. A missing row yields an empty
// snapshot; an undecodable payload yields an empty snapshot and a
// persistence error.
func (r *DBRepository) Load(owner string) (Snapshot, error) {
	var rec Record
	if err := r.db.First(&rec, "owner_key = ?", owner).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Snapshot{}, nil
		}
		return Snapshot{}, apperrors.Wrap(apperrors.ErrPersistence, err)
	}

	var snap Snapshot
	if err := json.Unmarshal(rec.Payload, &snap); err != nil {
		return Snapshot{}, apperrors.Wrap(apperrors.ErrSnapshotCorrupt, err)
	}
	return snap, nil
}

// Save upserts the owner's snapshot row.
func (r *DBRepository) Save(owner string, snap Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrPersistence, err)
	}

	rec := Record{OwnerKey: owner, Payload: data, UpdatedAt: time.Now()}
	err = r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "owner_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
	}).Create(&rec).Error
	if err != nil {
		return apperrors.Wrap(apperrors.ErrPersistence, err)
	}
	return nil
}
