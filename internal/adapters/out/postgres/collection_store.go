// Package postgres provides a GORM-based CollectionStore. Every collection
// is one row in the collections table with the serialized JSON in a jsonb
// column, so a Save is a single-row upsert and therefore atomic per key.
package postgres

import (
	"context"
	"errors"

	"kurirkan/internal/core/ports"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CollectionDTO is the database row holding one serialized collection.
type CollectionDTO struct {
	Key   string `gorm:"primaryKey"`
	Value []byte `gorm:"type:jsonb"`
}

// TableName overrides GORM's default naming to use "collections".
func (CollectionDTO) TableName() string {
	return "collections"
}

// GormCollectionStore implements ports.CollectionStore using GORM.
type GormCollectionStore struct {
	db *gorm.DB
}

// NewGormCollectionStore creates a collection store over the connection.
func NewGormCollectionStore(db *gorm.DB) *GormCollectionStore {
	return &GormCollectionStore{db: db}
}

var _ ports.CollectionStore = (*GormCollectionStore)(nil)

// Load returns the serialized collection for the key, or an empty slice
// for a key that has never been saved.
func (s *GormCollectionStore) Load(ctx context.Context, key string) ([]byte, error) {
	var dto CollectionDTO
	if err := s.db.WithContext(ctx).First(&dto, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return dto.Value, nil
}

// Save upserts the row for the key, replacing the stored value.
func (s *GormCollectionStore) Save(ctx context.Context, key string, value []byte) error {
	dto := CollectionDTO{Key: key, Value: value}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value"}),
		}).
		Create(&dto).Error
}
