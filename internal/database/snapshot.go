package database

import (
	"errors"
	"fmt"

	"satistakip-backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SnapshotBackend: state.Backend'in Postgres implementasyonu. Snapshot tek
// anahtar altında tek satır olarak saklanır; her kayıt önceki değerin
// üzerine yazar, son yazan kazanır.
type SnapshotBackend struct {
	db  *gorm.DB
	key string
}

func NewSnapshotBackend(db *gorm.DB, key string) *SnapshotBackend {
	return &SnapshotBackend{db: db, key: key}
}

func (b *SnapshotBackend) Load() ([]byte, error) {
	var row models.AppSnapshot
	err := b.db.First(&row, "key = ?", b.key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("snapshot satırı okunamadı: %w", err)
	}
	return []byte(row.Data), nil
}

func (b *SnapshotBackend) Save(data []byte) error {
	row := models.AppSnapshot{Key: b.key, Data: string(data)}
	err := b.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("snapshot satırı yazılamadı: %w", err)
	}
	return nil
}
