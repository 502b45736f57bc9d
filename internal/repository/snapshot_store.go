package repository

import (
	"context"

	"RiskFolio/internal/domain/models"
	"RiskFolio/internal/domain/repository"

	"gorm.io/gorm"
)

// SnapshotStore implements repository.Snapshots on gorm. Snapshots are
// append-only: there is no update path, and deletes happen only through the
// owning portfolio's cascade.
type SnapshotStore struct {
	db *gorm.DB
}

// NewSnapshotStore creates a snapshot store.
func NewSnapshotStore(db *gorm.DB) repository.Snapshots {
	return &SnapshotStore{db: db}
}

func (s *SnapshotStore) Create(ctx context.Context, snap *models.RiskSnapshot) error {
	return mapError(s.db.WithContext(ctx).Create(snap).Error)
}

func (s *SnapshotStore) Latest(ctx context.Context, portfolioID uint) (*models.RiskSnapshot, error) {
	var snap models.RiskSnapshot
	err := s.db.WithContext(ctx).
		Where("portfolio_id = ?", portfolioID).
		Order("as_of DESC").
		First(&snap).Error
	if err != nil {
		return nil, mapError(err)
	}
	return &snap, nil
}

func (s *SnapshotStore) History(ctx context.Context, portfolioID uint, limit int) ([]models.RiskSnapshot, error) {
	var snaps []models.RiskSnapshot
	err := s.db.WithContext(ctx).
		Where("portfolio_id = ?", portfolioID).
		Order("as_of DESC").
		Limit(limit).
		Find(&snaps).Error
	if err != nil {
		return nil, mapError(err)
	}
	return snaps, nil
}
