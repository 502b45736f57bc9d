package repository

import (
	"context"

	"RiskFolio/internal/domain/models"
	"RiskFolio/internal/domain/repository"

	"gorm.io/gorm"
)

// PortfolioStore implements repository.Portfolios on gorm.
type PortfolioStore struct {
	db *gorm.DB
}

// NewPortfolioStore creates a portfolio store.
func NewPortfolioStore(db *gorm.DB) repository.Portfolios {
	return &PortfolioStore{db: db}
}

func (s *PortfolioStore) Create(ctx context.Context, p *models.Portfolio) error {
	return mapError(s.db.WithContext(ctx).Create(p).Error)
}

// GetOwned returns the portfolio only when it belongs to userID. A portfolio
// owned by someone else is indistinguishable from a missing one.
func (s *PortfolioStore) GetOwned(ctx context.Context, id, userID uint) (*models.Portfolio, error) {
	var p models.Portfolio
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&p).Error
	if err != nil {
		return nil, mapError(err)
	}
	return &p, nil
}

func (s *PortfolioStore) ListByUser(ctx context.Context, userID uint) ([]models.Portfolio, error) {
	var ps []models.Portfolio
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&ps).Error
	if err != nil {
		return nil, mapError(err)
	}
	return ps, nil
}

func (s *PortfolioStore) Update(ctx context.Context, p *models.Portfolio) error {
	return mapError(s.db.WithContext(ctx).Save(p).Error)
}

// Delete removes the portfolio together with its holdings and snapshots.
func (s *PortfolioStore) Delete(ctx context.Context, id uint) error {
	return mapError(s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("portfolio_id = ?", id).Delete(&models.Holding{}).Error; err != nil {
			return err
		}
		if err := tx.Where("portfolio_id = ?", id).Delete(&models.RiskSnapshot{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Portfolio{}, id).Error
	}))
}
