package repository

import (
	"context"

	"RiskFolio/internal/domain/models"
	"RiskFolio/internal/domain/repository"

	"gorm.io/gorm"
)

// HoldingStore implements repository.Holdings on gorm.
type HoldingStore struct {
	db *gorm.DB
}

// NewHoldingStore creates a holding store.
func NewHoldingStore(db *gorm.DB) repository.Holdings {
	return &HoldingStore{db: db}
}

func (s *HoldingStore) Create(ctx context.Context, h *models.Holding) error {
	return mapError(s.db.WithContext(ctx).Create(h).Error)
}

func (s *HoldingStore) GetByID(ctx context.Context, id uint) (*models.Holding, error) {
	var h models.Holding
	if err := s.db.WithContext(ctx).First(&h, id).Error; err != nil {
		return nil, mapError(err)
	}
	return &h, nil
}

func (s *HoldingStore) ListByPortfolio(ctx context.Context, portfolioID uint) ([]models.Holding, error) {
	var hs []models.Holding
	err := s.db.WithContext(ctx).
		Where("portfolio_id = ?", portfolioID).
		Order("id").
		Find(&hs).Error
	if err != nil {
		return nil, mapError(err)
	}
	return hs, nil
}

func (s *HoldingStore) Update(ctx context.Context, h *models.Holding) error {
	return mapError(s.db.WithContext(ctx).Save(h).Error)
}

func (s *HoldingStore) Delete(ctx context.Context, id uint) error {
	return mapError(s.db.WithContext(ctx).Delete(&models.Holding{}, id).Error)
}

// DistinctTickers lists every ticker held in any portfolio, for the price feed.
func (s *HoldingStore) DistinctTickers(ctx context.Context) ([]string, error) {
	var tickers []string
	err := s.db.WithContext(ctx).
		Model(&models.Holding{}).
		Distinct("ticker").
		Order("ticker").
		Pluck("ticker", &tickers).Error
	if err != nil {
		return nil, mapError(err)
	}
	return tickers, nil
}

// UpdatePrice sets current_price for every holding of the ticker and
// recomputes market_value from quantity in the same statement.
func (s *HoldingStore) UpdatePrice(ctx context.Context, ticker string, price float64) error {
	return mapError(s.db.WithContext(ctx).
		Model(&models.Holding{}).
		Where("ticker = ?", ticker).
		Updates(map[string]interface{}{
			"current_price": price,
			"market_value":  gorm.Expr("quantity * ?", price),
		}).Error)
}
