package usecase

import (
	"context"
	"errors"
	"fmt"

	"RiskFolio/internal/domain/models"
	"RiskFolio/internal/domain/repository"
	xhttp "RiskFolio/pkg/http"
)

// HoldingService handles holding CRUD, always scoped through the owning portfolio.
type HoldingService struct {
	portfolios repository.Portfolios
	holdings   repository.Holdings
}

// NewHoldingService creates a holding service.
func NewHoldingService(portfolios repository.Portfolios, holdings repository.Holdings) *HoldingService {
	return &HoldingService{portfolios: portfolios, holdings: holdings}
}

func (s *HoldingService) Create(ctx context.Context, portfolioID, userID uint, req *models.HoldingCreateRequest) (*models.Holding, error) {
	if err := s.checkOwnership(ctx, portfolioID, userID); err != nil {
		return nil, err
	}

	h := &models.Holding{
		PortfolioID:  portfolioID,
		Ticker:       models.NormalizeTicker(req.Ticker),
		AssetClass:   models.AssetClass(req.AssetClass),
		Quantity:     req.Quantity,
		AvgCost:      req.AvgCost,
		CurrentPrice: req.CurrentPrice,
	}
	h.RefreshMarketValue()

	if err := s.holdings.Create(ctx, h); err != nil {
		return nil, fmt.Errorf("create holding: %w", err)
	}
	return h, nil
}

func (s *HoldingService) List(ctx context.Context, portfolioID, userID uint) ([]models.Holding, error) {
	if err := s.checkOwnership(ctx, portfolioID, userID); err != nil {
		return nil, err
	}
	hs, err := s.holdings.ListByPortfolio(ctx, portfolioID)
	if err != nil {
		return nil, fmt.Errorf("list holdings: %w", err)
	}
	return hs, nil
}

func (s *HoldingService) Update(ctx context.Context, id, userID uint, req *models.HoldingUpdateRequest) (*models.Holding, error) {
	h, err := s.getOwned(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if req.Quantity != nil {
		h.Quantity = *req.Quantity
	}
	if req.AvgCost != nil {
		h.AvgCost = *req.AvgCost
	}
	if req.CurrentPrice != nil {
		h.CurrentPrice = req.CurrentPrice
	}
	h.RefreshMarketValue()

	if err := s.holdings.Update(ctx, h); err != nil {
		return nil, fmt.Errorf("update holding: %w", err)
	}
	return h, nil
}

func (s *HoldingService) Delete(ctx context.Context, id, userID uint) error {
	if _, err := s.getOwned(ctx, id, userID); err != nil {
		return err
	}
	if err := s.holdings.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete holding: %w", err)
	}
	return nil
}

func (s *HoldingService) checkOwnership(ctx context.Context, portfolioID, userID uint) error {
	if _, err := s.portfolios.GetOwned(ctx, portfolioID, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return xhttp.NotFoundError("portfolio not found")
		}
		return fmt.Errorf("get portfolio: %w", err)
	}
	return nil
}

func (s *HoldingService) getOwned(ctx context.Context, id, userID uint) (*models.Holding, error) {
	h, err := s.holdings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, xhttp.NotFoundError("holding not found")
		}
		return nil, fmt.Errorf("get holding: %w", err)
	}
	if err := s.checkOwnership(ctx, h.PortfolioID, userID); err != nil {
		// hide holdings that live in someone else's portfolio
		return nil, xhttp.NotFoundError("holding not found")
	}
	return h, nil
}
