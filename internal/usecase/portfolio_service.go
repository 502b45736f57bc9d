package usecase

import (
	"context"
	"errors"
	"fmt"

	"RiskFolio/internal/domain/models"
	"RiskFolio/internal/domain/repository"
	xhttp "RiskFolio/pkg/http"
)

// PortfolioService handles ownership-scoped portfolio CRUD.
type PortfolioService struct {
	portfolios repository.Portfolios
}

// NewPortfolioService creates a portfolio service.
func NewPortfolioService(portfolios repository.Portfolios) *PortfolioService {
	return &PortfolioService{portfolios: portfolios}
}

func (s *PortfolioService) Create(ctx context.Context, userID uint, req *models.PortfolioCreateRequest) (*models.Portfolio, error) {
	p := &models.Portfolio{
		UserID:       userID,
		Name:         req.Name,
		Description:  req.Description,
		BaseCurrency: req.BaseCurrency,
	}
	if err := s.portfolios.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("create portfolio: %w", err)
	}
	return p, nil
}

func (s *PortfolioService) Get(ctx context.Context, id, userID uint) (*models.Portfolio, error) {
	p, err := s.portfolios.GetOwned(ctx, id, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, xhttp.NotFoundError("portfolio not found")
		}
		return nil, fmt.Errorf("get portfolio: %w", err)
	}
	return p, nil
}

func (s *PortfolioService) List(ctx context.Context, userID uint) ([]models.Portfolio, error) {
	ps, err := s.portfolios.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list portfolios: %w", err)
	}
	return ps, nil
}

func (s *PortfolioService) Update(ctx context.Context, id, userID uint, req *models.PortfolioUpdateRequest) (*models.Portfolio, error) {
	p, err := s.Get(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if err := s.portfolios.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("update portfolio: %w", err)
	}
	return p, nil
}

// Delete removes the portfolio and, through the store, its holdings and snapshots.
func (s *PortfolioService) Delete(ctx context.Context, id, userID uint) error {
	if _, err := s.Get(ctx, id, userID); err != nil {
		return err
	}
	if err := s.portfolios.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete portfolio: %w", err)
	}
	return nil
}
