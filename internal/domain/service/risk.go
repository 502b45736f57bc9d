package service

import (
	"context"

	"RiskFolio/internal/domain/models"
)

// RiskComputer derives portfolio risk metrics from a set of holdings.
// Implementations must treat the holdings as read-only.
type RiskComputer interface {
	Compute(ctx context.Context, holdings []models.Holding) (*models.RiskMetrics, error)
}
