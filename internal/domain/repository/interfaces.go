package repository

import (
	"context"
	"errors"

	"RiskFolio/internal/domain/models"
)

// ErrNotFound is returned when a record does not exist or is not owned by the caller.
var ErrNotFound = errors.New("record not found")

// ErrDuplicate is returned when a unique constraint is violated.
var ErrDuplicate = errors.New("record already exists")

// Users persists account owners.
type Users interface {
	Create(ctx context.Context, u *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id uint) (*models.User, error)
}

// Portfolios persists portfolios. All reads and writes are ownership-scoped:
// a portfolio owned by someone else behaves exactly like a missing one.
type Portfolios interface {
	Create(ctx context.Context, p *models.Portfolio) error
	GetOwned(ctx context.Context, id, userID uint) (*models.Portfolio, error)
	ListByUser(ctx context.Context, userID uint) ([]models.Portfolio, error)
	Update(ctx context.Context, p *models.Portfolio) error
	Delete(ctx context.Context, id uint) error
}

// Holdings persists positions.
type Holdings interface {
	Create(ctx context.Context, h *models.Holding) error
	GetByID(ctx context.Context, id uint) (*models.Holding, error)
	ListByPortfolio(ctx context.Context, portfolioID uint) ([]models.Holding, error)
	Update(ctx context.Context, h *models.Holding) error
	Delete(ctx context.Context, id uint) error
	DistinctTickers(ctx context.Context) ([]string, error)
	UpdatePrice(ctx context.Context, ticker string, price float64) error
}

// Snapshots persists computed risk metrics as an append-only log.
type Snapshots interface {
	Create(ctx context.Context, s *models.RiskSnapshot) error
	Latest(ctx context.Context, portfolioID uint) (*models.RiskSnapshot, error)
	History(ctx context.Context, portfolioID uint, limit int) ([]models.RiskSnapshot, error)
}

// SnapshotArchiver mirrors snapshots into a long-term analytical store.
type SnapshotArchiver interface {
	Archive(ctx context.Context, s *models.RiskSnapshot) error
}

// EventPublisher emits domain events to a message bus.
type EventPublisher interface {
	PublishSnapshotComputed(ctx context.Context, ev models.SnapshotEvent) error
	Close() error
}

// PriceStream is a live market price feed.
type PriceStream interface {
	Connect(ctx context.Context) error
	Subscribe(ctx context.Context, symbols []string) error
	Read(ctx context.Context) (<-chan *models.PriceTick, <-chan error)
	Close() error
}

// Metrics records operational metrics.
type Metrics interface {
	RecordComputation(source string)
	RecordRemoteFailure(reason string)
	RecordSnapshotWrite()
	RecordLatency(op string, seconds float64)
	RecordPortfolioValue(portfolioID string, value float64)
}
