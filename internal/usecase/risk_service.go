package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"RiskFolio/internal/domain/models"
	"RiskFolio/internal/domain/repository"
	domsvc "RiskFolio/internal/domain/service"
	"RiskFolio/pkg/cache"
	xhttp "RiskFolio/pkg/http"
	applogger "RiskFolio/pkg/logger"

	"github.com/google/uuid"
)

// Computation sources, used for metrics and snapshot events.
const (
	SourceRemote   = "remote"
	SourceFallback = "fallback"
)

// RiskService orchestrates risk computation: it attempts the remote engine
// once, falls back to the local engine on any failure, and persists the
// result as an immutable snapshot. A computation for a non-empty portfolio
// never fails because the remote engine is down.
type RiskService struct {
	portfolios repository.Portfolios
	holdings   repository.Holdings
	snapshots  repository.Snapshots
	archiver   repository.SnapshotArchiver // optional
	publisher  repository.EventPublisher   // optional
	cache      cache.Service
	cacheTTL   time.Duration
	remote     domsvc.RiskComputer // optional
	engine     domsvc.RiskComputer
	metrics    repository.Metrics
	logger     *applogger.Logger
}

// NewRiskService creates the risk computation service. remote, archiver and
// publisher may be nil when the corresponding integration is disabled.
func NewRiskService(
	portfolios repository.Portfolios,
	holdings repository.Holdings,
	snapshots repository.Snapshots,
	archiver repository.SnapshotArchiver,
	publisher repository.EventPublisher,
	c cache.Service,
	cacheTTL time.Duration,
	remote domsvc.RiskComputer,
	engine domsvc.RiskComputer,
	metrics repository.Metrics,
	logger *applogger.Logger,
) *RiskService {
	return &RiskService{
		portfolios: portfolios,
		holdings:   holdings,
		snapshots:  snapshots,
		archiver:   archiver,
		publisher:  publisher,
		cache:      c,
		cacheTTL:   cacheTTL,
		remote:     remote,
		engine:     engine,
		metrics:    metrics,
		logger:     logger,
	}
}

// Compute calculates risk metrics for the portfolio and appends a snapshot.
func (s *RiskService) Compute(ctx context.Context, portfolioID, userID uint) (*models.RiskSnapshot, error) {
	start := time.Now()

	if err := s.checkOwnership(ctx, portfolioID, userID); err != nil {
		return nil, err
	}

	hs, err := s.holdings.ListByPortfolio(ctx, portfolioID)
	if err != nil {
		return nil, fmt.Errorf("list holdings: %w", err)
	}
	if len(hs) == 0 {
		return nil, xhttp.BadRequestError("cannot compute risk for portfolio with no holdings")
	}

	metrics, source := s.dispatch(ctx, hs)

	snap := metrics.Snapshot(portfolioID, time.Now().UTC())
	if err := s.snapshots.Create(ctx, snap); err != nil {
		return nil, fmt.Errorf("persist snapshot: %w", err)
	}

	s.metrics.RecordComputation(source)
	s.metrics.RecordSnapshotWrite()
	s.metrics.RecordPortfolioValue(fmt.Sprintf("%d", portfolioID), snap.TotalValue)
	s.metrics.RecordLatency("risk_compute", time.Since(start).Seconds())

	s.cacheLatest(ctx, snap)
	s.publishEvent(ctx, snap, source)
	s.archive(ctx, snap)

	return snap, nil
}

// dispatch is the attempt/fallback pipeline: one remote attempt, classified
// on failure, then the local engine. The local engine cannot fail on a
// non-empty holdings list.
func (s *RiskService) dispatch(ctx context.Context, hs []models.Holding) (*models.RiskMetrics, string) {
	if s.remote != nil {
		m, err := s.remote.Compute(ctx, hs)
		if err == nil {
			return m, SourceRemote
		}
		reason := classifyRemoteFailure(err)
		s.metrics.RecordRemoteFailure(reason)
		s.logger.Warn("remote risk engine failed, using local fallback",
			applogger.String("reason", reason),
			applogger.Error(err),
		)
	}

	m, _ := s.engine.Compute(ctx, hs)
	return m, SourceFallback
}

// classifyRemoteFailure names the failure mode of a remote computation so
// every fallback is attributable: timeout, status, decode or network.
func classifyRemoteFailure(err error) string {
	if errors.Is(err, context.DeadlineExceeded) {
		return "timeout"
	}
	msg := err.Error()
	switch {
	case strings.Contains(msg, "Client.Timeout"), strings.Contains(msg, "deadline exceeded"):
		return "timeout"
	case strings.Contains(msg, "unexpected status"):
		return "status"
	case strings.Contains(msg, "decode json"):
		return "decode"
	default:
		return "network"
	}
}

// Latest returns the most recent snapshot, reading through the cache.
func (s *RiskService) Latest(ctx context.Context, portfolioID, userID uint) (*models.RiskSnapshot, error) {
	if err := s.checkOwnership(ctx, portfolioID, userID); err != nil {
		return nil, err
	}

	if s.cache != nil {
		var snap models.RiskSnapshot
		if err := s.cache.Get(ctx, latestKey(portfolioID), &snap); err == nil {
			return &snap, nil
		}
	}

	snap, err := s.snapshots.Latest(ctx, portfolioID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, xhttp.NotFoundError("no risk data found, run compute first")
		}
		return nil, fmt.Errorf("latest snapshot: %w", err)
	}

	s.cacheLatest(ctx, snap)
	return snap, nil
}

// History returns up to limit snapshots ordered by as_of descending.
func (s *RiskService) History(ctx context.Context, portfolioID, userID uint, limit int) ([]models.RiskSnapshot, error) {
	if err := s.checkOwnership(ctx, portfolioID, userID); err != nil {
		return nil, err
	}

	snaps, err := s.snapshots.History(ctx, portfolioID, limit)
	if err != nil {
		return nil, fmt.Errorf("snapshot history: %w", err)
	}
	return snaps, nil
}

func (s *RiskService) checkOwnership(ctx context.Context, portfolioID, userID uint) error {
	if _, err := s.portfolios.GetOwned(ctx, portfolioID, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return xhttp.NotFoundError("portfolio not found")
		}
		return fmt.Errorf("get portfolio: %w", err)
	}
	return nil
}

func (s *RiskService) cacheLatest(ctx context.Context, snap *models.RiskSnapshot) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, latestKey(snap.PortfolioID), snap, s.cacheTTL); err != nil {
		s.logger.Warn("cache latest snapshot failed", applogger.Error(err))
	}
}

func (s *RiskService) publishEvent(ctx context.Context, snap *models.RiskSnapshot, source string) {
	if s.publisher == nil {
		return
	}
	ev := models.SnapshotEvent{
		EventID:     uuid.NewString(),
		PortfolioID: snap.PortfolioID,
		AsOf:        snap.AsOf,
		Source:      source,
		TotalValue:  snap.TotalValue,
	}
	if err := s.publisher.PublishSnapshotComputed(ctx, ev); err != nil {
		s.logger.Warn("publish snapshot event failed", applogger.Error(err))
	}
}

func (s *RiskService) archive(ctx context.Context, snap *models.RiskSnapshot) {
	if s.archiver == nil {
		return
	}
	if err := s.archiver.Archive(ctx, snap); err != nil {
		s.logger.Warn("archive snapshot failed", applogger.Error(err))
	}
}

func latestKey(portfolioID uint) string {
	return fmt.Sprintf("risk:latest:%d", portfolioID)
}
