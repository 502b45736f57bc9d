package usecase

import (
	"context"
	"errors"
	"testing"

	"RiskFolio/internal/domain/models"
	xhttp "RiskFolio/pkg/http"
)

func newHoldingFixture(t *testing.T) (*HoldingService, uint) {
	t.Helper()
	portfolios := newFakePortfolios()
	holdings := newFakeHoldings()

	p := &models.Portfolio{UserID: 1, Name: "main"}
	if err := portfolios.Create(context.Background(), p); err != nil {
		t.Fatalf("create portfolio: %v", err)
	}
	return NewHoldingService(portfolios, holdings), p.ID
}

func TestCreateHoldingNormalizesTicker(t *testing.T) {
	svc, portfolioID := newHoldingFixture(t)

	price := 150.0
	h, err := svc.Create(context.Background(), portfolioID, 1, &models.HoldingCreateRequest{
		Ticker:       "  aapl ",
		AssetClass:   "EQUITY",
		Quantity:     10,
		AvgCost:      100,
		CurrentPrice: &price,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if h.Ticker != "AAPL" {
		t.Fatalf("ticker = %q, want AAPL", h.Ticker)
	}
	if h.MarketValue == nil || *h.MarketValue != 1500 {
		t.Fatalf("market value = %v, want 1500", h.MarketValue)
	}
}

func TestCreateHoldingWithoutPriceKeepsCostBasis(t *testing.T) {
	svc, portfolioID := newHoldingFixture(t)

	h, err := svc.Create(context.Background(), portfolioID, 1, &models.HoldingCreateRequest{
		Ticker: "VTI", AssetClass: "EQUITY", Quantity: 4, AvgCost: 250,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if h.MarketValue != nil {
		t.Fatalf("market value should be nil without a price, got %v", *h.MarketValue)
	}
	if h.EffectiveValue() != 1000 {
		t.Fatalf("effective value = %v, want 1000", h.EffectiveValue())
	}
}

func TestUpdateHoldingRecomputesMarketValue(t *testing.T) {
	svc, portfolioID := newHoldingFixture(t)

	price := 100.0
	h, err := svc.Create(context.Background(), portfolioID, 1, &models.HoldingCreateRequest{
		Ticker: "MSFT", AssetClass: "EQUITY", Quantity: 5, AvgCost: 90, CurrentPrice: &price,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	qty := 8.0
	updated, err := svc.Update(context.Background(), h.ID, 1, &models.HoldingUpdateRequest{Quantity: &qty})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.MarketValue == nil || *updated.MarketValue != 800 {
		t.Fatalf("market value = %v, want 800", updated.MarketValue)
	}
}

func TestHoldingForeignPortfolioHidden(t *testing.T) {
	svc, portfolioID := newHoldingFixture(t)

	h, err := svc.Create(context.Background(), portfolioID, 1, &models.HoldingCreateRequest{
		Ticker: "TLT", AssetClass: "BOND", Quantity: 1, AvgCost: 100,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// A different user sees 404s everywhere.
	if _, err := svc.List(context.Background(), portfolioID, 2); !is404(err) {
		t.Fatalf("list: expected 404, got %v", err)
	}
	if _, err := svc.Update(context.Background(), h.ID, 2, &models.HoldingUpdateRequest{}); !is404(err) {
		t.Fatalf("update: expected 404, got %v", err)
	}
	if err := svc.Delete(context.Background(), h.ID, 2); !is404(err) {
		t.Fatalf("delete: expected 404, got %v", err)
	}
}

func TestDeleteHolding(t *testing.T) {
	svc, portfolioID := newHoldingFixture(t)

	h, err := svc.Create(context.Background(), portfolioID, 1, &models.HoldingCreateRequest{
		Ticker: "GLD", AssetClass: "COMMODITY", Quantity: 2, AvgCost: 180,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.Delete(context.Background(), h.ID, 1); err != nil {
		t.Fatalf("delete: %v", err)
	}
	hs, err := svc.List(context.Background(), portfolioID, 1)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(hs) != 0 {
		t.Fatalf("expected empty list, got %d", len(hs))
	}
}

func is404(err error) bool {
	var appErr *xhttp.AppError
	return errors.As(err, &appErr) && appErr.Status == 404
}
