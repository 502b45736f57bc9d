package risk

import (
	"context"
	"testing"

	"RiskFolio/internal/domain/models"
)

func fptr(v float64) *float64 { return &v }

func holding(class models.AssetClass, value float64) models.Holding {
	return models.Holding{
		Ticker:      "TEST",
		AssetClass:  class,
		Quantity:    1,
		AvgCost:     value,
		MarketValue: fptr(value),
	}
}

func TestComputeSingleEquityHolding(t *testing.T) {
	h := models.Holding{
		Ticker:       "AAPL",
		AssetClass:   models.AssetEquity,
		Quantity:     10,
		AvgCost:      100,
		CurrentPrice: fptr(150),
	}
	h.RefreshMarketValue()

	m, err := NewEngine().Compute(context.Background(), []models.Holding{h})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.TotalValue != 1500 {
		t.Fatalf("total value = %v, want 1500", m.TotalValue)
	}
	if *m.Volatility30D != 18.0 {
		t.Fatalf("volatility = %v, want 18.0", *m.Volatility30D)
	}
	if *m.MaxDrawdown1Y != 45.0 {
		t.Fatalf("max drawdown = %v, want 45.0", *m.MaxDrawdown1Y)
	}
	if *m.SharpeRatio != 0.33 {
		t.Fatalf("sharpe = %v, want 0.33", *m.SharpeRatio)
	}
	if m.TopHoldingPct != 100 {
		t.Fatalf("top holding = %v, want 100", m.TopHoldingPct)
	}
	if m.DiversificationScore != 0 {
		t.Fatalf("diversification = %v, want 0 for single holding", m.DiversificationScore)
	}
	if m.CashPct != 0 {
		t.Fatalf("cash pct = %v, want 0", m.CashPct)
	}
}

func TestComputeTwoEqualHoldings(t *testing.T) {
	hs := []models.Holding{
		holding(models.AssetEquity, 1000),
		holding(models.AssetBond, 1000),
	}

	m, err := NewEngine().Compute(context.Background(), hs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.TotalValue != 2000 {
		t.Fatalf("total value = %v, want 2000", m.TotalValue)
	}
	// 0.5*0.18 + 0.5*0.05 = 0.115
	if *m.Volatility30D != 11.5 {
		t.Fatalf("volatility = %v, want 11.5", *m.Volatility30D)
	}
	if *m.MaxDrawdown1Y != 28.75 {
		t.Fatalf("max drawdown = %v, want 28.75", *m.MaxDrawdown1Y)
	}
	// (0.075 - 0.04) / 0.115
	if *m.SharpeRatio != 0.30 {
		t.Fatalf("sharpe = %v, want 0.30", *m.SharpeRatio)
	}
	if m.TopHoldingPct != 50 {
		t.Fatalf("top holding = %v, want 50", m.TopHoldingPct)
	}
	// 1 - (0.25 + 0.25) = 0.5
	if m.DiversificationScore != 50 {
		t.Fatalf("diversification = %v, want 50", m.DiversificationScore)
	}
}

func TestComputeCashPercentage(t *testing.T) {
	hs := []models.Holding{
		holding(models.AssetCash, 500),
		holding(models.AssetEquity, 1500),
	}

	m, err := NewEngine().Compute(context.Background(), hs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.CashPct != 25 {
		t.Fatalf("cash pct = %v, want 25", m.CashPct)
	}
	if m.TopHoldingPct != 75 {
		t.Fatalf("top holding = %v, want 75", m.TopHoldingPct)
	}
}

func TestComputeZeroTotalValue(t *testing.T) {
	hs := []models.Holding{
		{Ticker: "X", AssetClass: models.AssetEquity, Quantity: 0, AvgCost: 100},
		{Ticker: "Y", AssetClass: models.AssetBond, Quantity: 10, AvgCost: 0},
	}

	m, err := NewEngine().Compute(context.Background(), hs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.TotalValue != 0 {
		t.Fatalf("total value = %v, want 0", m.TotalValue)
	}
	if m.Volatility30D != nil || m.MaxDrawdown1Y != nil || m.SharpeRatio != nil {
		t.Fatalf("expected nil volatility, drawdown and sharpe for empty value")
	}
	if m.CashPct != 0 || m.TopHoldingPct != 0 || m.DiversificationScore != 0 {
		t.Fatalf("expected zero percentages, got %+v", m)
	}
}

func TestComputeUnknownAssetClassUsesDefaults(t *testing.T) {
	hs := []models.Holding{holding(models.AssetClass("PRIVATE_DEBT"), 1000)}

	m, err := NewEngine().Compute(context.Background(), hs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *m.Volatility30D != 15.0 {
		t.Fatalf("volatility = %v, want default 15.0", *m.Volatility30D)
	}
	// (0.07 - 0.04) / 0.15
	if *m.SharpeRatio != 0.2 {
		t.Fatalf("sharpe = %v, want 0.2", *m.SharpeRatio)
	}
}

func TestComputeDeterministic(t *testing.T) {
	hs := []models.Holding{
		holding(models.AssetEquity, 3333.33),
		holding(models.AssetCrypto, 777.77),
		holding(models.AssetCash, 1200),
	}

	e := NewEngine()
	a, err := e.Compute(context.Background(), hs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := e.Compute(context.Background(), hs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if a.TotalValue != b.TotalValue ||
		*a.Volatility30D != *b.Volatility30D ||
		*a.MaxDrawdown1Y != *b.MaxDrawdown1Y ||
		*a.SharpeRatio != *b.SharpeRatio ||
		a.CashPct != b.CashPct ||
		a.TopHoldingPct != b.TopHoldingPct ||
		a.DiversificationScore != b.DiversificationScore {
		t.Fatalf("repeated computation differs: %+v vs %+v", a, b)
	}
}

func TestComputeDiversificationImprovesWithSpread(t *testing.T) {
	concentrated := []models.Holding{
		holding(models.AssetEquity, 9000),
		holding(models.AssetBond, 1000),
	}
	spread := []models.Holding{
		holding(models.AssetEquity, 5000),
		holding(models.AssetBond, 5000),
	}

	e := NewEngine()
	a, _ := e.Compute(context.Background(), concentrated)
	b, _ := e.Compute(context.Background(), spread)

	if a.DiversificationScore >= b.DiversificationScore {
		t.Fatalf("expected spread portfolio to score higher: %v vs %v",
			a.DiversificationScore, b.DiversificationScore)
	}
	if b.DiversificationScore > 100 || b.DiversificationScore < 0 {
		t.Fatalf("diversification out of range: %v", b.DiversificationScore)
	}
}

func TestComputeCostBasisFallback(t *testing.T) {
	// No market value and no current price, value comes from quantity * avg cost.
	hs := []models.Holding{
		{Ticker: "VTI", AssetClass: models.AssetEquity, Quantity: 4, AvgCost: 250},
	}

	m, err := NewEngine().Compute(context.Background(), hs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.TotalValue != 1000 {
		t.Fatalf("total value = %v, want 1000", m.TotalValue)
	}
}
