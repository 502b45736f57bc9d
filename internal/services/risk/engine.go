package risk

import (
	"context"
	"math"

	"RiskFolio/internal/domain/models"
	domsvc "RiskFolio/internal/domain/service"
)

// Per-asset-class annualized volatility estimates, as decimal fractions.
var volatilityByClass = map[models.AssetClass]float64{
	models.AssetCash:       0.01,
	models.AssetBond:       0.05,
	models.AssetEquity:     0.18,
	models.AssetCrypto:     0.80,
	models.AssetCommodity:  0.25,
	models.AssetRealEstate: 0.12,
}

// Per-asset-class expected annual returns, as decimal fractions.
var expectedReturnByClass = map[models.AssetClass]float64{
	models.AssetCash:       0.04,
	models.AssetBond:       0.05,
	models.AssetEquity:     0.10,
	models.AssetCrypto:     0.15,
	models.AssetCommodity:  0.08,
	models.AssetRealEstate: 0.09,
}

const (
	defaultVolatility  = 0.15
	defaultReturn      = 0.07
	riskFreeRate       = 0.04
	drawdownMultiplier = 2.5
)

// Engine computes portfolio risk metrics locally. It is a pure function over
// the holdings: no I/O, no state, safe for concurrent use.
type Engine struct{}

// NewEngine creates the local risk engine.
func NewEngine() *Engine { return &Engine{} }

// Compute derives risk metrics from the given holdings.
//
// Weighting uses each holding's effective value. When the portfolio's total
// effective value is zero the result is the degenerate metrics object: zero
// percentages and nil volatility, drawdown and Sharpe.
func (e *Engine) Compute(_ context.Context, holdings []models.Holding) (*models.RiskMetrics, error) {
	var total float64
	for i := range holdings {
		total += holdings[i].EffectiveValue()
	}

	if total == 0 {
		return &models.RiskMetrics{}, nil
	}

	weights := make([]float64, len(holdings))
	for i := range holdings {
		weights[i] = holdings[i].EffectiveValue() / total
	}

	var cashValue float64
	for i := range holdings {
		if holdings[i].AssetClass == models.AssetCash {
			cashValue += holdings[i].EffectiveValue()
		}
	}
	cashPct := cashValue / total * 100

	var topWeight float64
	for _, w := range weights {
		if w > topWeight {
			topWeight = w
		}
	}

	// Herfindahl concentration index; a single holding is pinned to fully
	// concentrated (the general formula gives 0 there as well).
	var diversification float64
	if len(holdings) > 1 {
		var herfindahl float64
		for _, w := range weights {
			herfindahl += w * w
		}
		diversification = (1 - herfindahl) * 100
	}

	var weightedVol float64
	for i := range holdings {
		vol, ok := volatilityByClass[holdings[i].AssetClass]
		if !ok {
			vol = defaultVolatility
		}
		weightedVol += weights[i] * vol
	}
	volatility := weightedVol * 100

	// Heuristic proxy, not a simulated historical drawdown.
	maxDrawdown := weightedVol * drawdownMultiplier * 100

	var expectedReturn float64
	for i := range holdings {
		ret, ok := expectedReturnByClass[holdings[i].AssetClass]
		if !ok {
			ret = defaultReturn
		}
		expectedReturn += weights[i] * ret
	}

	var sharpe float64
	if weightedVol > 0 {
		sharpe = (expectedReturn - riskFreeRate) / weightedVol
	}

	volatility = round2(volatility)
	maxDrawdown = round2(maxDrawdown)
	sharpe = round2(sharpe)

	return &models.RiskMetrics{
		TotalValue:           round2(total),
		Volatility30D:        &volatility,
		MaxDrawdown1Y:        &maxDrawdown,
		SharpeRatio:          &sharpe,
		CashPct:              round2(cashPct),
		TopHoldingPct:        round2(topWeight * 100),
		DiversificationScore: round2(diversification),
	}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

var _ domsvc.RiskComputer = (*Engine)(nil)
