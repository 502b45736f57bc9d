package models

import (
	"strings"
	"time"
)

// AssetClass identifies the broad class of a holding.
type AssetClass string

const (
	AssetEquity     AssetClass = "EQUITY"
	AssetBond       AssetClass = "BOND"
	AssetCash       AssetClass = "CASH"
	AssetCrypto     AssetClass = "CRYPTO"
	AssetCommodity  AssetClass = "COMMODITY"
	AssetRealEstate AssetClass = "REAL_ESTATE"
)

// User is an account owner.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	Username     string    `json:"username" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at"`
}

// Portfolio groups holdings under a single owner.
type Portfolio struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	UserID       uint           `json:"user_id" gorm:"index;not null"`
	Name         string         `json:"name" gorm:"not null"`
	Description  string         `json:"description"`
	BaseCurrency string         `json:"base_currency" gorm:"default:USD"`
	Holdings     []Holding      `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Snapshots    []RiskSnapshot `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// Holding is a position inside a portfolio. Quantity may be negative for shorts.
type Holding struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	PortfolioID  uint       `json:"portfolio_id" gorm:"index;not null"`
	Ticker       string     `json:"ticker" gorm:"not null"`
	AssetClass   AssetClass `json:"asset_class" gorm:"not null"`
	Quantity     float64    `json:"quantity"`
	AvgCost      float64    `json:"avg_cost"`
	CurrentPrice *float64   `json:"current_price"`
	MarketValue  *float64   `json:"market_value"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// EffectiveValue is the value used for all risk weighting: market value when
// known, cost basis otherwise. Every consumer of holding value must go through
// this so a portfolio is never valued with mixed rules.
func (h *Holding) EffectiveValue() float64 {
	if h.MarketValue != nil {
		return *h.MarketValue
	}
	return h.Quantity * h.AvgCost
}

// RefreshMarketValue recomputes market value from the current price, if any.
func (h *Holding) RefreshMarketValue() {
	if h.CurrentPrice != nil {
		mv := h.Quantity * *h.CurrentPrice
		h.MarketValue = &mv
	}
}

// NormalizeTicker uppercases and trims a ticker symbol.
func NormalizeTicker(t string) string {
	return strings.ToUpper(strings.TrimSpace(t))
}

// ValidAssetClass reports whether s is one of the known asset classes.
func ValidAssetClass(s AssetClass) bool {
	switch s {
	case AssetEquity, AssetBond, AssetCash, AssetCrypto, AssetCommodity, AssetRealEstate:
		return true
	}
	return false
}

// RiskSnapshot is an immutable, append-only record of computed metrics.
type RiskSnapshot struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	PortfolioID uint      `json:"portfolio_id" gorm:"index;not null"`
	AsOf        time.Time `json:"as_of" gorm:"index"`

	TotalValue           float64  `json:"total_value"`
	Volatility30D        *float64 `json:"volatility_30d"`
	MaxDrawdown1Y        *float64 `json:"max_drawdown_1y"`
	SharpeRatio          *float64 `json:"sharpe_ratio"`
	CashPct              float64  `json:"cash_pct"`
	TopHoldingPct        float64  `json:"top_holding_pct"`
	DiversificationScore float64  `json:"diversification_score"`
}

// RiskMetrics is the result of one risk computation, produced identically by
// the local engine and by the remote engine response parser.
type RiskMetrics struct {
	TotalValue           float64  `json:"total_value"`
	Volatility30D        *float64 `json:"volatility_30d"`
	MaxDrawdown1Y        *float64 `json:"max_drawdown_1y"`
	SharpeRatio          *float64 `json:"sharpe_ratio"`
	CashPct              float64  `json:"cash_pct"`
	TopHoldingPct        float64  `json:"top_holding_pct"`
	DiversificationScore float64  `json:"diversification_score"`
}

// Snapshot converts metrics into a persistable snapshot for a portfolio.
func (m *RiskMetrics) Snapshot(portfolioID uint, asOf time.Time) *RiskSnapshot {
	return &RiskSnapshot{
		PortfolioID:          portfolioID,
		AsOf:                 asOf,
		TotalValue:           m.TotalValue,
		Volatility30D:        m.Volatility30D,
		MaxDrawdown1Y:        m.MaxDrawdown1Y,
		SharpeRatio:          m.SharpeRatio,
		CashPct:              m.CashPct,
		TopHoldingPct:        m.TopHoldingPct,
		DiversificationScore: m.DiversificationScore,
	}
}

// PriceTick is one live price observation from the price feed.
type PriceTick struct {
	Symbol    string
	Price     float64
	Timestamp int64
}
