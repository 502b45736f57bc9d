package repository

import (
	"context"
	"database/sql"
	"fmt"

	"RiskFolio/internal/domain/models"
	"RiskFolio/internal/domain/repository"
)

// ClickHouseArchive mirrors risk snapshots into ClickHouse for long-term
// analytics. The table is append-only and ordered by (portfolio_id, as_of),
// matching how snapshots are queried.
type ClickHouseArchive struct {
	db    *sql.DB
	table string
}

// NewClickHouseArchive creates a ClickHouse snapshot archive.
func NewClickHouseArchive(db *sql.DB, table string) repository.SnapshotArchiver {
	return &ClickHouseArchive{db: db, table: table}
}

// Schema returns the idempotent DDL for the archive table.
func Schema(database, table string) []string {
	return []string{
		fmt.Sprintf("CREATE DATABASE IF NOT EXISTS %s", database),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			portfolio_id UInt64,
			as_of DateTime,
			total_value Float64,
			volatility_30d Nullable(Float64),
			max_drawdown_1y Nullable(Float64),
			sharpe_ratio Nullable(Float64),
			cash_pct Float64,
			top_holding_pct Float64,
			diversification_score Float64
		) ENGINE=MergeTree ORDER BY (portfolio_id, as_of)`, table),
	}
}

func (a *ClickHouseArchive) Archive(ctx context.Context, s *models.RiskSnapshot) error {
	q := fmt.Sprintf(`INSERT INTO %s
		(portfolio_id, as_of, total_value, volatility_30d, max_drawdown_1y,
		 sharpe_ratio, cash_pct, top_holding_pct, diversification_score)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`, a.table)
	_, err := a.db.ExecContext(ctx, q,
		uint64(s.PortfolioID),
		s.AsOf,
		s.TotalValue,
		s.Volatility30D,
		s.MaxDrawdown1Y,
		s.SharpeRatio,
		s.CashPct,
		s.TopHoldingPct,
		s.DiversificationScore,
	)
	if err != nil {
		return fmt.Errorf("archive snapshot: %w", err)
	}
	return nil
}
