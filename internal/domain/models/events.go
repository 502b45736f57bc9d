package models

import "time"

// SnapshotEvent is emitted after a risk snapshot has been persisted.
type SnapshotEvent struct {
	EventID     string    `json:"event_id"`
	PortfolioID uint      `json:"portfolio_id"`
	AsOf        time.Time `json:"as_of"`
	Source      string    `json:"source"` // remote or fallback
	TotalValue  float64   `json:"total_value"`
}
