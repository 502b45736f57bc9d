package risk

import (
	"context"
	"fmt"

	"RiskFolio/internal/domain/models"
	domsvc "RiskFolio/internal/domain/service"
	"RiskFolio/pkg/config"
	xhttp "RiskFolio/pkg/http"
)

// RemoteEngine delegates risk computation to the external risk engine service
// over HTTP. One request per computation, bounded by the configured timeout;
// retrying and falling back is the caller's concern.
type RemoteEngine struct {
	url    string
	client *xhttp.Client
}

// NewRemoteEngine builds a remote engine client from config.
func NewRemoteEngine(cfg *config.Config) *RemoteEngine {
	return &RemoteEngine{
		url:    cfg.RiskEngine.URL,
		client: xhttp.NewClient(xhttp.WithTimeout(cfg.RiskEngine.Timeout)),
	}
}

type wireHolding struct {
	Ticker       string   `json:"ticker"`
	AssetClass   string   `json:"asset_class"`
	Quantity     float64  `json:"quantity"`
	AvgCost      float64  `json:"avg_cost"`
	CurrentPrice *float64 `json:"current_price"`
	MarketValue  float64  `json:"market_value"`
}

type computeRequest struct {
	Holdings []wireHolding `json:"holdings"`
}

// Compute posts the holdings to the remote engine and returns its metrics
// verbatim. Any transport, status or decode problem is returned as an error.
func (r *RemoteEngine) Compute(ctx context.Context, holdings []models.Holding) (*models.RiskMetrics, error) {
	req := computeRequest{Holdings: make([]wireHolding, 0, len(holdings))}
	for i := range holdings {
		h := &holdings[i]
		req.Holdings = append(req.Holdings, wireHolding{
			Ticker:       h.Ticker,
			AssetClass:   string(h.AssetClass),
			Quantity:     h.Quantity,
			AvgCost:      h.AvgCost,
			CurrentPrice: h.CurrentPrice,
			MarketValue:  h.EffectiveValue(),
		})
	}

	var m models.RiskMetrics
	err := r.client.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodPost,
		URL:    r.url,
		Headers: map[string]string{
			"Content-Type": "application/json",
		},
		Body: req,
	}, &m)
	if err != nil {
		return nil, fmt.Errorf("remote compute: %w", err)
	}
	return &m, nil
}

var _ domsvc.RiskComputer = (*RemoteEngine)(nil)
