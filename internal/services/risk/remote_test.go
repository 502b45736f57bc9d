package risk

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"RiskFolio/internal/domain/models"
	"RiskFolio/pkg/config"
)

func remoteEngine(url string, timeout time.Duration) *RemoteEngine {
	cfg := &config.Config{}
	cfg.RiskEngine.URL = url
	cfg.RiskEngine.Timeout = timeout
	return NewRemoteEngine(cfg)
}

func TestRemoteComputeSuccess(t *testing.T) {
	var gotReq computeRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("decode request: %v", err)
		}
		vol := 12.34
		_ = json.NewEncoder(w).Encode(models.RiskMetrics{
			TotalValue:    1500,
			Volatility30D: &vol,
			TopHoldingPct: 100,
		})
	}))
	defer srv.Close()

	h := models.Holding{Ticker: "AAPL", AssetClass: models.AssetEquity, Quantity: 10, AvgCost: 150}
	m, err := remoteEngine(srv.URL, time.Second).Compute(context.Background(), []models.Holding{h})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.TotalValue != 1500 || *m.Volatility30D != 12.34 || m.TopHoldingPct != 100 {
		t.Fatalf("unexpected metrics: %+v", m)
	}
	if len(gotReq.Holdings) != 1 {
		t.Fatalf("request holdings = %d, want 1", len(gotReq.Holdings))
	}
	if gotReq.Holdings[0].Ticker != "AAPL" || gotReq.Holdings[0].MarketValue != 1500 {
		t.Fatalf("unexpected wire holding: %+v", gotReq.Holdings[0])
	}
}

func TestRemoteComputeNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := remoteEngine(srv.URL, time.Second).Compute(context.Background(), nil)
	if err == nil {
		t.Fatalf("expected error on 500 response")
	}
}

func TestRemoteComputeBadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	_, err := remoteEngine(srv.URL, time.Second).Compute(context.Background(), nil)
	if err == nil {
		t.Fatalf("expected error on invalid body")
	}
}

func TestRemoteComputeTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	_, err := remoteEngine(srv.URL, 20*time.Millisecond).Compute(context.Background(), nil)
	if err == nil {
		t.Fatalf("expected timeout error")
	}
}

func TestRemoteComputeConnectionRefused(t *testing.T) {
	// Reserved port with nothing listening.
	_, err := remoteEngine("http://127.0.0.1:1/compute", time.Second).Compute(context.Background(), nil)
	if err == nil {
		t.Fatalf("expected connection error")
	}
}
