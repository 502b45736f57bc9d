package usecase

import (
	"context"
	"errors"
	"sort"
	"sync"

	"RiskFolio/internal/domain/models"
	"RiskFolio/internal/domain/repository"
	applogger "RiskFolio/pkg/logger"
)

func testLogger() *applogger.Logger {
	l, err := applogger.New(&applogger.Config{Level: "error", Format: "console", Output: "stdout"})
	if err != nil {
		panic(err)
	}
	return l
}

type fakeUsers struct {
	mu     sync.Mutex
	nextID uint
	byID   map[uint]*models.User
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{byID: make(map[uint]*models.User)}
}

func (f *fakeUsers) Create(_ context.Context, u *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.byID {
		if existing.Email == u.Email || existing.Username == u.Username {
			return repository.ErrDuplicate
		}
	}
	f.nextID++
	u.ID = f.nextID
	cp := *u
	f.byID[u.ID] = &cp
	return nil
}

func (f *fakeUsers) GetByEmail(_ context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.byID {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUsers) GetByID(_ context.Context, id uint) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

type fakePortfolios struct {
	mu     sync.Mutex
	nextID uint
	byID   map[uint]*models.Portfolio
}

func newFakePortfolios() *fakePortfolios {
	return &fakePortfolios{byID: make(map[uint]*models.Portfolio)}
}

func (f *fakePortfolios) Create(_ context.Context, p *models.Portfolio) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	p.ID = f.nextID
	cp := *p
	f.byID[p.ID] = &cp
	return nil
}

func (f *fakePortfolios) GetOwned(_ context.Context, id, userID uint) (*models.Portfolio, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.byID[id]
	if !ok || p.UserID != userID {
		return nil, repository.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakePortfolios) ListByUser(_ context.Context, userID uint) ([]models.Portfolio, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Portfolio
	for _, p := range f.byID {
		if p.UserID == userID {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakePortfolios) Update(_ context.Context, p *models.Portfolio) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byID[p.ID]; !ok {
		return repository.ErrNotFound
	}
	cp := *p
	f.byID[p.ID] = &cp
	return nil
}

func (f *fakePortfolios) Delete(_ context.Context, id uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byID[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

type fakeHoldings struct {
	mu     sync.Mutex
	nextID uint
	byID   map[uint]*models.Holding
}

func newFakeHoldings() *fakeHoldings {
	return &fakeHoldings{byID: make(map[uint]*models.Holding)}
}

func (f *fakeHoldings) Create(_ context.Context, h *models.Holding) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	h.ID = f.nextID
	cp := *h
	f.byID[h.ID] = &cp
	return nil
}

func (f *fakeHoldings) GetByID(_ context.Context, id uint) (*models.Holding, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	h, ok := f.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *h
	return &cp, nil
}

func (f *fakeHoldings) ListByPortfolio(_ context.Context, portfolioID uint) ([]models.Holding, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Holding
	for _, h := range f.byID {
		if h.PortfolioID == portfolioID {
			out = append(out, *h)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeHoldings) Update(_ context.Context, h *models.Holding) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byID[h.ID]; !ok {
		return repository.ErrNotFound
	}
	cp := *h
	f.byID[h.ID] = &cp
	return nil
}

func (f *fakeHoldings) Delete(_ context.Context, id uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byID[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeHoldings) DistinctTickers(_ context.Context) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	seen := make(map[string]bool)
	var out []string
	for _, h := range f.byID {
		if !seen[h.Ticker] {
			seen[h.Ticker] = true
			out = append(out, h.Ticker)
		}
	}
	sort.Strings(out)
	return out, nil
}

func (f *fakeHoldings) UpdatePrice(_ context.Context, ticker string, price float64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, h := range f.byID {
		if h.Ticker == ticker {
			p := price
			mv := h.Quantity * price
			h.CurrentPrice = &p
			h.MarketValue = &mv
		}
	}
	return nil
}

type fakeSnapshots struct {
	mu     sync.Mutex
	nextID uint
	snaps  []models.RiskSnapshot
}

func newFakeSnapshots() *fakeSnapshots { return &fakeSnapshots{} }

func (f *fakeSnapshots) Create(_ context.Context, s *models.RiskSnapshot) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	s.ID = f.nextID
	f.snaps = append(f.snaps, *s)
	return nil
}

func (f *fakeSnapshots) Latest(_ context.Context, portfolioID uint) (*models.RiskSnapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := len(f.snaps) - 1; i >= 0; i-- {
		if f.snaps[i].PortfolioID == portfolioID {
			cp := f.snaps[i]
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeSnapshots) History(_ context.Context, portfolioID uint, limit int) ([]models.RiskSnapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.RiskSnapshot
	for i := len(f.snaps) - 1; i >= 0 && len(out) < limit; i-- {
		if f.snaps[i].PortfolioID == portfolioID {
			out = append(out, f.snaps[i])
		}
	}
	return out, nil
}

type fakeMetrics struct {
	mu             sync.Mutex
	computations   map[string]int
	remoteFailures map[string]int
	snapshotWrites int
}

func newFakeMetrics() *fakeMetrics {
	return &fakeMetrics{
		computations:   make(map[string]int),
		remoteFailures: make(map[string]int),
	}
}

func (f *fakeMetrics) RecordComputation(source string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.computations[source]++
}

func (f *fakeMetrics) RecordRemoteFailure(reason string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.remoteFailures[reason]++
}

func (f *fakeMetrics) RecordSnapshotWrite() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.snapshotWrites++
}

func (f *fakeMetrics) RecordLatency(string, float64)        {}
func (f *fakeMetrics) RecordPortfolioValue(string, float64) {}

// fixedComputer always returns the same metrics.
type fixedComputer struct {
	metrics *models.RiskMetrics
}

func (c *fixedComputer) Compute(context.Context, []models.Holding) (*models.RiskMetrics, error) {
	cp := *c.metrics
	return &cp, nil
}

// failingComputer always errors.
type failingComputer struct {
	err error
}

func (c *failingComputer) Compute(context.Context, []models.Holding) (*models.RiskMetrics, error) {
	if c.err != nil {
		return nil, c.err
	}
	return nil, errors.New("compute failed")
}
