package usecase

import (
	"context"
	"testing"

	"RiskFolio/internal/domain/models"
)

func TestPortfolioCRUD(t *testing.T) {
	svc := NewPortfolioService(newFakePortfolios())

	p, err := svc.Create(context.Background(), 1, &models.PortfolioCreateRequest{
		Name: "retirement", BaseCurrency: "USD",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := svc.Get(context.Background(), p.ID, 1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "retirement" {
		t.Fatalf("name = %q, want retirement", got.Name)
	}

	name := "renamed"
	updated, err := svc.Update(context.Background(), p.ID, 1, &models.PortfolioUpdateRequest{Name: &name})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "renamed" {
		t.Fatalf("name = %q, want renamed", updated.Name)
	}

	if err := svc.Delete(context.Background(), p.ID, 1); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Get(context.Background(), p.ID, 1); !is404(err) {
		t.Fatalf("expected 404 after delete, got %v", err)
	}
}

func TestPortfolioListScopedToOwner(t *testing.T) {
	svc := NewPortfolioService(newFakePortfolios())

	for _, userID := range []uint{1, 1, 2} {
		if _, err := svc.Create(context.Background(), userID, &models.PortfolioCreateRequest{Name: "p"}); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	mine, err := svc.List(context.Background(), 1)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(mine) != 2 {
		t.Fatalf("list len = %d, want 2", len(mine))
	}
}

func TestPortfolioOwnershipHidesForeign(t *testing.T) {
	svc := NewPortfolioService(newFakePortfolios())

	p, err := svc.Create(context.Background(), 1, &models.PortfolioCreateRequest{Name: "private"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := svc.Get(context.Background(), p.ID, 2); !is404(err) {
		t.Fatalf("get: expected 404, got %v", err)
	}
	if err := svc.Delete(context.Background(), p.ID, 2); !is404(err) {
		t.Fatalf("delete: expected 404, got %v", err)
	}
}
