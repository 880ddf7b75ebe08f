package repo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rogerio-castellano/ops-dashboard/internal/models"
)

func TestInMemoryProductRepository(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	products := s.Products()

	t.Run("Create assigns id and timestamps", func(t *testing.T) {
		p, err := products.Create(ctx, models.Product{Name: "THINK", Price: 49.99, SKU: "THINK-001"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.ID == "" {
			t.Error("expected generated id")
		}
		if p.CreatedAt.IsZero() || !p.UpdatedAt.Equal(p.CreatedAt) {
			t.Errorf("unexpected timestamps: %v / %v", p.CreatedAt, p.UpdatedAt)
		}
	})

	t.Run("Duplicate SKU is rejected", func(t *testing.T) {
		_, err := products.Create(ctx, models.Product{Name: "Copy", SKU: "THINK-001"})
		if !errors.Is(err, ErrDuplicatedValueUnique) {
			t.Fatalf("expected ErrDuplicatedValueUnique, got %v", err)
		}
	})

	t.Run("Empty SKU may repeat", func(t *testing.T) {
		for rep := 0; rep < 2; rep++ {
			if _, err := products.Create(ctx, models.Product{Name: "No SKU"}); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}
	})

	t.Run("Update keeps CreatedAt", func(t *testing.T) {
		created, _ := products.Create(ctx, models.Product{Name: "Brain Water", CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)})
		created.Name = "Brain Water+"
		created.CreatedAt = time.Now()
		updated, err := products.Update(ctx, created)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.CreatedAt.Year() != 2024 {
			t.Errorf("CreatedAt changed to %v", updated.CreatedAt)
		}
		got, _ := products.GetByID(ctx, created.ID)
		if got.Name != "Brain Water+" {
			t.Errorf("expected updated name, got %q", got.Name)
		}
	})

	t.Run("Missing records", func(t *testing.T) {
		if _, err := products.GetByID(ctx, "nope"); !errors.Is(err, ErrNotFound) {
			t.Errorf("GetByID: expected ErrNotFound, got %v", err)
		}
		if _, err := products.Update(ctx, models.Product{ID: "nope"}); !errors.Is(err, ErrNotFound) {
			t.Errorf("Update: expected ErrNotFound, got %v", err)
		}
		if err := products.Delete(ctx, "nope"); !errors.Is(err, ErrNotFound) {
			t.Errorf("Delete: expected ErrNotFound, got %v", err)
		}
	})
}

func TestGetAllIsNewestFirst(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	for i, name := range []string{"old", "mid", "new"} {
		if _, err := s.Customers().Create(ctx, models.Customer{Name: name, CreatedAt: base.Add(time.Duration(i) * time.Hour)}); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	all, err := s.Customers().GetAll(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 3 || all[0].Name != "new" || all[2].Name != "old" {
		t.Errorf("unexpected order: %+v", all)
	}
}

func TestDeleteCustomerLeavesOrders(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	c, _ := s.Customers().Create(ctx, models.Customer{Name: "Sarah Johnson"})
	o, _ := s.Orders().Create(ctx, models.Order{CustomerID: c.ID, Status: models.OrderCompleted, Total: 10})

	if err := s.Customers().Delete(ctx, c.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	got, err := s.Orders().GetByID(ctx, o.ID)
	if err != nil {
		t.Fatalf("order should survive customer deletion: %v", err)
	}
	if got.CustomerID != c.ID {
		t.Errorf("customer reference changed to %q", got.CustomerID)
	}
}

func TestOrdersAreCopied(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	o, _ := s.Orders().Create(ctx, models.Order{Items: []models.LineItem{{ProductID: "p1", Quantity: 1}}})

	o.Items[0].Quantity = 99
	got, _ := s.Orders().GetByID(ctx, o.ID)
	if got.Items[0].Quantity != 1 {
		t.Errorf("stored order was mutated through returned value")
	}
}

func TestUsersAreCaseInsensitive(t *testing.T) {
	ctx := context.Background()
	users := NewMemoryStore().Users()
	if _, err := users.CreateUser(ctx, models.User{Email: "Admin@Braintree.com"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := users.CreateUser(ctx, models.User{Email: "admin@braintree.com"}); !errors.Is(err, ErrDuplicatedValueUnique) {
		t.Errorf("expected duplicate error, got %v", err)
	}
	if _, err := users.GetByEmail(ctx, "ADMIN@braintree.com"); err != nil {
		t.Errorf("lookup failed: %v", err)
	}
}

func TestDumpRestoreClear(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	s.Users().CreateUser(ctx, models.User{Email: "admin@braintree.com"})
	s.Products().Create(ctx, models.Product{Name: "THINK"})
	s.Customers().Create(ctx, models.Customer{Name: "Mike Chen"})

	dump := s.Dump()
	s.Clear()
	if n, _ := s.Reports().CountProducts(ctx); n != 0 {
		t.Fatalf("expected empty store after Clear, got %d products", n)
	}
	if _, err := s.Users().GetByEmail(ctx, "admin@braintree.com"); err != nil {
		t.Errorf("Clear must keep users: %v", err)
	}

	dump.Integrations = append(dump.Integrations, models.Integration{Platform: models.PlatformShopify})
	s.Restore(dump)
	all, _ := s.Integrations().GetAll(ctx)
	if len(all) != 1 || all[0].ID == "" {
		t.Errorf("restored integration should get an id: %+v", all)
	}
	if n, _ := s.Reports().CountCustomers(ctx); n != 1 {
		t.Errorf("expected 1 customer after restore, got %d", n)
	}
}

func TestReportCountOrdersByStatus(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	for _, st := range []string{models.OrderCompleted, models.OrderPending, models.OrderCompleted} {
		s.Orders().Create(ctx, models.Order{Status: st})
	}
	if n, _ := s.Reports().CountOrders(ctx, models.OrderCompleted); n != 2 {
		t.Errorf("completed: expected 2, got %d", n)
	}
	if n, _ := s.Reports().CountOrders(ctx, ""); n != 3 {
		t.Errorf("all: expected 3, got %d", n)
	}
}
