package cart

import (
	"context"
	"testing"

	"github.com/eonerhime/easy-shoppers-hub/models"
)

func setup(t *testing.T) *Service {
	t.Helper()
	return NewService(NewMemoryRepository())
}

func TestAddItemMergesQuantities(t *testing.T) {
	ctx := context.Background()
	svc := setup(t)

	if _, err := svc.AddItem(ctx, "u1", models.CartItem{ProductID: 1, ProductName: "Sneakers", UnitPrice: 100, Quantity: 1}); err != nil {
		t.Fatalf("add first: %v", err)
	}
	if _, err := svc.AddItem(ctx, "u1", models.CartItem{ProductID: 1, ProductName: "Sneakers", UnitPrice: 100, Quantity: 2}); err != nil {
		t.Fatalf("add second: %v", err)
	}

	items, err := svc.Items(ctx, "u1")
	if err != nil {
		t.Fatalf("items: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 line, got %d", len(items))
	}
	if items[0].Quantity != 3 {
		t.Fatalf("expected quantity 3, got %d", items[0].Quantity)
	}
}

func TestAddItemDistinctProducts(t *testing.T) {
	ctx := context.Background()
	svc := setup(t)

	svc.AddItem(ctx, "u1", models.CartItem{ProductID: 1, Quantity: 1})
	svc.AddItem(ctx, "u1", models.CartItem{ProductID: 2, Quantity: 5})

	items, _ := svc.Items(ctx, "u1")
	if len(items) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(items))
	}
}

func TestUpdateQuantityNeverNegative(t *testing.T) {
	ctx := context.Background()
	svc := setup(t)
	svc.AddItem(ctx, "u1", models.CartItem{ProductID: 1, Quantity: 4})

	if err := svc.UpdateQuantity(ctx, "u1", 1, -7); err != nil {
		t.Fatalf("update: %v", err)
	}

	items, _ := svc.Items(ctx, "u1")
	for _, item := range items {
		if item.Quantity < 0 {
			t.Fatalf("negative quantity %d", item.Quantity)
		}
	}
}

func TestUpdateQuantityZeroRemovesLine(t *testing.T) {
	ctx := context.Background()
	svc := setup(t)
	svc.AddItem(ctx, "u1", models.CartItem{ProductID: 1, Quantity: 4})

	if err := svc.UpdateQuantity(ctx, "u1", 1, 0); err != nil {
		t.Fatalf("update: %v", err)
	}

	items, _ := svc.Items(ctx, "u1")
	if len(items) != 0 {
		t.Fatalf("expected empty cart, got %d lines", len(items))
	}
}

func TestUpdateQuantitySetsValue(t *testing.T) {
	ctx := context.Background()
	svc := setup(t)
	svc.AddItem(ctx, "u1", models.CartItem{ProductID: 1, Quantity: 4})

	if err := svc.UpdateQuantity(ctx, "u1", 1, 9); err != nil {
		t.Fatalf("update: %v", err)
	}

	items, _ := svc.Items(ctx, "u1")
	if items[0].Quantity != 9 {
		t.Fatalf("expected 9, got %d", items[0].Quantity)
	}
}

func TestRemoveMissingItemIsNoop(t *testing.T) {
	ctx := context.Background()
	svc := setup(t)
	svc.AddItem(ctx, "u1", models.CartItem{ProductID: 1, Quantity: 2})

	if err := svc.RemoveItem(ctx, "u1", 42); err != nil {
		t.Fatalf("remove missing: %v", err)
	}

	items, _ := svc.Items(ctx, "u1")
	if len(items) != 1 || items[0].Quantity != 2 {
		t.Fatalf("cart changed by removing a missing line: %+v", items)
	}
}

func TestClearCart(t *testing.T) {
	ctx := context.Background()
	svc := setup(t)
	svc.AddItem(ctx, "u1", models.CartItem{ProductID: 1, Quantity: 2})
	svc.AddItem(ctx, "u1", models.CartItem{ProductID: 2, Quantity: 3})

	if err := svc.Clear(ctx, "u1"); err != nil {
		t.Fatalf("clear: %v", err)
	}

	items, _ := svc.Items(ctx, "u1")
	if len(items) != 0 {
		t.Fatalf("expected empty cart, got %d lines", len(items))
	}
}

func TestSubtotal(t *testing.T) {
	items := []models.CartItem{
		{UnitPrice: 100, Quantity: 2},
		{UnitPrice: 9.99, Quantity: 3},
	}
	got := Subtotal(items)
	want := 229.97
	if got < want-1e-9 || got > want+1e-9 {
		t.Fatalf("subtotal = %v, want %v", got, want)
	}
}
