package orders

import (
	"math"
	"testing"

	"storefront-backend/internal/cart"
	"storefront-backend/internal/models"
	"storefront-backend/internal/storage"
)

func cartWith(t *testing.T, store storage.Store, items ...models.LineItem) *cart.Container {
	t.Helper()
	c, err := cart.New(store, "s")
	if err != nil {
		t.Fatal(err)
	}
	for _, item := range items {
		res, err := c.AddItem(item)
		if err != nil || !res.Applied {
			t.Fatalf("AddItem(%+v): %+v, %v", item, res, err)
		}
	}
	return c
}

func TestCheckoutComputesDiscountedTotals(t *testing.T) {
	store := storage.NewMemoryStore()
	c := cartWith(t, store,
		models.LineItem{ID: 1, Name: "Sofa", Price: 100, Quantity: 2, Discount: "-25%"},
		models.LineItem{ID: 2, Name: "Rug", Price: 30, Quantity: 1},
	)

	svc := NewService(store)
	order, err := svc.Checkout("s", c, &models.CheckoutRequest{Email: "user@example.com"})
	if err != nil {
		t.Fatalf("Checkout failed: %v", err)
	}

	if order.PublicHash == "" {
		t.Error("order has no public hash")
	}
	if order.Status != models.OrderStatusPending {
		t.Errorf("status = %q", order.Status)
	}
	if order.Subtotal != 230 {
		t.Errorf("subtotal = %v, want 230", order.Subtotal)
	}
	if order.TotalAmount != 180 {
		t.Errorf("total = %v, want 180", order.TotalAmount)
	}
	if order.DiscountTotal != 50 {
		t.Errorf("discount total = %v, want 50", order.DiscountTotal)
	}

	first := order.Items[0]
	if first.LineTotal != 200 || first.DiscountAmount != 50 || first.PayableTotal != 150 {
		t.Errorf("first line = %+v", first)
	}

	// Checkout clears the cart.
	if c.Len() != 0 || c.TotalPrice() != 0 {
		t.Errorf("cart not cleared: len=%d total=%v", c.Len(), c.TotalPrice())
	}
}

func TestCheckoutRejectsEmptyCart(t *testing.T) {
	store := storage.NewMemoryStore()
	c := cartWith(t, store)

	svc := NewService(store)
	if _, err := svc.Checkout("s", c, &models.CheckoutRequest{Email: "user@example.com"}); err != ErrEmptyCart {
		t.Errorf("err = %v, want ErrEmptyCart", err)
	}
}

func TestOrderHistoryAndLookup(t *testing.T) {
	store := storage.NewMemoryStore()
	svc := NewService(store)

	c := cartWith(t, store, models.LineItem{ID: 1, Price: 10, Quantity: 1})
	first, err := svc.Checkout("s", c, &models.CheckoutRequest{Email: "user@example.com"})
	if err != nil {
		t.Fatal(err)
	}

	c = cartWith(t, store, models.LineItem{ID: 2, Price: 20, Quantity: 2})
	second, err := svc.Checkout("s", c, &models.CheckoutRequest{Email: "user@example.com"})
	if err != nil {
		t.Fatal(err)
	}

	history, err := svc.List("s")
	if err != nil {
		t.Fatal(err)
	}
	if len(history) != 2 {
		t.Fatalf("history len = %d, want 2", len(history))
	}
	if history[0].PublicHash != first.PublicHash || history[1].PublicHash != second.PublicHash {
		t.Error("history order is not oldest-first")
	}

	got, err := svc.Get("s", second.PublicHash)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if math.Abs(got.TotalAmount-40) > 1e-9 {
		t.Errorf("total = %v, want 40", got.TotalAmount)
	}

	if _, err := svc.Get("s", "nope"); err != ErrOrderNotFound {
		t.Errorf("err = %v, want ErrOrderNotFound", err)
	}

	// Other sessions see no history.
	other, err := svc.List("other")
	if err != nil || len(other) != 0 {
		t.Errorf("other session history = %v, %v", other, err)
	}
}
