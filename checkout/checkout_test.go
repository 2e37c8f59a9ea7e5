package checkout

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/eonerhime/easy-shoppers-hub/cart"
	"github.com/eonerhime/easy-shoppers-hub/events"
	"github.com/eonerhime/easy-shoppers-hub/models"
)

// fakeOrderRepo records created orders and clears the cart repo on success,
// mimicking the transactional gorm implementation.
type fakeOrderRepo struct {
	carts    *cart.Service
	created  []*models.Order
	failWith error
	dupOnce  bool
}

func (f *fakeOrderRepo) CreateOrderAndClearCart(ctx context.Context, order *models.Order, userID string) error {
	if f.failWith != nil {
		return f.failWith
	}
	if f.dupOnce {
		f.dupOnce = false
		return ErrDuplicateOrderNumber
	}
	f.created = append(f.created, order)
	return f.carts.Clear(ctx, userID)
}

type fakeMailer struct {
	sent int
	err  error
}

func (f *fakeMailer) SendOrderConfirmation(*models.Order) error {
	if f.err != nil {
		return f.err
	}
	f.sent++
	return nil
}

func newTestService(t *testing.T, mailer *fakeMailer, repo *fakeOrderRepo) (*Service, *cart.Service) {
	t.Helper()
	carts := cart.NewService(cart.NewMemoryRepository())
	repo.carts = carts
	svc := NewService(carts, repo, mailer, events.NoopPublisher{}, 0.10, "USD")
	return svc, carts
}

func seedCart(t *testing.T, carts *cart.Service, userID string) {
	t.Helper()
	_, err := carts.AddItem(context.Background(), userID, models.CartItem{
		ProductID: 1, ProductName: "Jacket", UnitPrice: 100, Quantity: 2,
	})
	if err != nil {
		t.Fatalf("seed cart: %v", err)
	}
}

func validForm() OrderForm {
	return OrderForm{
		FirstName: "Ada", LastName: "Lovelace",
		Email: "ada@example.com", Phone: "555-0100",
		Address: "1 Analytical Way", City: "London", ZipCode: "E1 6AN", Country: "UK",
	}
}

func TestPlaceOrderTotals(t *testing.T) {
	ctx := context.Background()
	repo := &fakeOrderRepo{}
	svc, carts := newTestService(t, &fakeMailer{}, repo)
	seedCart(t, carts, "u1")

	res, err := svc.PlaceOrder(ctx, "u1", validForm())
	if err != nil {
		t.Fatalf("place order: %v", err)
	}

	o := res.Order
	if o.Subtotal != 200.00 || o.TaxAmount != 20.00 || o.TotalAmount != 220.00 {
		t.Fatalf("totals = %v / %v / %v, want 200 / 20 / 220", o.Subtotal, o.TaxAmount, o.TotalAmount)
	}
	if o.PaymentStatus != models.PaymentStatusConfirmed {
		t.Fatalf("payment status = %s", o.PaymentStatus)
	}

	lines, err := o.ProductLines()
	if err != nil {
		t.Fatalf("decode products: %v", err)
	}
	if len(lines) != 1 || lines[0].ProductCount != 2 || lines[0].ProductPrice != 100 {
		t.Fatalf("unexpected product lines: %+v", lines)
	}

	// successful placement empties the cart
	items, _ := carts.Items(ctx, "u1")
	if len(items) != 0 {
		t.Fatalf("cart not cleared after order")
	}
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	svc, _ := newTestService(t, &fakeMailer{}, &fakeOrderRepo{})
	_, err := svc.PlaceOrder(context.Background(), "u1", validForm())
	if !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
}

func TestPlaceOrderFailureKeepsCart(t *testing.T) {
	ctx := context.Background()
	repo := &fakeOrderRepo{failWith: errors.New("db down")}
	svc, carts := newTestService(t, &fakeMailer{}, repo)
	seedCart(t, carts, "u1")

	if _, err := svc.PlaceOrder(ctx, "u1", validForm()); err == nil {
		t.Fatalf("expected error")
	}

	items, _ := carts.Items(ctx, "u1")
	if len(items) != 1 || items[0].Quantity != 2 {
		t.Fatalf("cart lost after failed order: %+v", items)
	}
}

func TestPlaceOrderEmailFailureStillSucceeds(t *testing.T) {
	ctx := context.Background()
	repo := &fakeOrderRepo{}
	mailer := &fakeMailer{err: errors.New("smtp refused")}
	svc, carts := newTestService(t, mailer, repo)
	seedCart(t, carts, "u1")

	res, err := svc.PlaceOrder(ctx, "u1", validForm())
	if err != nil {
		t.Fatalf("order should survive email failure: %v", err)
	}
	if res.EmailSent {
		t.Fatalf("EmailSent should be false")
	}
	if res.Order.OrderNumber == "" {
		t.Fatalf("missing order number")
	}
	if len(repo.created) != 1 {
		t.Fatalf("order not persisted")
	}
}

func TestPlaceOrderRetriesDuplicateNumber(t *testing.T) {
	ctx := context.Background()
	repo := &fakeOrderRepo{dupOnce: true}
	svc, carts := newTestService(t, &fakeMailer{}, repo)
	seedCart(t, carts, "u1")

	res, err := svc.PlaceOrder(ctx, "u1", validForm())
	if err != nil {
		t.Fatalf("expected retry to succeed: %v", err)
	}
	if len(repo.created) != 1 {
		t.Fatalf("expected exactly one created order")
	}
	if res.Order.OrderNumber == "" {
		t.Fatalf("missing order number after retry")
	}
}

func TestGenerateOrderNumberFormat(t *testing.T) {
	re := regexp.MustCompile(`^ORD-\d{9}$`)
	for i := 0; i < 50; i++ {
		n := GenerateOrderNumber(time.Now())
		if !re.MatchString(n) {
			t.Fatalf("bad order number %q", n)
		}
	}
}
