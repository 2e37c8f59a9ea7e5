// Package checkout implements the order submission workflow: recompute
// totals from the live cart, create the order, clear the cart, then fire
// best-effort notifications.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"math/rand"
	"time"

	"github.com/eonerhime/easy-shoppers-hub/cart"
	"github.com/eonerhime/easy-shoppers-hub/email"
	"github.com/eonerhime/easy-shoppers-hub/events"
	"github.com/eonerhime/easy-shoppers-hub/models"
)

var (
	ErrEmptyCart = errors.New("cart is empty")

	// ErrDuplicateOrderNumber triggers the single regeneration retry.
	ErrDuplicateOrderNumber = errors.New("duplicate order number")
)

// OrderRepository persists orders. CreateOrderAndClearCart must be atomic:
// either the order exists and the cart is empty, or neither happened.
type OrderRepository interface {
	CreateOrderAndClearCart(ctx context.Context, order *models.Order, userID string) error
}

// OrderForm carries the contact and shipping fields collected at checkout.
// Field validation happens at the HTTP boundary.
type OrderForm struct {
	FirstName     string
	LastName      string
	Email         string
	Phone         string
	Address       string
	City          string
	State         string
	ZipCode       string
	Country       string
	Notes         string
	PaymentMethod string
}

// Result reports the outcome of a successful order placement. EmailSent is
// informational only; a failed confirmation mail never fails the order.
type Result struct {
	Order     *models.Order
	EmailSent bool
	EmailErr  string
}

type Service struct {
	carts     *cart.Service
	orders    OrderRepository
	mailer    email.Mailer
	publisher events.Publisher
	taxRate   float64
	currency  string
	now       func() time.Time
}

func NewService(carts *cart.Service, orders OrderRepository, mailer email.Mailer, publisher events.Publisher, taxRate float64, currency string) *Service {
	return &Service{
		carts:     carts,
		orders:    orders,
		mailer:    mailer,
		publisher: publisher,
		taxRate:   taxRate,
		currency:  currency,
		now:       time.Now,
	}
}

// PlaceOrder runs the checkout workflow for a user. On any error before the
// order is created the cart is left untouched.
func (s *Service) PlaceOrder(ctx context.Context, userID string, form OrderForm) (*Result, error) {
	items, err := s.carts.Items(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	// Totals always come from the live cart, never from a stale snapshot.
	subtotal := round2(cart.Subtotal(items))
	tax := round2(subtotal * s.taxRate)
	total := round2(subtotal + tax)

	lines := make([]models.OrderProduct, 0, len(items))
	for _, item := range items {
		lines = append(lines, models.OrderProduct{
			ProductID:    item.ProductID,
			ProductName:  item.ProductName,
			ProductPrice: item.UnitPrice,
			ProductCount: item.Quantity,
			ProductImage: item.ProductImage,
		})
	}

	paymentMethod := form.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = "stripe"
	}

	order := &models.Order{
		OrderNumber:   GenerateOrderNumber(s.now()),
		UserID:        userID,
		CustomerName:  form.FirstName + " " + form.LastName,
		Email:         form.Email,
		Phone:         form.Phone,
		ShipToAddress: form.Address,
		ShipToCity:    form.City,
		ShipToState:   form.State,
		ZipCode:       form.ZipCode,
		Country:       form.Country,
		OrderNotes:    form.Notes,
		Subtotal:      subtotal,
		TaxAmount:     tax,
		TotalAmount:   total,
		Currency:      s.currency,
		PaymentStatus: models.PaymentStatusConfirmed,
		PaymentMethod: paymentMethod,
		OrderDate:     s.now(),
	}
	if err := order.SetProducts(lines); err != nil {
		return nil, err
	}

	err = s.orders.CreateOrderAndClearCart(ctx, order, userID)
	if errors.Is(err, ErrDuplicateOrderNumber) {
		order.OrderNumber = GenerateOrderNumber(s.now())
		err = s.orders.CreateOrderAndClearCart(ctx, order, userID)
	}
	if err != nil {
		return nil, err
	}

	result := &Result{Order: order, EmailSent: true}
	if err := s.mailer.SendOrderConfirmation(order); err != nil {
		log.Printf("⚠️ Confirmation email failed for %s: %v", order.OrderNumber, err)
		result.EmailSent = false
		result.EmailErr = err.Error()
	}

	if err := s.publisher.OrderPlaced(ctx, order); err != nil {
		log.Printf("⚠️ Order event publish failed for %s: %v", order.OrderNumber, err)
	}

	return result, nil
}

// GenerateOrderNumber builds "ORD-" + the last six digits of the unix-milli
// timestamp + three random digits.
func GenerateOrderNumber(now time.Time) string {
	millis := fmt.Sprintf("%d", now.UnixMilli())
	if len(millis) > 6 {
		millis = millis[len(millis)-6:]
	}
	return fmt.Sprintf("ORD-%s%03d", millis, rand.Intn(1000))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
