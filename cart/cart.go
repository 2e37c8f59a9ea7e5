// Package cart owns the shopping-cart state: one cart per user, at most one
// line per product, quantities never negative.
package cart

import (
	"context"
	"errors"
	"time"

	"github.com/eonerhime/easy-shoppers-hub/models"
)

// ErrLineNotFound is returned by repositories when a cart line does not exist.
var ErrLineNotFound = errors.New("cart line not found")

// Repository persists cart lines for a user.
type Repository interface {
	Items(ctx context.Context, userID string) ([]models.CartItem, error)
	Get(ctx context.Context, userID string, productID uint) (models.CartItem, error)
	Save(ctx context.Context, userID string, item models.CartItem) error
	Remove(ctx context.Context, userID string, productID uint) error
	Clear(ctx context.Context, userID string) error
}

// Service implements the cart semantics on top of a Repository.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// AddItem merges by product id: an existing line gets its quantity
// incremented by the incoming quantity, otherwise a new line is appended.
func (s *Service) AddItem(ctx context.Context, userID string, item models.CartItem) (models.CartItem, error) {
	if item.Quantity < 0 {
		item.Quantity = 0
	}

	existing, err := s.repo.Get(ctx, userID, item.ProductID)
	if err == nil {
		existing.Quantity += item.Quantity
		existing.AddedAt = time.Now()
		if err := s.repo.Save(ctx, userID, existing); err != nil {
			return models.CartItem{}, err
		}
		return existing, nil
	}
	if !errors.Is(err, ErrLineNotFound) {
		return models.CartItem{}, err
	}

	item.AddedAt = time.Now()
	if err := s.repo.Save(ctx, userID, item); err != nil {
		return models.CartItem{}, err
	}
	return item, nil
}

// UpdateQuantity sets a line's quantity. Negative input clamps to zero, and
// a zero quantity removes the line so empty-cart checks stay consistent.
func (s *Service) UpdateQuantity(ctx context.Context, userID string, productID uint, quantity int) error {
	if quantity < 0 {
		quantity = 0
	}
	if quantity == 0 {
		return s.RemoveItem(ctx, userID, productID)
	}

	item, err := s.repo.Get(ctx, userID, productID)
	if err != nil {
		return err
	}
	item.Quantity = quantity
	item.AddedAt = time.Now()
	return s.repo.Save(ctx, userID, item)
}

// RemoveItem deletes the line. Removing a line that does not exist is a no-op.
func (s *Service) RemoveItem(ctx context.Context, userID string, productID uint) error {
	err := s.repo.Remove(ctx, userID, productID)
	if errors.Is(err, ErrLineNotFound) {
		return nil
	}
	return err
}

// Clear empties the cart.
func (s *Service) Clear(ctx context.Context, userID string) error {
	return s.repo.Clear(ctx, userID)
}

// Items returns the current cart snapshot.
func (s *Service) Items(ctx context.Context, userID string) ([]models.CartItem, error) {
	return s.repo.Items(ctx, userID)
}

// Subtotal sums price times quantity over the given lines.
func Subtotal(items []models.CartItem) float64 {
	var sum float64
	for _, item := range items {
		sum += item.UnitPrice * float64(item.Quantity)
	}
	return sum
}
