package checkout

import (
	"context"
	"errors"

	"github.com/eonerhime/easy-shoppers-hub/models"
	"gorm.io/gorm"
)

// GormOrderRepository persists orders in Postgres.
type GormOrderRepository struct {
	db *gorm.DB
}

func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// CreateOrderAndClearCart creates the order row and empties the user's cart
// in one transaction. Requires TranslateError on the gorm config so unique
// violations surface as gorm.ErrDuplicatedKey.
func (r *GormOrderRepository) CreateOrderAndClearCart(ctx context.Context, order *models.Order, userID string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}

		var userCart models.Cart
		if err := tx.Where("user_id = ?", userID).First(&userCart).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		return tx.Where("cart_id = ?", userCart.CartID).Delete(&models.CartItem{}).Error
	})

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateOrderNumber
	}
	return err
}
