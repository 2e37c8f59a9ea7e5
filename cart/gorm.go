package cart

import (
	"context"
	"errors"

	"github.com/eonerhime/easy-shoppers-hub/models"
	"gorm.io/gorm"
)

// GormRepository stores cart lines in Postgres, one cart row per user with
// cascading items.
type GormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) cart(ctx context.Context, userID string) (models.Cart, error) {
	var cart models.Cart
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&cart).Error
	return cart, err
}

func (r *GormRepository) Items(ctx context.Context, userID string) ([]models.CartItem, error) {
	var cart models.Cart
	if err := r.db.WithContext(ctx).Preload("Items").Where("user_id = ?", userID).First(&cart).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return cart.Items, nil
}

func (r *GormRepository) Get(ctx context.Context, userID string, productID uint) (models.CartItem, error) {
	cart, err := r.cart(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.CartItem{}, ErrLineNotFound
		}
		return models.CartItem{}, err
	}

	var item models.CartItem
	err = r.db.WithContext(ctx).
		Where("cart_id = ? AND product_id = ?", cart.CartID, productID).
		First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.CartItem{}, ErrLineNotFound
	}
	return item, err
}

func (r *GormRepository) Save(ctx context.Context, userID string, item models.CartItem) error {
	cart, err := r.cart(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// First write for this user creates the cart row.
		cart = models.Cart{UserID: userID}
		if err := r.db.WithContext(ctx).Create(&cart).Error; err != nil {
			return err
		}
	} else if err != nil {
		return err
	}
	item.CartID = cart.CartID
	return r.db.WithContext(ctx).Save(&item).Error
}

func (r *GormRepository) Remove(ctx context.Context, userID string, productID uint) error {
	cart, err := r.cart(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrLineNotFound
		}
		return err
	}

	result := r.db.WithContext(ctx).
		Where("cart_id = ? AND product_id = ?", cart.CartID, productID).
		Delete(&models.CartItem{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrLineNotFound
	}
	return nil
}

func (r *GormRepository) Clear(ctx context.Context, userID string) error {
	cart, err := r.cart(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	return r.db.WithContext(ctx).Where("cart_id = ?", cart.CartID).Delete(&models.CartItem{}).Error
}
