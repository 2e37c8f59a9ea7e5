package models

import (
	"encoding/json"
	"time"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"   // order placed, payment not settled
	PaymentStatusConfirmed PaymentStatus = "confirmed" // payment settled
	PaymentStatusShipped   PaymentStatus = "shipped"   // out for delivery
	PaymentStatusDelivered PaymentStatus = "delivered" // customer received the items
	PaymentStatusCancelled PaymentStatus = "cancelled" // cancelled before shipping
)

type Order struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	OrderNumber string `gorm:"uniqueIndex;not null" json:"orderNumber"`
	UserID      string `gorm:"index;not null" json:"userId"`

	// Customer contact
	CustomerName string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`

	// Shipping
	ShipToAddress string `json:"shipToAddress"`
	ShipToCity    string `json:"shipToCity"`
	ShipToState   string `json:"shipToState"`
	ZipCode       string `json:"zipCode"`
	Country       string `json:"country"`
	OrderNotes    string `json:"orderNotes"`

	// Money
	Subtotal    float64 `json:"subtotal"`
	TaxAmount   float64 `json:"taxAmount"`
	TotalAmount float64 `json:"totalAmount"`
	Currency    string  `json:"currency"`

	PaymentStatus PaymentStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"paymentStatus"`
	PaymentMethod string        `json:"paymentMethod"`

	// Products is the order's line items serialized as a JSON array.
	Products string `json:"products"`

	OrderDate time.Time `json:"orderDate"`
}

// OrderProduct is one line item inside the serialized Products payload.
type OrderProduct struct {
	ProductID    uint    `json:"productId"`
	ProductName  string  `json:"productName"`
	ProductPrice float64 `json:"productPrice"`
	ProductCount int     `json:"productCount"`
	ProductImage string  `json:"productImage"`
}

// SetProducts serializes line items into the Products column.
func (o *Order) SetProducts(lines []OrderProduct) error {
	data, err := json.Marshal(lines)
	if err != nil {
		return err
	}
	o.Products = string(data)
	return nil
}

// ProductLines decodes the Products column.
func (o *Order) ProductLines() ([]OrderProduct, error) {
	if o.Products == "" {
		return nil, nil
	}
	var lines []OrderProduct
	if err := json.Unmarshal([]byte(o.Products), &lines); err != nil {
		return nil, err
	}
	return lines, nil
}
