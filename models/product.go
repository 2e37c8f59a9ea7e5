package models

import (
	"encoding/json"
	"time"

	"gorm.io/gorm"
)

type Product struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string  `gorm:"not null" json:"name"`
	Description string  `json:"description"`
	Price       float64 `gorm:"not null" json:"price"`
	Category    string  `gorm:"index" json:"category"`
	SubCategory string  `json:"subCategory"`
	Gender      string  `json:"gender"`
	Brand       string  `json:"brand"`
	Sizes       string  `json:"sizes"`
	Quantity    int     `json:"quantity"`
	SKU         string  `json:"sku"`
	IsActive    bool    `gorm:"default:true" json:"isActive"`

	// Images is a JSON array of ProductImage; the first upload is the main image.
	Images       string `json:"images"`
	MainImageID  string `json:"mainImageId"`
	MainImageURL string `json:"mainImageUrl"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// ProductImage describes one stored image file.
type ProductImage struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

// SetImages serializes the image list into the Images column.
func (p *Product) SetImages(images []ProductImage) error {
	data, err := json.Marshal(images)
	if err != nil {
		return err
	}
	p.Images = string(data)
	if len(images) > 0 {
		p.MainImageID = images[0].ID
		p.MainImageURL = images[0].URL
	}
	return nil
}

// ImageList decodes the Images column.
func (p *Product) ImageList() ([]ProductImage, error) {
	if p.Images == "" {
		return nil, nil
	}
	var images []ProductImage
	if err := json.Unmarshal([]byte(p.Images), &images); err != nil {
		return nil, err
	}
	return images, nil
}
