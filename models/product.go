package models

import (
	"errors"
	"time"
)

type ProductCategory string

const (
	CategoryWedding        ProductCategory = "wedding"
	CategoryBirthday       ProductCategory = "birthday"
	CategoryFestival       ProductCategory = "festival"
	CategoryCongratulation ProductCategory = "congratulation"
	CategoryFuneral        ProductCategory = "funeral"
	CategoryDecoration     ProductCategory = "decoration"
	CategoryPotted         ProductCategory = "potted"
)

var productCategories = []ProductCategory{
	CategoryWedding,
	CategoryBirthday,
	CategoryFestival,
	CategoryCongratulation,
	CategoryFuneral,
	CategoryDecoration,
	CategoryPotted,
}

// ParseProductCategory maps a raw string to a known category.
func ParseProductCategory(raw string) (ProductCategory, error) {
	for _, c := range productCategories {
		if string(c) == raw {
			return c, nil
		}
	}
	return "", errors.New("invalid product category")
}

type FlowerProduct struct {
	ID              string          `gorm:"primaryKey" json:"id"`
	Name            string          `gorm:"not null" json:"name"`
	Description     string          `json:"description"`
	Price           float64         `gorm:"not null" json:"price"`
	Category        ProductCategory `gorm:"type:VARCHAR(20);index" json:"category"`
	ImageName       string          `json:"image_name"`
	ImageURL        string          `json:"image_url"`
	IsCustomizable  bool            `json:"is_customizable"`
	PreparationDays int             `gorm:"default:1" json:"preparation_days"`
	IsFeatured      bool            `json:"is_featured"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}
