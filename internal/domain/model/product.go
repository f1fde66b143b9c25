package model

import "time"

type ProductCategory string

const (
	CategoryPlants     ProductCategory = "plants"
	CategorySeeds      ProductCategory = "seeds"
	CategoryTools      ProductCategory = "tools"
	CategoryIrrigation ProductCategory = "irrigation"
)

// IsValid reports whether c is one of the known catalog categories.
func (c ProductCategory) IsValid() bool {
	switch c {
	case CategoryPlants, CategorySeeds, CategoryTools, CategoryIrrigation:
		return true
	}
	return false
}

// Price is stored in centavos. Only admin operations mutate products.
type Product struct {
	ID          int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string          `gorm:"type:varchar(255);not null" json:"name"`
	Description string          `gorm:"type:text" json:"description"`
	Price       int64           `gorm:"not null" json:"price"`
	Category    ProductCategory `gorm:"type:varchar(20);not null;index" json:"category"`
	Stock       int64           `gorm:"not null" json:"stock"`
	ImageURL    string          `gorm:"type:text" json:"image_url"`
	CreatedAt   time.Time       `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
