package model

import (
	"time"

	"github.com/google/uuid"
)

// ProductModel is the GORM-specific struct for the 'products' table.
type ProductModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Code      int       `gorm:"not null;uniqueIndex"`
	Name      string    `gorm:"not null"`
	BasePrice float64   `gorm:"type:decimal(10,2);not null"`
	IsActive  bool      `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Options []ProductOptionModel `gorm:"foreignKey:ProductID"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// ProductOptionModel is the GORM-specific struct for the 'product_options' table.
type ProductOptionModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ProductID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Name       string    `gorm:"not null"`
	PriceDelta float64   `gorm:"type:decimal(10,2);not null;default:0"`
}

// TableName explicitly sets the table name for GORM.
func (ProductOptionModel) TableName() string {
	return "product_options"
}
