package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Product is a sellable fruit arrangement. The four-digit code is the short
// identifier the chatbot reads back to customers (1000-9999).
type Product struct {
	ID        uuid.UUID       `json:"id"`
	Code      int             `json:"code"`
	Name      string          `json:"name"`
	BasePrice float64         `json:"base_price"`
	IsActive  bool            `json:"is_active"`
	Options   []ProductOption `json:"options"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ProductOption is a size or styling variant with a price delta.
type ProductOption struct {
	ID         uuid.UUID `json:"id"`
	ProductID  uuid.UUID `json:"product_id"`
	Name       string    `json:"name"`
	PriceDelta float64   `json:"price_delta"`
}

// IsValidProductCode reports whether the code is in the four-digit range.
func IsValidProductCode(code int) bool {
	return code >= 1000 && code <= 9999
}

// FindOption resolves an option by name, case-insensitively.
func (p *Product) FindOption(name string) (*ProductOption, bool) {
	for i := range p.Options {
		if strings.EqualFold(p.Options[i].Name, name) {
			return &p.Options[i], true
		}
	}

	return nil, false
}

// OptionPrice returns the unit price of the product with the given option
// applied. A nil option returns the base price.
func (p *Product) OptionPrice(option *ProductOption) float64 {
	if option == nil {
		return p.BasePrice
	}

	return p.BasePrice + option.PriceDelta
}
