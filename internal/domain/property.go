package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Property represents a real-estate listing
type Property struct {
	ID            int64
	Title         string
	Description   string
	PricePerNight decimal.Decimal
	Location      string
	Bedrooms      int
	Bathrooms     int
	Area          decimal.Decimal
	IsFeatured    bool
	IsAvailable   bool
	Image         *string
	Gallery       []string // упорядоченный список URL

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Clone returns a deep copy, safe to hand out from a cache
func (p *Property) Clone() *Property {
	if p == nil {
		return nil
	}
	cp := *p
	if p.Image != nil {
		img := *p.Image
		cp.Image = &img
	}
	if p.Gallery != nil {
		cp.Gallery = append([]string(nil), p.Gallery...)
	}
	return &cp
}

// PropertyFilter фильтр каталога
type PropertyFilter struct {
	Featured  *bool
	Available *bool
	Location  *string // подстрока, без учета регистра
}
