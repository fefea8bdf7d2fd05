package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-RealEstateService/internal/domain"
)

// Request модели

// PropertyRequest тело создания и полного обновления объекта
type PropertyRequest struct {
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	Location      string          `json:"location"`
	Bedrooms      int             `json:"bedrooms"`
	Bathrooms     int             `json:"bathrooms"`
	Area          decimal.Decimal `json:"area"`
	IsFeatured    *bool           `json:"is_featured,omitempty"`
	IsAvailable   *bool           `json:"is_available,omitempty"` // по умолчанию true
	Image         *string         `json:"image,omitempty"`
	GalleryImages []string        `json:"gallery_images,omitempty"`
}

// ToDomain конвертирует запрос в domain модель
func (r *PropertyRequest) ToDomain() *domain.Property {
	p := &domain.Property{
		Title:         r.Title,
		Description:   r.Description,
		PricePerNight: r.Price,
		Location:      r.Location,
		Bedrooms:      r.Bedrooms,
		Bathrooms:     r.Bathrooms,
		Area:          r.Area,
		IsAvailable:   true,
		Image:         r.Image,
		Gallery:       r.GalleryImages,
	}
	if r.IsFeatured != nil {
		p.IsFeatured = *r.IsFeatured
	}
	if r.IsAvailable != nil {
		p.IsAvailable = *r.IsAvailable
	}
	return p
}

// Response модели

// PropertyResponse объект каталога; деньги и площадь строкой с двумя знаками
type PropertyResponse struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Price         string    `json:"price"`
	Location      string    `json:"location"`
	Bedrooms      int       `json:"bedrooms"`
	Bathrooms     int       `json:"bathrooms"`
	Area          string    `json:"area"`
	IsFeatured    bool      `json:"is_featured"`
	IsAvailable   bool      `json:"is_available"`
	Image         *string   `json:"image"`
	GalleryImages []string  `json:"gallery_images"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// PropertyListResponse список объектов
type PropertyListResponse struct {
	Properties []PropertyResponse `json:"properties"`
}

// Методы конвертации

// FromDomainProperty конвертирует domain модель в DTO
func FromDomainProperty(p *domain.Property) *PropertyResponse {
	if p == nil {
		return nil
	}

	gallery := p.Gallery
	if gallery == nil {
		gallery = []string{}
	}

	return &PropertyResponse{
		ID:            p.ID,
		Title:         p.Title,
		Description:   p.Description,
		Price:         p.PricePerNight.StringFixed(2),
		Location:      p.Location,
		Bedrooms:      p.Bedrooms,
		Bathrooms:     p.Bathrooms,
		Area:          p.Area.StringFixed(2),
		IsFeatured:    p.IsFeatured,
		IsAvailable:   p.IsAvailable,
		Image:         p.Image,
		GalleryImages: gallery,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

// FromDomainPropertyList конвертирует список domain моделей в DTO
func FromDomainPropertyList(properties []*domain.Property) *PropertyListResponse {
	resp := &PropertyListResponse{Properties: make([]PropertyResponse, 0, len(properties))}
	for _, p := range properties {
		resp.Properties = append(resp.Properties, *FromDomainProperty(p))
	}
	return resp
}
