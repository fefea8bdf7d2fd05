package models

import (
	"time"

	"github.com/m04kA/SMC-RealEstateService/internal/domain"
	propertyModels "github.com/m04kA/SMC-RealEstateService/internal/service/properties/models"
)

// AddRequest запрос на добавление объекта в избранное
type AddRequest struct {
	PropertyID int64 `json:"property"`
}

// EntryResponse запись избранного с данными объекта
type EntryResponse struct {
	ID             int64                            `json:"id"`
	UserID         int64                            `json:"user"`
	PropertyID     int64                            `json:"property"`
	PropertyDetail *propertyModels.PropertyResponse `json:"property_detail,omitempty"`
	CreatedAt      time.Time                        `json:"created_at"`
}

// ListResponse избранное пользователя
type ListResponse struct {
	Items []EntryResponse `json:"items"`
}

// FromDomainEntry конвертирует domain модель в DTO
func FromDomainEntry(e *domain.WishlistEntry) *EntryResponse {
	if e == nil {
		return nil
	}
	return &EntryResponse{
		ID:             e.ID,
		UserID:         e.UserID,
		PropertyID:     e.PropertyID,
		PropertyDetail: propertyModels.FromDomainProperty(e.Property),
		CreatedAt:      e.CreatedAt,
	}
}

// FromDomainEntryList конвертирует список domain моделей в DTO
func FromDomainEntryList(entries []*domain.WishlistEntry) *ListResponse {
	resp := &ListResponse{Items: make([]EntryResponse, 0, len(entries))}
	for _, e := range entries {
		resp.Items = append(resp.Items, *FromDomainEntry(e))
	}
	return resp
}
