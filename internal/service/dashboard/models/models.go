package models

import (
	"github.com/m04kA/SMC-RealEstateService/internal/domain"
	bookingModels "github.com/m04kA/SMC-RealEstateService/internal/service/bookings/models"
)

// DashboardResponse сводка для администратора
type DashboardResponse struct {
	TotalProperties    int64                           `json:"total_properties"`
	FeaturedProperties int64                           `json:"featured_properties"`
	TotalUsers         int64                           `json:"total_users"`
	TotalBookings      int64                           `json:"total_bookings"`
	TotalWishlist      int64                           `json:"total_wishlist"`
	RecentBookings     []bookingModels.BookingResponse `json:"recent_bookings"`
}

// FromDomainStats конвертирует domain модель в DTO
func FromDomainStats(s *domain.DashboardStats) *DashboardResponse {
	return &DashboardResponse{
		TotalProperties:    s.TotalProperties,
		FeaturedProperties: s.FeaturedProperties,
		TotalUsers:         s.TotalUsers,
		TotalBookings:      s.TotalBookings,
		TotalWishlist:      s.TotalWishlist,
		RecentBookings:     bookingModels.FromDomainBookingList(s.RecentBookings).Bookings,
	}
}
