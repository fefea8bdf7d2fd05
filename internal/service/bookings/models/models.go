package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-RealEstateService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// UpdateStatusRequest запрос на смену статуса бронирования
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// Response модели

// PropertyDetail данные объекта для отображения
type PropertyDetail struct {
	Title    string  `json:"title"`
	Location string  `json:"location"`
	Image    *string `json:"image"`
	Price    string  `json:"price"`
}

// UserDetail данные владельца бронирования
type UserDetail struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID           int64  `json:"id"`
	UserID       int64  `json:"user"`
	PropertyID   int64  `json:"property"`
	CheckInDate  string `json:"check_in_date"`  // "2024-06-01"
	CheckOutDate string `json:"check_out_date"` // "2024-06-04"
	Nights       int    `json:"nights"`
	TotalPrice   string `json:"total_price"`
	Status       string `json:"status"`

	// Денормализованные данные
	PropertyDetail *PropertyDetail `json:"property_detail,omitempty"`
	UserDetail     *UserDetail     `json:"user_detail,omitempty"`

	BookingDate time.Time `json:"booking_date"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:           b.ID,
		UserID:       b.UserID,
		PropertyID:   b.PropertyID,
		CheckInDate:  b.CheckIn.String(),
		CheckOutDate: b.CheckOut.String(),
		Nights:       b.Nights(),
		TotalPrice:   b.TotalPrice.StringFixed(2),
		Status:       string(b.Status),
		BookingDate:  b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}

	if b.Property != nil {
		resp.PropertyDetail = &PropertyDetail{
			Title:    b.Property.Title,
			Location: b.Property.Location,
			Image:    b.Property.Image,
			Price:    b.Property.PricePerNight.StringFixed(2),
		}
	}
	if b.User != nil {
		resp.UserDetail = &UserDetail{
			Email:     b.User.Email,
			FirstName: b.User.FirstName,
			LastName:  b.User.LastName,
		}
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}
