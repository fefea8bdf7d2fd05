package domain

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-RealEstateService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// IsValid returns true for a known status
func (s BookingStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// IsTerminal returns true if no transition is allowed from the status
func (s BookingStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// CanTransitionTo допустимы только pending -> completed и pending -> cancelled
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	if !s.IsValid() || s.IsTerminal() {
		return false
	}
	return next == StatusCompleted || next == StatusCancelled
}

// Booking represents a property booking
type Booking struct {
	ID         int64
	UserID     int64
	PropertyID int64
	CheckIn    types.Date
	CheckOut   types.Date
	TotalPrice decimal.Decimal
	Status     BookingStatus

	// Denormalized data for responses
	Property *BookingProperty
	User     *BookingUser

	CreatedAt time.Time
	UpdatedAt time.Time
}

// BookingProperty краткие данные объекта в бронировании
type BookingProperty struct {
	Title         string
	Location      string
	Image         *string
	PricePerNight decimal.Decimal
}

// BookingUser краткие данные владельца бронирования
type BookingUser struct {
	Email     string
	FirstName string
	LastName  string
}

// Nights returns the number of nights between check-in and check-out
func (b *Booking) Nights() int {
	return b.CheckIn.DaysUntil(b.CheckOut)
}

// IsOwnedBy returns true if the booking belongs to the user
func (b *Booking) IsOwnedBy(userID int64) bool {
	return b.UserID == userID
}

// BookingFilter фильтр списка бронирований
type BookingFilter struct {
	UserID *int64         // nil - все пользователи
	Status *BookingStatus // nil - любой статус
	Limit  uint64         // 0 - без ограничения
}
