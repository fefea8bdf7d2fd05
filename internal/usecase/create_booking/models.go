package create_booking

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-RealEstateService/internal/domain"
	"github.com/m04kA/SMC-RealEstateService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID     int64  // ID пользователя из токена
	PropertyID int64  // ID объекта
	CheckIn    string // Дата заезда, YYYY-MM-DD
	CheckOut   string // Дата выезда, YYYY-MM-DD
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID         int64
	UserID     int64
	PropertyID int64
	CheckIn    types.Date
	CheckOut   types.Date
	Nights     int
	TotalPrice decimal.Decimal
	Status     string

	// Денормализованные данные
	Property domain.BookingProperty
	User     domain.BookingUser

	CreatedAt time.Time
	UpdatedAt time.Time
}

func newResponse(b *domain.Booking, nights int) *Response {
	return &Response{
		ID:         b.ID,
		UserID:     b.UserID,
		PropertyID: b.PropertyID,
		CheckIn:    b.CheckIn,
		CheckOut:   b.CheckOut,
		Nights:     nights,
		TotalPrice: b.TotalPrice,
		Status:     string(b.Status),
		Property:   *b.Property,
		User:       *b.User,
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
}
