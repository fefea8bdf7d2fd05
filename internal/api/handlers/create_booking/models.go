package create_booking

import (
	"strings"

	bookingModels "github.com/m04kA/SMC-RealEstateService/internal/service/bookings/models"
	createBooking "github.com/m04kA/SMC-RealEstateService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	PropertyID   int64  `json:"property"`
	CheckInDate  string `json:"check_in_date"`  // "2024-06-01"
	CheckOutDate string `json:"check_out_date"` // "2024-06-04"
}

func (r *CreateBookingRequest) hasRequiredFields() bool {
	return r.PropertyID > 0 && strings.TrimSpace(r.CheckInDate) != "" && strings.TrimSpace(r.CheckOutDate) != ""
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) *createBooking.Request {
	return &createBooking.Request{
		UserID:     userID,
		PropertyID: r.PropertyID,
		CheckIn:    strings.TrimSpace(r.CheckInDate),
		CheckOut:   strings.TrimSpace(r.CheckOutDate),
	}
}

// FromUseCaseResponse конвертирует ответ use case в формат, общий с остальными ручками бронирований
func FromUseCaseResponse(resp *createBooking.Response) *bookingModels.BookingResponse {
	return &bookingModels.BookingResponse{
		ID:           resp.ID,
		UserID:       resp.UserID,
		PropertyID:   resp.PropertyID,
		CheckInDate:  resp.CheckIn.String(),
		CheckOutDate: resp.CheckOut.String(),
		Nights:       resp.Nights,
		TotalPrice:   resp.TotalPrice.StringFixed(2),
		Status:       resp.Status,
		PropertyDetail: &bookingModels.PropertyDetail{
			Title:    resp.Property.Title,
			Location: resp.Property.Location,
			Image:    resp.Property.Image,
			Price:    resp.Property.PricePerNight.StringFixed(2),
		},
		UserDetail: &bookingModels.UserDetail{
			Email:     resp.User.Email,
			FirstName: resp.User.FirstName,
			LastName:  resp.User.LastName,
		},
		BookingDate: resp.CreatedAt,
		UpdatedAt:   resp.UpdatedAt,
	}
}
