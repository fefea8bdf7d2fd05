package get_booking_total

import (
	quoteBooking "github.com/m04kA/SMC-RealEstateService/internal/usecase/quote_booking"
)

// TotalResponse предварительный расчет стоимости
type TotalResponse struct {
	PropertyID    int64  `json:"property"`
	CheckInDate   string `json:"check_in_date"`
	CheckOutDate  string `json:"check_out_date"`
	Nights        int    `json:"nights"`
	PricePerNight string `json:"price_per_night"`
	TotalPrice    string `json:"total_price"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *quoteBooking.Response) *TotalResponse {
	return &TotalResponse{
		PropertyID:    resp.PropertyID,
		CheckInDate:   resp.CheckIn.String(),
		CheckOutDate:  resp.CheckOut.String(),
		Nights:        resp.Nights,
		PricePerNight: resp.NightlyPrice.StringFixed(2),
		TotalPrice:    resp.TotalPrice.StringFixed(2),
	}
}
