package get_booking_total

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-RealEstateService/internal/api/handlers"
	quoteBooking "github.com/m04kA/SMC-RealEstateService/internal/usecase/quote_booking"
)

const (
	msgMissingParams     = "параметры propertyId, checkIn и checkOut обязательны"
	msgInvalidPropertyID = "некорректный ID объекта"
	msgInvalidDate       = "некорректная дата, ожидается YYYY-MM-DD"
	msgInvalidDateRange  = "дата выезда должна быть позже даты заезда"
	msgPropertyNotFound  = "объект не найден"
)

type Handler struct {
	useCase QuoteBookingUseCase
	logger  Logger
}

func NewHandler(useCase QuoteBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/total?propertyId=&checkIn=&checkOut=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	rawID, checkIn, checkOut := q.Get("propertyId"), q.Get("checkIn"), q.Get("checkOut")

	if rawID == "" || checkIn == "" || checkOut == "" {
		h.logger.Warn("GET /bookings/total - Missing query parameters")
		handlers.RespondBadRequest(w, msgMissingParams)
		return
	}

	propertyID, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		h.logger.Warn("GET /bookings/total - Invalid property ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPropertyID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &quoteBooking.Request{
		PropertyID: propertyID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
	})
	if err != nil {
		switch {
		case errors.Is(err, quoteBooking.ErrPropertyNotFound):
			h.logger.Warn("GET /bookings/total - Property not found: property_id=%d", propertyID)
			handlers.RespondNotFound(w, msgPropertyNotFound)

		case errors.Is(err, quoteBooking.ErrInvalidDateRange):
			h.logger.Warn("GET /bookings/total - Invalid date range: property_id=%d", propertyID)
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		case errors.Is(err, quoteBooking.ErrInvalidInput):
			h.logger.Warn("GET /bookings/total - Invalid input: property_id=%d, error=%v", propertyID, err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /bookings/total - Failed to quote booking: property_id=%d, error=%v", propertyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
