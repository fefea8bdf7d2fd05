package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RealEstateService/internal/api/handlers"
	"github.com/m04kA/SMC-RealEstateService/internal/api/middleware"
	createBooking "github.com/m04kA/SMC-RealEstateService/internal/usecase/create_booking"
)

const (
	msgMissingIdentity     = "требуется авторизация"
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgMissingFields       = "объект, дата заезда и дата выезда обязательны"
	msgInvalidInput        = "некорректная дата, ожидается YYYY-MM-DD"
	msgInvalidDateRange    = "дата выезда должна быть позже даты заезда"
	msgPropertyNotFound    = "объект не найден"
	msgUserNotFound        = "пользователь не найден"
	msgPropertyUnavailable = "объект недоступен для бронирования"
	msgDatesUnavailable    = "выбранные даты уже заняты"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing identity")
		handlers.RespondUnauthorized(w, msgMissingIdentity)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if !req.hasRequiredFields() {
		h.logger.Warn("POST /bookings - Missing required fields: user_id=%d", identity.UserID)
		handlers.RespondBadRequest(w, msgMissingFields)
		return
	}

	// Владелец бронирования всегда берется из токена
	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(identity.UserID))
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrPropertyNotFound):
			h.logger.Warn("POST /bookings - Property not found: property_id=%d", req.PropertyID)
			handlers.RespondNotFound(w, msgPropertyNotFound)

		case errors.Is(err, createBooking.ErrUserNotFound):
			h.logger.Warn("POST /bookings - User not found: user_id=%d", identity.UserID)
			handlers.RespondUnauthorized(w, msgUserNotFound)

		case errors.Is(err, createBooking.ErrInvalidDateRange):
			h.logger.Warn("POST /bookings - Invalid date range: user_id=%d, property_id=%d", identity.UserID, req.PropertyID)
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: user_id=%d, error=%v", identity.UserID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createBooking.ErrPropertyUnavailable):
			h.logger.Warn("POST /bookings - Property unavailable: property_id=%d", req.PropertyID)
			handlers.RespondConflict(w, msgPropertyUnavailable)

		case errors.Is(err, createBooking.ErrDatesUnavailable):
			h.logger.Warn("POST /bookings - Dates unavailable: user_id=%d, property_id=%d", identity.UserID, req.PropertyID)
			handlers.RespondConflict(w, msgDatesUnavailable)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%d, property_id=%d, error=%v",
				identity.UserID, req.PropertyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, user_id=%d, property_id=%d",
		result.ID, identity.UserID, req.PropertyID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
