package get_booking_receipt

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RealEstateService/internal/api/handlers"
	"github.com/m04kA/SMC-RealEstateService/internal/api/middleware"
	"github.com/m04kA/SMC-RealEstateService/internal/service/receipts"
)

const (
	msgInvalidBookingID = "некорректный ID бронирования"
	msgNotFound         = "бронирование не найдено"
	msgMissingIdentity  = "требуется авторизация"
	msgForbidden        = "доступ запрещен"
)

type Handler struct {
	service ReceiptService
	logger  Logger
}

func NewHandler(service ReceiptService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/{bookingId}/receipt
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := strconv.ParseInt(mux.Vars(r)["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /bookings/{id}/receipt - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		h.logger.Warn("GET /bookings/{id}/receipt - Missing identity")
		handlers.RespondUnauthorized(w, msgMissingIdentity)
		return
	}

	receipt, err := h.service.Generate(r.Context(), identity, bookingID)
	if err != nil {
		switch {
		case errors.Is(err, receipts.ErrBookingNotFound):
			h.logger.Warn("GET /bookings/{id}/receipt - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, receipts.ErrAccessDenied):
			h.logger.Warn("GET /bookings/{id}/receipt - Access denied: booking_id=%d, user_id=%d", bookingID, identity.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /bookings/{id}/receipt - Failed to render receipt: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", receipt.FileName))
	w.Header().Set("Content-Length", strconv.Itoa(len(receipt.Content)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(receipt.Content); err != nil {
		h.logger.Error("GET /bookings/{id}/receipt - Failed to write receipt: booking_id=%d, error=%v", bookingID, err)
	}
}
