package verify_payment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RealEstateService/internal/api/handlers"
	"github.com/m04kA/SMC-RealEstateService/internal/service/payments"
)

const (
	msgMissingReference = "не указан идентификатор платежа"
)

type Handler struct {
	service PaymentService
	logger  Logger
}

func NewHandler(service PaymentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/payments/verify/{reference}
// Ответ провайдера отдается клиенту без изменений
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reference := mux.Vars(r)["reference"]

	raw, err := h.service.Verify(r.Context(), reference)
	if err != nil {
		var perr *payments.ProviderError
		switch {
		case errors.As(err, &perr):
			h.logger.Warn("GET /payments/verify/{reference} - Provider rejected: reference=%s, status=%d", reference, perr.StatusCode)
			handlers.RespondError(w, perr.StatusCode, perr.Message)

		case errors.Is(err, payments.ErrInvalidInput):
			h.logger.Warn("GET /payments/verify/{reference} - Missing reference")
			handlers.RespondBadRequest(w, msgMissingReference)

		default:
			h.logger.Error("GET /payments/verify/{reference} - Failed to verify payment: reference=%s, error=%v", reference, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /payments/verify/{reference} - Payment verified: reference=%s", reference)
	handlers.RespondRawJSON(w, http.StatusOK, raw)
}
