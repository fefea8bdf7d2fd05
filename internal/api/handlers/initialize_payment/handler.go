package initialize_payment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RealEstateService/internal/api/handlers"
	"github.com/m04kA/SMC-RealEstateService/internal/api/middleware"
	"github.com/m04kA/SMC-RealEstateService/internal/service/payments"
	"github.com/m04kA/SMC-RealEstateService/internal/service/payments/models"
)

const (
	msgMissingIdentity    = "требуется авторизация"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "сумма должна быть положительной"
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

// Handle POST /api/v1/payments/initialize
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		h.logger.Warn("POST /payments/initialize - Missing identity")
		handlers.RespondUnauthorized(w, msgMissingIdentity)
		return
	}

	var req models.InitializeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /payments/initialize - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Без email в теле платеж идет на адрес из токена
	if req.Email == "" {
		req.Email = identity.Email
	}

	resp, err := h.service.Initialize(r.Context(), &req)
	if err != nil {
		var perr *payments.ProviderError
		switch {
		case errors.As(err, &perr):
			h.logger.Warn("POST /payments/initialize - Provider rejected: user_id=%d, status=%d", identity.UserID, perr.StatusCode)
			handlers.RespondError(w, perr.StatusCode, perr.Message)

		case errors.Is(err, payments.ErrInvalidInput):
			h.logger.Warn("POST /payments/initialize - Invalid input: user_id=%d, error=%v", identity.UserID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /payments/initialize - Failed to initialize payment: user_id=%d, error=%v", identity.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /payments/initialize - Payment initialized: user_id=%d, reference=%s", identity.UserID, resp.Reference)
	handlers.RespondJSON(w, http.StatusOK, resp)
}
