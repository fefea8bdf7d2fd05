package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-RealEstateService/internal/integrations/paystack"
	"github.com/m04kA/SMC-RealEstateService/internal/service/payments/models"
)

const (
	outcomeSuccess  = "success"
	outcomeRejected = "rejected"
	outcomeError    = "error"
)

// Service сквозной адаптер к платежному провайдеру
// Бронирования не затрагиваются: статус меняет администратор
type Service struct {
	gateway      PaymentGateway
	metrics      Metrics
	logger       Logger
	newReference func() string
}

// NewService создает новый экземпляр платежного сервиса
func NewService(gateway PaymentGateway, metrics Metrics, logger Logger) *Service {
	return &Service{
		gateway:      gateway,
		metrics:      metrics,
		logger:       logger,
		newReference: uuid.NewString,
	}
}

// Initialize создает транзакцию у провайдера
// Сумма переводится в минимальные единицы (x100) с отбрасыванием дробной части
func (s *Service) Initialize(ctx context.Context, req *models.InitializeRequest) (*models.InitializeResponse, error) {
	email := strings.TrimSpace(req.Email)
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", ErrInvalidInput)
	}

	minor := req.Amount.Shift(2).IntPart()
	if minor <= 0 {
		return nil, fmt.Errorf("%w: amount is below the minimal unit", ErrInvalidInput)
	}

	reference := s.newReference()
	s.logger.Info("Initialize: amount=%s (minor=%d), reference=%s", req.Amount.String(), minor, reference)

	auth, err := s.gateway.InitializeTransaction(ctx, paystack.InitializeRequest{
		Email:     email,
		Amount:    minor,
		Reference: reference,
	})
	if err != nil {
		if perr := asProviderError(err); perr != nil {
			s.metrics.IncPaymentInitializations(outcomeRejected)
			s.logger.Warn("Initialize: provider rejected reference=%s: status=%d", reference, perr.StatusCode)
			return nil, perr
		}
		s.metrics.IncPaymentInitializations(outcomeError)
		s.logger.Error("Initialize: gateway error for reference=%s: %v", reference, err)
		return nil, fmt.Errorf("%w: Initialize - gateway error: %v", ErrInternal, err)
	}

	s.metrics.IncPaymentInitializations(outcomeSuccess)
	return &models.InitializeResponse{
		AuthorizationURL: auth.AuthorizationURL,
		AccessCode:       auth.AccessCode,
		Reference:        auth.Reference,
	}, nil
}

// Verify возвращает ответ провайдера о транзакции без изменений
func (s *Service) Verify(ctx context.Context, reference string) (json.RawMessage, error) {
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return nil, fmt.Errorf("%w: reference is required", ErrInvalidInput)
	}

	s.logger.Info("Verify: verifying reference=%s", reference)

	payload, err := s.gateway.VerifyTransaction(ctx, reference)
	if err != nil {
		if perr := asProviderError(err); perr != nil {
			s.logger.Warn("Verify: provider rejected reference=%s: status=%d", reference, perr.StatusCode)
			return nil, perr
		}
		s.logger.Error("Verify: gateway error for reference=%s: %v", reference, err)
		return nil, fmt.Errorf("%w: Verify - gateway error: %v", ErrInternal, err)
	}

	return payload, nil
}

func asProviderError(err error) *ProviderError {
	var perr *paystack.ProviderError
	if !errors.As(err, &perr) {
		return nil
	}
	return &ProviderError{StatusCode: perr.StatusCode, Message: perr.Message}
}
