package payments

import (
	"context"
	"encoding/json"

	"github.com/m04kA/SMC-RealEstateService/internal/integrations/paystack"
)

// PaymentGateway клиент платежного провайдера
type PaymentGateway interface {
	InitializeTransaction(ctx context.Context, req paystack.InitializeRequest) (*paystack.Authorization, error)
	VerifyTransaction(ctx context.Context, reference string) (json.RawMessage, error)
}

// Metrics бизнес-метрики платежей
type Metrics interface {
	IncPaymentInitializations(outcome string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
