package initialize_payment

import (
	"context"

	"github.com/m04kA/SMC-RealEstateService/internal/service/payments/models"
)

type PaymentService interface {
	Initialize(ctx context.Context, req *models.InitializeRequest) (*models.InitializeResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
