package get_booking_receipt

import (
	"context"

	"github.com/m04kA/SMC-RealEstateService/internal/domain"
	"github.com/m04kA/SMC-RealEstateService/internal/service/receipts"
)

type ReceiptService interface {
	Generate(ctx context.Context, identity *domain.Identity, bookingID int64) (*receipts.Receipt, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
