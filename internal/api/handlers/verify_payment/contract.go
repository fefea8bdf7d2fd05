package verify_payment

import (
	"context"
	"encoding/json"
)

type PaymentService interface {
	Verify(ctx context.Context, reference string) (json.RawMessage, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
