package receipts

import (
	"context"

	"github.com/m04kA/SMC-RealEstateService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
}

// Renderer формирует документ квитанции
type Renderer interface {
	Render(b *domain.Booking) ([]byte, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
