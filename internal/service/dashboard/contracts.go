package dashboard

import (
	"context"

	"github.com/m04kA/SMC-RealEstateService/internal/domain"
)

// PropertyRepository счетчик объектов
type PropertyRepository interface {
	Count(ctx context.Context, filter domain.PropertyFilter) (int64, error)
}

// UserRepository счетчик пользователей
type UserRepository interface {
	Count(ctx context.Context) (int64, error)
}

// BookingRepository счетчик и последние бронирования
type BookingRepository interface {
	Count(ctx context.Context) (int64, error)
	List(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, error)
}

// WishlistRepository счетчик избранного
type WishlistRepository interface {
	Count(ctx context.Context) (int64, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
