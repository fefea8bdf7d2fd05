package wishlist

import (
	"context"

	"github.com/m04kA/SMC-RealEstateService/internal/domain"
)

// WishlistRepository интерфейс репозитория избранного
type WishlistRepository interface {
	Create(ctx context.Context, userID, propertyID int64) (*domain.WishlistEntry, error)
	Delete(ctx context.Context, userID, propertyID int64) error
	ListByUser(ctx context.Context, userID int64) ([]*domain.WishlistEntry, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
