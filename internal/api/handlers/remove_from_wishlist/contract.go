package remove_from_wishlist

import (
	"context"

	"github.com/m04kA/SMC-RealEstateService/internal/domain"
)

type WishlistService interface {
	Remove(ctx context.Context, identity *domain.Identity, propertyID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
