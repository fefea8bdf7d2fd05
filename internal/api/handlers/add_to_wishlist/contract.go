package add_to_wishlist

import (
	"context"

	"github.com/m04kA/SMC-RealEstateService/internal/domain"
	"github.com/m04kA/SMC-RealEstateService/internal/service/wishlist/models"
)

type WishlistService interface {
	Add(ctx context.Context, identity *domain.Identity, req *models.AddRequest) (*models.EntryResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
