package get_user_bookings

import (
	"context"

	"github.com/m04kA/SMC-RealEstateService/internal/domain"
	"github.com/m04kA/SMC-RealEstateService/internal/service/bookings/models"
)

type BookingService interface {
	ListForUser(ctx context.Context, identity *domain.Identity, status *string) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
