package dashboard

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-RealEstateService/internal/domain"
	"github.com/m04kA/SMC-RealEstateService/internal/service/dashboard/models"
	"github.com/m04kA/SMC-RealEstateService/pkg/ptr"
)

// Service сводка по каталогу, пользователям и бронированиям
type Service struct {
	propertyRepo PropertyRepository
	userRepo     UserRepository
	bookingRepo  BookingRepository
	wishlistRepo WishlistRepository
	txManager    TransactionManager
	logger       Logger
}

// NewService создает новый экземпляр сервиса сводки
func NewService(
	propertyRepo PropertyRepository,
	userRepo UserRepository,
	bookingRepo BookingRepository,
	wishlistRepo WishlistRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		propertyRepo: propertyRepo,
		userRepo:     userRepo,
		bookingRepo:  bookingRepo,
		wishlistRepo: wishlistRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// Get собирает счетчики и последние бронирования в одном read-only снимке
func (s *Service) Get(ctx context.Context) (*models.DashboardResponse, error) {
	var stats domain.DashboardStats

	err := s.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		var err error
		if stats.TotalProperties, err = s.propertyRepo.Count(txCtx, domain.PropertyFilter{}); err != nil {
			return fmt.Errorf("count properties: %w", err)
		}
		if stats.FeaturedProperties, err = s.propertyRepo.Count(txCtx, domain.PropertyFilter{Featured: ptr.Ptr(true)}); err != nil {
			return fmt.Errorf("count featured properties: %w", err)
		}
		if stats.TotalUsers, err = s.userRepo.Count(txCtx); err != nil {
			return fmt.Errorf("count users: %w", err)
		}
		if stats.TotalBookings, err = s.bookingRepo.Count(txCtx); err != nil {
			return fmt.Errorf("count bookings: %w", err)
		}
		if stats.TotalWishlist, err = s.wishlistRepo.Count(txCtx); err != nil {
			return fmt.Errorf("count wishlist: %w", err)
		}
		stats.RecentBookings, err = s.bookingRepo.List(txCtx, domain.BookingFilter{Limit: domain.RecentBookingsLimit})
		if err != nil {
			return fmt.Errorf("recent bookings: %w", err)
		}
		return nil
	})
	if err != nil {
		s.logger.Error("Get: failed to collect dashboard: %v", err)
		return nil, fmt.Errorf("%w: Get - %v", ErrInternal, err)
	}

	s.logger.Info("Get: properties=%d, users=%d, bookings=%d", stats.TotalProperties, stats.TotalUsers, stats.TotalBookings)
	return models.FromDomainStats(&stats), nil
}
