package wishlist

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RealEstateService/internal/domain"
	wishlistRepo "github.com/m04kA/SMC-RealEstateService/internal/infra/storage/wishlist"
	"github.com/m04kA/SMC-RealEstateService/internal/service/wishlist/models"
)

// Service сервис избранного
type Service struct {
	repo   WishlistRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса избранного
func NewService(repo WishlistRepository, logger Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Add добавляет объект в избранное текущего пользователя
func (s *Service) Add(ctx context.Context, identity *domain.Identity, req *models.AddRequest) (*models.EntryResponse, error) {
	s.logger.Info("Add: user=%d adds property id=%d", identity.UserID, req.PropertyID)

	if req.PropertyID <= 0 {
		return nil, fmt.Errorf("%w: property is required", ErrInvalidInput)
	}

	entry, err := s.repo.Create(ctx, identity.UserID, req.PropertyID)
	if err != nil {
		switch {
		case errors.Is(err, wishlistRepo.ErrAlreadyExists):
			s.logger.Warn("Add: property id=%d already in wishlist of user=%d", req.PropertyID, identity.UserID)
			return nil, ErrAlreadyInWishlist
		case errors.Is(err, wishlistRepo.ErrPropertyNotFound):
			s.logger.Warn("Add: property id=%d not found", req.PropertyID)
			return nil, ErrPropertyNotFound
		case errors.Is(err, wishlistRepo.ErrUserNotFound):
			s.logger.Warn("Add: user=%d not found", identity.UserID)
			return nil, ErrUserNotFound
		default:
			s.logger.Error("Add: repository error for user=%d: %v", identity.UserID, err)
			return nil, fmt.Errorf("%w: Add - repository error: %v", ErrInternal, err)
		}
	}

	return models.FromDomainEntry(entry), nil
}

// Remove удаляет объект из избранного текущего пользователя
func (s *Service) Remove(ctx context.Context, identity *domain.Identity, propertyID int64) error {
	s.logger.Info("Remove: user=%d removes property id=%d", identity.UserID, propertyID)

	if err := s.repo.Delete(ctx, identity.UserID, propertyID); err != nil {
		if errors.Is(err, wishlistRepo.ErrEntryNotFound) {
			s.logger.Warn("Remove: property id=%d not in wishlist of user=%d", propertyID, identity.UserID)
			return ErrNotFound
		}
		s.logger.Error("Remove: repository error for user=%d: %v", identity.UserID, err)
		return fmt.Errorf("%w: Remove - repository error: %v", ErrInternal, err)
	}

	return nil
}

// List возвращает избранное текущего пользователя, новые первыми
func (s *Service) List(ctx context.Context, identity *domain.Identity) (*models.ListResponse, error) {
	entries, err := s.repo.ListByUser(ctx, identity.UserID)
	if err != nil {
		s.logger.Error("List: repository error for user=%d: %v", identity.UserID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d entries for user=%d", len(entries), identity.UserID)
	return models.FromDomainEntryList(entries), nil
}
