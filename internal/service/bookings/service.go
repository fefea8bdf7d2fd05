package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RealEstateService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-RealEstateService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-RealEstateService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo BookingRepository
	txManager   TransactionManager
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
// Видеть бронирование может его владелец или администратор
func (s *Service) GetByID(ctx context.Context, identity *domain.Identity, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, identity.UserID)

	booking, err := s.Authorize(ctx, identity, id)
	if err != nil {
		return nil, err
	}

	s.logger.Info("GetByID: successfully fetched booking id=%d", id)
	return models.FromDomainBooking(booking), nil
}

// Authorize загружает бронирование и проверяет права доступа к нему
func (s *Service) Authorize(ctx context.Context, identity *domain.Identity, id int64) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Authorize: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Authorize: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Authorize - repository error: %v", ErrInternal, err)
	}

	if !identity.CanAccessBooking(booking) {
		s.logger.Warn("Authorize: access denied for user=%d to booking id=%d", identity.UserID, id)
		return nil, ErrAccessDenied
	}

	return booking, nil
}

// ListForUser получает бронирования текущего пользователя, новые первыми
// Опционально фильтрует по статусу
func (s *Service) ListForUser(ctx context.Context, identity *domain.Identity, status *string) (*models.BookingListResponse, error) {
	s.logger.Info("ListForUser: fetching bookings for user=%d, status=%v", identity.UserID, status)

	filter, err := buildFilter(status)
	if err != nil {
		s.logger.Warn("ListForUser: invalid status=%s for user=%d", *status, identity.UserID)
		return nil, err
	}
	filter.UserID = &identity.UserID

	bookings, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("ListForUser: repository error for user=%d: %v", identity.UserID, err)
		return nil, fmt.Errorf("%w: ListForUser - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListForUser: successfully fetched %d bookings for user=%d", len(bookings), identity.UserID)
	return models.FromDomainBookingList(bookings), nil
}

// ListAll получает все бронирования, новые первыми
func (s *Service) ListAll(ctx context.Context, status *string) (*models.BookingListResponse, error) {
	filter, err := buildFilter(status)
	if err != nil {
		s.logger.Warn("ListAll: invalid status=%s", *status)
		return nil, err
	}

	bookings, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("ListAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListAll - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListAll: successfully fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// UpdateStatus переводит бронирование в новый статус
// Допустимы только pending -> completed и pending -> cancelled
func (s *Service) UpdateStatus(ctx context.Context, bookingID int64, req *models.UpdateStatusRequest) (*models.BookingResponse, error) {
	s.logger.Info("UpdateStatus: updating booking id=%d to status=%s", bookingID, req.Status)

	newStatus, err := models.ToDomainBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%d", req.Status, bookingID)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	var updated *domain.Booking
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		// Внутри транзакции строка блокируется FOR UPDATE
		booking, err := s.bookingRepo.GetByID(txCtx, bookingID)
		if err != nil {
			return err
		}

		if !booking.Status.CanTransitionTo(newStatus) {
			s.logger.Warn("UpdateStatus: booking id=%d cannot move from %s to %s", bookingID, booking.Status, newStatus)
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.Status, newStatus)
		}

		if err := s.bookingRepo.UpdateStatus(txCtx, bookingID, newStatus); err != nil {
			return err
		}

		updated, err = s.bookingRepo.GetByID(txCtx, bookingID)
		return err
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidTransition):
			return nil, err
		case errors.Is(err, bookingRepo.ErrBookingNotFound):
			s.logger.Warn("UpdateStatus: booking id=%d not found", bookingID)
			return nil, ErrBookingNotFound
		default:
			s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
			return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("UpdateStatus: successfully updated booking id=%d to status=%s", bookingID, newStatus)
	return models.FromDomainBooking(updated), nil
}

func buildFilter(status *string) (domain.BookingFilter, error) {
	var filter domain.BookingFilter
	if status == nil {
		return filter, nil
	}

	st, err := models.ToDomainBookingStatus(*status)
	if err != nil {
		return filter, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}
	filter.Status = &st
	return filter, nil
}
