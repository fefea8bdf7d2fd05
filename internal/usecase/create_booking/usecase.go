package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RealEstateService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-RealEstateService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-RealEstateService/internal/infra/storage/pgerr"
	propertyRepo "github.com/m04kA/SMC-RealEstateService/internal/infra/storage/property"
	userRepo "github.com/m04kA/SMC-RealEstateService/internal/infra/storage/user"
	"github.com/m04kA/SMC-RealEstateService/internal/pricing"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo    BookingRepository
	propertyRepo   PropertyRepository
	userRepo       UserRepository
	txManager      TransactionManager
	metrics        Metrics
	logger         Logger
	preventOverlap bool
}

// NewUseCase создает новый экземпляр use case
// preventOverlap включает проверку пересечения дат в сериализуемой транзакции
func NewUseCase(
	bookingRepo BookingRepository,
	propertyRepo PropertyRepository,
	userRepo UserRepository,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
	preventOverlap bool,
) *UseCase {
	return &UseCase{
		bookingRepo:    bookingRepo,
		propertyRepo:   propertyRepo,
		userRepo:       userRepo,
		txManager:      txManager,
		metrics:        metrics,
		logger:         logger,
		preventOverlap: preventOverlap,
	}
}

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, property=%d, check_in=%s, check_out=%s",
		req.UserID, req.PropertyID, req.CheckIn, req.CheckOut)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем объект
	property, err := uc.propertyRepo.GetByID(ctx, req.PropertyID)
	if err != nil {
		if errors.Is(err, propertyRepo.ErrPropertyNotFound) {
			uc.logger.Warn("CreateBooking: property id=%d not found", req.PropertyID)
			return nil, ErrPropertyNotFound
		}
		uc.logger.Error("CreateBooking: failed to get property id=%d: %v", req.PropertyID, err)
		return nil, fmt.Errorf("%w: failed to get property: %v", ErrInternal, err)
	}

	// 3. Разбираем даты
	checkIn, checkOut, err := parseDates(req.CheckIn, req.CheckOut)
	if err != nil {
		uc.logger.Warn("CreateBooking: invalid dates: %v", err)
		return nil, err
	}

	// 4. Считаем стоимость
	quote, err := pricing.Calculate(property.PricePerNight, checkIn, checkOut)
	if err != nil {
		if errors.Is(err, pricing.ErrInvalidDateRange) {
			uc.logger.Warn("CreateBooking: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidDateRange, err)
		}
		uc.logger.Error("CreateBooking: pricing failed for property id=%d: %v", req.PropertyID, err)
		return nil, fmt.Errorf("%w: pricing: %v", ErrInternal, err)
	}

	// 5. Объект должен быть открыт для бронирования
	if !property.IsAvailable {
		uc.logger.Warn("CreateBooking: property id=%d is not available", req.PropertyID)
		return nil, ErrPropertyUnavailable
	}

	// 6. Данные владельца для ответа
	user, err := uc.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			uc.logger.Warn("CreateBooking: user id=%d not found", req.UserID)
			return nil, ErrUserNotFound
		}
		uc.logger.Error("CreateBooking: failed to get user id=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
	}

	booking := &domain.Booking{
		UserID:     req.UserID,
		PropertyID: req.PropertyID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		TotalPrice: quote.Total,
		Status:     domain.StatusPending,
	}

	// 7. Сохраняем бронирование
	var created *domain.Booking
	if uc.preventOverlap {
		err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
			overlaps, err := uc.bookingRepo.HasOverlapping(txCtx, req.PropertyID, checkIn, checkOut)
			if err != nil {
				return err
			}
			if overlaps {
				uc.logger.Warn("CreateBooking: dates %s..%s are taken for property id=%d", checkIn, checkOut, req.PropertyID)
				return ErrDatesUnavailable
			}

			created, err = uc.bookingRepo.Create(txCtx, booking)
			return err
		})
	} else {
		created, err = uc.bookingRepo.Create(ctx, booking)
	}
	if err != nil {
		switch {
		case errors.Is(err, ErrDatesUnavailable):
			return nil, err
		case pgerr.IsSerializationFailure(err):
			uc.logger.Warn("CreateBooking: concurrent booking for property id=%d: %v", req.PropertyID, err)
			return nil, ErrDatesUnavailable
		case errors.Is(err, bookingRepo.ErrReferenceNotFound):
			uc.logger.Warn("CreateBooking: property id=%d or user id=%d disappeared", req.PropertyID, req.UserID)
			return nil, ErrPropertyNotFound
		default:
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return nil, fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}
	}

	created.Property = &domain.BookingProperty{
		Title:         property.Title,
		Location:      property.Location,
		Image:         property.Image,
		PricePerNight: property.PricePerNight,
	}
	created.User = &domain.BookingUser{
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}

	uc.metrics.IncBookingsCreated()
	uc.logger.Info("CreateBooking: successfully created booking id=%d, total=%s", created.ID, created.TotalPrice.StringFixed(2))
	return newResponse(created, quote.Nights), nil
}
