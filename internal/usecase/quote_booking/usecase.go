package quote_booking

import (
	"context"
	"errors"
	"fmt"

	propertyRepo "github.com/m04kA/SMC-RealEstateService/internal/infra/storage/property"
	"github.com/m04kA/SMC-RealEstateService/internal/pricing"
	"github.com/m04kA/SMC-RealEstateService/pkg/types"
)

// UseCase предварительный расчет стоимости проживания
type UseCase struct {
	propertyRepo PropertyRepository
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(propertyRepo PropertyRepository, logger Logger) *UseCase {
	return &UseCase{
		propertyRepo: propertyRepo,
		logger:       logger,
	}
}

// Execute считает число ночей и итог; ничего не сохраняет
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.PropertyID <= 0 || req.CheckIn == "" || req.CheckOut == "" {
		return nil, fmt.Errorf("%w: propertyId, checkIn and checkOut are required", ErrInvalidInput)
	}

	property, err := uc.propertyRepo.GetByID(ctx, req.PropertyID)
	if err != nil {
		if errors.Is(err, propertyRepo.ErrPropertyNotFound) {
			uc.logger.Warn("QuoteBooking: property id=%d not found", req.PropertyID)
			return nil, ErrPropertyNotFound
		}
		uc.logger.Error("QuoteBooking: failed to get property id=%d: %v", req.PropertyID, err)
		return nil, fmt.Errorf("%w: failed to get property: %v", ErrInternal, err)
	}

	checkIn, err := types.ParseDate(req.CheckIn)
	if err != nil {
		return nil, fmt.Errorf("%w: checkIn: %v", ErrInvalidInput, err)
	}
	checkOut, err := types.ParseDate(req.CheckOut)
	if err != nil {
		return nil, fmt.Errorf("%w: checkOut: %v", ErrInvalidInput, err)
	}

	quote, err := pricing.Calculate(property.PricePerNight, checkIn, checkOut)
	if err != nil {
		if errors.Is(err, pricing.ErrInvalidDateRange) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidDateRange, err)
		}
		uc.logger.Error("QuoteBooking: pricing failed for property id=%d: %v", req.PropertyID, err)
		return nil, fmt.Errorf("%w: pricing: %v", ErrInternal, err)
	}

	uc.logger.Info("QuoteBooking: property=%d, nights=%d, total=%s", req.PropertyID, quote.Nights, quote.Total.StringFixed(2))
	return &Response{
		PropertyID:   req.PropertyID,
		CheckIn:      checkIn,
		CheckOut:     checkOut,
		Nights:       quote.Nights,
		NightlyPrice: quote.NightlyPrice,
		TotalPrice:   quote.Total,
	}, nil
}
