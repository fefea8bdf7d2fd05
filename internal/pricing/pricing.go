package pricing

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-RealEstateService/pkg/types"
)

var (
	// ErrInvalidDateRange дата выезда не позже даты заезда
	ErrInvalidDateRange = errors.New("pricing: check-out must be after check-in")

	// ErrInvalidPrice цена за ночь не положительна
	ErrInvalidPrice = errors.New("pricing: nightly price must be positive")
)

// Quote результат расчета стоимости проживания
type Quote struct {
	NightlyPrice decimal.Decimal
	Nights       int
	Total        decimal.Decimal
}

// Calculate считает число ночей и итоговую стоимость: total = nightly * nights
func Calculate(nightly decimal.Decimal, checkIn, checkOut types.Date) (Quote, error) {
	if checkIn.IsZero() || checkOut.IsZero() || !checkOut.After(checkIn) {
		return Quote{}, fmt.Errorf("%w: check_in=%s, check_out=%s", ErrInvalidDateRange, checkIn, checkOut)
	}
	if !nightly.IsPositive() {
		return Quote{}, fmt.Errorf("%w: got %s", ErrInvalidPrice, nightly)
	}

	nights := checkIn.DaysUntil(checkOut)

	return Quote{
		NightlyPrice: nightly,
		Nights:       nights,
		Total:        nightly.Mul(decimal.NewFromInt(int64(nights))),
	}, nil
}
