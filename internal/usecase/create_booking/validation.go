package create_booking

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-RealEstateService/pkg/types"
)

// validateRequest проверяет обязательные поля
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: user_id is required", ErrInvalidInput)
	}
	if req.PropertyID <= 0 {
		return fmt.Errorf("%w: property is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.CheckIn) == "" || strings.TrimSpace(req.CheckOut) == "" {
		return fmt.Errorf("%w: check-in and check-out dates are required", ErrInvalidInput)
	}
	return nil
}

// parseDates разбирает даты строго в формате YYYY-MM-DD
func parseDates(checkIn, checkOut string) (types.Date, types.Date, error) {
	in, err := types.ParseDate(checkIn)
	if err != nil {
		return types.Date{}, types.Date{}, fmt.Errorf("%w: check-in: %v", ErrInvalidInput, err)
	}
	out, err := types.ParseDate(checkOut)
	if err != nil {
		return types.Date{}, types.Date{}, fmt.Errorf("%w: check-out: %v", ErrInvalidInput, err)
	}
	return in, out, nil
}
