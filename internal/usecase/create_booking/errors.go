package create_booking

import "errors"

var (
	// ErrPropertyNotFound возвращается, когда объект не найден
	ErrPropertyNotFound = errors.New("create_booking: property not found")

	// ErrUserNotFound возвращается, когда владелец токена больше не существует
	ErrUserNotFound = errors.New("create_booking: user not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInvalidDateRange возвращается, когда дата выезда не позже даты заезда
	ErrInvalidDateRange = errors.New("create_booking: check-out must be after check-in")

	// ErrPropertyUnavailable возвращается, когда объект снят с бронирования
	ErrPropertyUnavailable = errors.New("create_booking: property is not available")

	// ErrDatesUnavailable возвращается, когда даты пересекаются с другим бронированием
	ErrDatesUnavailable = errors.New("create_booking: dates are already booked")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
