package wishlist

import "errors"

var (
	// ErrPropertyNotFound возвращается, когда объект не существует
	ErrPropertyNotFound = errors.New("wishlist.service: property not found")

	// ErrUserNotFound возвращается, когда пользователя из токена уже нет
	ErrUserNotFound = errors.New("wishlist.service: user not found")

	// ErrAlreadyInWishlist возвращается, когда объект уже в избранном
	ErrAlreadyInWishlist = errors.New("wishlist.service: property already in wishlist")

	// ErrNotFound возвращается, когда объекта нет в избранном
	ErrNotFound = errors.New("wishlist.service: entry not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("wishlist.service: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("wishlist.service: internal error")
)
