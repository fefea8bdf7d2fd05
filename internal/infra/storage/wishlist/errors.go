package wishlist

import "errors"

var (
	// ErrEntryNotFound возвращается, когда объекта нет в избранном пользователя
	ErrEntryNotFound = errors.New("wishlist.repository: entry not found")

	// ErrAlreadyExists возвращается при нарушении уникальности (user_id, property_id)
	ErrAlreadyExists = errors.New("wishlist.repository: property already in wishlist")

	// ErrPropertyNotFound возвращается при нарушении внешнего ключа на объект
	ErrPropertyNotFound = errors.New("wishlist.repository: property not found")

	// ErrUserNotFound возвращается при нарушении внешнего ключа на пользователя
	ErrUserNotFound = errors.New("wishlist.repository: user not found")

	ErrBuildQuery = errors.New("wishlist.repository: failed to build query")
	ErrExecQuery  = errors.New("wishlist.repository: failed to execute query")
	ErrScanRow    = errors.New("wishlist.repository: failed to scan row")
)
