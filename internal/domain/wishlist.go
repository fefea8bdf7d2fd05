package domain

import "time"

// WishlistEntry пара (пользователь, объект), уникальная в рамках БД
type WishlistEntry struct {
	ID         int64
	UserID     int64
	PropertyID int64
	Property   *Property
	CreatedAt  time.Time
}
