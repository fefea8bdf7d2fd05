package domain

import "time"

// Identity аутентифицированный пользователь из bearer токена
type Identity struct {
	UserID    int64
	Email     string
	IsAdmin   bool
	TokenID   string
	ExpiresAt time.Time
}

// CanAccessBooking владелец или администратор
func (i *Identity) CanAccessBooking(b *Booking) bool {
	return i.IsAdmin || b.IsOwnedBy(i.UserID)
}
