package domain

// Business validation constants
const (
	MinPasswordLength   = 8
	MaxTitleLength      = 255
	MaxLocationLength   = 255
	MaxNameLength       = 150
	MaxGalleryImages    = 50
	RecentBookingsLimit = 10
)

// ActiveStatuses статусы, занимающие даты объекта
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusCompleted,
}
