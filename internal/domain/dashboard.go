package domain

// DashboardStats сводка для администратора
type DashboardStats struct {
	TotalProperties    int64
	FeaturedProperties int64
	TotalUsers         int64
	TotalBookings      int64
	TotalWishlist      int64
	RecentBookings     []*Booking
}
