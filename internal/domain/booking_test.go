package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-RealEstateService/pkg/types"
)

func TestBookingStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from, to BookingStatus
		allowed  bool
	}{
		{StatusPending, StatusCompleted, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusPending, false},
		{StatusCompleted, StatusCancelled, false},
		{StatusCompleted, StatusPending, false},
		{StatusCancelled, StatusCompleted, false},
		{StatusCancelled, StatusPending, false},
		{BookingStatus("confirmed"), StatusCompleted, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestBookingStatus_IsValid(t *testing.T) {
	assert.True(t, StatusPending.IsValid())
	assert.True(t, StatusCancelled.IsValid())
	assert.False(t, BookingStatus("confirmed").IsValid())
	assert.True(t, StatusCompleted.IsTerminal())
	assert.False(t, StatusPending.IsTerminal())
}

func TestActiveStatuses_ExcludeCancelled(t *testing.T) {
	assert.ElementsMatch(t, []BookingStatus{StatusPending, StatusCompleted}, ActiveStatuses)
	assert.NotContains(t, ActiveStatuses, StatusCancelled)
}

func TestIdentity_CanAccessBooking(t *testing.T) {
	b := &Booking{UserID: 7, CheckIn: types.NewDate(2024, time.June, 1), CheckOut: types.NewDate(2024, time.June, 4)}

	assert.True(t, (&Identity{UserID: 7}).CanAccessBooking(b))
	assert.True(t, (&Identity{UserID: 1, IsAdmin: true}).CanAccessBooking(b))
	assert.False(t, (&Identity{UserID: 8}).CanAccessBooking(b))
	assert.Equal(t, 3, b.Nights())
}

func TestProperty_CloneIsDeep(t *testing.T) {
	img := "/media/a.jpg"
	p := &Property{ID: 1, Image: &img, Gallery: []string{"/media/b.jpg"}}

	cp := p.Clone()
	*cp.Image = "/media/changed.jpg"
	cp.Gallery[0] = "/media/changed.jpg"

	assert.Equal(t, "/media/a.jpg", *p.Image)
	assert.Equal(t, "/media/b.jpg", p.Gallery[0])
}
