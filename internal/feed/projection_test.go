package feed

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"smarthub/internal/hubapi"
)

func TestProjection_Resolve(t *testing.T) {
	p := NewProjection()

	assert.Equal(t, Resolution{State: ResolutionUnknown}, p.Resolve(1))

	p.Observe(1, hubapi.BookingPending)
	assert.Equal(t, ResolutionPending, p.Resolve(1).State)

	p.Observe(1, hubapi.BookingCompleted)
	assert.Equal(t, Resolution{State: ResolutionResolved, Status: hubapi.BookingCompleted}, p.Resolve(1))
}

func TestProjection_DecidedNeverRegresses(t *testing.T) {
	p := NewProjection()
	p.Observe(42, hubapi.BookingPending)
	p.Decide(42, hubapi.BookingAccepted)

	p.Observe(42, hubapi.BookingPending)
	assert.Equal(t, hubapi.BookingAccepted, p.Resolve(42).Status)

	p.Observe(42, hubapi.BookingCompleted)
	assert.Equal(t, hubapi.BookingCompleted, p.Resolve(42).Status)
	assert.Equal(t, map[int64]string{42: hubapi.BookingCompleted}, p.Statuses())
}

func TestProjection_Retain(t *testing.T) {
	p := NewProjection()
	p.Observe(1, hubapi.BookingPending)
	p.Decide(2, hubapi.BookingAccepted)
	p.Decide(3, hubapi.BookingRejected)

	p.Retain([]int64{3})
	assert.Equal(t, map[int64]string{3: hubapi.BookingRejected}, p.Statuses())

	// 2 is no longer marked decided
	p.Observe(2, hubapi.BookingPending)
	assert.Equal(t, ResolutionPending, p.Resolve(2).State)

	p.Retain(nil)
	assert.Empty(t, p.Statuses())
}

func TestBadge(t *testing.T) {
	assert.Equal(t, "✓ Accepted", Badge(hubapi.BookingAccepted))
	assert.Equal(t, "✗ Rejected", Badge(hubapi.BookingRejected))
	assert.Equal(t, "Completed", Badge(hubapi.BookingCompleted))
	assert.Equal(t, "Cancelled", Badge(hubapi.BookingCancelled))
	assert.Empty(t, Badge(hubapi.BookingPaid))
	assert.Empty(t, Badge(""))
}

func TestRelatedBookingIDs_Distinct(t *testing.T) {
	list := []hubapi.Notification{
		{RelatedBookingID: id64(3)},
		{},
		{RelatedBookingID: id64(1)},
		{RelatedBookingID: id64(3)},
	}
	assert.Equal(t, []int64{3, 1}, RelatedBookingIDs(list))
	assert.Nil(t, RelatedBookingIDs(nil))
}
