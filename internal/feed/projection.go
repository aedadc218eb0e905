package feed

import (
	"sync"

	"smarthub/internal/hubapi"
)

type ResolutionState string

const (
	ResolutionPending  ResolutionState = "PENDING"
	ResolutionResolved ResolutionState = "RESOLVED"
	ResolutionUnknown  ResolutionState = "UNKNOWN"
)

// Resolution is what the client currently believes about one booking.
type Resolution struct {
	State  ResolutionState
	Status string
}

// Projection caches bookingID → last observed status. It is best-effort and
// may be stale, with one exception: once this client decided a booking, a
// later PENDING observation does not bring the booking back to PENDING.
type Projection struct {
	mu       sync.RWMutex
	statuses map[int64]string
	decided  map[int64]struct{}
}

func NewProjection() *Projection {
	return &Projection{
		statuses: make(map[int64]string),
		decided:  make(map[int64]struct{}),
	}
}

func (p *Projection) Resolve(bookingID int64) Resolution {
	p.mu.RLock()
	status, ok := p.statuses[bookingID]
	p.mu.RUnlock()

	switch {
	case !ok || status == "":
		return Resolution{State: ResolutionUnknown}
	case status == hubapi.BookingPending:
		return Resolution{State: ResolutionPending, Status: status}
	default:
		return Resolution{State: ResolutionResolved, Status: status}
	}
}

// Observe records a status fetched from the backend.
func (p *Projection) Observe(bookingID int64, status string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, done := p.decided[bookingID]; done && status == hubapi.BookingPending {
		return
	}
	p.statuses[bookingID] = status
}

// Decide records a transition this client just performed.
func (p *Projection) Decide(bookingID int64, status string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.statuses[bookingID] = status
	p.decided[bookingID] = struct{}{}
}

// Retain drops every booking not in ids, so the cache only covers bookings
// the current notification list refers to.
func (p *Projection) Retain(ids []int64) {
	keep := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		keep[id] = struct{}{}
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	for id := range p.statuses {
		if _, ok := keep[id]; !ok {
			delete(p.statuses, id)
		}
	}
	for id := range p.decided {
		if _, ok := keep[id]; !ok {
			delete(p.decided, id)
		}
	}
}

// Statuses returns a copy of the cached map.
func (p *Projection) Statuses() map[int64]string {
	p.mu.RLock()
	defer p.mu.RUnlock()

	out := make(map[int64]string, len(p.statuses))
	for k, v := range p.statuses {
		out[k] = v
	}
	return out
}
