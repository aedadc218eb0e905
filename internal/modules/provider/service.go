package provider

import (
	"context"
	"fmt"
	"strings"

	"smarthub/internal/hubapi"
	"smarthub/internal/modules/review"
)

const recentLimit = 5

// transitions lists the statuses a provider may move a booking to.
var transitions = map[string][]string{
	hubapi.BookingPending:  {hubapi.BookingAccepted, hubapi.BookingRejected},
	hubapi.BookingAccepted: {hubapi.BookingCompleted},
}

type Service struct {
	backend Backend
	feeds   FeedLookup
	loggerf func(format string, args ...interface{})
}

func NewService(backend Backend, feeds FeedLookup, loggerf func(format string, args ...interface{})) *Service {
	if loggerf == nil {
		loggerf = func(string, ...interface{}) {}
	}
	return &Service{backend: backend, feeds: feeds, loggerf: loggerf}
}

func (s *Service) Profile(ctx context.Context, providerID int64) (*hubapi.Provider, error) {
	return s.backend.GetProviderProfile(ctx, providerID)
}

func (s *Service) UpdateProfile(ctx context.Context, providerID int64, req UpdateProfileRequest) (*hubapi.Provider, error) {
	return s.backend.UpdateProviderProfile(ctx, providerID, hubapi.ProviderUpdate{
		FullName:     strings.TrimSpace(req.FullName),
		Email:        strings.TrimSpace(req.Email),
		Mobile:       strings.TrimSpace(req.Mobile),
		ServiceType:  strings.TrimSpace(req.ServiceType),
		Experience:   req.Experience,
		Price:        req.Price,
		Availability: strings.TrimSpace(req.Availability),
		Location:     strings.TrimSpace(req.Location),
	})
}

func (s *Service) Bookings(ctx context.Context, providerID int64) (*BookingsView, error) {
	bookings, err := s.backend.ListProviderBookings(ctx, providerID)
	if err != nil {
		return nil, err
	}
	rows := make([]BookingRow, 0, len(bookings))
	for _, b := range bookings {
		rows = append(rows, toRow(b))
	}
	return &BookingsView{Bookings: rows, Stats: ComputeStats(bookings)}, nil
}

// Dashboard loads the profile and bookings; reviews are best effort.
func (s *Service) Dashboard(ctx context.Context, providerID int64) (*DashboardView, error) {
	profile, err := s.backend.GetProviderProfile(ctx, providerID)
	if err != nil {
		return nil, err
	}
	view, err := s.Bookings(ctx, providerID)
	if err != nil {
		return nil, err
	}

	recent := view.Bookings
	if len(recent) > recentLimit {
		recent = recent[len(recent)-recentLimit:]
	}
	out := &DashboardView{Profile: profile, Stats: view.Stats, Recent: recent}

	if reviews, err := s.backend.ListProviderReviews(ctx, providerID); err != nil {
		s.loggerf("level=warn msg=provider_reviews_unavailable provider_id=%d err=%v", providerID, err)
	} else {
		out.Reviews = review.Summarize(reviews)
	}
	return out, nil
}

func (s *Service) Reviews(ctx context.Context, providerID int64) (*review.Summary, error) {
	reviews, err := s.backend.ListProviderReviews(ctx, providerID)
	if err != nil {
		return nil, err
	}
	return review.Summarize(reviews), nil
}

// SetStatus moves one of the provider's bookings to status. The browser's
// notification feed, when mounted, learns the decision immediately.
func (s *Service) SetStatus(ctx context.Context, clientID string, providerID, bookingID int64, status string) (*StatusResult, error) {
	bookings, err := s.backend.ListProviderBookings(ctx, providerID)
	if err != nil {
		return nil, err
	}

	var current *hubapi.Booking
	for i := range bookings {
		if bookings[i].BookingID == bookingID {
			current = &bookings[i]
			break
		}
	}
	if current == nil {
		return nil, ErrBookingNotFound
	}
	if !allowed(current.Status, status) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current.Status, status)
	}

	updated, err := s.backend.UpdateBookingStatus(ctx, bookingID, status)
	if err != nil {
		return nil, err
	}
	if updated == nil || updated.BookingID == 0 {
		copied := *current
		copied.Status = status
		updated = &copied
	}

	if s.feeds != nil {
		if f, ok := s.feeds.Get(clientID); ok && f.UserID() == providerID {
			f.Record(bookingID, status)
		}
	}
	s.loggerf("level=info msg=booking_status_set booking_id=%d provider_id=%d status=%s", bookingID, providerID, status)

	return &StatusResult{Booking: updated, Message: "Booking " + strings.ToLower(status)}, nil
}

// Actions lists the status targets for a booking in its current status.
func Actions(status string) []string {
	next := transitions[status]
	out := make([]string, len(next))
	copy(out, next)
	return out
}

func allowed(from, to string) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

func ComputeStats(bookings []hubapi.Booking) Stats {
	st := Stats{Total: len(bookings)}
	for _, b := range bookings {
		switch b.Status {
		case hubapi.BookingCompleted:
			st.Completed++
		case hubapi.BookingPending:
			st.Pending++
		}
	}
	return st
}

func toRow(b hubapi.Booking) BookingRow {
	label := ""
	if b.Status != "" {
		label = b.Status[:1] + strings.ToLower(b.Status[1:])
	}
	return BookingRow{Booking: b, StatusLabel: label, Actions: Actions(b.Status)}
}
