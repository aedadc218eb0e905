package admin

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"smarthub/internal/hubapi"
)

const recentLimit = 5

type Service struct {
	backend Backend
}

func NewService(backend Backend) *Service {
	return &Service{backend: backend}
}

// Overview loads the four admin tables in parallel and summarises them.
// Any failed fetch fails the whole overview.
func (s *Service) Overview(ctx context.Context) (*Overview, error) {
	var (
		users      []hubapi.Account
		providers  []hubapi.Provider
		bookings   []hubapi.Booking
		complaints []hubapi.Complaint
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		users, err = s.backend.ListAccounts(gctx)
		return err
	})
	g.Go(func() (err error) {
		providers, err = s.backend.ListAllProviders(gctx)
		return err
	})
	g.Go(func() (err error) {
		bookings, err = s.backend.ListAllBookings(gctx)
		return err
	})
	g.Go(func() (err error) {
		complaints, err = s.backend.ListComplaints(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Overview{
		Stats: Stats{
			TotalUsers:       len(users),
			TotalProviders:   len(providers),
			TotalBookings:    len(bookings),
			ActiveComplaints: countActive(complaints),
		},
		RecentUsers:    lastReversed(users, recentLimit),
		RecentBookings: lastReversed(bookings, recentLimit),
	}, nil
}

func (s *Service) Users(ctx context.Context) ([]hubapi.Account, error) {
	users, err := s.backend.ListAccounts(ctx)
	return orEmpty(users, err)
}

func (s *Service) Providers(ctx context.Context) ([]hubapi.Provider, error) {
	providers, err := s.backend.ListAllProviders(ctx)
	return orEmpty(providers, err)
}

func (s *Service) Bookings(ctx context.Context) ([]hubapi.Booking, error) {
	bookings, err := s.backend.ListAllBookings(ctx)
	return orEmpty(bookings, err)
}

func (s *Service) Complaints(ctx context.Context) ([]hubapi.Complaint, error) {
	complaints, err := s.backend.ListComplaints(ctx)
	return orEmpty(complaints, err)
}

func (s *Service) UpdateComplaint(ctx context.Context, id int64, req UpdateComplaintRequest) (*hubapi.Complaint, error) {
	return s.backend.UpdateComplaint(ctx, id, hubapi.ComplaintUpdate{
		Status:   req.Status,
		Response: strings.TrimSpace(req.Response),
	})
}

// countActive counts open complaints; older records use "Active".
func countActive(complaints []hubapi.Complaint) int {
	n := 0
	for _, c := range complaints {
		if c.Status == ComplaintOpen || c.Status == "Active" {
			n++
		}
	}
	return n
}

// lastReversed returns up to n trailing elements, newest first.
func lastReversed[T any](items []T, n int) []T {
	if len(items) < n {
		n = len(items)
	}
	out := make([]T, 0, n)
	for i := len(items) - 1; i >= len(items)-n; i-- {
		out = append(out, items[i])
	}
	return out
}

func orEmpty[T any](items []T, err error) ([]T, error) {
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}
