package search

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"smarthub/internal/domain"
	"smarthub/internal/hubapi"
	"smarthub/internal/session"
)

const BookingPagePath = "/booking"

type Service struct {
	backend Backend
	store   *session.Store
}

func NewService(backend Backend, store *session.Store) *Service {
	return &Service{backend: backend, store: store}
}

func (s *Service) Search(ctx context.Context, serviceType, location string) ([]hubapi.Provider, error) {
	providers, err := s.backend.SearchProviders(ctx, strings.TrimSpace(serviceType), strings.TrimSpace(location))
	if err != nil {
		return nil, err
	}
	if providers == nil {
		providers = []hubapi.Provider{}
	}
	return providers, nil
}

// Select stores the chosen provider as the client's pending booking.
func (s *Service) Select(ctx context.Context, clientID string, providerID int64) (*domain.PendingBooking, error) {
	p, err := s.backend.GetProviderProfile(ctx, providerID)
	if err != nil {
		return nil, err
	}

	pending := PendingFromProvider(p)
	if err := s.store.PutJSON(ctx, clientID, domain.StateKeyPendingBooking, pending); err != nil {
		return nil, fmt.Errorf("store pending booking: %w", err)
	}
	return pending, nil
}

// PendingFromProvider fills the booking hand-off with display defaults for
// missing fields.
func PendingFromProvider(p *hubapi.Provider) *domain.PendingBooking {
	pending := &domain.PendingBooking{
		ProviderID:   p.ProviderID,
		Service:      p.ServiceType,
		Rate:         FormatRate(p.Price),
		Location:     p.Location,
		ProviderName: p.FullName,
	}
	if pending.Service == "" {
		pending.Service = "Service"
	}
	if pending.Location == "" {
		pending.Location = "Not specified"
	}
	if pending.ProviderName == "" {
		pending.ProviderName = "Provider"
	}
	return pending
}

func FormatRate(price float64) string {
	return "₹" + strconv.FormatFloat(price, 'f', -1, 64)
}
