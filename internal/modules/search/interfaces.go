package search

import (
	"context"

	"smarthub/internal/hubapi"
)

type Backend interface {
	SearchProviders(ctx context.Context, serviceType, location string) ([]hubapi.Provider, error)
	GetProviderProfile(ctx context.Context, providerID int64) (*hubapi.Provider, error)
}
