package admin

import (
	"context"

	"smarthub/internal/hubapi"
)

type Backend interface {
	ListAccounts(ctx context.Context) ([]hubapi.Account, error)
	ListAllProviders(ctx context.Context) ([]hubapi.Provider, error)
	ListAllBookings(ctx context.Context) ([]hubapi.Booking, error)
	ListComplaints(ctx context.Context) ([]hubapi.Complaint, error)
	UpdateComplaint(ctx context.Context, complaintID int64, upd hubapi.ComplaintUpdate) (*hubapi.Complaint, error)
}
