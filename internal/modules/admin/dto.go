package admin

import "smarthub/internal/hubapi"

const (
	ComplaintOpen       = "OPEN"
	ComplaintInProgress = "IN_PROGRESS"
	ComplaintResolved   = "RESOLVED"
)

type Stats struct {
	TotalUsers       int `json:"totalUsers"`
	TotalProviders   int `json:"totalProviders"`
	TotalBookings    int `json:"totalBookings"`
	ActiveComplaints int `json:"activeComplaints"`
}

type Overview struct {
	Stats          Stats            `json:"stats"`
	RecentUsers    []hubapi.Account `json:"recentUsers"`
	RecentBookings []hubapi.Booking `json:"recentBookings"`
}

type UpdateComplaintRequest struct {
	Status   string `json:"status" validate:"required,oneof=OPEN IN_PROGRESS RESOLVED"`
	Response string `json:"response" validate:"max=2000"`
}
