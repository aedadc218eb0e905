package hubapi

// Booking lifecycle: PENDING → ACCEPTED/REJECTED → COMPLETED → PAID, or CANCELLED.
const (
	BookingPending   = "PENDING"
	BookingAccepted  = "ACCEPTED"
	BookingConfirmed = "CONFIRMED"
	BookingRejected  = "REJECTED"
	BookingCompleted = "COMPLETED"
	BookingPaid      = "PAID"
	BookingCancelled = "CANCELLED"
)

const (
	NotificationUnread = "UNREAD"
	NotificationRead   = "READ"

	NotificationBookingRequest  = "BOOKING_REQUEST"
	NotificationBookingAccepted = "BOOKING_ACCEPTED"
	NotificationBookingRejected = "BOOKING_REJECTED"
)

// Backend role names. The backend calls providers SERVICE_PROVIDER.
const (
	RoleUser            = "USER"
	RoleServiceProvider = "SERVICE_PROVIDER"
	RoleAdmin           = "ADMIN"
)

type Notification struct {
	NotificationID   int64  `json:"notificationId"`
	ReceiverID       int64  `json:"receiverId"`
	ReceiverType     string `json:"receiverType"`
	Message          string `json:"message"`
	Type             string `json:"type"`
	Status           string `json:"status"`
	RelatedBookingID *int64 `json:"relatedBookingId,omitempty"`
	CreatedAt        string `json:"createdAt"`
}

func (n Notification) Unread() bool {
	return n.Status == NotificationUnread
}

type Booking struct {
	BookingID   int64  `json:"bookingId"`
	UserID      int64  `json:"userId"`
	ProviderID  int64  `json:"providerId"`
	ServiceType string `json:"serviceType"`
	BookingDate string `json:"bookingDate"`
	BookingTime string `json:"bookingTime"`
	Status      string `json:"status"`
	CreatedAt   string `json:"createdAt,omitempty"`
}

type Provider struct {
	ProviderID   int64   `json:"providerId"`
	HomeID       int64   `json:"homeId,omitempty"`
	FullName     string  `json:"fullName"`
	Email        string  `json:"email,omitempty"`
	Mobile       string  `json:"mobile,omitempty"`
	ServiceType  string  `json:"serviceType"`
	Experience   int     `json:"experience"`
	Price        float64 `json:"price"`
	Availability string  `json:"availability,omitempty"`
	Location     string  `json:"location,omitempty"`
	CreatedAt    string  `json:"createdAt,omitempty"`
}

type ProviderUpdate struct {
	FullName     string  `json:"fullName,omitempty"`
	Email        string  `json:"email,omitempty"`
	Mobile       string  `json:"mobile,omitempty"`
	ServiceType  string  `json:"serviceType,omitempty"`
	Experience   int     `json:"experience,omitempty"`
	Price        float64 `json:"price,omitempty"`
	Availability string  `json:"availability,omitempty"`
	Location     string  `json:"location,omitempty"`
}

type Review struct {
	ReviewID   int64  `json:"reviewId"`
	BookingID  int64  `json:"bookingId"`
	UserID     int64  `json:"userId"`
	ProviderID int64  `json:"providerId"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment"`
	CreatedAt  string `json:"createdAt,omitempty"`
}

type Complaint struct {
	ComplaintID int64  `json:"complaintId"`
	UserID      int64  `json:"userId"`
	ProviderID  int64  `json:"providerId"`
	Message     string `json:"message"`
	Status      string `json:"status"`
	Response    string `json:"response,omitempty"`
	CreatedAt   string `json:"createdAt,omitempty"`
}

// Account is a row of the admin user table.
type Account struct {
	ID        int64  `json:"id"`
	FullName  string `json:"fullName"`
	Email     string `json:"email,omitempty"`
	Mobile    string `json:"mobile"`
	Role      string `json:"role"`
	CreatedAt string `json:"createdAt,omitempty"`
}

type LoginRequest struct {
	Mobile   string `json:"mobile"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type SignupRequest struct {
	FullName     string `json:"fullName"`
	Mobile       string `json:"mobile"`
	Email        string `json:"email,omitempty"`
	Password     string `json:"password"`
	Role         string `json:"role"`
	ServiceType  string `json:"serviceType,omitempty"`
	Experience   int    `json:"experience,omitempty"`
	Price        string `json:"price,omitempty"`
	Availability string `json:"availability,omitempty"`
	Location     string `json:"location,omitempty"`
}

type AuthResponse struct {
	Message     string `json:"message"`
	Role        string `json:"role"`
	RedirectURL string `json:"redirectUrl"`
	ID          int64  `json:"id"`
	FullName    string `json:"fullName,omitempty"`
	Email       string `json:"email,omitempty"`
	Mobile      string `json:"mobile,omitempty"`
}

type BookingRequest struct {
	UserID      int64  `json:"userId"`
	ProviderID  int64  `json:"providerId"`
	ServiceType string `json:"serviceType"`
	BookingDate string `json:"bookingDate"`
	BookingTime string `json:"bookingTime"`
}

type ReviewRequest struct {
	BookingID  int64  `json:"bookingId"`
	UserID     int64  `json:"userId"`
	ProviderID int64  `json:"providerId"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment"`
}

type ComplaintRequest struct {
	UserID     int64  `json:"userId"`
	ProviderID int64  `json:"providerId"`
	Message    string `json:"message"`
}

type ComplaintUpdate struct {
	Status   string `json:"status"`
	Response string `json:"response,omitempty"`
}

type statusBody struct {
	Status string `json:"status"`
}
