package feed

import (
	"time"

	"smarthub/internal/hubapi"
	"smarthub/internal/session"
)

type State string

const (
	StateIdle    State = "IDLE"
	StatePolling State = "POLLING"
	StateStopped State = "STOPPED"
)

// Item is one rendered notification row.
type Item struct {
	NotificationID   int64           `json:"notificationId"`
	Message          string          `json:"message"`
	Category         string          `json:"type"`
	Unread           bool            `json:"unread"`
	RelatedBookingID *int64          `json:"relatedBookingId,omitempty"`
	CreatedAt        string          `json:"createdAt"`
	Resolution       ResolutionState `json:"resolution,omitempty"`
	BookingStatus    string          `json:"bookingStatus,omitempty"`
	// Actionable means accept/reject controls are shown for this row.
	Actionable bool   `json:"actionable"`
	Badge      string `json:"badge,omitempty"`
}

type Snapshot struct {
	UserID      int64        `json:"userId"`
	Role        session.Role `json:"role"`
	State       State        `json:"state"`
	UnreadCount int          `json:"unreadCount"`
	Items       []Item       `json:"items"`
	RefreshedAt time.Time    `json:"refreshedAt"`
	LastError   string       `json:"lastError,omitempty"`
}

// UnreadCount counts notifications whose read state is UNREAD.
func UnreadCount(list []hubapi.Notification) int {
	n := 0
	for _, item := range list {
		if item.Unread() {
			n++
		}
	}
	return n
}

// RelatedBookingIDs returns the distinct booking ids referenced by list, in
// first-seen order.
func RelatedBookingIDs(list []hubapi.Notification) []int64 {
	seen := make(map[int64]struct{})
	var ids []int64
	for _, item := range list {
		if item.RelatedBookingID == nil {
			continue
		}
		id := *item.RelatedBookingID
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}

// Actionable decides whether accept/reject controls render for a row.
// Only providers act, only on booking requests, and only while the booking
// is known to be PENDING. failOpen additionally treats UNKNOWN as PENDING.
func Actionable(role session.Role, n hubapi.Notification, res Resolution, failOpen bool) bool {
	if role != session.RoleProvider || n.Type != hubapi.NotificationBookingRequest || n.RelatedBookingID == nil {
		return false
	}
	switch res.State {
	case ResolutionPending:
		return true
	case ResolutionUnknown:
		return failOpen
	default:
		return false
	}
}

const BadgeUnknown = "Status unknown"

// Badge is the label shown instead of the controls once a booking left
// PENDING.
func Badge(status string) string {
	switch status {
	case hubapi.BookingAccepted:
		return "✓ Accepted"
	case hubapi.BookingRejected:
		return "✗ Rejected"
	case hubapi.BookingCompleted:
		return "Completed"
	case hubapi.BookingCancelled:
		return "Cancelled"
	default:
		return ""
	}
}

func buildItems(role session.Role, list []hubapi.Notification, proj *Projection, failOpen bool) []Item {
	items := make([]Item, 0, len(list))
	for _, n := range list {
		item := Item{
			NotificationID:   n.NotificationID,
			Message:          n.Message,
			Category:         n.Type,
			Unread:           n.Unread(),
			RelatedBookingID: n.RelatedBookingID,
			CreatedAt:        n.CreatedAt,
		}
		if n.RelatedBookingID != nil {
			res := proj.Resolve(*n.RelatedBookingID)
			item.Resolution = res.State
			item.BookingStatus = res.Status
			item.Actionable = Actionable(role, n, res, failOpen)
			isRequest := role == session.RoleProvider && n.Type == hubapi.NotificationBookingRequest
			if isRequest && !item.Actionable {
				item.Badge = Badge(res.Status)
				if res.State == ResolutionUnknown {
					item.Badge = BadgeUnknown
				}
			}
		}
		items = append(items, item)
	}
	return items
}
