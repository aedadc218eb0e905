package feed

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"smarthub/internal/hubapi"
	"smarthub/internal/session"
)

const DefaultInterval = 15 * time.Second

var (
	ErrNotMountable   = errors.New("feed is not available for this session")
	ErrNotProvider    = errors.New("only providers can decide booking requests")
	ErrNotActionable  = errors.New("booking is no longer pending")
	ErrDecisionFailed = errors.New("failed to update booking status")
)

// Backend is the subset of the hub API the feed talks to.
type Backend interface {
	ListNotifications(ctx context.Context, userID int64) ([]hubapi.Notification, error)
	MarkNotificationRead(ctx context.Context, notificationID int64) error
	MarkAllNotificationsRead(ctx context.Context, userID int64) error
	ListUserBookings(ctx context.Context, userID int64) ([]hubapi.Booking, error)
	ListProviderBookings(ctx context.Context, providerID int64) ([]hubapi.Booking, error)
	UpdateBookingStatus(ctx context.Context, bookingID int64, status string) (*hubapi.Booking, error)
}

type Options struct {
	Interval time.Duration
	// FailOpen shows accept/reject controls while a booking status is unknown.
	FailOpen bool
	// OnUpdate receives a snapshot after every refresh or decision.
	OnUpdate func(Snapshot)
	Logf     func(format string, args ...interface{})
}

// Feed is the notification feed of one signed-in, non-admin identity.
type Feed struct {
	backend Backend
	userID  int64
	role    session.Role
	opts    Options

	projection *Projection

	mu            sync.RWMutex
	state         State
	notifications []hubapi.Notification
	refreshedAt   time.Time
	lastErr       error

	cancel context.CancelFunc
	done   chan struct{}
}

// ShouldMount reports whether a feed exists for the session at all.
func ShouldMount(s *session.Session) bool {
	return s != nil && s.ID != 0 && s.Role != session.RoleAdmin
}

func New(backend Backend, s *session.Session, opts Options) (*Feed, error) {
	if !ShouldMount(s) {
		return nil, ErrNotMountable
	}
	if opts.Interval <= 0 {
		opts.Interval = DefaultInterval
	}
	if opts.Logf == nil {
		opts.Logf = func(string, ...interface{}) {}
	}
	return &Feed{
		backend:    backend,
		userID:     s.ID,
		role:       s.Role,
		opts:       opts,
		projection: NewProjection(),
		state:      StateIdle,
	}, nil
}

func (f *Feed) UserID() int64 { return f.userID }

func (f *Feed) Role() session.Role { return f.role }

func (f *Feed) State() State {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.state
}

// Start refreshes immediately and then on every interval until Stop or ctx
// cancellation. Starting a feed that is not idle is a no-op.
func (f *Feed) Start(ctx context.Context) {
	f.mu.Lock()
	if f.state != StateIdle {
		f.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(ctx)
	f.cancel = cancel
	f.done = make(chan struct{})
	f.state = StatePolling
	f.mu.Unlock()

	go f.loop(ctx)
}

func (f *Feed) loop(ctx context.Context) {
	done := f.done
	defer func() {
		f.mu.Lock()
		f.state = StateStopped
		f.mu.Unlock()
		close(done)
	}()

	ticker := time.NewTicker(f.opts.Interval)
	defer ticker.Stop()

	_ = f.Refresh(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			_ = f.Refresh(ctx)
		}
	}
}

// Stop cancels polling and waits for the loop to exit. Safe to call twice.
func (f *Feed) Stop() {
	f.mu.Lock()
	cancel, done := f.cancel, f.done
	f.cancel = nil
	f.state = StateStopped
	f.mu.Unlock()

	if cancel != nil {
		cancel()
		<-done
	}
}

// Refresh reloads the notification list and re-resolves related bookings.
// A failed list fetch keeps the previous list. A failed booking lookup keeps
// the previous projection.
func (f *Feed) Refresh(ctx context.Context) error {
	list, err := f.backend.ListNotifications(ctx, f.userID)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return err
		}
		f.opts.Logf("level=warn msg=feed_refresh_failed user_id=%d err=%v", f.userID, err)
		f.mu.Lock()
		f.lastErr = err
		f.mu.Unlock()
		return fmt.Errorf("refresh notifications: %w", err)
	}

	ids := RelatedBookingIDs(list)
	if len(ids) > 0 {
		f.resolve(ctx, ids)
	}
	f.projection.Retain(ids)

	f.mu.Lock()
	f.notifications = list
	f.refreshedAt = time.Now()
	f.lastErr = nil
	f.mu.Unlock()

	f.publish()
	return nil
}

// resolve fetches the owner's booking list once and projects the statuses of
// the referenced bookings.
func (f *Feed) resolve(ctx context.Context, ids []int64) {
	var (
		bookings []hubapi.Booking
		err      error
	)
	if f.role == session.RoleProvider {
		bookings, err = f.backend.ListProviderBookings(ctx, f.userID)
	} else {
		bookings, err = f.backend.ListUserBookings(ctx, f.userID)
	}
	if err != nil {
		f.opts.Logf("level=warn msg=feed_booking_lookup_failed user_id=%d bookings=%d err=%v", f.userID, len(ids), err)
		return
	}

	byID := make(map[int64]string, len(bookings))
	for _, b := range bookings {
		byID[b.BookingID] = b.Status
	}
	for _, id := range ids {
		if status, ok := byID[id]; ok {
			f.projection.Observe(id, status)
		}
	}
}

// MarkRead marks one notification read and refreshes.
func (f *Feed) MarkRead(ctx context.Context, notificationID int64) error {
	if err := f.backend.MarkNotificationRead(ctx, notificationID); err != nil {
		return fmt.Errorf("mark notification %d read: %w", notificationID, err)
	}
	return f.Refresh(ctx)
}

func (f *Feed) MarkAllRead(ctx context.Context) error {
	if err := f.backend.MarkAllNotificationsRead(ctx, f.userID); err != nil {
		return fmt.Errorf("mark all notifications read: %w", err)
	}
	return f.Refresh(ctx)
}

func (f *Feed) Accept(ctx context.Context, bookingID, notificationID int64) error {
	return f.decide(ctx, bookingID, notificationID, hubapi.BookingAccepted)
}

func (f *Feed) Reject(ctx context.Context, bookingID, notificationID int64) error {
	return f.decide(ctx, bookingID, notificationID, hubapi.BookingRejected)
}

func (f *Feed) decide(ctx context.Context, bookingID, notificationID int64, status string) error {
	if f.role != session.RoleProvider {
		return ErrNotProvider
	}
	res := f.projection.Resolve(bookingID)
	if res.State == ResolutionUnknown {
		// not seen yet, e.g. a fresh mount racing its first refresh
		f.resolve(ctx, []int64{bookingID})
		res = f.projection.Resolve(bookingID)
	}
	if res.State == ResolutionResolved || (res.State == ResolutionUnknown && !f.opts.FailOpen) {
		return ErrNotActionable
	}

	if _, err := f.backend.UpdateBookingStatus(ctx, bookingID, status); err != nil {
		f.opts.Logf("level=error msg=feed_decision_failed booking_id=%d status=%s err=%v", bookingID, status, err)
		return fmt.Errorf("%w: %v", ErrDecisionFailed, err)
	}

	f.projection.Decide(bookingID, status)
	f.publish()
	f.opts.Logf("level=info msg=feed_decision booking_id=%d status=%s", bookingID, status)

	if err := f.MarkRead(ctx, notificationID); err != nil {
		f.opts.Logf("level=warn msg=feed_mark_read_after_decision_failed notification_id=%d err=%v", notificationID, err)
	}
	return nil
}

// Record applies a status change made outside the feed, such as from the
// booking requests page.
func (f *Feed) Record(bookingID int64, status string) {
	f.projection.Decide(bookingID, status)
	f.publish()
}

// Snapshot renders the current view.
func (f *Feed) Snapshot() Snapshot {
	f.mu.RLock()
	list := f.notifications
	snap := Snapshot{
		UserID:      f.userID,
		Role:        f.role,
		State:       f.state,
		RefreshedAt: f.refreshedAt,
	}
	if f.lastErr != nil {
		snap.LastError = f.lastErr.Error()
	}
	f.mu.RUnlock()

	snap.UnreadCount = UnreadCount(list)
	snap.Items = buildItems(f.role, list, f.projection, f.opts.FailOpen)
	return snap
}

func (f *Feed) publish() {
	if f.opts.OnUpdate != nil {
		f.opts.OnUpdate(f.Snapshot())
	}
}
