package feed

import (
	"context"
	"sync"
	"time"

	"smarthub/internal/session"
)

// Publisher delivers snapshots to a browser client. *Hub implements it.
type Publisher interface {
	SendToClient(clientID string, message interface{}) bool
}

// Message is the websocket envelope for pushed snapshots.
type Message struct {
	Type string   `json:"type"`
	Data Snapshot `json:"data"`
}

const MessageSnapshot = "notifications.snapshot"

// socketCloser is implemented by publishers holding a live connection per
// client, such as *Hub.
type socketCloser interface {
	CloseClient(clientID string) bool
}

type mounted struct {
	feed     *Feed
	lastSeen time.Time
}

// Manager owns the feeds of all browser clients. A feed is mounted lazily on
// first use, unmounted on logout and reaped after IdleTimeout without use.
type Manager struct {
	backend     Backend
	opts        Options
	publisher   Publisher
	idleTimeout time.Duration

	ctx    context.Context
	cancel context.CancelFunc

	mu    sync.Mutex
	feeds map[string]*mounted
	now   func() time.Time
}

func NewManager(backend Backend, opts Options, publisher Publisher, idleTimeout time.Duration) *Manager {
	ctx, cancel := context.WithCancel(context.Background())
	if opts.Logf == nil {
		opts.Logf = func(string, ...interface{}) {}
	}
	return &Manager{
		backend:     backend,
		opts:        opts,
		publisher:   publisher,
		idleTimeout: idleTimeout,
		ctx:         ctx,
		cancel:      cancel,
		feeds:       make(map[string]*mounted),
		now:         time.Now,
	}
}

// Mount returns the client's running feed for s, starting one if needed.
// It returns ErrNotMountable for admins and sessions without an id.
func (m *Manager) Mount(clientID string, s *session.Session) (*Feed, error) {
	if !ShouldMount(s) {
		m.Unmount(clientID)
		return nil, ErrNotMountable
	}

	m.mu.Lock()
	if cur, ok := m.feeds[clientID]; ok {
		if cur.feed.UserID() == s.ID && cur.feed.Role() == s.Role {
			cur.lastSeen = m.now()
			m.mu.Unlock()
			return cur.feed, nil
		}
		delete(m.feeds, clientID)
		go cur.feed.Stop()
	}

	opts := m.opts
	if m.publisher != nil {
		opts.OnUpdate = func(snap Snapshot) {
			m.publisher.SendToClient(clientID, Message{Type: MessageSnapshot, Data: snap})
		}
	}
	f, err := New(m.backend, s, opts)
	if err != nil {
		m.mu.Unlock()
		return nil, err
	}
	m.feeds[clientID] = &mounted{feed: f, lastSeen: m.now()}
	m.mu.Unlock()

	f.Start(m.ctx)
	m.opts.Logf("level=info msg=feed_mounted client_id=%s user_id=%d role=%s", clientID, s.ID, s.Role)
	return f, nil
}

// Get returns the client's feed without mounting one.
func (m *Manager) Get(clientID string) (*Feed, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cur, ok := m.feeds[clientID]
	if !ok {
		return nil, false
	}
	cur.lastSeen = m.now()
	return cur.feed, true
}

// Touch marks the client's feed as in use.
func (m *Manager) Touch(clientID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if cur, ok := m.feeds[clientID]; ok {
		cur.lastSeen = m.now()
	}
}

func (m *Manager) Unmount(clientID string) {
	m.mu.Lock()
	cur, ok := m.feeds[clientID]
	delete(m.feeds, clientID)
	m.mu.Unlock()

	if ok {
		cur.feed.Stop()
		m.opts.Logf("level=info msg=feed_unmounted client_id=%s user_id=%d", clientID, cur.feed.UserID())
	}
}

func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.feeds)
}

// HandleSessionEvent keeps feeds in step with session changes.
func (m *Manager) HandleSessionEvent(ev session.Event) {
	switch ev.Kind {
	case session.EventLogout:
		m.Unmount(ev.ClientID)
		m.closeSocket(ev.ClientID)
	case session.EventLogin, session.EventUpdate:
		m.mu.Lock()
		cur, ok := m.feeds[ev.ClientID]
		m.mu.Unlock()
		if ok && (ev.Session == nil || cur.feed.UserID() != ev.Session.ID || cur.feed.Role() != ev.Session.Role) {
			m.Unmount(ev.ClientID)
			m.closeSocket(ev.ClientID)
		}
	}
}

// closeSocket drops the client's live connection; the browser reconnects
// under its new identity, if it has one.
func (m *Manager) closeSocket(clientID string) {
	if c, ok := m.publisher.(socketCloser); ok && c.CloseClient(clientID) {
		m.opts.Logf("level=info msg=feed_socket_closed client_id=%s", clientID)
	}
}

// Reap unmounts feeds idle for longer than the idle timeout and returns how
// many were removed.
func (m *Manager) Reap() int {
	if m.idleTimeout <= 0 {
		return 0
	}
	cutoff := m.now().Add(-m.idleTimeout)

	m.mu.Lock()
	var stale []*Feed
	for id, cur := range m.feeds {
		if cur.lastSeen.Before(cutoff) {
			stale = append(stale, cur.feed)
			delete(m.feeds, id)
		}
	}
	m.mu.Unlock()

	for _, f := range stale {
		f.Stop()
	}
	return len(stale)
}

// Run reaps idle feeds until ctx is done.
func (m *Manager) Run(ctx context.Context, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := m.Reap(); n > 0 {
				m.opts.Logf("level=info msg=feed_reaped count=%d", n)
			}
		}
	}
}

// Close stops every feed.
func (m *Manager) Close() {
	m.cancel()

	m.mu.Lock()
	feeds := m.feeds
	m.feeds = make(map[string]*mounted)
	m.mu.Unlock()

	for _, cur := range feeds {
		cur.feed.Stop()
	}
}
