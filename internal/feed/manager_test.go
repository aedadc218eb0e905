package feed

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"smarthub/internal/hubapi"
	"smarthub/internal/session"
)

type recordingPublisher struct {
	mu       sync.Mutex
	messages map[string][]interface{}
}

func (p *recordingPublisher) SendToClient(clientID string, message interface{}) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.messages == nil {
		p.messages = make(map[string][]interface{})
	}
	p.messages[clientID] = append(p.messages[clientID], message)
	return true
}

func (p *recordingPublisher) count(clientID string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.messages[clientID])
}

type closingPublisher struct {
	recordingPublisher
	closed []string
}

func (p *closingPublisher) CloseClient(clientID string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = append(p.closed, clientID)
	return true
}

func quietBackend() *mockBackend {
	backend := new(mockBackend)
	backend.On("ListNotifications", mock.Anything, mock.Anything).Return([]hubapi.Notification{}, nil).Maybe()
	return backend
}

func TestManager_AdminNeverMounts(t *testing.T) {
	m := NewManager(quietBackend(), Options{Interval: time.Hour}, nil, time.Minute)
	defer m.Close()

	_, err := m.Mount("c1", &session.Session{ID: 1, Role: session.RoleAdmin})
	assert.ErrorIs(t, err, ErrNotMountable)
	assert.Equal(t, 0, m.Count())
}

func TestManager_MountReusesAndPublishes(t *testing.T) {
	pub := &recordingPublisher{}
	m := NewManager(quietBackend(), Options{Interval: time.Hour}, pub, time.Minute)
	defer m.Close()

	s := &session.Session{ID: 3, Role: session.RoleUser}
	f1, err := m.Mount("c1", s)
	require.NoError(t, err)
	f2, err := m.Mount("c1", s)
	require.NoError(t, err)
	assert.Same(t, f1, f2)
	assert.Equal(t, 1, m.Count())

	assert.Eventually(t, func() bool { return pub.count("c1") > 0 }, time.Second, 5*time.Millisecond)

	f3, err := m.Mount("c1", &session.Session{ID: 4, Role: session.RoleUser})
	require.NoError(t, err)
	assert.NotSame(t, f1, f3)
	assert.Eventually(t, func() bool { return f1.State() == StateStopped }, time.Second, 5*time.Millisecond)
}

func TestManager_LogoutUnmounts(t *testing.T) {
	m := NewManager(quietBackend(), Options{Interval: time.Hour}, nil, time.Minute)
	defer m.Close()

	provider := session.NewProvider(session.NewStore(session.NewMemoryKV()))
	unsubscribe := provider.Subscribe(m.HandleSessionEvent)
	defer unsubscribe()

	ctx := context.Background()
	s := &session.Session{ID: 3, Role: session.RoleUser}
	require.NoError(t, provider.Login(ctx, "c1", s))

	f, err := m.Mount("c1", s)
	require.NoError(t, err)

	require.NoError(t, provider.Logout(ctx, "c1"))
	assert.Equal(t, 0, m.Count())
	assert.Equal(t, StateStopped, f.State())
}

func TestManager_LogoutClosesSocket(t *testing.T) {
	pub := &closingPublisher{}
	m := NewManager(quietBackend(), Options{Interval: time.Hour}, pub, time.Minute)
	defer m.Close()

	_, err := m.Mount("c1", &session.Session{ID: 7, Role: session.RoleProvider})
	require.NoError(t, err)

	m.HandleSessionEvent(session.Event{Kind: session.EventLogout, ClientID: "c1"})
	assert.Equal(t, 0, m.Count())

	pub.mu.Lock()
	defer pub.mu.Unlock()
	assert.Equal(t, []string{"c1"}, pub.closed)
}

func TestManager_IdentityChangeUnmounts(t *testing.T) {
	m := NewManager(quietBackend(), Options{Interval: time.Hour}, nil, time.Minute)
	defer m.Close()

	_, err := m.Mount("c1", &session.Session{ID: 3, Role: session.RoleUser})
	require.NoError(t, err)

	m.HandleSessionEvent(session.Event{Kind: session.EventUpdate, ClientID: "c1", Session: &session.Session{ID: 3, Role: session.RoleUser, DisplayName: "New"}})
	assert.Equal(t, 1, m.Count())

	m.HandleSessionEvent(session.Event{Kind: session.EventLogin, ClientID: "c1", Session: &session.Session{ID: 1, Role: session.RoleAdmin}})
	assert.Equal(t, 0, m.Count())
}

func TestManager_Reap(t *testing.T) {
	m := NewManager(quietBackend(), Options{Interval: time.Hour}, nil, time.Minute)
	defer m.Close()

	now := time.Now()
	m.now = func() time.Time { return now }

	_, err := m.Mount("old", &session.Session{ID: 3, Role: session.RoleUser})
	require.NoError(t, err)

	now = now.Add(2 * time.Minute)
	_, err = m.Mount("fresh", &session.Session{ID: 4, Role: session.RoleUser})
	require.NoError(t, err)

	assert.Equal(t, 1, m.Reap())
	_, ok := m.Get("old")
	assert.False(t, ok)
	_, ok = m.Get("fresh")
	assert.True(t, ok)
}
