package session

import (
	"context"
	"sync"
)

type EventKind string

const (
	EventLogin  EventKind = "login"
	EventUpdate EventKind = "update"
	EventLogout EventKind = "logout"
)

// Event is published whenever a client's identity changes. Session is nil
// for EventLogout.
type Event struct {
	Kind     EventKind
	ClientID string
	Session  *Session
}

// Provider is the one place identity is read and changed. Request handling
// reads through Current; everything that must react to login or logout
// subscribes instead of re-reading storage.
type Provider struct {
	store *Store

	mu     sync.RWMutex
	nextID int
	subs   map[int]func(Event)
}

func NewProvider(store *Store) *Provider {
	return &Provider{
		store: store,
		subs:  make(map[int]func(Event)),
	}
}

func (p *Provider) Store() *Store {
	return p.store
}

func (p *Provider) Current(ctx context.Context, clientID string) (*Session, bool) {
	return p.store.Load(ctx, clientID)
}

func (p *Provider) Login(ctx context.Context, clientID string, sess *Session) error {
	if err := p.store.Save(ctx, clientID, sess); err != nil {
		return err
	}
	p.publish(Event{Kind: EventLogin, ClientID: clientID, Session: sess})
	return nil
}

// Update overwrites the record wholesale, as profile edits do.
func (p *Provider) Update(ctx context.Context, clientID string, sess *Session) error {
	if err := p.store.Save(ctx, clientID, sess); err != nil {
		return err
	}
	p.publish(Event{Kind: EventUpdate, ClientID: clientID, Session: sess})
	return nil
}

func (p *Provider) Logout(ctx context.Context, clientID string) error {
	if err := p.store.Clear(ctx, clientID); err != nil {
		return err
	}
	p.publish(Event{Kind: EventLogout, ClientID: clientID})
	return nil
}

// Subscribe registers fn for every future event. fn runs synchronously on
// the goroutine that changed the session and must not block.
func (p *Provider) Subscribe(fn func(Event)) (unsubscribe func()) {
	p.mu.Lock()
	id := p.nextID
	p.nextID++
	p.subs[id] = fn
	p.mu.Unlock()

	return func() {
		p.mu.Lock()
		delete(p.subs, id)
		p.mu.Unlock()
	}
}

func (p *Provider) publish(ev Event) {
	p.mu.RLock()
	fns := make([]func(Event), 0, len(p.subs))
	for _, fn := range p.subs {
		fns = append(fns, fn)
	}
	p.mu.RUnlock()

	for _, fn := range fns {
		fn(ev)
	}
}
