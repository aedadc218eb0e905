package session

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"smarthub/internal/domain"
)

type Store struct {
	kv KV
}

func NewStore(kv KV) *Store {
	return &Store{kv: kv}
}

// Load returns the session for clientID. A missing, unreadable or corrupt
// record all read as "no session"; the cause is only logged.
func (s *Store) Load(ctx context.Context, clientID string) (*Session, bool) {
	raw, ok, err := s.kv.Get(ctx, clientID, domain.StateKeySession)
	if err != nil {
		log.Printf("session_load_failed client_id=%s error=%q", clientID, err)
		return nil, false
	}
	if !ok || raw == "" {
		return nil, false
	}

	var sess Session
	if err := json.Unmarshal([]byte(raw), &sess); err != nil {
		log.Printf("session_corrupt client_id=%s error=%q", clientID, err)
		return nil, false
	}
	return &sess, true
}

// Save overwrites the whole record.
func (s *Store) Save(ctx context.Context, clientID string, sess *Session) error {
	if sess == nil {
		return ErrNoSession
	}
	if sess.ID == 0 {
		return ErrMissingID
	}
	if _, err := ParseRole(string(sess.Role)); err != nil {
		return err
	}
	return s.PutJSON(ctx, clientID, domain.StateKeySession, sess)
}

func (s *Store) Clear(ctx context.Context, clientID string) error {
	return s.kv.Delete(ctx, clientID, domain.StateKeySession)
}

// PutJSON stores a hand-off payload such as pendingBooking.
func (s *Store) PutJSON(ctx context.Context, clientID, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return s.kv.Set(ctx, clientID, key, string(data))
}

// GetJSON decodes a hand-off payload into out. ok is false when the key is
// absent or does not decode.
func (s *Store) GetJSON(ctx context.Context, clientID, key string, out any) (bool, error) {
	raw, ok, err := s.kv.Get(ctx, clientID, key)
	if err != nil {
		return false, err
	}
	if !ok || raw == "" {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		log.Printf("client_state_corrupt client_id=%s key=%s error=%q", clientID, key, err)
		return false, nil
	}
	return true, nil
}

func (s *Store) Delete(ctx context.Context, clientID, key string) error {
	return s.kv.Delete(ctx, clientID, key)
}
