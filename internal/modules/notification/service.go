package notification

import (
	"context"
	"errors"

	"smarthub/internal/feed"
	"smarthub/internal/session"
)

// Service routes feed operations to the client's mounted feed.
type Service struct {
	feeds *feed.Manager
}

func NewService(feeds *feed.Manager) *Service {
	return &Service{feeds: feeds}
}

func (s *Service) feed(clientID string, sess *session.Session) (*feed.Feed, error) {
	f, err := s.feeds.Mount(clientID, sess)
	if errors.Is(err, feed.ErrNotMountable) {
		return nil, ErrNoFeed
	}
	return f, err
}

// Snapshot returns the current view, refreshing first when the feed has not
// completed a refresh yet.
func (s *Service) Snapshot(ctx context.Context, clientID string, sess *session.Session) (feed.Snapshot, error) {
	f, err := s.feed(clientID, sess)
	if err != nil {
		return feed.Snapshot{}, err
	}
	if f.Snapshot().RefreshedAt.IsZero() {
		if err := f.Refresh(ctx); err != nil {
			return f.Snapshot(), err
		}
	}
	return f.Snapshot(), nil
}

func (s *Service) Refresh(ctx context.Context, clientID string, sess *session.Session) (feed.Snapshot, error) {
	f, err := s.feed(clientID, sess)
	if err != nil {
		return feed.Snapshot{}, err
	}
	err = f.Refresh(ctx)
	return f.Snapshot(), err
}

func (s *Service) MarkRead(ctx context.Context, clientID string, sess *session.Session, notificationID int64) (feed.Snapshot, error) {
	f, err := s.feed(clientID, sess)
	if err != nil {
		return feed.Snapshot{}, err
	}
	err = f.MarkRead(ctx, notificationID)
	return f.Snapshot(), err
}

func (s *Service) MarkAllRead(ctx context.Context, clientID string, sess *session.Session) (feed.Snapshot, error) {
	f, err := s.feed(clientID, sess)
	if err != nil {
		return feed.Snapshot{}, err
	}
	err = f.MarkAllRead(ctx)
	return f.Snapshot(), err
}

func (s *Service) Accept(ctx context.Context, clientID string, sess *session.Session, bookingID, notificationID int64) (feed.Snapshot, error) {
	f, err := s.feed(clientID, sess)
	if err != nil {
		return feed.Snapshot{}, err
	}
	err = f.Accept(ctx, bookingID, notificationID)
	return f.Snapshot(), err
}

func (s *Service) Reject(ctx context.Context, clientID string, sess *session.Session, bookingID, notificationID int64) (feed.Snapshot, error) {
	f, err := s.feed(clientID, sess)
	if err != nil {
		return feed.Snapshot{}, err
	}
	err = f.Reject(ctx, bookingID, notificationID)
	return f.Snapshot(), err
}

// Drop unmounts the client's feed.
func (s *Service) Drop(clientID string) {
	s.feeds.Unmount(clientID)
}

func (s *Service) Touch(clientID string) {
	s.feeds.Touch(clientID)
}
