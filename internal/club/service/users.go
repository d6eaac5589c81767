package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/malliaquatic/clubd/internal/club/domain"
	"github.com/malliaquatic/clubd/internal/club/store"
	"github.com/malliaquatic/clubd/pkg/idx"
	"github.com/malliaquatic/clubd/pkg/slogx"
)

// UserSummary is the member directory row served to admins. Password
// hashes never leave the service layer.
type UserSummary struct {
	DNI       string    `json:"dni"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// UserService covers the member directory and account removal.
type UserService struct {
	Store  store.Store
	Events *EventBus

	Now func() time.Time
}

func (s *UserService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

// List returns the registered member directory, newest first.
func (s *UserService) List(ctx context.Context) ([]UserSummary, error) {
	users, err := s.Store.Users().List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]UserSummary, 0, len(users))
	for _, u := range users {
		out = append(out, UserSummary{DNI: u.DNI, Name: u.Name, CreatedAt: u.CreatedAt})
	}
	return out, nil
}

// Unregister deletes a member account entirely: first a departure
// record, then the raffle entry if one exists, then the account. The
// writes are sequential and best-effort; a failure partway leaves
// earlier steps applied, and retrying completes the rest.
func (s *UserService) Unregister(ctx context.Context, dni string) error {
	log := slogx.FromContext(ctx)

	user, err := s.Store.Users().GetByDNI(ctx, dni)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	// Every account deletion shows up in the log, raffle entry or not.
	dep := domain.Departure{
		ID:     idx.New().String(),
		DNI:    dni,
		Name:   user.Name,
		LeftAt: s.now(),
	}
	if err := s.Store.Departures().Append(ctx, dep); err != nil {
		return fmt.Errorf("record departure: %w", err)
	}

	if err := s.Store.Participants().Delete(ctx, dni); err != nil && !errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("remove participant: %w", err)
	}

	if err := s.Store.Users().Delete(ctx, dni); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	log.Info("member unregistered", slog.String("dni", dni))

	if s.Events != nil {
		s.Events.Publish(Event{Topic: TopicParticipantsUpdated})
		s.Events.Publish(Event{Topic: TopicAuthChanged})
	}
	return nil
}
