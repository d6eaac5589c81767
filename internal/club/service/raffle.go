package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/malliaquatic/clubd/internal/club/domain"
	"github.com/malliaquatic/clubd/internal/club/store"
	"github.com/malliaquatic/clubd/pkg/slogx"
)

var (
	ErrNotJoined      = errors.New("not_joined")
	ErrNoParticipants = errors.New("no_participants")
	ErrWinnerExists   = errors.New("winner_exists")
	ErrUserNotFound   = errors.New("user_not_found")
)

// RaffleStatus is the polling-free summary of the raffle.
type RaffleStatus struct {
	ParticipantCount int            `json:"participantCount"`
	OnlineCount      int            `json:"onlineCount"`
	Joined           bool           `json:"joined"`
	YouWon           bool           `json:"youWon"`
	Winner           *domain.Winner `json:"winner"`
}

// RaffleService runs the daily raffle: entries, presence heartbeats,
// departures and the draw itself.
type RaffleService struct {
	Store  store.Store
	Config *ConfigService
	Events *EventBus

	// Now is swappable for tests; defaults to time.Now.
	Now func() time.Time

	// DepartureRetention caps how many departure records admin listings
	// return. Zero means DefaultDepartureRetention.
	DepartureRetention int

	// drawMu serialises draws against each other. The draw itself is
	// still a read-then-write without a transaction, so a participant
	// leaving mid-draw can win after leaving. That behaviour is part of
	// the raffle's published rules ("no need to keep the app open").
	drawMu sync.Mutex
}

func (s *RaffleService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

// Join enters the member into the raffle. Re-joining replaces the entry
// and restarts its joined-at clock.
func (s *RaffleService) Join(ctx context.Context, dni string) (domain.ParticipantView, error) {
	user, err := s.Store.Users().GetByDNI(ctx, dni)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.ParticipantView{}, ErrUserNotFound
		}
		return domain.ParticipantView{}, err
	}

	now := s.now()
	p := domain.Participant{DNI: dni, JoinedAt: now, LastSeenAt: now}
	if err := s.Store.Participants().Upsert(ctx, p); err != nil {
		return domain.ParticipantView{}, fmt.Errorf("persist participant: %w", err)
	}

	slogx.FromContext(ctx).Info("raffle join", slog.String("dni", dni))
	s.publishParticipants()

	return domain.ParticipantView{
		DNI:        dni,
		Name:       user.Name,
		JoinedAt:   p.JoinedAt,
		LastSeenAt: p.LastSeenAt,
		Online:     true,
	}, nil
}

// Heartbeat refreshes the member's presence. It is a strict no-op when
// the member is not in the raffle: a departed entry must never come back
// because a stale tab kept pinging.
func (s *RaffleService) Heartbeat(ctx context.Context, dni string) error {
	return s.Store.Participants().Touch(ctx, dni, s.now())
}

// Leave removes the member's entry. Leaving the raffle is not a club
// departure; only account deletion writes to the departure log.
func (s *RaffleService) Leave(ctx context.Context, dni string) error {
	if _, err := s.Store.Participants().Get(ctx, dni); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotJoined
		}
		return err
	}

	if err := s.Store.Participants().Delete(ctx, dni); err != nil {
		return fmt.Errorf("remove participant: %w", err)
	}

	slogx.FromContext(ctx).Info("raffle leave", slog.String("dni", dni))
	s.publishParticipants()
	return nil
}

// Participants lists current entries hydrated with member names and a
// presence flag computed against the online window.
func (s *RaffleService) Participants(ctx context.Context) ([]domain.ParticipantView, error) {
	now := s.now()

	views, err := s.Store.Participants().ListWithNames(ctx)
	if err == nil {
		for i := range views {
			views[i].Online = now.Sub(views[i].LastSeenAt) < domain.OnlineWindow
		}
		return views, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		slogx.FromContext(ctx).Warn("participant join query failed, hydrating row by row", "err", err)
	}

	// Driver without a join path, or a failed join query: hydrate names
	// row by row.
	rows, err := s.Store.Participants().List(ctx)
	if err != nil {
		return nil, err
	}
	views = make([]domain.ParticipantView, 0, len(rows))
	for _, p := range rows {
		name := p.DNI
		if user, err := s.Store.Users().GetByDNI(ctx, p.DNI); err == nil {
			name = user.Name
		}
		views = append(views, domain.ParticipantView{
			DNI:        p.DNI,
			Name:       name,
			JoinedAt:   p.JoinedAt,
			LastSeenAt: p.LastSeenAt,
			Online:     p.Online(now),
		})
	}
	return views, nil
}

// Status summarises the raffle for the calling member. dni may be empty
// for admin sessions; Joined is false then.
func (s *RaffleService) Status(ctx context.Context, dni string) (RaffleStatus, error) {
	views, err := s.Participants(ctx)
	if err != nil {
		return RaffleStatus{}, err
	}

	st := RaffleStatus{ParticipantCount: len(views)}
	for _, v := range views {
		if v.Online {
			st.OnlineCount++
		}
		if dni != "" && v.DNI == dni {
			st.Joined = true
		}
	}
	st.Winner = s.Config.Get(ctx).Winner
	st.YouWon = st.Winner != nil && dni != "" && st.Winner.DNI == dni
	return st, nil
}

// Draw picks a winner uniformly at random among current entries and
// stamps it onto the config document. Exactly one winner can exist at a
// time; clear it before drawing again.
func (s *RaffleService) Draw(ctx context.Context) (domain.Winner, error) {
	s.drawMu.Lock()
	defer s.drawMu.Unlock()

	if s.Config.Get(ctx).Winner != nil {
		return domain.Winner{}, ErrWinnerExists
	}

	views, err := s.Participants(ctx)
	if err != nil {
		return domain.Winner{}, err
	}
	if len(views) == 0 {
		return domain.Winner{}, ErrNoParticipants
	}

	pick := views[rand.IntN(len(views))]
	winner := domain.Winner{
		DNI:     pick.DNI,
		Name:    pick.Name,
		DrawnAt: s.now(),
	}

	if _, err := s.Config.UpdateWinner(ctx, &winner); err != nil {
		return domain.Winner{}, err
	}

	slogx.FromContext(ctx).Info("raffle drawn",
		slog.String("winner_dni", winner.DNI),
		slog.Int("participants", len(views)),
	)
	s.publishParticipants()
	return winner, nil
}

// ClearWinner re-opens the raffle for a new draw.
func (s *RaffleService) ClearWinner(ctx context.Context) error {
	_, err := s.Config.UpdateWinner(ctx, nil)
	if err == nil {
		slogx.FromContext(ctx).Info("raffle winner cleared")
	}
	return err
}

// DefaultDepartureRetention is how many departure records listings
// return when no explicit limit is given.
const DefaultDepartureRetention = 20

// Departures lists recent raffle departures, newest first. limit <= 0
// falls back to the configured retention.
func (s *RaffleService) Departures(ctx context.Context, limit int) ([]domain.Departure, error) {
	if limit <= 0 {
		limit = s.DepartureRetention
	}
	if limit <= 0 {
		limit = DefaultDepartureRetention
	}
	return s.Store.Departures().ListRecent(ctx, limit)
}

func (s *RaffleService) publishParticipants() {
	if s.Events != nil {
		s.Events.Publish(Event{Topic: TopicParticipantsUpdated})
	}
}
