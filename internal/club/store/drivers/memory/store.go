// Package memory is a map-backed Store used by the offline variant and
// as a test double. It mimics a key/value namespace: no joins, so
// ListWithNames reports no join path and callers hydrate in two steps.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/malliaquatic/clubd/internal/club/domain"
	"github.com/malliaquatic/clubd/internal/club/store"
)

type Store struct {
	mu           sync.RWMutex
	users        map[string]domain.User
	participants map[string]domain.Participant
	departures   []domain.Departure
	config       []byte
}

func NewStore() *Store {
	return &Store{
		users:        map[string]domain.User{},
		participants: map[string]domain.Participant{},
	}
}

func (s *Store) Close() error { return nil }

func (s *Store) Ping(ctx context.Context) error { return nil }

// ApplyMigrations is a no-op for the map-backed store.
func (s *Store) ApplyMigrations() error { return nil }

func (s *Store) Users() store.Users               { return &usersRepo{s} }
func (s *Store) Participants() store.Participants { return &participantsRepo{s} }
func (s *Store) Departures() store.Departures     { return &departuresRepo{s} }
func (s *Store) Config() store.Config             { return &configRepo{s} }

type usersRepo struct{ s *Store }

func (r *usersRepo) GetByDNI(_ context.Context, dni string) (domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	u, ok := r.s.users[dni]
	if !ok {
		return domain.User{}, store.ErrNotFound
	}
	return u, nil
}

func (r *usersRepo) Upsert(_ context.Context, u domain.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if existing, ok := r.s.users[u.DNI]; ok {
		u.CreatedAt = existing.CreatedAt
	}
	r.s.users[u.DNI] = u
	return nil
}

func (r *usersRepo) Delete(_ context.Context, dni string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.users, dni)
	return nil
}

func (r *usersRepo) List(_ context.Context) ([]domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]domain.User, 0, len(r.s.users))
	for _, u := range r.s.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].DNI < out[j].DNI
	})
	return out, nil
}

type participantsRepo struct{ s *Store }

func (r *participantsRepo) Upsert(_ context.Context, p domain.Participant) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.participants[p.DNI] = p
	return nil
}

func (r *participantsRepo) Touch(_ context.Context, dni string, lastSeen time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.participants[dni]
	if !ok {
		return nil // strict no-op, never recreate
	}
	p.LastSeenAt = lastSeen
	r.s.participants[dni] = p
	return nil
}

func (r *participantsRepo) Delete(_ context.Context, dni string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.participants, dni)
	return nil
}

func (r *participantsRepo) Get(_ context.Context, dni string) (domain.Participant, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.participants[dni]
	if !ok {
		return domain.Participant{}, store.ErrNotFound
	}
	return p, nil
}

func (r *participantsRepo) List(_ context.Context) ([]domain.Participant, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]domain.Participant, 0, len(r.s.participants))
	for _, p := range r.s.participants {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].JoinedAt.Equal(out[j].JoinedAt) {
			return out[i].JoinedAt.Before(out[j].JoinedAt)
		}
		return out[i].DNI < out[j].DNI
	})
	return out, nil
}

// ListWithNames has no join path in a key/value namespace; callers fall
// back to List + Users().List and hydrate names themselves.
func (r *participantsRepo) ListWithNames(_ context.Context) ([]domain.ParticipantView, error) {
	return nil, store.ErrNotFound
}

type departuresRepo struct{ s *Store }

func (r *departuresRepo) Append(_ context.Context, d domain.Departure) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.departures = append([]domain.Departure{d}, r.s.departures...)
	return nil
}

func (r *departuresRepo) ListRecent(_ context.Context, limit int) ([]domain.Departure, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if limit > len(r.s.departures) {
		limit = len(r.s.departures)
	}
	out := make([]domain.Departure, limit)
	copy(out, r.s.departures[:limit])
	return out, nil
}

type configRepo struct{ s *Store }

func (r *configRepo) Get(_ context.Context) ([]byte, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if r.s.config == nil {
		return nil, store.ErrNotFound
	}
	out := make([]byte, len(r.s.config))
	copy(out, r.s.config)
	return out, nil
}

func (r *configRepo) Save(_ context.Context, raw []byte) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := make([]byte, len(raw))
	copy(cp, raw)
	r.s.config = cp
	return nil
}
