package store

import (
	"context"
	"errors"
	"time"

	"github.com/malliaquatic/clubd/internal/club/domain"
)

var (
	ErrNotFound = errors.New("store: not found")
)

// Store is the root data access interface. Concrete drivers (sqlite for
// the networked deployment, memory for the offline variant and tests)
// implement this. The surface is upsert by key, select by key,
// select-all ordered, delete by key. There are no transactions;
// multi-step operations such as unregister are sequential writes.
type Store interface {
	Users() Users
	Participants() Participants
	Departures() Departures
	Config() Config

	ApplyMigrations() error

	// Close releases any underlying resources (optional for memory).
	Close() error

	// Ping verifies the backing storage is still reachable.
	Ping(ctx context.Context) error
}

type Users interface {
	// GetByDNI returns a registered member by DNI.
	GetByDNI(ctx context.Context, dni string) (domain.User, error)

	// Upsert inserts the user, overwriting name and password hash if the
	// DNI is already registered. CreatedAt is preserved on overwrite.
	Upsert(ctx context.Context, u domain.User) error

	// Delete removes the member. Missing rows are not an error.
	Delete(ctx context.Context, dni string) error

	// List returns the full directory ordered by registration (newest first).
	List(ctx context.Context) ([]domain.User, error)
}

type Participants interface {
	// Upsert inserts or replaces the participant row for its DNI. A
	// replace resets JoinedAt, matching the observed upsert semantics.
	Upsert(ctx context.Context, p domain.Participant) error

	// Touch updates LastSeenAt only if a row already exists for the DNI.
	// It must never recreate a departed participant.
	Touch(ctx context.Context, dni string, lastSeen time.Time) error

	// Delete removes the row. Missing rows are not an error.
	Delete(ctx context.Context, dni string) error

	// Get returns the participant row for a DNI.
	Get(ctx context.Context, dni string) (domain.Participant, error)

	// List returns all rows ordered by join time.
	List(ctx context.Context) ([]domain.Participant, error)

	// ListWithNames returns all rows joined with the user directory for
	// display names. Drivers without a join path may return ErrNotFound
	// to make the caller fall back to a two-step hydrate.
	ListWithNames(ctx context.Context) ([]domain.ParticipantView, error)
}

type Departures interface {
	// Append adds one departure record. The log is append-only.
	Append(ctx context.Context, d domain.Departure) error

	// ListRecent returns at most limit records, most recent first.
	ListRecent(ctx context.Context, limit int) ([]domain.Departure, error)
}

type Config interface {
	// Get returns the raw singleton document, ErrNotFound if never written.
	Get(ctx context.Context) ([]byte, error)

	// Save replaces the singleton document. Last writer wins; there is
	// no version check, two concurrent writers silently clobber each other.
	Save(ctx context.Context, raw []byte) error
}
