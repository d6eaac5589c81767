package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/malliaquatic/clubd/internal/club/domain"
	"github.com/malliaquatic/clubd/internal/club/store"
	"github.com/malliaquatic/clubd/internal/club/store/drivers/memory"
	"github.com/stretchr/testify/require"
)

type raffleFixture struct {
	store  *memory.Store
	config *ConfigService
	raffle *RaffleService
	users  *UserService
	events *EventBus
	now    time.Time
}

func newRaffleFixture(t *testing.T) *raffleFixture {
	t.Helper()

	f := &raffleFixture{
		store:  memory.NewStore(),
		events: NewEventBus(),
		now:    time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC),
	}
	clock := func() time.Time { return f.now }

	f.config = &ConfigService{Store: f.store, Events: f.events, Now: clock}
	f.raffle = &RaffleService{Store: f.store, Config: f.config, Events: f.events, Now: clock}
	f.users = &UserService{Store: f.store, Events: f.events, Now: clock}
	return f
}

func (f *raffleFixture) addUser(t *testing.T, dni, name string) {
	t.Helper()
	err := f.store.Users().Upsert(context.Background(), domain.User{
		DNI: dni, Name: name, PasswordHash: "x", CreatedAt: f.now,
	})
	require.NoError(t, err)
}

func TestRaffleJoin(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("join enters the member with presence", func(t *testing.T) {
		f := newRaffleFixture(t)
		f.addUser(t, "12345678", "Maria")

		view, err := f.raffle.Join(ctx, "12345678")
		require.NoError(t, err)
		require.Equal(t, "Maria", view.Name)
		require.True(t, view.Online)
		require.Equal(t, f.now, view.JoinedAt)
	})

	t.Run("unknown member cannot join", func(t *testing.T) {
		f := newRaffleFixture(t)

		_, err := f.raffle.Join(ctx, "99999999")
		require.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("re-join restarts the joined-at clock", func(t *testing.T) {
		f := newRaffleFixture(t)
		f.addUser(t, "12345678", "Maria")

		first, err := f.raffle.Join(ctx, "12345678")
		require.NoError(t, err)

		f.now = f.now.Add(5 * time.Minute)
		second, err := f.raffle.Join(ctx, "12345678")
		require.NoError(t, err)
		require.True(t, second.JoinedAt.After(first.JoinedAt))

		views, err := f.raffle.Participants(ctx)
		require.NoError(t, err)
		require.Len(t, views, 1)
	})
}

func TestRaffleHeartbeat(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("refreshes presence", func(t *testing.T) {
		f := newRaffleFixture(t)
		f.addUser(t, "12345678", "Maria")
		_, err := f.raffle.Join(ctx, "12345678")
		require.NoError(t, err)

		f.now = f.now.Add(2 * domain.OnlineWindow)
		views, err := f.raffle.Participants(ctx)
		require.NoError(t, err)
		require.False(t, views[0].Online)

		require.NoError(t, f.raffle.Heartbeat(ctx, "12345678"))
		views, err = f.raffle.Participants(ctx)
		require.NoError(t, err)
		require.True(t, views[0].Online)
	})

	t.Run("never resurrects a departed entry", func(t *testing.T) {
		f := newRaffleFixture(t)
		f.addUser(t, "12345678", "Maria")
		_, err := f.raffle.Join(ctx, "12345678")
		require.NoError(t, err)
		require.NoError(t, f.raffle.Leave(ctx, "12345678"))

		// Stale tab keeps pinging after leave.
		require.NoError(t, f.raffle.Heartbeat(ctx, "12345678"))

		views, err := f.raffle.Participants(ctx)
		require.NoError(t, err)
		require.Empty(t, views)
	})
}

func TestRaffleLeave(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("removes the entry and nothing else", func(t *testing.T) {
		f := newRaffleFixture(t)
		f.addUser(t, "12345678", "Maria")
		_, err := f.raffle.Join(ctx, "12345678")
		require.NoError(t, err)

		require.NoError(t, f.raffle.Leave(ctx, "12345678"))

		views, err := f.raffle.Participants(ctx)
		require.NoError(t, err)
		require.Empty(t, views)

		// Leaving the raffle is not a club departure.
		deps, err := f.raffle.Departures(ctx, 0)
		require.NoError(t, err)
		require.Empty(t, deps)
	})

	t.Run("leave without entry fails", func(t *testing.T) {
		f := newRaffleFixture(t)
		f.addUser(t, "12345678", "Maria")

		require.ErrorIs(t, f.raffle.Leave(ctx, "12345678"), ErrNotJoined)
	})

	t.Run("departure listing is capped newest first", func(t *testing.T) {
		f := newRaffleFixture(t)
		f.addUser(t, "11111111", "A")
		f.addUser(t, "22222222", "B")
		f.addUser(t, "33333333", "C")
		for _, dni := range []string{"11111111", "22222222", "33333333"} {
			f.now = f.now.Add(time.Minute)
			require.NoError(t, f.users.Unregister(ctx, dni))
		}

		deps, err := f.raffle.Departures(ctx, 2)
		require.NoError(t, err)
		require.Len(t, deps, 2)
		require.Equal(t, "33333333", deps[0].DNI)
		require.Equal(t, "22222222", deps[1].DNI)
	})
}

// brokenJoinStore simulates a driver whose join query fails outright
// rather than signalling the no-join-path sentinel.
type brokenJoinStore struct{ *memory.Store }

func (s *brokenJoinStore) Participants() store.Participants {
	return &brokenJoinRepo{s.Store.Participants()}
}

type brokenJoinRepo struct{ store.Participants }

func (r *brokenJoinRepo) ListWithNames(context.Context) ([]domain.ParticipantView, error) {
	return nil, errors.New("no such column: u.name")
}

func TestRaffleParticipantsFallsBackOnJoinFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f := newRaffleFixture(t)
	f.addUser(t, "12345678", "Maria")
	_, err := f.raffle.Join(ctx, "12345678")
	require.NoError(t, err)

	f.raffle.Store = &brokenJoinStore{f.store}

	views, err := f.raffle.Participants(ctx)
	require.NoError(t, err)
	require.Len(t, views, 1)
	require.Equal(t, "Maria", views[0].Name)
	require.True(t, views[0].Online)
}

func TestRaffleDraw(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("empty raffle cannot be drawn", func(t *testing.T) {
		f := newRaffleFixture(t)
		_, err := f.raffle.Draw(ctx)
		require.ErrorIs(t, err, ErrNoParticipants)
	})

	t.Run("draw picks a participant and stamps the config", func(t *testing.T) {
		f := newRaffleFixture(t)
		f.addUser(t, "11111111", "A")
		f.addUser(t, "22222222", "B")
		for _, dni := range []string{"11111111", "22222222"} {
			_, err := f.raffle.Join(ctx, dni)
			require.NoError(t, err)
		}

		winner, err := f.raffle.Draw(ctx)
		require.NoError(t, err)
		require.Contains(t, []string{"11111111", "22222222"}, winner.DNI)
		require.Equal(t, f.now, winner.DrawnAt)

		cfg := f.config.Get(ctx)
		require.NotNil(t, cfg.Winner)
		require.Equal(t, winner.DNI, cfg.Winner.DNI)
	})

	t.Run("second draw is rejected until cleared", func(t *testing.T) {
		f := newRaffleFixture(t)
		f.addUser(t, "11111111", "A")
		_, err := f.raffle.Join(ctx, "11111111")
		require.NoError(t, err)

		_, err = f.raffle.Draw(ctx)
		require.NoError(t, err)

		_, err = f.raffle.Draw(ctx)
		require.ErrorIs(t, err, ErrWinnerExists)

		require.NoError(t, f.raffle.ClearWinner(ctx))
		_, err = f.raffle.Draw(ctx)
		require.NoError(t, err)
	})

	// The draw reads entries then writes the winner without a
	// transaction. A member who left between the two steps can still
	// win; the published rules allow it, so this documents the behaviour.
	t.Run("winner kept even if entry vanished after draw", func(t *testing.T) {
		f := newRaffleFixture(t)
		f.addUser(t, "11111111", "A")
		_, err := f.raffle.Join(ctx, "11111111")
		require.NoError(t, err)

		winner, err := f.raffle.Draw(ctx)
		require.NoError(t, err)

		require.NoError(t, f.raffle.Leave(ctx, "11111111"))
		cfg := f.config.Get(ctx)
		require.NotNil(t, cfg.Winner)
		require.Equal(t, winner.DNI, cfg.Winner.DNI)
	})
}

func TestRaffleStatus(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f := newRaffleFixture(t)
	f.addUser(t, "11111111", "A")
	f.addUser(t, "22222222", "B")
	_, err := f.raffle.Join(ctx, "11111111")
	require.NoError(t, err)

	f.now = f.now.Add(2 * domain.OnlineWindow)
	_, err = f.raffle.Join(ctx, "22222222")
	require.NoError(t, err)

	st, err := f.raffle.Status(ctx, "11111111")
	require.NoError(t, err)
	require.Equal(t, 2, st.ParticipantCount)
	require.Equal(t, 1, st.OnlineCount) // first entry aged out
	require.True(t, st.Joined)
	require.False(t, st.YouWon)
	require.Nil(t, st.Winner)

	st, err = f.raffle.Status(ctx, "")
	require.NoError(t, err)
	require.False(t, st.Joined)

	_, err = f.raffle.Draw(ctx)
	require.NoError(t, err)

	winnerSt, err := f.raffle.Status(ctx, "11111111")
	require.NoError(t, err)
	loserSt, err := f.raffle.Status(ctx, "22222222")
	require.NoError(t, err)
	require.NotNil(t, winnerSt.Winner)
	require.NotEqual(t, winnerSt.YouWon, loserSt.YouWon)
	require.Equal(t, winnerSt.Winner.DNI == "11111111", winnerSt.YouWon)
}
