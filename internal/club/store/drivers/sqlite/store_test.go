package sqlite

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/malliaquatic/clubd/internal/club/domain"
	"github.com/malliaquatic/clubd/internal/club/store"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000", filepath.Join(t.TempDir(), "club.db"))
	st, err := NewStore(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

var baseTime = time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)

func seedUser(t *testing.T, st *Store, dni, name string) {
	t.Helper()
	err := st.Users().Upsert(context.Background(), domain.User{
		DNI: dni, Name: name, PasswordHash: "$argon2id$x", CreatedAt: baseTime,
	})
	require.NoError(t, err)
}

func TestStorePing(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)
	require.NoError(t, st.Ping(context.Background()))
}

func TestUsersRepo(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("roundtrip", func(t *testing.T) {
		st := newTestStore(t)
		seedUser(t, st, "12345678", "Maria")

		u, err := st.Users().GetByDNI(ctx, "12345678")
		require.NoError(t, err)
		require.Equal(t, "Maria", u.Name)
		require.Equal(t, baseTime, u.CreatedAt)
	})

	t.Run("missing row maps to not found", func(t *testing.T) {
		st := newTestStore(t)
		_, err := st.Users().GetByDNI(ctx, "00000000")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("upsert keeps the original registration date", func(t *testing.T) {
		st := newTestStore(t)
		seedUser(t, st, "12345678", "Maria")

		err := st.Users().Upsert(ctx, domain.User{
			DNI: "12345678", Name: "Maria Elena", PasswordHash: "new",
			CreatedAt: baseTime.Add(48 * time.Hour),
		})
		require.NoError(t, err)

		u, err := st.Users().GetByDNI(ctx, "12345678")
		require.NoError(t, err)
		require.Equal(t, "Maria Elena", u.Name)
		require.Equal(t, "new", u.PasswordHash)
		require.Equal(t, baseTime, u.CreatedAt)
	})

	t.Run("list orders newest first", func(t *testing.T) {
		st := newTestStore(t)
		for i, dni := range []string{"11111111", "22222222", "33333333"} {
			err := st.Users().Upsert(ctx, domain.User{
				DNI: dni, Name: dni, PasswordHash: "x",
				CreatedAt: baseTime.Add(time.Duration(i) * time.Minute),
			})
			require.NoError(t, err)
		}

		users, err := st.Users().List(ctx)
		require.NoError(t, err)
		require.Len(t, users, 3)
		require.Equal(t, "33333333", users[0].DNI)
		require.Equal(t, "11111111", users[2].DNI)
	})

	t.Run("delete cascades to the raffle entry", func(t *testing.T) {
		st := newTestStore(t)
		seedUser(t, st, "12345678", "Maria")
		err := st.Participants().Upsert(ctx, domain.Participant{
			DNI: "12345678", JoinedAt: baseTime, LastSeenAt: baseTime,
		})
		require.NoError(t, err)

		require.NoError(t, st.Users().Delete(ctx, "12345678"))

		_, err = st.Participants().Get(ctx, "12345678")
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestParticipantsRepo(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("upsert replaces the whole row", func(t *testing.T) {
		st := newTestStore(t)
		seedUser(t, st, "12345678", "Maria")

		first := domain.Participant{DNI: "12345678", JoinedAt: baseTime, LastSeenAt: baseTime}
		require.NoError(t, st.Participants().Upsert(ctx, first))

		later := baseTime.Add(time.Hour)
		require.NoError(t, st.Participants().Upsert(ctx, domain.Participant{
			DNI: "12345678", JoinedAt: later, LastSeenAt: later,
		}))

		p, err := st.Participants().Get(ctx, "12345678")
		require.NoError(t, err)
		require.Equal(t, later, p.JoinedAt)
	})

	t.Run("touch updates presence only", func(t *testing.T) {
		st := newTestStore(t)
		seedUser(t, st, "12345678", "Maria")
		require.NoError(t, st.Participants().Upsert(ctx, domain.Participant{
			DNI: "12345678", JoinedAt: baseTime, LastSeenAt: baseTime,
		}))

		seen := baseTime.Add(30 * time.Second)
		require.NoError(t, st.Participants().Touch(ctx, "12345678", seen))

		p, err := st.Participants().Get(ctx, "12345678")
		require.NoError(t, err)
		require.Equal(t, baseTime, p.JoinedAt)
		require.Equal(t, seen, p.LastSeenAt)
	})

	t.Run("touch on an absent row writes nothing", func(t *testing.T) {
		st := newTestStore(t)
		require.NoError(t, st.Participants().Touch(ctx, "12345678", baseTime))

		_, err := st.Participants().Get(ctx, "12345678")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("list with names joins the member directory", func(t *testing.T) {
		st := newTestStore(t)
		seedUser(t, st, "11111111", "Ana")
		seedUser(t, st, "22222222", "Bruno")
		for i, dni := range []string{"22222222", "11111111"} {
			require.NoError(t, st.Participants().Upsert(ctx, domain.Participant{
				DNI: dni, JoinedAt: baseTime.Add(time.Duration(i) * time.Minute), LastSeenAt: baseTime,
			}))
		}

		views, err := st.Participants().ListWithNames(ctx)
		require.NoError(t, err)
		require.Len(t, views, 2)
		// Ordered by join time.
		require.Equal(t, "Bruno", views[0].Name)
		require.Equal(t, "Ana", views[1].Name)
	})
}

func TestDeparturesRepo(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	st := newTestStore(t)
	for i := 0; i < 5; i++ {
		err := st.Departures().Append(ctx, domain.Departure{
			ID:     fmt.Sprintf("dep-%d", i),
			DNI:    "12345678",
			Name:   "Maria",
			LeftAt: baseTime.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
	}

	deps, err := st.Departures().ListRecent(ctx, 3)
	require.NoError(t, err)
	require.Len(t, deps, 3)
	require.Equal(t, "dep-4", deps[0].ID)
	require.Equal(t, "dep-2", deps[2].ID)
	require.Equal(t, baseTime.Add(4*time.Minute), deps[0].LeftAt)
}

func TestConfigRepo(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("empty store reports not found", func(t *testing.T) {
		st := newTestStore(t)
		_, err := st.Config().Get(ctx)
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("save then get roundtrips the document", func(t *testing.T) {
		st := newTestStore(t)
		doc := []byte(`{"promoTitle":"GRAN SORTEO"}`)
		require.NoError(t, st.Config().Save(ctx, doc))

		got, err := st.Config().Get(ctx)
		require.NoError(t, err)
		require.JSONEq(t, string(doc), string(got))

		// Second save replaces the single row.
		require.NoError(t, st.Config().Save(ctx, []byte(`{"promoTitle":"OTRO"}`)))
		got, err = st.Config().Get(ctx)
		require.NoError(t, err)
		require.JSONEq(t, `{"promoTitle":"OTRO"}`, string(got))
	})
}
