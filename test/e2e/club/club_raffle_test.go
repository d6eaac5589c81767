package club_test

import (
	"net/http"
	"testing"

	"github.com/malliaquatic/clubd/pkg/clubsdk"
	"github.com/stretchr/testify/require"
)

func TestRaffleLifecycle(t *testing.T) {
	baseURL, cleanup := setupClubContainer(t)
	defer cleanup()

	client := clubsdk.NewClient(baseURL)

	maria, mariaDNI := registerMember(t, client, "Maria")
	bruno, _ := registerMember(t, client, "Bruno")
	admin := adminSession(t, client)

	// Join and heartbeat.
	entry, err := maria.Join(t.Context())
	require.NoError(t, err)
	require.Equal(t, mariaDNI, entry.DNI)
	require.True(t, entry.Online)

	_, err = bruno.Join(t.Context())
	require.NoError(t, err)
	require.NoError(t, maria.Heartbeat(t.Context()))

	participants, err := maria.Participants(t.Context())
	require.NoError(t, err)
	require.Len(t, participants, 2)

	status, err := maria.Status(t.Context())
	require.NoError(t, err)
	require.Equal(t, 2, status.ParticipantCount)
	require.True(t, status.Joined)
	require.Nil(t, status.Winner)

	// Draw.
	winner, err := admin.Draw(t.Context())
	require.NoError(t, err)
	require.NotEmpty(t, winner.DNI)
	require.False(t, winner.DrawnAt.IsZero())

	_, err = admin.Draw(t.Context())
	requireAPIError(t, err, http.StatusConflict, "conflict")

	status, err = maria.Status(t.Context())
	require.NoError(t, err)
	require.NotNil(t, status.Winner)
	require.Equal(t, winner.DNI, status.Winner.DNI)

	// Clear and redraw works.
	require.NoError(t, admin.ClearWinner(t.Context()))
	_, err = admin.Draw(t.Context())
	require.NoError(t, err)
	require.NoError(t, admin.ClearWinner(t.Context()))

	// Leaving the raffle is not a club departure.
	require.NoError(t, bruno.Leave(t.Context()))
	require.Error(t, bruno.Leave(t.Context())) // second leave has no entry

	departures, err := admin.Departures(t.Context(), 10)
	require.NoError(t, err)
	require.Empty(t, departures)

	// Unregister removes the account, the entry and logs a departure.
	require.NoError(t, maria.Unregister(t.Context()))
	departures, err = admin.Departures(t.Context(), 10)
	require.NoError(t, err)
	require.Len(t, departures, 1)
	require.Equal(t, "Maria", departures[0].Name)

	_, err = client.Login(t.Context(), mariaDNI, mariaDNI)
	requireAPIError(t, err, http.StatusNotFound, "user_not_found")
}

func TestRaffleDrawOnEmpty(t *testing.T) {
	baseURL, cleanup := setupClubContainer(t)
	defer cleanup()

	admin := adminSession(t, clubsdk.NewClient(baseURL))

	_, err := admin.Draw(t.Context())
	requireAPIError(t, err, http.StatusConflict, "conflict")
}

func TestRaffleTierEnforcement(t *testing.T) {
	baseURL, cleanup := setupClubContainer(t)
	defer cleanup()

	client := clubsdk.NewClient(baseURL)
	maria, _ := registerMember(t, client, "Maria")

	_, err := maria.Draw(t.Context())
	requireAPIError(t, err, http.StatusForbidden, "insufficient_tier")

	err = maria.ClearWinner(t.Context())
	requireAPIError(t, err, http.StatusForbidden, "insufficient_tier")

	_, err = maria.Users(t.Context())
	requireAPIError(t, err, http.StatusForbidden, "insufficient_tier")
}
