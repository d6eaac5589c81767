package club_test

import (
	"net/http"
	"testing"

	"github.com/malliaquatic/clubd/pkg/clubsdk"
	"github.com/stretchr/testify/require"
)

func TestAuthFlows(t *testing.T) {
	baseURL, cleanup := setupClubContainer(t)
	defer cleanup()

	client := clubsdk.NewClient(baseURL)

	t.Run("register then login", func(t *testing.T) {
		sess, dni := registerMember(t, client, "Maria")
		require.Equal(t, "user", sess.Tier())
		require.Equal(t, "Maria", sess.Name())
		require.False(t, sess.Expired())

		// Empty password defaulted to the DNI.
		again, err := client.Login(t.Context(), dni, dni)
		require.NoError(t, err)
		require.Equal(t, "Maria", again.Name())

		require.NoError(t, again.Logout(t.Context()))
	})

	t.Run("wrong password", func(t *testing.T) {
		_, dni := registerMember(t, client, "Bruno")

		_, err := client.Login(t.Context(), dni, "wrong")
		requireAPIError(t, err, http.StatusUnauthorized, "invalid_credentials")
	})

	t.Run("unknown DNI points to registration", func(t *testing.T) {
		_, err := client.Login(t.Context(), "00000042", "whatever")
		requireAPIError(t, err, http.StatusNotFound, "user_not_found")
	})

	t.Run("invalid registrations", func(t *testing.T) {
		_, err := client.Register(t.Context(), "1234", "Maria", "")
		requireAPIError(t, err, http.StatusBadRequest, "invalid_request")

		_, err = client.Register(t.Context(), nextDNI(), "", "")
		requireAPIError(t, err, http.StatusBadRequest, "invalid_request")
	})

	t.Run("pin elevation tiers", func(t *testing.T) {
		admin := adminSession(t, client)
		require.Equal(t, "admin", admin.Tier())

		super := superAdminSession(t, client)
		require.Equal(t, "superadmin", super.Tier())

		_, err := client.AdminPIN(t.Context(), "000000", "")
		requireAPIError(t, err, http.StatusUnauthorized, "invalid_credentials")
	})

	t.Run("tokens do not survive a restart in spirit", func(t *testing.T) {
		// Keys are ephemeral per process; a token from one container is
		// useless against another.
		otherURL, otherCleanup := setupClubContainer(t)
		defer otherCleanup()

		sess, _ := registerMember(t, client, "Carla")

		req, err := http.NewRequestWithContext(t.Context(), http.MethodGet,
			otherURL+"/v1/raffle/status", nil)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+sess.Token())

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}
