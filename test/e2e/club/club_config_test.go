package club_test

import (
	"net/http"
	"testing"

	"github.com/malliaquatic/clubd/pkg/clubsdk"
	"github.com/stretchr/testify/require"
)

func TestConfigDocument(t *testing.T) {
	baseURL, cleanup := setupClubContainer(t)
	defer cleanup()

	client := clubsdk.NewClient(baseURL)

	t.Run("public defaults", func(t *testing.T) {
		cfg, err := client.GetConfig(t.Context())
		require.NoError(t, err)
		require.Equal(t, "active", cfg.AppStatus)
		require.NotEmpty(t, cfg.PromoTitle)
		require.NotEmpty(t, cfg.MaintenanceMessage)
	})

	t.Run("partial save survives unrelated fields", func(t *testing.T) {
		admin := adminSession(t, client)

		_, err := admin.SaveConfig(t.Context(), map[string]any{"promoTitle": "SORTEO E2E"})
		require.NoError(t, err)

		cfg, err := admin.SaveConfig(t.Context(), map[string]any{"card1Title": "Natación"})
		require.NoError(t, err)
		require.Equal(t, "SORTEO E2E", cfg.PromoTitle)
		require.Equal(t, "Natación", cfg.Card1Title)
		require.NotNil(t, cfg.LastSync)
	})

	t.Run("members cannot save", func(t *testing.T) {
		maria, _ := registerMember(t, client, "Maria")
		_, err := maria.SaveConfig(t.Context(), map[string]any{"promoTitle": "X"})
		requireAPIError(t, err, http.StatusForbidden, "insufficient_tier")
	})
}

func TestMaintenanceAndAdminGate(t *testing.T) {
	baseURL, cleanup := setupClubContainer(t)
	defer cleanup()

	client := clubsdk.NewClient(baseURL)
	maria, _ := registerMember(t, client, "Maria")
	admin := adminSession(t, client)
	super := superAdminSession(t, client)

	t.Run("maintenance locks members out", func(t *testing.T) {
		status := "maintenance"
		_, err := super.Control(t.Context(), clubsdk.ControlRequest{AppStatus: &status})
		require.NoError(t, err)

		_, err = maria.Join(t.Context())
		requireAPIError(t, err, http.StatusServiceUnavailable, "maintenance")

		// Public config and PIN elevation stay reachable.
		cfg, err := client.GetConfig(t.Context())
		require.NoError(t, err)
		require.Equal(t, "maintenance", cfg.AppStatus)
		adminSession(t, client)

		active := "active"
		_, err = super.Control(t.Context(), clubsdk.ControlRequest{AppStatus: &active})
		require.NoError(t, err)

		_, err = maria.Join(t.Context())
		require.NoError(t, err)
	})

	t.Run("admin gate locks helpers out immediately", func(t *testing.T) {
		off := false
		_, err := super.Control(t.Context(), clubsdk.ControlRequest{AdminAccessEnabled: &off})
		require.NoError(t, err)

		_, err = admin.SaveConfig(t.Context(), map[string]any{"promoTitle": "X"})
		requireAPIError(t, err, http.StatusForbidden, "admin_access_disabled")

		_, err = client.AdminPIN(t.Context(), adminPIN, "")
		requireAPIError(t, err, http.StatusForbidden, "admin_access_disabled")

		on := true
		_, err = super.Control(t.Context(), clubsdk.ControlRequest{AdminAccessEnabled: &on})
		require.NoError(t, err)

		_, err = admin.SaveConfig(t.Context(), map[string]any{"promoTitle": "Y"})
		require.NoError(t, err)
	})

	t.Run("control is superadmin only", func(t *testing.T) {
		days := 60
		_, err := admin.Control(t.Context(), clubsdk.ControlRequest{LicenseDays: &days})
		requireAPIError(t, err, http.StatusForbidden, "insufficient_tier")
	})
}

func TestExportDocument(t *testing.T) {
	baseURL, cleanup := setupClubContainer(t)
	defer cleanup()

	client := clubsdk.NewClient(baseURL)
	maria, _ := registerMember(t, client, "Maria")
	_, err := maria.Join(t.Context())
	require.NoError(t, err)

	super := superAdminSession(t, client)
	doc, err := super.Export(t.Context())
	require.NoError(t, err)
	require.False(t, doc.GeneratedAt.IsZero())
	require.NotEmpty(t, doc.Users)
	require.NotEmpty(t, doc.Participants)
	require.NotEmpty(t, doc.Config.PromoTitle)
}
