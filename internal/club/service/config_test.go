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

// brokenConfigStore fails every config read with a non-NotFound error.
type brokenConfigStore struct {
	*memory.Store
}

func (b *brokenConfigStore) Config() store.Config { return brokenConfigRepo{} }

type brokenConfigRepo struct{}

func (brokenConfigRepo) Get(context.Context) ([]byte, error) {
	return nil, errors.New("disk on fire")
}

func (brokenConfigRepo) Save(context.Context, []byte) error {
	return errors.New("disk on fire")
}

func newConfigService() (*ConfigService, *memory.Store) {
	st := memory.NewStore()
	now := time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)
	return &ConfigService{
		Store: st,
		Now:   func() time.Time { return now },
	}, st
}

func TestConfigGet(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("empty store yields the defaults", func(t *testing.T) {
		svc, _ := newConfigService()
		cfg := svc.Get(ctx)
		require.Equal(t, domain.DefaultConfig(), cfg)
	})

	t.Run("stored fields merge over defaults", func(t *testing.T) {
		svc, st := newConfigService()
		err := st.Config().Save(ctx, []byte(`{"promoTitle":"GRAN SORTEO","licenseDays":7}`))
		require.NoError(t, err)

		cfg := svc.Get(ctx)
		require.Equal(t, "GRAN SORTEO", cfg.PromoTitle)
		require.Equal(t, 7, cfg.LicenseDays)
		// Untouched fields keep their default.
		require.Equal(t, domain.DefaultConfig().RafflePrize, cfg.RafflePrize)
		require.Equal(t, domain.AppStatusActive, cfg.AppStatus)
	})

	t.Run("store failure degrades to defaults", func(t *testing.T) {
		svc := &ConfigService{Store: &brokenConfigStore{memory.NewStore()}}
		cfg := svc.Get(ctx)
		require.Equal(t, domain.DefaultConfig(), cfg)
	})

	t.Run("corrupt document degrades to defaults", func(t *testing.T) {
		svc, st := newConfigService()
		require.NoError(t, st.Config().Save(ctx, []byte(`{nope`)))

		cfg := svc.Get(ctx)
		require.Equal(t, domain.DefaultConfig(), cfg)
	})
}

func TestConfigSavePartial(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("patched fields change, the rest survive", func(t *testing.T) {
		svc, _ := newConfigService()
		_, err := svc.SavePartial(ctx, []byte(`{"promoTitle":"NUEVO TITULO"}`))
		require.NoError(t, err)

		cfg, err := svc.SavePartial(ctx, []byte(`{"card1Title":"Natación"}`))
		require.NoError(t, err)
		require.Equal(t, "NUEVO TITULO", cfg.PromoTitle)
		require.Equal(t, "Natación", cfg.Card1Title)
		require.NotNil(t, cfg.LastSync)
	})

	t.Run("malformed patch is rejected", func(t *testing.T) {
		svc, _ := newConfigService()
		_, err := svc.SavePartial(ctx, []byte(`{"promoTitle":`))
		require.ErrorIs(t, err, ErrInvalidConfigPatch)
	})

	t.Run("unknown app status is rejected", func(t *testing.T) {
		svc, _ := newConfigService()
		_, err := svc.SavePartial(ctx, []byte(`{"appStatus":"closed"}`))
		require.ErrorIs(t, err, ErrInvalidAppStatus)
	})

	t.Run("winner and totp secret cannot be patched in", func(t *testing.T) {
		svc, _ := newConfigService()
		_, err := svc.UpdateWinner(ctx, &domain.Winner{DNI: "12345678", Name: "Maria"})
		require.NoError(t, err)
		require.NoError(t, svc.SetTOTPSecret(ctx, "JBSWY3DPEHPK3PXP"))

		cfg, err := svc.SavePartial(ctx, []byte(`{"winner":null,"adminTotpSecret":"evil","promoTitle":"X"}`))
		require.NoError(t, err)
		require.NotNil(t, cfg.Winner)
		require.Equal(t, "12345678", cfg.Winner.DNI)
		require.Equal(t, "JBSWY3DPEHPK3PXP", cfg.AdminTOTPSecret)
	})

	// Saves are last-write-wins over the whole document. Two admins who
	// read the same version and save different fields do not merge: the
	// second save silently reverts the first one's field.
	t.Run("concurrent saves are last write wins", func(t *testing.T) {
		svc, _ := newConfigService()

		_, err := svc.SavePartial(ctx, []byte(`{"promoTitle":"ADMIN UNO"}`))
		require.NoError(t, err)
		// Second admin read before the first save landed and re-sends
		// the stale title alongside their own change.
		_, err = svc.SavePartial(ctx, []byte(`{"promoTitle":"SORTEO DIARIO DE PASES LIBRES","card2Title":"Premios"}`))
		require.NoError(t, err)

		cfg := svc.Get(ctx)
		require.Equal(t, "SORTEO DIARIO DE PASES LIBRES", cfg.PromoTitle)
		require.Equal(t, "Premios", cfg.Card2Title)
	})
}

func TestConfigControl(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("switches flip independently", func(t *testing.T) {
		svc, _ := newConfigService()

		status := domain.AppStatusMaintenance
		cfg, err := svc.Control(ctx, ControlPatch{AppStatus: &status})
		require.NoError(t, err)
		require.True(t, cfg.Maintenance())
		require.True(t, cfg.AdminAccessEnabled) // untouched

		off := false
		days := 90
		cfg, err = svc.Control(ctx, ControlPatch{AdminAccessEnabled: &off, LicenseDays: &days})
		require.NoError(t, err)
		require.True(t, cfg.Maintenance()) // untouched
		require.False(t, cfg.AdminAccessEnabled)
		require.Equal(t, 90, cfg.LicenseDays)
	})

	t.Run("unknown app status is rejected", func(t *testing.T) {
		svc, _ := newConfigService()
		bad := "paused"
		_, err := svc.Control(ctx, ControlPatch{AppStatus: &bad})
		require.ErrorIs(t, err, ErrInvalidAppStatus)
	})
}

func TestConfigSavePublishesEvent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc, _ := newConfigService()
	svc.Events = NewEventBus()
	sub := svc.Events.Subscribe(TopicConfigUpdated)
	defer svc.Events.Unsubscribe(sub)

	_, err := svc.SavePartial(ctx, []byte(`{"promoTitle":"X"}`))
	require.NoError(t, err)

	select {
	case evt := <-sub.Chan():
		require.Equal(t, TopicConfigUpdated, evt.Topic)
	default:
		t.Fatal("expected a config_updated event")
	}
}

func TestConfigRedacted(t *testing.T) {
	t.Parallel()

	cfg := domain.DefaultConfig()
	cfg.Winner = &domain.Winner{DNI: "12345678", Name: "Maria"}
	cfg.AdminTOTPSecret = "JBSWY3DPEHPK3PXP"

	public := cfg.Redacted(false)
	require.Nil(t, public.Winner)
	require.Empty(t, public.AdminTOTPSecret)

	admin := cfg.Redacted(true)
	require.NotNil(t, admin.Winner)
	require.Empty(t, admin.AdminTOTPSecret)
}
