package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/malliaquatic/clubd/internal/club/domain"
	"github.com/malliaquatic/clubd/internal/club/store"
	"github.com/malliaquatic/clubd/pkg/slogx"
)

var (
	ErrInvalidAppStatus   = errors.New("invalid_app_status")
	ErrInvalidConfigPatch = errors.New("invalid_config_patch")
)

// ControlPatch carries the operator switches. Nil fields are unchanged.
type ControlPatch struct {
	AppStatus          *string
	AdminAccessEnabled *bool
	LicenseDays        *int
	AutoBackup         *bool
}

// ConfigService owns the singleton config document. Reads degrade to the
// hardcoded defaults when the store is unavailable so public screens
// always render; writes are last-write-wins over the whole document.
type ConfigService struct {
	Store  store.Store
	Events *EventBus

	// Now is swappable for tests; defaults to time.Now.
	Now func() time.Time
}

func (s *ConfigService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

// Get returns the stored document merged over defaults. Store errors are
// logged and swallowed: the caller gets the defaults instead.
func (s *ConfigService) Get(ctx context.Context) domain.Config {
	raw, err := s.Store.Config().Get(ctx)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			slogx.FromContext(ctx).Error("config read failed, serving defaults", "err", err)
		}
		return domain.DefaultConfig()
	}

	cfg, err := domain.MergeOverDefaults(raw)
	if err != nil {
		slogx.FromContext(ctx).Error("config document corrupt, serving defaults", "err", err)
	}
	return cfg
}

// SavePartial merges a JSON patch over the current document and persists
// the result. Fields the patch omits keep their stored value; the winner
// and the TOTP secret are owned by their own endpoints and survive any
// patch. Returns the merged document.
func (s *ConfigService) SavePartial(ctx context.Context, patch []byte) (domain.Config, error) {
	current := s.Get(ctx)

	merged := current
	if err := json.Unmarshal(patch, &merged); err != nil {
		return domain.Config{}, fmt.Errorf("%w: %w", ErrInvalidConfigPatch, err)
	}
	merged.Winner = current.Winner
	merged.AdminTOTPSecret = current.AdminTOTPSecret

	if merged.AppStatus != domain.AppStatusActive && merged.AppStatus != domain.AppStatusMaintenance {
		return domain.Config{}, ErrInvalidAppStatus
	}

	return s.save(ctx, merged)
}

// Control applies the operator switches and persists the document.
func (s *ConfigService) Control(ctx context.Context, patch ControlPatch) (domain.Config, error) {
	cfg := s.Get(ctx)

	if patch.AppStatus != nil {
		if *patch.AppStatus != domain.AppStatusActive && *patch.AppStatus != domain.AppStatusMaintenance {
			return domain.Config{}, ErrInvalidAppStatus
		}
		cfg.AppStatus = *patch.AppStatus
	}
	if patch.AdminAccessEnabled != nil {
		cfg.AdminAccessEnabled = *patch.AdminAccessEnabled
	}
	if patch.LicenseDays != nil {
		cfg.LicenseDays = *patch.LicenseDays
	}
	if patch.AutoBackup != nil {
		cfg.AutoBackup = *patch.AutoBackup
	}

	return s.save(ctx, cfg)
}

// UpdateWinner sets or clears the winner on the document. A nil winner
// re-opens the raffle.
func (s *ConfigService) UpdateWinner(ctx context.Context, w *domain.Winner) (domain.Config, error) {
	cfg := s.Get(ctx)
	cfg.Winner = w
	return s.save(ctx, cfg)
}

// SetTOTPSecret persists the super admin's verified authenticator secret.
func (s *ConfigService) SetTOTPSecret(ctx context.Context, secret string) error {
	cfg := s.Get(ctx)
	cfg.AdminTOTPSecret = secret
	_, err := s.save(ctx, cfg)
	return err
}

func (s *ConfigService) save(ctx context.Context, cfg domain.Config) (domain.Config, error) {
	now := s.now()
	cfg.LastSync = &now

	raw, err := json.Marshal(cfg)
	if err != nil {
		return domain.Config{}, fmt.Errorf("encode config: %w", err)
	}
	if err := s.Store.Config().Save(ctx, raw); err != nil {
		return domain.Config{}, fmt.Errorf("persist config: %w", err)
	}

	if s.Events != nil {
		s.Events.Publish(Event{Topic: TopicConfigUpdated})
	}
	return cfg, nil
}
