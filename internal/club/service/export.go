package service

import (
	"context"
	"fmt"
	"time"

	"github.com/malliaquatic/clubd/internal/club/domain"
)

// ExportDocument is the full backup snapshot served to the super admin.
// The config inside is redacted like any other outbound config.
type ExportDocument struct {
	GeneratedAt  time.Time                `json:"generatedAt"`
	Config       domain.Config            `json:"config"`
	Users        []UserSummary            `json:"users"`
	Participants []domain.ParticipantView `json:"participants"`
	Departures   []domain.Departure       `json:"departures"`
}

// ExportService assembles backup snapshots. Reads happen sequentially
// without a transaction, so a concurrent mutation can land between
// sections; exports are operator convenience, not point-in-time backups.
type ExportService struct {
	Config *ConfigService
	Raffle *RaffleService
	Users  *UserService

	Now func() time.Time
}

func (s *ExportService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

// Export gathers the whole data set into one document.
func (s *ExportService) Export(ctx context.Context) (ExportDocument, error) {
	users, err := s.Users.List(ctx)
	if err != nil {
		return ExportDocument{}, fmt.Errorf("export users: %w", err)
	}

	participants, err := s.Raffle.Participants(ctx)
	if err != nil {
		return ExportDocument{}, fmt.Errorf("export participants: %w", err)
	}

	departures, err := s.Raffle.Departures(ctx, 0)
	if err != nil {
		return ExportDocument{}, fmt.Errorf("export departures: %w", err)
	}

	return ExportDocument{
		GeneratedAt:  s.now(),
		Config:       s.Config.Get(ctx).Redacted(true),
		Users:        users,
		Participants: participants,
		Departures:   departures,
	}, nil
}
