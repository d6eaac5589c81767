package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/malliaquatic/clubd/internal/club/domain"
)

type participantsRepo struct {
	db *sql.DB
}

func (r *participantsRepo) Upsert(ctx context.Context, p domain.Participant) error {
	// Whole-row replace: a re-join resets joined_at. Observed behavior,
	// kept on purpose.
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO participants (dni, joined_at, last_seen_at)
		VALUES (?, ?, ?)
		ON CONFLICT(dni) DO UPDATE SET
			joined_at = excluded.joined_at,
			last_seen_at = excluded.last_seen_at`,
		p.DNI, toMillis(p.JoinedAt), toMillis(p.LastSeenAt))
	return err
}

func (r *participantsRepo) Touch(ctx context.Context, dni string, lastSeen time.Time) error {
	// UPDATE only: a heartbeat must never resurrect a departed entry.
	_, err := r.db.ExecContext(ctx,
		`UPDATE participants SET last_seen_at = ? WHERE dni = ?`,
		toMillis(lastSeen), dni)
	return err
}

func (r *participantsRepo) Delete(ctx context.Context, dni string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM participants WHERE dni = ?`, dni)
	return err
}

func (r *participantsRepo) Get(ctx context.Context, dni string) (domain.Participant, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT dni, joined_at, last_seen_at FROM participants WHERE dni = ?`, dni)
	return scanParticipant(row)
}

func (r *participantsRepo) List(ctx context.Context) ([]domain.Participant, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT dni, joined_at, last_seen_at FROM participants ORDER BY joined_at, dni`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Participant
	for rows.Next() {
		p, err := scanParticipant(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *participantsRepo) ListWithNames(ctx context.Context) ([]domain.ParticipantView, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT p.dni, u.name, p.joined_at, p.last_seen_at
		FROM participants p
		JOIN users u ON u.dni = p.dni
		ORDER BY p.joined_at, p.dni`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.ParticipantView
	for rows.Next() {
		var v domain.ParticipantView
		var joined, lastSeen int64
		if err := rows.Scan(&v.DNI, &v.Name, &joined, &lastSeen); err != nil {
			return nil, err
		}
		v.JoinedAt = fromMillis(joined)
		v.LastSeenAt = fromMillis(lastSeen)
		out = append(out, v)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanParticipant(s scanner) (domain.Participant, error) {
	var p domain.Participant
	var joined, lastSeen int64
	if err := s.Scan(&p.DNI, &joined, &lastSeen); err != nil {
		return domain.Participant{}, mapNotFound(err)
	}
	p.JoinedAt = fromMillis(joined)
	p.LastSeenAt = fromMillis(lastSeen)
	return p, nil
}
