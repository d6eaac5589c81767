package sqlite

import (
	"context"
	"database/sql"

	"github.com/malliaquatic/clubd/internal/club/domain"
)

type departuresRepo struct {
	db *sql.DB
}

func (r *departuresRepo) Append(ctx context.Context, d domain.Departure) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO departures (id, dni, name, left_at)
		VALUES (?, ?, ?, ?)`,
		d.ID, d.DNI, d.Name, toMillis(d.LeftAt))
	return err
}

func (r *departuresRepo) ListRecent(ctx context.Context, limit int) ([]domain.Departure, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, dni, name, left_at FROM departures
		ORDER BY left_at DESC, id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Departure
	for rows.Next() {
		var d domain.Departure
		var leftAt int64
		if err := rows.Scan(&d.ID, &d.DNI, &d.Name, &leftAt); err != nil {
			return nil, err
		}
		d.LeftAt = fromMillis(leftAt)
		out = append(out, d)
	}
	return out, rows.Err()
}
