package sqlite

import (
	"context"
	"database/sql"
)

// The config document lives in a single fixed-key row, mirroring the
// singleton-by-fixed-key table of the hosted deployment.
const configKey = "app_config"

type configRepo struct {
	db *sql.DB
}

func (r *configRepo) Get(ctx context.Context) ([]byte, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT document FROM app_config WHERE key = ?`, configKey)

	var raw []byte
	if err := row.Scan(&raw); err != nil {
		return nil, mapNotFound(err)
	}
	return raw, nil
}

func (r *configRepo) Save(ctx context.Context, raw []byte) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO app_config (key, document)
		VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET document = excluded.document`,
		configKey, raw)
	return err
}
