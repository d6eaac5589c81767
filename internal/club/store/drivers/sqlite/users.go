package sqlite

import (
	"context"
	"database/sql"

	"github.com/malliaquatic/clubd/internal/club/domain"
)

type usersRepo struct {
	db *sql.DB
}

func (r *usersRepo) GetByDNI(ctx context.Context, dni string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT dni, name, password_hash, created_at FROM users WHERE dni = ?`, dni)

	var u domain.User
	var createdAt int64
	if err := row.Scan(&u.DNI, &u.Name, &u.PasswordHash, &createdAt); err != nil {
		return domain.User{}, mapNotFound(err)
	}
	u.CreatedAt = fromMillis(createdAt)
	return u, nil
}

func (r *usersRepo) Upsert(ctx context.Context, u domain.User) error {
	// Re-registering an existing DNI overwrites name and password but
	// keeps the original registration date.
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (dni, name, password_hash, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(dni) DO UPDATE SET
			name = excluded.name,
			password_hash = excluded.password_hash`,
		u.DNI, u.Name, u.PasswordHash, toMillis(u.CreatedAt))
	return err
}

func (r *usersRepo) Delete(ctx context.Context, dni string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE dni = ?`, dni)
	return err
}

func (r *usersRepo) List(ctx context.Context) ([]domain.User, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT dni, name, password_hash, created_at FROM users ORDER BY created_at DESC, dni`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.User
	for rows.Next() {
		var u domain.User
		var createdAt int64
		if err := rows.Scan(&u.DNI, &u.Name, &u.PasswordHash, &createdAt); err != nil {
			return nil, err
		}
		u.CreatedAt = fromMillis(createdAt)
		out = append(out, u)
	}
	return out, rows.Err()
}
