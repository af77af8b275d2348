package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/emrekoca/recipebox/internal/models"
)

const (
	userNotFound = "User not found"
	userConflict = "Username or email already exists"
	userColumns  = "id, username, email, password_hash, created_at, updated_at"
)

type usersRepo struct{ pool *pgxpool.Pool }

func (r *usersRepo) Create(ctx context.Context, username, email, passwordHash string) (models.User, error) {
	var u models.User
	err := r.pool.QueryRow(ctx,
		`INSERT INTO users (username, email, password_hash)
		 VALUES ($1, $2, $3)
		 RETURNING `+userColumns,
		username, email, passwordHash,
	).Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	return u, mapErr(err, userNotFound, userConflict)
}

func (r *usersRepo) GetByID(ctx context.Context, id int64) (models.User, error) {
	var u models.User
	err := r.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id=$1`, id,
	).Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	return u, mapErr(err, userNotFound, userConflict)
}

func (r *usersRepo) GetByEmail(ctx context.Context, email string) (models.User, error) {
	var u models.User
	err := r.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE email=$1`, email,
	).Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	return u, mapErr(err, userNotFound, userConflict)
}

func (r *usersRepo) Update(ctx context.Context, u models.User) (models.User, error) {
	var out models.User
	err := r.pool.QueryRow(ctx,
		`UPDATE users SET username=$2, email=$3, updated_at=now()
		 WHERE id=$1
		 RETURNING `+userColumns,
		u.ID, u.Username, u.Email,
	).Scan(&out.ID, &out.Username, &out.Email, &out.PasswordHash, &out.CreatedAt, &out.UpdatedAt)
	return out, mapErr(err, userNotFound, userConflict)
}

// Delete removes the user's recipes and the user row atomically. A reader
// can never observe a recipe whose owner is gone.
func (r *usersRepo) Delete(ctx context.Context, id int64) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM recipes WHERE owner_id=$1`, id); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `DELETE FROM users WHERE id=$1`, id); err != nil {
		return err
	}
	return tx.Commit(ctx)
}
