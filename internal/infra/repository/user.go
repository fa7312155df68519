package repository

import (
	"context"
	"errors"

	"course-checkout/internal/infra"
	"course-checkout/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

const findUserByEmailSQL = `
SELECT id, email, password_hash, document, role, is_active, last_login
FROM users
WHERE email = $1`

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*commands.AuthorizedUser, string, error) {
	var (
		account commands.AuthorizedUser
		hashed  string
	)
	err := r.db.QueryRow(ctx, findUserByEmailSQL, email).Scan(
		&account.ID,
		&account.Email,
		&hashed,
		&account.Document,
		&account.Role,
		&account.IsActive,
		&account.LastLogin,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}

	return &account, hashed, nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, userID uuid.UUID) error {
	_, err := r.db.Exec(ctx, `UPDATE users SET last_login = now() WHERE id = $1`, userID)
	if err != nil {
		return infra.WrapRepoErr("failed to update last login", err)
	}
	return nil
}
