package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"
	"github.com/umalmyha/crm/internal/model"
	"github.com/umalmyha/crm/pkg/db/transactor"
)

// UserRepository represents behavior for user repository
type UserRepository interface {
	Create(context.Context, *model.User) error
	FindByEmail(context.Context, string) (*model.User, error)
	FindByID(context.Context, string) (*model.User, error)
}

type postgresUserRepository struct {
	executor transactor.PgxExecutor
}

// NewPostgresUserRepository builds new postgres UserRepository
func NewPostgresUserRepository(executor transactor.PgxExecutor) UserRepository {
	return &postgresUserRepository{executor: executor}
}

func (r *postgresUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	q := "SELECT id, email, password_hash, created_at FROM users WHERE email = $1"
	row := r.executor.Executor(ctx).QueryRow(ctx, q, email)
	return r.scanRow(row)
}

func (r *postgresUserRepository) Create(ctx context.Context, u *model.User) error {
	q := "INSERT INTO users(id, email, password_hash, created_at) VALUES($1, $2, $3, $4)"
	if _, err := r.executor.Executor(ctx).Exec(ctx, q, u.ID, u.Email, u.PasswordHash, u.CreatedAt); err != nil {
		return err
	}
	return nil
}

func (r *postgresUserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	q := "SELECT id, email, password_hash, created_at FROM users WHERE id = $1"
	row := r.executor.Executor(ctx).QueryRow(ctx, q, id)
	return r.scanRow(row)
}

func (r *postgresUserRepository) scanRow(row pgx.Row) (*model.User, error) {
	var u model.User
	if err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}
