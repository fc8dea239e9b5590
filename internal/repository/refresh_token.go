package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"
	"github.com/umalmyha/crm/internal/model"
	"github.com/umalmyha/crm/pkg/db/transactor"
)

// RefreshTokenRepository represents behavior for refresh token repository
type RefreshTokenRepository interface {
	Create(context.Context, *model.RefreshToken) error
	FindTokensByUserID(context.Context, string) ([]*model.RefreshToken, error)
	DeleteByUserID(context.Context, string) error
	DeleteByID(context.Context, string) error
	FindByID(context.Context, string) (*model.RefreshToken, error)
}

type postgresRefreshTokenRepository struct {
	executor transactor.PgxExecutor
}

// NewPostgresRefreshTokenRepository builds new postgres RefreshTokenRepository
func NewPostgresRefreshTokenRepository(executor transactor.PgxExecutor) RefreshTokenRepository {
	return &postgresRefreshTokenRepository{executor: executor}
}

func (r *postgresRefreshTokenRepository) Create(ctx context.Context, t *model.RefreshToken) error {
	q := "INSERT INTO refresh_tokens(id, user_id, fingerprint, expires_in, created_at) VALUES($1, $2, $3, $4, $5)"
	if _, err := r.executor.Executor(ctx).Exec(ctx, q, t.ID, t.UserID, t.Fingerprint, t.ExpiresIn, t.CreatedAt); err != nil {
		return err
	}
	return nil
}

func (r *postgresRefreshTokenRepository) FindTokensByUserID(ctx context.Context, userID string) ([]*model.RefreshToken, error) {
	q := "SELECT id, user_id, fingerprint, expires_in, created_at FROM refresh_tokens WHERE user_id = $1"

	rows, err := r.executor.Executor(ctx).Query(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tokens := make([]*model.RefreshToken, 0)
	for rows.Next() {
		var t model.RefreshToken
		if err := rows.Scan(&t.ID, &t.UserID, &t.Fingerprint, &t.ExpiresIn, &t.CreatedAt); err != nil {
			return nil, err
		}
		tokens = append(tokens, &t)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return tokens, nil
}

func (r *postgresRefreshTokenRepository) DeleteByUserID(ctx context.Context, userID string) error {
	q := "DELETE FROM refresh_tokens WHERE user_id = $1"
	if _, err := r.executor.Executor(ctx).Exec(ctx, q, userID); err != nil {
		return err
	}
	return nil
}

func (r *postgresRefreshTokenRepository) DeleteByID(ctx context.Context, id string) error {
	q := "DELETE FROM refresh_tokens WHERE id = $1"
	if _, err := r.executor.Executor(ctx).Exec(ctx, q, id); err != nil {
		return err
	}
	return nil
}

func (r *postgresRefreshTokenRepository) FindByID(ctx context.Context, id string) (*model.RefreshToken, error) {
	q := "SELECT id, user_id, fingerprint, expires_in, created_at FROM refresh_tokens WHERE id = $1"

	var t model.RefreshToken
	err := r.executor.Executor(ctx).QueryRow(ctx, q, id).Scan(&t.ID, &t.UserID, &t.Fingerprint, &t.ExpiresIn, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}
