package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/umalmyha/crm/internal/model"
)

// FollowupRepository represents behavior for follow-up repository
type FollowupRepository interface {
	FindByID(context.Context, string) (*model.Followup, error)
	FindByCustomerID(context.Context, string) ([]*model.Followup, error)
	FindOpenByUserID(context.Context, string, string) ([]*model.CustomerFollowup, error)
	CountOpenByUserID(context.Context, string) (int, error)
	Create(context.Context, *model.Followup) error
	Complete(context.Context, string) error
}

const followupColumns = "f.id, f.customer_id, to_char(f.followup_date, 'YYYY-MM-DD'), f.action, f.completed, f.created_at"

type postgresFollowupRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresFollowupRepository builds new postgres FollowupRepository
func NewPostgresFollowupRepository(p *pgxpool.Pool) FollowupRepository {
	return &postgresFollowupRepository{pool: p}
}

func (r *postgresFollowupRepository) FindByID(ctx context.Context, id string) (*model.Followup, error) {
	q := "SELECT " + followupColumns + " FROM followups f WHERE f.id = $1"

	var f model.Followup
	row := r.pool.QueryRow(ctx, q, id)
	if err := row.Scan(&f.ID, &f.CustomerID, &f.FollowupDate, &f.Action, &f.Completed, &f.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &f, nil
}

func (r *postgresFollowupRepository) FindByCustomerID(ctx context.Context, customerID string) ([]*model.Followup, error) {
	q := "SELECT " + followupColumns + " FROM followups f WHERE f.customer_id = $1 ORDER BY f.followup_date, f.created_at"

	rows, err := r.pool.Query(ctx, q, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	followups := make([]*model.Followup, 0)
	for rows.Next() {
		var f model.Followup
		if err := rows.Scan(&f.ID, &f.CustomerID, &f.FollowupDate, &f.Action, &f.Completed, &f.CreatedAt); err != nil {
			return nil, err
		}
		followups = append(followups, &f)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return followups, nil
}

// FindOpenByUserID returns open follow-ups of user customers, on filters by date unless empty
func (r *postgresFollowupRepository) FindOpenByUserID(ctx context.Context, userID string, on string) ([]*model.CustomerFollowup, error) {
	q := `SELECT ` + followupColumns + `, c.name
          FROM followups f JOIN customers c ON c.id = f.customer_id
          WHERE c.user_id = $1 AND NOT f.completed AND ($2::text = '' OR f.followup_date = NULLIF($2::text, '')::date)
          ORDER BY f.followup_date, f.created_at`

	rows, err := r.pool.Query(ctx, q, userID, on)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	followups := make([]*model.CustomerFollowup, 0)
	for rows.Next() {
		var f model.CustomerFollowup
		if err := rows.Scan(&f.ID, &f.CustomerID, &f.FollowupDate, &f.Action, &f.Completed, &f.CreatedAt, &f.CustomerName); err != nil {
			return nil, err
		}
		followups = append(followups, &f)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return followups, nil
}

func (r *postgresFollowupRepository) CountOpenByUserID(ctx context.Context, userID string) (int, error) {
	q := `SELECT count(*) FROM followups f JOIN customers c ON c.id = f.customer_id
          WHERE c.user_id = $1 AND NOT f.completed`

	var count int
	if err := r.pool.QueryRow(ctx, q, userID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *postgresFollowupRepository) Create(ctx context.Context, f *model.Followup) error {
	q := `INSERT INTO followups(id, customer_id, followup_date, action, completed, created_at)
          VALUES($1, $2, $3::date, $4, $5, $6)`
	if _, err := r.pool.Exec(ctx, q, f.ID, f.CustomerID, f.FollowupDate, f.Action, f.Completed, f.CreatedAt); err != nil {
		return err
	}
	return nil
}

func (r *postgresFollowupRepository) Complete(ctx context.Context, id string) error {
	q := "UPDATE followups SET completed = TRUE WHERE id = $1"
	if _, err := r.pool.Exec(ctx, q, id); err != nil {
		return err
	}
	return nil
}
