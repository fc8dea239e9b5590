package repository

import (
	"context"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/umalmyha/crm/internal/model"
)

// InteractionRepository represents behavior for interaction repository
type InteractionRepository interface {
	FindByCustomerID(context.Context, string) ([]*model.Interaction, error)
	Create(context.Context, *model.Interaction) error
}

type postgresInteractionRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresInteractionRepository builds new postgres InteractionRepository
func NewPostgresInteractionRepository(p *pgxpool.Pool) InteractionRepository {
	return &postgresInteractionRepository{pool: p}
}

func (r *postgresInteractionRepository) FindByCustomerID(ctx context.Context, customerID string) ([]*model.Interaction, error) {
	q := `SELECT id, customer_id, type, notes, to_char(date, 'YYYY-MM-DD'), created_at
          FROM interactions WHERE customer_id = $1 ORDER BY date DESC, created_at DESC`

	rows, err := r.pool.Query(ctx, q, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	interactions := make([]*model.Interaction, 0)
	for rows.Next() {
		var i model.Interaction
		if err := rows.Scan(&i.ID, &i.CustomerID, &i.Type, &i.Notes, &i.Date, &i.CreatedAt); err != nil {
			return nil, err
		}
		interactions = append(interactions, &i)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return interactions, nil
}

func (r *postgresInteractionRepository) Create(ctx context.Context, i *model.Interaction) error {
	q := "INSERT INTO interactions(id, customer_id, type, notes, date, created_at) VALUES($1, $2, $3, $4, $5::date, $6)"
	if _, err := r.pool.Exec(ctx, q, i.ID, i.CustomerID, i.Type, i.Notes, i.Date, i.CreatedAt); err != nil {
		return err
	}
	return nil
}
