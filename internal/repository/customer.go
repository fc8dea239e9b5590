package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/umalmyha/crm/internal/model"
)

// CustomerRepository represents behavior for customer repository
type CustomerRepository interface {
	FindByID(context.Context, string) (*model.Customer, error)
	FindAllByUserID(context.Context, string) ([]*model.Customer, error)
	CountByUserID(context.Context, string) (int, error)
	Create(context.Context, *model.Customer) error
	UpdateStatus(context.Context, string, model.Status) error
}

const customerColumns = "id, user_id, name, email, phone, status, created_at"

type postgresCustomerRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresCustomerRepository builds new postgres CustomerRepository
func NewPostgresCustomerRepository(p *pgxpool.Pool) CustomerRepository {
	return &postgresCustomerRepository{pool: p}
}

func (r *postgresCustomerRepository) FindByID(ctx context.Context, id string) (*model.Customer, error) {
	q := "SELECT " + customerColumns + " FROM customers WHERE id = $1"

	var c model.Customer
	row := r.pool.QueryRow(ctx, q, id)
	if err := row.Scan(&c.ID, &c.UserID, &c.Name, &c.Email, &c.Phone, &c.Status, &c.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *postgresCustomerRepository) FindAllByUserID(ctx context.Context, userID string) ([]*model.Customer, error) {
	q := "SELECT " + customerColumns + " FROM customers WHERE user_id = $1 ORDER BY created_at DESC"

	rows, err := r.pool.Query(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customers := make([]*model.Customer, 0)
	for rows.Next() {
		var c model.Customer
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name, &c.Email, &c.Phone, &c.Status, &c.CreatedAt); err != nil {
			return nil, err
		}
		customers = append(customers, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return customers, nil
}

func (r *postgresCustomerRepository) CountByUserID(ctx context.Context, userID string) (int, error) {
	q := "SELECT count(*) FROM customers WHERE user_id = $1"

	var count int
	if err := r.pool.QueryRow(ctx, q, userID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *postgresCustomerRepository) Create(ctx context.Context, c *model.Customer) error {
	q := "INSERT INTO customers(" + customerColumns + ") VALUES($1, $2, $3, $4, $5, $6, $7)"
	if _, err := r.pool.Exec(ctx, q, c.ID, c.UserID, c.Name, c.Email, c.Phone, c.Status, c.CreatedAt); err != nil {
		return err
	}
	return nil
}

func (r *postgresCustomerRepository) UpdateStatus(ctx context.Context, id string, status model.Status) error {
	q := "UPDATE customers SET status = $1 WHERE id = $2"
	if _, err := r.pool.Exec(ctx, q, status, id); err != nil {
		return err
	}
	return nil
}
