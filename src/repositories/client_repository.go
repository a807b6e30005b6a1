package repositories

import (
	"context"
	"errors"
	"fmt"

	"backoffice/src/models"
	"backoffice/src/schemas"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ClientRepository interface {
	GetAll(ctx context.Context, skip, limit int) ([]models.Client, error)
	ListAll(ctx context.Context) ([]models.Client, error)
	GetByID(ctx context.Context, id int) (*models.Client, error)
	Create(ctx context.Context, client *models.Client) error
	Update(ctx context.Context, id int, patch schemas.ClientUpdateRequest) (*models.Client, error)
	Delete(ctx context.Context, id int) (*models.Client, error)
	Search(ctx context.Context, search schemas.ClientSearchRequest) ([]models.Client, error)
	Count(ctx context.Context, isActive *bool) (int, error)
}

type clientRepo struct {
	db *pgxpool.Pool
}

func NewClientRepository(db *pgxpool.Pool) ClientRepository {
	return &clientRepo{db: db}
}

func (r *clientRepo) GetAll(ctx context.Context, skip, limit int) ([]models.Client, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, email, is_active, created_at FROM clients ORDER BY id OFFSET $1 LIMIT $2`,
		skip, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanClients(rows)
}

func (r *clientRepo) ListAll(ctx context.Context) ([]models.Client, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, email, is_active, created_at FROM clients ORDER BY id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanClients(rows)
}

func (r *clientRepo) GetByID(ctx context.Context, id int) (*models.Client, error) {
	var c models.Client
	err := r.db.QueryRow(ctx,
		`SELECT id, name, email, is_active, created_at FROM clients WHERE id = $1`, id,
	).Scan(&c.ID, &c.Name, &c.Email, &c.IsActive, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *clientRepo) Create(ctx context.Context, client *models.Client) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO clients (name, email, is_active) VALUES ($1, $2, $3) RETURNING id, created_at`,
		client.Name, client.Email, client.IsActive,
	).Scan(&client.ID, &client.CreatedAt)
}

// Update loads the row, applies the present patch fields and writes the full
// row back. Absent and empty fields keep their stored values.
func (r *clientRepo) Update(ctx context.Context, id int, patch schemas.ClientUpdateRequest) (*models.Client, error) {
	client, err := r.GetByID(ctx, id)
	if err != nil || client == nil {
		return nil, err
	}

	if patch.Name != nil && *patch.Name != "" {
		client.Name = *patch.Name
	}
	if patch.Email != nil && *patch.Email != "" {
		client.Email = *patch.Email
	}
	if patch.IsActive != nil {
		client.IsActive = *patch.IsActive
	}

	_, err = r.db.Exec(ctx,
		`UPDATE clients SET name = $1, email = $2, is_active = $3 WHERE id = $4`,
		client.Name, client.Email, client.IsActive, client.ID,
	)
	if err != nil {
		return nil, err
	}
	return client, nil
}

func (r *clientRepo) Delete(ctx context.Context, id int) (*models.Client, error) {
	var c models.Client
	err := r.db.QueryRow(ctx,
		`DELETE FROM clients WHERE id = $1 RETURNING id, name, email, is_active, created_at`, id,
	).Scan(&c.ID, &c.Name, &c.Email, &c.IsActive, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *clientRepo) Search(ctx context.Context, search schemas.ClientSearchRequest) ([]models.Client, error) {
	query := `SELECT id, name, email, is_active, created_at FROM clients WHERE 1=1`
	args := []interface{}{}

	if search.Name != "" {
		args = append(args, "%"+search.Name+"%")
		query += fmt.Sprintf(" AND name ILIKE $%d", len(args))
	}
	if search.Email != "" {
		args = append(args, "%"+search.Email+"%")
		query += fmt.Sprintf(" AND email ILIKE $%d", len(args))
	}
	if search.IsActive != nil {
		args = append(args, *search.IsActive)
		query += fmt.Sprintf(" AND is_active = $%d", len(args))
	}

	args = append(args, search.Skip)
	query += fmt.Sprintf(" ORDER BY id OFFSET $%d", len(args))
	args = append(args, search.Limit)
	query += fmt.Sprintf(" LIMIT $%d", len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanClients(rows)
}

func (r *clientRepo) Count(ctx context.Context, isActive *bool) (int, error) {
	query := `SELECT COUNT(*) FROM clients`
	args := []interface{}{}
	if isActive != nil {
		query += ` WHERE is_active = $1`
		args = append(args, *isActive)
	}

	var count int
	if err := r.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func scanClients(rows pgx.Rows) ([]models.Client, error) {
	var clients []models.Client
	for rows.Next() {
		var c models.Client
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.IsActive, &c.CreatedAt); err != nil {
			return nil, err
		}
		clients = append(clients, c)
	}
	return clients, rows.Err()
}
