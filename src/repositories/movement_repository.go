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

type MovementRepository interface {
	GetAll(ctx context.Context, skip, limit int) ([]models.Movement, error)
	GetByID(ctx context.Context, id int) (*models.Movement, error)
	GetFiltered(ctx context.Context, filter schemas.PeriodFilter) ([]models.Movement, error)
	GetByPeriod(ctx context.Context, filter schemas.PeriodFilter) ([]schemas.MovementWithClient, error)
	Create(ctx context.Context, movement *models.Movement) error
	Update(ctx context.Context, id int, patch schemas.MovementUpdateRequest) (*models.Movement, error)
	Delete(ctx context.Context, id int) (*models.Movement, error)
}

type movementRepo struct {
	db *pgxpool.Pool
}

func NewMovementRepository(db *pgxpool.Pool) MovementRepository {
	return &movementRepo{db: db}
}

func (r *movementRepo) GetAll(ctx context.Context, skip, limit int) ([]models.Movement, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, client_id, type, amount, date, note
		 FROM movements ORDER BY date DESC OFFSET $1 LIMIT $2`,
		skip, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanMovements(rows)
}

func (r *movementRepo) GetByID(ctx context.Context, id int) (*models.Movement, error) {
	var m models.Movement
	err := r.db.QueryRow(ctx,
		`SELECT id, client_id, type, amount, date, note FROM movements WHERE id = $1`, id,
	).Scan(&m.ID, &m.ClientID, &m.Type, &m.Amount, &m.Date, &m.Note)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

// GetFiltered selects movements matching the period filter, newest first.
// Every present bound is inclusive.
func (r *movementRepo) GetFiltered(ctx context.Context, filter schemas.PeriodFilter) ([]models.Movement, error) {
	query := `SELECT id, client_id, type, amount, date, note FROM movements WHERE 1=1`
	args := []interface{}{}

	if filter.StartDate != nil {
		args = append(args, *filter.StartDate)
		query += fmt.Sprintf(" AND date >= $%d", len(args))
	}
	if filter.EndDate != nil {
		args = append(args, *filter.EndDate)
		query += fmt.Sprintf(" AND date <= $%d", len(args))
	}
	if filter.ClientID != nil {
		args = append(args, *filter.ClientID)
		query += fmt.Sprintf(" AND client_id = $%d", len(args))
	}
	query += " ORDER BY date DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanMovements(rows)
}

// GetByPeriod behaves like GetFiltered but joins client identity onto each row.
func (r *movementRepo) GetByPeriod(ctx context.Context, filter schemas.PeriodFilter) ([]schemas.MovementWithClient, error) {
	query := `SELECT m.id, m.client_id, m.type, m.amount, m.date, m.note, c.name, c.email
	          FROM movements m
	          JOIN clients c ON m.client_id = c.id
	          WHERE 1=1`
	args := []interface{}{}

	if filter.StartDate != nil {
		args = append(args, *filter.StartDate)
		query += fmt.Sprintf(" AND m.date >= $%d", len(args))
	}
	if filter.EndDate != nil {
		args = append(args, *filter.EndDate)
		query += fmt.Sprintf(" AND m.date <= $%d", len(args))
	}
	if filter.ClientID != nil {
		args = append(args, *filter.ClientID)
		query += fmt.Sprintf(" AND m.client_id = $%d", len(args))
	}
	query += " ORDER BY m.date DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var movements []schemas.MovementWithClient
	for rows.Next() {
		var m schemas.MovementWithClient
		if err := rows.Scan(&m.ID, &m.ClientID, &m.Type, &m.Amount, &m.Date, &m.Note, &m.ClientName, &m.ClientEmail); err != nil {
			return nil, err
		}
		movements = append(movements, m)
	}
	return movements, rows.Err()
}

func (r *movementRepo) Create(ctx context.Context, movement *models.Movement) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO movements (client_id, type, amount, date, note)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		movement.ClientID, movement.Type, movement.Amount, movement.Date, movement.Note,
	).Scan(&movement.ID)
}

func (r *movementRepo) Update(ctx context.Context, id int, patch schemas.MovementUpdateRequest) (*models.Movement, error) {
	movement, err := r.GetByID(ctx, id)
	if err != nil || movement == nil {
		return nil, err
	}

	if patch.Type != nil && *patch.Type != "" {
		movement.Type = models.MovementType(*patch.Type)
	}
	if patch.Amount != nil && !patch.Amount.IsZero() {
		movement.Amount = *patch.Amount
	}
	if patch.Date != nil && !patch.Date.IsZero() {
		movement.Date = *patch.Date
	}
	if patch.Note != nil && *patch.Note != "" {
		movement.Note = patch.Note
	}

	_, err = r.db.Exec(ctx,
		`UPDATE movements SET type = $1, amount = $2, date = $3, note = $4 WHERE id = $5`,
		movement.Type, movement.Amount, movement.Date, movement.Note, movement.ID,
	)
	if err != nil {
		return nil, err
	}
	return movement, nil
}

func (r *movementRepo) Delete(ctx context.Context, id int) (*models.Movement, error) {
	var m models.Movement
	err := r.db.QueryRow(ctx,
		`DELETE FROM movements WHERE id = $1 RETURNING id, client_id, type, amount, date, note`, id,
	).Scan(&m.ID, &m.ClientID, &m.Type, &m.Amount, &m.Date, &m.Note)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func scanMovements(rows pgx.Rows) ([]models.Movement, error) {
	var movements []models.Movement
	for rows.Next() {
		var m models.Movement
		if err := rows.Scan(&m.ID, &m.ClientID, &m.Type, &m.Amount, &m.Date, &m.Note); err != nil {
			return nil, err
		}
		movements = append(movements, m)
	}
	return movements, rows.Err()
}
