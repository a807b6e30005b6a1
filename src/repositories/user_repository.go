package repositories

import (
	"context"
	"errors"

	"backoffice/src/models"
	"backoffice/src/schemas"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository interface {
	GetAll(ctx context.Context, skip, limit int) ([]models.User, error)
	GetByID(ctx context.Context, id int) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, id int, patch schemas.UserUpdateRequest) (*models.User, error)
	Delete(ctx context.Context, id int) (*models.User, error)
}

type userRepo struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) GetAll(ctx context.Context, skip, limit int) ([]models.User, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, email, password, is_active, created_at FROM users ORDER BY id OFFSET $1 LIMIT $2`,
		skip, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Email, &u.Password, &u.IsActive, &u.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *userRepo) GetByID(ctx context.Context, id int) (*models.User, error) {
	var u models.User
	err := r.db.QueryRow(ctx,
		`SELECT id, email, password, is_active, created_at FROM users WHERE id = $1`, id,
	).Scan(&u.ID, &u.Email, &u.Password, &u.IsActive, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := r.db.QueryRow(ctx,
		`SELECT id, email, password, is_active, created_at FROM users WHERE email = $1`, email,
	).Scan(&u.ID, &u.Email, &u.Password, &u.IsActive, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) Create(ctx context.Context, user *models.User) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO users (email, password, is_active) VALUES ($1, $2, $3) RETURNING id, created_at`,
		user.Email, user.Password, user.IsActive,
	).Scan(&user.ID, &user.CreatedAt)
}

// Update applies present patch fields; Password is expected to arrive already hashed.
func (r *userRepo) Update(ctx context.Context, id int, patch schemas.UserUpdateRequest) (*models.User, error) {
	user, err := r.GetByID(ctx, id)
	if err != nil || user == nil {
		return nil, err
	}

	if patch.Email != nil && *patch.Email != "" {
		user.Email = *patch.Email
	}
	if patch.Password != nil && *patch.Password != "" {
		user.Password = *patch.Password
	}
	if patch.IsActive != nil {
		user.IsActive = *patch.IsActive
	}

	_, err = r.db.Exec(ctx,
		`UPDATE users SET email = $1, password = $2, is_active = $3 WHERE id = $4`,
		user.Email, user.Password, user.IsActive, user.ID,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *userRepo) Delete(ctx context.Context, id int) (*models.User, error) {
	var u models.User
	err := r.db.QueryRow(ctx,
		`DELETE FROM users WHERE id = $1 RETURNING id, email, password, is_active, created_at`, id,
	).Scan(&u.ID, &u.Email, &u.Password, &u.IsActive, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}
