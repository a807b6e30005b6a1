package repositories

import (
	"context"
	"errors"

	"backoffice/src/models"
	"backoffice/src/schemas"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AllocationRepository interface {
	GetAll(ctx context.Context, skip, limit int) ([]models.Allocation, error)
	GetByID(ctx context.Context, id int) (*models.Allocation, error)
	GetByClientID(ctx context.Context, clientID int) ([]schemas.AllocationWithAsset, error)
	GetByClientAndAsset(ctx context.Context, clientID, assetID int) (*models.Allocation, error)
	Create(ctx context.Context, allocation *models.Allocation) error
	Update(ctx context.Context, id int, patch schemas.AllocationUpdateRequest) (*models.Allocation, error)
	Delete(ctx context.Context, id int) (*models.Allocation, error)
}

type allocationRepo struct {
	db *pgxpool.Pool
}

func NewAllocationRepository(db *pgxpool.Pool) AllocationRepository {
	return &allocationRepo{db: db}
}

func (r *allocationRepo) GetAll(ctx context.Context, skip, limit int) ([]models.Allocation, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, client_id, asset_id, quantity, buy_price, buy_date
		 FROM allocations ORDER BY id OFFSET $1 LIMIT $2`,
		skip, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var allocations []models.Allocation
	for rows.Next() {
		var a models.Allocation
		if err := rows.Scan(&a.ID, &a.ClientID, &a.AssetID, &a.Quantity, &a.BuyPrice, &a.BuyDate); err != nil {
			return nil, err
		}
		allocations = append(allocations, a)
	}
	return allocations, rows.Err()
}

func (r *allocationRepo) GetByID(ctx context.Context, id int) (*models.Allocation, error) {
	var a models.Allocation
	err := r.db.QueryRow(ctx,
		`SELECT id, client_id, asset_id, quantity, buy_price, buy_date FROM allocations WHERE id = $1`, id,
	).Scan(&a.ID, &a.ClientID, &a.AssetID, &a.Quantity, &a.BuyPrice, &a.BuyDate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

// GetByClientID returns the client's lots joined with the asset identity
// fields. CurrentValue is left unset; pricing happens upstream.
func (r *allocationRepo) GetByClientID(ctx context.Context, clientID int) ([]schemas.AllocationWithAsset, error) {
	rows, err := r.db.Query(ctx,
		`SELECT al.id, al.client_id, al.asset_id, al.quantity, al.buy_price, al.buy_date,
		        a.ticker, a.name, a.exchange, a.currency
		 FROM allocations al
		 JOIN assets a ON al.asset_id = a.id
		 WHERE al.client_id = $1
		 ORDER BY al.id`,
		clientID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var allocations []schemas.AllocationWithAsset
	for rows.Next() {
		var a schemas.AllocationWithAsset
		if err := rows.Scan(
			&a.ID, &a.ClientID, &a.AssetID, &a.Quantity, &a.BuyPrice, &a.BuyDate,
			&a.AssetTicker, &a.AssetName, &a.AssetExchange, &a.AssetCurrency,
		); err != nil {
			return nil, err
		}
		allocations = append(allocations, a)
	}
	return allocations, rows.Err()
}

func (r *allocationRepo) GetByClientAndAsset(ctx context.Context, clientID, assetID int) (*models.Allocation, error) {
	var a models.Allocation
	err := r.db.QueryRow(ctx,
		`SELECT id, client_id, asset_id, quantity, buy_price, buy_date
		 FROM allocations WHERE client_id = $1 AND asset_id = $2`,
		clientID, assetID,
	).Scan(&a.ID, &a.ClientID, &a.AssetID, &a.Quantity, &a.BuyPrice, &a.BuyDate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (r *allocationRepo) Create(ctx context.Context, allocation *models.Allocation) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO allocations (client_id, asset_id, quantity, buy_price, buy_date)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		allocation.ClientID, allocation.AssetID, allocation.Quantity, allocation.BuyPrice, allocation.BuyDate,
	).Scan(&allocation.ID)
}

func (r *allocationRepo) Update(ctx context.Context, id int, patch schemas.AllocationUpdateRequest) (*models.Allocation, error) {
	allocation, err := r.GetByID(ctx, id)
	if err != nil || allocation == nil {
		return nil, err
	}

	if patch.Quantity != nil && !patch.Quantity.IsZero() {
		allocation.Quantity = *patch.Quantity
	}
	if patch.BuyPrice != nil && !patch.BuyPrice.IsZero() {
		allocation.BuyPrice = *patch.BuyPrice
	}
	if patch.BuyDate != nil && !patch.BuyDate.IsZero() {
		allocation.BuyDate = *patch.BuyDate
	}

	_, err = r.db.Exec(ctx,
		`UPDATE allocations SET quantity = $1, buy_price = $2, buy_date = $3 WHERE id = $4`,
		allocation.Quantity, allocation.BuyPrice, allocation.BuyDate, allocation.ID,
	)
	if err != nil {
		return nil, err
	}
	return allocation, nil
}

func (r *allocationRepo) Delete(ctx context.Context, id int) (*models.Allocation, error) {
	var a models.Allocation
	err := r.db.QueryRow(ctx,
		`DELETE FROM allocations WHERE id = $1 RETURNING id, client_id, asset_id, quantity, buy_price, buy_date`, id,
	).Scan(&a.ID, &a.ClientID, &a.AssetID, &a.Quantity, &a.BuyPrice, &a.BuyDate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}
