package repositories

import (
	"context"
	"errors"
	"strings"

	"backoffice/src/models"
	"backoffice/src/schemas"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AssetRepository interface {
	GetAll(ctx context.Context, skip, limit int) ([]models.Asset, error)
	GetByID(ctx context.Context, id int) (*models.Asset, error)
	GetByTicker(ctx context.Context, ticker string) (*models.Asset, error)
	Create(ctx context.Context, asset *models.Asset) error
	Update(ctx context.Context, id int, patch schemas.AssetUpdateRequest) (*models.Asset, error)
	Delete(ctx context.Context, id int) (*models.Asset, error)
	SearchByTicker(ctx context.Context, ticker string) ([]models.Asset, error)
}

type assetRepo struct {
	db *pgxpool.Pool
}

func NewAssetRepository(db *pgxpool.Pool) AssetRepository {
	return &assetRepo{db: db}
}

func (r *assetRepo) GetAll(ctx context.Context, skip, limit int) ([]models.Asset, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, ticker, name, exchange, currency FROM assets ORDER BY id OFFSET $1 LIMIT $2`,
		skip, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanAssets(rows)
}

func (r *assetRepo) GetByID(ctx context.Context, id int) (*models.Asset, error) {
	var a models.Asset
	err := r.db.QueryRow(ctx,
		`SELECT id, ticker, name, exchange, currency FROM assets WHERE id = $1`, id,
	).Scan(&a.ID, &a.Ticker, &a.Name, &a.Exchange, &a.Currency)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

// GetByTicker looks an asset up by its upper-cased ticker.
func (r *assetRepo) GetByTicker(ctx context.Context, ticker string) (*models.Asset, error) {
	var a models.Asset
	err := r.db.QueryRow(ctx,
		`SELECT id, ticker, name, exchange, currency FROM assets WHERE ticker = $1`,
		strings.ToUpper(ticker),
	).Scan(&a.ID, &a.Ticker, &a.Name, &a.Exchange, &a.Currency)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (r *assetRepo) Create(ctx context.Context, asset *models.Asset) error {
	asset.Ticker = strings.ToUpper(asset.Ticker)
	return r.db.QueryRow(ctx,
		`INSERT INTO assets (ticker, name, exchange, currency) VALUES ($1, $2, $3, $4) RETURNING id`,
		asset.Ticker, asset.Name, asset.Exchange, asset.Currency,
	).Scan(&asset.ID)
}

func (r *assetRepo) Update(ctx context.Context, id int, patch schemas.AssetUpdateRequest) (*models.Asset, error) {
	asset, err := r.GetByID(ctx, id)
	if err != nil || asset == nil {
		return nil, err
	}

	if patch.Ticker != nil && *patch.Ticker != "" {
		asset.Ticker = strings.ToUpper(*patch.Ticker)
	}
	if patch.Name != nil && *patch.Name != "" {
		asset.Name = *patch.Name
	}
	if patch.Exchange != nil && *patch.Exchange != "" {
		asset.Exchange = *patch.Exchange
	}
	if patch.Currency != nil && *patch.Currency != "" {
		asset.Currency = *patch.Currency
	}

	_, err = r.db.Exec(ctx,
		`UPDATE assets SET ticker = $1, name = $2, exchange = $3, currency = $4 WHERE id = $5`,
		asset.Ticker, asset.Name, asset.Exchange, asset.Currency, asset.ID,
	)
	if err != nil {
		return nil, err
	}
	return asset, nil
}

func (r *assetRepo) Delete(ctx context.Context, id int) (*models.Asset, error) {
	var a models.Asset
	err := r.db.QueryRow(ctx,
		`DELETE FROM assets WHERE id = $1 RETURNING id, ticker, name, exchange, currency`, id,
	).Scan(&a.ID, &a.Ticker, &a.Name, &a.Exchange, &a.Currency)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (r *assetRepo) SearchByTicker(ctx context.Context, ticker string) ([]models.Asset, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, ticker, name, exchange, currency FROM assets WHERE ticker ILIKE $1 ORDER BY id`,
		"%"+ticker+"%",
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanAssets(rows)
}

func scanAssets(rows pgx.Rows) ([]models.Asset, error) {
	var assets []models.Asset
	for rows.Next() {
		var a models.Asset
		if err := rows.Scan(&a.ID, &a.Ticker, &a.Name, &a.Exchange, &a.Currency); err != nil {
			return nil, err
		}
		assets = append(assets, a)
	}
	return assets, rows.Err()
}
