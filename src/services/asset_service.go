package services

import (
	"context"
	"fmt"

	"backoffice/src/clients/yahoo"
	"backoffice/src/models"
	"backoffice/src/repositories"
	"backoffice/src/schemas"
)

type AssetServiceI interface {
	CreateAsset(ctx context.Context, req schemas.AssetCreateRequest) (*models.Asset, error)
	CreateFromTicker(ctx context.Context, ticker string) (*models.Asset, error)
	Resolve(ctx context.Context, ref schemas.AssetReference) (*models.Asset, error)
}

type AssetService struct {
	assets repositories.AssetRepository
	market yahoo.ServiceClientI
}

func NewAssetService(assets repositories.AssetRepository, market yahoo.ServiceClientI) *AssetService {
	return &AssetService{assets: assets, market: market}
}

// CreateAsset inserts a new asset unless the ticker already exists, in which
// case the existing row is returned unchanged.
func (s *AssetService) CreateAsset(ctx context.Context, req schemas.AssetCreateRequest) (*models.Asset, error) {
	existing, err := s.assets.GetByTicker(ctx, req.Ticker)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	asset := &models.Asset{
		Ticker:   req.Ticker,
		Name:     req.Name,
		Exchange: req.Exchange,
		Currency: req.Currency,
	}
	if err := s.assets.Create(ctx, asset); err != nil {
		return nil, err
	}
	return asset, nil
}

// CreateFromTicker resolves the ticker through the market-data lookup and
// creates the asset, or returns the existing row for an already-known ticker.
func (s *AssetService) CreateFromTicker(ctx context.Context, ticker string) (*models.Asset, error) {
	existing, err := s.assets.GetByTicker(ctx, ticker)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	quote, err := s.market.FetchAssetData(ctx, ticker)
	if err != nil {
		return nil, fmt.Errorf("could not resolve ticker %s: %w", ticker, err)
	}

	asset := &models.Asset{
		Ticker:   quote.Ticker,
		Name:     quote.Name,
		Exchange: quote.Exchange,
		Currency: quote.Currency,
	}
	if err := s.assets.Create(ctx, asset); err != nil {
		return nil, err
	}
	return asset, nil
}

// Resolve turns an asset reference into a persisted asset: by id when the id
// resolves, otherwise through the ticker lookup-or-create path.
func (s *AssetService) Resolve(ctx context.Context, ref schemas.AssetReference) (*models.Asset, error) {
	if ref.ID != nil {
		asset, err := s.assets.GetByID(ctx, *ref.ID)
		if err != nil {
			return nil, err
		}
		if asset != nil {
			return asset, nil
		}
	}
	if ref.Ticker == "" {
		return nil, fmt.Errorf("asset reference does not resolve to an existing asset")
	}
	return s.CreateFromTicker(ctx, ref.Ticker)
}
