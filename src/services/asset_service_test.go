package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"backoffice/src/models"
	"backoffice/src/schemas"
	"backoffice/src/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAssetRepo struct {
	assets []models.Asset
}

func (f *fakeAssetRepo) GetAll(_ context.Context, _, _ int) ([]models.Asset, error) {
	return f.assets, nil
}

func (f *fakeAssetRepo) GetByID(_ context.Context, id int) (*models.Asset, error) {
	for _, a := range f.assets {
		if a.ID == id {
			asset := a
			return &asset, nil
		}
	}
	return nil, nil
}

func (f *fakeAssetRepo) GetByTicker(_ context.Context, ticker string) (*models.Asset, error) {
	for _, a := range f.assets {
		if a.Ticker == strings.ToUpper(ticker) {
			asset := a
			return &asset, nil
		}
	}
	return nil, nil
}

func (f *fakeAssetRepo) Create(_ context.Context, asset *models.Asset) error {
	asset.Ticker = strings.ToUpper(asset.Ticker)
	asset.ID = len(f.assets) + 1
	f.assets = append(f.assets, *asset)
	return nil
}

func (f *fakeAssetRepo) Update(_ context.Context, _ int, _ schemas.AssetUpdateRequest) (*models.Asset, error) {
	return nil, nil
}

func (f *fakeAssetRepo) Delete(_ context.Context, _ int) (*models.Asset, error) {
	return nil, nil
}

func (f *fakeAssetRepo) SearchByTicker(_ context.Context, _ string) ([]models.Asset, error) {
	return f.assets, nil
}

type fakeMarketClient struct {
	quotes map[string]*schemas.QuoteResponse
	err    error
	calls  int
}

func (f *fakeMarketClient) FetchAssetData(_ context.Context, ticker string) (*schemas.QuoteResponse, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	quote, ok := f.quotes[strings.ToUpper(ticker)]
	if !ok {
		return nil, errors.New("no quote data")
	}
	return quote, nil
}

func TestCreateAssetIdempotent(t *testing.T) {
	repo := &fakeAssetRepo{}
	market := &fakeMarketClient{}
	service := services.NewAssetService(repo, market)

	req := schemas.AssetCreateRequest{
		Ticker:   "PETR4.SA",
		Name:     "Petrobras",
		Exchange: "Sao Paulo",
		Currency: "BRL",
	}

	first, err := service.CreateAsset(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "PETR4.SA", first.Ticker)

	second, err := service.CreateAsset(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, repo.assets, 1)
}

func TestCreateFromTicker(t *testing.T) {
	repo := &fakeAssetRepo{}
	market := &fakeMarketClient{quotes: map[string]*schemas.QuoteResponse{
		"AAPL": {Ticker: "AAPL", Name: "Apple Inc.", Exchange: "NasdaqGS", Currency: "USD"},
	}}
	service := services.NewAssetService(repo, market)

	asset, err := service.CreateFromTicker(context.Background(), "aapl")
	require.NoError(t, err)
	assert.Equal(t, "AAPL", asset.Ticker)
	assert.Equal(t, "Apple Inc.", asset.Name)
	assert.Equal(t, "NasdaqGS", asset.Exchange)
	assert.Equal(t, "USD", asset.Currency)

	// A second call short-circuits on the stored row.
	again, err := service.CreateFromTicker(context.Background(), "AAPL")
	require.NoError(t, err)
	assert.Equal(t, asset.ID, again.ID)
	assert.Equal(t, 1, market.calls)
}

func TestCreateFromTickerLookupFailure(t *testing.T) {
	repo := &fakeAssetRepo{}
	market := &fakeMarketClient{err: errors.New("service unavailable")}
	service := services.NewAssetService(repo, market)

	_, err := service.CreateFromTicker(context.Background(), "VALE3.SA")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not resolve ticker VALE3.SA")
	assert.Empty(t, repo.assets)
}

func TestResolveByID(t *testing.T) {
	repo := &fakeAssetRepo{assets: []models.Asset{
		{ID: 1, Ticker: "AAPL", Name: "Apple Inc.", Exchange: "NasdaqGS", Currency: "USD"},
	}}
	market := &fakeMarketClient{}
	service := services.NewAssetService(repo, market)

	id := 1
	asset, err := service.Resolve(context.Background(), schemas.AssetReference{ID: &id, Ticker: "1"})
	require.NoError(t, err)
	assert.Equal(t, "AAPL", asset.Ticker)
	assert.Equal(t, 0, market.calls)
}

func TestResolveByTicker(t *testing.T) {
	repo := &fakeAssetRepo{}
	market := &fakeMarketClient{quotes: map[string]*schemas.QuoteResponse{
		"MSFT": {Ticker: "MSFT", Name: "Microsoft Corporation", Exchange: "NasdaqGS", Currency: "USD"},
	}}
	service := services.NewAssetService(repo, market)

	asset, err := service.Resolve(context.Background(), schemas.AssetReference{Ticker: "MSFT"})
	require.NoError(t, err)
	assert.Equal(t, "MSFT", asset.Ticker)
	assert.Equal(t, 1, market.calls)
}

func TestResolveUnknownIDFallsBackToTicker(t *testing.T) {
	repo := &fakeAssetRepo{assets: []models.Asset{
		{ID: 1, Ticker: "GOOG", Name: "Alphabet Inc.", Exchange: "NasdaqGS", Currency: "USD"},
	}}
	market := &fakeMarketClient{}
	service := services.NewAssetService(repo, market)

	id := 42
	asset, err := service.Resolve(context.Background(), schemas.AssetReference{ID: &id, Ticker: "GOOG"})
	require.NoError(t, err)
	assert.Equal(t, "GOOG", asset.Ticker)
	assert.Equal(t, 0, market.calls)
}
