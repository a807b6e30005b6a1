package repositories_test

import (
	"context"
	"os"
	"testing"
	"time"

	"backoffice/src/models"
	"backoffice/src/repositories"
	"backoffice/src/schemas"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB connects to the database named by TEST_DATABASE_URL and wipes
// the tables touched by these tests. Without the variable the tests skip.
func setupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	pool, err := pgxpool.New(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = pool.Exec(context.Background(),
		`TRUNCATE movements, allocations, clients, assets RESTART IDENTITY CASCADE`)
	require.NoError(t, err)

	return pool
}

func createTestClient(t *testing.T, repo repositories.ClientRepository, name, email string) *models.Client {
	t.Helper()
	client := &models.Client{Name: name, Email: email, IsActive: true}
	require.NoError(t, repo.Create(context.Background(), client))
	return client
}

func TestClientRepositoryCRUD(t *testing.T) {
	db := setupTestDB(t)
	repo := repositories.NewClientRepository(db)
	ctx := context.Background()

	created := createTestClient(t, repo, "Maria Silva", "maria@example.com")
	require.NotZero(t, created.ID)
	require.False(t, created.CreatedAt.IsZero())

	loaded, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "Maria Silva", loaded.Name)

	newEmail := "maria.silva@example.com"
	updated, err := repo.Update(ctx, created.ID, schemas.ClientUpdateRequest{Email: &newEmail})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, newEmail, updated.Email)
	assert.Equal(t, "Maria Silva", updated.Name)

	empty := ""
	unchanged, err := repo.Update(ctx, created.ID, schemas.ClientUpdateRequest{Name: &empty})
	require.NoError(t, err)
	assert.Equal(t, "Maria Silva", unchanged.Name)

	deleted, err := repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, deleted)

	gone, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestClientRepositorySearchAndCount(t *testing.T) {
	db := setupTestDB(t)
	repo := repositories.NewClientRepository(db)
	ctx := context.Background()

	createTestClient(t, repo, "Maria Silva", "maria@example.com")
	createTestClient(t, repo, "Joao Souza", "joao@example.com")

	found, err := repo.Search(ctx, schemas.ClientSearchRequest{Name: "mar", Limit: 10})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Maria Silva", found[0].Name)

	count, err := repo.Count(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestMovementRepositoryFiltering(t *testing.T) {
	db := setupTestDB(t)
	clients := repositories.NewClientRepository(db)
	movements := repositories.NewMovementRepository(db)
	ctx := context.Background()

	client := createTestClient(t, clients, "Maria Silva", "maria@example.com")

	dates := []time.Time{
		time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	}
	for i, date := range dates {
		movementType := models.MovementDeposit
		if i == 1 {
			movementType = models.MovementWithdrawal
		}
		require.NoError(t, movements.Create(ctx, &models.Movement{
			ClientID: client.ID,
			Type:     movementType,
			Amount:   decimal.RequireFromString("100.00"),
			Date:     date,
		}))
	}

	// Bounds are inclusive on both ends.
	start, end := dates[0], dates[1]
	filtered, err := movements.GetFiltered(ctx, schemas.PeriodFilter{StartDate: &start, EndDate: &end})
	require.NoError(t, err)
	require.Len(t, filtered, 2)

	// Newest first.
	assert.True(t, filtered[0].Date.After(filtered[1].Date))

	joined, err := movements.GetByPeriod(ctx, schemas.PeriodFilter{ClientID: &client.ID})
	require.NoError(t, err)
	require.Len(t, joined, 3)
	assert.Equal(t, "Maria Silva", joined[0].ClientName)
	assert.Equal(t, "maria@example.com", joined[0].ClientEmail)
}

func TestAllocationRepositoryJoin(t *testing.T) {
	db := setupTestDB(t)
	clients := repositories.NewClientRepository(db)
	assets := repositories.NewAssetRepository(db)
	allocations := repositories.NewAllocationRepository(db)
	ctx := context.Background()

	client := createTestClient(t, clients, "Maria Silva", "maria@example.com")

	asset := &models.Asset{Ticker: "petr4.sa", Name: "Petrobras", Exchange: "Sao Paulo", Currency: "BRL"}
	require.NoError(t, assets.Create(ctx, asset))
	assert.Equal(t, "PETR4.SA", asset.Ticker)

	allocation := &models.Allocation{
		ClientID: client.ID,
		AssetID:  asset.ID,
		Quantity: decimal.RequireFromString("10.5"),
		BuyPrice: decimal.RequireFromString("38.52"),
		BuyDate:  time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, allocations.Create(ctx, allocation))

	withAsset, err := allocations.GetByClientID(ctx, client.ID)
	require.NoError(t, err)
	require.Len(t, withAsset, 1)
	assert.Equal(t, "PETR4.SA", withAsset[0].AssetTicker)
	assert.Equal(t, "Petrobras", withAsset[0].AssetName)
	assert.True(t, withAsset[0].Quantity.Equal(decimal.RequireFromString("10.5")))

	// The client now has dependents, deleting it violates the foreign key.
	_, err = clients.Delete(ctx, client.ID)
	require.Error(t, err)
}

func TestAssetRepositoryGetByTickerCaseInsensitive(t *testing.T) {
	db := setupTestDB(t)
	assets := repositories.NewAssetRepository(db)
	ctx := context.Background()

	asset := &models.Asset{Ticker: "AAPL", Name: "Apple Inc.", Exchange: "NasdaqGS", Currency: "USD"}
	require.NoError(t, assets.Create(ctx, asset))

	found, err := assets.GetByTicker(ctx, "aapl")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, asset.ID, found.ID)
}
