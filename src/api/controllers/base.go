package controllers

import (
	"bytes"
	"context"
	"time"

	"backoffice/src/clients/yahoo"
	"backoffice/src/models"
	"backoffice/src/repositories"
	"backoffice/src/schemas"
	"backoffice/src/services"

	"github.com/go-chi/jwtauth"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

type IController interface {
	GetAllClients(ctx context.Context, skip, limit int) ([]models.Client, error)
	GetClientByID(ctx context.Context, id int) (*models.Client, error)
	CreateClient(ctx context.Context, req schemas.ClientCreateRequest) (*models.Client, error)
	UpdateClient(ctx context.Context, id int, patch schemas.ClientUpdateRequest) (*models.Client, error)
	DeleteClient(ctx context.Context, id int) (*models.Client, error)
	SearchClients(ctx context.Context, search schemas.ClientSearchRequest) ([]models.Client, error)
	CountClients(ctx context.Context, isActive *bool) (int, error)

	GetAllAssets(ctx context.Context, skip, limit int) ([]models.Asset, error)
	GetAssetByID(ctx context.Context, id int) (*models.Asset, error)
	GetAssetByTicker(ctx context.Context, ticker string) (*models.Asset, error)
	CreateAsset(ctx context.Context, req schemas.AssetCreateRequest) (*models.Asset, error)
	CreateAssetFromTicker(ctx context.Context, ticker string) (*models.Asset, error)
	UpdateAsset(ctx context.Context, id int, patch schemas.AssetUpdateRequest) (*models.Asset, error)
	DeleteAsset(ctx context.Context, id int) (*models.Asset, error)
	SearchAssetsByTicker(ctx context.Context, ticker string) ([]models.Asset, error)

	GetAllAllocations(ctx context.Context, skip, limit int) ([]models.Allocation, error)
	GetAllocationByID(ctx context.Context, id int) (*models.Allocation, error)
	GetClientAllocations(ctx context.Context, clientID int) ([]schemas.AllocationWithAsset, error)
	GetClientAllocationByAsset(ctx context.Context, clientID, assetID int) (*models.Allocation, error)
	CreateAllocation(ctx context.Context, req schemas.AllocationCreateRequest, ref schemas.AssetReference) (*models.Allocation, error)
	UpdateAllocation(ctx context.Context, id int, patch schemas.AllocationUpdateRequest) (*models.Allocation, error)
	DeleteAllocation(ctx context.Context, id int) (*models.Allocation, error)

	GetAllMovements(ctx context.Context, skip, limit int) ([]models.Movement, error)
	GetMovementByID(ctx context.Context, id int) (*models.Movement, error)
	CreateMovement(ctx context.Context, req schemas.MovementCreateRequest) (*models.Movement, error)
	UpdateMovement(ctx context.Context, id int, patch schemas.MovementUpdateRequest) (*models.Movement, error)
	DeleteMovement(ctx context.Context, id int) (*models.Movement, error)
	GetClientMovements(ctx context.Context, clientID int, startDate, endDate *time.Time) ([]models.Movement, error)
	GetMovementsByPeriod(ctx context.Context, filter schemas.PeriodFilter) ([]schemas.MovementWithClient, error)
	GetMovementSummary(ctx context.Context, filter schemas.PeriodFilter) (*schemas.MovementSummary, error)
	GetOfficeSummary(ctx context.Context, filter schemas.PeriodFilter) (*schemas.OfficeSummary, error)
	GetClientBalance(ctx context.Context, clientID int, asOfDate *time.Time) (decimal.Decimal, error)
	ExportClientMovementsCSV(ctx context.Context, clientID int, filter schemas.PeriodFilter) (*bytes.Buffer, error)
	ExportClientMovementsXLSX(ctx context.Context, clientID int, filter schemas.PeriodFilter) (*excelize.File, error)

	GetAllUsers(ctx context.Context, skip, limit int) ([]models.User, error)
	GetUserByID(ctx context.Context, id int) (*models.User, error)
	CreateUser(ctx context.Context, req schemas.UserCreateRequest) (*models.User, error)
	UpdateUser(ctx context.Context, id int, patch schemas.UserUpdateRequest) (*models.User, error)
	DeleteUser(ctx context.Context, id int) (*models.User, error)
	PostToken(ctx context.Context, req schemas.TokenRequest) (*schemas.TokenResponse, error)
}

type Controller struct {
	Clients     repositories.ClientRepository
	Assets      repositories.AssetRepository
	Allocations repositories.AllocationRepository
	Movements   repositories.MovementRepository
	Users       repositories.UserRepository

	AssetService  services.AssetServiceI
	ReportService services.ReportServiceI

	TokenAuth *jwtauth.JWTAuth
	TokenTTL  time.Duration
}

func NewController(db *pgxpool.Pool, marketClient yahoo.ServiceClientI, tokenAuth *jwtauth.JWTAuth, tokenTTL time.Duration) *Controller {
	clients := repositories.NewClientRepository(db)
	assets := repositories.NewAssetRepository(db)
	allocations := repositories.NewAllocationRepository(db)
	movements := repositories.NewMovementRepository(db)
	users := repositories.NewUserRepository(db)

	return &Controller{
		Clients:       clients,
		Assets:        assets,
		Allocations:   allocations,
		Movements:     movements,
		Users:         users,
		AssetService:  services.NewAssetService(assets, marketClient),
		ReportService: services.NewReportService(movements, clients),
		TokenAuth:     tokenAuth,
		TokenTTL:      tokenTTL,
	}
}
