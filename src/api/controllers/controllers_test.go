package controllers_test

import (
	"context"
	"testing"
	"time"

	"backoffice/src/api/controllers"
	"backoffice/src/models"
	"backoffice/src/schemas"
	"backoffice/src/utils"

	"github.com/go-chi/jwtauth"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeClientRepo struct {
	byID      map[int]models.Client
	deleteErr error
}

func (f *fakeClientRepo) GetAll(_ context.Context, _, _ int) ([]models.Client, error) {
	return nil, nil
}

func (f *fakeClientRepo) ListAll(_ context.Context) ([]models.Client, error) {
	return nil, nil
}

func (f *fakeClientRepo) GetByID(_ context.Context, id int) (*models.Client, error) {
	if c, ok := f.byID[id]; ok {
		return &c, nil
	}
	return nil, nil
}

func (f *fakeClientRepo) Create(_ context.Context, client *models.Client) error {
	client.ID = len(f.byID) + 1
	if f.byID == nil {
		f.byID = map[int]models.Client{}
	}
	f.byID[client.ID] = *client
	return nil
}

func (f *fakeClientRepo) Update(_ context.Context, id int, _ schemas.ClientUpdateRequest) (*models.Client, error) {
	if c, ok := f.byID[id]; ok {
		return &c, nil
	}
	return nil, nil
}

func (f *fakeClientRepo) Delete(_ context.Context, id int) (*models.Client, error) {
	if f.deleteErr != nil {
		return nil, f.deleteErr
	}
	if c, ok := f.byID[id]; ok {
		delete(f.byID, id)
		return &c, nil
	}
	return nil, nil
}

func (f *fakeClientRepo) Search(_ context.Context, _ schemas.ClientSearchRequest) ([]models.Client, error) {
	return nil, nil
}

func (f *fakeClientRepo) Count(_ context.Context, _ *bool) (int, error) {
	return len(f.byID), nil
}

type fakeUserRepo struct {
	byEmail map[string]models.User
}

func (f *fakeUserRepo) GetAll(_ context.Context, _, _ int) ([]models.User, error) {
	return nil, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, _ int) (*models.User, error) {
	return nil, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	if u, ok := f.byEmail[email]; ok {
		return &u, nil
	}
	return nil, nil
}

func (f *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	if f.byEmail == nil {
		f.byEmail = map[string]models.User{}
	}
	user.ID = len(f.byEmail) + 1
	f.byEmail[user.Email] = *user
	return nil
}

func (f *fakeUserRepo) Update(_ context.Context, _ int, _ schemas.UserUpdateRequest) (*models.User, error) {
	return nil, nil
}

func (f *fakeUserRepo) Delete(_ context.Context, _ int) (*models.User, error) {
	return nil, nil
}

type fakeMovementRepo struct {
	created []models.Movement
}

func (f *fakeMovementRepo) GetAll(_ context.Context, _, _ int) ([]models.Movement, error) {
	return nil, nil
}

func (f *fakeMovementRepo) GetByID(_ context.Context, _ int) (*models.Movement, error) {
	return nil, nil
}

func (f *fakeMovementRepo) GetFiltered(_ context.Context, _ schemas.PeriodFilter) ([]models.Movement, error) {
	return nil, nil
}

func (f *fakeMovementRepo) GetByPeriod(_ context.Context, _ schemas.PeriodFilter) ([]schemas.MovementWithClient, error) {
	return nil, nil
}

func (f *fakeMovementRepo) Create(_ context.Context, movement *models.Movement) error {
	movement.ID = len(f.created) + 1
	f.created = append(f.created, *movement)
	return nil
}

func (f *fakeMovementRepo) Update(_ context.Context, _ int, _ schemas.MovementUpdateRequest) (*models.Movement, error) {
	return nil, nil
}

func (f *fakeMovementRepo) Delete(_ context.Context, _ int) (*models.Movement, error) {
	return nil, nil
}

func TestGetClientByIDNotFound(t *testing.T) {
	c := &controllers.Controller{Clients: &fakeClientRepo{}}

	_, err := c.GetClientByID(context.Background(), 42)
	require.Error(t, err)

	var httpErr *utils.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 404, httpErr.Code)
}

func TestCreateClientValidation(t *testing.T) {
	c := &controllers.Controller{Clients: &fakeClientRepo{}}

	_, err := c.CreateClient(context.Background(), schemas.ClientCreateRequest{Name: "No Email"})
	require.Error(t, err)

	var httpErr *utils.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 400, httpErr.Code)
}

func TestCreateClientDefaultsActive(t *testing.T) {
	c := &controllers.Controller{Clients: &fakeClientRepo{}}

	client, err := c.CreateClient(context.Background(), schemas.ClientCreateRequest{
		Name:  "Maria Silva",
		Email: "maria@example.com",
	})
	require.NoError(t, err)
	assert.True(t, client.IsActive)
}

func TestDeleteClientWithDependents(t *testing.T) {
	repo := &fakeClientRepo{
		byID:      map[int]models.Client{1: {ID: 1, Name: "Maria Silva"}},
		deleteErr: &pgconn.PgError{Code: "23503"},
	}
	c := &controllers.Controller{Clients: repo}

	_, err := c.DeleteClient(context.Background(), 1)
	require.Error(t, err)

	var httpErr *utils.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 409, httpErr.Code)
}

func TestCreateMovementNegativeAmount(t *testing.T) {
	c := &controllers.Controller{Movements: &fakeMovementRepo{}}

	_, err := c.CreateMovement(context.Background(), schemas.MovementCreateRequest{
		ClientID: 1,
		Type:     "deposit",
		Amount:   decimal.RequireFromString("-10"),
		Date:     time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
	})
	require.Error(t, err)

	var httpErr *utils.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 400, httpErr.Code)
}

func TestCreateMovementInvalidType(t *testing.T) {
	c := &controllers.Controller{Movements: &fakeMovementRepo{}}

	_, err := c.CreateMovement(context.Background(), schemas.MovementCreateRequest{
		ClientID: 1,
		Type:     "transfer",
		Amount:   decimal.RequireFromString("10"),
		Date:     time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
	})
	require.Error(t, err)

	var httpErr *utils.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 400, httpErr.Code)
}

func TestCreateUserHashesPassword(t *testing.T) {
	users := &fakeUserRepo{}
	c := &controllers.Controller{Users: users}

	user, err := c.CreateUser(context.Background(), schemas.UserCreateRequest{
		Email:    "admin@example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("s3cret-pass")))
}

func TestPostToken(t *testing.T) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.MinCost)
	require.NoError(t, err)

	users := &fakeUserRepo{byEmail: map[string]models.User{
		"admin@example.com": {ID: 1, Email: "admin@example.com", Password: string(hashed), IsActive: true},
	}}
	tokenAuth := jwtauth.New("HS256", []byte("test-secret"), nil)
	c := &controllers.Controller{Users: users, TokenAuth: tokenAuth, TokenTTL: time.Hour}

	token, err := c.PostToken(context.Background(), schemas.TokenRequest{
		Email:    "admin@example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)
	assert.Equal(t, "bearer", token.TokenType)
	require.NotEmpty(t, token.AccessToken)

	decoded, err := tokenAuth.Decode(token.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", decoded.Subject())
}

func TestPostTokenWrongPassword(t *testing.T) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.MinCost)
	require.NoError(t, err)

	users := &fakeUserRepo{byEmail: map[string]models.User{
		"admin@example.com": {ID: 1, Email: "admin@example.com", Password: string(hashed), IsActive: true},
	}}
	tokenAuth := jwtauth.New("HS256", []byte("test-secret"), nil)
	c := &controllers.Controller{Users: users, TokenAuth: tokenAuth, TokenTTL: time.Hour}

	_, err = c.PostToken(context.Background(), schemas.TokenRequest{
		Email:    "admin@example.com",
		Password: "wrong",
	})
	require.Error(t, err)

	var httpErr *utils.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 401, httpErr.Code)
}

func TestPostTokenUnknownUser(t *testing.T) {
	tokenAuth := jwtauth.New("HS256", []byte("test-secret"), nil)
	c := &controllers.Controller{Users: &fakeUserRepo{}, TokenAuth: tokenAuth, TokenTTL: time.Hour}

	_, err := c.PostToken(context.Background(), schemas.TokenRequest{
		Email:    "ghost@example.com",
		Password: "whatever",
	})
	require.Error(t, err)

	var httpErr *utils.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 401, httpErr.Code)
}
