package middlewares_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"backoffice/src/middlewares"
	"backoffice/src/models"
	"backoffice/src/schemas"

	"github.com/go-chi/jwtauth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

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

func (f *fakeUserRepo) Create(_ context.Context, _ *models.User) error {
	return nil
}

func (f *fakeUserRepo) Update(_ context.Context, _ int, _ schemas.UserUpdateRequest) (*models.User, error) {
	return nil, nil
}

func (f *fakeUserRepo) Delete(_ context.Context, _ int) (*models.User, error) {
	return nil, nil
}

func requestWithSubject(t *testing.T, subject string) *http.Request {
	t.Helper()
	tokenAuth := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := tokenAuth.Encode(map[string]interface{}{"sub": subject})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/clients", nil)
	return req.WithContext(jwtauth.NewContext(req.Context(), token, nil))
}

func runActiveUser(users *fakeUserRepo, req *http.Request) (*httptest.ResponseRecorder, bool) {
	reached := false
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		reached = true
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	middlewares.ActiveUser(users)(next).ServeHTTP(rec, req)
	return rec, reached
}

func TestActiveUser(t *testing.T) {
	users := &fakeUserRepo{byEmail: map[string]models.User{
		"admin@example.com": {ID: 1, Email: "admin@example.com", IsActive: true},
	}}

	rec, reached := runActiveUser(users, requestWithSubject(t, "admin@example.com"))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, reached)
}

func TestActiveUserUnknown(t *testing.T) {
	users := &fakeUserRepo{}

	rec, reached := runActiveUser(users, requestWithSubject(t, "ghost@example.com"))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)
}

func TestActiveUserInactive(t *testing.T) {
	users := &fakeUserRepo{byEmail: map[string]models.User{
		"former@example.com": {ID: 2, Email: "former@example.com", IsActive: false},
	}}

	rec, reached := runActiveUser(users, requestWithSubject(t, "former@example.com"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, reached)
}

func TestActiveUserMissingToken(t *testing.T) {
	users := &fakeUserRepo{}
	req := httptest.NewRequest(http.MethodGet, "/api/clients", nil)
	req = req.WithContext(jwtauth.NewContext(req.Context(), nil, jwtauth.ErrNoTokenFound))

	rec, reached := runActiveUser(users, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)
}
