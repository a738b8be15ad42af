package handler

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"holodex/internal/domain/entity"
	domainerrors "holodex/internal/domain/errors"
	mockUC "holodex/internal/mocks/usecase"
	"holodex/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newUserHandler(t *testing.T) (*mockUC.MockCatalogUsecase, *mockUC.MockFavoriteUsecase, *UserHandler) {
	t.Helper()

	catalogUC := mockUC.NewMockCatalogUsecase(t)
	favoriteUC := mockUC.NewMockFavoriteUsecase(t)
	h := NewUserHandler(UserHandlerParams{
		CatalogUC:  catalogUC,
		FavoriteUC: favoriteUC,
		Logger:     slog.Default(),
	})

	return catalogUC, favoriteUC, h
}

// jsonRequest builds a request carrying a JSON body, the way the favorites
// endpoints receive user_id even on GET.
func jsonRequest(method, path, body string) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	return req
}

func TestUserHandler_ListUsers(t *testing.T) {
	catalogUC, _, h := newUserHandler(t)

	lastName := "Solo"
	catalogUC.EXPECT().
		ListUsers(mock.Anything).
		Return([]*entity.User{
			{ID: 1, Name: "han", LastName: &lastName, Email: "han@falcon.example", Password: "secret", IsActive: true},
		}, nil)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.ListUsers(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	// Password and is_active never leak into the projection.
	assert.JSONEq(t,
		`[{"id":1,"name":"han","last_name":"Solo","email":"han@falcon.example"}]`,
		rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "secret")
}

func TestUserHandler_ListFavorites(t *testing.T) {
	_, favoriteUC, h := newUserHandler(t)

	personID := uint(5)
	favoriteUC.EXPECT().
		ListFavorites(mock.Anything, uint(1)).
		Return([]*usecase.FavoriteOutput{
			{ID: 10, UserID: 1, PersonID: &personID},
		}, nil)

	e := newTestEcho()
	req := jsonRequest(http.MethodGet, "/users/favorites", `{"user_id": 1}`)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.ListFavorites(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`[{"id":10,"user_id":1,"person_id":5,"planet_id":null,"vehicle_id":null}]`,
		rec.Body.String())
}

func TestUserHandler_ListFavorites_MissingUserID(t *testing.T) {
	_, _, h := newUserHandler(t)

	e := newTestEcho()
	req := jsonRequest(http.MethodGet, "/users/favorites", `{}`)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handleWithError(e, c, h.ListFavorites(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"message":"User ID is required"}`, rec.Body.String())
}

func TestUserHandler_ListFavorites_NoBody(t *testing.T) {
	_, _, h := newUserHandler(t)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/users/favorites", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handleWithError(e, c, h.ListFavorites(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"message":"User ID is required"}`, rec.Body.String())
}

func TestUserHandler_ListFavorites_MalformedBody(t *testing.T) {
	_, _, h := newUserHandler(t)

	e := newTestEcho()
	req := jsonRequest(http.MethodGet, "/users/favorites", `{"user_id":`)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handleWithError(e, c, h.ListFavorites(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"message":"User ID is required"}`, rec.Body.String())
}

func TestUserHandler_ListFavorites_UserNotFound(t *testing.T) {
	_, favoriteUC, h := newUserHandler(t)

	favoriteUC.EXPECT().
		ListFavorites(mock.Anything, uint(99)).
		Return(nil, domainerrors.ErrUserNotFound)

	e := newTestEcho()
	req := jsonRequest(http.MethodGet, "/users/favorites", `{"user_id": 99}`)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handleWithError(e, c, h.ListFavorites(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"User not found"}`, rec.Body.String())
}
