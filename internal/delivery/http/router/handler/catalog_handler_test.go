package handler

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"holodex/internal/delivery/http/middleware"
	"holodex/internal/delivery/http/validator"
	"holodex/internal/domain/entity"
	domainerrors "holodex/internal/domain/errors"
	mockUC "holodex/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// newTestEcho builds an Echo instance with the production validator and
// error handler so tests observe the real wire contract.
func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(slog.Default()).HandleHTTPError

	return e
}

// handleWithError runs the handler and routes any returned error through the
// central error handler, the way the framework does in production.
func handleWithError(e *echo.Echo, c echo.Context, err error) {
	if err != nil {
		e.HTTPErrorHandler(err, c)
	}
}

func TestCatalogHandler_ListPeople(t *testing.T) {
	catalogUC := mockUC.NewMockCatalogUsecase(t)
	h := NewCatalogHandler(CatalogHandlerParams{CatalogUC: catalogUC, Logger: slog.Default()})

	catalogUC.EXPECT().
		ListPeople(mock.Anything).
		Return([]*entity.Person{
			{ID: 1, Name: "Luke Skywalker", Height: "172", Mass: "77", Gender: "male"},
		}, nil)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/people", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.ListPeople(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`[{"id":1,"name":"Luke Skywalker","height":"172","mass":"77","gender":"male"}]`,
		rec.Body.String())
}

func TestCatalogHandler_ListPeople_Empty(t *testing.T) {
	catalogUC := mockUC.NewMockCatalogUsecase(t)
	h := NewCatalogHandler(CatalogHandlerParams{CatalogUC: catalogUC, Logger: slog.Default()})

	catalogUC.EXPECT().
		ListPeople(mock.Anything).
		Return([]*entity.Person{}, nil)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/people", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.ListPeople(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestCatalogHandler_GetPlanet(t *testing.T) {
	catalogUC := mockUC.NewMockCatalogUsecase(t)
	h := NewCatalogHandler(CatalogHandlerParams{CatalogUC: catalogUC, Logger: slog.Default()})

	catalogUC.EXPECT().
		GetPlanet(mock.Anything, uint(1)).
		Return(&entity.Planet{
			ID: 1, Name: "Tatooine", Diameter: "10465",
			Population: "200000", Climate: "arid", Terrain: "desert",
		}, nil)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/planet/1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")

	require.NoError(t, h.GetPlanet(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"id":1,"name":"Tatooine","diameter":"10465","population":"200000","climate":"arid","terrain":"desert"}`,
		rec.Body.String())
}

func TestCatalogHandler_GetPlanet_NotFound(t *testing.T) {
	catalogUC := mockUC.NewMockCatalogUsecase(t)
	h := NewCatalogHandler(CatalogHandlerParams{CatalogUC: catalogUC, Logger: slog.Default()})

	catalogUC.EXPECT().
		GetPlanet(mock.Anything, uint(42)).
		Return(nil, domainerrors.ErrPlanetNotFound)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/planet/42", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("42")

	handleWithError(e, c, h.GetPlanet(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"Planet not found"}`, rec.Body.String())
}

func TestCatalogHandler_GetPlanet_NonNumericID(t *testing.T) {
	catalogUC := mockUC.NewMockCatalogUsecase(t)
	h := NewCatalogHandler(CatalogHandlerParams{CatalogUC: catalogUC, Logger: slog.Default()})

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/planet/tatooine", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("tatooine")

	handleWithError(e, c, h.GetPlanet(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"Planet not found"}`, rec.Body.String())
}

func TestCatalogHandler_GetPerson_NotFound(t *testing.T) {
	catalogUC := mockUC.NewMockCatalogUsecase(t)
	h := NewCatalogHandler(CatalogHandlerParams{CatalogUC: catalogUC, Logger: slog.Default()})

	catalogUC.EXPECT().
		GetPerson(mock.Anything, uint(9)).
		Return(nil, domainerrors.ErrPersonNotFound)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/people/9", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("9")

	handleWithError(e, c, h.GetPerson(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"Person not found"}`, rec.Body.String())
}

func TestCatalogHandler_GetVehicle_NullableFields(t *testing.T) {
	catalogUC := mockUC.NewMockCatalogUsecase(t)
	h := NewCatalogHandler(CatalogHandlerParams{CatalogUC: catalogUC, Logger: slog.Default()})

	length := "4.5"
	crew := "2"
	catalogUC.EXPECT().
		GetVehicle(mock.Anything, uint(4)).
		Return(&entity.Vehicle{ID: 4, Name: "Snowspeeder", Length: &length, Crew: &crew}, nil)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/vehicle/4", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("4")

	require.NoError(t, h.GetVehicle(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"id":4,"name":"Snowspeeder","length":"4.5","crew":"2","passengers":null}`,
		rec.Body.String())
}

func TestCatalogHandler_ListVehicles_InternalError(t *testing.T) {
	catalogUC := mockUC.NewMockCatalogUsecase(t)
	h := NewCatalogHandler(CatalogHandlerParams{CatalogUC: catalogUC, Logger: slog.Default()})

	catalogUC.EXPECT().
		ListVehicles(mock.Anything).
		Return(nil, domainerrors.NewDatabaseExecuteError(assert.AnError, "select failed"))

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/vehicle", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handleWithError(e, c, h.ListVehicles(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"message":"Internal server error"}`, rec.Body.String())
}
