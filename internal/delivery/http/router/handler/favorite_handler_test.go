package handler

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"holodex/internal/domain/entity"
	domainerrors "holodex/internal/domain/errors"
	mockUC "holodex/internal/mocks/usecase"
	"holodex/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newFavoriteHandler(t *testing.T) (*mockUC.MockFavoriteUsecase, *FavoriteHandler) {
	t.Helper()

	favoriteUC := mockUC.NewMockFavoriteUsecase(t)
	h := NewFavoriteHandler(FavoriteHandlerParams{
		FavoriteUC: favoriteUC,
		Logger:     slog.Default(),
	})

	return favoriteUC, h
}

func TestFavoriteHandler_AddPlanet(t *testing.T) {
	favoriteUC, h := newFavoriteHandler(t)

	planetID := uint(3)
	favoriteUC.EXPECT().
		AddFavorite(mock.Anything, uint(1), entity.FavoriteTarget{Kind: entity.TargetPlanet, ID: 3}).
		Return(&usecase.FavoriteOutput{ID: 42, UserID: 1, PlanetID: &planetID}, nil)

	e := newTestEcho()
	req := jsonRequest(http.MethodPost, "/favorite/planet/3", `{"user_id": 1}`)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("3")

	require.NoError(t, h.AddPlanet(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"id":42,"user_id":1,"person_id":null,"planet_id":3,"vehicle_id":null}`,
		rec.Body.String())
}

func TestFavoriteHandler_AddPlanet_MissingUserID(t *testing.T) {
	_, h := newFavoriteHandler(t)

	e := newTestEcho()
	req := jsonRequest(http.MethodPost, "/favorite/planet/3", `{}`)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("3")

	handleWithError(e, c, h.AddPlanet(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"message":"User ID is required"}`, rec.Body.String())
}

// user_id is validated before the target id, so a missing user_id wins even
// when the target id is garbage.
func TestFavoriteHandler_AddPlanet_MissingUserIDBeatsBadTarget(t *testing.T) {
	_, h := newFavoriteHandler(t)

	e := newTestEcho()
	req := jsonRequest(http.MethodPost, "/favorite/planet/not-a-number", `{}`)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("not-a-number")

	handleWithError(e, c, h.AddPlanet(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"message":"User ID is required"}`, rec.Body.String())
}

func TestFavoriteHandler_AddPlanet_NonNumericTarget(t *testing.T) {
	_, h := newFavoriteHandler(t)

	e := newTestEcho()
	req := jsonRequest(http.MethodPost, "/favorite/planet/x", `{"user_id": 1}`)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("x")

	handleWithError(e, c, h.AddPlanet(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"Planet not found"}`, rec.Body.String())
}

func TestFavoriteHandler_AddPlanet_TargetNotFound(t *testing.T) {
	favoriteUC, h := newFavoriteHandler(t)

	favoriteUC.EXPECT().
		AddFavorite(mock.Anything, uint(1), entity.FavoriteTarget{Kind: entity.TargetPlanet, ID: 404}).
		Return(nil, domainerrors.ErrPlanetNotFound)

	e := newTestEcho()
	req := jsonRequest(http.MethodPost, "/favorite/planet/404", `{"user_id": 1}`)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("404")

	handleWithError(e, c, h.AddPlanet(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"Planet not found"}`, rec.Body.String())
}

func TestFavoriteHandler_AddPerson_Duplicate(t *testing.T) {
	favoriteUC, h := newFavoriteHandler(t)

	favoriteUC.EXPECT().
		AddFavorite(mock.Anything, uint(1), entity.FavoriteTarget{Kind: entity.TargetPerson, ID: 5}).
		Return(nil, domainerrors.ErrDuplicateFavorite)

	e := newTestEcho()
	req := jsonRequest(http.MethodPost, "/favorite/people/5", `{"user_id": 1}`)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("5")

	handleWithError(e, c, h.AddPerson(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.JSONEq(t, `{"message":"Favorite already exists"}`, rec.Body.String())
}

func TestFavoriteHandler_RemoveVehicle(t *testing.T) {
	favoriteUC, h := newFavoriteHandler(t)

	vehicleID := uint(2)
	favoriteUC.EXPECT().
		RemoveFavorite(mock.Anything, uint(1), entity.FavoriteTarget{Kind: entity.TargetVehicle, ID: 2}).
		Return(&usecase.FavoriteOutput{ID: 8, UserID: 1, VehicleID: &vehicleID}, nil)

	e := newTestEcho()
	req := jsonRequest(http.MethodDelete, "/favorite/vehicle/2", `{"user_id": 1}`)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("2")

	require.NoError(t, h.RemoveVehicle(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"id":8,"user_id":1,"person_id":null,"planet_id":null,"vehicle_id":2}`,
		rec.Body.String())
}

func TestFavoriteHandler_RemoveVehicle_NotFound(t *testing.T) {
	favoriteUC, h := newFavoriteHandler(t)

	favoriteUC.EXPECT().
		RemoveFavorite(mock.Anything, uint(1), entity.FavoriteTarget{Kind: entity.TargetVehicle, ID: 9}).
		Return(nil, domainerrors.ErrFavoriteNotFound)

	e := newTestEcho()
	req := jsonRequest(http.MethodDelete, "/favorite/vehicle/9", `{"user_id": 1}`)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("9")

	handleWithError(e, c, h.RemoveVehicle(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"Favorite not found"}`, rec.Body.String())
}
