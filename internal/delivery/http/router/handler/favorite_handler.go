package handler

import (
	"log/slog"
	"net/http"

	"holodex/internal/delivery/http/response"
	"holodex/internal/domain/entity"
	domainerrors "holodex/internal/domain/errors"
	"holodex/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// FavoriteHandlerParams holds dependencies for FavoriteHandler, injected by Fx.
type FavoriteHandlerParams struct {
	fx.In

	FavoriteUC usecase.FavoriteUsecase
	Logger     *slog.Logger
}

// FavoriteHandler serves the favorite create/delete endpoints. Each route is
// bound to one target kind, so a request can never set more than one target.
type FavoriteHandler struct {
	favoriteUC usecase.FavoriteUsecase
	logger     *slog.Logger
}

// NewFavoriteHandler is the constructor for FavoriteHandler.
func NewFavoriteHandler(params FavoriteHandlerParams) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteUC: params.FavoriteUC,
		logger:     params.Logger,
	}
}

// AddPerson handles POST /favorite/people/:id.
func (h *FavoriteHandler) AddPerson(c echo.Context) error {
	return h.add(c, entity.TargetPerson)
}

// RemovePerson handles DELETE /favorite/people/:id.
func (h *FavoriteHandler) RemovePerson(c echo.Context) error {
	return h.remove(c, entity.TargetPerson)
}

// AddPlanet handles POST /favorite/planet/:id.
func (h *FavoriteHandler) AddPlanet(c echo.Context) error {
	return h.add(c, entity.TargetPlanet)
}

// RemovePlanet handles DELETE /favorite/planet/:id.
func (h *FavoriteHandler) RemovePlanet(c echo.Context) error {
	return h.remove(c, entity.TargetPlanet)
}

// AddVehicle handles POST /favorite/vehicle/:id.
func (h *FavoriteHandler) AddVehicle(c echo.Context) error {
	return h.add(c, entity.TargetVehicle)
}

// RemoveVehicle handles DELETE /favorite/vehicle/:id.
func (h *FavoriteHandler) RemoveVehicle(c echo.Context) error {
	return h.remove(c, entity.TargetVehicle)
}

func (h *FavoriteHandler) add(c echo.Context, kind entity.TargetKind) error {
	// user_id presence is checked before the target id so a missing user_id
	// is always a 400, regardless of target validity.
	userID, err := bindUserID(c)
	if err != nil {
		return err
	}

	target, err := bindTarget(c, kind)
	if err != nil {
		return err
	}

	favorite, err := h.favoriteUC.AddFavorite(c.Request().Context(), userID, target)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, favorite)
}

func (h *FavoriteHandler) remove(c echo.Context, kind entity.TargetKind) error {
	userID, err := bindUserID(c)
	if err != nil {
		return err
	}

	target, err := bindTarget(c, kind)
	if err != nil {
		return err
	}

	favorite, err := h.favoriteUC.RemoveFavorite(c.Request().Context(), userID, target)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, favorite)
}

// bindTarget builds the tagged-union target from the route's kind and the
// :id path parameter.
func bindTarget(c echo.Context, kind entity.TargetKind) (entity.FavoriteTarget, error) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return entity.FavoriteTarget{}, targetNotFoundError(kind)
	}

	return entity.FavoriteTarget{Kind: kind, ID: id}, nil
}

// targetNotFoundError maps a target kind to its not-found error.
func targetNotFoundError(kind entity.TargetKind) error {
	switch kind {
	case entity.TargetPlanet:
		return domainerrors.ErrPlanetNotFound
	case entity.TargetVehicle:
		return domainerrors.ErrVehicleNotFound
	default:
		return domainerrors.ErrPersonNotFound
	}
}
