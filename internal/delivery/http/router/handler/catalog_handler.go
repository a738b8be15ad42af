// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"holodex/internal/delivery/http/response"
	domainerrors "holodex/internal/domain/errors"
	"holodex/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// CatalogHandler serves the read-only catalog endpoints.
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler.
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// ListPeople handles GET /people.
func (h *CatalogHandler) ListPeople(c echo.Context) error {
	people, err := h.catalogUC.ListPeople(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, people)
}

// GetPerson handles GET /people/:id.
func (h *CatalogHandler) GetPerson(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return domainerrors.ErrPersonNotFound
	}

	person, err := h.catalogUC.GetPerson(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, person)
}

// ListPlanets handles GET /planet.
func (h *CatalogHandler) ListPlanets(c echo.Context) error {
	planets, err := h.catalogUC.ListPlanets(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, planets)
}

// GetPlanet handles GET /planet/:id.
func (h *CatalogHandler) GetPlanet(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return domainerrors.ErrPlanetNotFound
	}

	planet, err := h.catalogUC.GetPlanet(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, planet)
}

// ListVehicles handles GET /vehicle.
func (h *CatalogHandler) ListVehicles(c echo.Context) error {
	vehicles, err := h.catalogUC.ListVehicles(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, vehicles)
}

// GetVehicle handles GET /vehicle/:id.
func (h *CatalogHandler) GetVehicle(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return domainerrors.ErrVehicleNotFound
	}

	vehicle, err := h.catalogUC.GetVehicle(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, vehicle)
}

// parseID parses a positive integer path parameter. A non-numeric id is
// treated by callers the same as an id that resolves to nothing.
func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, errors.Wrap(err, "invalid id")
	}

	return uint(id), nil
}
