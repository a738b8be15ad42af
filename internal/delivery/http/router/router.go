// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"holodex/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CatalogHandler  *handler.CatalogHandler
	UserHandler     *handler.UserHandler
	FavoriteHandler *handler.FavoriteHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	catalogHandler  *handler.CatalogHandler
	userHandler     *handler.UserHandler
	favoriteHandler *handler.FavoriteHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		catalogHandler:  params.CatalogHandler,
		userHandler:     params.UserHandler,
		favoriteHandler: params.FavoriteHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/", handler.Sitemap)
	e.GET("/health", handler.HealthCheck)

	// Catalog reads. The singular /planet and /vehicle paths are part of
	// the public contract, quirky as they are.
	e.GET("/people", r.catalogHandler.ListPeople)
	e.GET("/people/:id", r.catalogHandler.GetPerson)
	e.GET("/planet", r.catalogHandler.ListPlanets)
	e.GET("/planet/:id", r.catalogHandler.GetPlanet)
	e.GET("/vehicle", r.catalogHandler.ListVehicles)
	e.GET("/vehicle/:id", r.catalogHandler.GetVehicle)

	// Users and their favorites. /users/favorites reads user_id from the
	// request body, not the URL.
	e.GET("/users", r.userHandler.ListUsers)
	e.GET("/users/favorites", r.userHandler.ListFavorites)

	// Favorite mutations, one route pair per target kind.
	favoriteGroup := e.Group("/favorite")
	{
		favoriteGroup.POST("/people/:id", r.favoriteHandler.AddPerson)
		favoriteGroup.DELETE("/people/:id", r.favoriteHandler.RemovePerson)
		favoriteGroup.POST("/planet/:id", r.favoriteHandler.AddPlanet)
		favoriteGroup.DELETE("/planet/:id", r.favoriteHandler.RemovePlanet)
		favoriteGroup.POST("/vehicle/:id", r.favoriteHandler.AddVehicle)
		favoriteGroup.DELETE("/vehicle/:id", r.favoriteHandler.RemoveVehicle)
	}
}
