// Package usecase defines the application-layer contracts and DTOs.
package usecase

import (
	"context"

	"holodex/internal/domain/entity"
)

// CatalogUsecase is the read side of the API: list-all and get-by-id over
// the catalog entities plus the user listing. List operations always
// succeed with a possibly-empty slice.
type CatalogUsecase interface {
	ListPeople(ctx context.Context) ([]*entity.Person, error)
	GetPerson(ctx context.Context, id uint) (*entity.Person, error)

	ListPlanets(ctx context.Context) ([]*entity.Planet, error)
	GetPlanet(ctx context.Context, id uint) (*entity.Planet, error)

	ListVehicles(ctx context.Context) ([]*entity.Vehicle, error)
	GetVehicle(ctx context.Context, id uint) (*entity.Vehicle, error)

	ListUsers(ctx context.Context) ([]*entity.User, error)
}
