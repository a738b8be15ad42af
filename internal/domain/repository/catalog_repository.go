// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"holodex/internal/domain/entity"
	"holodex/internal/errors"
)

// Domain-specific errors for catalog persistence, one per kind so callers
// can translate absence into the right not-found outcome.
var (
	// ErrPersonNotFound is returned when a person is not found.
	ErrPersonNotFound = errors.New("person not found")
	// ErrPlanetNotFound is returned when a planet is not found.
	ErrPlanetNotFound = errors.New("planet not found")
	// ErrVehicleNotFound is returned when a vehicle is not found.
	ErrVehicleNotFound = errors.New("vehicle not found")
)

// CatalogRepository is the read-side entity store for people, planets and
// vehicles. List methods always succeed with a possibly-empty slice;
// find methods signal absence with the kind's sentinel error.
type CatalogRepository interface {
	// ListPeople retrieves all people.
	ListPeople(ctx context.Context) ([]*entity.Person, error)

	// FindPersonByID retrieves a single person by ID.
	FindPersonByID(ctx context.Context, id uint) (*entity.Person, error)

	// ListPlanets retrieves all planets.
	ListPlanets(ctx context.Context) ([]*entity.Planet, error)

	// FindPlanetByID retrieves a single planet by ID.
	FindPlanetByID(ctx context.Context, id uint) (*entity.Planet, error)

	// ListVehicles retrieves all vehicles.
	ListVehicles(ctx context.Context) ([]*entity.Vehicle, error)

	// FindVehicleByID retrieves a single vehicle by ID.
	FindVehicleByID(ctx context.Context, id uint) (*entity.Vehicle, error)

	// TargetExists reports whether the catalog entity named by target exists.
	TargetExists(ctx context.Context, target entity.FavoriteTarget) (bool, error)
}
