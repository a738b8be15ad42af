// Package impl contains the concrete usecase services.
package impl

import (
	"context"

	"holodex/internal/domain/entity"
	domainerrors "holodex/internal/domain/errors"
	"holodex/internal/domain/repository"
	"holodex/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type catalogService struct {
	catalogRepo repository.CatalogRepository
	userRepo    repository.UserRepository
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	CatalogRepo repository.CatalogRepository
	UserRepo    repository.UserRepository
}

// NewCatalogService creates the read-side service over the entity store.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		catalogRepo: params.CatalogRepo,
		userRepo:    params.UserRepo,
	}
}

// ListPeople returns every person in the catalog.
func (s *catalogService) ListPeople(ctx context.Context) ([]*entity.Person, error) {
	people, err := s.catalogRepo.ListPeople(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list people")
	}

	return people, nil
}

// GetPerson returns a single person or ErrPersonNotFound.
func (s *catalogService) GetPerson(ctx context.Context, id uint) (*entity.Person, error) {
	person, err := s.catalogRepo.FindPersonByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPersonNotFound) {
			return nil, domainerrors.ErrPersonNotFound
		}

		return nil, errors.Wrap(err, "failed to find person")
	}

	return person, nil
}

// ListPlanets returns every planet in the catalog.
func (s *catalogService) ListPlanets(ctx context.Context) ([]*entity.Planet, error) {
	planets, err := s.catalogRepo.ListPlanets(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list planets")
	}

	return planets, nil
}

// GetPlanet returns a single planet or ErrPlanetNotFound.
func (s *catalogService) GetPlanet(ctx context.Context, id uint) (*entity.Planet, error) {
	planet, err := s.catalogRepo.FindPlanetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPlanetNotFound) {
			return nil, domainerrors.ErrPlanetNotFound
		}

		return nil, errors.Wrap(err, "failed to find planet")
	}

	return planet, nil
}

// ListVehicles returns every vehicle in the catalog.
func (s *catalogService) ListVehicles(ctx context.Context) ([]*entity.Vehicle, error) {
	vehicles, err := s.catalogRepo.ListVehicles(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list vehicles")
	}

	return vehicles, nil
}

// GetVehicle returns a single vehicle or ErrVehicleNotFound.
func (s *catalogService) GetVehicle(ctx context.Context, id uint) (*entity.Vehicle, error) {
	vehicle, err := s.catalogRepo.FindVehicleByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrVehicleNotFound) {
			return nil, domainerrors.ErrVehicleNotFound
		}

		return nil, errors.Wrap(err, "failed to find vehicle")
	}

	return vehicle, nil
}

// ListUsers returns every user.
func (s *catalogService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := s.userRepo.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}
