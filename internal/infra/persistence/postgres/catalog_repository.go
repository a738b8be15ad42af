// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"holodex/internal/domain/entity"
	"holodex/internal/domain/repository"
	"holodex/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// catalogRepository implements the repository.CatalogRepository interface.
type catalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository is the constructor for catalogRepository.
func NewCatalogRepository(db *gorm.DB) repository.CatalogRepository {
	return &catalogRepository{
		db: db,
	}
}

// ListPeople retrieves all people ordered by ID.
func (repo *catalogRepository) ListPeople(ctx context.Context) ([]*entity.Person, error) {
	var personModels []*model.PersonModel

	if err := repo.db.WithContext(ctx).
		Order("id").
		Find(&personModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list people")
	}

	people := make([]*entity.Person, 0, len(personModels))
	for _, personM := range personModels {
		people = append(people, toPersonDomain(personM))
	}

	return people, nil
}

// FindPersonByID retrieves a single person by ID.
func (repo *catalogRepository) FindPersonByID(ctx context.Context, id uint) (*entity.Person, error) {
	var personM model.PersonModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&personM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPersonNotFound
		}

		return nil, errors.Wrap(err, "failed to find person by ID")
	}

	return toPersonDomain(&personM), nil
}

// ListPlanets retrieves all planets ordered by ID.
func (repo *catalogRepository) ListPlanets(ctx context.Context) ([]*entity.Planet, error) {
	var planetModels []*model.PlanetModel

	if err := repo.db.WithContext(ctx).
		Order("id").
		Find(&planetModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list planets")
	}

	planets := make([]*entity.Planet, 0, len(planetModels))
	for _, planetM := range planetModels {
		planets = append(planets, toPlanetDomain(planetM))
	}

	return planets, nil
}

// FindPlanetByID retrieves a single planet by ID.
func (repo *catalogRepository) FindPlanetByID(ctx context.Context, id uint) (*entity.Planet, error) {
	var planetM model.PlanetModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&planetM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPlanetNotFound
		}

		return nil, errors.Wrap(err, "failed to find planet by ID")
	}

	return toPlanetDomain(&planetM), nil
}

// ListVehicles retrieves all vehicles ordered by ID.
func (repo *catalogRepository) ListVehicles(ctx context.Context) ([]*entity.Vehicle, error) {
	var vehicleModels []*model.VehicleModel

	if err := repo.db.WithContext(ctx).
		Order("id").
		Find(&vehicleModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list vehicles")
	}

	vehicles := make([]*entity.Vehicle, 0, len(vehicleModels))
	for _, vehicleM := range vehicleModels {
		vehicles = append(vehicles, toVehicleDomain(vehicleM))
	}

	return vehicles, nil
}

// FindVehicleByID retrieves a single vehicle by ID.
func (repo *catalogRepository) FindVehicleByID(ctx context.Context, id uint) (*entity.Vehicle, error) {
	var vehicleM model.VehicleModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&vehicleM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVehicleNotFound
		}

		return nil, errors.Wrap(err, "failed to find vehicle by ID")
	}

	return toVehicleDomain(&vehicleM), nil
}

// TargetExists reports whether the catalog entity named by target exists.
func (repo *catalogRepository) TargetExists(ctx context.Context, target entity.FavoriteTarget) (bool, error) {
	var (
		count int64
		query *gorm.DB
	)

	switch target.Kind {
	case entity.TargetPerson:
		query = repo.db.WithContext(ctx).Model(&model.PersonModel{})
	case entity.TargetPlanet:
		query = repo.db.WithContext(ctx).Model(&model.PlanetModel{})
	case entity.TargetVehicle:
		query = repo.db.WithContext(ctx).Model(&model.VehicleModel{})
	default:
		return false, errors.Errorf("unknown target kind: %q", target.Kind)
	}

	if err := query.Where("id = ?", target.ID).Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check target existence")
	}

	return count > 0, nil
}

// --- Mapper Functions ---

func toPersonDomain(data *model.PersonModel) *entity.Person {
	return &entity.Person{
		ID:     data.ID,
		Name:   data.Name,
		Height: data.Height,
		Mass:   data.Mass,
		Gender: data.Gender,
	}
}

func toPlanetDomain(data *model.PlanetModel) *entity.Planet {
	return &entity.Planet{
		ID:         data.ID,
		Name:       data.Name,
		Diameter:   data.Diameter,
		Population: data.Population,
		Climate:    data.Climate,
		Terrain:    data.Terrain,
	}
}

func toVehicleDomain(data *model.VehicleModel) *entity.Vehicle {
	return &entity.Vehicle{
		ID:         data.ID,
		Name:       data.Name,
		Length:     data.Length,
		Crew:       data.Crew,
		Passengers: data.Passengers,
	}
}
