// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"holodex/internal/domain/entity"
	domainerrors "holodex/internal/domain/errors"
	"holodex/internal/domain/repository"
	"holodex/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// favoriteRepository implements the repository.FavoriteRepository interface.
type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository is the constructor for favoriteRepository.
func NewFavoriteRepository(db *gorm.DB) repository.FavoriteRepository {
	return &favoriteRepository{
		db: db,
	}
}

// Create persists a new favorite with exactly one target column set.
func (repo *favoriteRepository) Create(ctx context.Context, favorite *entity.Favorite) error {
	favoriteM, err := fromFavoriteDomain(favorite)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(favoriteM).Error; err != nil {
		// The composite unique indexes resolve create/create races: the
		// losing insert surfaces here.
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateFavorite
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("invalid favorite reference")
		}
		if isCheckConstraintViolation(err) {
			return errors.Wrap(err, "favorite must reference exactly one target")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create favorite")
	}

	// Update the entity with the generated key.
	favorite.ID = favoriteM.ID

	return nil
}

// FindByUser retrieves all favorites owned by a user.
func (repo *favoriteRepository) FindByUser(ctx context.Context, userID uint) ([]*entity.Favorite, error) {
	var favoriteModels []*model.FavoriteModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id").
		Find(&favoriteModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find favorites by user")
	}

	favorites := make([]*entity.Favorite, 0, len(favoriteModels))
	for _, favoriteM := range favoriteModels {
		favorites = append(favorites, toFavoriteDomain(favoriteM))
	}

	return favorites, nil
}

// FindByUserAndTarget retrieves the favorite matching (user, target) exactly.
func (repo *favoriteRepository) FindByUserAndTarget(ctx context.Context, userID uint, target entity.FavoriteTarget) (*entity.Favorite, error) {
	column, err := targetColumn(target.Kind)
	if err != nil {
		return nil, err
	}

	var favoriteM model.FavoriteModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND "+column+" = ?", userID, target.ID).
		First(&favoriteM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFavoriteNotFound
		}

		return nil, errors.Wrap(err, "failed to find favorite by user and target")
	}

	return toFavoriteDomain(&favoriteM), nil
}

// Delete removes a favorite by its ID.
func (repo *favoriteRepository) Delete(ctx context.Context, id uint) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.FavoriteModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete favorite")
	}

	if result.RowsAffected == 0 {
		return repository.ErrFavoriteNotFound
	}

	return nil
}

// targetColumn maps a target kind to its foreign-key column.
func targetColumn(kind entity.TargetKind) (string, error) {
	switch kind {
	case entity.TargetPerson:
		return "person_id", nil
	case entity.TargetPlanet:
		return "planet_id", nil
	case entity.TargetVehicle:
		return "vehicle_id", nil
	default:
		return "", errors.Errorf("unknown target kind: %q", kind)
	}
}

// --- Mapper Functions ---

// toFavoriteDomain converts a GORM FavoriteModel to a domain Favorite entity,
// collapsing the nullable columns back into the tagged union.
func toFavoriteDomain(data *model.FavoriteModel) *entity.Favorite {
	favorite := &entity.Favorite{
		ID:     data.ID,
		UserID: data.UserID,
	}

	switch {
	case data.PersonID != nil:
		favorite.Target = entity.FavoriteTarget{Kind: entity.TargetPerson, ID: *data.PersonID}
	case data.PlanetID != nil:
		favorite.Target = entity.FavoriteTarget{Kind: entity.TargetPlanet, ID: *data.PlanetID}
	case data.VehicleID != nil:
		favorite.Target = entity.FavoriteTarget{Kind: entity.TargetVehicle, ID: *data.VehicleID}
	}

	return favorite
}

// fromFavoriteDomain converts a domain Favorite to its nullable-column layout.
func fromFavoriteDomain(favorite *entity.Favorite) (*model.FavoriteModel, error) {
	favoriteM := &model.FavoriteModel{
		ID:     favorite.ID,
		UserID: favorite.UserID,
	}

	targetID := favorite.Target.ID
	switch favorite.Target.Kind {
	case entity.TargetPerson:
		favoriteM.PersonID = &targetID
	case entity.TargetPlanet:
		favoriteM.PlanetID = &targetID
	case entity.TargetVehicle:
		favoriteM.VehicleID = &targetID
	default:
		return nil, errors.Errorf("unknown target kind: %q", favorite.Target.Kind)
	}

	return favoriteM, nil
}
