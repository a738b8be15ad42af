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

type favoriteService struct {
	favoriteRepo repository.FavoriteRepository
	userRepo     repository.UserRepository
	txManager    repository.TransactionManager
}

// FavoriteServiceParams holds dependencies for FavoriteService, injected by Fx.
type FavoriteServiceParams struct {
	fx.In

	FavoriteRepo repository.FavoriteRepository
	UserRepo     repository.UserRepository
	TxManager    repository.TransactionManager
}

// NewFavoriteService creates the mutation service over the favorites relation.
func NewFavoriteService(params FavoriteServiceParams) usecase.FavoriteUsecase {
	return &favoriteService{
		favoriteRepo: params.FavoriteRepo,
		userRepo:     params.UserRepo,
		txManager:    params.TxManager,
	}
}

// ListFavorites returns every favorite owned by the user.
func (s *favoriteService) ListFavorites(ctx context.Context, userID uint) ([]*usecase.FavoriteOutput, error) {
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	favorites, err := s.favoriteRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find favorites by user")
	}

	outputs := make([]*usecase.FavoriteOutput, 0, len(favorites))
	for _, favorite := range favorites {
		outputs = append(outputs, usecase.NewFavoriteOutput(favorite))
	}

	return outputs, nil
}

// AddFavorite links the user to the target. The reference checks and the
// insert run in one transaction; a concurrent duplicate insert loses at the
// unique index and maps to the same conflict outcome.
func (s *favoriteService) AddFavorite(ctx context.Context, userID uint, target entity.FavoriteTarget) (*usecase.FavoriteOutput, error) {
	favorite := &entity.Favorite{
		UserID: userID,
		Target: target,
	}

	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.NewUserRepository().FindByID(ctx, userID); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to find user")
		}

		exists, err := repoFactory.NewCatalogRepository().TargetExists(ctx, target)
		if err != nil {
			return errors.Wrap(err, "failed to check target existence")
		}
		if !exists {
			return targetNotFound(target.Kind)
		}

		if err := repoFactory.NewFavoriteRepository().Create(ctx, favorite); err != nil {
			if errors.Is(err, repository.ErrDuplicateFavorite) {
				return domainerrors.ErrDuplicateFavorite
			}

			return errors.Wrap(err, "failed to create favorite")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return usecase.NewFavoriteOutput(favorite), nil
}

// RemoveFavorite unlinks the exact (user, target) pair and returns the
// deleted record's serialized form.
func (s *favoriteService) RemoveFavorite(ctx context.Context, userID uint, target entity.FavoriteTarget) (*usecase.FavoriteOutput, error) {
	var deleted *entity.Favorite

	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		favoriteRepo := repoFactory.NewFavoriteRepository()

		favorite, err := favoriteRepo.FindByUserAndTarget(ctx, userID, target)
		if err != nil {
			if errors.Is(err, repository.ErrFavoriteNotFound) {
				return domainerrors.ErrFavoriteNotFound
			}

			return errors.Wrap(err, "failed to find favorite by user and target")
		}

		if err := favoriteRepo.Delete(ctx, favorite.ID); err != nil {
			if errors.Is(err, repository.ErrFavoriteNotFound) {
				return domainerrors.ErrFavoriteNotFound
			}

			return errors.Wrap(err, "failed to delete favorite")
		}

		deleted = favorite

		return nil
	})
	if err != nil {
		return nil, err
	}

	return usecase.NewFavoriteOutput(deleted), nil
}

// targetNotFound maps a target kind to its not-found error.
func targetNotFound(kind entity.TargetKind) error {
	switch kind {
	case entity.TargetPerson:
		return domainerrors.ErrPersonNotFound
	case entity.TargetPlanet:
		return domainerrors.ErrPlanetNotFound
	case entity.TargetVehicle:
		return domainerrors.ErrVehicleNotFound
	default:
		return errors.Errorf("unknown target kind: %q", kind)
	}
}
