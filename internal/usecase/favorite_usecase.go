package usecase

import (
	"context"

	"holodex/internal/domain/entity"
)

// FavoriteOutput is the serialized form of a favorite. All three target
// fields are always present; exactly one is non-null.
type FavoriteOutput struct {
	ID        uint  `json:"id"`
	UserID    uint  `json:"user_id"`
	PersonID  *uint `json:"person_id"`
	PlanetID  *uint `json:"planet_id"`
	VehicleID *uint `json:"vehicle_id"`
}

// NewFavoriteOutput expands the tagged-union favorite into the fixed
// four-foreign-key wire shape.
func NewFavoriteOutput(favorite *entity.Favorite) *FavoriteOutput {
	out := &FavoriteOutput{
		ID:     favorite.ID,
		UserID: favorite.UserID,
	}

	targetID := favorite.Target.ID
	switch favorite.Target.Kind {
	case entity.TargetPerson:
		out.PersonID = &targetID
	case entity.TargetPlanet:
		out.PlanetID = &targetID
	case entity.TargetVehicle:
		out.VehicleID = &targetID
	}

	return out
}

// FavoriteUsecase mutates and reads the favorites relation. Mutations
// validate that the user and the target exist before touching the join
// table, and reject duplicate (user, target) pairs.
type FavoriteUsecase interface {
	// ListFavorites returns every favorite owned by the user.
	ListFavorites(ctx context.Context, userID uint) ([]*FavoriteOutput, error)

	// AddFavorite links the user to the target and returns the created record.
	AddFavorite(ctx context.Context, userID uint, target entity.FavoriteTarget) (*FavoriteOutput, error)

	// RemoveFavorite unlinks the exact (user, target) pair and returns the
	// deleted record.
	RemoveFavorite(ctx context.Context, userID uint, target entity.FavoriteTarget) (*FavoriteOutput, error)
}
