// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"holodex/internal/domain/entity"
	"holodex/internal/errors"
)

// Domain-specific errors for favorite persistence.
var (
	// ErrFavoriteNotFound is returned when a favorite is not found.
	ErrFavoriteNotFound = errors.New("favorite not found")
	// ErrDuplicateFavorite is returned when the (user, target) pair already exists.
	ErrDuplicateFavorite = errors.New("favorite already exists")
)

// FavoriteRepository defines the interface for favorite-related database operations.
type FavoriteRepository interface {
	// Create persists a new favorite with exactly one target column set.
	// Returns ErrDuplicateFavorite if the (user, target) pair already exists.
	Create(ctx context.Context, favorite *entity.Favorite) error

	// FindByUser retrieves all favorites owned by a user.
	FindByUser(ctx context.Context, userID uint) ([]*entity.Favorite, error)

	// FindByUserAndTarget retrieves the favorite matching (user, target) exactly.
	FindByUserAndTarget(ctx context.Context, userID uint, target entity.FavoriteTarget) (*entity.Favorite, error)

	// Delete removes a favorite by its ID.
	Delete(ctx context.Context, id uint) error
}
