// Package repository defines the interfaces for the persistence layer.
package repository

import "context"

// RepositoryFactory creates repository instances bound to a single
// transaction. Implemented by the infrastructure layer.
type RepositoryFactory interface {
	NewUserRepository() UserRepository
	NewCatalogRepository() CatalogRepository
	NewFavoriteRepository() FavoriteRepository
}

// TransactionManager runs a unit of work within one database transaction.
// Each mutation on favorites (validate references, then insert or delete)
// executes through this so the checks and the write are atomic.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(repoFactory RepositoryFactory) error) error
}
