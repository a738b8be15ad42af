// Package database owns schema migration and sample-data seeding. Both run
// through the migrate command, never at API startup.
package database

import (
	"holodex/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Migrate creates or updates the relational schema. Catalog tables first so
// the favorites foreign keys have something to reference.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.PersonModel{},
		&model.PlanetModel{},
		&model.VehicleModel{},
		&model.UserModel{},
		&model.FavoriteModel{},
	); err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}

	return nil
}
