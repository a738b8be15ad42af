package database

import (
	"log/slog"

	"holodex/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func strPtr(s string) *string { return &s }

// Seed fills an empty database with a small demo dataset. It is a no-op when
// any user already exists, so re-running the migrate command stays safe.
func Seed(db *gorm.DB, logger *slog.Logger) error {
	var count int64
	if err := db.Model(&model.UserModel{}).Count(&count).Error; err != nil {
		return errors.Wrap(err, "failed to inspect users table")
	}
	if count > 0 {
		logger.Info("seed skipped, database already populated")
		return nil
	}

	people := []model.PersonModel{
		{Name: "Luke Skywalker", Height: "172", Mass: "77", Gender: "male"},
		{Name: "Leia Organa", Height: "150", Mass: "49", Gender: "female"},
		{Name: "Darth Vader", Height: "202", Mass: "136", Gender: "male"},
		{Name: "Obi-Wan Kenobi", Height: "182", Mass: "77", Gender: "male"},
		{Name: "R2-D2", Height: "96", Mass: "32", Gender: "n/a"},
	}

	planets := []model.PlanetModel{
		{Name: "Tatooine", Diameter: "10465", Population: "200000", Climate: "arid", Terrain: "desert"},
		{Name: "Alderaan", Diameter: "12500", Population: "2000000000", Climate: "temperate", Terrain: "grasslands"},
		{Name: "Hoth", Diameter: "7200", Population: "unknown", Climate: "frozen", Terrain: "tundra"},
		{Name: "Dagobah", Diameter: "8900", Population: "unknown", Climate: "murky", Terrain: "swamp"},
	}

	vehicles := []model.VehicleModel{
		{Name: "Sand Crawler", Length: strPtr("36.8"), Crew: strPtr("46"), Passengers: strPtr("30")},
		{Name: "X-34 landspeeder", Length: strPtr("3.4"), Crew: strPtr("1"), Passengers: strPtr("1")},
		{Name: "TIE/LN starfighter", Length: strPtr("6.4"), Crew: strPtr("1"), Passengers: strPtr("0")},
		{Name: "Snowspeeder", Length: strPtr("4.5"), Crew: strPtr("2")},
	}

	users := []model.UserModel{
		{Name: "han", LastName: strPtr("Solo"), Email: "han@falcon.example", Password: "never-tell-me-the-odds", IsActive: true},
		{Name: "lando", LastName: strPtr("Calrissian"), Email: "lando@cloudcity.example", Password: "sabacc", IsActive: true},
	}
	for i := range users {
		hashed, err := bcrypt.GenerateFromPassword([]byte(users[i].Password), bcrypt.DefaultCost)
		if err != nil {
			return errors.Wrap(err, "failed to hash seed password")
		}
		users[i].Password = string(hashed)
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&people).Error; err != nil {
			return errors.Wrap(err, "failed to seed people")
		}
		if err := tx.Create(&planets).Error; err != nil {
			return errors.Wrap(err, "failed to seed planets")
		}
		if err := tx.Create(&vehicles).Error; err != nil {
			return errors.Wrap(err, "failed to seed vehicles")
		}
		if err := tx.Create(&users).Error; err != nil {
			return errors.Wrap(err, "failed to seed users")
		}

		favorites := []model.FavoriteModel{
			{UserID: users[0].ID, PlanetID: &planets[0].ID},
			{UserID: users[0].ID, PersonID: &people[0].ID},
			{UserID: users[1].ID, VehicleID: &vehicles[1].ID},
		}
		if err := tx.Create(&favorites).Error; err != nil {
			return errors.Wrap(err, "failed to seed favorites")
		}

		return nil
	})
	if err != nil {
		return err
	}

	logger.Info("seed complete",
		slog.Int("people", len(people)),
		slog.Int("planets", len(planets)),
		slog.Int("vehicles", len(vehicles)),
		slog.Int("users", len(users)),
	)

	return nil
}
