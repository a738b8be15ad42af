package model

// FavoriteModel is the GORM-specific struct for the 'favorites' table.
// The three target columns are nullable foreign keys; the check constraint
// requires exactly one of them to be set, and the composite unique indexes
// reject duplicate (user, target) pairs. Postgres treats NULLs as distinct,
// so the unique indexes only bite when the target column is non-null.
type FavoriteModel struct {
	ID        uint  `gorm:"primaryKey"`
	UserID    uint  `gorm:"not null;index;uniqueIndex:idx_favorites_user_person;uniqueIndex:idx_favorites_user_planet;uniqueIndex:idx_favorites_user_vehicle"`
	PersonID  *uint `gorm:"uniqueIndex:idx_favorites_user_person;check:chk_favorites_one_target,(person_id IS NOT NULL)::int + (planet_id IS NOT NULL)::int + (vehicle_id IS NOT NULL)::int = 1"`
	PlanetID  *uint `gorm:"uniqueIndex:idx_favorites_user_planet"`
	VehicleID *uint `gorm:"uniqueIndex:idx_favorites_user_vehicle"`
}

// TableName explicitly sets the table name for GORM.
func (FavoriteModel) TableName() string {
	return "favorites"
}
