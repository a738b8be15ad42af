package model

// PersonModel mirrors the 'people' table. Height and mass stay text to
// preserve the upstream dataset verbatim ("unknown", "1,358" and friends).
type PersonModel struct {
	ID     uint   `gorm:"primaryKey"`
	Name   string `gorm:"type:varchar(20);not null"`
	Height string `gorm:"type:varchar(10);not null"`
	Mass   string `gorm:"type:varchar(10);not null"`
	Gender string `gorm:"type:varchar(10);not null"`

	Favorites []FavoriteModel `gorm:"foreignKey:PersonID"`
}

// TableName explicitly sets the table name for GORM.
func (PersonModel) TableName() string {
	return "people"
}

// PlanetModel mirrors the 'planets' table.
type PlanetModel struct {
	ID         uint   `gorm:"primaryKey"`
	Name       string `gorm:"type:varchar(100);not null"`
	Diameter   string `gorm:"type:varchar(10);not null"`
	Population string `gorm:"type:varchar(10);not null"`
	Climate    string `gorm:"type:varchar(20);not null"`
	Terrain    string `gorm:"type:varchar(20);not null"`

	Favorites []FavoriteModel `gorm:"foreignKey:PlanetID"`
}

// TableName explicitly sets the table name for GORM.
func (PlanetModel) TableName() string {
	return "planets"
}

// VehicleModel mirrors the 'vehicles' table. Only the name is mandatory.
type VehicleModel struct {
	ID         uint    `gorm:"primaryKey"`
	Name       string  `gorm:"type:varchar(20);not null"`
	Length     *string `gorm:"type:varchar(40)"`
	Crew       *string `gorm:"type:varchar(40)"`
	Passengers *string `gorm:"type:varchar(40)"`

	Favorites []FavoriteModel `gorm:"foreignKey:VehicleID"`
}

// TableName explicitly sets the table name for GORM.
func (VehicleModel) TableName() string {
	return "vehicles"
}
