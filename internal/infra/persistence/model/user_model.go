package model

// UserModel mirrors the 'users' table. Name and email carry the global
// uniqueness constraints; password is stored but never serialized upstream.
type UserModel struct {
	ID       uint    `gorm:"primaryKey"`
	Name     string  `gorm:"type:varchar(20);unique;not null"`
	LastName *string `gorm:"type:varchar(20)"`
	Email    string  `gorm:"type:varchar(120);unique;not null"`
	Password string  `gorm:"type:varchar(80);not null"`
	IsActive bool    `gorm:"not null"`

	Favorites []FavoriteModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
