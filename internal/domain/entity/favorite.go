package entity

// TargetKind selects which catalog entity a favorite points at.
type TargetKind string

const (
	TargetPerson  TargetKind = "person"
	TargetPlanet  TargetKind = "planet"
	TargetVehicle TargetKind = "vehicle"
)

// Valid reports whether the kind is one of the three catalog kinds.
func (k TargetKind) Valid() bool {
	switch k {
	case TargetPerson, TargetPlanet, TargetVehicle:
		return true
	}

	return false
}

// FavoriteTarget identifies exactly one catalog entity.
type FavoriteTarget struct {
	Kind TargetKind
	ID   uint
}

// Favorite links one user to exactly one catalog entity. The domain carries
// the link as a tagged union; the nullable-column layout of the favorites
// table exists only at the storage boundary.
type Favorite struct {
	ID     uint
	UserID uint
	Target FavoriteTarget
}
