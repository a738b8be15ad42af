package entity

// Vehicle is a catalog vehicle. Only the name is required; the measurement
// fields are optional in the upstream dataset.
type Vehicle struct {
	ID         uint    `json:"id"`
	Name       string  `json:"name"`
	Length     *string `json:"length"`
	Crew       *string `json:"crew"`
	Passengers *string `json:"passengers"`
}
