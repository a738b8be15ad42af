package entity

// Person is a catalog character. Height and mass are numeric quantities in
// the upstream dataset but are stored as text and preserved as-is.
type Person struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	Height string `json:"height"`
	Mass   string `json:"mass"`
	Gender string `json:"gender"`
}
