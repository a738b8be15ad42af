package entity

// Planet is a catalog planet. All measurement fields are stored as text,
// matching the upstream dataset.
type Planet struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	Diameter   string `json:"diameter"`
	Population string `json:"population"`
	Climate    string `json:"climate"`
	Terrain    string `json:"terrain"`
}
