// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// User is an account that can own favorites.
// Password and IsActive are persisted but never serialized: API responses
// expose the fixed projection {id, name, last_name, email} only.
type User struct {
	ID       uint    `json:"id"`
	Name     string  `json:"name"`      // Display name, globally unique.
	LastName *string `json:"last_name"` // Optional family name.
	Email    string  `json:"email"`     // Globally unique contact address.
	Password string  `json:"-"`
	IsActive bool    `json:"-"`
}
