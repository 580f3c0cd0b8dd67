package models

import "time"

// User represents an account in the marketplace
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	PasswordHash string    `json:"-"`
	Image        string    `json:"image,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// OwnerRef is a copy of the owner's fields taken when the pet is listed.
// It is a snapshot, not a reference: later edits to the user do not touch it.
type OwnerRef struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image,omitempty"`
	Phone string `json:"phone"`
}

// AdopterRef is a copy of the adopter's fields taken when a visit is scheduled.
type AdopterRef struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image,omitempty"`
}

// Pet represents a pet listed for adoption
type Pet struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Age       int         `json:"age"`
	Weight    float64     `json:"weight"`
	Color     string      `json:"color"`
	Images    []string    `json:"images"`
	Available bool        `json:"available"`
	Owner     OwnerRef    `json:"owner"`
	Adopter   *AdopterRef `json:"adopter,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}
