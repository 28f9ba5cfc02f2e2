// Package models holds the persisted entity types shared by repositories and
// services.
package models

import "time"

// User is an account holder. The email is the unique login key; only an
// irreversible salted hash of the password is ever stored.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
