package models

import (
	"time"

	"github.com/dmitrijs2005/passvault/internal/strength"
)

// Category of a credential record, one of a fixed closed set.
type Category string

const (
	CategoryPersonal Category = "personal"
	CategoryWork     Category = "work"
	CategoryFinance  Category = "finance"
	CategoryDevice   Category = "device"
)

// ValidCategory reports whether c belongs to the closed category set.
func ValidCategory(c Category) bool {
	switch c {
	case CategoryPersonal, CategoryWork, CategoryFinance, CategoryDevice:
		return true
	}
	return false
}

// Credential is one stored secret entry. Secret holds ciphertext at rest;
// services decrypt it only transiently when building a response.
type Credential struct {
	ID        string
	UserID    string
	Title     string
	Username  string
	Secret    string
	URL       string
	Category  Category
	Strength  strength.Tier
	CreatedAt time.Time
	UpdatedAt time.Time
}
