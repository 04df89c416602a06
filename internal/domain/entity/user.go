// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core identity in the system. Username, Email and MobileNumber
// are each unique across all users; PasswordHash is the only persisted form
// of the credential and must never leave the backend.
type User struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Username     string    // Unique public handle, also embedded in issued tokens.
	Email        string    // Unique primary contact email, used as the login identifier.
	MobileNumber string    // Unique phone number supplied at registration.
	PasswordHash string    // bcrypt hash of the user's password. Never the plaintext.
	FirstName    string
	LastName     string
	Age          int
	Bio          string
	ProfilePic   string   // Stored file name of the profile picture.
	Interests    []string // Free-form interest tags shown on the profile.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
