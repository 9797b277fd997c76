// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// User represents a registered user in the system.
// It contains authentication credentials and the mutable profile fields.
type User struct {
	// ID is the unique identifier for the user. It is immutable once created.
	ID uint `gorm:"primaryKey"`

	// Name is the user's display name.
	Name string `gorm:"size:255;not null"`

	// Email is the user's email address used for authentication.
	// It must be unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// Password is the hashed password for the user.
	// This should never store plaintext passwords and never leaves the server.
	Password string `gorm:"size:255;not null"`

	// CnfPassword is the independently hashed confirmation password captured
	// at registration. It is stored but never compared or returned.
	CnfPassword string `gorm:"size:255;not null"`

	// ProfilePic is an optional avatar reference (URL or opaque string).
	ProfilePic string `gorm:"size:512"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time
}
