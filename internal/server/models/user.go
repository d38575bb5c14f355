// Package models declares the persisted record shapes of the scheduling
// backend.
package models

import "time"

// User is an account record. Username and email are unique across the
// deployment; PasswordHash is a bcrypt hash and is never exposed outward.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash []byte
	ProfileImage string
	CreatedAt    time.Time
}
