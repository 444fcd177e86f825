// Package models contains the persisted record types of the server.
package models

import "time"

// User is a registered identity. Email is stored lowercased and is unique
// case-insensitively. PasswordHash is a bcrypt digest; the plaintext
// credential is never persisted.
type User struct {
	ID           string
	DisplayName  string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
