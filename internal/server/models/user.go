package models

import "time"

// User is a registered account. Its ID is the principal value recorded on
// owned assets and access grants.
type User struct {
	ID           string
	UserName     string
	PasswordHash []byte
	CreatedAt    time.Time
}
