package model

import "time"

// User is user model entity
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// RefreshToken is refresh token model entity
type RefreshToken struct {
	ID          string
	UserID      string
	Fingerprint string
	ExpiresIn   int
	CreatedAt   time.Time
}
