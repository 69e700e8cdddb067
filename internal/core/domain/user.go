package domain

import "time"

// User represents a registered user of the application.
type User struct {
	UserID       string    `json:"userID"` // Primary Key (UUID)
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}
