// GORM model + request/response DTOs for the auth endpoints.

package models

import "time"

// User is a trainer account. Username and email both carry unique
// indexes; uniqueness is enforced by the database, not pre-checked in
// application code. Password holds a bcrypt digest and is never
// serialized.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"size:80;uniqueIndex;not null" json:"username"`
	Email     string    `gorm:"size:120;uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"size:255;not null" json:"-"` // hashed
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SignupRequest is the expected payload for POST /signup.
// Gin's binding tags add basic validation automatically.
type SignupRequest struct {
	Username string `json:"username" binding:"required,min=2"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginRequest is the expected payload for POST /login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse carries the signed token back to the client. The same
// token is also set as the auth cookie.
type AuthResponse struct {
	AccessToken string `json:"access_token"`
}
