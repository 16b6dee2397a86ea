// Mongo documents + simple DTOs used in handlers.

package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a user document in the users collection.
// bson tags control the stored field names; json tags control how fields
// serialize in API responses. The password hash never leaves the server.
// LoginAttempt and LastAttempt are the persisted lockout counters; they
// survive restarts and are shared by every instance hitting the same DB.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`
	Password     string             `bson:"password" json:"-"` // bcrypt hash
	LoginAttempt int                `bson:"login_attempt" json:"-"`
	LastAttempt  time.Time          `bson:"last_attempt,omitempty" json:"-"`
	CreatedAt    time.Time          `bson:"created_at,omitempty" json:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at,omitempty" json:"updated_at"`
}

// PublicUser is the projection returned by list/detail endpoints.
// It is the field subset safe to expose (no hash, no lockout counters).
type PublicUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Public projects a User to its response shape.
func (u User) Public() PublicUser {
	return PublicUser{ID: u.ID.Hex(), Name: u.Name, Email: u.Email}
}

// DTOs (request/response)

// RegisterRequest is the expected payload for the register endpoint.
// Gin's binding tags add basic validation rules automatically.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=2"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginRequest is the expected payload for the login endpoint.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse holds the JWT issued on a successful login.
type AuthResponse struct {
	Token string `json:"token"`
}

// UpdateUserRequest allows partial updates; nil fields mean "no change".
type UpdateUserRequest struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty" binding:"omitempty,email"`
}

// ChangePasswordRequest is the payload for the password-change endpoint.
// The old password must verify before the new one is stored.
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=6"`
}
