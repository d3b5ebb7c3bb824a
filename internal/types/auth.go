// Package types holds the account payloads exchanged between the auth
// service and the HTTP layer.
package types

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/postpilot/postpilot/internal/validation"
)

// CreateUserRequest is the body of POST /auth/register.
type CreateUserRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdatePasswordRequest is the body of PUT /auth/password.
type UpdatePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8,max=72"`
}

// User is the public view of an account. It never carries the hash.
type User struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Tier        string    `json:"tier"`
	PasswordSet bool      `json:"password_set"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// LoginResponse is the data of a successful login or registration.
type LoginResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

// NormalizeEmail trims and lowercases an address so lookups are
// case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Validate normalizes the name and email, then checks the tags.
func (r *CreateUserRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = NormalizeEmail(r.Email)
	return validation.Struct(r)
}

// Validate normalizes the email, then checks the tags.
func (r *LoginRequest) Validate() error {
	r.Email = NormalizeEmail(r.Email)
	return validation.Struct(r)
}

func (r *UpdatePasswordRequest) Validate() error {
	if err := validation.Struct(r); err != nil {
		return err
	}
	if r.NewPassword == r.CurrentPassword {
		return &validation.Error{Fields: []validation.FieldError{{Field: "new_password", Message: "must differ from the current password"}}}
	}
	return nil
}
