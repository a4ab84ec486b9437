package models

import "time"

// Role is the single-letter role code carried in tokens and stored on users.
type Role string

const (
	RoleAdmin     Role = "A"
	RoleUser      Role = "U"
	RoleVolunteer Role = "V"
)

// Valid reports whether r is one of the known role codes.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser || r == RoleVolunteer
}

type UserStatus string

const (
	UserStatusActive    UserStatus = "active"
	UserStatusSuspended UserStatus = "suspended"
)

type User struct {
	ID           int64      `json:"id"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	FullName     string     `json:"full_name"`
	PasswordHash string     `json:"-"`
	GoogleSub    string     `json:"-"`
	Role         Role       `json:"role"`
	Status       UserStatus `json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// Principal is the authenticated caller as decoded from a token.
type Principal struct {
	ID       int64  `json:"id"`
	Role     Role   `json:"role"`
	Username string `json:"username"`
}

// IsAdmin reports whether the caller has the admin role.
func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

type RegisterRequest struct {
	Username string `json:"username" validate:"required,username"`
	Password string `json:"password" validate:"required,min=8,maxbytes=72"`
	Email    string `json:"email" validate:"omitempty,email,max=254"`
	FullName string `json:"full_name" validate:"max=100"`
}

type CreateUserRequest struct {
	Username string `json:"username" validate:"required,username"`
	Password string `json:"password" validate:"required,min=8,maxbytes=72"`
	Email    string `json:"email" validate:"omitempty,email,max=254"`
	FullName string `json:"full_name" validate:"max=100"`
	Role     Role   `json:"role" validate:"required,rolecode"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type GoogleLoginRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

type UpdateProfileRequest struct {
	Email    string `json:"email" validate:"omitempty,email,max=254"`
	FullName string `json:"full_name" validate:"max=100"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8,maxbytes=72"`
}

type UpdateUserStatusRequest struct {
	Status UserStatus `json:"status" validate:"required,oneof=active suspended"`
}

type UpdateUserRoleRequest struct {
	Role Role `json:"role" validate:"required,rolecode"`
}
