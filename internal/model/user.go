package model

import (
	"fmt"
	"strings"
	"time"
)

// Role is one of the closed set of role tags an account may carry.
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

// authorityPrefix is the storage-level prefix attached to roles when they are
// carried inside a token. It is stripped again before roles reach API clients.
const authorityPrefix = "ROLE_"

// ParseRole resolves a raw role value against the closed enumeration.
func ParseRole(value string) (Role, error) {
	switch Role(strings.ToUpper(strings.TrimSpace(value))) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleUser:
		return RoleUser, nil
	default:
		return "", fmt.Errorf("role %q is not valid, allowed values: ADMIN, USER", value)
	}
}

// Authority returns the prefixed form of the role used inside token claims.
func (r Role) Authority() string {
	return authorityPrefix + string(r)
}

// RoleFromAuthority strips the storage-level prefix from an authority string.
func RoleFromAuthority(authority string) string {
	return strings.TrimPrefix(authority, authorityPrefix)
}

// Authorities maps a role set to its prefixed token representation.
func Authorities(roles []Role) []string {
	out := make([]string, 0, len(roles))
	for _, r := range roles {
		out = append(out, r.Authority())
	}
	return out
}

// RoleNames maps a role set to bare enumeration values for API responses.
func RoleNames(roles []Role) []string {
	out := make([]string, 0, len(roles))
	for _, r := range roles {
		out = append(out, string(r))
	}
	return out
}

// UserAccount is one credential holder. ResetToken and ResetExpiresAt are set
// and cleared together; an outstanding token with no expiry is invalid.
type UserAccount struct {
	ID                     string     `bson:"_id"`
	Username               string     `bson:"username"`
	PasswordHash           string     `bson:"password_hash"`
	FullName               string     `bson:"full_name"`
	Email                  string     `bson:"email"`
	Active                 bool       `bson:"active"`
	Roles                  []Role     `bson:"roles"`
	ResetToken             string     `bson:"reset_token,omitempty"`
	ResetExpiresAt         *time.Time `bson:"reset_expires_at,omitempty"`
	PasswordChangeRequired bool       `bson:"password_change_required"`
	CreatedAt              time.Time  `bson:"created_at"`
	UpdatedAt              time.Time  `bson:"updated_at"`
}

// Principal is the verified identity produced by authentication.
type Principal struct {
	Username string
	Roles    []Role
}

type CreateUserRequest struct {
	Username string   `json:"username" binding:"required,min=3,max=40"`
	Password string   `json:"password" binding:"required,min=8"`
	FullName string   `json:"fullName" binding:"required,min=3,max=80"`
	Email    string   `json:"email" binding:"required,email"`
	Roles    []string `json:"roles"`
}

type UpdateUserStatusRequest struct {
	Active *bool `json:"active" binding:"required"`
}

type AdminResetPasswordRequest struct {
	NewPassword string `json:"newPassword" binding:"required,min=8"`
}

type UserResponse struct {
	ID       string   `json:"id"`
	Username string   `json:"username"`
	FullName string   `json:"fullName"`
	Email    string   `json:"email"`
	Active   bool     `json:"active"`
	Roles    []string `json:"roles"`
}
