package domain

import (
	"slices"
	"time"
)

// Role is the coarse permission level of a user.
type Role string

const (
	RoleOwner   Role = "OWNER"
	RoleAdmin   Role = "ADMIN"
	RoleManager Role = "MANAGER"
	RoleMember  Role = "MEMBER"
	RoleStudent Role = "STUDENT"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleOwner, RoleAdmin, RoleManager, RoleMember, RoleStudent:
		return true
	}
	return false
}

// User represents a user of the application in the domain.
type User struct {
	UserID           string     `json:"id"`
	Email            string     `json:"email"`
	PasswordHash     string     `json:"-"`
	DisplayName      string     `json:"displayName"`
	Role             Role       `json:"role"`
	CountryCode      string     `json:"countryCode,omitempty"`
	NativeLanguageID string     `json:"nativeLanguageId,omitempty"`
	UILanguageID     string     `json:"uiLanguageId,omitempty"`
	RefreshTokens    []string   `json:"-"`
	LastActiveAt     *time.Time `json:"lastActiveAt,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

// HasRefreshToken reports whether token is in the user's active set.
func (u *User) HasRefreshToken(token string) bool {
	return slices.Contains(u.RefreshTokens, token)
}

// UserListFilter narrows user listings.
type UserListFilter struct {
	Role   Role
	Search string
	Page   int
	Limit  int
}
