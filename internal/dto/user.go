package dto

import (
	"strings"
	"time"

	"github.com/SscSPs/procurement_accounting_app/internal/core/domain"
	"github.com/SscSPs/procurement_accounting_app/internal/utils/pagination"
)

// UserResponse defines the user data returned by the API. It never carries credentials.
type UserResponse struct {
	UserID           string     `json:"id"`
	Email            string     `json:"email"`
	DisplayName      string     `json:"displayName"`
	Role             string     `json:"role"`
	CountryCode      string     `json:"countryCode,omitempty"`
	NativeLanguageID string     `json:"nativeLanguageId,omitempty"`
	UILanguageID     string     `json:"uiLanguageId,omitempty"`
	LastActiveAt     *time.Time `json:"lastActiveAt,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

// ToUserResponse converts a domain.User to UserResponse DTO
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:           u.UserID,
		Email:            u.Email,
		DisplayName:      u.DisplayName,
		Role:             string(u.Role),
		CountryCode:      u.CountryCode,
		NativeLanguageID: u.NativeLanguageID,
		UILanguageID:     u.UILanguageID,
		LastActiveAt:     u.LastActiveAt,
		CreatedAt:        u.CreatedAt,
		UpdatedAt:        u.UpdatedAt,
	}
}

// ToUserListResponse converts a page of users, dropping credentials.
func ToUserListResponse(p *domain.Page[domain.User]) ListResponse[UserResponse] {
	items := make([]UserResponse, len(p.Items))
	for i := range p.Items {
		items[i] = ToUserResponse(&p.Items[i])
	}
	return ToListResponse(&domain.Page[UserResponse]{Items: items, Total: p.Total, Page: p.Page, Limit: p.Limit})
}

// UpdateUserRequest defines the data allowed for updating a user.
// Using pointers to differentiate between omitted fields and zero-value fields.
type UpdateUserRequest struct {
	DisplayName      *string `json:"displayName" binding:"omitempty,min=1"`
	Email            *string `json:"email" binding:"omitempty,email"`
	Role             *string `json:"role" binding:"omitempty,oneof=OWNER ADMIN MANAGER MEMBER STUDENT"`
	CountryCode      *string `json:"countryCode"`
	NativeLanguageID *string `json:"nativeLanguageId"`
	UILanguageID     *string `json:"uiLanguageId"`
}

// ChangePasswordRequest requires the current password before setting a new one.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=6"`
}

// ListUsersParams defines query parameters for listing users.
type ListUsersParams struct {
	ListParams
	Role string `form:"role" binding:"omitempty,oneof=OWNER ADMIN MANAGER MEMBER STUDENT"`
}

func (p ListUsersParams) ToFilter() domain.UserListFilter {
	page, limit := pagination.Normalize(p.Page, p.Limit)
	return domain.UserListFilter{Role: domain.Role(p.Role), Search: strings.TrimSpace(p.Search), Page: page, Limit: limit}
}
