package mapping

import (
	"database/sql"

	"github.com/SscSPs/procurement_accounting_app/internal/core/domain"
	"github.com/SscSPs/procurement_accounting_app/internal/models"
)

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// ToModelUser converts a domain User to a model User
func ToModelUser(d domain.User) models.User {
	tokens := d.RefreshTokens
	if tokens == nil {
		tokens = []string{}
	}
	return models.User{
		UserID:           d.UserID,
		Email:            d.Email,
		PasswordHash:     d.PasswordHash,
		DisplayName:      d.DisplayName,
		Role:             string(d.Role),
		CountryCode:      nullString(d.CountryCode),
		NativeLanguageID: nullString(d.NativeLanguageID),
		UILanguageID:     nullString(d.UILanguageID),
		RefreshTokens:    tokens,
		LastActiveAt:     d.LastActiveAt,
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        d.UpdatedAt,
	}
}

// ToDomainUser converts a model User to a domain User
func ToDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:           m.UserID,
		Email:            m.Email,
		PasswordHash:     m.PasswordHash,
		DisplayName:      m.DisplayName,
		Role:             domain.Role(m.Role),
		CountryCode:      m.CountryCode.String,
		NativeLanguageID: m.NativeLanguageID.String,
		UILanguageID:     m.UILanguageID.String,
		RefreshTokens:    m.RefreshTokens,
		LastActiveAt:     m.LastActiveAt,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

// ToDomainUserSlice converts a slice of model Users to a slice of domain Users
func ToDomainUserSlice(ms []models.User) []domain.User {
	ds := make([]domain.User, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainUser(m)
	}
	return ds
}
