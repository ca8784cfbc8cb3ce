package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/procurement_accounting_app/internal/apperrors"
	"github.com/SscSPs/procurement_accounting_app/internal/core/domain"
	portsrepo "github.com/SscSPs/procurement_accounting_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/procurement_accounting_app/internal/core/ports/services"
	"github.com/SscSPs/procurement_accounting_app/internal/dto"
	"github.com/SscSPs/procurement_accounting_app/internal/utils"
)

type userService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
}

func NewUserService(userRepo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	if err := utils.ValidateObjectID("user id", userID); err != nil {
		return nil, err
	}
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		s.logUnexpected(ctx, err, "Failed to get user by ID", slog.String("user_id", userID))
		return nil, err
	}
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context, filter domain.UserListFilter) (*domain.Page[domain.User], error) {
	if filter.Role != "" && !filter.Role.Valid() {
		return nil, apperrors.Validationf("unknown role %q", filter.Role)
	}
	users, total, err := s.userRepo.FindUsers(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list users")
		return nil, err
	}
	return &domain.Page[domain.User]{Items: users, Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}

func (s *userService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest) (*domain.User, error) {
	user, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Email != nil {
		email := normalizeEmail(*req.Email)
		if email != user.Email {
			other, err := s.userRepo.FindUserByEmail(ctx, email)
			switch {
			case err == nil && other.UserID != user.UserID:
				return nil, fmt.Errorf("email %s is already registered: %w", email, apperrors.ErrDuplicate)
			case err != nil && !errors.Is(err, apperrors.ErrNotFound):
				s.LogError(ctx, err, "Failed to check email availability")
				return nil, err
			}
			user.Email = email
		}
	}
	if req.DisplayName != nil {
		user.DisplayName = strings.TrimSpace(*req.DisplayName)
	}
	if req.Role != nil {
		user.Role = domain.Role(*req.Role)
	}
	if req.CountryCode != nil {
		user.CountryCode = *req.CountryCode
	}
	if req.NativeLanguageID != nil {
		user.NativeLanguageID = *req.NativeLanguageID
	}
	if req.UILanguageID != nil {
		user.UILanguageID = *req.UILanguageID
	}
	user.UpdatedAt = time.Now().UTC()

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		s.logUnexpected(ctx, err, "Failed to update user", slog.String("user_id", userID))
		return nil, err
	}
	s.LogInfo(ctx, "User updated", slog.String("user_id", userID))
	return user, nil
}

func (s *userService) ChangePassword(ctx context.Context, userID string, req dto.ChangePasswordRequest) error {
	user, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}
	if !utils.ValidatePassword(req.CurrentPassword, user.PasswordHash) {
		return apperrors.Validationf("current password is incorrect")
	}
	hash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.PasswordHash = hash
	user.UpdatedAt = time.Now().UTC()
	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		s.logUnexpected(ctx, err, "Failed to store new password", slog.String("user_id", userID))
		return err
	}
	s.LogInfo(ctx, "Password changed", slog.String("user_id", userID))
	return nil
}

func (s *userService) DeleteUser(ctx context.Context, userID string) error {
	if err := utils.ValidateObjectID("user id", userID); err != nil {
		return err
	}
	if err := s.userRepo.DeleteUser(ctx, userID); err != nil {
		s.logUnexpected(ctx, err, "Failed to delete user", slog.String("user_id", userID))
		return err
	}
	s.LogInfo(ctx, "User deleted", slog.String("user_id", userID))
	return nil
}
