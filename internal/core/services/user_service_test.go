package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/procurement_accounting_app/internal/apperrors"
	"github.com/SscSPs/procurement_accounting_app/internal/core/domain"
	portssvc "github.com/SscSPs/procurement_accounting_app/internal/core/ports/services"
	"github.com/SscSPs/procurement_accounting_app/internal/core/services"
	"github.com/SscSPs/procurement_accounting_app/internal/dto"
	"github.com/SscSPs/procurement_accounting_app/internal/utils"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type UserServiceTestSuite struct {
	suite.Suite
	ctx      context.Context
	userRepo *MockUserRepository
	svc      portssvc.UserSvcFacade
}

func (s *UserServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.userRepo = new(MockUserRepository)
	s.svc = services.NewUserService(s.userRepo)
}

func (s *UserServiceTestSuite) storedUser() *domain.User {
	hash, err := utils.HashPassword("old-password")
	s.Require().NoError(err)
	return &domain.User{UserID: testUserID, Email: "alice@example.com", DisplayName: "Alice", Role: domain.RoleMember, PasswordHash: hash}
}

func (s *UserServiceTestSuite) TestGetUserByID_InvalidID() {
	_, err := s.svc.GetUserByID(s.ctx, "42")

	s.ErrorIs(err, apperrors.ErrValidation)
	s.userRepo.AssertNotCalled(s.T(), "FindUserByID", mock.Anything, mock.Anything)
}

func (s *UserServiceTestSuite) TestListUsers() {
	filter := domain.UserListFilter{Role: domain.RoleAdmin, Page: 2, Limit: 10}
	s.userRepo.On("FindUsers", mock.Anything, filter).Return([]domain.User{{UserID: testUserID}}, int64(11), nil).Once()

	page, err := s.svc.ListUsers(s.ctx, filter)

	s.Require().NoError(err)
	s.Len(page.Items, 1)
	s.Equal(int64(11), page.Total)
	s.Equal(2, page.Page)
}

func (s *UserServiceTestSuite) TestListUsers_UnknownRole() {
	_, err := s.svc.ListUsers(s.ctx, domain.UserListFilter{Role: "ROOT"})

	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *UserServiceTestSuite) TestUpdateUser_EmailTaken() {
	s.userRepo.On("FindUserByID", mock.Anything, testUserID).Return(s.storedUser(), nil).Once()
	s.userRepo.On("FindUserByEmail", mock.Anything, "bob@example.com").Return(&domain.User{UserID: testDocID}, nil).Once()
	email := "Bob@example.com"

	_, err := s.svc.UpdateUser(s.ctx, testUserID, dto.UpdateUserRequest{Email: &email})

	s.ErrorIs(err, apperrors.ErrDuplicate)
	s.userRepo.AssertNotCalled(s.T(), "UpdateUser", mock.Anything, mock.Anything)
}

func (s *UserServiceTestSuite) TestUpdateUser_Success() {
	s.userRepo.On("FindUserByID", mock.Anything, testUserID).Return(s.storedUser(), nil).Once()
	s.userRepo.On("UpdateUser", mock.Anything, mock.MatchedBy(func(u domain.User) bool {
		return u.DisplayName == "Alice Smith" && u.Role == domain.RoleManager
	})).Return(nil).Once()
	name, role := " Alice Smith ", "MANAGER"

	user, err := s.svc.UpdateUser(s.ctx, testUserID, dto.UpdateUserRequest{DisplayName: &name, Role: &role})

	s.Require().NoError(err)
	s.Equal("Alice Smith", user.DisplayName)
	s.userRepo.AssertExpectations(s.T())
}

func (s *UserServiceTestSuite) TestChangePassword() {
	s.userRepo.On("FindUserByID", mock.Anything, testUserID).Return(s.storedUser(), nil).Once()
	s.userRepo.On("UpdateUser", mock.Anything, mock.MatchedBy(func(u domain.User) bool {
		return utils.ValidatePassword("new-password", u.PasswordHash)
	})).Return(nil).Once()

	s.NoError(s.svc.ChangePassword(s.ctx, testUserID, dto.ChangePasswordRequest{CurrentPassword: "old-password", NewPassword: "new-password"}))
	s.userRepo.AssertExpectations(s.T())
}

func (s *UserServiceTestSuite) TestChangePassword_WrongCurrent() {
	s.userRepo.On("FindUserByID", mock.Anything, testUserID).Return(s.storedUser(), nil).Once()

	err := s.svc.ChangePassword(s.ctx, testUserID, dto.ChangePasswordRequest{CurrentPassword: "nope", NewPassword: "new-password"})

	s.ErrorIs(err, apperrors.ErrValidation)
	s.userRepo.AssertNotCalled(s.T(), "UpdateUser", mock.Anything, mock.Anything)
}

func (s *UserServiceTestSuite) TestDeleteUser() {
	s.userRepo.On("DeleteUser", mock.Anything, testUserID).Return(nil).Once()

	s.NoError(s.svc.DeleteUser(s.ctx, testUserID))
}

func TestUserService(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
