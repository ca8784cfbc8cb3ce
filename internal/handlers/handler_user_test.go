package handlers_test

import (
	"net/http"

	"github.com/SscSPs/procurement_accounting_app/internal/apperrors"
	"github.com/SscSPs/procurement_accounting_app/internal/core/domain"
	"github.com/SscSPs/procurement_accounting_app/internal/dto"
	"github.com/stretchr/testify/mock"
)

func (s *HandlerTestSuite) TestListUsers_AdminFiltersByRole() {
	token := s.generateTestToken(testUserID, domain.RoleAdmin)
	page := &domain.Page[domain.User]{
		Items: []domain.User{{UserID: otherID, Email: "bob@example.com", Role: domain.RoleManager, PasswordHash: "hash"}},
		Total: 1,
		Page:  1,
		Limit: 10,
	}
	s.users.On("ListUsers", mock.Anything, domain.UserListFilter{Role: domain.RoleManager, Search: "bob", Page: 1, Limit: 10}).
		Return(page, nil).Once()

	w := s.do(http.MethodGet, "/api/v1/users?role=MANAGER&search=%20bob%20", nil, token)

	s.Equal(http.StatusOK, w.Code)
	var body dto.ListResponse[dto.UserResponse]
	s.decodeData(w, &body)
	s.Require().Len(body.Items, 1)
	s.Equal(otherID, body.Items[0].UserID)
	s.Equal(int64(1), body.Pagination.TotalItems)
	s.NotContains(w.Body.String(), "hash")
}

func (s *HandlerTestSuite) TestListUsers_MemberForbidden() {
	token := s.generateTestToken(testUserID, domain.RoleMember)

	w := s.do(http.MethodGet, "/api/v1/users", nil, token)

	s.Equal(http.StatusForbidden, w.Code)
	s.users.AssertNotCalled(s.T(), "ListUsers", mock.Anything, mock.Anything)
}

func (s *HandlerTestSuite) TestListUsers_InvalidRoleFilter() {
	token := s.generateTestToken(testUserID, domain.RoleOwner)

	w := s.do(http.MethodGet, "/api/v1/users?role=ROOT", nil, token)

	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *HandlerTestSuite) TestGetUser_NotFound() {
	token := s.generateTestToken(testUserID, domain.RoleAdmin)
	s.users.On("GetUserByID", mock.Anything, otherID).Return(nil, apperrors.ErrNotFound).Once()

	w := s.do(http.MethodGet, "/api/v1/users/"+otherID, nil, token)

	s.Equal(http.StatusNotFound, w.Code)
}

func (s *HandlerTestSuite) TestChangePassword_Own() {
	token := s.generateTestToken(testUserID, domain.RoleMember)
	req := dto.ChangePasswordRequest{CurrentPassword: "old-secret", NewPassword: "new-secret"}
	s.users.On("ChangePassword", mock.Anything, testUserID, req).Return(nil).Once()

	w := s.do(http.MethodPatch, "/api/v1/users/"+testUserID+"/password", req, token)

	s.Equal(http.StatusOK, w.Code)
	var body dto.MessageResponse
	s.decodeData(w, &body)
	s.Equal("Password changed successfully", body.Message)
}

func (s *HandlerTestSuite) TestChangePassword_WrongCurrentPassword() {
	token := s.generateTestToken(testUserID, domain.RoleMember)
	req := dto.ChangePasswordRequest{CurrentPassword: "guess", NewPassword: "new-secret"}
	s.users.On("ChangePassword", mock.Anything, testUserID, req).
		Return(apperrors.Validationf("current password is incorrect")).Once()

	w := s.do(http.MethodPatch, "/api/v1/users/"+testUserID+"/password", req, token)

	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal("current password is incorrect", s.errorMessage(w))
}

func (s *HandlerTestSuite) TestChangePassword_OtherUserForbiddenForMember() {
	token := s.generateTestToken(testUserID, domain.RoleMember)
	req := dto.ChangePasswordRequest{CurrentPassword: "old-secret", NewPassword: "new-secret"}

	w := s.do(http.MethodPatch, "/api/v1/users/"+otherID+"/password", req, token)

	s.Equal(http.StatusForbidden, w.Code)
	s.users.AssertNotCalled(s.T(), "ChangePassword", mock.Anything, mock.Anything, mock.Anything)
}

func (s *HandlerTestSuite) TestChangePassword_AdminForOtherUser() {
	token := s.generateTestToken(testUserID, domain.RoleAdmin)
	req := dto.ChangePasswordRequest{CurrentPassword: "old-secret", NewPassword: "new-secret"}
	s.users.On("ChangePassword", mock.Anything, otherID, req).Return(nil).Once()

	w := s.do(http.MethodPatch, "/api/v1/users/"+otherID+"/password", req, token)

	s.Equal(http.StatusOK, w.Code)
	s.users.AssertExpectations(s.T())
}

func (s *HandlerTestSuite) TestDeleteUser() {
	token := s.generateTestToken(testUserID, domain.RoleOwner)
	s.users.On("DeleteUser", mock.Anything, otherID).Return(nil).Once()

	w := s.do(http.MethodDelete, "/api/v1/users/"+otherID, nil, token)

	s.Equal(http.StatusOK, w.Code)
	s.users.AssertExpectations(s.T())
}
