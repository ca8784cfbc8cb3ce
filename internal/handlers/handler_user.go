package handlers

import (
	"log/slog"
	"net/http"
	"slices"

	portssvc "github.com/SscSPs/procurement_accounting_app/internal/core/ports/services"
	"github.com/SscSPs/procurement_accounting_app/internal/dto"
	"github.com/SscSPs/procurement_accounting_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// userHandler handles HTTP requests related to users.
type userHandler struct {
	userService portssvc.UserSvcFacade
}

// newUserHandler creates a new userHandler.
func newUserHandler(us portssvc.UserSvcFacade) *userHandler {
	return &userHandler{
		userService: us,
	}
}

// registerUserRoutes registers all user-related routes.
func registerUserRoutes(rg *gin.RouterGroup, userService portssvc.UserSvcFacade) {
	h := newUserHandler(userService)

	users := rg.Group("/users")
	{
		admin := users.Group("", middleware.RequireRoles(userAdminRoles...))
		admin.GET("", h.listUsers)
		admin.GET("/:id", h.getUser)
		admin.PATCH("/:id", h.updateUser)
		admin.DELETE("/:id", h.deleteUser)

		// Own account or user administrators.
		users.PATCH("/:id/password", h.changePassword)
	}
}

// listUsers godoc
// @Summary List users
// @Description Retrieves a paginated list of users, optionally filtered by role and a search term.
// @Tags users
// @Produce json
// @Param role query string false "Role filter" Enums(OWNER, ADMIN, MANAGER, MEMBER, STUDENT)
// @Param search query string false "Matches display name or email"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} dto.ListResponse[dto.UserResponse]
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /users [get]
func (h *userHandler) listUsers(c *gin.Context) {
	var params dto.ListUsersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err, "list users query")
		return
	}

	page, err := h.userService.ListUsers(c.Request.Context(), params.ToFilter())
	if err != nil {
		respondWithError(c, err, "list users")
		return
	}
	respondWithData(c, http.StatusOK, dto.ToUserListResponse(page))
}

// getUser godoc
// @Summary Get a user by ID
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid user ID"
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /users/{id} [get]
func (h *userHandler) getUser(c *gin.Context) {
	user, err := h.userService.GetUserByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithError(c, err, "get user")
		return
	}
	respondWithData(c, http.StatusOK, dto.ToUserResponse(user))
}

// updateUser godoc
// @Summary Update a user
// @Description Updates profile fields or the role of a user. Omitted fields are left unchanged.
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param user body dto.UpdateUserRequest true "Fields to update"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Email already in use"
// @Security BearerAuth
// @Router /users/{id} [patch]
func (h *userHandler) updateUser(c *gin.Context) {
	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "update user request")
		return
	}

	user, err := h.userService.UpdateUser(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondWithError(c, err, "update user")
		return
	}
	respondWithData(c, http.StatusOK, dto.ToUserResponse(user))
}

// deleteUser godoc
// @Summary Delete a user
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /users/{id} [delete]
func (h *userHandler) deleteUser(c *gin.Context) {
	userID := c.Param("id")
	if err := h.userService.DeleteUser(c.Request.Context(), userID); err != nil {
		respondWithError(c, err, "delete user")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("User deleted", slog.String("deleted_user_id", userID))
	respondWithData(c, http.StatusOK, dto.MessageResponse{Message: "User deleted successfully"})
}

// changePassword godoc
// @Summary Change password
// @Description Replaces the password after checking the current one. Allowed for the user themself or user administrators.
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body dto.ChangePasswordRequest true "Current and new password"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse "Current password is wrong"
// @Failure 403 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /users/{id}/password [patch]
func (h *userHandler) changePassword(c *gin.Context) {
	caller, ok := middleware.GetUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	targetID := c.Param("id")
	if caller.UserID != targetID && !slices.Contains(userAdminRoles, caller.Role) {
		middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Password change for another user denied",
			slog.String("target_user_id", targetID))
		c.JSON(http.StatusForbidden, gin.H{"error": "You do not have permission to perform this action"})
		return
	}

	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "change password request")
		return
	}

	if err := h.userService.ChangePassword(c.Request.Context(), targetID, req); err != nil {
		respondWithError(c, err, "change password")
		return
	}
	respondWithData(c, http.StatusOK, dto.MessageResponse{Message: "Password changed successfully"})
}
