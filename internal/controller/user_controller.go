package controller

import (
	"lms_backend/internal/service"
	"lms_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	UserService *service.UserService
}

func NewUserController(userService *service.UserService) *UserController {
	return &UserController{UserService: userService}
}

// GetProfile godoc
// @Summary Get the calling user's profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=model.User}
// @Router /api/users/me [get]
func (c *UserController) GetProfile(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	profile, err := c.UserService.Get(user.UserID)
	if err != nil {
		serviceError(ctx, err)
		return
	}
	util.Success(ctx, profile)
}

// UpdateProfile godoc
// @Summary Update the calling user's profile
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.ProfileUpdateReq true "fields to change"
// @Success 200 {object} util.Response{data=model.User}
// @Failure 400 {object} util.Response
// @Router /api/users/me [put]
func (c *UserController) UpdateProfile(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.ProfileUpdateReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	profile, err := c.UserService.UpdateProfile(user.UserID, req)
	if err != nil {
		serviceError(ctx, err)
		return
	}
	util.Success(ctx, profile)
}

// ListUsers godoc
// @Summary List all users (admin)
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.User}
// @Failure 403 {object} util.Response
// @Router /api/admin/users [get]
func (c *UserController) ListUsers(ctx *gin.Context) {
	users, err := c.UserService.List()
	if err != nil {
		serviceError(ctx, err)
		return
	}
	util.Success(ctx, users)
}

// DeleteUser godoc
// @Summary Delete a user account (admin)
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "user id"
// @Success 200 {object} util.Response
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/admin/users/{id} [delete]
func (c *UserController) DeleteUser(ctx *gin.Context) {
	userID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := c.UserService.Delete(userID); err != nil {
		serviceError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
