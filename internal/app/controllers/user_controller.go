package controllers

import (
	"net/http"

	"github.com/academyadmin/academy-api/internal/app/models"
	"github.com/academyadmin/academy-api/internal/app/models/dto"
	"github.com/academyadmin/academy-api/internal/app/services"
	"github.com/academyadmin/academy-api/internal/middleware"
	"github.com/gin-gonic/gin"
)

// UserController handles administrator accounts
type UserController struct {
	userService services.UserService
}

// NewUserController creates a new UserController
func NewUserController(userService services.UserService) *UserController {
	return &UserController{
		userService: userService,
	}
}

// CreateUser registers an administrator
// @Summary Create an administrator
// @Tags users
// @Accept json
// @Produce json
// @Param request body dto.CreateUserRequest true "Administrator"
// @Success 201 {object} models.User
// @Failure 400 {object} dto.ErrorResponse "Validation error or email already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users [post]
func (c *UserController) CreateUser(ctx *gin.Context) {
	var req dto.CreateUserRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	user := &models.User{
		Name:     req.Name,
		LastName: req.LastName,
		Email:    req.Email,
	}
	if err := c.userService.CreateUser(ctx.Request.Context(), user, req.Password); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, user)
}

// ListUsers lists every administrator
// @Summary List administrators
// @Tags users
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} models.User
// @Failure 401 {object} dto.ErrorResponse
// @Router /users [get]
func (c *UserController) ListUsers(ctx *gin.Context) {
	users, err := c.userService.ListUsers(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, users)
}

// SearchUser finds an administrator by email. A miss answers null.
// @Summary Find an administrator by email
// @Tags users
// @Produce json
// @Security ApiKeyAuth
// @Param email query string true "Email"
// @Success 200 {object} models.User
// @Failure 400 {object} dto.ErrorResponse "email is required"
// @Router /users/search [get]
func (c *UserController) SearchUser(ctx *gin.Context) {
	user, err := c.userService.FindUserByEmail(ctx.Request.Context(), ctx.Query("email"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, user)
}

// GetUser retrieves an administrator
// @Summary Get an administrator
// @Tags users
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "User ID" Format(uuid)
// @Success 200 {object} models.User
// @Failure 404 {object} dto.ErrorResponse "user not found"
// @Router /users/{id} [get]
func (c *UserController) GetUser(ctx *gin.Context) {
	user, err := c.userService.GetUserByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, user)
}

// UpdateUser rewrites an administrator's profile
// @Summary Update an administrator
// @Tags users
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "User ID" Format(uuid)
// @Param request body dto.UpdateUserRequest true "Administrator"
// @Success 200 {object} models.User
// @Failure 400 {object} dto.ErrorResponse "Validation error or email already exists"
// @Failure 404 {object} dto.ErrorResponse "user not found"
// @Router /users/{id} [put]
func (c *UserController) UpdateUser(ctx *gin.Context) {
	var req dto.UpdateUserRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	user, err := c.userService.UpdateUser(ctx.Request.Context(), &models.User{
		ID:       ctx.Param("id"),
		Name:     req.Name,
		LastName: req.LastName,
		Email:    req.Email,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, user)
}

// DeleteUser removes an administrator
// @Summary Delete an administrator
// @Tags users
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "User ID" Format(uuid)
// @Success 200 {object} models.User "The deleted administrator"
// @Failure 404 {object} dto.ErrorResponse "Record to delete does not exist."
// @Router /users/{id} [delete]
func (c *UserController) DeleteUser(ctx *gin.Context) {
	user, err := c.userService.DeleteUser(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, user)
}
