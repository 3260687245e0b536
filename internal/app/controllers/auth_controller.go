// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"

	"github.com/academyadmin/academy-api/internal/app/models/dto"
	"github.com/academyadmin/academy-api/internal/app/services"
	"github.com/academyadmin/academy-api/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// TokenCookie is the cookie carrying the access token after login
const TokenCookie = "token"

// AuthController handles authentication related operations
type AuthController struct {
	authService  *services.AuthService
	secureCookie bool
	logger       zerolog.Logger
}

// NewAuthController creates a new AuthController. secureCookie marks the
// token cookie Secure, which production deployments require.
func NewAuthController(authService *services.AuthService, secureCookie bool, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService:  authService,
		secureCookie: secureCookie,
		logger:       logger,
	}
}

// Login handles administrator login
// @Summary Administrator login
// @Description Checks the credentials of an administrator, returns a token and sets it as the token cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.LoginResponse "Login successful"
// @Failure 400 {object} dto.ErrorResponse "Invalid credentials or validation error"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	result, err := c.authService.Login(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.setTokenCookie(ctx, result.Token, int(result.ExpiresIn.Seconds()))
	ctx.JSON(http.StatusOK, dto.LoginResponse{
		Name:     result.User.Name,
		LastName: result.User.LastName,
		Email:    result.User.Email,
		Token:    result.Token,
	})
}

// Me returns the authenticated administrator
// @Summary Current administrator
// @Description Returns the administrator behind the access token
// @Tags auth
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dto.MeResponse
// @Failure 401 {object} dto.ErrorResponse "Denied Access or Token is not valid"
// @Failure 404 {object} dto.ErrorResponse "user not found"
// @Router /auth [get]
func (c *AuthController) Me(ctx *gin.Context) {
	user, err := c.authService.Me(ctx.Request.Context(), middleware.UserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMeResponse(user))
}

// Logout clears the token cookie
// @Summary Logout
// @Description Expires the token cookie. Tokens already issued stay valid until they expire.
// @Tags auth
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dto.MessageResponse
// @Failure 401 {object} dto.ErrorResponse "Denied Access or Token is not valid"
// @Router /auth/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	c.setTokenCookie(ctx, "", -1)
	c.logger.Info().Str("userID", middleware.UserID(ctx)).Msg("Administrator logged out")
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Logout successful"})
}

// setTokenCookie writes the token cookie; a negative maxAge expires it
func (c *AuthController) setTokenCookie(ctx *gin.Context, value string, maxAge int) {
	ctx.SetSameSite(http.SameSiteNoneMode)
	ctx.SetCookie(TokenCookie, value, maxAge, "/", "", c.secureCookie, true)
}
