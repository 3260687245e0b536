package middleware

import (
	"net/http"

	"github.com/academyadmin/academy-api/internal/app/models/dto"
	"github.com/academyadmin/academy-api/internal/pkg/auth"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// TokenHeader carries the access token on protected requests
const TokenHeader = "x-auth-token"

// Context keys set for authenticated requests
const (
	ContextUserID = "userID"
	ContextEmail  = "email"
	ContextRole   = "role"
)

// AuthMiddleware guards protected routes
type AuthMiddleware struct {
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService, logger zerolog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		logger:     logger,
	}
}

// JWTAuth validates the token header and stores the caller identity in the context
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := auth.ExtractBearerToken(c.GetHeader(TokenHeader))
		if err != nil || tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(
				dto.NewErrorDetail(dto.ErrorCodeUnauthenticated, "Denied Access"),
			))
			return
		}

		claims, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			m.logger.Debug().Err(err).Str("path", c.Request.URL.Path).Msg("Rejected access token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(
				dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Token is not valid"),
			))
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextEmail, claims.Email)
		c.Set(ContextRole, claims.Role)

		c.Next()
	}
}

// UserID returns the authenticated caller's id
func UserID(c *gin.Context) string {
	return c.GetString(ContextUserID)
}
