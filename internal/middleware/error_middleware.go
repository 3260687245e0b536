package middleware

import (
	"errors"
	"net/http"

	"github.com/academyadmin/academy-api/internal/app/models/dto"
	"github.com/academyadmin/academy-api/internal/pkg/apperrors"
	"github.com/academyadmin/academy-api/internal/pkg/dberrors"
	"github.com/academyadmin/academy-api/internal/pkg/logger"
	"github.com/gin-gonic/gin"
)

// HandleAPIError writes the error envelope matching err
func HandleAPIError(c *gin.Context, err error) {
	status, detail := normalize(err)
	if status >= http.StatusInternalServerError {
		logger.Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("Unhandled store error")
	}
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(detail))
}

// normalize maps err to an HTTP status and one envelope entry
func normalize(err error) (int, dto.ErrorDetail) {
	var custom *apperrors.CustomError
	if errors.As(err, &custom) {
		detail := dto.NewErrorDetail(dto.ErrorCode(custom.Code), custom.Error())
		if custom.Details != nil {
			detail = detail.WithDetails(custom.Details)
		}
		return statusFor(custom.Err), detail
	}

	switch {
	case dberrors.IsUniqueViolation(err):
		return http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeDuplicateValue, "Unique constraint failed on one field")
	case dberrors.IsRecordToDeleteNotFound(err):
		return http.StatusNotFound, dto.NewErrorDetail(dto.ErrorCodeNotFound, "Record to delete does not exist.")
	case dberrors.IsForeignKeyViolation(err):
		return http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeBadRequest, "Foreign key constraint failed on one field")
	case errors.Is(err, apperrors.ErrBadRequest), errors.Is(err, apperrors.ErrValidationFailed):
		return http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeBadRequest, err.Error())
	}

	store := apperrors.NewStoreError().WithDetails(dberrors.Fields(err))
	return http.StatusInternalServerError, dto.NewErrorDetail(dto.ErrorCode(store.Code), store.Error()).
		WithDetails(store.Details)
}

func statusFor(kind error) int {
	switch {
	case errors.Is(kind, apperrors.ErrResourceNotFound):
		return http.StatusNotFound
	case apperrors.Is(kind, apperrors.ErrUnauthenticated, apperrors.ErrTokenInvalid, apperrors.ErrTokenExpired):
		return http.StatusUnauthorized
	case apperrors.Is(kind, apperrors.ErrDuplicateValue,
		apperrors.ErrConflict,
		apperrors.ErrBadRequest,
		apperrors.ErrValidationFailed,
		apperrors.ErrInvalidCredentials):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// NotFoundHandler answers unmatched routes
func NotFoundHandler(c *gin.Context) {
	c.JSON(http.StatusNotFound, dto.NewErrorResponse(dto.ErrorDetail{Msg: "error 404 not found"}))
}

// Recovery turns a panic into a 500 envelope
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error().Interface("panic", recovered).Str("path", c.Request.URL.Path).Msg("Recovered from panic")
		c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeStoreFailure, "Internal server error"),
		))
	})
}
