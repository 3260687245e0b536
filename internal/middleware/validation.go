package middleware

import (
	"errors"
	"io"
	"net/http"
	"reflect"
	"sync"

	"github.com/academyadmin/academy-api/internal/app/models/dto"
	"github.com/academyadmin/academy-api/internal/pkg/logger"
	"github.com/academyadmin/academy-api/internal/pkg/validation"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// bodyLocation is reported on every request-body validation error
const bodyLocation = "body"

var (
	registerOnce sync.Once
	registerErr  error
)

// RegisterValidators installs the custom rules on gin's validator engine.
// It is safe to call more than once.
func RegisterValidators() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerErr = errors.New("unexpected validator engine")
			return
		}
		registerErr = validation.Register(v)
	})
	return registerErr
}

// BindJSON decodes and validates the request body into obj. On failure it
// writes the 400 envelope, one entry per rejected field, and returns false.
func BindJSON(c *gin.Context, obj interface{}) bool {
	if err := RegisterValidators(); err != nil {
		logger.Error().Err(err).Msg("Failed to register validators")
	}

	err := c.ShouldBindJSON(obj)
	if errors.Is(err, io.EOF) {
		// an empty body still reports each missing field
		err = binding.Validator.ValidateStruct(obj)
	}
	if err == nil {
		return true
	}

	c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(bindingErrors(obj, err)...))
	return false
}

func bindingErrors(obj interface{}, err error) []dto.ErrorDetail {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []dto.ErrorDetail{{
			Msg:      "invalid request body",
			Code:     dto.ErrorCodeValidationFailed,
			Location: bodyLocation,
		}}
	}

	typ := reflect.TypeOf(obj)
	for typ.Kind() == reflect.Ptr {
		typ = typ.Elem()
	}

	details := make([]dto.ErrorDetail, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msg, ok := validation.Message(typ, fe.StructNamespace())
		if !ok {
			msg = validation.DefaultMessage(fe)
		}
		details = append(details, dto.ErrorDetail{
			Msg:      msg,
			Param:    validation.Param(fe.Namespace()),
			Location: bodyLocation,
		})
	}
	return details
}
