package validation

import (
	"errors"
	"reflect"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	CourseID string `json:"courseId" validate:"required,uuid" msg:"courseId must be a valid id"`
}

type payload struct {
	Name  string `json:"name" validate:"required,notblank" msg:"name is required"`
	Email string `json:"email" validate:"required,email"`
	Items []item `json:"items" validate:"required,min=1,dive"`
}

func newValidator(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New()
	require.NoError(t, Register(v))
	return v
}

func fieldErrors(t *testing.T, err error) validator.ValidationErrors {
	t.Helper()
	var fes validator.ValidationErrors
	require.True(t, errors.As(err, &fes))
	return fes
}

func TestNotBlankAndJSONNames(t *testing.T) {
	v := newValidator(t)

	err := v.Struct(payload{Name: "   ", Email: "a@x.com", Items: []item{{CourseID: "9a1f0c3e-57b2-4d0e-8d7a-1f2e3d4c5b6a"}}})
	fes := fieldErrors(t, err)
	require.Len(t, fes, 1)
	assert.Equal(t, "name", fes[0].Field())
	assert.Equal(t, "notblank", fes[0].Tag())

	msg, ok := Message(reflect.TypeOf(payload{}), fes[0].StructNamespace())
	assert.True(t, ok)
	assert.Equal(t, "name is required", msg)
}

func TestNestedParamAndMessage(t *testing.T) {
	v := newValidator(t)

	err := v.Struct(payload{Name: "Go", Email: "a@x.com", Items: []item{{CourseID: "9a1f0c3e-57b2-4d0e-8d7a-1f2e3d4c5b6a"}, {CourseID: "nope"}}})
	fes := fieldErrors(t, err)
	require.Len(t, fes, 1)

	assert.Equal(t, "items[1].courseId", Param(fes[0].Namespace()))
	msg, ok := Message(reflect.TypeOf(payload{}), fes[0].StructNamespace())
	assert.True(t, ok)
	assert.Equal(t, "courseId must be a valid id", msg)
}

func TestDefaultMessage(t *testing.T) {
	v := newValidator(t)

	err := v.Struct(payload{Name: "Go", Email: "bad", Items: []item{{CourseID: "9a1f0c3e-57b2-4d0e-8d7a-1f2e3d4c5b6a"}}})
	fes := fieldErrors(t, err)
	require.Len(t, fes, 1)

	_, ok := Message(reflect.TypeOf(payload{}), fes[0].StructNamespace())
	assert.False(t, ok)
	assert.Equal(t, "email must be a valid email address", DefaultMessage(fes[0]))
}

func TestJSONFieldName(t *testing.T) {
	typ := reflect.TypeOf(struct {
		A string `json:"a,omitempty"`
		B string `json:"-"`
		C string
	}{})
	assert.Equal(t, "a", JSONFieldName(typ.Field(0)))
	assert.Equal(t, "", JSONFieldName(typ.Field(1)))
	assert.Equal(t, "", JSONFieldName(typ.Field(2)))
}
