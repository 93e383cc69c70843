package utils

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleForm struct {
	Email string `validate:"required,email"`
	Role  string `validate:"omitempty,oneof=admin provider client"`
}

func TestBindingErrors(t *testing.T) {
	v := validator.New()

	err := v.Struct(sampleForm{Email: "not-an-email", Role: "owner"})
	require.Error(t, err)

	fields := BindingErrors(err)
	assert.Equal(t, []string{"must be a valid email address"}, fields["email"])
	assert.Equal(t, []string{"must be one of: admin provider client"}, fields["role"])
}

func TestBindingErrorsNonValidator(t *testing.T) {
	fields := BindingErrors(errors.New("unexpected EOF"))
	assert.Equal(t, []string{"invalid request body"}, fields["_form"])
}

func TestFieldErrorsAdd(t *testing.T) {
	fields := FieldErrors{}
	fields.Add("title", "this field is required")
	fields.Add("title", "must be at most 200 characters")
	assert.Len(t, fields["title"], 2)
}
