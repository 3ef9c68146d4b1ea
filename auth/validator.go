package auth

import (
	"cloudmeet-client/errors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// MinPasswordLength mirrors the backend's register constraint so the
// form can be rejected before any request is issued.
const MinPasswordLength = 6

// RegisterForm holds the raw register tab inputs.
type RegisterForm struct {
	Email           string `validate:"required,email"`
	DisplayName     string `validate:"required,min=2,max=100"`
	Password        string `validate:"required"`
	ConfirmPassword string `validate:"required"`
}

// ValidateRegister applies the local checks performed before the API is
// ever contacted: confirmation match, minimum length, then field rules.
func ValidateRegister(form RegisterForm) error {
	if form.Password != form.ConfirmPassword {
		return errors.ErrPasswordMismatch
	}
	if len(form.Password) < MinPasswordLength {
		return errors.ErrPasswordTooShort
	}
	return validate.Struct(form)
}
