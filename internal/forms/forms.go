// Package forms binds and validates the HTML forms that post back to the
// pages, reporting per-field messages for inline display.
package forms

import (
	"github.com/go-playground/validator/v10"

	"github.com/aleksanderWitek/simplybank-web/internal/validation"
)

var validate = validator.New()

// FieldErrors maps form field names to a display message.
type FieldErrors map[string]string

func (e FieldErrors) Has(field string) bool {
	_, ok := e[field]
	return ok
}

func (e FieldErrors) Any() bool { return len(e) > 0 }

func structErrors(obj any) FieldErrors {
	err := validate.Struct(obj)
	if err == nil {
		return FieldErrors{}
	}

	errs := FieldErrors{}
	for _, fe := range err.(validator.ValidationErrors) {
		errs[fe.Field()] = fieldMessage(fe)
	}
	return errs
}

func fieldMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "This field is required"
	case "min":
		return "Value is too short"
	case "max":
		return "Value is too long"
	default:
		return "Invalid value"
	}
}

// CreateAccount is the new-account form.
type CreateAccount struct {
	BankAccountType string `form:"bankAccountType" validate:"required"`
	Currency        string `form:"currency" validate:"required"`
}

// Check runs the structural rules, then the backend-mirroring ones.
func (f CreateAccount) Check() FieldErrors {
	errs := structErrors(f)
	if !errs.Has("BankAccountType") {
		if msg := validation.BankAccountType(f.BankAccountType); msg != "" {
			errs["BankAccountType"] = msg
		}
	}
	if !errs.Has("Currency") {
		if msg := validation.Currency(f.Currency); msg != "" {
			errs["Currency"] = msg
		}
	}
	return errs
}

// PasswordChange is the change-password form.
type PasswordChange struct {
	CurrentPassword string `form:"currentPassword"`
	NewPassword     string `form:"newPassword"`
	ConfirmPassword string `form:"confirmPassword"`
}

// Check accumulates every failing rule, mirroring the server's password
// policy, plus the confirm-match check that only exists on the page.
func (f PasswordChange) Check() []string {
	errs := validation.PasswordChange(f.CurrentPassword, f.NewPassword)
	if f.ConfirmPassword != f.NewPassword {
		errs = append(errs, "Password confirmation does not match")
	}
	return errs
}
