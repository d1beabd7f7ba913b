package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateAccountValid(t *testing.T) {
	form := CreateAccount{BankAccountType: "CHECKING", Currency: "EUR"}
	assert.False(t, form.Check().Any())
}

func TestCreateAccountMissingFields(t *testing.T) {
	errs := CreateAccount{}.Check()
	assert.True(t, errs.Has("BankAccountType"))
	assert.True(t, errs.Has("Currency"))
}

func TestCreateAccountInvalidType(t *testing.T) {
	errs := CreateAccount{BankAccountType: "CREDIT", Currency: "EUR"}.Check()
	assert.Equal(t, "Invalid bank account type: CREDIT", errs["BankAccountType"])
	assert.False(t, errs.Has("Currency"))
}

func TestCreateAccountInvalidCurrency(t *testing.T) {
	errs := CreateAccount{BankAccountType: "SAVING", Currency: "PLN"}.Check()
	assert.Equal(t, "Invalid currency: PLN", errs["Currency"])
}

func TestCreateAccountLowercaseAccepted(t *testing.T) {
	form := CreateAccount{BankAccountType: "saving", Currency: "usd"}
	assert.False(t, form.Check().Any())
}

func TestPasswordChangeValid(t *testing.T) {
	form := PasswordChange{
		CurrentPassword: "OldPass123!x",
		NewPassword:     "NewPass456@y",
		ConfirmPassword: "NewPass456@y",
	}
	assert.Empty(t, form.Check())
}

func TestPasswordChangeAccumulatesErrors(t *testing.T) {
	form := PasswordChange{NewPassword: "weak", ConfirmPassword: "other"}

	errs := form.Check()
	assert.Contains(t, errs, "Current password is required")
	assert.Contains(t, errs, "Password must be at least 10 characters long")
	assert.Contains(t, errs, "Password confirmation does not match")
}

func TestPasswordChangeMismatch(t *testing.T) {
	form := PasswordChange{
		CurrentPassword: "OldPass123!x",
		NewPassword:     "NewPass456@y",
		ConfirmPassword: "NewPass456@z",
	}
	assert.Equal(t, []string{"Password confirmation does not match"}, form.Check())
}
