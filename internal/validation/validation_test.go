package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAmount(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"valid", "100.50", ""},
		{"valid with spaces", "  42 ", ""},
		{"empty", "", "Amount is required"},
		{"spaces only", "   ", "Amount is required"},
		{"not a number", "abc", "Amount must be a valid number"},
		{"zero", "0", "Amount must be greater than zero"},
		{"negative", "-5", "Amount must be greater than zero"},
		{"over limit", "1000000000", "Amount exceeds maximum limit"},
		{"at limit", "999999999", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Amount(tt.raw))
		})
	}
}

func TestCurrency(t *testing.T) {
	assert.Equal(t, "", Currency("EUR"))
	assert.Equal(t, "", Currency("usd"))
	assert.Equal(t, "Currency is required", Currency(""))
	assert.Equal(t, "Invalid currency: PLN", Currency("PLN"))
}

func TestTransactionType(t *testing.T) {
	for _, valid := range ValidTransactionTypes {
		assert.Equal(t, "", TransactionType(valid))
	}
	assert.Equal(t, "Please select a transaction type", TransactionType(""))
	assert.Equal(t, "Invalid transaction type", TransactionType("LOAN"))
}

func TestBankAccountType(t *testing.T) {
	for _, valid := range ValidBankAccountTypes {
		assert.Equal(t, "", BankAccountType(valid))
	}
	assert.Equal(t, "Bank account type is required", BankAccountType(" "))
	assert.Equal(t, "Invalid bank account type: CREDIT", BankAccountType("CREDIT"))
}

func TestRequireID(t *testing.T) {
	assert.Equal(t, "", RequireID("5", "Source account"))
	assert.Equal(t, "Source account is required", RequireID("", "Source account"))
	assert.Equal(t, "Destination account is required", RequireID("  ", "Destination account"))
}

func TestSameAccounts(t *testing.T) {
	assert.Equal(t, "", SameAccounts("1", "2"))
	assert.Equal(t, "", SameAccounts("", ""))
	assert.Equal(t, "Transaction cannot have same from and to accounts", SameAccounts("3", "3"))
}

func TestExternalAccount(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"valid", "DE12345678", ""},
		{"valid with spaces", "DE12 3456 78", ""},
		{"empty", "", "Recipient account number is required"},
		{"too short", "AB12", "Account number is too short"},
		{"too short after cleanup", "A B 1 2", "Account number is too short"},
		{"invalid characters", "DE12-3456-78", "Account number contains invalid characters"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExternalAccount(tt.value))
		})
	}
}

func TestPassword(t *testing.T) {
	assert.Empty(t, Password("Str0ngPass!x"))

	errs := Password("weak")
	assert.Contains(t, errs, "Password must be at least 10 characters long")
	assert.Contains(t, errs, "Password must contain at least one uppercase letter")
	assert.Contains(t, errs, "Password must contain at least one digit")
	assert.Contains(t, errs, "Password must contain at least one special character")

	assert.Equal(t,
		[]string{"Password must contain at least one special character"},
		Password("Str0ngPass1x"))
}

func TestPasswordChange(t *testing.T) {
	assert.Empty(t, PasswordChange("OldPass123!", "NewPass456@x"))

	errs := PasswordChange("", "NewPass456@x")
	assert.Equal(t, []string{"Current password is required"}, errs)

	errs = PasswordChange("Same12345!x", "Same12345!x")
	assert.Contains(t, errs, "New password must be different from current password")
}
