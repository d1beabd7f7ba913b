// Package validation mirrors the server-side validation rules so pages can
// reject bad input before a round trip. The checks are advisory UX only; the
// backend re-validates everything and remains the authority.
package validation

import (
	"regexp"
	"strconv"
	"strings"
)

// ValidCurrencies is the currency set the backend accepts.
var ValidCurrencies = []string{"EUR", "USD", "GBP"}

// ValidTransactionTypes is the transaction type set the wizard offers.
var ValidTransactionTypes = []string{"TRANSFER", "DEPOSIT", "WITHDRAWAL", "PAYMENT"}

// ValidBankAccountTypes is the account type set the backend accepts.
var ValidBankAccountTypes = []string{"CHECKING", "SAVING", "BUSINESS", "FOREIGN_CURRENCY"}

// MaxAmount is the upper bound the backend enforces on transaction amounts.
const MaxAmount = 999999999

func contains(set []string, value string) bool {
	for _, v := range set {
		if v == value {
			return true
		}
	}
	return false
}

// RequireID checks an account id selection for presence. Returns the error
// message, or "" when valid.
func RequireID(id string, label string) string {
	if strings.TrimSpace(id) == "" {
		return label + " is required"
	}
	return ""
}

// SameAccounts rejects a transfer whose source and destination are the same
// account.
func SameAccounts(fromID, toID string) string {
	if fromID != "" && toID != "" && fromID == toID {
		return "Transaction cannot have same from and to accounts"
	}
	return ""
}

// Amount validates a raw amount string: present, numeric, positive, and
// within the backend's maximum.
func Amount(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return "Amount is required"
	}
	num, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return "Amount must be a valid number"
	}
	if num <= 0 {
		return "Amount must be greater than zero"
	}
	if num > MaxAmount {
		return "Amount exceeds maximum limit"
	}
	return ""
}

// Currency validates a currency code against the backend's set.
func Currency(currency string) string {
	if strings.TrimSpace(currency) == "" {
		return "Currency is required"
	}
	if !contains(ValidCurrencies, strings.ToUpper(currency)) {
		return "Invalid currency: " + currency
	}
	return ""
}

// TransactionType validates a wizard type selection.
func TransactionType(t string) string {
	if t == "" {
		return "Please select a transaction type"
	}
	if !contains(ValidTransactionTypes, t) {
		return "Invalid transaction type"
	}
	return ""
}

// BankAccountType validates an account type against the backend's set.
func BankAccountType(t string) string {
	if strings.TrimSpace(t) == "" {
		return "Bank account type is required"
	}
	if !contains(ValidBankAccountTypes, strings.ToUpper(t)) {
		return "Invalid bank account type: " + t
	}
	return ""
}

var externalAccountPattern = regexp.MustCompile(`^[A-Za-z0-9]+$`)

// ExternalAccount validates a free-text recipient account number for
// payments: at least 8 alphanumeric characters once whitespace is removed.
func ExternalAccount(value string) string {
	if strings.TrimSpace(value) == "" {
		return "Recipient account number is required"
	}
	cleaned := strings.Join(strings.Fields(value), "")
	if len(cleaned) < 8 {
		return "Account number is too short"
	}
	if !externalAccountPattern.MatchString(cleaned) {
		return "Account number contains invalid characters"
	}
	return ""
}

var (
	upperPattern   = regexp.MustCompile(`[A-Z]`)
	lowerPattern   = regexp.MustCompile(`[a-z]`)
	digitPattern   = regexp.MustCompile(`\d`)
	specialPattern = regexp.MustCompile(`[!@#$%^&*]`)
)

// Password checks a new password against the backend's requirements and
// returns every failing rule's message, in rule order.
func Password(password string) []string {
	var errs []string
	if len(password) < 10 {
		errs = append(errs, "Password must be at least 10 characters long")
	}
	if !upperPattern.MatchString(password) {
		errs = append(errs, "Password must contain at least one uppercase letter")
	}
	if !lowerPattern.MatchString(password) {
		errs = append(errs, "Password must contain at least one lowercase letter")
	}
	if !digitPattern.MatchString(password) {
		errs = append(errs, "Password must contain at least one digit")
	}
	if !specialPattern.MatchString(password) {
		errs = append(errs, "Password must contain at least one special character")
	}
	return errs
}

// PasswordChange validates the full change-password form.
func PasswordChange(current, newPassword string) []string {
	var errs []string
	if current == "" {
		errs = append(errs, "Current password is required")
	}
	errs = append(errs, Password(newPassword)...)
	if newPassword != "" && newPassword == current {
		errs = append(errs, "New password must be different from current password")
	}
	return errs
}
