// Package wizard holds the new-transaction flow: a linear four-step state
// machine (type select, detail entry, confirm, success) whose form state
// survives across requests in a session-keyed store. Validation mirrors the
// backend rules; see Validate.
package wizard

import (
	"strconv"
	"strings"

	"github.com/aleksanderWitek/simplybank-web/internal/models"
)

// Step identifies the wizard step currently shown.
type Step int

const (
	StepTypeSelect Step = iota + 1
	StepDetails
	StepConfirm
	StepSuccess
)

// FormState is everything the wizard accumulates between requests. It is
// reset when the wizard starts and after a successful submission.
type FormState struct {
	Step            Step             `json:"step"`
	TransactionType string           `json:"transactionType"`
	FromAccountID   string           `json:"fromAccountId"`
	ToAccountID     string           `json:"toAccountId"`
	ExternalAccount string           `json:"externalAccount"`
	Amount          string           `json:"amount"`
	Currency        string           `json:"currency"`
	Description     string           `json:"description"`
	Category        string           `json:"category"`
	Accounts        []models.Account `json:"accounts"`
	CurrentUserID   int64            `json:"currentUserId"`
	Submitting      bool             `json:"submitting"`
	SuccessMessage  string           `json:"successMessage"`
}

// New returns a fresh state at the type-select step.
func New() *FormState {
	return &FormState{Step: StepTypeSelect, Currency: "EUR"}
}

// Reset clears the form but keeps the loaded accounts and user, matching
// the "New Transaction" action after a success.
func (s *FormState) Reset() {
	accounts := s.Accounts
	userID := s.CurrentUserID
	*s = *New()
	s.Accounts = accounts
	s.CurrentUserID = userID
}

// ShowsFrom reports whether the source-account field is visible for the
// selected type. Deposits have no source.
func (s *FormState) ShowsFrom() bool {
	return s.TransactionType != "DEPOSIT"
}

// ShowsTo reports whether the destination-account field is visible.
// Withdrawals and payments have no internal destination.
func (s *FormState) ShowsTo() bool {
	return s.TransactionType == "TRANSFER" || s.TransactionType == "DEPOSIT"
}

// ShowsExternal reports whether the free-text recipient field is visible.
func (s *FormState) ShowsExternal() bool {
	return s.TransactionType == "PAYMENT"
}

// Debits reports whether the selected type takes money out of one of the
// user's accounts, which gates the balance check.
func (s *FormState) Debits() bool {
	switch s.TransactionType {
	case "TRANSFER", "WITHDRAWAL", "PAYMENT":
		return true
	}
	return false
}

// FromLabel is the source field label for the selected type.
func (s *FormState) FromLabel() string {
	switch s.TransactionType {
	case "WITHDRAWAL":
		return "Withdraw From"
	case "PAYMENT":
		return "Pay From"
	}
	return "From Account"
}

// ToLabel is the destination field label for the selected type.
func (s *FormState) ToLabel() string {
	if s.TransactionType == "DEPOSIT" {
		return "Deposit Into"
	}
	return "To Account"
}

// StepTitle is the heading of the detail step for the selected type.
func (s *FormState) StepTitle() string {
	switch s.TransactionType {
	case "TRANSFER":
		return "Transfer Details"
	case "DEPOSIT":
		return "Deposit Details"
	case "WITHDRAWAL":
		return "Withdrawal Details"
	case "PAYMENT":
		return "Payment Details"
	}
	return "Transaction Details"
}

// StepDescription is the sub-heading of the detail step.
func (s *FormState) StepDescription() string {
	switch s.TransactionType {
	case "TRANSFER":
		return "Select source and destination accounts"
	case "DEPOSIT":
		return "Select the account to deposit into"
	case "WITHDRAWAL":
		return "Select the account to withdraw from"
	case "PAYMENT":
		return "Enter payment recipient and amount"
	}
	return "Enter the details below"
}

func parseAmount(raw string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	return v, err == nil
}

// FindAccount resolves a selected account id against the loaded accounts.
func (s *FormState) FindAccount(id string) *models.Account {
	if id == "" {
		return nil
	}
	for i := range s.Accounts {
		if strconv.FormatInt(s.Accounts[i].ID, 10) == id {
			return &s.Accounts[i]
		}
	}
	return nil
}

// FromAccount resolves the selected source account, if any.
func (s *FormState) FromAccount() *models.Account {
	return s.FindAccount(s.FromAccountID)
}

// ToAccount resolves the selected destination account, if any.
func (s *FormState) ToAccount() *models.Account {
	return s.FindAccount(s.ToAccountID)
}
