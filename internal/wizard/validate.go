package wizard

import (
	"github.com/aleksanderWitek/simplybank-web/internal/format"
	"github.com/aleksanderWitek/simplybank-web/internal/validation"
)

// Errors maps a form field to its validation message. Every failing check
// is collected so the user sees all problems at once.
type Errors map[string]string

// Has is a template convenience.
func (e Errors) Has(field string) bool { return e[field] != "" }

// Validate runs the full detail-entry validation pass in backend order:
// required account ids per type, external account format, same-account
// rejection, amount, currency. Sufficient balance is checked last, against
// the cached copy of the source account, and only when everything else
// passed and the type debits an account.
func Validate(s *FormState) Errors {
	errs := Errors{}

	if s.TransactionType != "DEPOSIT" {
		if msg := validation.RequireID(s.FromAccountID, "Source account"); msg != "" {
			errs["fromAccount"] = msg
		}
	}

	if s.TransactionType == "TRANSFER" || s.TransactionType == "DEPOSIT" {
		if msg := validation.RequireID(s.ToAccountID, "Destination account"); msg != "" {
			errs["toAccount"] = msg
		}
	}

	if s.TransactionType == "PAYMENT" {
		if msg := validation.ExternalAccount(s.ExternalAccount); msg != "" {
			errs["externalAccount"] = msg
		}
	}

	if s.TransactionType == "TRANSFER" {
		if msg := validation.SameAccounts(s.FromAccountID, s.ToAccountID); msg != "" {
			errs["toAccount"] = msg
		}
	}

	if msg := validation.Amount(s.Amount); msg != "" {
		errs["amount"] = msg
	}

	if msg := validation.Currency(s.Currency); msg != "" {
		errs["currency"] = msg
	}

	if len(errs) == 0 && s.Debits() {
		if acct := s.FromAccount(); acct != nil {
			amount, _ := parseAmount(s.Amount)
			if acct.Balance < amount {
				errs["amount"] = "Insufficient balance on account " +
					format.MaskAccount(acct.Number) + ". Available: " +
					format.Currency(acct.Balance, acct.Currency)
			}
		}
	}

	return errs
}
