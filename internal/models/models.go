// Package models defines the client-side projections of the SimplyBank
// backend entities. The backend exposes several field-name variants for the
// same attribute across endpoints (number vs accountNumber, date vs
// createdAt vs timestamp, ...); unmarshalling normalises each variant onto
// one canonical field so the rest of the code never deals with them.
package models

import (
	"encoding/json"
	"strconv"
	"strings"
)

// flexFloat decodes a JSON number or a numeric string; anything else
// becomes zero, matching lenient parse-or-zero handling of amounts.
type flexFloat float64

func (f *flexFloat) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*f = 0
		return nil
	}
	*f = flexFloat(v)
	return nil
}

// flexInt decodes a JSON number or numeric string into an int64.
type flexInt int64

func (f *flexInt) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		fv, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil {
			*f = 0
			return nil
		}
		v = int64(fv)
	}
	*f = flexInt(v)
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// Account is a bank account as consumed from /api/bank_account.
type Account struct {
	ID           int64
	Number       string
	Type         string
	Currency     string
	Balance      float64
	CreditLimit  float64
	InterestRate string
}

func (a *Account) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID                  flexInt         `json:"id"`
		Number              string          `json:"number"`
		AccountNumber       string          `json:"accountNumber"`
		BankAccountType     string          `json:"bankAccountType"`
		AccountType         string          `json:"accountType"`
		Type                string          `json:"type"`
		Currency            string          `json:"currency"`
		BankAccountCurrency string          `json:"bankAccountCurrency"`
		Balance             flexFloat       `json:"balance"`
		CreditLimit         flexFloat       `json:"creditLimit"`
		InterestRate        json.RawMessage `json:"interestRate"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	a.ID = int64(raw.ID)
	a.Number = firstNonEmpty(raw.Number, raw.AccountNumber)
	a.Type = firstNonEmpty(raw.BankAccountType, raw.AccountType, raw.Type)
	a.Currency = strings.ToUpper(firstNonEmpty(raw.Currency, raw.BankAccountCurrency, "EUR"))
	a.Balance = float64(raw.Balance)
	a.CreditLimit = float64(raw.CreditLimit)
	a.InterestRate = strings.Trim(string(raw.InterestRate), `"`)
	if a.InterestRate == "null" {
		a.InterestRate = ""
	}
	return nil
}

// MarshalJSON writes the canonical backend field names so cached copies
// decode through the same normalisation as live responses.
func (a Account) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID              int64   `json:"id"`
		Number          string  `json:"number,omitempty"`
		BankAccountType string  `json:"bankAccountType,omitempty"`
		Currency        string  `json:"currency,omitempty"`
		Balance         float64 `json:"balance"`
		CreditLimit     float64 `json:"creditLimit,omitempty"`
		InterestRate    string  `json:"interestRate,omitempty"`
	}{a.ID, a.Number, a.Type, a.Currency, a.Balance, a.CreditLimit, a.InterestRate})
}

// IsCredit reports whether the footer stat should show the credit limit.
func (a Account) IsCredit() bool {
	return strings.ToUpper(a.Type) == "CREDIT"
}

// IsSaving reports whether the footer stat should show the interest rate.
func (a Account) IsSaving() bool {
	return strings.Contains(strings.ToUpper(a.Type), "SAVING")
}

// Transaction is a transaction as consumed from the /api/transaction
// endpoints. Direction is never part of the payload; it is derived per page
// (see txview).
type Transaction struct {
	ID          int64
	Number      string
	Amount      float64
	Currency    string
	Status      string
	Date        string
	Description string
	Category    string
	Type        string
	FromID      int64
	ToID        int64
	HasFromID   bool
	HasToID     bool
	FromNumber  string
	ToNumber    string
	Reference   string
	Note        string
	CreatedBy   string
	UpdatedAt   string
}

func (t *Transaction) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID                    flexInt   `json:"id"`
		Number                string    `json:"number"`
		Amount                flexFloat `json:"amount"`
		Currency              string    `json:"currency"`
		BankAccountCurrency   string    `json:"bankAccountCurrency"`
		Status                string    `json:"status"`
		Date                  string    `json:"date"`
		CreatedAt             string    `json:"createdAt"`
		Timestamp             string    `json:"timestamp"`
		Description           string    `json:"description"`
		Name                  string    `json:"name"`
		Type                  string    `json:"type"`
		Category              string    `json:"category"`
		BankAccountIDFrom     *flexInt  `json:"bankAccountIdFrom"`
		FromAccountID         *flexInt  `json:"fromAccountId"`
		SenderAccountID       *flexInt  `json:"senderAccountId"`
		BankAccountIDTo       *flexInt  `json:"bankAccountIdTo"`
		ToAccountID           *flexInt  `json:"toAccountId"`
		ReceiverAccountID     *flexInt  `json:"receiverAccountId"`
		BankAccountNumberFrom string    `json:"bankAccountNumberFrom"`
		FromAccountNumber     string    `json:"fromAccountNumber"`
		SenderAccountNumber   string    `json:"senderAccountNumber"`
		BankAccountNumberTo   string    `json:"bankAccountNumberTo"`
		ToAccountNumber       string    `json:"toAccountNumber"`
		ReceiverAccountNumber string    `json:"receiverAccountNumber"`
		Reference             string    `json:"reference"`
		ReferenceNumber       string    `json:"referenceNumber"`
		Note                  string    `json:"note"`
		Notes                 string    `json:"notes"`
		Memo                  string    `json:"memo"`
		CreatedBy             string    `json:"createdBy"`
		InitiatedBy           string    `json:"initiatedBy"`
		UpdatedAt             string    `json:"updatedAt"`
		ModifiedAt            string    `json:"modifiedAt"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	t.ID = int64(raw.ID)
	t.Number = raw.Number
	t.Amount = float64(raw.Amount)
	t.Currency = strings.ToUpper(firstNonEmpty(raw.Currency, raw.BankAccountCurrency))
	t.Status = raw.Status
	t.Date = firstNonEmpty(raw.Date, raw.CreatedAt, raw.Timestamp)
	t.Description = firstNonEmpty(raw.Description, raw.Name)
	t.Category = raw.Category
	t.Type = raw.Type

	pick := func(ids ...*flexInt) (int64, bool) {
		for _, id := range ids {
			if id != nil {
				return int64(*id), true
			}
		}
		return 0, false
	}
	t.FromID, t.HasFromID = pick(raw.BankAccountIDFrom, raw.FromAccountID, raw.SenderAccountID)
	t.ToID, t.HasToID = pick(raw.BankAccountIDTo, raw.ToAccountID, raw.ReceiverAccountID)

	t.FromNumber = firstNonEmpty(raw.FromAccountNumber, raw.SenderAccountNumber, raw.BankAccountNumberFrom)
	t.ToNumber = firstNonEmpty(raw.ToAccountNumber, raw.ReceiverAccountNumber, raw.BankAccountNumberTo)
	t.Reference = firstNonEmpty(raw.Reference, raw.ReferenceNumber)
	t.Note = firstNonEmpty(raw.Note, raw.Notes, raw.Memo)
	t.CreatedBy = firstNonEmpty(raw.CreatedBy, raw.InitiatedBy)
	t.UpdatedAt = firstNonEmpty(raw.UpdatedAt, raw.ModifiedAt)
	return nil
}

// MarshalJSON writes the canonical backend field names so cached copies
// decode through the same normalisation as live responses.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var fromID, toID *int64
	if t.HasFromID {
		fromID = &t.FromID
	}
	if t.HasToID {
		toID = &t.ToID
	}
	return json.Marshal(struct {
		ID          int64   `json:"id"`
		Number      string  `json:"number,omitempty"`
		Amount      float64 `json:"amount"`
		Currency    string  `json:"currency,omitempty"`
		Status      string  `json:"status,omitempty"`
		Date        string  `json:"date,omitempty"`
		Description string  `json:"description,omitempty"`
		Category    string  `json:"category,omitempty"`
		Type        string  `json:"type,omitempty"`
		FromID      *int64  `json:"bankAccountIdFrom,omitempty"`
		ToID        *int64  `json:"bankAccountIdTo,omitempty"`
		FromNumber  string  `json:"bankAccountNumberFrom,omitempty"`
		ToNumber    string  `json:"bankAccountNumberTo,omitempty"`
		Reference   string  `json:"reference,omitempty"`
		Note        string  `json:"note,omitempty"`
		CreatedBy   string  `json:"createdBy,omitempty"`
		UpdatedAt   string  `json:"updatedAt,omitempty"`
	}{t.ID, t.Number, t.Amount, t.Currency, t.Status, t.Date, t.Description,
		t.Category, t.Type, fromID, toID, t.FromNumber, t.ToNumber,
		t.Reference, t.Note, t.CreatedBy, t.UpdatedAt})
}

// DisplayName is what the description column shows: description, then the
// transaction type, then a generic fallback.
func (t Transaction) DisplayName() string {
	return firstNonEmpty(t.Description, t.Type, "Transaction")
}

// StatusOrDefault treats a missing status as completed, which is how the
// backend omits it for settled transactions.
func (t Transaction) StatusOrDefault() string {
	if t.Status == "" {
		return "completed"
	}
	return strings.ToLower(t.Status)
}

// CurrencyOr falls back to the given currency when the transaction carries
// none of its own.
func (t Transaction) CurrencyOr(fallback string) string {
	if t.Currency != "" {
		return t.Currency
	}
	if fallback != "" {
		return strings.ToUpper(fallback)
	}
	return "EUR"
}

// User is the authenticated user as returned by /api/auth/me.
type User struct {
	ID        int64  `json:"-"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role"`
}

func (u *User) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID            flexInt `json:"id"`
		UserAccountID flexInt `json:"userAccountId"`
		FirstName     string  `json:"firstName"`
		LastName      string  `json:"lastName"`
		Role          string  `json:"role"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	u.ID = int64(raw.ID)
	if u.ID == 0 {
		u.ID = int64(raw.UserAccountID)
	}
	u.FirstName = raw.FirstName
	u.LastName = raw.LastName
	u.Role = raw.Role
	return nil
}

// Initials builds the avatar initials from first and last name.
func (u User) Initials() string {
	initial := func(s string) string {
		if s == "" {
			return ""
		}
		return strings.ToUpper(s[:1])
	}
	return initial(u.FirstName) + initial(u.LastName)
}

// ShortName renders "First L." for the header.
func (u User) ShortName() string {
	if u.FirstName == "" && u.LastName == "" {
		return ""
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName[:1] + "."
}

// Profile is the user profile as returned by /api/user_account/{id}/profile
// (and, shape-compatibly, /api/auth/me). The address and identification
// fields are only populated for CLIENT roles.
type Profile struct {
	UserAccountID        int64  `json:"-"`
	Login                string `json:"login"`
	Role                 string `json:"role"`
	CreateDate           string `json:"createDate"`
	FirstName            string `json:"firstName"`
	LastName             string `json:"lastName"`
	City                 string `json:"city"`
	Street               string `json:"street"`
	HouseNumber          string `json:"houseNumber"`
	IdentificationNumber string `json:"identificationNumber"`
}

func (p *Profile) UnmarshalJSON(data []byte) error {
	type alias Profile
	var raw struct {
		alias
		UserAccountID flexInt `json:"userAccountId"`
		ID            flexInt `json:"id"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*p = Profile(raw.alias)
	p.UserAccountID = int64(raw.UserAccountID)
	if p.UserAccountID == 0 {
		p.UserAccountID = int64(raw.ID)
	}
	return nil
}

// IsClient reports whether the CLIENT-only personal fields apply.
func (p Profile) IsClient() bool {
	return strings.ToUpper(p.Role) == "CLIENT"
}

// User projects the profile onto the header user model.
func (p Profile) User() User {
	return User{ID: p.UserAccountID, FirstName: p.FirstName, LastName: p.LastName, Role: p.Role}
}
