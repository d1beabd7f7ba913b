package backend

import (
	"context"
	"strconv"

	"github.com/aleksanderWitek/simplybank-web/internal/models"
)

// Me returns the authenticated user.
func (c *Client) Me(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.get(ctx, "/api/auth/me", &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Accounts lists every bank account visible to the caller.
func (c *Client) Accounts(ctx context.Context) ([]models.Account, error) {
	var accounts []models.Account
	if err := c.get(ctx, "/api/bank_account", &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

// AccountsByClient lists the accounts owned by one client.
func (c *Client) AccountsByClient(ctx context.Context, clientID int64) ([]models.Account, error) {
	var accounts []models.Account
	if err := c.get(ctx, "/api/bank_account?clientId="+strconv.FormatInt(clientID, 10), &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

// Account fetches a single bank account by id.
func (c *Client) Account(ctx context.Context, id int64) (*models.Account, error) {
	var account models.Account
	if err := c.get(ctx, "/api/bank_account/"+strconv.FormatInt(id, 10), &account); err != nil {
		return nil, err
	}
	return &account, nil
}

// CreateAccountRequest is the payload for opening a new bank account.
type CreateAccountRequest struct {
	ClientID        int64  `json:"clientId,omitempty"`
	BankAccountType string `json:"bankAccountType"`
	Currency        string `json:"currency"`
}

// CreateAccount opens a new bank account.
func (c *Client) CreateAccount(ctx context.Context, req CreateAccountRequest) (*models.Account, error) {
	var account models.Account
	if err := c.post(ctx, "/api/bank_account", req, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

// Transactions lists all transactions.
func (c *Client) Transactions(ctx context.Context) ([]models.Transaction, error) {
	var txs []models.Transaction
	if err := c.get(ctx, "/api/transaction", &txs); err != nil {
		return nil, err
	}
	return txs, nil
}

// Transaction fetches a single transaction by id.
func (c *Client) Transaction(ctx context.Context, id int64) (*models.Transaction, error) {
	var tx models.Transaction
	if err := c.get(ctx, "/api/transaction/"+strconv.FormatInt(id, 10), &tx); err != nil {
		return nil, err
	}
	return &tx, nil
}

// TransactionsFrom lists the transactions debiting the given account.
func (c *Client) TransactionsFrom(ctx context.Context, accountID int64) ([]models.Transaction, error) {
	var txs []models.Transaction
	if err := c.get(ctx, "/api/transaction/bank_account_from/"+strconv.FormatInt(accountID, 10), &txs); err != nil {
		return nil, err
	}
	return txs, nil
}

// TransactionsTo lists the transactions crediting the given account.
func (c *Client) TransactionsTo(ctx context.Context, accountID int64) ([]models.Transaction, error) {
	var txs []models.Transaction
	if err := c.get(ctx, "/api/transaction/bank_account_to/"+strconv.FormatInt(accountID, 10), &txs); err != nil {
		return nil, err
	}
	return txs, nil
}

// TransferRequest is the payload for transfer and payment submissions.
// PAYMENT reuses the transfer endpoint with ExternalAccountNumber in place
// of a destination account id.
type TransferRequest struct {
	BankAccountFromID     int64   `json:"bankAccountFromId"`
	BankAccountToID       int64   `json:"bankAccountToId,omitempty"`
	ExternalAccountNumber string  `json:"externalAccountNumber,omitempty"`
	Amount                float64 `json:"amount"`
	Currency              string  `json:"currency"`
	Description           string  `json:"description,omitempty"`
}

// Transfer submits a transfer (or payment) transaction.
func (c *Client) Transfer(ctx context.Context, req TransferRequest) (*models.Transaction, error) {
	var tx models.Transaction
	if err := c.post(ctx, "/api/transaction/transfer", req, &tx); err != nil {
		return nil, err
	}
	return &tx, nil
}

// DepositRequest is the payload for deposit submissions.
type DepositRequest struct {
	BankAccountToID int64   `json:"bankAccountToId"`
	Amount          float64 `json:"amount"`
	Currency        string  `json:"currency"`
	Description     string  `json:"description,omitempty"`
}

// Deposit submits a deposit transaction.
func (c *Client) Deposit(ctx context.Context, req DepositRequest) (*models.Transaction, error) {
	var tx models.Transaction
	if err := c.post(ctx, "/api/transaction/deposit", req, &tx); err != nil {
		return nil, err
	}
	return &tx, nil
}

// WithdrawRequest is the payload for withdrawal submissions.
type WithdrawRequest struct {
	BankAccountFromID int64   `json:"bankAccountFromId"`
	Amount            float64 `json:"amount"`
	Currency          string  `json:"currency"`
	Description       string  `json:"description,omitempty"`
}

// Withdraw submits a withdrawal transaction.
func (c *Client) Withdraw(ctx context.Context, req WithdrawRequest) (*models.Transaction, error) {
	var tx models.Transaction
	if err := c.post(ctx, "/api/transaction/withdraw", req, &tx); err != nil {
		return nil, err
	}
	return &tx, nil
}

// Profile fetches a user profile by user-account id.
func (c *Client) Profile(ctx context.Context, userAccountID int64) (*models.Profile, error) {
	var profile models.Profile
	if err := c.get(ctx, "/api/user_account/"+strconv.FormatInt(userAccountID, 10)+"/profile", &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// MyProfile fetches the authenticated user's profile via /api/auth/me.
func (c *Client) MyProfile(ctx context.Context) (*models.Profile, error) {
	var profile models.Profile
	if err := c.get(ctx, "/api/auth/me", &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// ChangePasswordRequest is the payload for password changes.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// ChangeClientPassword changes a client's password.
func (c *Client) ChangeClientPassword(ctx context.Context, clientID int64, req ChangePasswordRequest) error {
	return c.put(ctx, "/api/client/"+strconv.FormatInt(clientID, 10)+"/password", req, nil)
}

// ChangeEmployeePassword changes an employee's password.
func (c *Client) ChangeEmployeePassword(ctx context.Context, employeeID int64, req ChangePasswordRequest) error {
	return c.put(ctx, "/api/employee/"+strconv.FormatInt(employeeID, 10)+"/password", req, nil)
}
