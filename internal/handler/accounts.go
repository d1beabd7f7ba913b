package handler

import (
	"context"
	"net/http"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/aleksanderWitek/simplybank-web/internal/backend"
	"github.com/aleksanderWitek/simplybank-web/internal/forms"
	"github.com/aleksanderWitek/simplybank-web/internal/models"
	"github.com/aleksanderWitek/simplybank-web/internal/txview"
	"github.com/aleksanderWitek/simplybank-web/internal/validation"
)

// AccountStats holds the per-account activity totals on the accounts list.
// Failed marks a row whose stats load did not complete; the row renders
// placeholders instead of numbers.
type AccountStats struct {
	Incoming float64
	Outgoing float64
	Count    int
	Failed   bool
}

// AccountRow is one row of the accounts table.
type AccountRow struct {
	Account models.Account
	Stats   AccountStats
}

// AccountsView feeds the accounts template.
type AccountsView struct {
	Rows    []AccountRow
	LoadErr string
}

// Accounts renders the accounts list with per-account activity stats,
// fetched concurrently for every account. A stats failure degrades only
// its own row.
func (h *Handler) Accounts(c *gin.Context) {
	ctx := c.Request.Context()
	api := h.client(c)

	accounts, err := api.Accounts(ctx)
	if err != nil {
		logrus.WithFields(logrus.Fields{"page": "accounts", "endpoint": "/api/bank_account", "error": err.Error()}).Warn("load failed")
		h.render.HTML(c, http.StatusOK, "accounts", View{
			Title:  "Accounts",
			Active: "accounts",
			Notice: errorNotice(backend.Message(err, "Failed to load accounts")),
			Data:   AccountsView{LoadErr: backend.Message(err, "Failed to load accounts")},
		})
		return
	}

	rows := make([]AccountRow, len(accounts))
	var wg sync.WaitGroup
	for i, acct := range accounts {
		wg.Add(1)
		go func(i int, acct models.Account) {
			defer wg.Done()
			rows[i] = AccountRow{Account: acct, Stats: accountStats(ctx, api, acct.ID)}
		}(i, acct)
	}
	wg.Wait()

	h.render.HTML(c, http.StatusOK, "accounts", View{
		Title:  "Accounts",
		Active: "accounts",
		Data:   AccountsView{Rows: rows},
	})
}

// accountStats totals an account's directional transaction sets. Outgoing
// sums the from set, incoming the to set; the count deduplicates by id so
// a self-transfer counts once.
func accountStats(ctx context.Context, api *backend.Client, accountID int64) AccountStats {
	var from, to []models.Transaction

	var g errgroup.Group
	g.Go(func() error {
		var err error
		from, err = api.TransactionsFrom(ctx, accountID)
		return err
	})
	g.Go(func() error {
		var err error
		to, err = api.TransactionsTo(ctx, accountID)
		return err
	})
	if err := g.Wait(); err != nil {
		logrus.WithFields(logrus.Fields{"page": "accounts", "accountId": accountID, "error": err.Error()}).Warn("stats load failed")
		return AccountStats{Failed: true}
	}

	stats := AccountStats{Count: len(txview.Dedup(from, to))}
	for _, tx := range from {
		stats.Outgoing += abs(tx.Amount)
	}
	for _, tx := range to {
		stats.Incoming += abs(tx.Amount)
	}
	return stats
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func validBankAccountTypes() []string {
	return validation.ValidBankAccountTypes
}

// NewAccountView feeds the account-create form template.
type NewAccountView struct {
	Form       forms.CreateAccount
	Errors     forms.FieldErrors
	Types      []string
	Currencies []string
}

// NewAccountForm renders an empty account-create form.
func (h *Handler) NewAccountForm(c *gin.Context) {
	h.render.HTML(c, http.StatusOK, "account_new", View{
		Title:  "Open Account",
		Active: "accounts",
		Data:   NewAccountView{Errors: forms.FieldErrors{}, Types: validBankAccountTypes(), Currencies: validation.ValidCurrencies},
	})
}

// CreateAccount validates and submits the account-create form.
func (h *Handler) CreateAccount(c *gin.Context) {
	ctx := c.Request.Context()
	api := h.client(c)

	var form forms.CreateAccount
	_ = c.ShouldBind(&form)

	if errs := form.Check(); errs.Any() {
		h.render.HTML(c, http.StatusOK, "account_new", View{
			Title:  "Open Account",
			Active: "accounts",
			Data:   NewAccountView{Form: form, Errors: errs, Types: validBankAccountTypes(), Currencies: validation.ValidCurrencies},
		})
		return
	}

	req := backend.CreateAccountRequest{
		BankAccountType: strings.ToUpper(form.BankAccountType),
		Currency:        strings.ToUpper(form.Currency),
	}
	if user, err := api.Me(ctx); err == nil {
		req.ClientID = user.ID
	}

	if _, err := api.CreateAccount(ctx, req); err != nil {
		logrus.WithFields(logrus.Fields{"page": "accounts", "endpoint": "/api/bank_account", "error": err.Error()}).Warn("create failed")
		h.render.HTML(c, http.StatusOK, "account_new", View{
			Title:  "Open Account",
			Active: "accounts",
			Notice: errorNotice(backend.Message(err, "Could not create account")),
			Data:   NewAccountView{Form: form, Errors: forms.FieldErrors{}, Types: validBankAccountTypes(), Currencies: validation.ValidCurrencies},
		})
		return
	}

	c.Redirect(http.StatusSeeOther, "/accounts")
}
