package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/aleksanderWitek/simplybank-web/internal/middleware"
	"github.com/aleksanderWitek/simplybank-web/internal/models"
	"github.com/aleksanderWitek/simplybank-web/internal/txview"
)

// TransactionsView feeds the transactions template.
type TransactionsView struct {
	Entries    []txview.Entry
	Summary    txview.Summary
	Pagination txview.Pagination
	Filter     string
	Status     string
	Statuses   []string
}

func sessionEntriesKey(sessionID string) string {
	return "transactions:view:" + sessionID
}

// Transactions renders the all-transactions page. The primary path walks
// the viewer's accounts and joins each account's directional sets,
// deduplicating by id; if the account list or any fetch fails, the flat
// /api/transaction list stands in. Direction comes from matching the
// viewer's owned account ids, falling back to the amount's sign.
func (h *Handler) Transactions(c *gin.Context) {
	ctx := c.Request.Context()
	api := h.client(c)

	var ownedIDs []int64
	accounts := h.ownedAccounts(c)
	for _, a := range accounts {
		ownedIDs = append(ownedIDs, a.ID)
	}

	var txs []models.Transaction
	if len(accounts) > 0 {
		lists := make([][]models.Transaction, 2*len(accounts))
		var g errgroup.Group
		for i, acct := range accounts {
			i, id := i, acct.ID
			g.Go(func() error {
				var err error
				lists[2*i], err = api.TransactionsFrom(ctx, id)
				return err
			})
			g.Go(func() error {
				var err error
				lists[2*i+1], err = api.TransactionsTo(ctx, id)
				return err
			})
		}
		if err := g.Wait(); err != nil {
			logrus.WithFields(logrus.Fields{"page": "transactions", "error": err.Error()}).Warn("fan-out failed, using flat list")
		} else {
			txs = txview.Dedup(lists...)
		}
	}
	if txs == nil {
		flat, err := api.Transactions(ctx)
		if err != nil {
			logrus.WithFields(logrus.Fields{"page": "transactions", "endpoint": "/api/transaction", "error": err.Error()}).Warn("load failed")
			h.render.HTML(c, http.StatusOK, "transactions", View{
				Title:  "Transactions",
				Active: "transactions",
				Notice: errorNotice("Failed to load transactions"),
				Data:   TransactionsView{Statuses: knownStatuses(nil)},
			})
			return
		}
		txs = flat
	}

	entries := txview.NewClassifier(ownedIDs).Classify(txs)
	h.entries.Set(ctx, sessionEntriesKey(middleware.SessionID(c)), &entries)

	view := TransactionsView{
		Filter:   c.Query("filter"),
		Status:   c.Query("status"),
		Statuses: knownStatuses(entries),
	}
	filtered := txview.FilterStatus(txview.FilterDirection(entries, view.Filter), view.Status)
	view.Summary = txview.Summarize(filtered)
	page, _ := strconv.Atoi(c.Query("page"))
	view.Entries, view.Pagination = txview.Paginate(filtered, page)

	h.render.HTML(c, http.StatusOK, "transactions", View{
		Title:  "Transactions",
		Active: "transactions",
		Data:   view,
	})
}

// ownedAccounts resolves the viewer's accounts: the client-scoped list when
// the user is known, the plain list otherwise. Any failure yields an empty
// set, which sends the page down the flat-list path.
func (h *Handler) ownedAccounts(c *gin.Context) []models.Account {
	ctx := c.Request.Context()
	api := h.client(c)

	user, err := api.Me(ctx)
	if err != nil {
		logrus.WithFields(logrus.Fields{"page": "transactions", "endpoint": "/api/auth/me", "error": err.Error()}).Warn("load failed")
		return nil
	}

	accounts, err := api.AccountsByClient(ctx, user.ID)
	if err != nil {
		accounts, err = api.Accounts(ctx)
		if err != nil {
			logrus.WithFields(logrus.Fields{"page": "transactions", "endpoint": "/api/bank_account", "error": err.Error()}).Warn("load failed")
			return nil
		}
	}
	return accounts
}

// knownStatuses lists the status filter options: the fixed set plus any
// status actually present in the data.
func knownStatuses(entries []txview.Entry) []string {
	statuses := []string{"completed", "pending", "failed"}
	seen := map[string]bool{}
	for _, s := range statuses {
		seen[s] = true
	}
	for _, e := range entries {
		if s := e.StatusOrDefault(); !seen[s] {
			seen[s] = true
			statuses = append(statuses, s)
		}
	}
	return statuses
}

// TransactionDetail serves the detail fragment for the transactions page's
// modal, falling back to the session's cached list.
func (h *Handler) TransactionDetail(c *gin.Context) {
	h.transactionDetail(c, sessionEntriesKey(middleware.SessionID(c)), c.Query("currency"))
}
