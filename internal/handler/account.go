package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/aleksanderWitek/simplybank-web/internal/backend"
	"github.com/aleksanderWitek/simplybank-web/internal/models"
	"github.com/aleksanderWitek/simplybank-web/internal/txview"
)

const missingAccountID = "Account ID is missing from URL"

// AccountView feeds the single-account template.
type AccountView struct {
	Account    *models.Account
	Entries    []txview.Entry
	Summary    txview.Summary
	Pagination txview.Pagination
	Filter     string
	IconClass  string
	LoadErr    string
}

func accountIconClass(accountType string) string {
	switch accountType {
	case "SAVING":
		return "icon-green"
	case "BUSINESS":
		return "icon-purple"
	case "FOREIGN_CURRENCY":
		return "icon-amber"
	}
	return "icon-blue"
}

func accountEntriesKey(accountID int64) string {
	return "account:transactions:" + strconv.FormatInt(accountID, 10)
}

// Account renders one account's page: hero, summary strip and its merged
// directional transaction list, filterable and paginated. The merged list
// is cached so the detail fragment can fall back to it.
func (h *Handler) Account(c *gin.Context) {
	ctx := c.Request.Context()

	accountID, err := strconv.ParseInt(c.Query("id"), 10, 64)
	if err != nil {
		h.render.HTML(c, http.StatusOK, "account", View{
			Title:  "Account",
			Active: "accounts",
			Notice: errorNotice(missingAccountID),
			Data:   AccountView{LoadErr: missingAccountID},
		})
		return
	}

	api := h.client(c)
	account, err := api.Account(ctx, accountID)
	if err != nil {
		logrus.WithFields(logrus.Fields{"page": "account", "accountId": accountID, "error": err.Error()}).Warn("load failed")
		msg := backend.Message(err, "Failed to load account details")
		h.render.HTML(c, http.StatusOK, "account", View{
			Title:  "Account",
			Active: "accounts",
			Notice: errorNotice(msg),
			Data:   AccountView{LoadErr: msg},
		})
		return
	}

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

	view := AccountView{
		Account:   account,
		Filter:    c.Query("filter"),
		IconClass: accountIconClass(account.Type),
	}
	var notice *Notice
	if err := g.Wait(); err != nil {
		logrus.WithFields(logrus.Fields{"page": "account", "accountId": accountID, "error": err.Error()}).Warn("transactions load failed")
		view.LoadErr = backend.Message(err, "Failed to load transactions")
		notice = errorNotice(view.LoadErr)
	} else {
		entries := txview.MergeDirectional(from, to)
		h.entries.Set(ctx, accountEntriesKey(accountID), &entries)

		view.Summary = txview.Summarize(entries)
		filtered := txview.FilterDirection(entries, view.Filter)
		page, _ := strconv.Atoi(c.Query("page"))
		view.Entries, view.Pagination = txview.Paginate(filtered, page)
	}

	h.render.HTML(c, http.StatusOK, "account", View{
		Title:  "Account " + account.Number,
		Active: "accounts",
		Notice: notice,
		Data:   view,
	})
}

// DetailView feeds the transaction detail fragment.
type DetailView struct {
	Entry    *txview.Entry
	Currency string
	NotFound bool
}

// AccountTransactionDetail serves the detail fragment for the single-account
// page's modal. The live transaction endpoint is tried first, with the
// locally derived direction overlaid; on failure the cached merged list
// answers instead.
func (h *Handler) AccountTransactionDetail(c *gin.Context) {
	accountID, _ := strconv.ParseInt(c.Query("id"), 10, 64)
	h.transactionDetail(c, accountEntriesKey(accountID), c.Query("currency"))
}

func (h *Handler) transactionDetail(c *gin.Context, cacheKey, currency string) {
	ctx := c.Request.Context()

	txID, err := strconv.ParseInt(c.Param("txID"), 10, 64)
	if err != nil {
		h.render.Fragment(c, http.StatusNotFound, "transaction_detail", DetailView{NotFound: true})
		return
	}

	var cached []txview.Entry
	if list, ok := h.entries.Get(ctx, cacheKey); ok {
		cached = *list
	}

	tx, err := h.client(c).Transaction(ctx, txID)
	if err == nil {
		entry := txview.Entry{Transaction: *tx}
		if local, ok := txview.Find(cached, txID); ok {
			entry.Direction = local.Direction
		} else {
			entry.Direction = txview.NewClassifier(nil).Direction(*tx)
		}
		h.render.Fragment(c, http.StatusOK, "transaction_detail", DetailView{Entry: &entry, Currency: currency})
		return
	}
	logrus.WithFields(logrus.Fields{"txId": txID, "error": err.Error()}).Warn("detail load failed")

	if local, ok := txview.Find(cached, txID); ok {
		h.render.Fragment(c, http.StatusOK, "transaction_detail", DetailView{Entry: &local, Currency: currency})
		return
	}

	h.render.Fragment(c, http.StatusNotFound, "transaction_detail", DetailView{NotFound: true})
}
