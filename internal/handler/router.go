// Package handler contains the gin handlers behind every page of the web
// frontend. Each page handler loads its data from the banking API, shapes
// it through txview/format, and renders a server-side template.
package handler

import (
	"context"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aleksanderWitek/simplybank-web/internal/backend"
	"github.com/aleksanderWitek/simplybank-web/internal/logging"
	"github.com/aleksanderWitek/simplybank-web/internal/middleware"
	"github.com/aleksanderWitek/simplybank-web/internal/txview"
	"github.com/aleksanderWitek/simplybank-web/internal/wizard"
	"github.com/aleksanderWitek/simplybank-web/web"
)

// EntryCache caches merged transaction lists so the detail fragments can
// fall back to them when the single-transaction endpoint fails.
type EntryCache interface {
	Get(ctx context.Context, key string) (*[]txview.Entry, bool)
	Set(ctx context.Context, key string, value *[]txview.Entry)
}

// Handler carries the dependencies shared by every page handler.
type Handler struct {
	api     *backend.Client
	store   wizard.Store
	entries EntryCache
	render  *Renderer
}

// New builds the page handler set.
func New(api *backend.Client, store wizard.Store, entries EntryCache) (*Handler, error) {
	render, err := NewRenderer()
	if err != nil {
		return nil, err
	}
	return &Handler{api: api, store: store, entries: entries, render: render}, nil
}

// client returns the API client bound to the session's bearer token.
func (h *Handler) client(c *gin.Context) *backend.Client {
	return h.api.WithToken(middleware.APIToken(c))
}

// NewRouter wires the routes and the shared middleware stack.
func NewRouter(h *Handler, sessionSecret string, secure bool) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), logging.Requests(), middleware.Session(sessionSecret, secure))

	staticFS, _ := fs.Sub(web.Static, "static")
	r.StaticFS("/static", http.FS(staticFS))

	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/dashboard")
	})

	r.GET("/dashboard", h.Dashboard)

	r.GET("/accounts", h.Accounts)
	r.GET("/accounts/new", h.NewAccountForm)
	r.POST("/accounts/new", h.CreateAccount)

	r.GET("/account", h.Account)
	r.GET("/account/transaction/:txID", h.AccountTransactionDetail)

	r.GET("/transactions", h.Transactions)
	r.GET("/transactions/:txID/detail", h.TransactionDetail)

	r.GET("/new-transaction", h.NewTransaction)
	r.POST("/new-transaction/type", h.WizardType)
	r.POST("/new-transaction/details", h.WizardDetails)
	r.POST("/new-transaction/confirm", h.WizardConfirm)
	r.POST("/new-transaction/back", h.WizardBack)
	r.POST("/new-transaction/reset", h.WizardReset)

	r.GET("/profile", h.Profile)
	r.GET("/profile/password", h.PasswordForm)
	r.POST("/profile/password", h.ChangePassword)

	return r
}
