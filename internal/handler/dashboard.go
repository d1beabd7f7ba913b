package handler

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/aleksanderWitek/simplybank-web/internal/models"
)

const recentLimit = 10

// DashboardView feeds the dashboard template.
type DashboardView struct {
	Accounts []models.Account
	Recent   []models.Transaction
}

// Dashboard loads the three page regions concurrently. Each load fails on
// its own: a missing user just drops the welcome banner, missing accounts
// or transactions render their empty states.
func (h *Handler) Dashboard(c *gin.Context) {
	ctx := c.Request.Context()
	api := h.client(c)

	var (
		user     *models.User
		accounts []models.Account
		recent   []models.Transaction
	)

	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		u, err := api.Me(ctx)
		if err != nil {
			logrus.WithFields(logrus.Fields{"page": "dashboard", "endpoint": "/api/auth/me", "error": err.Error()}).Warn("load failed")
			return
		}
		user = u
	}()
	go func() {
		defer wg.Done()
		a, err := api.Accounts(ctx)
		if err != nil {
			logrus.WithFields(logrus.Fields{"page": "dashboard", "endpoint": "/api/bank_account", "error": err.Error()}).Warn("load failed")
			return
		}
		accounts = a
	}()
	go func() {
		defer wg.Done()
		t, err := api.Transactions(ctx)
		if err != nil {
			logrus.WithFields(logrus.Fields{"page": "dashboard", "endpoint": "/api/transaction", "error": err.Error()}).Warn("load failed")
			return
		}
		recent = t
	}()
	wg.Wait()

	if len(recent) > recentLimit {
		recent = recent[:recentLimit]
	}

	h.render.HTML(c, http.StatusOK, "dashboard", View{
		Title:  "Dashboard",
		Active: "dashboard",
		User:   user,
		Data:   DashboardView{Accounts: accounts, Recent: recent},
	})
}
