package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/aleksanderWitek/simplybank-web/internal/backend"
	"github.com/aleksanderWitek/simplybank-web/internal/format"
	"github.com/aleksanderWitek/simplybank-web/internal/middleware"
	"github.com/aleksanderWitek/simplybank-web/internal/models"
	"github.com/aleksanderWitek/simplybank-web/internal/validation"
	"github.com/aleksanderWitek/simplybank-web/internal/wizard"
)

// WizardView feeds the new-transaction template.
type WizardView struct {
	State      *wizard.FormState
	Errors     wizard.Errors
	Types      []string
	Currencies []string
}

func (h *Handler) loadWizard(c *gin.Context) *wizard.FormState {
	if state, ok := h.store.Load(c.Request.Context(), middleware.SessionID(c)); ok {
		return state
	}
	return wizard.New()
}

func (h *Handler) saveWizard(c *gin.Context, state *wizard.FormState) {
	h.store.Save(c.Request.Context(), middleware.SessionID(c), state)
}

func (h *Handler) renderWizard(c *gin.Context, state *wizard.FormState, errs wizard.Errors, notice *Notice) {
	if errs == nil {
		errs = wizard.Errors{}
	}
	h.render.HTML(c, http.StatusOK, "new_transaction", View{
		Title:  "New Transaction",
		Active: "new-transaction",
		Notice: notice,
		Data: WizardView{
			State:      state,
			Errors:     errs,
			Types:      validation.ValidTransactionTypes,
			Currencies: validation.ValidCurrencies,
		},
	})
}

// wizardAccounts loads the accounts the wizard selects from: the viewer's
// client-scoped list when the user resolves, the plain list otherwise.
func (h *Handler) wizardAccounts(c *gin.Context) ([]models.Account, int64, error) {
	ctx := c.Request.Context()
	api := h.client(c)

	var userID int64
	if user, err := api.Me(ctx); err == nil {
		userID = user.ID
		if accounts, err := api.AccountsByClient(ctx, user.ID); err == nil {
			return accounts, userID, nil
		}
	}
	accounts, err := api.Accounts(ctx)
	return accounts, userID, err
}

// NewTransaction starts the wizard with a fresh state. A valid ?type=
// preselection jumps straight to the detail step.
func (h *Handler) NewTransaction(c *gin.Context) {
	state := wizard.New()

	accounts, userID, err := h.wizardAccounts(c)
	var notice *Notice
	if err != nil {
		logrus.WithFields(logrus.Fields{"page": "new-transaction", "error": err.Error()}).Warn("accounts load failed")
		notice = errorNotice("Could not load accounts")
	}
	state.Accounts = accounts
	state.CurrentUserID = userID

	if t := c.Query("type"); t != "" && validation.TransactionType(t) == "" {
		state.TransactionType = t
		state.Step = wizard.StepDetails
	}

	h.saveWizard(c, state)
	h.renderWizard(c, state, nil, notice)
}

// WizardType records the selected transaction type and advances to the
// detail step.
func (h *Handler) WizardType(c *gin.Context) {
	state := h.loadWizard(c)

	t := c.PostForm("transactionType")
	if msg := validation.TransactionType(t); msg != "" {
		h.renderWizard(c, state, nil, errorNotice(msg))
		return
	}

	if t != state.TransactionType {
		state.FromAccountID = ""
		state.ToAccountID = ""
		state.ExternalAccount = ""
	}
	state.TransactionType = t
	state.Step = wizard.StepDetails
	h.saveWizard(c, state)
	h.renderWizard(c, state, nil, nil)
}

// WizardDetails binds the detail form, runs the full validation pass and
// either re-renders the step with every failing field marked or advances
// to the confirm step. The steps are strictly linear: a post without a
// selected type goes back to the type step instead of advancing.
func (h *Handler) WizardDetails(c *gin.Context) {
	state := h.loadWizard(c)

	if msg := validation.TransactionType(state.TransactionType); msg != "" {
		state.Step = wizard.StepTypeSelect
		h.saveWizard(c, state)
		h.renderWizard(c, state, nil, errorNotice(msg))
		return
	}

	state.FromAccountID = c.PostForm("fromAccount")
	state.ToAccountID = c.PostForm("toAccount")
	state.ExternalAccount = c.PostForm("externalAccount")
	state.Amount = c.PostForm("amount")
	state.Currency = strings.ToUpper(c.PostForm("currency"))
	state.Description = c.PostForm("description")
	state.Category = c.PostForm("category")

	errs := wizard.Validate(state)
	if len(errs) > 0 {
		h.saveWizard(c, state)
		h.renderWizard(c, state, errs, nil)
		return
	}

	state.Step = wizard.StepConfirm
	h.saveWizard(c, state)
	h.renderWizard(c, state, nil, nil)
}

// WizardConfirm submits the reviewed transaction. The submitting flag keeps
// a double post from producing two transactions; it is cleared whatever the
// outcome.
func (h *Handler) WizardConfirm(c *gin.Context) {
	state := h.loadWizard(c)

	if state.Step != wizard.StepConfirm {
		h.renderWizard(c, state, nil, nil)
		return
	}
	if state.Submitting {
		h.renderWizard(c, state, nil, &Notice{Kind: "info", Message: "Submission already in progress"})
		return
	}
	state.Submitting = true
	h.saveWizard(c, state)

	err := h.submitTransaction(c, state)
	state.Submitting = false
	if err != nil {
		logrus.WithFields(logrus.Fields{"page": "new-transaction", "type": state.TransactionType, "error": err.Error()}).Warn("submit failed")
		h.saveWizard(c, state)
		h.renderWizard(c, state, nil, errorNotice(backend.Message(err, "Transaction failed. Please try again.")))
		return
	}

	amount, _ := strconv.ParseFloat(strings.TrimSpace(state.Amount), 64)
	state.SuccessMessage = format.Capitalize(strings.ToLower(state.TransactionType)) +
		" of " + format.Currency(amount, state.Currency) + " completed successfully"
	state.Step = wizard.StepSuccess
	h.saveWizard(c, state)
	h.renderWizard(c, state, nil, nil)
}

func (h *Handler) submitTransaction(c *gin.Context, state *wizard.FormState) error {
	ctx := c.Request.Context()
	api := h.client(c)

	amount, _ := strconv.ParseFloat(strings.TrimSpace(state.Amount), 64)
	fromID, _ := strconv.ParseInt(state.FromAccountID, 10, 64)
	toID, _ := strconv.ParseInt(state.ToAccountID, 10, 64)
	currency := strings.ToUpper(state.Currency)

	var err error
	switch state.TransactionType {
	case "DEPOSIT":
		_, err = api.Deposit(ctx, backend.DepositRequest{
			BankAccountToID: toID,
			Amount:          amount,
			Currency:        currency,
			Description:     state.Description,
		})
	case "WITHDRAWAL":
		_, err = api.Withdraw(ctx, backend.WithdrawRequest{
			BankAccountFromID: fromID,
			Amount:            amount,
			Currency:          currency,
			Description:       state.Description,
		})
	case "PAYMENT":
		// payments ride the transfer endpoint with an external recipient
		_, err = api.Transfer(ctx, backend.TransferRequest{
			BankAccountFromID:     fromID,
			ExternalAccountNumber: strings.Join(strings.Fields(state.ExternalAccount), ""),
			Amount:                amount,
			Currency:              currency,
			Description:           state.Description,
		})
	default:
		_, err = api.Transfer(ctx, backend.TransferRequest{
			BankAccountFromID: fromID,
			BankAccountToID:   toID,
			Amount:            amount,
			Currency:          currency,
			Description:       state.Description,
		})
	}
	return err
}

// WizardBack steps backwards once; the type-select step is the floor.
func (h *Handler) WizardBack(c *gin.Context) {
	state := h.loadWizard(c)

	switch state.Step {
	case wizard.StepDetails:
		state.Step = wizard.StepTypeSelect
	case wizard.StepConfirm:
		state.Step = wizard.StepDetails
	}

	h.saveWizard(c, state)
	h.renderWizard(c, state, nil, nil)
}

// WizardReset clears the form back to the type-select step, keeping the
// loaded accounts.
func (h *Handler) WizardReset(c *gin.Context) {
	state := h.loadWizard(c)
	state.Reset()
	h.saveWizard(c, state)
	h.renderWizard(c, state, nil, nil)
}
