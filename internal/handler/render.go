package handler

import (
	"fmt"
	"html/template"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/aleksanderWitek/simplybank-web/internal/format"
	"github.com/aleksanderWitek/simplybank-web/internal/models"
	"github.com/aleksanderWitek/simplybank-web/web"
)

// Notice is the banner shown at the top of a page.
type Notice struct {
	Kind    string // success, error, info, warning
	Message string
}

// View is the envelope every page template receives.
type View struct {
	Title  string
	Active string
	User   *models.User
	Notice *Notice
	Data   any
}

var pageNames = []string{
	"dashboard",
	"accounts",
	"account_new",
	"account",
	"transactions",
	"new_transaction",
	"profile",
	"password",
}

var fragmentNames = []string{
	"transaction_detail",
}

// Renderer executes the embedded page templates. Pages render inside the
// base layout; fragments render standalone for in-page swaps.
type Renderer struct {
	pages     map[string]*template.Template
	fragments map[string]*template.Template
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"currency": format.Currency,
		"date":     format.Date,
		"datetime": format.DateTime,
		"mask":     format.MaskAccount,
		"acctType": format.HumanizeType,
		"title":    format.Capitalize,
		"idfmt":    format.ID,
		"add":      func(a, b int) int { return a + b },
		"sub":      func(a, b int) int { return a - b },
	}
}

// NewRenderer parses every embedded template up front so a broken template
// fails at startup, not mid-request.
func NewRenderer() (*Renderer, error) {
	funcs := templateFuncs()

	r := &Renderer{
		pages:     make(map[string]*template.Template, len(pageNames)),
		fragments: make(map[string]*template.Template, len(fragmentNames)),
	}
	for _, name := range pageNames {
		t, err := template.New("base.tmpl").Funcs(funcs).
			ParseFS(web.Templates, "templates/base.tmpl", "templates/"+name+".tmpl")
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		r.pages[name] = t
	}
	for _, name := range fragmentNames {
		t, err := template.New(name+".tmpl").Funcs(funcs).
			ParseFS(web.Templates, "templates/"+name+".tmpl")
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		r.fragments[name] = t
	}
	return r, nil
}

// HTML renders a full page inside the base layout.
func (r *Renderer) HTML(c *gin.Context, status int, page string, view View) {
	c.Status(status)
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := r.pages[page].ExecuteTemplate(c.Writer, "base.tmpl", view); err != nil {
		logrus.WithFields(logrus.Fields{"page": page, "error": err.Error()}).Error("template render failed")
	}
}

// Fragment renders a standalone partial.
func (r *Renderer) Fragment(c *gin.Context, status int, name string, data any) {
	c.Status(status)
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := r.fragments[name].Execute(c.Writer, data); err != nil {
		logrus.WithFields(logrus.Fields{"fragment": name, "error": err.Error()}).Error("template render failed")
	}
}

func errorNotice(message string) *Notice {
	return &Notice{Kind: "error", Message: message}
}

func successNotice(message string) *Notice {
	return &Notice{Kind: "success", Message: message}
}
