package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/aleksanderWitek/simplybank-web/internal/backend"
	"github.com/aleksanderWitek/simplybank-web/internal/forms"
	"github.com/aleksanderWitek/simplybank-web/internal/models"
)

// ProfileView feeds the profile template.
type ProfileView struct {
	Profile *models.Profile
	LoadErr string
}

// Profile renders a user profile: the one named by ?id=, or the viewer's
// own when absent.
func (h *Handler) Profile(c *gin.Context) {
	ctx := c.Request.Context()
	api := h.client(c)

	var (
		profile *models.Profile
		err     error
	)
	if raw := c.Query("id"); raw != "" {
		var id int64
		if id, err = strconv.ParseInt(raw, 10, 64); err == nil {
			profile, err = api.Profile(ctx, id)
		}
	} else {
		profile, err = api.MyProfile(ctx)
	}

	if err != nil {
		logrus.WithFields(logrus.Fields{"page": "profile", "error": err.Error()}).Warn("load failed")
		msg := backend.Message(err, "Failed to load profile")
		h.render.HTML(c, http.StatusOK, "profile", View{
			Title:  "Profile",
			Active: "profile",
			Notice: errorNotice(msg),
			Data:   ProfileView{LoadErr: msg},
		})
		return
	}

	user := profile.User()
	h.render.HTML(c, http.StatusOK, "profile", View{
		Title:  "Profile",
		Active: "profile",
		User:   &user,
		Data:   ProfileView{Profile: profile},
	})
}

// PasswordView feeds the change-password template.
type PasswordView struct {
	Errors []string
}

// PasswordForm renders an empty change-password form.
func (h *Handler) PasswordForm(c *gin.Context) {
	h.render.HTML(c, http.StatusOK, "password", View{
		Title:  "Change Password",
		Active: "profile",
		Data:   PasswordView{},
	})
}

// ChangePassword validates the form against the server's password policy
// and forwards the change to the role-matching endpoint.
func (h *Handler) ChangePassword(c *gin.Context) {
	ctx := c.Request.Context()
	api := h.client(c)

	var form forms.PasswordChange
	_ = c.ShouldBind(&form)

	if errs := form.Check(); len(errs) > 0 {
		h.render.HTML(c, http.StatusOK, "password", View{
			Title:  "Change Password",
			Active: "profile",
			Data:   PasswordView{Errors: errs},
		})
		return
	}

	profile, err := api.MyProfile(ctx)
	if err == nil {
		req := backend.ChangePasswordRequest{
			CurrentPassword: form.CurrentPassword,
			NewPassword:     form.NewPassword,
		}
		if profile.IsClient() {
			err = api.ChangeClientPassword(ctx, profile.UserAccountID, req)
		} else {
			err = api.ChangeEmployeePassword(ctx, profile.UserAccountID, req)
		}
	}
	if err != nil {
		logrus.WithFields(logrus.Fields{"page": "profile", "error": err.Error()}).Warn("password change failed")
		h.render.HTML(c, http.StatusOK, "password", View{
			Title:  "Change Password",
			Active: "profile",
			Notice: errorNotice(backend.Message(err, "Failed to change password")),
			Data:   PasswordView{},
		})
		return
	}

	h.render.HTML(c, http.StatusOK, "password", View{
		Title:  "Change Password",
		Active: "profile",
		Notice: successNotice("Password changed successfully"),
		Data:   PasswordView{},
	})
}
