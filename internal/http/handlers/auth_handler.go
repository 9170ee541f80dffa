package handlers

import (
	"errors"

	applog "ubermelon/internal/log"
	"ubermelon/internal/repos"
	"ubermelon/internal/services"
	"ubermelon/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	Auth     *services.AuthService
	Sessions *repos.SessionRepo
	*Renderer
}

func (h *AuthHandler) LoginForm(c *fiber.Ctx) error {
	return h.render(c, "login", nil)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	sid := ensureSID(c)
	email, okEmail := validate.Email(c.FormValue("email"))
	pass := c.FormValue("password")

	// A malformed email cannot match any customer.
	if !okEmail {
		applog.Security(c, "auth.login.fail", map[string]any{"email": c.FormValue("email"), "reason": "bad_format"})
		if err := h.Sessions.PushFlash(sid, "No such email."); err != nil {
			return err
		}
		return c.Redirect("/login")
	}
	if !validate.Password(pass) {
		applog.Security(c, "auth.login.fail", map[string]any{"email": email, "reason": "bad_password_format"})
		if err := h.Sessions.PushFlash(sid, "Incorrect password!"); err != nil {
			return err
		}
		return c.Redirect("/login")
	}

	_, err := h.Auth.Login(sid, email, pass)
	switch {
	case errors.Is(err, services.ErrNoSuchEmail):
		applog.Security(c, "auth.login.fail", map[string]any{"email": email, "reason": "unknown_email"})
		if ferr := h.Sessions.PushFlash(sid, "No such email."); ferr != nil {
			return ferr
		}
		return c.Redirect("/login")
	case errors.Is(err, services.ErrWrongPassword):
		applog.Security(c, "auth.login.fail", map[string]any{"email": email, "reason": "wrong_password"})
		if ferr := h.Sessions.PushFlash(sid, "Incorrect password!"); ferr != nil {
			return ferr
		}
		return c.Redirect("/login")
	case err != nil:
		return err
	}

	applog.Audit(c, "auth.login.success", map[string]any{"email": email})
	if err := h.Sessions.PushFlash(sid, "Successfully logged in!"); err != nil {
		return err
	}
	return c.Redirect("/melons")
}
