package handlers

import (
	applog "ubermelon/internal/log"
	"ubermelon/internal/repos"

	"github.com/gofiber/fiber/v2"
)

type CheckoutHandler struct {
	Sessions *repos.SessionRepo
}

// Checkout is a stub: no payment or shipping exists yet.
func (h *CheckoutHandler) Checkout(c *fiber.Ctx) error {
	sid := ensureSID(c)
	if err := h.Sessions.PushFlash(sid, "Sorry! Checkout will be implemented in a future version."); err != nil {
		return err
	}
	applog.Info(c, "checkout.stub", nil)
	return c.Redirect("/melons")
}
