package handlers

import (
	"ubermelon/internal/repos"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Renderer is shared by every handler so each rendered page drains the
// session's flash queue exactly once.
type Renderer struct {
	Sessions *repos.SessionRepo
}

func (rn *Renderer) render(c *fiber.Ctx, tmpl string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	// Inject customer if present
	if cu := c.Locals("customer"); cu != nil {
		data["Customer"] = cu
	}
	// One-shot flash messages queued by earlier requests
	if sid := c.Cookies("sid"); sid != "" {
		if msgs, err := rn.Sessions.DrainFlashes(sid); err == nil && len(msgs) > 0 {
			data["Flashes"] = msgs
		}
	}
	// Pick up the token the CSRF middleware put into Locals
	if tok, _ := c.Locals("CSRFToken").(string); tok != "" {
		data["CSRFToken"] = tok
	} else if cookTok := c.Cookies("csrf_"); cookTok != "" {
		data["CSRFToken"] = cookTok
	}
	return c.Render(tmpl, data)
}

func ensureSID(c *fiber.Ctx) string {
	sid := c.Cookies("sid")
	if sid == "" {
		sid = uuid.NewString()
		c.Cookie(&fiber.Cookie{
			Name:     "sid",
			Value:    sid,
			Path:     "/",
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
			Secure:   false,
		})
	}
	return sid
}
