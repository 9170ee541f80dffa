package handlers

import (
	"errors"

	applog "ubermelon/internal/log"
	"ubermelon/internal/repos"
	"ubermelon/internal/services"
	"ubermelon/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type CartHandler struct {
	Cart     *services.CartService
	Sessions *repos.SessionRepo
	*Renderer
}

func (h *CartHandler) Add(c *fiber.Ctx) error {
	sid := ensureSID(c)
	id, ok := validate.MelonID(c.Params("id"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "melon_id", "raw": c.Params("id")})
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "No such melon."})
	}
	if err := h.Cart.Add(sid, id); err != nil {
		if errors.Is(err, services.ErrMelonNotFound) {
			return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "No such melon."})
		}
		return err
	}
	if err := h.Sessions.PushFlash(sid, "Melon added to cart."); err != nil {
		return err
	}
	applog.Info(c, "cart.add", map[string]any{"melon_id": id})
	return c.Redirect("/cart")
}

func (h *CartHandler) View(c *fiber.Ctx) error {
	sid := ensureSID(c)
	cv, err := h.Cart.View(sid)
	if err != nil {
		return err
	}
	data := fiber.Map{"Cart": cv}
	if cv.Skipped > 0 {
		data["Warning"] = "Some items are no longer available and were left out of your total."
	}
	return h.render(c, "cart", data)
}
