package handlers

import (
	"errors"

	applog "ubermelon/internal/log"
	"ubermelon/internal/services"
	"ubermelon/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type MelonHandler struct {
	Catalog *services.CatalogService
	*Renderer
}

func (h *MelonHandler) Home(c *fiber.Ctx) error {
	return h.render(c, "homepage", nil)
}

func (h *MelonHandler) List(c *fiber.Ctx) error {
	melons, err := h.Catalog.All()
	if err != nil {
		return err
	}
	return h.render(c, "melons", fiber.Map{"Melons": melons})
}

func (h *MelonHandler) Detail(c *fiber.Ctx) error {
	id, ok := validate.MelonID(c.Params("id"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "melon_id", "raw": c.Params("id")})
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "No such melon."})
	}
	m, err := h.Catalog.Get(id)
	if errors.Is(err, services.ErrMelonNotFound) {
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "No such melon."})
	}
	if err != nil {
		return err
	}
	return h.render(c, "melon", fiber.Map{"M": m})
}
