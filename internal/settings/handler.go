package settings

import "github.com/gofiber/fiber/v2"

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterAdminRoutes(app *fiber.App) {
	app.Get("/api/v1/admin/settings/delivery", h.getSetting)
	app.Put("/api/v1/admin/settings/delivery", h.setSetting)
}

func (h *Handler) getSetting(c *fiber.Ctx) error {
	setting, err := h.service.Get()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(setting)
}

func (h *Handler) setSetting(c *fiber.Ctx) error {
	payload := new(DeliverySetting)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if err := h.service.Set(*payload); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(payload)
}
