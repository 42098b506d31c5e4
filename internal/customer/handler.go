package customer

import "github.com/gofiber/fiber/v2"

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	// lookup-as-you-type prefill for the checkout form
	app.Get("/api/v1/checkout/customer", h.prefill)
}

func (h *Handler) RegisterAdminRoutes(app *fiber.App) {
	app.Get("/api/v1/admin/customers", h.listCustomers)
}

func (h *Handler) prefill(c *fiber.Ctx) error {
	return c.JSON(h.service.Prefill(c.Query("phone")))
}

func (h *Handler) listCustomers(c *fiber.Ctx) error {
	return c.JSON(h.service.List())
}
