package storefront

import "github.com/gofiber/fiber/v2"

// ServiceablePincodes are the areas home delivery reaches.
var ServiceablePincodes = []string{"600067", "600052"}

// Handler serves the small storefront helpers that belong to no other
// domain, currently just the delivery-area check.
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/pincode/:code", h.checkPincode)
}

func (h *Handler) checkPincode(c *fiber.Ctx) error {
	code := c.Params("code")
	if len(code) != 6 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Please enter a valid 6-digit pincode."})
	}
	for _, p := range ServiceablePincodes {
		if p == code {
			return c.JSON(fiber.Map{"serviceable": true})
		}
	}
	return c.JSON(fiber.Map{"serviceable": false})
}
