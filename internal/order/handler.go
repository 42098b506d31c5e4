package order

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/greenbasket/grocery-backend/internal/cart"
	"github.com/greenbasket/grocery-backend/internal/customer"
)

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/api/v1/checkout", h.checkout)
}

func (h *Handler) RegisterAdminRoutes(app *fiber.App) {
	app.Get("/api/v1/admin/orders", h.listOrders)
	app.Patch("/api/v1/admin/order/:id/status", h.setStatus)
}

type checkoutRequest struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	DeliveryType string `json:"deliveryType"`
}

func validateCheckoutPayload(p *checkoutRequest) map[string]string {
	errs := map[string]string{}
	if p.Name == "" {
		errs["name"] = "name is required"
	}
	if len(p.Phone) != customer.PhoneLength {
		errs["phone"] = "phone must be 10 digits"
	}
	if p.DeliveryType == string(DeliveryTypeDelivery) && p.Address == "" {
		errs["address"] = "address is required for delivery"
	}
	return errs
}

func (h *Handler) checkout(c *fiber.Ctx) error {
	payload := new(checkoutRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if ves := validateCheckoutPayload(payload); len(ves) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": ves})
	}

	created, err := h.service.Checkout(CheckoutInput{
		CartToken:    c.Get(cart.TokenHeader),
		Name:         payload.Name,
		Phone:        payload.Phone,
		Address:      payload.Address,
		DeliveryType: DeliveryType(payload.DeliveryType),
	})
	if err != nil {
		switch err {
		case ErrEmptyCart, ErrBadDeliveryType:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *Handler) listOrders(c *fiber.Ctx) error {
	view := c.Query("view", "open")
	if view != "open" && view != "closed" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "view must be open or closed"})
	}
	orders, err := h.service.ListByView(view)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(orders)
}

type setStatusRequest struct {
	Status string `json:"status"`
}

func (h *Handler) setStatus(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid order id"})
	}
	payload := new(setStatusRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	updated, err := h.service.SetStatus(id, Status(payload.Status))
	if err != nil {
		switch err {
		case ErrInvalidStatus:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		case ErrClosedOrder:
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": err.Error()})
		case ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "order not found"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}
	return c.JSON(updated)
}
