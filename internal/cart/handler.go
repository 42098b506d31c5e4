package cart

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// TokenHeader carries the cart token between requests. The handler echoes
// it on every response, minting a new one for first-time visitors.
const TokenHeader = "X-Cart-Token"

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/cart", h.getCart)
	app.Post("/api/v1/cart/items", h.addItem)
	app.Put("/api/v1/cart/items/:id", h.updateItem)
	app.Delete("/api/v1/cart/items/:id", h.removeItem)
}

func (h *Handler) token(c *fiber.Ctx) string {
	t := c.Get(TokenHeader)
	if t == "" {
		t = h.service.NewToken()
	}
	c.Set(TokenHeader, t)
	return t
}

func (h *Handler) getCart(c *fiber.Ctx) error {
	return c.JSON(h.service.Get(h.token(c)))
}

type addItemRequest struct {
	ProductID int `json:"productId"`
	Quantity  int `json:"quantity,omitempty"`
}

func (h *Handler) addItem(c *fiber.Ctx) error {
	payload := new(addItemRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.ProductID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid productId"})
	}

	crt, err := h.service.Add(h.token(c), payload.ProductID, payload.Quantity)
	if err != nil {
		switch err {
		case ErrProductNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "product not found"})
		case ErrOutOfStock:
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": "product is out of stock"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}
	return c.JSON(crt)
}

type updateItemRequest struct {
	Quantity int `json:"quantity"`
}

func (h *Handler) updateItem(c *fiber.Ctx) error {
	productID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid productId"})
	}
	payload := new(updateItemRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	// quantity <= 0 removes the line, handled by the store
	return c.JSON(h.service.UpdateQuantity(h.token(c), productID, payload.Quantity))
}

func (h *Handler) removeItem(c *fiber.Ctx) error {
	productID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid productId"})
	}
	return c.JSON(h.service.Remove(h.token(c), productID))
}
