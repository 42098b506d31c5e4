package admin

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// ProductCounter, CustomerCounter and OrderStats are the slices of the
// other services the dashboard needs.
type ProductCounter interface {
	Count() (int, error)
}

type CustomerCounter interface {
	Count() (int, error)
}

type OrderStats interface {
	TotalsSince(t time.Time) (int, float64, error)
}

type Handler struct {
	service   *Service
	products  ProductCounter
	customers CustomerCounter
	orders    OrderStats
}

func NewHandler(s *Service, products ProductCounter, customers CustomerCounter, orders OrderStats) *Handler {
	return &Handler{service: s, products: products, customers: customers, orders: orders}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/api/v1/admin/sign-in", h.signIn)
}

func (h *Handler) RegisterAdminRoutes(app *fiber.App) {
	app.Get("/api/v1/admin/stats", h.stats)
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) signIn(c *fiber.Ctx) error {
	payload := new(signInRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	a, err := h.service.Authenticate(payload.Email, payload.Password)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid email or password"})
	}

	claims := jwt.MapClaims{
		"admin_id": a.ID,
		"email":    a.Email,
		"exp":      time.Now().Add(72 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(os.Getenv("JWT_SECRET")))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "failed to generate token"})
	}

	return c.JSON(fiber.Map{"token": signed, "email": a.Email})
}

// stats powers the dashboard landing page: today's order count and
// earnings plus catalog and customer totals. "Today" starts at local
// midnight.
func (h *Handler) stats(c *fiber.Ctx) error {
	now := time.Now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	todayOrders, todayEarnings, err := h.orders.TotalsSince(todayStart)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	totalProducts, err := h.products.Count()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	totalCustomers, err := h.customers.Count()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}

	return c.JSON(fiber.Map{
		"todayOrders":    todayOrders,
		"todayEarnings":  todayEarnings,
		"totalProducts":  totalProducts,
		"totalCustomers": totalCustomers,
	})
}
