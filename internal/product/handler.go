package product

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/products", h.getProducts)
	app.Get("/api/v1/product/:id", h.getProduct)
}

func (h *Handler) RegisterAdminRoutes(app *fiber.App) {
	app.Post("/api/v1/admin/products", h.createProduct)
	app.Put("/api/v1/admin/product/:id", h.updateProduct)
	app.Delete("/api/v1/admin/product/:id", h.deleteProduct)
}

func (h *Handler) getProducts(c *fiber.Ctx) error {
	return c.JSON(h.service.List())
}

func (h *Handler) getProduct(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}

	p, err := h.service.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).SendString("Product not found")
	}
	return c.JSON(p)
}

func validateProductPayload(p *Product) map[string]string {
	errs := map[string]string{}
	if p.Name == "" {
		errs["productName"] = "productName is required"
	}
	if p.Price < 0 {
		errs["price"] = "price must be >= 0"
	}
	if p.ActualPrice < 0 {
		errs["actualPrice"] = "actualPrice must be >= 0"
	}
	if p.Unit != "" {
		valid := false
		for _, u := range AllowedUnits {
			if p.Unit == u {
				valid = true
				break
			}
		}
		if !valid {
			errs["unit"] = "invalid unit"
		}
	}
	return errs
}

// parsePrice coerces form input to a number; unparseable values become zero,
// the same fallback rule the forms apply everywhere else.
func parsePrice(v string) float64 {
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0
	}
	return f
}

// createProduct accepts a multipart form with the product fields plus 1-4
// files under "images". Image-count violations are rejected before any file
// is stored.
func (h *Handler) createProduct(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "multipart form expected"})
	}

	p := Product{
		Name:        c.FormValue("productName"),
		Description: c.FormValue("description"),
		Unit:        c.FormValue("unit"),
		Price:       parsePrice(c.FormValue("price")),
		ActualPrice: parsePrice(c.FormValue("actualPrice")),
		OutOfStock:  c.FormValue("isOutOfStock") == "true",
	}
	if p.Unit == "" {
		p.Unit = "piece"
	}
	if ves := validateProductPayload(&p); len(ves) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": ves})
	}

	files := form.File["images"]
	if len(files) < MinImages {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Please select at least one image."})
	}
	if len(files) > MaxImages {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "You can upload a maximum of 4 images."})
	}

	images := make([]ImageUpload, 0, len(files))
	opened := make([]interface{ Close() error }, 0, len(files))
	defer func() {
		for _, f := range opened {
			f.Close()
		}
	}()
	for _, fh := range files {
		f, err := fh.Open()
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
		opened = append(opened, f)
		images = append(images, ImageUpload{Name: fh.Filename, Content: f})
	}

	created, err := h.service.Create(p, images)
	if err != nil {
		if err == ErrImageCount {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// editable fields of an existing product; unit and images are fixed at
// creation time, matching the admin edit form.
type updateProductRequest struct {
	Name        string  `json:"productName"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ActualPrice float64 `json:"actualPrice"`
	OutOfStock  bool    `json:"isOutOfStock"`
}

func (h *Handler) updateProduct(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	payload := new(updateProductRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	existing, err := h.service.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).SendString("Product not found")
	}

	existing.Name = payload.Name
	existing.Description = payload.Description
	existing.Price = payload.Price
	existing.ActualPrice = payload.ActualPrice
	existing.OutOfStock = payload.OutOfStock

	if ves := validateProductPayload(&existing); len(ves) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": ves})
	}

	updated, err := h.service.Update(id, existing)
	if err != nil {
		return c.Status(fiber.StatusNotFound).SendString("Product not found")
	}
	return c.JSON(updated)
}

func (h *Handler) deleteProduct(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}
	if err := h.service.Delete(id); err != nil {
		return c.Status(fiber.StatusNotFound).SendString("Product not found")
	}
	return c.SendString("Product deleted")
}
