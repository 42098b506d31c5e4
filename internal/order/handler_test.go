package order

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/greenbasket/grocery-backend/internal/cart"
	"github.com/greenbasket/grocery-backend/internal/customer"
	"github.com/greenbasket/grocery-backend/internal/product"
	"github.com/greenbasket/grocery-backend/internal/settings"
)

func newOrderApp(t *testing.T) (*fiber.App, *cart.Service, *customer.InMemoryRepository) {
	t.Helper()
	products := product.NewInMemoryRepository([]product.Product{
		{ID: 1, Name: "Mango", Unit: "kg", Price: 100},
	})
	carts := cart.NewService(cart.NewStore(), products)
	customers := customer.NewInMemoryRepository(nil)
	cfg := settings.NewService(settings.NewInMemoryRepository(settings.DeliverySetting{}))
	svc := NewService(NewInMemoryRepository(nil), carts, customer.NewService(customers), cfg)

	app := fiber.New()
	h := NewHandler(svc)
	h.RegisterPublicRoutes(app)
	h.RegisterAdminRoutes(app)
	return app, carts, customers
}

func TestCheckoutEndpoint(t *testing.T) {
	app, carts, customers := newOrderApp(t)
	token := carts.NewToken()
	if _, err := carts.Add(token, 1, 500); err != nil {
		t.Fatalf("seed cart: %v", err)
	}

	body := `{"name":"Lakshmi","phone":"9876543210","address":"12 Beach Road","deliveryType":"delivery"}`
	req := httptest.NewRequest("POST", "/api/v1/checkout", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(cart.TokenHeader, token)
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d", res.StatusCode)
	}

	var ord Order
	if err := json.NewDecoder(res.Body).Decode(&ord); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if ord.Total != 80 { // 50 subtotal + 30 delivery
		t.Fatalf("expected total 80, got %v", ord.Total)
	}

	// customer is reachable by phone afterwards
	if _, err := customers.GetByPhone("9876543210"); err != nil {
		t.Fatalf("customer should be upserted: %v", err)
	}
}

func TestCheckoutEndpoint_Validation(t *testing.T) {
	app, _, _ := newOrderApp(t)

	cases := []string{
		`{"phone":"9876543210","address":"x","deliveryType":"delivery"}`,       // missing name
		`{"name":"L","phone":"12345","address":"x","deliveryType":"delivery"}`, // short phone
		`{"name":"L","phone":"9876543210","deliveryType":"delivery"}`,          // missing address for delivery
	}
	for _, body := range cases {
		req := httptest.NewRequest("POST", "/api/v1/checkout", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		res, _ := app.Test(req)
		if res.StatusCode != fiber.StatusBadRequest {
			t.Fatalf("body %s: expected 400, got %d", body, res.StatusCode)
		}
	}

	// pickup does not require an address
	req := httptest.NewRequest("POST", "/api/v1/checkout", strings.NewReader(`{"name":"L","phone":"9876543210","deliveryType":"pickup"}`))
	req.Header.Set("Content-Type", "application/json")
	res, _ := app.Test(req)
	if res.StatusCode == fiber.StatusBadRequest {
		t.Fatalf("pickup without address must pass validation")
	}
}

func TestAdminOrderRoutes(t *testing.T) {
	repo := NewInMemoryRepository([]Order{
		{ID: 1, Status: StatusNew},
		{ID: 2, Status: StatusDelivered},
	})
	svc := NewService(repo, nil, nil, nil)
	app := fiber.New()
	NewHandler(svc).RegisterAdminRoutes(app)

	res, _ := app.Test(httptest.NewRequest("GET", "/api/v1/admin/orders", nil))
	var open []Order
	if err := json.NewDecoder(res.Body).Decode(&open); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(open) != 1 || open[0].ID != 1 {
		t.Fatalf("default view should list open orders, got %+v", open)
	}

	res2, _ := app.Test(httptest.NewRequest("GET", "/api/v1/admin/orders?view=closed", nil))
	var closed []Order
	if err := json.NewDecoder(res2.Body).Decode(&closed); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(closed) != 1 || closed[0].ID != 2 {
		t.Fatalf("closed view wrong: %+v", closed)
	}

	res3, _ := app.Test(httptest.NewRequest("GET", "/api/v1/admin/orders?view=archived", nil))
	if res3.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("unknown view should be rejected, got %d", res3.StatusCode)
	}

	// status change
	req := httptest.NewRequest("PATCH", "/api/v1/admin/order/1/status", strings.NewReader(`{"status":"Processing"}`))
	req.Header.Set("Content-Type", "application/json")
	res4, _ := app.Test(req)
	if res4.StatusCode != 200 {
		t.Fatalf("expected 200, got %d", res4.StatusCode)
	}

	// closed orders refuse changes
	req2 := httptest.NewRequest("PATCH", "/api/v1/admin/order/2/status", strings.NewReader(`{"status":"New"}`))
	req2.Header.Set("Content-Type", "application/json")
	res5, _ := app.Test(req2)
	if res5.StatusCode != fiber.StatusConflict {
		t.Fatalf("expected 409 for reopening a closed order, got %d", res5.StatusCode)
	}
}
