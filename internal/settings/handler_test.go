package settings

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestDeliverySettingToggle(t *testing.T) {
	svc := NewService(NewInMemoryRepository(DeliverySetting{}))
	app := fiber.New()
	NewHandler(svc).RegisterAdminRoutes(app)

	res, err := app.Test(httptest.NewRequest("GET", "/api/v1/admin/settings/delivery", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	var got DeliverySetting
	if err := json.NewDecoder(res.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.IsFreeDelivery {
		t.Fatalf("flag should default to false")
	}

	req := httptest.NewRequest("PUT", "/api/v1/admin/settings/delivery", strings.NewReader(`{"isFreeDelivery":true}`))
	req.Header.Set("Content-Type", "application/json")
	res2, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res2.StatusCode != 200 {
		t.Fatalf("expected 200, got %d", res2.StatusCode)
	}

	if !svc.FreeDelivery() {
		t.Fatalf("toggle did not persist")
	}
}
