package cart

import (
	"github.com/greenbasket/grocery-backend/internal/pricing"
	"github.com/greenbasket/grocery-backend/internal/product"
)

// LineItem is a product snapshot plus a quantity. Quantity is in grams for
// weight-based products, otherwise a unit count. A line item never carries
// a quantity <= 0; it is removed instead.
type LineItem struct {
	ProductID   int      `json:"productId"`
	Name        string   `json:"productName"`
	Description string   `json:"description"`
	Unit        string   `json:"unit"`
	Price       float64  `json:"price"`
	ActualPrice float64  `json:"actualPrice,omitempty"`
	ImageURLs   []string `json:"imageUrls"`
	Quantity    int      `json:"quantity"`
}

// LinePrice is the amount this line contributes to the subtotal.
func (li LineItem) LinePrice() float64 {
	return pricing.LinePrice(li.Unit, li.Price, li.Quantity)
}

// DisplayQuantity renders the quantity the way the storefront shows it.
func (li LineItem) DisplayQuantity() string {
	if li.Unit == pricing.UnitKg {
		return pricing.FormatWeight(li.Quantity)
	}
	return pricing.FormatCount(li.Quantity, li.Unit)
}

// Cart is the view returned to the storefront: the ordered line items plus
// the derived values recomputed on every read.
type Cart struct {
	Token    string     `json:"cartToken"`
	Items    []LineItem `json:"items"`
	Count    int        `json:"count"`
	Subtotal float64    `json:"subtotal"`
}

func newLineItem(p product.Product, quantity int) LineItem {
	return LineItem{
		ProductID:   p.ID,
		Name:        p.Name,
		Description: p.Description,
		Unit:        p.Unit,
		Price:       p.Price,
		ActualPrice: p.ActualPrice,
		ImageURLs:   p.ImageURLs,
		Quantity:    quantity,
	}
}
