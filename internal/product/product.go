package product

// Product is a storefront catalog entry. JSON field names follow the
// document shape the frontends already consume.
type Product struct {
	ID          int      `json:"id"`
	Name        string   `json:"productName"`
	Description string   `json:"description"`
	Unit        string   `json:"unit"`
	Price       float64  `json:"price"`
	ActualPrice float64  `json:"actualPrice,omitempty"`
	ImageURLs   []string `json:"imageUrls"`
	OutOfStock  bool     `json:"isOutOfStock"`
}

// AllowedUnits lists the units a product can be sold in. "kg" switches the
// pricing formula to per-kilogram over gram quantities.
var AllowedUnits = []string{"kg", "piece", "bunch", "dozen", "packet"}

const (
	// MinImages and MaxImages bound how many images a new product must
	// carry. Counts outside the range are rejected before any upload runs.
	MinImages = 1
	MaxImages = 4
)
