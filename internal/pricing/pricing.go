package pricing

import (
	"fmt"
	"math"
	"strconv"
)

// UnitKg marks products sold by weight; their quantity is tracked in grams
// and their price is rupees per kilogram. Every other unit ("piece",
// "bunch", ...) is a discrete count priced per unit.
const UnitKg = "kg"

const (
	// DeliveryCharge is the flat fee applied to home-delivery orders.
	DeliveryCharge = 30.00

	// PickupAddress replaces the customer address on store-pickup orders.
	PickupAddress = "N/A (Store Pickup)"
)

// FormatWeight renders a gram quantity for display: grams below a kilogram
// stay in grams, anything above is shown in kilograms rounded to one
// decimal with a trailing ".0" dropped (1500 -> "1.5 kg", 2000 -> "2 kg").
func FormatWeight(grams int) string {
	if grams < 1000 {
		return fmt.Sprintf("%d g", grams)
	}
	kg := math.Round(float64(grams)/100) / 10
	return strconv.FormatFloat(kg, 'f', -1, 64) + " kg"
}

// FormatCount renders a discrete quantity, e.g. "3 piece(s)".
func FormatCount(quantity int, unit string) string {
	return fmt.Sprintf("%d %s(s)", quantity, unit)
}

// LinePrice computes the amount for a single cart line. For weight-based
// products price is per kilogram while quantity is in grams, so the price
// is scaled down by 1000; for everything else it is a straight count.
func LinePrice(unit string, price float64, quantity int) float64 {
	if unit == UnitKg {
		return price / 1000 * float64(quantity)
	}
	return price * float64(quantity)
}

// Step returns the quantity-stepper increment for a unit: 500 g for
// weight-based products, 1 for discrete ones.
func Step(unit string) int {
	if unit == UnitKg {
		return 500
	}
	return 1
}

// MinQuantity is the smallest orderable quantity and equals the step.
func MinQuantity(unit string) int {
	return Step(unit)
}
