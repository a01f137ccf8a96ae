// Package pricing is the single home of the discount arithmetic. Every
// surface that shows a discounted total (cart view, checkout, order
// history) goes through these functions instead of re-deriving the formula.
package pricing

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"storefront-backend/internal/models"
)

// Discounts arrive as signed percentage strings like "-20%". Only the
// magnitude matters: "-20%" and "20%" both mean 20% off.
var percentPattern = regexp.MustCompile(`^([+-]?)(\d+(?:\.\d+)?)%$`)

// ParsePercent extracts the percentage magnitude from a discount string.
// Returns 0, false when the string is empty or does not match the pattern.
func ParsePercent(discount string) (float64, bool) {
	m := percentPattern.FindStringSubmatch(strings.TrimSpace(discount))
	if m == nil {
		return 0, false
	}
	pct, err := strconv.ParseFloat(m[2], 64)
	if err != nil {
		return 0, false
	}
	return pct, true
}

// LineTotal is the undiscounted total for a line: price x quantity.
func LineTotal(price float64, quantity int) float64 {
	return price * float64(quantity)
}

// DiscountAmount is the absolute amount taken off a line by its discount
// string. Lines without a parseable discount are discounted by zero.
func DiscountAmount(price float64, quantity int, discount string) float64 {
	pct, ok := ParsePercent(discount)
	if !ok {
		return 0
	}
	return LineTotal(price, quantity) * (pct / 100)
}

// DiscountedLineTotal is the payable total for a line.
func DiscountedLineTotal(price float64, quantity int, discount string) float64 {
	return LineTotal(price, quantity) - DiscountAmount(price, quantity, discount)
}

// Subtotal sums the undiscounted line totals. It matches the cart
// container's running total_price field by construction.
func Subtotal(items []models.LineItem) float64 {
	var sum float64
	for _, item := range items {
		sum += LineTotal(item.Price, item.Quantity)
	}
	return sum
}

// CartTotal sums the discounted line totals: the amount the customer
// actually pays. This is intentionally distinct from Subtotal, which does
// not subtract discounts.
func CartTotal(items []models.LineItem) float64 {
	var sum float64
	for _, item := range items {
		sum += DiscountedLineTotal(item.Price, item.Quantity, item.Discount)
	}
	return sum
}

// Round2 rounds to 2 decimal places for display. Arithmetic stays in
// float64 throughout; rounding happens only at presentation boundaries.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
