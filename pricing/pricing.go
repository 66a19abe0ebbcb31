// Package pricing is the single home of the storefront's money rules. The
// free-shipping threshold used to be duplicated across every page that
// showed a total; keep it here and nowhere else.
package pricing

import "math"

const (
	// FreeShippingThreshold is the subtotal at which shipping becomes
	// free. The boundary is inclusive: exactly 50.00 ships free.
	FreeShippingThreshold = 50.00

	// FlatShippingFee is charged below the threshold.
	FlatShippingFee = 1.99
)

// ShippingFee returns the shipping cost for a cart subtotal.
func ShippingFee(subtotal float64) float64 {
	if subtotal >= FreeShippingThreshold {
		return 0
	}
	return FlatShippingFee
}

// OrderTotal is the amount an order is placed with: subtotal plus the
// shipping fee, rounded to cents so a confirmation page recomputing it
// always reproduces the stored value exactly.
func OrderTotal(subtotal float64) float64 {
	return Round2(subtotal + ShippingFee(subtotal))
}

// Round2 rounds half away from zero to two decimals.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
