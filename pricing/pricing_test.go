package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShippingFee(t *testing.T) {
	tests := []struct {
		name     string
		subtotal float64
		want     float64
	}{
		{"just below threshold", 49.99, 1.99},
		{"at threshold", 50.00, 0},
		{"above threshold", 50.01, 0},
		{"small order", 12.50, 1.99},
		{"empty order", 0, 1.99},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ShippingFee(tt.subtotal))
		})
	}
}

func TestOrderTotal(t *testing.T) {
	tests := []struct {
		name     string
		subtotal float64
		want     float64
	}{
		{"with shipping", 30.00, 31.99},
		{"free shipping", 119.98, 119.98},
		{"threshold exactly", 50.00, 50.00},
		{"float noise rounds to cents", 19.99, 21.98},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, OrderTotal(tt.subtotal))
		})
	}
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 10.56, Round2(10.556))
	assert.Equal(t, 10.55, Round2(10.554))
	assert.Equal(t, 0.1, Round2(0.1+0.2-0.2))
	assert.Equal(t, -1.5, Round2(-1.499))
}
