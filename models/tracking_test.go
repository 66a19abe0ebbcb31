package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsedTimeline(t *testing.T) {
	tr := Tracking{Timeline: `[
		{"date":"2025-03-01","title":"Paquete recibido","location":"Madrid","isActive":false},
		{"date":"2025-03-04","title":"En reparto","location":"Valencia","isActive":true}
	]`}

	events := tr.ParsedTimeline()
	require.Len(t, events, 2)
	assert.Equal(t, "En reparto", events[1].Title)
	assert.True(t, events[1].IsActive)
}

func TestParsedTimelineDegradesOnBadInput(t *testing.T) {
	assert.Nil(t, (&Tracking{}).ParsedTimeline())
	assert.Nil(t, (&Tracking{Timeline: "oops"}).ParsedTimeline())
}

func TestSelectCourier(t *testing.T) {
	tests := []struct {
		name     string
		couriers string
		want     string
	}{
		{"skips marketplace label", `["Aliexpress Standard Shipping","Correos Express"]`, "Correos Express"},
		{"case insensitive", `["ALIEXPRESS SELECTION","SEUR"]`, "SEUR"},
		{"falls back to first", `["Aliexpress Standard Shipping"]`, "Aliexpress Standard Shipping"},
		{"plain carrier", `["GLS"]`, "GLS"},
		{"empty list", `[]`, ""},
		{"no data", ``, ""},
		{"malformed", `garbage`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := Tracking{Couriers: tt.couriers}
			assert.Equal(t, tt.want, tr.SelectCourier())
		})
	}
}
