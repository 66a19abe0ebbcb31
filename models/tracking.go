package models

import (
	"encoding/json"
	"strings"
)

// marketplaceProxy marks courier names that are the marketplace's own
// forwarding label rather than the carrier actually moving the parcel.
const marketplaceProxy = "aliexpress"

// TimelineEvent is one shipment milestone of the tracking timeline.
type TimelineEvent struct {
	Date     string `json:"date"`
	Title    string `json:"title"`
	Location string `json:"location,omitempty"`
	IsActive bool   `json:"isActive"`
}

// Tracking is the courier state of a shipped order. Timeline and Couriers
// arrive as JSON-encoded strings and are parsed here, once, instead of in
// every view that renders them.
type Tracking struct {
	ID                int64  `json:"id"`
	TrackingNumber    string `json:"trackingNumber"`
	OrderID           int64  `json:"orderId"`
	Status            string `json:"status"`
	StatusDescription string `json:"statusDescription"`
	Origin            string `json:"origin"`
	Destination       string `json:"destination"`
	Weight            string `json:"weight,omitempty"`
	DaysOnRoute       int    `json:"daysOnRoute"`
	SourceURL         string `json:"sourceUrl"`
	Couriers          string `json:"couriers"`
	Timeline          string `json:"timeline"`
	CreatedAt         string `json:"createdAt"`
	UpdatedAt         string `json:"updatedAt"`
}

// ParsedTimeline decodes the embedded timeline. Malformed JSON yields an
// empty timeline, never an error: tracking pages render what they can.
func (t *Tracking) ParsedTimeline() []TimelineEvent {
	if strings.TrimSpace(t.Timeline) == "" {
		return nil
	}
	var events []TimelineEvent
	if err := json.Unmarshal([]byte(t.Timeline), &events); err != nil {
		return nil
	}
	return events
}

// CourierNames decodes the embedded courier candidate list.
func (t *Tracking) CourierNames() []string {
	if strings.TrimSpace(t.Couriers) == "" {
		return nil
	}
	var couriers []string
	if err := json.Unmarshal([]byte(t.Couriers), &couriers); err != nil {
		return nil
	}
	return couriers
}

// SelectCourier picks the carrier to show: the first name that is not the
// marketplace proxy, falling back to the first candidate.
func (t *Tracking) SelectCourier() string {
	couriers := t.CourierNames()
	for _, c := range couriers {
		if !strings.Contains(strings.ToLower(c), marketplaceProxy) {
			return c
		}
	}
	if len(couriers) > 0 {
		return couriers[0]
	}
	return ""
}
