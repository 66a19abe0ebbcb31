package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// VariantOption is one selectable value inside a variant group, optionally
// carrying a price delta and a representative image.
type VariantOption struct {
	Value      string  `json:"value"`
	ExtraPrice float64 `json:"extraPrice"`
	Image      string  `json:"image,omitempty"`
}

// VariantGroup is a named axis of customization ("Color", "Talla") with
// its options.
type VariantGroup struct {
	GroupName string          `json:"groupName"`
	Options   []VariantOption `json:"options"`
}

// ParseVariantGroups decodes a product's variant JSON. Malformed or empty
// input degrades to "no variants" rather than an error: a broken variant
// string must never block a product page.
func ParseVariantGroups(raw string) []VariantGroup {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	var groups []VariantGroup
	if err := json.Unmarshal([]byte(raw), &groups); err != nil {
		return nil
	}
	out := groups[:0]
	for _, g := range groups {
		if g.GroupName != "" && len(g.Options) > 0 {
			out = append(out, g)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// DefaultVariant is the quick-add selection: the first option of the first
// group. Products without variants get an empty selection.
func DefaultVariant(groups []VariantGroup) string {
	if len(groups) == 0 || len(groups[0].Options) == 0 {
		return ""
	}
	return formatSelection(groups[0].GroupName, groups[0].Options[0].Value)
}

// ResolveVariant validates an explicit selection against the product's
// groups: every group must have a chosen option. The returned error names
// each missing group so the page can tell the user exactly what to pick.
func ResolveVariant(groups []VariantGroup, selections map[string]string) (string, error) {
	if len(groups) == 0 {
		return "", nil
	}

	var missing []string
	var parts []string
	for _, g := range groups {
		value, ok := selections[g.GroupName]
		if !ok || value == "" {
			missing = append(missing, g.GroupName)
			continue
		}
		found := false
		for _, opt := range g.Options {
			if opt.Value == value {
				found = true
				break
			}
		}
		if !found {
			return "", fmt.Errorf("option %q is not available for %s", value, g.GroupName)
		}
		parts = append(parts, formatSelection(g.GroupName, value))
	}

	if len(missing) > 0 {
		return "", fmt.Errorf("selecciona una opción para: %s", strings.Join(missing, ", "))
	}
	return strings.Join(parts, " / "), nil
}

func formatSelection(group, value string) string {
	return group + ": " + value
}
