// Package billing holds the checkout arithmetic: subtotal, tax, tip and
// the table minimum-spend gate.
package billing

import (
	"math"

	"github.com/AGASocial/bottcierge/internal/models"
)

const (
	TaxRate        = 0.18
	DefaultTipRate = 0.20
)

type Bill struct {
	Subtotal      float64 `json:"subtotal"`
	Tax           float64 `json:"tax"`
	DefaultTip    float64 `json:"defaultTip"`
	AdditionalTip float64 `json:"additionalTip"`
	Total         float64 `json:"total"`
}

func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Subtotal sums price*quantity over the items. Each line is rounded to
// cents so the order total matches what the client displays.
func Subtotal(items []models.OrderItem) float64 {
	var sum float64
	for _, it := range items {
		sum += Round2(it.Price * float64(it.Quantity))
	}
	return Round2(sum)
}

func Compute(subtotal, additionalTip float64) Bill {
	tax := Round2(subtotal * TaxRate)
	tip := Round2((subtotal + tax) * DefaultTipRate)
	extra := Round2(additionalTip)
	return Bill{
		Subtotal:      subtotal,
		Tax:           tax,
		DefaultTip:    tip,
		AdditionalTip: extra,
		Total:         Round2(subtotal + tax + tip + extra),
	}
}

// MinimumSpend resolves the spend threshold for a table: the venue's
// per-section pricing rule wins, otherwise the category-level minimum.
func MinimumSpend(v *models.Venue, t *models.Table) float64 {
	if v == nil || t == nil {
		return 0
	}
	if min, ok := v.PricingRules[t.Section]; ok {
		return min
	}
	switch t.Category {
	case "vip":
		return v.MinimumSpend.VIP
	case "event":
		return v.MinimumSpend.Event
	default:
		return v.MinimumSpend.Regular
	}
}
