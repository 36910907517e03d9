package models

import "time"

// Product is a single inventory line item. Quantity never goes below zero;
// decrements at zero are rejected before any request is issued.
// ExpirationDate is an optional YYYY-MM-DD calendar date; empty means the
// product does not expire.
type Product struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Quantity       int    `json:"quantity"`
	ExpirationDate string `json:"expirationDate,omitempty"`
	UserID         int64  `json:"userId"`
}

// DateLayout is the calendar-date format used by the backend.
const DateLayout = "2006-01-02"

// LowStock returns the products whose quantity is at or below threshold.
func LowStock(products []Product, threshold int) []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if p.Quantity <= threshold {
			out = append(out, p)
		}
	}
	return out
}

// ExpiringWithin returns the products whose expiration date falls inside
// [now, now+window]. Products without an expiration date are never flagged;
// unparseable dates are skipped. Already-expired products are included since
// they need attention at least as urgently.
func ExpiringWithin(products []Product, now time.Time, window time.Duration) []Product {
	deadline := now.Add(window)
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if p.ExpirationDate == "" {
			continue
		}
		exp, err := time.Parse(DateLayout, p.ExpirationDate)
		if err != nil {
			continue
		}
		if !exp.After(deadline) {
			out = append(out, p)
		}
	}
	return out
}
