package models

import "strings"

// OrderStatus is the backend's order-state vocabulary as observed on the
// wire. The set is provisional: the backend contract has no authoritative
// enumeration, so anything unrecognized collapses to StatusPending.
type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusConfirmed OrderStatus = "CONFIRMED"
	StatusApproved  OrderStatus = "APPROVED"
	StatusCancelled OrderStatus = "CANCELLED"
)

// ParseOrderStatus normalizes a raw status string. Absent, empty and
// unrecognized values all default to StatusPending; matching is
// case-insensitive.
func ParseOrderStatus(raw string) OrderStatus {
	switch OrderStatus(strings.ToUpper(strings.TrimSpace(raw))) {
	case StatusConfirmed:
		return StatusConfirmed
	case StatusApproved:
		return StatusApproved
	case StatusCancelled:
		return StatusCancelled
	default:
		return StatusPending
	}
}

// Order is a request to a supplier for a quantity of a product. OrderDate is
// stamped client-side at creation (YYYY-MM-DD) and never edited; Status is
// read-only from the client's perspective.
type Order struct {
	ID         int64  `json:"id"`
	ProductID  int64  `json:"productId"`
	Quantity   int    `json:"quantity"`
	SupplierID int64  `json:"supplierId"`
	UserID     int64  `json:"userId"`
	OrderDate  string `json:"orderDate"`
	Status     string `json:"status,omitempty"`
}

// EnrichedOrder is an Order with its product and supplier resolved via point
// reads. Either pointer may be nil when the referenced record could not be
// fetched; the order itself is still listed. Status always carries a
// normalized value.
type EnrichedOrder struct {
	Order
	Product  *Product
	Supplier *Supplier
	Status   OrderStatus
}
