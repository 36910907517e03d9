package models

// Supplier is a vendor record owned by one user. Created once via the
// supplier form and read-only afterwards. Products is a free-text
// description of what the vendor supplies, not a relation.
type Supplier struct {
	ID           int64  `json:"id"`
	CompanyName  string `json:"companyName"`
	ContactEmail string `json:"contactEmail"`
	Phone        string `json:"phone,omitempty"`
	Address      string `json:"address,omitempty"`
	Products     string `json:"products"`
	UserID       int64  `json:"userId"`
	CreatedAt    string `json:"createdAt,omitempty"`
}
