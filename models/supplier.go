package models

// Supplier is a vendor record served by the supplier endpoints.
// SupplierID is optional in create requests, hence the pointer.
type Supplier struct {
	SupplierID   *int   `json:"supplierId,omitempty"`
	SupplierName string `json:"supplierName"`
	ContactEmail string `json:"contactEmail"`
}

// ID returns the supplier identifier and whether it is set.
func (s Supplier) ID() (int, bool) {
	if s.SupplierID == nil {
		return 0, false
	}
	return *s.SupplierID, true
}

// WithID returns a copy of s carrying the given identifier.
func (s Supplier) WithID(id int) Supplier {
	s.SupplierID = &id
	return s
}
