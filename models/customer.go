package models

// Customer is a buyer record served by the customer endpoints.
//
// CustomerID is assigned by the server on creation; any value sent by the
// client is overwritten.
type Customer struct {
	CustomerID   int    `json:"customerId"`
	CustomerName string `json:"customerName"`
	Email        string `json:"email"`
	PhoneNumber  string `json:"phoneNumber"`
}

// WithID returns a copy of c carrying the given identifier.
func (c Customer) WithID(id int) Customer {
	c.CustomerID = id
	return c
}
