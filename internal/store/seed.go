package store

import "github.com/MKhiriev/go-storefront-demo/models"

// Seed lists are process-lifetime constants. Repositories hand out copies only.

var seedUsers = []models.Credentials{
	{Username: "root", Password: "root123"},
	{Username: "admin", Password: "admin123"},
	{Username: "tester", Password: "test123"},
}

var seedProducts = []models.Product{
	{ID: 1, Name: "Product 1", Price: 10.0},
	{ID: 2, Name: "Product 2", Price: 20.0},
	{ID: 3, Name: "Product 3", Price: 30.0},
}

var seedCustomers = []models.Customer{
	{CustomerID: 1, CustomerName: "John Doe", Email: "john.doe@email.com", PhoneNumber: "+1-555-0101"},
	{CustomerID: 2, CustomerName: "Jane Smith", Email: "jane.smith@email.com", PhoneNumber: "+1-555-0102"},
	{CustomerID: 3, CustomerName: "Bob Johnson", Email: "bob.johnson@email.com", PhoneNumber: "+1-555-0103"},
}

var seedSuppliers = []models.Supplier{
	models.Supplier{SupplierName: "ABC Supplies", ContactEmail: "contact@abcsupplies.com"}.WithID(1),
	models.Supplier{SupplierName: "XYZ Corp", ContactEmail: "info@xyzcorp.com"}.WithID(2),
	models.Supplier{SupplierName: "Global Trade Inc", ContactEmail: "sales@globaltrade.com"}.WithID(3),
}
