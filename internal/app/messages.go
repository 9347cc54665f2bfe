// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the human-readable messages written into the
// response envelope by the HTTP handlers.
//
// Constants ending in Fmt are fmt templates taking the resource identifier.
package app

const (
	// MsgInvalidRequestBody is returned when an auth request body cannot be
	// decoded or is missing.
	MsgInvalidRequestBody = "Invalid request body"

	// MsgInvalidCredentials is returned when no seeded username/password pair
	// matches the login request.
	MsgInvalidCredentials = "Invalid credentials"

	// MsgInvalidToken is returned when a refresh request carries a blank token.
	MsgInvalidToken = "Invalid token"

	MsgProductNotFound   = "Product not found"
	MsgInvalidProductID  = "Invalid product ID."
	MsgProductsNotListed = "Products could not be retrieved"

	MsgCustomersRetrieved   = "Customers retrieved successfully."
	MsgCustomerRetrievedFmt = "Customer %d retrieved successfully."
	MsgCustomerNotFoundFmt  = "Customer with ID %d not found."
	MsgCustomerCreated      = "Customer created successfully."
	MsgInvalidCustomerBody  = "Invalid request body. Please provide a valid Customer object."
	MsgInvalidCustomerID    = "Invalid customer ID."
	MsgCustomersNotListed   = "Customers could not be retrieved."
	MsgCustomerNotCreated   = "Customer could not be created."

	MsgSuppliersRetrieved   = "Suppliers retrieved successfully."
	MsgSupplierRetrievedFmt = "Supplier %d retrieved successfully."
	MsgSupplierNotFoundFmt  = "Supplier with ID %d not found."
	MsgSupplierCreated      = "Supplier created successfully."
	MsgInvalidSupplierBody  = "Invalid request body. Please provide a valid Supplier object."
	MsgInvalidSupplierID    = "Invalid supplier ID."
	MsgSuppliersNotListed   = "Suppliers could not be retrieved."
	MsgSupplierNotCreated   = "Supplier could not be created."

	// MsgBodyParseErrorPrefix precedes the decoder error when a create
	// request body is not valid JSON.
	MsgBodyParseErrorPrefix = "Error parsing request body: "

	// MsgInvalidGzip is returned when a gzip-encoded request body cannot be
	// inflated.
	MsgInvalidGzip = "Invalid gzip data"
)
