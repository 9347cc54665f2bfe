package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOK_OmitsEmptyMessage(t *testing.T) {
	body, err := json.Marshal(OK("", Product{ID: 2, Name: "Product 2", Price: 20}))
	require.NoError(t, err)

	assert.JSONEq(t, `{"success":true,"data":{"id":2,"name":"Product 2","price":20}}`, string(body))
}

func TestFail_OmitsData(t *testing.T) {
	body, err := json.Marshal(Fail("Product not found"))
	require.NoError(t, err)

	assert.JSONEq(t, `{"success":false,"message":"Product not found"}`, string(body))
}

func TestCustomer_WithID_DoesNotMutateReceiver(t *testing.T) {
	c := Customer{CustomerID: 1, CustomerName: "John Doe"}

	got := c.WithID(4242)

	assert.Equal(t, 4242, got.CustomerID)
	assert.Equal(t, "John Doe", got.CustomerName)
	assert.Equal(t, 1, c.CustomerID)
}

func TestSupplier_ID(t *testing.T) {
	var s Supplier
	_, ok := s.ID()
	assert.False(t, ok)

	s = s.WithID(7)
	id, ok := s.ID()
	assert.True(t, ok)
	assert.Equal(t, 7, id)
}

func TestSupplier_OmitsMissingID(t *testing.T) {
	body, err := json.Marshal(Supplier{SupplierName: "XYZ Corp", ContactEmail: "info@xyzcorp.com"})
	require.NoError(t, err)

	assert.JSONEq(t, `{"supplierName":"XYZ Corp","contactEmail":"info@xyzcorp.com"}`, string(body))
}

func TestNewAppBuildInfo_DefaultsToNotAvailable(t *testing.T) {
	info := NewAppBuildInfo("", "2026-10-19", "")

	assert.Equal(t, "N/A", info.BuildVersion())
	assert.Equal(t, "2026-10-19", info.BuildDate())
	assert.Equal(t, "N/A", info.BuildCommit())
	assert.Equal(t, "Build version: N/A\nBuild date: 2026-10-19\nBuild commit: N/A\n", info.String())
}

func TestCustomer_KeepsEmptyFields(t *testing.T) {
	body, err := json.Marshal(Customer{CustomerID: 1001})
	require.NoError(t, err)

	assert.JSONEq(t, `{"customerId":1001,"customerName":"","email":"","phoneNumber":""}`, string(body))
}
