package http

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-storefront-demo/internal/store"
	"github.com/MKhiriev/go-storefront-demo/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestListSuppliers(t *testing.T) {
	h, m := newMockedHandler(t)
	suppliers := []models.Supplier{models.Supplier{SupplierName: "ABC Supplies"}.WithID(1)}
	m.suppliers.EXPECT().ListSuppliers(gomock.Any()).Return(suppliers, nil)

	rec := serve(h, http.MethodGet, "/supplier", "")

	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "Suppliers retrieved successfully.", env.Message)
	assert.Equal(t, suppliers, decodeData[[]models.Supplier](t, env))
}

func TestGetSupplier(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		h, m := newMockedHandler(t)
		want := models.Supplier{SupplierName: "XYZ Corp", ContactEmail: "info@xyzcorp.com"}.WithID(2)
		m.suppliers.EXPECT().GetSupplier(gomock.Any(), 2).Return(want, nil)

		rec := serve(h, http.MethodGet, "/api/supplier/2", "")

		require.Equal(t, http.StatusOK, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.Equal(t, "Supplier 2 retrieved successfully.", env.Message)
		assert.Equal(t, want, decodeData[models.Supplier](t, env))
	})

	t.Run("not found", func(t *testing.T) {
		h, m := newMockedHandler(t)
		m.suppliers.EXPECT().GetSupplier(gomock.Any(), 7).
			Return(models.Supplier{}, fmt.Errorf("get supplier 7: %w", store.ErrSupplierNotFound))

		rec := serve(h, http.MethodGet, "/supplier/7", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Supplier with ID 7 not found.", decodeEnvelope(t, rec).Message)
	})

	t.Run("non-integer id", func(t *testing.T) {
		h, _ := newMockedHandler(t)

		rec := serve(h, http.MethodGet, "/supplier/2.5", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid supplier ID.", decodeEnvelope(t, rec).Message)
	})
}

func TestCreateSupplier(t *testing.T) {
	t.Run("created with generated id", func(t *testing.T) {
		h, m := newMockedHandler(t)
		m.suppliers.EXPECT().
			CreateSupplier(gomock.Any(), models.Supplier{SupplierName: "Fresh Co", ContactEmail: "hi@fresh.co"}).
			Return(models.Supplier{SupplierName: "Fresh Co", ContactEmail: "hi@fresh.co"}.WithID(5555), nil)

		rec := serve(h, http.MethodPost, "/supplier", `{"supplierName":"Fresh Co","contactEmail":"hi@fresh.co"}`)

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "/supplier/5555", rec.Header().Get("Location"))
		env := decodeEnvelope(t, rec)
		assert.Equal(t, "Supplier created successfully.", env.Message)
		id, ok := decodeData[models.Supplier](t, env).ID()
		require.True(t, ok)
		assert.Equal(t, 5555, id)
	})

	t.Run("null body", func(t *testing.T) {
		h, _ := newMockedHandler(t)

		rec := serve(h, http.MethodPost, "/api/supplier", "null")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid request body. Please provide a valid Supplier object.", decodeEnvelope(t, rec).Message)
	})

	t.Run("malformed JSON", func(t *testing.T) {
		h, _ := newMockedHandler(t)

		rec := serve(h, http.MethodPost, "/api/supplier", `[`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decodeEnvelope(t, rec).Message, "Error parsing request body: ")
	})
	for name, body := range map[string]string{
		"trailing junk": `{"supplierName":"a"} ]`,
		"two objects":   `{"supplierName":"a"}{"supplierName":"b"}`,
	} {
		t.Run(name, func(t *testing.T) {
			h, _ := newMockedHandler(t)

			rec := serve(h, http.MethodPost, "/supplier", body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Empty(t, rec.Header().Get("Location"))
			assert.Contains(t, decodeEnvelope(t, rec).Message, "Error parsing request body: ")
		})
	}
}
