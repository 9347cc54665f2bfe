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

// ─────────────────────────────────────────────
// GET /customer, /api/customer
// ─────────────────────────────────────────────

func TestListCustomers_BothMounts(t *testing.T) {
	customers := []models.Customer{{CustomerID: 1, CustomerName: "John Doe"}}

	for _, path := range []string{"/customer", "/api/customer", "/api/customer/"} {
		t.Run(path, func(t *testing.T) {
			h, m := newMockedHandler(t)
			m.customers.EXPECT().ListCustomers(gomock.Any()).Return(customers, nil)

			rec := serve(h, http.MethodGet, path, "")

			require.Equal(t, http.StatusOK, rec.Code)
			env := decodeEnvelope(t, rec)
			assert.True(t, env.Success)
			assert.Equal(t, "Customers retrieved successfully.", env.Message)
			assert.Equal(t, customers, decodeData[[]models.Customer](t, env))
		})
	}
}

// ─────────────────────────────────────────────
// GET /customer/{id}
// ─────────────────────────────────────────────

func TestGetCustomer(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		h, m := newMockedHandler(t)
		want := models.Customer{CustomerID: 2, CustomerName: "Jane Smith", Email: "jane.smith@email.com"}
		m.customers.EXPECT().GetCustomer(gomock.Any(), 2).Return(want, nil)

		rec := serve(h, http.MethodGet, "/customer/2", "")

		require.Equal(t, http.StatusOK, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.Equal(t, "Customer 2 retrieved successfully.", env.Message)
		assert.Equal(t, want, decodeData[models.Customer](t, env))
	})

	t.Run("not found", func(t *testing.T) {
		h, m := newMockedHandler(t)
		m.customers.EXPECT().GetCustomer(gomock.Any(), 42).
			Return(models.Customer{}, fmt.Errorf("get customer 42: %w", store.ErrCustomerNotFound))

		rec := serve(h, http.MethodGet, "/api/customer/42", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.False(t, env.Success)
		assert.Equal(t, "Customer with ID 42 not found.", env.Message)
	})

	t.Run("non-integer id", func(t *testing.T) {
		h, _ := newMockedHandler(t)

		rec := serve(h, http.MethodGet, "/customer/one", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.False(t, env.Success)
		assert.Equal(t, "Invalid customer ID.", env.Message)
	})
}

// ─────────────────────────────────────────────
// POST /customer
// ─────────────────────────────────────────────

func TestCreateCustomer(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		h, m := newMockedHandler(t)
		m.customers.EXPECT().
			CreateCustomer(gomock.Any(), models.Customer{CustomerName: "New Buyer", Email: "new@email.com"}).
			Return(models.Customer{CustomerID: 4242, CustomerName: "New Buyer", Email: "new@email.com"}, nil)

		rec := serve(h, http.MethodPost, "/api/customer", `{"customerName":"New Buyer","email":"new@email.com"}`)

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "/api/customer/4242", rec.Header().Get("Location"))
		env := decodeEnvelope(t, rec)
		assert.True(t, env.Success)
		assert.Equal(t, "Customer created successfully.", env.Message)
		assert.Equal(t, 4242, decodeData[models.Customer](t, env).CustomerID)
	})

	t.Run("location follows mount", func(t *testing.T) {
		h, m := newMockedHandler(t)
		m.customers.EXPECT().CreateCustomer(gomock.Any(), gomock.Any()).
			Return(models.Customer{CustomerID: 1001}, nil)

		rec := serve(h, http.MethodPost, "/customer", `{}`)

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "/customer/1001", rec.Header().Get("Location"))
	})

	for name, body := range map[string]string{"empty body": "", "null body": "null"} {
		t.Run(name, func(t *testing.T) {
			h, _ := newMockedHandler(t)

			rec := serve(h, http.MethodPost, "/customer", body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "Invalid request body. Please provide a valid Customer object.", decodeEnvelope(t, rec).Message)
		})
	}

	t.Run("malformed JSON", func(t *testing.T) {
		h, _ := newMockedHandler(t)

		rec := serve(h, http.MethodPost, "/customer", `{"customerName":`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.False(t, env.Success)
		assert.Contains(t, env.Message, "Error parsing request body: ")
	})

	for name, body := range map[string]string{
		"trailing junk": `{"customerName":"x"} not-json`,
		"two objects":   `{"customerName":"a"}{"customerName":"b"}`,
	} {
		t.Run(name, func(t *testing.T) {
			h, _ := newMockedHandler(t)

			rec := serve(h, http.MethodPost, "/customer", body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Empty(t, rec.Header().Get("Location"))
			assert.Contains(t, decodeEnvelope(t, rec).Message, "Error parsing request body: ")
		})
	}

	t.Run("wrong field type", func(t *testing.T) {
		h, _ := newMockedHandler(t)

		rec := serve(h, http.MethodPost, "/customer", `{"customerId":"abc"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decodeEnvelope(t, rec).Message, "Error parsing request body: ")
	})
}
