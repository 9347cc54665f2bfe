package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-storefront-demo/internal/app"
	"github.com/MKhiriev/go-storefront-demo/internal/logger"
	"github.com/MKhiriev/go-storefront-demo/internal/utils"
	"github.com/MKhiriev/go-storefront-demo/models"
)

func (h *Handler) listCustomers(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	customers, err := h.services.CustomerService.ListCustomers(r.Context())
	if err != nil {
		writeFailure(w, log, err, app.MsgCustomersNotListed)
		return
	}

	log.Info().Int("count", len(customers)).Msg("customers retrieved")
	utils.WriteJSON(w, models.OK(app.MsgCustomersRetrieved, customers), http.StatusOK)
}

func (h *Handler) getCustomer(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := pathID(r)
	if err != nil {
		writeFailure(w, log, err, app.MsgInvalidCustomerID)
		return
	}

	log.Info().Int("customer_id", id).Msg("customer requested")

	customer, err := h.services.CustomerService.GetCustomer(r.Context(), id)
	if err != nil {
		writeFailure(w, log, err, fmt.Sprintf(app.MsgCustomerNotFoundFmt, id))
		return
	}

	utils.WriteJSON(w, models.OK(fmt.Sprintf(app.MsgCustomerRetrievedFmt, id), customer), http.StatusOK)
}

func (h *Handler) createCustomer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	customer, err := decodeBody[models.Customer](r)
	if err != nil {
		log.Err(err).Msg("error parsing customer request body")
		utils.WriteJSON(w, models.Fail(app.MsgBodyParseErrorPrefix+err.Error()), http.StatusBadRequest)
		return
	}
	if err = h.validator.Validate(ctx, customer); err != nil {
		writeFailure(w, log, err, app.MsgInvalidCustomerBody)
		return
	}

	created, err := h.services.CustomerService.CreateCustomer(ctx, *customer)
	if err != nil {
		writeFailure(w, log, err, app.MsgCustomerNotCreated)
		return
	}

	w.Header().Set("Location", resourceLocation(r, created.CustomerID))
	utils.WriteJSON(w, models.OK(app.MsgCustomerCreated, created), http.StatusCreated)
}
