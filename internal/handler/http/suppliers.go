package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-storefront-demo/internal/app"
	"github.com/MKhiriev/go-storefront-demo/internal/logger"
	"github.com/MKhiriev/go-storefront-demo/internal/utils"
	"github.com/MKhiriev/go-storefront-demo/models"
)

func (h *Handler) listSuppliers(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	suppliers, err := h.services.SupplierService.ListSuppliers(r.Context())
	if err != nil {
		writeFailure(w, log, err, app.MsgSuppliersNotListed)
		return
	}

	log.Info().Int("count", len(suppliers)).Msg("suppliers retrieved")
	utils.WriteJSON(w, models.OK(app.MsgSuppliersRetrieved, suppliers), http.StatusOK)
}

func (h *Handler) getSupplier(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := pathID(r)
	if err != nil {
		writeFailure(w, log, err, app.MsgInvalidSupplierID)
		return
	}

	log.Info().Int("supplier_id", id).Msg("supplier requested")

	supplier, err := h.services.SupplierService.GetSupplier(r.Context(), id)
	if err != nil {
		writeFailure(w, log, err, fmt.Sprintf(app.MsgSupplierNotFoundFmt, id))
		return
	}

	utils.WriteJSON(w, models.OK(fmt.Sprintf(app.MsgSupplierRetrievedFmt, id), supplier), http.StatusOK)
}

func (h *Handler) createSupplier(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	supplier, err := decodeBody[models.Supplier](r)
	if err != nil {
		log.Err(err).Msg("error parsing supplier request body")
		utils.WriteJSON(w, models.Fail(app.MsgBodyParseErrorPrefix+err.Error()), http.StatusBadRequest)
		return
	}
	if err = h.validator.Validate(ctx, supplier); err != nil {
		writeFailure(w, log, err, app.MsgInvalidSupplierBody)
		return
	}

	created, err := h.services.SupplierService.CreateSupplier(ctx, *supplier)
	if err != nil {
		writeFailure(w, log, err, app.MsgSupplierNotCreated)
		return
	}

	if id, ok := created.ID(); ok {
		w.Header().Set("Location", resourceLocation(r, id))
	}
	utils.WriteJSON(w, models.OK(app.MsgSupplierCreated, created), http.StatusCreated)
}
