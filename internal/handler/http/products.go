package http

import (
	"net/http"

	"github.com/MKhiriev/go-storefront-demo/internal/app"
	"github.com/MKhiriev/go-storefront-demo/internal/logger"
	"github.com/MKhiriev/go-storefront-demo/internal/utils"
	"github.com/MKhiriev/go-storefront-demo/models"
)

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	products, err := h.services.ProductService.ListProducts(r.Context())
	if err != nil {
		writeFailure(w, log, err, app.MsgProductsNotListed)
		return
	}

	log.Info().Int("count", len(products)).Msg("products retrieved")
	utils.WriteJSON(w, models.OK("", products), http.StatusOK)
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := pathID(r)
	if err != nil {
		writeFailure(w, log, err, app.MsgInvalidProductID)
		return
	}

	product, err := h.services.ProductService.GetProduct(r.Context(), id)
	if err != nil {
		writeFailure(w, log, err, app.MsgProductNotFound)
		return
	}

	utils.WriteJSON(w, models.OK("", product), http.StatusOK)
}
