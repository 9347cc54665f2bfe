package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, h.withSecureHeaders, withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Route("/api", func(r chi.Router) {
		r.Get("/version", h.getServerVersion)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.login)
			r.Post("/refresh-token", h.refreshToken)
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", h.listProducts)
			r.Get("/{id}", h.getProduct)
		})

		r.Route("/customer", h.customerRoutes)
		r.Route("/supplier", h.supplierRoutes)
	})

	// customer and supplier resources are also reachable without the /api prefix
	router.Route("/customer", h.customerRoutes)
	router.Route("/supplier", h.supplierRoutes)

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func (h *Handler) customerRoutes(r chi.Router) {
	r.Get("/", h.listCustomers)
	r.Get("/{id}", h.getCustomer)
	r.Post("/", h.createCustomer)
}

func (h *Handler) supplierRoutes(r chi.Router) {
	r.Get("/", h.listSuppliers)
	r.Get("/{id}", h.getSupplier)
	r.Post("/", h.createSupplier)
}
