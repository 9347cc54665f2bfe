package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-storefront-demo/internal/service"
	"github.com/MKhiriev/go-storefront-demo/internal/store"
	"github.com/MKhiriev/go-storefront-demo/internal/validators"
)

var errorStatusMap = map[error]int{
	ErrInvalidJSON: http.StatusBadRequest,
	ErrInvalidID:   http.StatusBadRequest,

	service.ErrInvalidCredentials: http.StatusUnauthorized,
	service.ErrInvalidToken:       http.StatusBadRequest,

	validators.ErrEmptyBody:       http.StatusBadRequest,
	validators.ErrInvalidField:    http.StatusBadRequest,
	validators.ErrUnsupportedType: http.StatusBadRequest,

	store.ErrNotFound: http.StatusNotFound,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
