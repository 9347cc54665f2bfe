package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-storefront-demo/internal/logger"
	"github.com/MKhiriev/go-storefront-demo/internal/utils"
	"github.com/MKhiriev/go-storefront-demo/models"
	"github.com/go-chi/chi/v5"
)

// decodeBody decodes the JSON request body into a new T.
// An empty body or a literal null yields a nil pointer and no error.
// The body must hold exactly one JSON value.
func decodeBody[T any](r *http.Request) (*T, error) {
	var payload *T
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(&payload); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	if err := dec.Decode(&json.RawMessage{}); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", ErrInvalidJSON, errTrailingData)
	}
	return payload, nil
}

// pathID reads the {id} URL parameter.
func pathID(r *http.Request) (int, error) {
	id, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidID, err)
	}
	return id, nil
}

// resourceLocation builds the Location of a created resource relative to
// the collection path the request was sent to.
func resourceLocation(r *http.Request, id int) string {
	return strings.TrimSuffix(r.URL.Path, "/") + "/" + strconv.Itoa(id)
}

// writeFailure answers with a failure envelope whose status is derived from
// err. Expected failures carry message; anything unmapped is reported as a
// plain 500 and logged as an error.
func writeFailure(w http.ResponseWriter, log *logger.Logger, err error, message string) {
	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		log.Err(err).Msg("unexpected error occurred")
		utils.WriteJSON(w, models.Fail(http.StatusText(status)), status)
		return
	}

	log.Warn().Err(err).Int("status", status).Msg(message)
	utils.WriteJSON(w, models.Fail(message), status)
}

func notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.Fail(http.StatusText(http.StatusNotFound)), http.StatusNotFound)
}
