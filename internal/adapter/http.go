package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/go-storefront-demo/internal/config"
	"github.com/MKhiriev/go-storefront-demo/internal/logger"
	"github.com/MKhiriev/go-storefront-demo/internal/utils"
	"github.com/MKhiriev/go-storefront-demo/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the REST implementation of [ServerAdapter].
// A scheme-less cfg.ServerAddress defaults to http.
func NewHTTPServerAdapter(cfg config.ClientConfig, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.ServerAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) Login(ctx context.Context, credentials models.LoginRequest) (models.TokenResponse, error) {
	token, err := call[models.TokenResponse](ctx, h.client, http.MethodPost, "/api/auth/login", credentials)
	if err != nil {
		return models.TokenResponse{}, fmt.Errorf("login: %w", err)
	}

	h.SetToken(token.Token)
	h.logger.Debug().Str("username", credentials.Username).Msg("logged in")
	return token, nil
}

func (h *httpServerAdapter) RefreshToken(ctx context.Context) (models.TokenResponse, error) {
	request := models.RefreshTokenRequest{Token: h.Token()}

	token, err := call[models.TokenResponse](ctx, h.client, http.MethodPost, "/api/auth/refresh-token", request)
	if err != nil {
		return models.TokenResponse{}, fmt.Errorf("refresh token: %w", err)
	}

	h.SetToken(token.Token)
	return token, nil
}

func (h *httpServerAdapter) ListProducts(ctx context.Context) ([]models.Product, error) {
	return call[[]models.Product](ctx, h.client, http.MethodGet, "/api/products", nil)
}

func (h *httpServerAdapter) GetProduct(ctx context.Context, id int) (models.Product, error) {
	return call[models.Product](ctx, h.client, http.MethodGet, "/api/products/"+strconv.Itoa(id), nil)
}

func (h *httpServerAdapter) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	return call[[]models.Customer](ctx, h.client, http.MethodGet, "/api/customer", nil)
}

func (h *httpServerAdapter) GetCustomer(ctx context.Context, id int) (models.Customer, error) {
	return call[models.Customer](ctx, h.client, http.MethodGet, "/api/customer/"+strconv.Itoa(id), nil)
}

func (h *httpServerAdapter) CreateCustomer(ctx context.Context, customer models.Customer) (models.Customer, error) {
	return call[models.Customer](ctx, h.client, http.MethodPost, "/api/customer", customer)
}

func (h *httpServerAdapter) ListSuppliers(ctx context.Context) ([]models.Supplier, error) {
	return call[[]models.Supplier](ctx, h.client, http.MethodGet, "/api/supplier", nil)
}

func (h *httpServerAdapter) GetSupplier(ctx context.Context, id int) (models.Supplier, error) {
	return call[models.Supplier](ctx, h.client, http.MethodGet, "/api/supplier/"+strconv.Itoa(id), nil)
}

func (h *httpServerAdapter) CreateSupplier(ctx context.Context, supplier models.Supplier) (models.Supplier, error) {
	return call[models.Supplier](ctx, h.client, http.MethodPost, "/api/supplier", supplier)
}

func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp, ""); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

// envelope is the typed form of [models.Response] used for decoding.
type envelope[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

// call performs one JSON request and unwraps the response envelope.
func call[T any](ctx context.Context, client *utils.HTTPClient, method, path string, body any) (T, error) {
	var (
		result  envelope[T]
		failure models.Response
	)

	req := client.R().
		SetContext(ctx).
		SetResult(&result).
		SetError(&failure)
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return result.Data, fmt.Errorf("%s %s request: %w", method, path, err)
	}
	if err = mapHTTPError(resp, failure.Message); err != nil {
		return result.Data, err
	}
	if !result.Success {
		return result.Data, fmt.Errorf("%w: %s", ErrUnsuccessful, result.Message)
	}

	return result.Data, nil
}
