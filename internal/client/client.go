// Package client es el cliente HTTP de la API de commodities usado por el CLI.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jhoicas/commodities-api/internal/application/dto"
	"github.com/jhoicas/commodities-api/internal/domain"
)

// DefaultBaseURL API local por defecto.
const DefaultBaseURL = "http://localhost:8080"

// APIError respuesta de error de la API.
type APIError struct {
	Status  int
	Code    string
	Message string
	Field   string
}

func (e *APIError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s (%d): %s [%s]", e.Code, e.Status, e.Message, e.Field)
	}
	return fmt.Sprintf("%s (%d): %s", e.Code, e.Status, e.Message)
}

// Unwrap traduce el status al error de dominio equivalente para usar errors.Is.
func (e *APIError) Unwrap() error {
	switch e.Status {
	case http.StatusBadRequest:
		if e.Code == "MISSING_FIELD" {
			return domain.ErrMissingField
		}
		return domain.ErrInvalidInput
	case http.StatusUnauthorized:
		if e.Code == "INVALID_CREDENTIALS" {
			return domain.ErrInvalidCredentials
		}
		return domain.ErrUnauthorized
	case http.StatusForbidden:
		return domain.ErrForbidden
	case http.StatusNotFound:
		return domain.ErrNotFound
	}
	return nil
}

// Client cliente de la API. Seguro para uso concurrente.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configura el cliente.
type Option func(*Client)

// WithHTTPClient reemplaza el http.Client (tests, proxies).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// New construye el cliente contra baseURL (vacío = DefaultBaseURL).
func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ── Auth ──────────────────────────────────────────────────────────────────────

// Login POST /api/auth/login.
func (c *Client) Login(ctx context.Context, email, password string) (*dto.LoginResponse, error) {
	var out dto.LoginResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Email: email, Password: password}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Logout POST /api/auth/logout.
func (c *Client) Logout(ctx context.Context, token string) error {
	return c.do(ctx, http.MethodPost, "/api/auth/logout", token, nil, nil)
}

// Me GET /api/auth/me.
func (c *Client) Me(ctx context.Context, token string) (*dto.MeResponse, error) {
	var out dto.MeResponse
	if err := c.do(ctx, http.MethodGet, "/api/auth/me", token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ── Products ──────────────────────────────────────────────────────────────────

// ListProducts GET /api/products.
func (c *Client) ListProducts(ctx context.Context, token string) ([]dto.ProductResponse, error) {
	var out []dto.ProductResponse
	if err := c.do(ctx, http.MethodGet, "/api/products", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateProduct POST /api/products.
func (c *Client) CreateProduct(ctx context.Context, token string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	var out dto.ProductResponse
	if err := c.do(ctx, http.MethodPost, "/api/products", token, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProduct PUT /api/products?id=.
func (c *Client) UpdateProduct(ctx context.Context, token, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	var out dto.ProductResponse
	if err := c.do(ctx, http.MethodPut, "/api/products?id="+url.QueryEscape(id), token, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteProduct DELETE /api/products?id=.
func (c *Client) DeleteProduct(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/products?id="+url.QueryEscape(id), token, nil, nil)
}

// ── Dashboard ─────────────────────────────────────────────────────────────────

// DashboardSummary GET /api/dashboard/summary.
func (c *Client) DashboardSummary(ctx context.Context, token string) (*dto.DashboardSummaryDTO, error) {
	var out dto.DashboardSummaryDTO
	if err := c.do(ctx, http.MethodGet, "/api/dashboard/summary", token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Download GET de un recurso binario (reporte PDF, export XLSX).
func (c *Client) Download(ctx context.Context, token, path string) ([]byte, error) {
	resp, err := c.send(ctx, http.MethodGet, path, token, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	return io.ReadAll(resp.Body)
}

// ── Transporte ────────────────────────────────────────────────────────────────

func (c *Client) do(ctx context.Context, method, path, token string, in, out interface{}) error {
	resp, err := c.send(ctx, method, path, token, in)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("client: decodificar respuesta de %s: %w", path, err)
	}
	return nil
}

// send ejecuta la petición; un status >= 400 se convierte en *APIError.
func (c *Client) send(ctx context.Context, method, path, token string, in interface{}) (*http.Response, error) {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return nil, fmt.Errorf("client: serializar petición: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("client: crear petición: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("client: %s %s: %w", method, path, err)
	}
	if resp.StatusCode < http.StatusBadRequest {
		return resp, nil
	}
	defer resp.Body.Close()

	apiErr := &APIError{Status: resp.StatusCode}
	var er dto.ErrorResponse
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err := json.Unmarshal(raw, &er); err == nil && er.Code != "" {
		apiErr.Code, apiErr.Message, apiErr.Field = er.Code, er.Message, er.Field
	} else {
		apiErr.Code = http.StatusText(resp.StatusCode)
		apiErr.Message = strings.TrimSpace(string(raw))
	}
	return nil, apiErr
}

// IsAuthError indica si err exige volver a iniciar sesión.
func IsAuthError(err error) bool {
	return errors.Is(err, domain.ErrUnauthorized)
}
