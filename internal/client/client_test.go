package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/commodities-api/internal/application/dto"
	"github.com/jhoicas/commodities-api/internal/client"
	"github.com/jhoicas/commodities-api/internal/domain"
)

func newServer(t *testing.T, h http.HandlerFunc) *client.Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return client.New(srv.URL + "/")
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestLogin_OK(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/login", r.URL.Path)
		var in dto.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, "admin@commodities.com", in.Email)
		writeJSON(w, http.StatusOK, dto.LoginResponse{
			User:  dto.UserResponse{ID: "1", Email: in.Email, Role: "manager", Name: "Admin"},
			Token: "tok",
		})
	})

	out, err := c.Login(context.Background(), "admin@commodities.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, "tok", out.Token)
	assert.Equal(t, "manager", out.User.Role)
}

func TestLogin_CredencialesInvalidas_ErrorDeDominio(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, dto.ErrorResponse{Code: "INVALID_CREDENTIALS", Message: "Invalid email or password"})
	})

	_, err := c.Login(context.Background(), "a", "b")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	assert.False(t, client.IsAuthError(err))

	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "Invalid email or password", apiErr.Message)
}

func TestErrores_MapeoDeStatus(t *testing.T) {
	cases := []struct {
		status int
		code   string
		want   error
	}{
		{http.StatusBadRequest, "MISSING_FIELD", domain.ErrMissingField},
		{http.StatusBadRequest, "VALIDATION", domain.ErrInvalidInput},
		{http.StatusUnauthorized, "INVALID_TOKEN", domain.ErrUnauthorized},
		{http.StatusForbidden, "FORBIDDEN", domain.ErrForbidden},
		{http.StatusNotFound, "NOT_FOUND", domain.ErrNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.code, func(t *testing.T) {
			c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, tc.status, dto.ErrorResponse{Code: tc.code, Message: "x"})
			})
			_, err := c.ListProducts(context.Background(), "tok")
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestError500_SinCuerpoJSON(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	_, err := c.Me(context.Background(), "tok")

	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
	assert.Equal(t, "boom", apiErr.Message)
	assert.NoError(t, apiErr.Unwrap())
}

func TestUpdateYDelete_UsanQueryID(t *testing.T) {
	var (
		mu    sync.Mutex
		calls []string
	)
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		calls = append(calls, r.Method+" "+r.URL.Path+"?"+r.URL.RawQuery)
		mu.Unlock()
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		if r.Method == http.MethodDelete {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		var in dto.UpdateProductRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		require.NotNil(t, in.Price)
		assert.Nil(t, in.Quantity, "los campos ausentes no se envían")
		writeJSON(w, http.StatusOK, dto.ProductResponse{ID: "a b", Price: *in.Price})
	})

	price := decimal.NewFromInt(9)
	out, err := c.UpdateProduct(context.Background(), "tok", "a b", dto.UpdateProductRequest{Price: &price})
	require.NoError(t, err)
	assert.True(t, out.Price.Equal(price))

	require.NoError(t, c.DeleteProduct(context.Background(), "tok", "a b"))
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"PUT /api/products?id=a+b", "DELETE /api/products?id=a+b"}, calls)
}
