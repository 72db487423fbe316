package utils

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rajaprint-backend/internal/domain"
)

func TestJWT_RoundTrip(t *testing.T) {
	SetSecret("test-secret")

	token, err := GenerateJWT("u-1", "admin@example.com", "admin", time.Minute)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	claims, err := ExtractClaims(req)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, "admin@example.com", claims.Email)
	assert.Equal(t, "admin", claims.Role)
}

func TestJWT_CookieAndRejections(t *testing.T) {
	SetSecret("test-secret")

	token, err := GenerateJWT("u-2", "c@example.com", "customer", time.Minute)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "accessToken", Value: token})
	claims, err := ExtractClaims(req)
	require.NoError(t, err)
	assert.Equal(t, "u-2", claims.UserID)

	_, err = ExtractClaims(httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Error(t, err)

	expired, err := GenerateJWT("u-3", "e@example.com", "admin", -time.Minute)
	require.NoError(t, err)
	_, err = ValidateJWT(expired)
	assert.Error(t, err)

	SetSecret("other-secret")
	_, err = ValidateJWT(token)
	assert.Error(t, err)
}

func TestWriteError_Envelope(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, http.StatusBadRequest, "City and country are required")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp domain.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "City and country are required", resp.Message)
}

func TestDecodeJSON(t *testing.T) {
	var v struct {
		City string `json:"city"`
	}
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"city":"Lahore"}`))
	require.NoError(t, DecodeJSON(req, &v))
	assert.Equal(t, "Lahore", v.City)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"city":`))
	assert.Error(t, DecodeJSON(req, &v))
}

func TestRoundMoney(t *testing.T) {
	assert.Equal(t, 10.13, RoundMoney(10.125))
	assert.Equal(t, 1250.0, RoundMoney(1250))
	assert.Equal(t, 0.3, RoundMoney(0.1+0.2))
}

func TestParseInt(t *testing.T) {
	assert.Equal(t, 5, ParseInt("5", 1))
	assert.Equal(t, 1, ParseInt("", 1))
	assert.Equal(t, 1, ParseInt("x", 1))
}
