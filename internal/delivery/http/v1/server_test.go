package v1

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"

	"rajaprint-backend/config"
	"rajaprint-backend/internal/delivery/http/middleware"
	"rajaprint-backend/internal/domain"
	memcache "rajaprint-backend/internal/infrastructure/cache"
	"rajaprint-backend/internal/usecase"
	"rajaprint-backend/pkg/utils"
)

const (
	cardsID  = "0b1a3f52-6a6e-4f0f-9a55-0d5b2a8c7e11"
	bannerID = "5d7e2c90-1f4b-4c1e-8a2d-7b9c0e3f4a22"
)

type testEnv struct {
	mux   *http.ServeMux
	store *memStore
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Meta    json.RawMessage `json:"meta"`
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	utils.SetSecret("handler-secret")

	store := newMemStore()
	store.addZone(domain.ShippingZone{
		Name: "Lahore Metro", Cities: []string{"Lahore"}, Country: "Pakistan",
		BasePrice: 200, BaseWeightKg: 1, PricePerExtraKg: 50,
		DeliveryTimeMin: 1, DeliveryTimeMax: 2, IsActive: true, Priority: 1,
	})
	store.addProduct(domain.Product{ID: cardsID, Name: "Business Cards", Price: 500, WeightKg: 0.6, Stock: 50, IsActive: true})
	store.addProduct(domain.Product{ID: bannerID, Name: "Vinyl Banner", Price: 1500, Stock: 5, IsActive: true})

	cfg := &config.Config{
		FuzzyThreshold:  0.8,
		CacheZoneTTL:    time.Minute,
		CacheEnumsTTL:   time.Hour,
		MaxCartQuantity: 100,
	}
	c := memcache.NewMemoryCache(time.Minute, time.Minute)

	shippingUC := usecase.NewShippingUsecase(memZones{store}, memProducts{store}, memOrders{store}, inlineTx{}, c, cfg)
	orderUC := usecase.NewOrderUsecase(memOrders{store}, memProducts{store}, shippingUC, inlineTx{})

	shippingHandler := NewShippingHandler(shippingUC)
	adminShippingHandler := NewAdminShippingHandler(shippingUC)
	configHandler := NewConfigHandler(shippingUC, cfg.CacheEnumsTTL)
	orderHandler := NewOrderHandler(orderUC)
	adminOrderHandler := NewAdminOrderHandler(orderUC)

	admin := func(h http.HandlerFunc) http.Handler {
		return middleware.AuthMiddleware(middleware.AdminMiddleware(h))
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/shipping/calculate", shippingHandler.Calculate)
	mux.HandleFunc("GET /api/v1/shipping/check-availability", shippingHandler.CheckAvailability)
	mux.HandleFunc("GET /api/v1/config/enums", configHandler.GetEnums)
	mux.Handle("POST /api/v1/orders", middleware.OptionalAuth(http.HandlerFunc(orderHandler.PlaceOrder)))

	mux.Handle("GET /api/v1/admin/shipping/zones", admin(adminShippingHandler.ListZones))
	mux.Handle("POST /api/v1/admin/shipping/zones", admin(adminShippingHandler.CreateZone))
	mux.Handle("GET /api/v1/admin/shipping/zones/{id}", admin(adminShippingHandler.GetZone))
	mux.Handle("PUT /api/v1/admin/shipping/zones/{id}", admin(adminShippingHandler.UpdateZone))
	mux.Handle("DELETE /api/v1/admin/shipping/zones/{id}", admin(adminShippingHandler.DeleteZone))
	mux.Handle("PATCH /api/v1/admin/shipping/zones/{id}/toggle", admin(adminShippingHandler.ToggleZone))
	mux.Handle("PATCH /api/v1/admin/shipping/zones/{id}/default", admin(adminShippingHandler.SetDefaultZone))

	mux.Handle("GET /api/v1/admin/orders", admin(adminOrderHandler.ListOrders))
	mux.Handle("GET /api/v1/admin/orders/{id}", admin(adminOrderHandler.GetOrder))
	mux.Handle("GET /api/v1/admin/orders/{id}/history", admin(adminOrderHandler.GetHistory))
	mux.Handle("PATCH /api/v1/admin/orders/{id}/status", admin(adminOrderHandler.UpdateStatus))

	return &testEnv{mux: mux, store: store}
}

func (e *testEnv) token(t *testing.T, role string) string {
	t.Helper()
	token, err := utils.GenerateJWT("9f8e7d6c-5b4a-4321-8765-432109876543", role+"@rajaprint.pk", role, time.Minute)
	require.NoError(t, err)
	return token
}

// do sends body (marshalled unless nil) and decodes the envelope.
func (e *testEnv) do(t *testing.T, method, path, token string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.mux.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return rec, env
}

func decodeData[T any](t *testing.T, env envelope) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(env.Data, &v))
	return v
}
