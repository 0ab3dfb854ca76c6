package integration

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"green-basket/internal/auth"
	"green-basket/internal/handler"
	"green-basket/internal/model"
	"green-basket/internal/repository"
	"green-basket/internal/router"
	"green-basket/internal/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testJWTSecret = "integration-test-secret"

func setupTestServer(t *testing.T, testDB *TestDB) http.Handler {
	t.Helper()

	logger := zerolog.Nop()

	productRepo := repository.NewProductRepository(testDB.Pool, logger)
	landmarkRepo := repository.NewLandmarkRepository(testDB.Pool, logger)
	cartRepo := repository.NewCartRepository(testDB.Pool, logger)
	orderRepo := repository.NewOrderRepository(testDB.Pool, logger)

	productService := service.NewProductService(productRepo, logger)
	landmarkService := service.NewLandmarkService(landmarkRepo, logger)
	cartService := service.NewCartService(cartRepo, productRepo, logger)
	orderService := service.NewOrderService(orderRepo, cartRepo, landmarkRepo, logger)

	productHandler := handler.NewProductHandler(productService, logger)
	landmarkHandler := handler.NewLandmarkHandler(landmarkService, logger)
	cartHandler := handler.NewCartHandler(cartService, logger)
	orderHandler := handler.NewOrderHandler(orderService, logger)

	verifier := auth.NewVerifier(testJWTSecret)

	return router.New(productHandler, landmarkHandler, cartHandler, orderHandler, verifier, logger)
}

func bearerToken(t *testing.T, sub string, admin bool) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   sub,
		"admin": admin,
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	raw, err := token.SignedString([]byte(testJWTSecret))
	require.NoError(t, err)
	return "Bearer " + raw
}

func doRequest(t *testing.T, server http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	server.ServeHTTP(w, req)
	return w
}

func TestCheckoutFlow_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	server := setupTestServer(t, testDB)
	userToken := bearerToken(t, "user-1", false)

	t.Run("Full checkout produces an order and empties the cart", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		c := SeedCatalogue(t, testDB.Pool)

		w := doRequest(t, server, http.MethodPost, "/api/cart/items", userToken,
			fmt.Sprintf(`{"productId":%q,"quantity":5}`, c.Tomatoes.ID))
		require.Equal(t, http.StatusNoContent, w.Code)

		w = doRequest(t, server, http.MethodPost, "/api/cart/items", userToken,
			fmt.Sprintf(`{"productId":%q,"quantity":3}`, c.Onions.ID))
		require.Equal(t, http.StatusNoContent, w.Code)

		w = doRequest(t, server, http.MethodPost, "/api/orders", userToken,
			fmt.Sprintf(`{"landmarkId":%q,"address":"123 Main St","deliveryMode":"delivery"}`, c.Downtown.ID))
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var order model.Order
		require.NoError(t, json.NewDecoder(w.Body).Decode(&order))
		// 5 x 2.99 + 3 x 1.99 + 5.00 delivery = 25.92
		assert.True(t, order.Total.Equal(decimal.RequireFromString("25.92")),
			"expected total 25.92, got %s", order.Total)
		assert.Equal(t, model.OrderStatusPending, order.Status)

		w = doRequest(t, server, http.MethodGet, "/api/cart", userToken, "")
		require.Equal(t, http.StatusOK, w.Code)
		var cart model.Cart
		require.NoError(t, json.NewDecoder(w.Body).Decode(&cart))
		assert.Empty(t, cart.Lines)
		assert.True(t, cart.Total.IsZero())

		w = doRequest(t, server, http.MethodGet, "/api/orders/"+order.ID.String()+"/items", userToken, "")
		require.Equal(t, http.StatusOK, w.Code)
		var items []model.OrderItem
		require.NoError(t, json.NewDecoder(w.Body).Decode(&items))
		assert.Len(t, items, 2)
	})

	t.Run("Order item prices are frozen against later catalogue changes", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		c := SeedCatalogue(t, testDB.Pool)
		adminToken := bearerToken(t, "admin-1", true)

		w := doRequest(t, server, http.MethodPost, "/api/cart/items", userToken,
			fmt.Sprintf(`{"productId":%q,"quantity":5}`, c.Tomatoes.ID))
		require.Equal(t, http.StatusNoContent, w.Code)

		w = doRequest(t, server, http.MethodPost, "/api/orders", userToken,
			fmt.Sprintf(`{"landmarkId":%q,"address":"123 Main St","deliveryMode":"delivery"}`, c.Downtown.ID))
		require.Equal(t, http.StatusCreated, w.Code)
		var order model.Order
		require.NoError(t, json.NewDecoder(w.Body).Decode(&order))

		w = doRequest(t, server, http.MethodPatch, "/api/products/"+c.Tomatoes.ID.String(), adminToken,
			`{"price":"9.99"}`)
		require.Equal(t, http.StatusOK, w.Code)

		w = doRequest(t, server, http.MethodGet, "/api/orders/"+order.ID.String()+"/items", userToken, "")
		require.Equal(t, http.StatusOK, w.Code)
		var items []model.OrderItem
		require.NoError(t, json.NewDecoder(w.Body).Decode(&items))
		require.Len(t, items, 1)
		assert.True(t, items[0].Price.Equal(decimal.RequireFromString("2.99")),
			"expected snapshot price 2.99, got %s", items[0].Price)
	})

	t.Run("Empty cart cannot be checked out", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		c := SeedCatalogue(t, testDB.Pool)

		w := doRequest(t, server, http.MethodPost, "/api/orders", userToken,
			fmt.Sprintf(`{"landmarkId":%q,"address":"123 Main St","deliveryMode":"delivery"}`, c.Downtown.ID))
		require.Equal(t, http.StatusBadRequest, w.Code)

		var resp model.ErrorResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, model.ErrCodeEmptyCart, resp.Error)
	})

	t.Run("Out-of-stock product aborts the whole checkout", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		c := SeedCatalogue(t, testDB.Pool)

		w := doRequest(t, server, http.MethodPost, "/api/cart/items", userToken,
			fmt.Sprintf(`{"productId":%q,"quantity":5}`, c.Tomatoes.ID))
		require.Equal(t, http.StatusNoContent, w.Code)

		// The product goes out of stock after it entered the cart.
		_, err := testDB.Pool.Exec(context.Background(),
			"UPDATE products SET in_stock = FALSE WHERE id = $1", c.Tomatoes.ID)
		require.NoError(t, err)

		w = doRequest(t, server, http.MethodPost, "/api/orders", userToken,
			fmt.Sprintf(`{"landmarkId":%q,"address":"123 Main St","deliveryMode":"delivery"}`, c.Downtown.ID))
		require.Equal(t, http.StatusBadRequest, w.Code)

		var resp model.ErrorResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, model.ErrCodeProductUnavailable, resp.Error)

		w = doRequest(t, server, http.MethodGet, "/api/orders", userToken, "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())

		w = doRequest(t, server, http.MethodGet, "/api/cart", userToken, "")
		require.Equal(t, http.StatusOK, w.Code)
		var cart model.Cart
		require.NoError(t, json.NewDecoder(w.Body).Decode(&cart))
		assert.Len(t, cart.Lines, 1)
	})

	t.Run("Adding below the minimum order is rejected", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		c := SeedCatalogue(t, testDB.Pool)

		w := doRequest(t, server, http.MethodPost, "/api/cart/items", userToken,
			fmt.Sprintf(`{"productId":%q,"quantity":2}`, c.Tomatoes.ID))
		require.Equal(t, http.StatusBadRequest, w.Code)

		var resp model.ErrorResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, model.ErrCodeQuantityBelowMinimum, resp.Error)

		w = doRequest(t, server, http.MethodGet, "/api/cart", userToken, "")
		require.Equal(t, http.StatusOK, w.Code)
		var cart model.Cart
		require.NoError(t, json.NewDecoder(w.Body).Decode(&cart))
		assert.Empty(t, cart.Lines)
	})

	t.Run("Order history is scoped per user", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		c := SeedCatalogue(t, testDB.Pool)
		otherToken := bearerToken(t, "user-2", false)

		w := doRequest(t, server, http.MethodPost, "/api/cart/items", userToken,
			fmt.Sprintf(`{"productId":%q,"quantity":5}`, c.Tomatoes.ID))
		require.Equal(t, http.StatusNoContent, w.Code)

		w = doRequest(t, server, http.MethodPost, "/api/orders", userToken,
			fmt.Sprintf(`{"landmarkId":%q,"address":"123 Main St","deliveryMode":"pickup"}`, c.Downtown.ID))
		require.Equal(t, http.StatusCreated, w.Code)
		var order model.Order
		require.NoError(t, json.NewDecoder(w.Body).Decode(&order))

		w = doRequest(t, server, http.MethodGet, "/api/orders", otherToken, "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())

		w = doRequest(t, server, http.MethodGet, "/api/orders/"+order.ID.String()+"/items", otherToken, "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestAPIAuthorization_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	server := setupTestServer(t, testDB)

	t.Run("Catalogue is publicly readable", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		SeedCatalogue(t, testDB.Pool)

		w := doRequest(t, server, http.MethodGet, "/api/products", "", "")
		assert.Equal(t, http.StatusOK, w.Code)

		w = doRequest(t, server, http.MethodGet, "/api/landmarks", "", "")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Cart requires authentication", func(t *testing.T) {
		w := doRequest(t, server, http.MethodGet, "/api/cart", "", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Catalogue writes require admin", func(t *testing.T) {
		userToken := bearerToken(t, "user-1", false)

		w := doRequest(t, server, http.MethodPost, "/api/products", userToken,
			`{"name":"Cucumbers","price":"1.49","minOrder":4,"inStock":true}`)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("Admin can manage the catalogue and order statuses", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		SeedCatalogue(t, testDB.Pool)
		adminToken := bearerToken(t, "admin-1", true)

		w := doRequest(t, server, http.MethodPost, "/api/products", adminToken,
			`{"name":"Cucumbers","price":"1.49","minOrder":4,"inStock":true}`)
		require.Equal(t, http.StatusCreated, w.Code)

		w = doRequest(t, server, http.MethodPost, "/api/landmarks", adminToken,
			`{"name":"Harbour","deliveryFee":"4.50"}`)
		require.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("Tampered token is rejected", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"sub":   "user-1",
			"admin": true,
		})
		raw, err := token.SignedString([]byte("wrong-secret"))
		require.NoError(t, err)

		w := doRequest(t, server, http.MethodGet, "/api/cart", "Bearer "+raw, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Health endpoint is open", func(t *testing.T) {
		w := doRequest(t, server, http.MethodGet, "/health", "", "")
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
