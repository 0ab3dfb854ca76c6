package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"green-basket/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockCartService is a mock implementation of CartService.
type MockCartService struct {
	mock.Mock
}

func (m *MockCartService) Get(ctx context.Context, userID string) (*model.Cart, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Cart), args.Error(1)
}

func (m *MockCartService) AddLine(ctx context.Context, userID string, productID uuid.UUID, quantity int) error {
	args := m.Called(ctx, userID, productID, quantity)
	return args.Error(0)
}

func (m *MockCartService) SetQuantity(ctx context.Context, userID string, productID uuid.UUID, quantity int) error {
	args := m.Called(ctx, userID, productID, quantity)
	return args.Error(0)
}

func (m *MockCartService) RemoveLine(ctx context.Context, userID string, productID uuid.UUID) error {
	args := m.Called(ctx, userID, productID)
	return args.Error(0)
}

func (m *MockCartService) Clear(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func TestCartHandler_Get_RequiresIdentity(t *testing.T) {
	logger := zerolog.Nop()

	mockService := new(MockCartService)
	h := NewCartHandler(mockService, logger)

	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	w := httptest.NewRecorder()

	h.Get(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var resp model.ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, model.ErrCodeUnauthorised, resp.Error)
	mockService.AssertNotCalled(t, "Get")
}

func TestCartHandler_Get(t *testing.T) {
	logger := zerolog.Nop()

	cart := &model.Cart{
		Lines: []model.CartLine{
			{ProductID: uuid.New(), Quantity: 5},
		},
		Total: decimal.RequireFromString("14.95"),
	}

	mockService := new(MockCartService)
	mockService.On("Get", mock.Anything, "user-1").Return(cart, nil)

	h := NewCartHandler(mockService, logger)

	req := withIdentity(httptest.NewRequest(http.MethodGet, "/api/cart", nil), "user-1", false)
	w := httptest.NewRecorder()

	h.Get(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var got model.Cart
	require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
	assert.Len(t, got.Lines, 1)
	assert.True(t, got.Total.Equal(cart.Total))
	mockService.AssertExpectations(t)
}

func TestCartHandler_AddLine(t *testing.T) {
	logger := zerolog.Nop()

	productID := uuid.New()

	tests := []struct {
		name           string
		quantity       int
		serviceErr     error
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "Success",
			quantity:       5,
			expectedStatus: http.StatusNoContent,
		},
		{
			name:           "Below minimum order",
			quantity:       2,
			serviceErr:     model.ErrQuantityBelowMinimum,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   model.ErrCodeQuantityBelowMinimum,
		},
		{
			name:           "Out of stock",
			quantity:       5,
			serviceErr:     model.ErrProductUnavailable,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   model.ErrCodeProductUnavailable,
		},
		{
			name:           "Unknown product",
			quantity:       5,
			serviceErr:     model.ErrProductNotFound,
			expectedStatus: http.StatusNotFound,
			expectedCode:   model.ErrCodeProductNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockCartService)
			mockService.On("AddLine", mock.Anything, "user-1", productID, tt.quantity).Return(tt.serviceErr)

			h := NewCartHandler(mockService, logger)

			body := fmt.Sprintf(`{"productId":%q,"quantity":%d}`, productID, tt.quantity)
			req := withIdentity(httptest.NewRequest(http.MethodPost, "/api/cart/items", strings.NewReader(body)), "user-1", false)
			w := httptest.NewRecorder()

			h.AddLine(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedCode != "" {
				var resp model.ErrorResponse
				require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.Equal(t, tt.expectedCode, resp.Error)
			}
			mockService.AssertExpectations(t)
		})
	}
}

func TestCartHandler_SetQuantity_InvalidProductID(t *testing.T) {
	logger := zerolog.Nop()

	mockService := new(MockCartService)
	h := NewCartHandler(mockService, logger)

	req := withIdentity(httptest.NewRequest(http.MethodPut, "/api/cart/items/not-a-uuid", strings.NewReader(`{"quantity":3}`)), "user-1", false)
	req.SetPathValue("productId", "not-a-uuid")
	w := httptest.NewRecorder()

	h.SetQuantity(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "SetQuantity")
}

func TestCartHandler_RemoveLine(t *testing.T) {
	logger := zerolog.Nop()

	productID := uuid.New()

	mockService := new(MockCartService)
	mockService.On("RemoveLine", mock.Anything, "user-1", productID).Return(nil)

	h := NewCartHandler(mockService, logger)

	req := withIdentity(httptest.NewRequest(http.MethodDelete, "/api/cart/items/"+productID.String(), nil), "user-1", false)
	req.SetPathValue("productId", productID.String())
	w := httptest.NewRecorder()

	h.RemoveLine(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	mockService.AssertExpectations(t)
}

func TestCartHandler_Clear(t *testing.T) {
	logger := zerolog.Nop()

	mockService := new(MockCartService)
	mockService.On("Clear", mock.Anything, "user-1").Return(nil)

	h := NewCartHandler(mockService, logger)

	req := withIdentity(httptest.NewRequest(http.MethodDelete, "/api/cart", nil), "user-1", false)
	w := httptest.NewRecorder()

	h.Clear(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	mockService.AssertExpectations(t)
}
