package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"green-basket/internal/auth"
	"green-basket/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockProductService is a mock implementation of ProductService.
type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) GetAll(ctx context.Context, limit, offset int) ([]model.Product, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockProductService) GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductService) Create(ctx context.Context, req *model.ProductRequest) (*model.Product, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductService) Update(ctx context.Context, id uuid.UUID, update model.ProductUpdate) (*model.Product, error) {
	args := m.Called(ctx, id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

// withIdentity attaches an identity to the request context.
func withIdentity(r *http.Request, userID string, isAdmin bool) *http.Request {
	ctx := auth.WithIdentity(r.Context(), auth.Identity{UserID: userID, IsAdmin: isAdmin})
	return r.WithContext(ctx)
}

func TestProductHandler_GetAll(t *testing.T) {
	logger := zerolog.Nop()

	testProducts := []model.Product{
		{ID: uuid.New(), Name: "Fresh Tomatoes", Price: decimal.RequireFromString("2.99"), MinOrder: 5, InStock: true, CreatedAt: time.Now()},
		{ID: uuid.New(), Name: "Red Onions", Price: decimal.RequireFromString("1.99"), MinOrder: 3, InStock: true, CreatedAt: time.Now()},
	}

	mockService := new(MockProductService)
	mockService.On("GetAll", mock.Anything, 50, 0).Return(testProducts, nil)

	h := NewProductHandler(mockService, logger)

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	w := httptest.NewRecorder()

	h.GetAll(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var products []model.Product
	require.NoError(t, json.NewDecoder(w.Body).Decode(&products))
	assert.Len(t, products, 2)
	mockService.AssertExpectations(t)
}

func TestProductHandler_Create_RequiresAdmin(t *testing.T) {
	logger := zerolog.Nop()

	body := `{"name":"Bell Peppers","price":"3.99","minOrder":2,"inStock":true}`

	tests := []struct {
		name           string
		identity       bool
		isAdmin        bool
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "No identity",
			identity:       false,
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   model.ErrCodeUnauthorised,
		},
		{
			name:           "Non-admin user",
			identity:       true,
			isAdmin:        false,
			expectedStatus: http.StatusForbidden,
			expectedCode:   model.ErrCodeForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockProductService)
			h := NewProductHandler(mockService, logger)

			req := httptest.NewRequest(http.MethodPost, "/api/products", strings.NewReader(body))
			if tt.identity {
				req = withIdentity(req, "user-1", tt.isAdmin)
			}
			w := httptest.NewRecorder()

			h.Create(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var resp model.ErrorResponse
			require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
			assert.Equal(t, tt.expectedCode, resp.Error)
			mockService.AssertNotCalled(t, "Create")
		})
	}
}

func TestProductHandler_Create_Admin(t *testing.T) {
	logger := zerolog.Nop()

	created := &model.Product{
		ID:       uuid.New(),
		Name:     "Bell Peppers",
		Price:    decimal.RequireFromString("3.99"),
		MinOrder: 2,
		InStock:  true,
	}

	mockService := new(MockProductService)
	mockService.On("Create", mock.Anything, mock.AnythingOfType("*model.ProductRequest")).Return(created, nil)

	h := NewProductHandler(mockService, logger)

	body := `{"name":"Bell Peppers","price":"3.99","minOrder":2,"inStock":true}`
	req := withIdentity(httptest.NewRequest(http.MethodPost, "/api/products", strings.NewReader(body)), "admin-1", true)
	w := httptest.NewRecorder()

	h.Create(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockService.AssertExpectations(t)
}

func TestProductHandler_Update_DomainErrors(t *testing.T) {
	logger := zerolog.Nop()

	id := uuid.New()

	tests := []struct {
		name           string
		serviceErr     error
		expectedStatus int
	}{
		{name: "Product not found", serviceErr: model.ErrProductNotFound, expectedStatus: http.StatusNotFound},
		{name: "Invalid price", serviceErr: model.ErrInvalidPrice, expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockProductService)
			mockService.On("Update", mock.Anything, id, mock.AnythingOfType("model.ProductUpdate")).
				Return(nil, tt.serviceErr)

			h := NewProductHandler(mockService, logger)

			req := withIdentity(httptest.NewRequest(http.MethodPatch, "/api/products/"+id.String(), strings.NewReader(`{"price":"-1"}`)), "admin-1", true)
			req.SetPathValue("id", id.String())
			w := httptest.NewRecorder()

			h.Update(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestProductHandler_GetByID_NotFound(t *testing.T) {
	logger := zerolog.Nop()

	id := uuid.New()

	mockService := new(MockProductService)
	mockService.On("GetByID", mock.Anything, id).Return(nil, nil)

	h := NewProductHandler(mockService, logger)

	req := httptest.NewRequest(http.MethodGet, "/api/products/"+id.String(), nil)
	req.SetPathValue("id", id.String())
	w := httptest.NewRecorder()

	h.GetByID(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
