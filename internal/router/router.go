package router

import (
	"net/http"

	"green-basket/internal/auth"
	"green-basket/internal/handler"
	"green-basket/internal/middleware"

	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
func New(
	productHandler *handler.ProductHandler,
	landmarkHandler *handler.LandmarkHandler,
	cartHandler *handler.CartHandler,
	orderHandler *handler.OrderHandler,
	verifier *auth.Verifier,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint (no authentication required)
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	// Catalogue
	mux.HandleFunc("GET /api/products", productHandler.GetAll)
	mux.HandleFunc("GET /api/products/{id}", productHandler.GetByID)
	mux.HandleFunc("POST /api/products", productHandler.Create)
	mux.HandleFunc("PATCH /api/products/{id}", productHandler.Update)

	// Landmarks
	mux.HandleFunc("GET /api/landmarks", landmarkHandler.GetAll)
	mux.HandleFunc("POST /api/landmarks", landmarkHandler.Create)

	// Cart
	mux.HandleFunc("GET /api/cart", cartHandler.Get)
	mux.HandleFunc("DELETE /api/cart", cartHandler.Clear)
	mux.HandleFunc("POST /api/cart/items", cartHandler.AddLine)
	mux.HandleFunc("PUT /api/cart/items/{productId}", cartHandler.SetQuantity)
	mux.HandleFunc("DELETE /api/cart/items/{productId}", cartHandler.RemoveLine)

	// Orders
	mux.HandleFunc("POST /api/orders", orderHandler.Create)
	mux.HandleFunc("GET /api/orders", orderHandler.GetAll)
	mux.HandleFunc("GET /api/orders/{id}/items", orderHandler.GetItems)
	mux.HandleFunc("PATCH /api/orders/{id}/status", orderHandler.UpdateStatus)

	// Apply middleware in order: Recovery -> Logging -> CORS -> Authenticate
	var h http.Handler = mux
	h = middleware.Authenticate(verifier, logger)(h)
	h = middleware.CORS(h)
	h = middleware.Logging(logger)(h)
	h = middleware.Recovery(logger)(h)

	return h
}
