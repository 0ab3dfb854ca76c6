package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON          = "INVALID_JSON"
	ErrCodeQuantityBelowMinimum = "QUANTITY_BELOW_MINIMUM"
	ErrCodeProductUnavailable   = "PRODUCT_UNAVAILABLE"
	ErrCodeEmptyCart            = "EMPTY_CART"
	ErrCodeLandmarkNotFound     = "LANDMARK_NOT_FOUND"
	ErrCodeMissingAddress       = "MISSING_ADDRESS"
	ErrCodeInvalidDeliveryMode  = "INVALID_DELIVERY_MODE"
	ErrCodeProductNotFound      = "PRODUCT_NOT_FOUND"
	ErrCodeOrderNotFound        = "ORDER_NOT_FOUND"
	ErrCodeInvalidPrice         = "INVALID_PRICE"
	ErrCodeInvalidMinOrder      = "INVALID_MIN_ORDER"
	ErrCodeInvalidDeliveryFee   = "INVALID_DELIVERY_FEE"
	ErrCodeInvalidStatus        = "INVALID_STATUS"
	ErrCodeMissingName          = "MISSING_NAME"
	ErrCodeUnauthorised         = "UNAUTHORIZED"
	ErrCodeForbidden            = "FORBIDDEN"
	ErrCodeInternalError        = "INTERNAL_ERROR"
)

// DomainError carries a stable error code alongside a human-readable message.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrQuantityBelowMinimum = NewDomainError(ErrCodeQuantityBelowMinimum, "Quantity is below the product's minimum order")
	ErrProductUnavailable   = NewDomainError(ErrCodeProductUnavailable, "Product is out of stock or no longer available")
	ErrEmptyCart            = NewDomainError(ErrCodeEmptyCart, "Cart is empty")
	ErrLandmarkNotFound     = NewDomainError(ErrCodeLandmarkNotFound, "Landmark not found")
	ErrMissingAddress       = NewDomainError(ErrCodeMissingAddress, "Delivery address is required")
	ErrInvalidDeliveryMode  = NewDomainError(ErrCodeInvalidDeliveryMode, "Delivery mode must be delivery or pickup")
	ErrProductNotFound      = NewDomainError(ErrCodeProductNotFound, "Product not found")
	ErrOrderNotFound        = NewDomainError(ErrCodeOrderNotFound, "Order not found")
	ErrInvalidPrice         = NewDomainError(ErrCodeInvalidPrice, "Price must be zero or greater")
	ErrInvalidMinOrder      = NewDomainError(ErrCodeInvalidMinOrder, "Minimum order must be at least 1")
	ErrInvalidDeliveryFee   = NewDomainError(ErrCodeInvalidDeliveryFee, "Delivery fee must be zero or greater")
	ErrInvalidStatus        = NewDomainError(ErrCodeInvalidStatus, "Status must be pending, completed or cancelled")
	ErrMissingName          = NewDomainError(ErrCodeMissingName, "Name is required")
)
