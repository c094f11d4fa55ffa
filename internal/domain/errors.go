package domain

import (
	"errors"
	"fmt"
)

// DomainError represents a business logic error
type DomainError struct {
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *DomainError) Unwrap() error {
	return e.Err
}

// Domain validation errors
const (
	ErrCodeProductNotFound       = "PRODUCT_NOT_FOUND"
	ErrCodePaymentMethodNotFound = "PAYMENT_METHOD_NOT_FOUND"
	ErrCodeInvalidCatalog        = "INVALID_CATALOG"
	ErrCodeEmptyMessage          = "EMPTY_MESSAGE"
)

func NewProductNotFoundError(id int) *DomainError {
	return &DomainError{
		Code:    ErrCodeProductNotFound,
		Message: fmt.Sprintf("product with ID %d not found", id),
	}
}

func NewPaymentMethodNotFoundError(id string) *DomainError {
	return &DomainError{
		Code:    ErrCodePaymentMethodNotFound,
		Message: fmt.Sprintf("payment method %q not found", id),
	}
}

func NewInvalidCatalogError(reason string) *DomainError {
	return &DomainError{
		Code:    ErrCodeInvalidCatalog,
		Message: fmt.Sprintf("invalid catalog: %s", reason),
	}
}

func NewEmptyMessageError() *DomainError {
	return &DomainError{
		Code:    ErrCodeEmptyMessage,
		Message: "message is empty",
	}
}

// IsErrorCode checks if an error is a DomainError with a specific code
func IsErrorCode(err error, code string) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code == code
	}
	return false
}
