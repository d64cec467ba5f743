package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInvalidPeriod indicates a billing period with a month outside the
// calendar range. Wraps ErrValidation so generic handlers still map it to 400.
var ErrInvalidPeriod = fmt.Errorf("%w: billing period month out of range", ErrValidation)

// ErrInvalidPurchase indicates an installment purchase with a non-positive
// total value or fewer than one installment.
var ErrInvalidPurchase = fmt.Errorf("%w: invalid installment purchase", ErrValidation)

// ErrNonPositiveAdjustment indicates an extra-value adjustment with a
// non-positive amount.
var ErrNonPositiveAdjustment = fmt.Errorf("%w: adjustment amount must be positive", ErrValidation)

// AppError carries an HTTP status code alongside the underlying error so
// repositories can pin the response status for constraint violations.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError wrapping err.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}
