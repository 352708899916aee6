package pricing

import (
	"errors"
	"fmt"

	"github.com/erp/pricing/internal/domain/shared"
)

// Error codes reported by the pricing engine
const (
	CodeInvalidNumber       = "INVALID_NUMBER"
	CodeNegativeValue       = "NEGATIVE_VALUE_NOT_ALLOWED"
	CodePercentOutOfRange   = "PERCENT_OUT_OF_RANGE"
	CodeUnknownField        = "UNKNOWN_FIELD"
	CodeUnknownDocumentKind = "UNKNOWN_DOCUMENT_KIND"
	CodeUnknownDiscountMode = "UNKNOWN_DISCOUNT_MODE"
	CodeUnknownTaxRate      = "UNKNOWN_TAX_RATE"
	CodeLineNotFound        = "LINE_NOT_FOUND"
	CodeDuplicateLine       = "DUPLICATE_LINE"
)

// Sentinels for errors.Is; matching is by code only.
var (
	ErrInvalidNumber       = shared.NewDomainError(CodeInvalidNumber, "value is not a finite number")
	ErrNegativeValue       = shared.NewDomainError(CodeNegativeValue, "value cannot be negative")
	ErrPercentOutOfRange   = shared.NewDomainError(CodePercentOutOfRange, "percentage is out of range")
	ErrUnknownField        = shared.NewDomainError(CodeUnknownField, "field is not editable")
	ErrUnknownDocumentKind = shared.NewDomainError(CodeUnknownDocumentKind, "unknown document kind")
	ErrUnknownDiscountMode = shared.NewDomainError(CodeUnknownDiscountMode, "unknown discount mode")
	ErrUnknownTaxRate      = shared.NewDomainError(CodeUnknownTaxRate, "unknown tax rate")
	ErrLineNotFound        = shared.NewDomainError(CodeLineNotFound, "line item not found")
	ErrDuplicateLine       = shared.NewDomainError(CodeDuplicateLine, "line item already exists")
)

func newFieldError(code, field, format string, args ...any) error {
	return shared.NewFieldError(code, field, fmt.Sprintf(format, args...))
}

// ErrorCode returns the pricing error code carried by err, or "" when err
// is not a domain error.
func ErrorCode(err error) string {
	var de *shared.DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}

// ErrorField returns the input field a domain error is bound to.
func ErrorField(err error) string {
	var de *shared.DomainError
	if errors.As(err, &de) {
		return de.Field
	}
	return ""
}
