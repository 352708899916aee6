package dto

import (
	"net/http"

	"github.com/erp/pricing/internal/domain/pricing"
)

// Error code constants organized by category
// Format: ERR_<CATEGORY>_<DESCRIPTION>

// General error codes
const (
	// ErrCodeUnknown is used when the error type is unknown
	ErrCodeUnknown = "ERR_UNKNOWN"
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "ERR_INTERNAL"
)

// Validation error codes
const (
	// ErrCodeValidation is the base code for request binding failures
	ErrCodeValidation = "ERR_VALIDATION"
	// ErrCodeValidationRequired is used when a required field is missing
	ErrCodeValidationRequired = "ERR_VALIDATION_REQUIRED"
	// ErrCodeValidationRange is used when a value is out of range
	ErrCodeValidationRange = "ERR_VALIDATION_RANGE"
)

// Resource error codes
const (
	// ErrCodeNotFound is used when a resource is not found
	ErrCodeNotFound = "ERR_NOT_FOUND"
	// ErrCodeConflict is used for general resource conflicts
	ErrCodeConflict = "ERR_CONFLICT"
	// ErrCodeForbidden is used when the client may not access a resource
	ErrCodeForbidden = "ERR_FORBIDDEN"
)

// Input error codes
const (
	// ErrCodeBadRequest is used for malformed requests
	ErrCodeBadRequest = "ERR_BAD_REQUEST"
	// ErrCodeInvalidInput is used for invalid input data
	ErrCodeInvalidInput = "ERR_INVALID_INPUT"
	// ErrCodeInvalidJSON is used when JSON parsing fails
	ErrCodeInvalidJSON = "ERR_INVALID_JSON"
	// ErrCodePayloadTooLarge is used when the request body exceeds the limit
	ErrCodePayloadTooLarge = "ERR_PAYLOAD_TOO_LARGE"
)

// Pricing error codes
const (
	// ErrCodeInvalidNumber is used for NaN, infinite or unparsable numbers
	ErrCodeInvalidNumber = "ERR_INVALID_NUMBER"
	// ErrCodeNegativeValue is used when a quantity or amount is negative
	ErrCodeNegativeValue = "ERR_NEGATIVE_VALUE_NOT_ALLOWED"
	// ErrCodePercentOutOfRange is used when a percentage is outside its range
	ErrCodePercentOutOfRange = "ERR_PERCENT_OUT_OF_RANGE"
	// ErrCodeUnknownField is used for non-editable or unknown line fields
	ErrCodeUnknownField = "ERR_UNKNOWN_FIELD"
	// ErrCodeUnknownDocumentKind is used for an unknown document kind
	ErrCodeUnknownDocumentKind = "ERR_UNKNOWN_DOCUMENT_KIND"
	// ErrCodeUnknownDiscountMode is used for an unknown discount mode
	ErrCodeUnknownDiscountMode = "ERR_UNKNOWN_DISCOUNT_MODE"
	// ErrCodeUnknownTaxRate is used when a tax rate name is not in the catalog
	ErrCodeUnknownTaxRate = "ERR_UNKNOWN_TAX_RATE"
	// ErrCodeLineNotFound is used when a line item id does not exist
	ErrCodeLineNotFound = "ERR_LINE_NOT_FOUND"
	// ErrCodeDuplicateLine is used when a line item id appears twice
	ErrCodeDuplicateLine = "ERR_DUPLICATE_LINE"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	// General errors
	ErrCodeUnknown:  http.StatusInternalServerError,
	ErrCodeInternal: http.StatusInternalServerError,

	// Validation errors -> 400 Bad Request
	ErrCodeValidation:         http.StatusBadRequest,
	ErrCodeValidationRequired: http.StatusBadRequest,
	ErrCodeValidationRange:    http.StatusBadRequest,

	// Resource errors
	ErrCodeNotFound:  http.StatusNotFound,
	ErrCodeConflict:  http.StatusConflict,
	ErrCodeForbidden: http.StatusForbidden,

	// Input errors -> 400 Bad Request
	ErrCodeBadRequest:      http.StatusBadRequest,
	ErrCodeInvalidInput:    http.StatusBadRequest,
	ErrCodeInvalidJSON:     http.StatusBadRequest,
	ErrCodePayloadTooLarge: http.StatusRequestEntityTooLarge,

	// Rejected values -> 422 Unprocessable Entity
	ErrCodeInvalidNumber:     http.StatusUnprocessableEntity,
	ErrCodeNegativeValue:     http.StatusUnprocessableEntity,
	ErrCodePercentOutOfRange: http.StatusUnprocessableEntity,

	// Unknown names -> 400 Bad Request
	ErrCodeUnknownField:        http.StatusBadRequest,
	ErrCodeUnknownDocumentKind: http.StatusBadRequest,
	ErrCodeUnknownDiscountMode: http.StatusBadRequest,
	ErrCodeUnknownTaxRate:      http.StatusBadRequest,

	// Line identity
	ErrCodeLineNotFound:  http.StatusNotFound,
	ErrCodeDuplicateLine: http.StatusConflict,
}

// GetHTTPStatus returns the HTTP status code for an error code
// Returns 500 Internal Server Error if the error code is not found
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// DomainErrorCodeMapping maps domain error codes to API error codes
var DomainErrorCodeMapping = map[string]string{
	"NOT_FOUND":                     ErrCodeNotFound,
	"INVALID_INPUT":                 ErrCodeInvalidInput,
	"INVALID_STATE":                 ErrCodeConflict,
	"VALIDATION_ERROR":              ErrCodeValidation,
	"BAD_REQUEST":                   ErrCodeBadRequest,
	"INTERNAL_ERROR":                ErrCodeInternal,
	pricing.CodeInvalidNumber:       ErrCodeInvalidNumber,
	pricing.CodeNegativeValue:       ErrCodeNegativeValue,
	pricing.CodePercentOutOfRange:   ErrCodePercentOutOfRange,
	pricing.CodeUnknownField:        ErrCodeUnknownField,
	pricing.CodeUnknownDocumentKind: ErrCodeUnknownDocumentKind,
	pricing.CodeUnknownDiscountMode: ErrCodeUnknownDiscountMode,
	pricing.CodeUnknownTaxRate:      ErrCodeUnknownTaxRate,
	pricing.CodeLineNotFound:        ErrCodeLineNotFound,
	pricing.CodeDuplicateLine:       ErrCodeDuplicateLine,
}

// NormalizeErrorCode converts a domain error code to the API format
// If the code is already in the API format or unknown, returns it as-is
func NormalizeErrorCode(code string) string {
	if apiCode, ok := DomainErrorCodeMapping[code]; ok {
		return apiCode
	}
	return code
}
