package dto

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/erp/pricing/internal/domain/pricing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetHTTPStatus(t *testing.T) {
	tests := []struct {
		code     string
		expected int
	}{
		{ErrCodeUnknown, http.StatusInternalServerError},
		{ErrCodeInternal, http.StatusInternalServerError},
		{ErrCodeValidation, http.StatusBadRequest},
		{ErrCodeValidationRequired, http.StatusBadRequest},
		{ErrCodeNotFound, http.StatusNotFound},
		{ErrCodeConflict, http.StatusConflict},
		{ErrCodeBadRequest, http.StatusBadRequest},
		{ErrCodeInvalidInput, http.StatusBadRequest},
		{ErrCodeInvalidJSON, http.StatusBadRequest},
		{ErrCodePayloadTooLarge, http.StatusRequestEntityTooLarge},
		{ErrCodeInvalidNumber, http.StatusUnprocessableEntity},
		{ErrCodeNegativeValue, http.StatusUnprocessableEntity},
		{ErrCodePercentOutOfRange, http.StatusUnprocessableEntity},
		{ErrCodeUnknownField, http.StatusBadRequest},
		{ErrCodeUnknownDocumentKind, http.StatusBadRequest},
		{ErrCodeUnknownDiscountMode, http.StatusBadRequest},
		{ErrCodeUnknownTaxRate, http.StatusBadRequest},
		{ErrCodeLineNotFound, http.StatusNotFound},
		{ErrCodeDuplicateLine, http.StatusConflict},
		// Unknown code should return 500
		{"UNKNOWN_CODE", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetHTTPStatus(tt.code))
		})
	}
}

func TestNormalizeErrorCode(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"NOT_FOUND", ErrCodeNotFound},
		{"INVALID_INPUT", ErrCodeInvalidInput},
		{pricing.CodeInvalidNumber, ErrCodeInvalidNumber},
		{pricing.CodeNegativeValue, ErrCodeNegativeValue},
		{pricing.CodePercentOutOfRange, ErrCodePercentOutOfRange},
		{pricing.CodeUnknownField, ErrCodeUnknownField},
		{pricing.CodeUnknownTaxRate, ErrCodeUnknownTaxRate},
		{pricing.CodeDuplicateLine, ErrCodeDuplicateLine},
		// API codes pass through
		{ErrCodeNotFound, ErrCodeNotFound},
		{ErrCodeNegativeValue, ErrCodeNegativeValue},
		// Unknown codes pass through
		{"CUSTOM_CODE", "CUSTOM_CODE"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeErrorCode(tt.input))
		})
	}
}

func TestEveryDomainCodeHasStatus(t *testing.T) {
	for domainCode, apiCode := range DomainErrorCodeMapping {
		_, ok := ErrorCodeHTTPStatus[apiCode]
		assert.True(t, ok, "no HTTP status for %s (from %s)", apiCode, domainCode)
	}
}

func TestNewErrorResponse(t *testing.T) {
	before := time.Now()
	resp := NewErrorResponse(pricing.CodeNegativeValue, "quantity must not be negative")

	assert.False(t, resp.Success)
	assert.Nil(t, resp.Data)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeNegativeValue, resp.Error.Code)
	assert.Equal(t, "quantity must not be negative", resp.Error.Message)
	assert.False(t, resp.Error.Timestamp.Before(before))
	assert.Empty(t, resp.Error.RequestID)
}

func TestNewFieldErrorResponse(t *testing.T) {
	resp := NewFieldErrorResponse(pricing.CodePercentOutOfRange, "discount must be within 0..100", "discount_percent", "req-1")

	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodePercentOutOfRange, resp.Error.Code)
	assert.Equal(t, "discount_percent", resp.Error.Field)
	assert.Equal(t, "req-1", resp.Error.RequestID)
}

func TestNewValidationErrorResponse(t *testing.T) {
	details := []ValidationDetail{
		{Field: "kind", Message: "kind is required"},
		{Field: "field", Message: "field is required"},
	}
	resp := NewValidationErrorResponse("Request validation failed", "req-2", details)

	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeValidation, resp.Error.Code)
	assert.Equal(t, "req-2", resp.Error.RequestID)
	assert.Len(t, resp.Error.Details, 2)
}

func TestResponseJSON(t *testing.T) {
	t.Run("success omits error", func(t *testing.T) {
		data, err := json.Marshal(NewSuccessResponse(map[string]int{"n": 1}))
		require.NoError(t, err)

		var decoded map[string]any
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, true, decoded["success"])
		assert.NotContains(t, decoded, "error")
	})

	t.Run("error omits empty field and details", func(t *testing.T) {
		data, err := json.Marshal(NewErrorResponse(ErrCodeInternal, "boom"))
		require.NoError(t, err)

		var decoded map[string]any
		require.NoError(t, json.Unmarshal(data, &decoded))
		errObj, ok := decoded["error"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, ErrCodeInternal, errObj["code"])
		assert.NotContains(t, errObj, "field")
		assert.NotContains(t, errObj, "details")
		assert.NotContains(t, errObj, "request_id")
		assert.Contains(t, errObj, "timestamp")
	})
}
