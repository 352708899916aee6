package handler

import "github.com/erp/pricing/internal/interfaces/http/dto"

// APIResponse is the success envelope with a concrete data type, used by the
// OpenAPI annotations and for decoding responses in clients and tests.
// @Description Pricing API envelope; monetary values are decimal strings
type APIResponse[T any] struct {
	Success bool           `json:"success" example:"true"`
	Data    T              `json:"data,omitempty"`
	Error   *dto.ErrorInfo `json:"error,omitempty"`
}

// ErrorResponse is the failure envelope
// @Description Rejected input or server failure; error.field names the offending input
type ErrorResponse struct {
	Success bool           `json:"success" example:"false"`
	Error   *dto.ErrorInfo `json:"error,omitempty"`
}
