package dto

import "github.com/socialxspark/invoice-api/internal/domain/invoice"

// ErrorResponse is the HTTP error body. Violations is populated only for
// VALIDATION errors so the wizard can flag every offending field at once.
type ErrorResponse struct {
	Code       string              `json:"code"`
	Message    string              `json:"message"`
	Violations []invoice.Violation `json:"violations,omitempty"`
}

// DeleteResponse confirms a successful delete.
type DeleteResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
