package invoice

import (
	"fmt"
	"strings"

	"github.com/socialxspark/invoice-api/internal/domain"
	"github.com/socialxspark/invoice-api/internal/domain/entity"
)

// Violation names one failed validation rule. Field addresses the offending
// input the way the wizard addresses it (client.name, items[2].description).
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries every violation found behind the ErrInvalidInput
// sentinel so callers can match it with errors.Is/As.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		msgs = append(msgs, v.Field+": "+v.Message)
	}
	return fmt.Sprintf("invalid invoice: %s", strings.Join(msgs, "; "))
}

func (e *ValidationError) Unwrap() error { return domain.ErrInvalidInput }

// Validate checks the rules that block save and render: client name
// non-empty, at least one line item, every item description non-empty.
// All violations are returned, not just the first, so a form can flag every
// offending field in one round trip. Numeric ranges are never validated.
func Validate(inv *entity.Invoice) []Violation {
	var out []Violation
	if strings.TrimSpace(inv.Client.Name) == "" {
		out = append(out, Violation{Field: "client.name", Message: "client name is required"})
	}
	if len(inv.Items) == 0 {
		out = append(out, Violation{Field: "items", Message: "invoice needs at least one line item"})
	}
	for i, it := range inv.Items {
		if strings.TrimSpace(it.Description) == "" {
			out = append(out, Violation{
				Field:   fmt.Sprintf("items[%d].description", i),
				Message: "item description is required",
			})
		}
	}
	return out
}

// ValidateInvoice wraps Validate into an error, nil when the invoice is
// valid.
func ValidateInvoice(inv *entity.Invoice) error {
	if violations := Validate(inv); len(violations) > 0 {
		return &ValidationError{Violations: violations}
	}
	return nil
}
