package repository

import "github.com/socialxspark/invoice-api/internal/domain/entity"

// InvoiceRepository is the persistence port for invoices. Semantics the
// callers rely on:
//   - Create assigns the persistent identity and CreatedAt when the record
//     has none. Repeated calls create duplicates (create is not idempotent).
//   - Update is a full-record replace keyed by id; no merge. It preserves
//     the store-assigned ID and CreatedAt and stamps UpdatedAt.
//   - GetByID, Update and Delete report an unknown id as domain.ErrNotFound,
//     a distinct outcome from transient failure.
//   - Last write wins; no optimistic concurrency token.
type InvoiceRepository interface {
	Create(inv *entity.Invoice) (*entity.Invoice, error)
	GetByID(id string) (*entity.Invoice, error)
	List() ([]*entity.Invoice, error)
	Update(id string, inv *entity.Invoice) (*entity.Invoice, error)
	Delete(id string) error
}
