package billing

import (
	"fmt"

	"github.com/socialxspark/invoice-api/internal/domain/entity"
	"github.com/socialxspark/invoice-api/internal/domain/invoice"
	"github.com/socialxspark/invoice-api/internal/domain/repository"
)

// InvoiceUseCase covers the authoring CRUD surface: drafts, save, fetch,
// list, delete. Validation gates every write; the store's contract
// (identity on create, full-record replace on update) does the rest.
type InvoiceUseCase struct {
	repo     repository.InvoiceRepository
	defaults entity.DraftDefaults
}

// NewInvoiceUseCase builds the use case.
func NewInvoiceUseCase(repo repository.InvoiceRepository, defaults entity.DraftDefaults) *InvoiceUseCase {
	return &InvoiceUseCase{repo: repo, defaults: defaults}
}

// NewDraft returns the fresh draft an authoring session starts from. Nothing
// is persisted; the store assigns identity only on first save.
func (uc *InvoiceUseCase) NewDraft() *entity.Invoice {
	return entity.NewDraft(uc.defaults)
}

// Create validates and persists a new invoice. Repeated calls create
// duplicates; the client keeps the returned id to update instead.
func (uc *InvoiceUseCase) Create(inv *entity.Invoice) (*entity.Invoice, error) {
	if err := invoice.ValidateInvoice(inv); err != nil {
		return nil, err
	}
	rec, err := uc.repo.Create(inv)
	if err != nil {
		return nil, fmt.Errorf("create invoice: %w", err)
	}
	return rec, nil
}

// Get fetches one invoice by store id.
func (uc *InvoiceUseCase) Get(id string) (*entity.Invoice, error) {
	return uc.repo.GetByID(id)
}

// List returns every stored invoice.
func (uc *InvoiceUseCase) List() ([]*entity.Invoice, error) {
	return uc.repo.List()
}

// Update validates and replaces a stored invoice wholesale.
func (uc *InvoiceUseCase) Update(id string, inv *entity.Invoice) (*entity.Invoice, error) {
	if err := invoice.ValidateInvoice(inv); err != nil {
		return nil, err
	}
	rec, err := uc.repo.Update(id, inv)
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// Delete removes a stored invoice. Idempotent by identifier.
func (uc *InvoiceUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}
