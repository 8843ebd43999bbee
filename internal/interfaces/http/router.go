package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/socialxspark/invoice-api/internal/application/billing"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	InvoiceUC *billing.InvoiceUseCase
	PDFUC     *billing.PDFUseCase
}

// Router registers the API routes. Static segments (/new, /pdf) are
// registered before the :id parameter routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	invoices := api.Group("/invoices")
	h := NewInvoiceHandler(deps.InvoiceUC, deps.PDFUC)
	invoices.Get("/", h.List)
	invoices.Post("/", h.Create)
	invoices.Get("/new", h.NewDraft)
	invoices.Post("/pdf", h.RenderPreview)
	invoices.Get("/:id", h.GetByID)
	invoices.Put("/:id", h.Update)
	invoices.Delete("/:id", h.Delete)
	invoices.Get("/:id/pdf", h.DownloadPDF)
}
