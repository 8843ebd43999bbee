package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/shopspring/decimal"
	"github.com/spf13/afero"

	"github.com/socialxspark/invoice-api/internal/application/billing"
	"github.com/socialxspark/invoice-api/internal/domain/entity"
	"github.com/socialxspark/invoice-api/internal/infrastructure/filestore"
	infrapdf "github.com/socialxspark/invoice-api/internal/infrastructure/pdf"
	httpRouter "github.com/socialxspark/invoice-api/internal/interfaces/http"
	"github.com/socialxspark/invoice-api/pkg/config"
	"github.com/socialxspark/invoice-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	store, err := filestore.Open(afero.NewOsFs(), cfg.Store.Path, log.Zerolog())
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.Store.Path).Msg("open invoice store")
	}

	invoiceUC := billing.NewInvoiceUseCase(store, draftDefaults(cfg.Invoice))
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	pdfUC := billing.NewPDFUseCase(store, pdfGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI locally: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "SocialXspark Invoice API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		InvoiceUC: invoiceUC,
		PDFUC:     pdfUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}
	if err := store.Close(); err != nil {
		log.Error().Err(err).Msg("close invoice store")
	}

	log.Info().Msg("application stopped")
}

// draftDefaults maps the configured invoice defaults onto the model's
// draft seed.
func draftDefaults(cfg config.InvoiceConfig) entity.DraftDefaults {
	return entity.DraftDefaults{
		NumberPrefix: cfg.NumberPrefix,
		Sender: entity.Party{
			Name:    cfg.SenderName,
			Email:   cfg.SenderEmail,
			Address: cfg.SenderAddress,
			TaxID:   cfg.SenderTaxID,
		},
		TaxRatePercent:        decimal.NewFromInt(int64(cfg.TaxRatePercent)),
		CommissionRatePercent: decimal.NewFromInt(int64(cfg.CommissionRatePercent)),
		Notes:                 cfg.DefaultNotes,
	}
}
