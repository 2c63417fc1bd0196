package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"signage-quote/app/controller"
	"signage-quote/app/router"
	"signage-quote/catalog"
	"signage-quote/config"
	"signage-quote/pricing"
	"signage-quote/quote"
	"signage-quote/repository"
	"signage-quote/service"
)

// purgeInterval is how often idle session workspaces are dropped
const purgeInterval = 15 * time.Minute

// Options overrides collaborators, mainly for tests
type Options struct {
	Sender    service.NotificationSenderInterface
	Documents service.DocumentServiceInterface
	Assembler *quote.Assembler
}

// Initialize wires catalogs, repositories, services and controllers into an HTTP handler.
// Background work stops when ctx is cancelled.
func Initialize(ctx context.Context, cfg *config.Config, log logrus.FieldLogger, opts Options) (http.Handler, error) {
	// Load bundled catalogs
	registry, err := catalog.LoadBundled()
	if err != nil {
		return nil, fmt.Errorf("failed to load catalogs: %w", err)
	}
	for _, b := range registry.Brands() {
		log.Infof("✅ Loaded brand %s with %d catalog(s)", b.ID, len(b.Catalogs))
	}

	// Initialize repository
	sessions := repository.NewSessionRepository(cfg.SessionTTL, log)
	go sessions.RunPurge(ctx, purgeInterval)

	// Initialize notification sender
	sender := opts.Sender
	if sender == nil {
		if cfg.GmailConfigured() {
			gmailSender, err := service.NewGmailSender(ctx, cfg.GmailCredentialsFile, cfg.GmailSender, cfg.ReplyToEmail, log)
			if err != nil {
				return nil, err
			}
			sender = gmailSender
		} else {
			log.Warn("⚠️  GMAIL_CREDENTIALS_FILE or GMAIL_SENDER not set, quote emails will only be logged")
			sender = service.NewLogSender(log)
		}
	}

	documents := opts.Documents
	if documents == nil {
		documents = service.NewDocumentService(cfg.ChromePath, cfg.PDFTimeout, log)
	}

	assembler := opts.Assembler
	if assembler == nil {
		assembler = quote.NewAssembler()
	}

	images := service.NewImageOptimizer(registry, cfg.ImageDir, cfg.CacheDir, log)
	if err := images.EnsureCacheDir(); err != nil {
		log.Warnf("⚠️  %v", err)
	}

	// Initialize services
	carts := service.NewCartService(registry, pricing.NewEngine(log), sessions, log)
	quotes := service.NewQuoteService(registry, sessions, assembler, sender, cfg.QuoteToEmails, cfg.SendTimeout, log)
	exports := service.NewExportService(registry, quotes, documents, log)

	// Create controllers
	controllers := &router.Controllers{
		Portal:  controller.NewPortalController(registry, log),
		Catalog: controller.NewCatalogController(registry, carts, images, log),
		Cart:    controller.NewCartController(carts, log),
		Quote:   controller.NewQuoteController(registry, quotes, log),
		Export:  controller.NewExportController(registry, exports, log),
	}

	return router.SetupRoutes(controllers, log, cfg.CookiePrefix+"session-id"), nil
}
