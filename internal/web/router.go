package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/toxzak/teletextplus/internal/bot"
	"github.com/toxzak/teletextplus/internal/config"
	"github.com/toxzak/teletextplus/internal/handlers"
)

func Router(cfg config.Config, d *bot.Dispatcher, client *bot.Client) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/health", handlers.Health)
	r.Post("/webhook", handlers.Webhook(d, cfg.WebhookSecret))
	r.Post("/get_invoice", handlers.GetInvoice(client))
	r.Get("/invoice_qr.png", handlers.InvoiceQR(client))

	// Admin passthroughs to the platform's webhook-registration API.
	r.Get("/setup_webhook", handlers.SetupWebhook(client, cfg.WebhookURL))
	r.Get("/webhook_info", handlers.WebhookInfo(client))

	return r
}
