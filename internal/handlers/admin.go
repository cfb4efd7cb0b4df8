package handlers

import (
	"encoding/json"
	"log"
	"net/http"
)

// WebhookAdmin is the webhook-registration slice of the Telegram API.
// *bot.Client satisfies it.
type WebhookAdmin interface {
	SetWebhook(publicURL string) (json.RawMessage, error)
	GetWebhookInfo() (json.RawMessage, error)
}

// SetupWebhook registers the public URL with the platform and passes the
// platform's response through verbatim.
func SetupWebhook(gw WebhookAdmin, publicURL string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := gw.SetWebhook(publicURL)
		if err != nil {
			log.Printf("setup_webhook: %v", err)
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}
		log.Printf("webhook setup result: %s", result)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(result)
	}
}

// WebhookInfo reports the platform's current webhook status, verbatim.
func WebhookInfo(gw WebhookAdmin) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := gw.GetWebhookInfo()
		if err != nil {
			log.Printf("webhook_info: %v", err)
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(result)
	}
}
