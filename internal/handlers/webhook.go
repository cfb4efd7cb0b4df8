package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/toxzak/teletextplus/internal/bot"
)

// Webhook receives every platform update. The response is always 200
// {"ok":true} — a non-200 would make the platform retry the same update in a
// storm — so all failures, including panics, only reach the log. An optional
// shared secret (?secret=...) guards the route when set.
func Webhook(d *bot.Dispatcher, secret string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if secret != "" && r.URL.Query().Get("secret") != secret {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}
		defer r.Body.Close()
		defer func() {
			if rec := recover(); rec != nil {
				log.Printf("webhook: recovered: %v", rec)
			}
			writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
		}()

		var up bot.Update
		if err := json.NewDecoder(r.Body).Decode(&up); err != nil {
			log.Printf("webhook: bad update body: %v", err)
			return
		}
		d.Handle(&up)
	}
}
