package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/toxzak/teletextplus/internal/bot"
	"github.com/toxzak/teletextplus/internal/services"
)

// Linker creates payable links. *bot.Client satisfies it.
type Linker interface {
	CreateInvoiceLink(product string, amount, buyerID int64) (string, error)
}

const (
	defaultProduct = "premium_weekly"
	defaultAmount  = 99
)

// GetInvoice backs the mini app's payment button. Unlike the webhook, this
// endpoint has a caller waiting for a usable answer, so failures surface as
// structured JSON errors with a real status code.
func GetInvoice(gw Linker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()
		var req struct {
			InitData string `json:"initData"`
			Product  string `json:"product"`
			Amount   int64  `json:"amount"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "No data"})
			return
		}
		if strings.TrimSpace(req.InitData) == "" {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Missing initData"})
			return
		}
		if req.Product == "" {
			req.Product = defaultProduct
		}
		if req.Amount <= 0 {
			req.Amount = defaultAmount
		}

		userID := services.ParseInitDataUser(req.InitData)
		log.Printf("invoice request: product=%s amount=%d user=%d", req.Product, req.Amount, userID)

		link, err := gw.CreateInvoiceLink(req.Product, req.Amount, userID)
		if err != nil {
			var apiErr *bot.APIError
			if errors.As(err, &apiErr) {
				writeJSON(w, http.StatusBadRequest, map[string]string{"error": apiErr.Description})
				return
			}
			log.Printf("get_invoice: %v", err)
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Server error"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"invoice_url": link})
	}
}
