package handlers

import (
	"net/http"
	"strconv"

	qrcode "github.com/skip2/go-qrcode"
)

// InvoiceQR creates an invoice link and renders it as a scannable PNG, for
// showing a payment QR outside the chat (kiosk screen, second device).
// Query params: product, amount, user_id — all optional.
func InvoiceQR(gw Linker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		product := r.URL.Query().Get("product")
		if product == "" {
			product = defaultProduct
		}
		amount := int64(defaultAmount)
		if v, err := strconv.ParseInt(r.URL.Query().Get("amount"), 10, 64); err == nil && v > 0 {
			amount = v
		}
		userID, _ := strconv.ParseInt(r.URL.Query().Get("user_id"), 10, 64)

		link, err := gw.CreateInvoiceLink(product, amount, userID)
		if err != nil {
			http.Error(w, "failed to create invoice", http.StatusBadGateway)
			return
		}
		png, err := qrcode.Encode(link, qrcode.Medium, 256)
		if err != nil {
			http.Error(w, "failed to generate qr", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(png)
	}
}
