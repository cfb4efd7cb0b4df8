package bot

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// InvoiceRequest describes one Stars invoice. The payload carries product,
// buyer and a nonce so that two requests from the same user in the same
// second still produce distinct payloads.
type InvoiceRequest struct {
	Product string
	Amount  int64
	BuyerID int64
	Payload string
}

func NewInvoiceRequest(product string, amount, buyerID int64) InvoiceRequest {
	nonce := uuid.NewString()[:8]
	return InvoiceRequest{
		Product: product,
		Amount:  amount,
		BuyerID: buyerID,
		Payload: fmt.Sprintf("%s_%d_%d_%s", product, buyerID, time.Now().Unix(), nonce),
	}
}

// body is the shared request shape for sendInvoice and createInvoiceLink.
// provider_token stays empty and currency is XTR: that selects Telegram Stars.
func (r InvoiceRequest) body() map[string]any {
	label := titleCase(r.Product)
	return map[string]any{
		"title":          "TeleTextPlus " + label,
		"description":    "Unlock premium features! ✓ Unlimited ✓ Advanced ✓ Priority",
		"payload":        r.Payload,
		"provider_token": "",
		"currency":       "XTR",
		"prices":         []map[string]any{{"label": label, "amount": r.Amount}},
		"is_flexible":    false,
	}
}

// titleCase turns a product id like "premium_weekly" into "Premium Weekly".
func titleCase(product string) string {
	words := strings.Split(product, "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}
