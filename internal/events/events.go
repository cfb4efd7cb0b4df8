package events

// Payment describes a completed payment observed on the webhook.
type Payment struct {
	UserID   int64
	ChatID   int64
	Amount   int64
	Currency string
	ChargeID string
	Payload  string
}

// OnPayment is called after a successful payment is observed. There is no
// durable entitlement store behind it yet; wire one in here when it exists.
var OnPayment func(p Payment)
