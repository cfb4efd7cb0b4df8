package bot

import (
	"log"
	"time"

	"github.com/toxzak/teletextplus/internal/events"
	"github.com/toxzak/teletextplus/internal/users"
)

// Gateway is the slice of the Telegram API the dispatcher needs. *Client
// satisfies it; tests substitute a recorder.
type Gateway interface {
	SendMessage(chatID int64, text string) error
	SendInvoice(chatID int64, product string, amount, buyerID int64) error
	AnswerPreCheckoutQuery(queryID string, ok bool, reason string) error
}

// Dispatcher routes one webhook envelope. Pre-checkout queries are answered
// synchronously before anything else in the same envelope is touched; every
// other outbound send goes through the background notifier.
type Dispatcher struct {
	gw    Gateway
	users users.Store
	n     *Notifier
}

func NewDispatcher(gw Gateway, store users.Store, n *Notifier) *Dispatcher {
	return &Dispatcher{gw: gw, users: store, n: n}
}

// Handle never returns an error: the webhook transport answers success no
// matter what, so everything that goes wrong ends up in the log.
func (d *Dispatcher) Handle(u *Update) {
	if u == nil {
		return
	}
	if q := u.PreCheckoutQuery; q != nil {
		d.answerPreCheckout(q)
	}
	m := u.Message
	if m == nil || m.Chat == nil {
		return
	}
	if m.From != nil {
		d.users.Put(m.From.ID, users.Entry{Name: m.From.FirstName, LastSeen: time.Now()})
	}
	d.runCommand(m)
	if p := m.SuccessfulPayment; p != nil {
		d.recordPayment(m, p)
	}
}

// answerPreCheckout approves unconditionally. The call must land inside the
// platform's 10s window; the client's 5s timeout bounds the damage and there
// is deliberately no retry — a late retry risks a worse outcome than silence.
func (d *Dispatcher) answerPreCheckout(q *PreCheckoutQuery) {
	start := time.Now()
	err := d.gw.AnswerPreCheckoutQuery(q.ID, true, "")
	elapsed := time.Since(start)
	switch {
	case err != nil:
		log.Printf("pre-checkout %s: answer failed after %s, payment will auto-fail: %v", q.ID, elapsed, err)
	case elapsed > time.Second:
		log.Printf("pre-checkout %s: approved in %s — latency incident", q.ID, elapsed)
	default:
		log.Printf("pre-checkout %s: approved in %s", q.ID, elapsed)
	}
}

func (d *Dispatcher) runCommand(m *Message) {
	var name string
	var buyer int64
	if m.From != nil {
		name = m.From.FirstName
		buyer = m.From.ID
	}
	act := Interpret(m.Text, name)
	switch act.Kind {
	case ActionNone:
	case ActionReply:
		d.n.Notify(m.Chat.ID, act.Text)
	case ActionSendInvoice:
		if err := d.gw.SendInvoice(m.Chat.ID, act.Product, act.Amount, buyer); err != nil {
			log.Printf("send invoice to chat %d: %v", m.Chat.ID, err)
			d.n.Notify(m.Chat.ID, msgPaymentFailed)
		}
	}
}

func (d *Dispatcher) recordPayment(m *Message, p *SuccessfulPayment) {
	var userID int64
	if m.From != nil {
		userID = m.From.ID
	}
	log.Printf("payment received: user=%d amount=%d %s charge=%s payload=%s",
		userID, p.TotalAmount, p.Currency, p.TelegramPaymentChargeID, p.InvoicePayload)
	// TODO: persist the entitlement (premium until now+7d). Nothing durable
	// is recorded today; restart loses all premium state.
	if events.OnPayment != nil {
		events.OnPayment(events.Payment{
			UserID:   userID,
			ChatID:   m.Chat.ID,
			Amount:   p.TotalAmount,
			Currency: p.Currency,
			ChargeID: p.TelegramPaymentChargeID,
			Payload:  p.InvoicePayload,
		})
	}
	d.n.Notify(m.Chat.ID, msgPaymentOK)
}
