package bot

import "strings"

// ActionKind is what a command resolves to.
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionReply
	ActionSendInvoice
)

// Action is the interpreter's output. Kind decides which fields are set:
// Text for ActionReply, Product/Amount for ActionSendInvoice.
type Action struct {
	Kind    ActionKind
	Text    string
	Product string
	Amount  int64
}

const (
	productPremiumWeekly = "premium_weekly"
	premiumWeeklyPrice   = 99 // Stars
)

// Interpret maps a message text to an action. Pure: no I/O, no state. The
// sender's first name only personalizes the welcome text.
func Interpret(text, firstName string) Action {
	switch strings.TrimSpace(text) {
	case "":
		return Action{Kind: ActionNone}
	case "/start":
		return Action{Kind: ActionReply, Text: msgWelcome(firstName)}
	case "/help":
		return Action{Kind: ActionReply, Text: msgHelp}
	case "/premium":
		return Action{Kind: ActionSendInvoice, Product: productPremiumWeekly, Amount: premiumWeeklyPrice}
	case "/paysupport":
		return Action{Kind: ActionReply, Text: msgPaySupport}
	default:
		return Action{Kind: ActionReply, Text: msgDefault}
	}
}
