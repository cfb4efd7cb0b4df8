package bot

import "fmt"

func msgWelcome(name string) string {
	if name == "" {
		name = "User"
	}
	return fmt.Sprintf(`👋 Welcome to TeleTextPlus, %s!

I'm a powerful text utility tool for all your needs.

<b>Available Commands:</b>
/start - Show this message
/help - View all features
/premium - Unlock premium features
/paysupport - Payment FAQ &amp; support

<b>Premium Features (⭐):</b>
• Unlimited text conversions
• Advanced formatting tools
• AI-powered suggestions
• Priority support

Tap /premium to upgrade and get started!`, name)
}

const msgHelp = `<b>📚 Features &amp; Help</b>

<b>Available Commands:</b>
/start - Welcome message
/help - This help text
/premium - Get premium access
/paysupport - Payment help

<b>🔐 Premium Features:</b>
✓ Unlimited text conversions
✓ Advanced formatting
✓ AI suggestions
✓ Priority support
✓ Exclusive tools

<b>💰 Pricing:</b>
⭐ 99 Telegram Stars (~$1.99)
⏱ Valid for 1 week

Ready to upgrade? Use /premium!`

const msgPaySupport = `💳 <b>Payment Support</b>

<b>What are Telegram Stars?</b>
Telegram Stars are a secure in-app currency
1 Star ≈ $0.02 USD

<b>Payment Methods:</b>
✓ Telegram Stars (fastest &amp; easiest)
✓ Credit/Debit Card
✓ Apple Pay
✓ Google Pay

<b>Pricing &amp; Duration:</b>
⭐ 99 Stars = approximately $1.99
⏱ Premium access for 1 week

<b>Troubleshooting:</b>
• Check your internet connection
• Ensure your payment method is active
• Try again if payment fails
• Contact support if problems persist

<b>Refunds:</b>
Refunds are available within 48 hours of purchase.
Contact support for assistance.

Questions? Use /help`

const msgDefault = "Thanks for your message! 👋\n\nUse /help to see all features, or /premium to unlock premium access."

const msgPaymentFailed = "❌ Error initiating payment. Please try again."

const msgPaymentOK = `✅ <b>Payment Successful!</b>

🎉 Welcome to TeleTextPlus Premium!

Your premium membership is now active:
⭐ 7 days of unlimited access
🔓 All features unlocked
⚡ Priority processing
📱 Use the mini app for full power

Your benefits start immediately!

Use /help to get started!`
