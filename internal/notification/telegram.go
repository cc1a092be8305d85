package notification

import (
	"context"
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"tourista/internal/domain"
)

// TelegramNotifier posts booking alerts to an operations channel. It is
// strictly best-effort: with an empty token it degrades to a no-op, and send
// failures are logged, never propagated into the booking flow.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

func NewTelegramNotifier(token string, chatID int64) (*TelegramNotifier, error) {
	if token == "" {
		log.Println("telegram bot token is empty, booking alerts disabled")
		return &TelegramNotifier{}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, chatID: chatID}, nil
}

func (n *TelegramNotifier) NotifyBookingCreated(ctx context.Context, b *domain.Booking) error {
	text := fmt.Sprintf(
		"New booking %s\nProduct: %s #%d\nGuests: %d\nTotal: %s",
		b.Reference, b.Product.Type, b.Product.ID, b.Guests, b.TotalPrice.StringFixed(2),
	)
	if b.Stay != nil {
		text += fmt.Sprintf("\nStay: %s → %s",
			b.Stay.CheckIn.Format("2006-01-02"), b.Stay.CheckOut.Format("2006-01-02"))
	}
	n.send(ctx, text)
	return nil
}

func (n *TelegramNotifier) NotifyBookingCanceled(ctx context.Context, b *domain.Booking) error {
	n.send(ctx, fmt.Sprintf(
		"Booking %s canceled\nProduct: %s #%d\nGuests: %d",
		b.Reference, b.Product.Type, b.Product.ID, b.Guests,
	))
	return nil
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil {
		return
	}
	if err := ctx.Err(); err != nil {
		return
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	if _, err := n.bot.Send(msg); err != nil {
		log.Printf("failed to send telegram alert: %v", err)
	}
}
