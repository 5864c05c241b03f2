// Package telegram posts order notifications to the merchant's Telegram chat.
package telegram

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/pkg/ddd"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Sender is the part of *tgbotapi.BotAPI the notifier uses.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// RequestTimeout bounds every Bot API call, including the getMe handshake
// made when the sender is created.
const RequestTimeout = 10 * time.Second

// NewBotSender connects to the Bot API with token.
func NewBotSender(token string) (*tgbotapi.BotAPI, error) {
	return newBotSender(token, tgbotapi.APIEndpoint, RequestTimeout)
}

func newBotSender(token, endpoint string, timeout time.Duration) (*tgbotapi.BotAPI, error) {
	return tgbotapi.NewBotAPIWithClient(token, endpoint, &http.Client{Timeout: timeout})
}

// Notifier implements ports.EventPublisher by sending one chat message per
// order event. Events it does not know are skipped.
type Notifier struct {
	sender   Sender
	chatID   int64
	location *time.Location
	printer  *message.Printer
	logger   *slog.Logger
}

// NewNotifier creates a notifier that writes to chatID. Times are shown in
// location, or UTC when it is nil.
func NewNotifier(sender Sender, chatID int64, location *time.Location, logger *slog.Logger) *Notifier {
	if location == nil {
		location = time.UTC
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Notifier{
		sender:   sender,
		chatID:   chatID,
		location: location,
		printer:  message.NewPrinter(language.MustParse("en-IN")),
		logger:   logger.With("component", "telegram"),
	}
}

// Publish sends every renderable event. It keeps going after a failed send and
// returns the joined failures.
func (n *Notifier) Publish(ctx context.Context, events ...ddd.DomainEvent) error {
	var failures []error
	for _, event := range events {
		text, ok := n.Render(event)
		if !ok {
			continue
		}

		if _, err := n.sender.Send(tgbotapi.NewMessage(n.chatID, text)); err != nil {
			failures = append(failures, fmt.Errorf("send %s: %w", event.EventName(), err))
			continue
		}
		n.logger.DebugContext(ctx, "notification sent", "event", event.EventName())
	}
	return errors.Join(failures...)
}

// Render formats event as message text. ok is false for events that are not
// worth a notification.
func (n *Notifier) Render(event ddd.DomainEvent) (text string, ok bool) {
	switch e := event.(type) {
	case order.PlacedEvent:
		return n.renderPlaced(e), true
	case order.StatusChangedEvent:
		return n.printer.Sprintf("Order #%s: %s → %s", shortID(e.OrderID), e.From, e.To), true
	default:
		return "", false
	}
}

func (n *Notifier) renderPlaced(e order.PlacedEvent) string {
	var b strings.Builder

	title := "🛎 New order"
	if e.IsPreOrder {
		title = "🕒 New pre-order"
	}
	n.printer.Fprintf(&b, "%s #%s\n", title, shortID(e.OrderID))
	n.printer.Fprintf(&b, "%s, %s\n", e.CustomerName, e.CustomerPhone)
	n.printer.Fprintf(&b, "%s\n\n", e.Address)

	for _, item := range e.Items {
		n.printer.Fprintf(&b, "%d x %s: %s\n", item.Quantity(), item.Name(), n.rupees(item.LineTotal()))
	}

	n.printer.Fprintf(&b, "\nSubtotal: %s\n", n.rupees(e.Charges.Subtotal))
	n.printer.Fprintf(&b, "Delivery: %s\n", n.rupees(e.Charges.DeliveryFee))
	n.printer.Fprintf(&b, "Platform fee: %s\n", n.rupees(e.Charges.PlatformFee))
	n.printer.Fprintf(&b, "Total: %s\n", n.rupees(e.Charges.Total))
	n.printer.Fprintf(&b, "Placed at %s", e.At.In(n.location).Format("02 Jan 15:04"))

	return b.String()
}

func (n *Notifier) rupees(amount int64) string {
	return n.printer.Sprintf("₹%d", amount)
}

func shortID(id kernel.UUID) string {
	return id.String()[:8]
}
