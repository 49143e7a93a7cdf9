package utils

import (
	"fmt"
	"log"
	"strings"

	"quentinhas/model"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// TelegramNotifier posts new-order alerts to the staff chat.
type TelegramNotifier struct {
	api    *tgbotapi.BotAPI
	chatID int64
}

func NewTelegramNotifier(token string, chatID int64) (*TelegramNotifier, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram: %w", err)
	}
	return &TelegramNotifier{api: api, chatID: chatID}, nil
}

func NewOrdersAlert(orders []model.Order) string {
	var b strings.Builder
	b.WriteString("🍲 Novo pedido pendente\n")
	for _, o := range orders {
		fmt.Fprintf(&b, "#%s - %s - %s - R$ %s (%s)\n",
			o.ID, o.CustomerName, ISOToBR(o.EventDate()), o.Total.StringFixed(2), o.PaymentMethod)
		fmt.Fprintf(&b, "  %s\n", o.Items)
	}
	return b.String()
}

// NotifyNewOrders never fails the caller; errors are only logged.
func (n *TelegramNotifier) NotifyNewOrders(orders []model.Order) {
	if n == nil || len(orders) == 0 {
		return
	}
	msg := tgbotapi.NewMessage(n.chatID, NewOrdersAlert(orders))
	if _, err := n.api.Send(msg); err != nil {
		log.Printf("Telegram alert for order %s failed: %v", orders[0].ID, err)
	}
}
