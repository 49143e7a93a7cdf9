package helper

import (
	"fmt"
	"net/url"
	"strings"

	"quentinhas/model"
	"quentinhas/utils"
)

const whatsAppBase = "https://wa.me/"

// WhatsAppLink builds a wa.me link. The phone is reduced to digits and gets
// the Brazilian prefix 55 unless it already starts with it. No validation.
func WhatsAppLink(phone, message string) string {
	digits := utils.DigitsOnly(phone)
	if digits != "" && !strings.HasPrefix(digits, "55") {
		digits = "55" + digits
	}
	return whatsAppBase + digits + "?text=" + url.QueryEscape(message)
}

// ComposeApproval builds the approval message for one order.
func ComposeApproval(id, name, phone, eventDate, items string) model.Notification {
	var b strings.Builder
	fmt.Fprintf(&b, "Olá, %s! Seu pedido *#%s* foi APROVADO!", name, id)
	if eventDate != "" {
		fmt.Fprintf(&b, "\nData: %s", utils.ISOToBR(eventDate))
	}
	if items != "" {
		fmt.Fprintf(&b, "\nItens: %s", items)
	}
	msg := b.String()
	return model.Notification{
		OrderID: id,
		Message: msg,
		Link:    WhatsAppLink(phone, msg),
	}
}

func NotificationFor(o model.Order) model.Notification {
	return ComposeApproval(o.ID, o.CustomerName, o.Phone, o.EventDate(), o.Items)
}
