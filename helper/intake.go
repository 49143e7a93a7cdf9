package helper

import (
	"context"
	"fmt"
	"strings"
	"time"

	"quentinhas/config"
	"quentinhas/constants"
	"quentinhas/model"
	"quentinhas/repository"
	"quentinhas/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// NewSession starts an empty cart with a fresh id.
func NewSession() *model.Session {
	return &model.Session{
		ID:        uuid.NewString(),
		Cart:      map[string]map[string]int{},
		UpdatedAt: Now(),
	}
}

// ResetSession clears the cart and the date selection. Submitted is left for the caller.
func ResetSession(s *model.Session) {
	s.SelectedDates = nil
	s.Cart = map[string]map[string]int{}
	s.UpdatedAt = Now()
}

// SelectDates replaces the dates the customer wants to order for. Closed or
// unknown dates are rejected; the cart of deselected dates is kept.
func SelectDates(s *model.Session, dates []string, avail []model.DateAvailability) error {
	selected := make([]string, 0, len(dates))
	seen := map[string]bool{}
	for _, date := range dates {
		if seen[date] {
			continue
		}
		a, ok := isSelectable(avail, date)
		if !ok {
			if a.Date == "" {
				return newValidationError("dates", fmt.Sprintf("data indisponível: %s", date))
			}
			return newValidationError("dates", fmt.Sprintf("%s: %s", constants.DATE_CLOSED, a.Label))
		}
		seen[date] = true
		selected = append(selected, date)
	}
	// keep catalog order so rows are always written chronologically
	ordered := make([]string, 0, len(selected))
	for _, a := range avail {
		if seen[a.Date] {
			ordered = append(ordered, a.Date)
		}
	}
	s.SelectedDates = ordered
	s.Submitted = false
	s.UpdatedAt = Now()
	return nil
}

func isSelected(s *model.Session, date string) bool {
	for _, d := range s.SelectedDates {
		if d == date {
			return true
		}
	}
	return false
}

// SetQuantity stores qty (0..20) of one item for a selected date.
func SetQuantity(s *model.Session, catalog Catalog, date, itemKey string, qty int) error {
	if !isSelected(s, date) {
		return newValidationError("date", fmt.Sprintf("data não selecionada: %s", date))
	}
	item, ok := catalog.Item(itemKey)
	if !ok {
		return newValidationError("item", fmt.Sprintf("item desconhecido: %s", itemKey))
	}
	if qty < 0 || qty > constants.MAX_QUANTITY {
		return newValidationError("qty", fmt.Sprintf("quantidade deve estar entre 0 e %d", constants.MAX_QUANTITY))
	}
	if s.Cart == nil {
		s.Cart = map[string]map[string]int{}
	}
	if s.Cart[date] == nil {
		s.Cart[date] = map[string]int{}
	}
	s.Cart[date][item.Name] = qty
	s.UpdatedAt = Now()
	return nil
}

// BuildQuote prices the selected dates. Lines follow menu order and skip zero quantities.
func BuildQuote(s *model.Session, catalog Catalog) model.Quote {
	quote := model.Quote{GrandTotal: decimal.Zero}
	for _, date := range s.SelectedDates {
		dq := model.DateQuote{Date: date, Subtotal: decimal.Zero}
		if ed, ok := catalog.Date(date); ok {
			dq.Label = ed.Label
		}
		for _, item := range catalog.Items {
			qty := s.Cart[date][item.Name]
			if qty <= 0 {
				continue
			}
			amount := item.Price.Mul(decimal.NewFromInt(int64(qty)))
			dq.Lines = append(dq.Lines, model.QuoteLine{Item: item.Name, Qty: qty, UnitPrice: item.Price, Amount: amount})
			dq.Subtotal = dq.Subtotal.Add(amount)
		}
		quote.GrandTotal = quote.GrandTotal.Add(dq.Subtotal)
		quote.Dates = append(quote.Dates, dq)
	}
	return quote
}

// NewOrderID is the event date without dashes plus 6 random uppercase hex chars.
// Uniqueness against existing rows is not checked.
func NewOrderID(date string) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:6]
	return strings.ReplaceAll(date, "-", "") + "-" + suffix
}

func NormalizePhone(phone string) (string, error) {
	digits := utils.DigitsOnly(phone)
	if len(digits) != constants.PHONE_DIGITS {
		return "", newValidationError("phone", constants.INVALID_PHONE)
	}
	return digits, nil
}

// BuildOrders validates a checkout and turns the cart into one order per date
// with a positive subtotal. Nothing is written here.
func BuildOrders(s *model.Session, catalog Catalog, avail []model.DateAvailability, input model.CheckoutInput, now time.Time, newID func(string) string) ([]model.Order, model.Quote, error) {
	if len(s.SelectedDates) == 0 {
		return nil, model.Quote{}, ErrNoDatesSelected
	}
	for _, date := range s.SelectedDates {
		if a, ok := isSelectable(avail, date); !ok {
			return nil, model.Quote{}, newValidationError("dates", fmt.Sprintf("%s: %s", constants.DATE_CLOSED, a.Label))
		}
	}

	quote := BuildQuote(s, catalog)
	if !quote.GrandTotal.IsPositive() {
		return nil, quote, newValidationError("items", "Adicione ao menos um item ao pedido.")
	}

	name := strings.TrimSpace(input.Name)
	if name == "" || utils.IsBlank(input.Phone) {
		return nil, quote, newValidationError("name", constants.MISSING_NAME_OR_PHONE)
	}
	phone, err := NormalizePhone(input.Phone)
	if err != nil {
		return nil, quote, err
	}
	if input.PaymentMethod != constants.PAYMENT_PIX && input.PaymentMethod != constants.PAYMENT_CASH {
		return nil, quote, newValidationError("paymentMethod", "Forma de pagamento inválida.")
	}

	clock := now.Format("15:04:05")
	var orders []model.Order
	for _, dq := range quote.Dates {
		if !dq.Subtotal.IsPositive() {
			continue
		}
		lines := make([]model.ItemLine, 0, len(dq.Lines))
		for _, l := range dq.Lines {
			lines = append(lines, model.ItemLine{Qty: l.Qty, Name: l.Item})
		}
		dateTime := dq.Date + " " + clock
		submittedAt, hasDate := repository.ParseDateTime(dateTime, now.Location())
		orders = append(orders, model.Order{
			ID:            newID(dq.Date),
			DateTime:      dateTime,
			SubmittedAt:   submittedAt,
			HasDate:       hasDate,
			CustomerName:  name,
			Phone:         phone,
			Items:         utils.EncodeItems(lines),
			Total:         dq.Subtotal,
			Notes:         strings.TrimSpace(input.Notes),
			PaymentMethod: input.PaymentMethod,
			Status:        constants.STATUS_PENDING,
			GrandTotal:    quote.GrandTotal,
		})
	}
	return orders, quote, nil
}

// SubmitOrders appends the rows one by one. A failing append stops the batch;
// rows already written stay in the sheet.
func SubmitOrders(ctx context.Context, orders *repository.OrderRepository, batch []model.Order) (int, error) {
	for i, o := range batch {
		if err := orders.Append(ctx, o); err != nil {
			return i, fmt.Errorf("append order %s (%d of %d written): %w", o.ID, i, len(batch), err)
		}
	}
	return len(batch), nil
}

// Alerts posts new orders to the staff Telegram chat; nil disables it.
var Alerts *utils.TelegramNotifier

type CheckoutResult struct {
	Orders  []model.Order             `json:"orders"`
	Quote   model.Quote               `json:"quote"`
	Payment model.PaymentInstructions `json:"payment"`
	Message string                    `json:"message"`
}

// Checkout validates, writes the orders and clears the cart on success.
func Checkout(ctx context.Context, orders *repository.OrderRepository, s *model.Session, catalog Catalog, avail []model.DateAvailability, input model.CheckoutInput) (CheckoutResult, error) {
	batch, quote, err := BuildOrders(s, catalog, avail, input, Now().In(Location()), NewOrderID)
	if err != nil {
		return CheckoutResult{}, err
	}
	if _, err := SubmitOrders(ctx, orders, batch); err != nil {
		return CheckoutResult{}, err
	}

	ResetSession(s)
	s.Submitted = true
	for _, o := range batch {
		publish(ctx, "created", o.ID)
	}
	if Alerts != nil {
		go Alerts.NotifyNewOrders(batch)
	}
	return CheckoutResult{
		Orders:  batch,
		Quote:   quote,
		Payment: PaymentInfo(input.PaymentMethod),
		Message: constants.ORDER_REGISTERED,
	}, nil
}

// PaymentInfo is the informational text shown for a payment method.
func PaymentInfo(method string) model.PaymentInstructions {
	if method == constants.PAYMENT_PIX {
		receipt := config.ConfigOr("RECEIPT_PHONE", "86-98828-2470")
		return model.PaymentInstructions{
			Method:  method,
			PixKey:  config.ConfigOr("PIX_KEY", "86988282470"),
			Holder:  config.ConfigOr("PIX_HOLDER", "Lauriano Costa Viana"),
			Bank:    config.ConfigOr("PIX_BANK", "Banco do Brasil"),
			Message: fmt.Sprintf("Após finalizar o pedido, envie o seu nome completo e o comprovante para %s via WhatsApp.", receipt),
		}
	}
	return model.PaymentInstructions{Method: method, Message: constants.CASH_INSTRUCTIONS}
}
