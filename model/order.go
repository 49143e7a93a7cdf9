package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is one row of the Pedidos sheet: a customer's items for a single event date.
type Order struct {
	ID            string          `json:"id"`
	DateTime      string          `json:"dateTime"`
	SubmittedAt   time.Time       `json:"submittedAt"`
	HasDate       bool            `json:"hasDate"`
	CustomerName  string          `json:"customerName"`
	CPF           string          `json:"cpf"`
	Phone         string          `json:"phone"`
	Email         string          `json:"email"`
	Items         string          `json:"items"`
	Total         decimal.Decimal `json:"total"`
	Notes         string          `json:"notes"`
	PaymentMethod string          `json:"paymentMethod"`
	TransactionID string          `json:"transactionId"`
	Status        string          `json:"status"`
	ApprovedBy    string          `json:"approvedBy"`
	GrandTotal    decimal.Decimal `json:"grandTotal"`
	Delivered     string          `json:"delivered"`
}

// EventDate returns the ISO date the order is for, or "" when the stored timestamp did not parse.
func (o Order) EventDate() string {
	if !o.HasDate {
		return ""
	}
	return o.SubmittedAt.Format("2006-01-02")
}

type ItemLine struct {
	Qty  int    `json:"qty"`
	Name string `json:"name"`
}

type PendingFilter struct {
	ID    string `query:"id"`
	Name  string `query:"nome"`
	Phone string `query:"telefone"`
}

type DeliveryFilter struct {
	Date   string   `query:"data"`
	ID     string   `query:"id"`
	Name   string   `query:"nome"`
	Item   string   `query:"item"`
	SortBy []string `query:"-"` // "nome", "data"
}

type CheckoutInput struct {
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	Notes         string `json:"notes"`
	PaymentMethod string `json:"paymentMethod" validate:"required,oneof=Pix Dinheiro"`
}

type SelectDatesInput struct {
	Dates []string `json:"dates" validate:"dive,datetime=2006-01-02"`
}

type SetQuantityInput struct {
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
	Item string `json:"item" validate:"required"`
	Qty  int    `json:"qty" validate:"gte=0,lte=20"`
}

type QuoteLine struct {
	Item      string          `json:"item"`
	Qty       int             `json:"qty"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Amount    decimal.Decimal `json:"amount"`
}

type DateQuote struct {
	Date     string          `json:"date"`
	Label    string          `json:"label"`
	Lines    []QuoteLine     `json:"lines"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

type Quote struct {
	Dates      []DateQuote     `json:"dates"`
	GrandTotal decimal.Decimal `json:"grandTotal"`
}

type PaymentInstructions struct {
	Method  string `json:"method"`
	Message string `json:"message"`
	PixKey  string `json:"pixKey,omitempty"`
	Holder  string `json:"holder,omitempty"`
	Bank    string `json:"bank,omitempty"`
}

type Notification struct {
	OrderID string `json:"orderId"`
	Message string `json:"message"`
	Link    string `json:"link"`
	QRCode  string `json:"qrCode,omitempty"`
}

// OrderEvent is broadcast to admin screens after a state transition.
type OrderEvent struct {
	Type    string    `json:"type"` // created, approved, delivered
	OrderID string    `json:"orderId"`
	At      time.Time `json:"at"`
}

// OrderView is what the admin screens list.
type OrderView struct {
	ID            string          `json:"id"`
	DateTime      string          `json:"dateTime"`
	CustomerName  string          `json:"customerName"`
	Phone         string          `json:"phone"`
	Items         string          `json:"items"`
	Total         decimal.Decimal `json:"total"`
	Notes         string          `json:"notes"`
	PaymentMethod string          `json:"paymentMethod"`
	Status        string          `json:"status"`
	GrandTotal    decimal.Decimal `json:"grandTotal"`
	Delivered     string          `json:"delivered"`
}
