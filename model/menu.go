package model

import "github.com/shopspring/decimal"

type MenuItem struct {
	Name  string          `json:"name"`
	Slug  string          `json:"slug"`
	Price decimal.Decimal `json:"price"`
}

// EventDate is a day of the event customers can order for. Date is ISO (YYYY-MM-DD).
type EventDate struct {
	Date  string `json:"date"`
	Label string `json:"label"`
}

const (
	DEADLINE_OPEN      = "aberto"
	DEADLINE_CLOSED    = "encerrado"
	DEADLINE_UNDEFINED = "indefinido"
)

// DateAvailability pairs an EventDate with its resolved deadline.
type DateAvailability struct {
	EventDate
	Status     string  `json:"status"`
	Deadline   *string `json:"deadline,omitempty"` // DD/MM/YYYY HH:MM
	Selectable bool    `json:"selectable"`
}

type MenuResponse struct {
	Items      []MenuItem         `json:"items"`
	Dates      []DateAvailability `json:"dates"`
	SideDishes string             `json:"sideDishes"`
	Warnings   []string           `json:"warnings,omitempty"`
}
