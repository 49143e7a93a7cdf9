package model

import "github.com/shopspring/decimal"

type ItemCount struct {
	Name  string `json:"name"`
	Units int    `json:"units"`
}

type PaymentSummary struct {
	Method string          `json:"method"`
	Total  decimal.Decimal `json:"total"`
	Count  int             `json:"count"`
}

// ReportWarning points at an item token that could not be parsed.
type ReportWarning struct {
	OrderID string `json:"orderId"`
	Token   string `json:"token"`
}

type DailyReport struct {
	Date      string           `json:"date"`
	Orders    int              `json:"orders"`
	Items     []ItemCount      `json:"items"`
	Total     decimal.Decimal  `json:"total"`
	ByPayment []PaymentSummary `json:"byPayment"`
	Warnings  []ReportWarning  `json:"warnings,omitempty"`
}
