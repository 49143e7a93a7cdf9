package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"quentinhas/constants"
	"quentinhas/model"
	"quentinhas/sheet"

	"github.com/shopspring/decimal"
)

var (
	ErrOrderNotFound    = errors.New("order not found")
	ErrOrderNotApproved = errors.New("order not approved")
)

// OrderHeader is the positional layout of the Pedidos sheet.
var OrderHeader = []string{
	"ID", "Data/Hora", "Nome Cliente", "CPF", "Telefone Cliente", "Email",
	"Itens Pedido", "Total Pedido", "Observacoes", "Tipo Pagamento", "ID Transacao",
	"Status", "Aprovado por", "Valor Total Agrupado", "Entregue",
}

// 1-based column positions.
const (
	ColID        = 1
	ColStatus    = 12
	ColDelivered = 15
)

var dateTimeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04:05",
	"2006-01-02",
	"02/01/2006 15:04:05",
	"02/01/2006 15:04",
	"02/01/2006",
}

type OrderRepository struct {
	table sheet.Table
	loc   *time.Location
}

func NewOrderRepository(table sheet.Table, loc *time.Location) *OrderRepository {
	if loc == nil {
		loc = time.Local
	}
	return &OrderRepository{table: table, loc: loc}
}

func (r *OrderRepository) EnsureHeader(ctx context.Context) error {
	return r.table.EnsureHeader(ctx, OrderHeader)
}

func (r *OrderRepository) Append(ctx context.Context, order model.Order) error {
	return r.table.AppendRow(ctx, orderToRow(order))
}

// Snapshot reads every order. Rows whose timestamp or totals do not parse are
// still returned, flagged through HasDate or a zero total, with a warning each.
func (r *OrderRepository) Snapshot(ctx context.Context) ([]model.Order, []string, error) {
	records, err := r.table.AllRecords(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("read orders: %w", err)
	}

	orders := make([]model.Order, 0, len(records))
	var warnings []string
	for _, rec := range records {
		order, rowWarnings := r.recordToOrder(rec)
		if order.ID == "" && rec.Get("Nome Cliente") == "" {
			continue
		}
		orders = append(orders, order)
		warnings = append(warnings, rowWarnings...)
	}
	return orders, warnings, nil
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, id, status string) error {
	return r.updateByID(ctx, id, ColStatus, status)
}

// MarkDelivered flags an approved order as handed over. Orders in any other
// status are left untouched and reported with ErrOrderNotApproved.
func (r *OrderRepository) MarkDelivered(ctx context.Context, id string) error {
	row, err := r.findRow(ctx, id)
	if err != nil {
		return err
	}
	status, err := r.cellValue(ctx, row, "Status")
	if err != nil {
		return fmt.Errorf("read order %s: %w", id, err)
	}
	if strings.TrimSpace(status) != constants.STATUS_APPROVED {
		return fmt.Errorf("%w: #%s is %q", ErrOrderNotApproved, id, status)
	}
	if err := r.table.UpdateCell(ctx, row, ColDelivered, constants.DELIVERED_YES); err != nil {
		return fmt.Errorf("update order %s: %w", id, err)
	}
	return nil
}

func (r *OrderRepository) updateByID(ctx context.Context, id string, col int, value string) error {
	row, err := r.findRow(ctx, id)
	if err != nil {
		return err
	}
	if err := r.table.UpdateCell(ctx, row, col, value); err != nil {
		return fmt.Errorf("update order %s: %w", id, err)
	}
	return nil
}

// findRow locates the data row of id. Row 1 holds the header and never counts
// as an order.
func (r *OrderRepository) findRow(ctx context.Context, id string) (int, error) {
	cell, err := r.table.Find(ctx, id, ColID)
	if errors.Is(err, sheet.ErrCellNotFound) || (err == nil && cell.Row <= 1) {
		return 0, fmt.Errorf("%w: #%s", ErrOrderNotFound, id)
	}
	if err != nil {
		return 0, fmt.Errorf("find order %s: %w", id, err)
	}
	return cell.Row, nil
}

func (r *OrderRepository) cellValue(ctx context.Context, row int, column string) (string, error) {
	records, err := r.table.AllRecords(ctx)
	if err != nil {
		return "", err
	}
	for _, rec := range records {
		if rec.Row == row {
			return rec.Get(column), nil
		}
	}
	return "", nil
}

func orderToRow(o model.Order) []string {
	return []string{
		o.ID,
		o.DateTime,
		o.CustomerName,
		o.CPF,
		o.Phone,
		o.Email,
		o.Items,
		o.Total.StringFixed(2),
		o.Notes,
		o.PaymentMethod,
		o.TransactionID,
		o.Status,
		o.ApprovedBy,
		o.GrandTotal.StringFixed(2),
		o.Delivered,
	}
}

func (r *OrderRepository) recordToOrder(rec sheet.Record) (model.Order, []string) {
	var warnings []string
	o := model.Order{
		ID:            strings.TrimSpace(rec.Get("ID")),
		DateTime:      rec.Get("Data/Hora"),
		CustomerName:  rec.Get("Nome Cliente"),
		CPF:           rec.Get("CPF"),
		Phone:         rec.Get("Telefone Cliente"),
		Email:         rec.Get("Email"),
		Items:         rec.Get("Itens Pedido"),
		Notes:         rec.Get("Observacoes"),
		PaymentMethod: rec.Get("Tipo Pagamento"),
		TransactionID: rec.Get("ID Transacao"),
		Status:        strings.TrimSpace(rec.Get("Status")),
		ApprovedBy:    rec.Get("Aprovado por"),
		Delivered:     strings.TrimSpace(rec.Get("Entregue")),
	}

	if t, ok := ParseDateTime(o.DateTime, r.loc); ok {
		o.SubmittedAt = t
		o.HasDate = true
	} else {
		warnings = append(warnings, fmt.Sprintf("linha %d (pedido #%s): data/hora inválida %q", rec.Row, o.ID, o.DateTime))
	}

	var err error
	if o.Total, err = ParseAmount(rec.Get("Total Pedido")); err != nil {
		warnings = append(warnings, fmt.Sprintf("linha %d (pedido #%s): total inválido %q", rec.Row, o.ID, rec.Get("Total Pedido")))
	}
	if o.GrandTotal, err = ParseAmount(rec.Get("Valor Total Agrupado")); err != nil {
		warnings = append(warnings, fmt.Sprintf("linha %d (pedido #%s): valor agrupado inválido %q", rec.Row, o.ID, rec.Get("Valor Total Agrupado")))
	}
	return o, warnings
}

// ParseDateTime accepts the layouts the sheet may hold, ISO or Brazilian.
func ParseDateTime(s string, loc *time.Location) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateTimeLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ParseAmount reads "60.00", "60,00" or "R$ 1.234,50". Empty reads as zero;
// anything unreadable returns zero and an error.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "R$"))
	if s == "" {
		return decimal.Zero, nil
	}
	switch {
	case strings.LastIndex(s, ",") > strings.LastIndex(s, "."):
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	case strings.Contains(s, ","):
		s = strings.ReplaceAll(s, ",", "")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, err
	}
	return d, nil
}
