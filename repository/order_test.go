package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"quentinhas/constants"
	"quentinhas/model"
	"quentinhas/sheet"

	"github.com/shopspring/decimal"
)

func newOrderRepo(t *testing.T) (*OrderRepository, *sheet.MemoryTable) {
	t.Helper()
	table := sheet.NewMemoryTable()
	repo := NewOrderRepository(table, time.UTC)
	if err := repo.EnsureHeader(context.Background()); err != nil {
		t.Fatal(err)
	}
	return repo, table
}

func sampleOrder(id string) model.Order {
	return model.Order{
		ID:            id,
		DateTime:      "2025-08-02 10:15:00",
		CustomerName:  "Maria Silva",
		Phone:         "86999998888",
		Items:         "[2x] A, [1x] B",
		Total:         decimal.RequireFromString("60"),
		PaymentMethod: constants.PAYMENT_PIX,
		Status:        constants.STATUS_PENDING,
		GrandTotal:    decimal.RequireFromString("60"),
	}
}

func TestOrderAppendAndSnapshot(t *testing.T) {
	ctx := context.Background()
	repo, table := newOrderRepo(t)

	if err := repo.Append(ctx, sampleOrder("20250802-ABC123")); err != nil {
		t.Fatal(err)
	}

	records, _ := table.AllRecords(ctx)
	if got := records[0].Get("Total Pedido"); got != "60.00" {
		t.Errorf("stored total = %q, want 60.00", got)
	}
	if got := records[0].Get("Valor Total Agrupado"); got != "60.00" {
		t.Errorf("stored grand total = %q, want 60.00", got)
	}

	orders, warnings, err := repo.Snapshot(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}
	if len(orders) != 1 {
		t.Fatalf("got %d orders", len(orders))
	}
	o := orders[0]
	if !o.HasDate || o.EventDate() != "2025-08-02" {
		t.Errorf("event date = %q (hasDate=%v)", o.EventDate(), o.HasDate)
	}
	if !o.Total.Equal(decimal.NewFromInt(60)) {
		t.Errorf("total = %s", o.Total)
	}
}

func TestSnapshotFlagsBadRows(t *testing.T) {
	ctx := context.Background()
	repo, table := newOrderRepo(t)

	row := make([]string, len(OrderHeader))
	row[0] = "X-1"
	row[1] = "ontem"
	row[2] = "João"
	row[7] = "abc"
	row[11] = constants.STATUS_APPROVED
	table.AppendRow(ctx, row)

	orders, warnings, err := repo.Snapshot(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(orders) != 1 || orders[0].HasDate {
		t.Fatalf("bad row should be kept without a date: %+v", orders)
	}
	if !orders[0].Total.IsZero() {
		t.Errorf("unparsable total should read as zero, got %s", orders[0].Total)
	}
	if len(warnings) != 2 {
		t.Errorf("got %d warnings, want 2: %v", len(warnings), warnings)
	}
}

func TestUpdateStatusAndDelivered(t *testing.T) {
	ctx := context.Background()
	repo, _ := newOrderRepo(t)
	repo.Append(ctx, sampleOrder("A-1"))
	repo.Append(ctx, sampleOrder("A-2"))

	for i := 0; i < 2; i++ {
		if err := repo.UpdateStatus(ctx, "A-2", constants.STATUS_APPROVED); err != nil {
			t.Fatalf("approve #%d: %v", i+1, err)
		}
	}
	if err := repo.MarkDelivered(ctx, "A-2"); err != nil {
		t.Fatal(err)
	}

	orders, _, _ := repo.Snapshot(ctx)
	if orders[0].Status != constants.STATUS_PENDING {
		t.Errorf("A-1 status changed to %q", orders[0].Status)
	}
	if orders[1].Status != constants.STATUS_APPROVED || orders[1].Delivered != constants.DELIVERED_YES {
		t.Errorf("A-2 = %q/%q", orders[1].Status, orders[1].Delivered)
	}

	if err := repo.UpdateStatus(ctx, "missing", constants.STATUS_APPROVED); !errors.Is(err, ErrOrderNotFound) {
		t.Errorf("err = %v, want ErrOrderNotFound", err)
	}
	if err := repo.MarkDelivered(ctx, "missing"); !errors.Is(err, ErrOrderNotFound) {
		t.Errorf("err = %v, want ErrOrderNotFound", err)
	}
}

func TestDeliverRequiresApproval(t *testing.T) {
	ctx := context.Background()
	repo, _ := newOrderRepo(t)
	repo.Append(ctx, sampleOrder("A-1"))

	if err := repo.MarkDelivered(ctx, "A-1"); !errors.Is(err, ErrOrderNotApproved) {
		t.Fatalf("err = %v, want ErrOrderNotApproved", err)
	}
	orders, _, _ := repo.Snapshot(ctx)
	if orders[0].Status != constants.STATUS_PENDING || orders[0].Delivered == constants.DELIVERED_YES {
		t.Errorf("pending order changed to %q/%q", orders[0].Status, orders[0].Delivered)
	}
}

func TestHeaderIsNotAnOrder(t *testing.T) {
	ctx := context.Background()
	repo, _ := newOrderRepo(t)
	repo.Append(ctx, sampleOrder("A-1"))

	if err := repo.UpdateStatus(ctx, "ID", constants.STATUS_APPROVED); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("err = %v, want ErrOrderNotFound", err)
	}
	if err := repo.MarkDelivered(ctx, "ID"); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("err = %v, want ErrOrderNotFound", err)
	}
	orders, _, _ := repo.Snapshot(ctx)
	if len(orders) != 1 || orders[0].Status != constants.STATUS_PENDING {
		t.Errorf("orders = %+v, header must stay intact", orders)
	}
}

func TestParseAmount(t *testing.T) {
	tests := map[string]string{
		"60.00":       "60",
		"60,00":       "60",
		"R$ 1.234,50": "1234.5",
		"1,234.50":    "1234.5",
		"":            "0",
	}
	for in, want := range tests {
		got, err := ParseAmount(in)
		if err != nil {
			t.Errorf("ParseAmount(%q): %v", in, err)
			continue
		}
		if !got.Equal(decimal.RequireFromString(want)) {
			t.Errorf("ParseAmount(%q) = %s, want %s", in, got, want)
		}
	}
	if _, err := ParseAmount("sessenta"); err == nil {
		t.Error("expected error")
	}
}

func TestDeadlineUpsertIgnoresHeader(t *testing.T) {
	ctx := context.Background()
	table := sheet.NewMemoryTable()
	repo := NewDeadlineRepository(table)
	repo.EnsureHeader(ctx)

	if err := repo.Upsert(ctx, model.DeadlineConfig{EventDate: "data_evento", Date: "2025-08-01", Time: "20:00"}); err != nil {
		t.Fatal(err)
	}
	records, _ := table.AllRecords(ctx)
	if len(records) != 1 || records[0].Row != 2 {
		t.Fatalf("records = %+v, want one appended data row", records)
	}
	if records[0].Get("prazo_data") != "2025-08-01" {
		t.Errorf("header was rewritten: %+v", records[0])
	}
}

func TestDeadlineUpsert(t *testing.T) {
	ctx := context.Background()
	table := sheet.NewMemoryTable()
	repo := NewDeadlineRepository(table)
	repo.EnsureHeader(ctx)

	cfg := model.DeadlineConfig{EventDate: "2025-08-02", Date: "2025-08-01", Time: "20:00", Label: "Sábado (02/08/2025)"}
	if err := repo.Upsert(ctx, cfg); err != nil {
		t.Fatal(err)
	}
	cfg.Time = "22:30"
	if err := repo.Upsert(ctx, cfg); err != nil {
		t.Fatal(err)
	}
	if err := repo.Upsert(ctx, model.DeadlineConfig{EventDate: "2025-08-03", Date: "2025-08-02", Time: "20:00"}); err != nil {
		t.Fatal(err)
	}

	configs, err := repo.All(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(configs) != 2 {
		t.Fatalf("got %d rows, want 2 (upsert must not duplicate)", len(configs))
	}
	if configs[0].Time != "22:30" {
		t.Errorf("time = %q, want 22:30", configs[0].Time)
	}
}
