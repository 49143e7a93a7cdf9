package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"quentinhas/model"
	"quentinhas/sheet"
)

// DeadlineHeader is the layout of the Config sheet, keyed by data_evento.
var DeadlineHeader = []string{"data_evento", "prazo_data", "prazo_hora", "nome_amigavel"}

type DeadlineRepository struct {
	table sheet.Table
}

func NewDeadlineRepository(table sheet.Table) *DeadlineRepository {
	return &DeadlineRepository{table: table}
}

func (r *DeadlineRepository) EnsureHeader(ctx context.Context) error {
	return r.table.EnsureHeader(ctx, DeadlineHeader)
}

func (r *DeadlineRepository) All(ctx context.Context) ([]model.DeadlineConfig, error) {
	records, err := r.table.AllRecords(ctx)
	if err != nil {
		return nil, fmt.Errorf("read deadlines: %w", err)
	}
	configs := make([]model.DeadlineConfig, 0, len(records))
	for _, rec := range records {
		eventDate := strings.TrimSpace(rec.Get("data_evento"))
		if eventDate == "" {
			continue
		}
		configs = append(configs, model.DeadlineConfig{
			EventDate: eventDate,
			Date:      strings.TrimSpace(rec.Get("prazo_data")),
			Time:      strings.TrimSpace(rec.Get("prazo_hora")),
			Label:     rec.Get("nome_amigavel"),
		})
	}
	return configs, nil
}

// Upsert updates the row of cfg.EventDate in place, or appends a new one.
func (r *DeadlineRepository) Upsert(ctx context.Context, cfg model.DeadlineConfig) error {
	cell, err := r.table.Find(ctx, cfg.EventDate, 1)
	if errors.Is(err, sheet.ErrCellNotFound) || (err == nil && cell.Row <= 1) {
		return r.table.AppendRow(ctx, []string{cfg.EventDate, cfg.Date, cfg.Time, cfg.Label})
	}
	if err != nil {
		return fmt.Errorf("find deadline %s: %w", cfg.EventDate, err)
	}
	for i, value := range []string{cfg.Date, cfg.Time, cfg.Label} {
		if err := r.table.UpdateCell(ctx, cell.Row, i+2, value); err != nil {
			return fmt.Errorf("update deadline %s: %w", cfg.EventDate, err)
		}
	}
	return nil
}
