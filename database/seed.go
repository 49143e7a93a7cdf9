package database

import (
	"context"
	"log"
	"time"

	"quentinhas/model"
	"quentinhas/repository"
)

// SeedDeadlines writes a default deadline (22:00 on the eve) for every event
// date that has none yet. Existing rows are left alone.
func SeedDeadlines(ctx context.Context, deadlines *repository.DeadlineRepository, dates []model.EventDate) error {
	existing, err := deadlines.All(ctx)
	if err != nil {
		return err
	}
	have := make(map[string]bool, len(existing))
	for _, cfg := range existing {
		have[cfg.EventDate] = true
	}

	for _, d := range dates {
		if have[d.Date] {
			continue
		}
		day, err := time.Parse("2006-01-02", d.Date)
		if err != nil {
			log.Println("failed to seed deadline for", d.Date, "error:", err)
			continue
		}
		cfg := model.DeadlineConfig{
			EventDate: d.Date,
			Date:      day.AddDate(0, 0, -1).Format("2006-01-02"),
			Time:      "22:00",
			Label:     d.Label,
		}
		if err := deadlines.Upsert(ctx, cfg); err != nil {
			return err
		}
		log.Printf("Seeded deadline for %s: %s %s", d.Date, cfg.Date, cfg.Time)
	}
	return nil
}
