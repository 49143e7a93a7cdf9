package helper

import (
	"context"
	"testing"
	"time"

	"quentinhas/model"
	"quentinhas/repository"
	"quentinhas/sheet"
)

func TestResolveAvailability(t *testing.T) {
	dates := testCatalog().Dates
	configs := []model.DeadlineConfig{
		{EventDate: "2025-08-02", Date: "2025-08-01", Time: "20:00"},
	}

	tests := []struct {
		name       string
		now        time.Time
		wantStatus string
		selectable bool
	}{
		{"before deadline", time.Date(2025, 8, 1, 19, 59, 0, 0, time.UTC), model.DEADLINE_OPEN, true},
		{"at deadline", time.Date(2025, 8, 1, 20, 0, 0, 0, time.UTC), model.DEADLINE_OPEN, true},
		{"after deadline", time.Date(2025, 8, 1, 20, 0, 1, 0, time.UTC), model.DEADLINE_CLOSED, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			avail, warnings := ResolveAvailability(dates, configs, tt.now, time.UTC)
			if len(warnings) != 0 {
				t.Fatalf("warnings = %v", warnings)
			}
			if avail[0].Status != tt.wantStatus || avail[0].Selectable != tt.selectable {
				t.Errorf("got %s/%v, want %s/%v", avail[0].Status, avail[0].Selectable, tt.wantStatus, tt.selectable)
			}
			if avail[1].Status != model.DEADLINE_UNDEFINED || !avail[1].Selectable {
				t.Errorf("date without deadline: %+v", avail[1])
			}
		})
	}
}

func TestResolveAvailabilityFallsBackOnBadConfig(t *testing.T) {
	dates := testCatalog().Dates[:1]
	configs := []model.DeadlineConfig{{EventDate: "2025-08-02", Date: "2025-08-01", Time: "meia-noite"}}

	// default deadline is 22:00 the day before
	open, warnings := ResolveAvailability(dates, configs, time.Date(2025, 8, 1, 21, 0, 0, 0, time.UTC), time.UTC)
	if len(warnings) != 1 {
		t.Fatalf("warnings = %v", warnings)
	}
	if open[0].Status != model.DEADLINE_OPEN {
		t.Errorf("status = %s", open[0].Status)
	}
	if open[0].Deadline == nil || *open[0].Deadline != "01/08/2025 22:00" {
		t.Errorf("deadline = %v", open[0].Deadline)
	}

	closed, _ := ResolveAvailability(dates, configs, time.Date(2025, 8, 1, 22, 30, 0, 0, time.UTC), time.UTC)
	if closed[0].Selectable {
		t.Error("date still selectable after fallback deadline")
	}
}

func TestParseDeadlineAcceptsSeconds(t *testing.T) {
	got, err := ParseDeadline(model.DeadlineConfig{EventDate: "2025-08-02", Date: "2025-08-01", Time: "18:30:15"}, time.UTC)
	if err != nil {
		t.Fatal(err)
	}
	if want := time.Date(2025, 8, 1, 18, 30, 15, 0, time.UTC); !got.Equal(want) {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestSaveDeadline(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewDeadlineRepository(sheet.NewMemoryTable())
	if err := repo.EnsureHeader(ctx); err != nil {
		t.Fatal(err)
	}
	c := testCatalog()

	cfg, err := SaveDeadline(ctx, repo, c, "2025-08-02", model.DeadlineInput{Date: "2025-08-01", Time: "20:00"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Label != "Sábado (02/08/2025)" {
		t.Errorf("label = %q", cfg.Label)
	}

	if _, err := SaveDeadline(ctx, repo, c, "2025-08-02", model.DeadlineInput{Date: "2025-08-01", Time: "25h"}); !IsValidation(err) {
		t.Errorf("bad time accepted: %v", err)
	}
	if _, err := SaveDeadline(ctx, repo, c, "2030-01-01", model.DeadlineInput{Date: "2029-12-31", Time: "20:00"}); !IsValidation(err) {
		t.Errorf("unknown event date accepted: %v", err)
	}

	all, err := repo.All(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 1 || all[0].Time != "20:00" {
		t.Errorf("stored = %+v", all)
	}
}
