package helper

import (
	"context"
	"fmt"
	"log"
	"strings"

	"quentinhas/config"
	"quentinhas/repository"

	"github.com/go-co-op/gocron/v2"
	"github.com/robfig/cron/v3"
)

var (
	sweeper        *cron.Cron
	closingCronJob gocron.Scheduler
)

// StartSessionSweeper drops idle in-memory carts every 5 minutes.
func StartSessionSweeper(store *MemorySessionStore) {
	sweeper = cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))

	_, err := sweeper.AddFunc("*/5 * * * *", func() {
		if n := store.Sweep(); n > 0 {
			log.Printf("Removed %d idle sessions", n)
		}
	})
	if err != nil {
		log.Printf("Session sweeper not started: %v", err)
		return
	}

	sweeper.Start()
	log.Println("Session sweeper started (every 5 minutes)")
}

func StopSessionSweeper() {
	if sweeper != nil {
		sweeper.Stop()
		log.Println("Session sweeper stopped")
	}
}

// parseAtTime reads "HH:MM" for the daily closing job.
func parseAtTime(s string) (uint, uint, error) {
	var h, m uint
	if _, err := fmt.Sscanf(strings.TrimSpace(s), "%d:%d", &h, &m); err != nil {
		return 0, 0, fmt.Errorf("invalid CLOSING_REPORT_AT %q: %w", s, err)
	}
	if h > 23 || m > 59 {
		return 0, 0, fmt.Errorf("invalid CLOSING_REPORT_AT %q", s)
	}
	return h, m, nil
}

// StartClosingScheduler runs the closing report every day at CLOSING_REPORT_AT (default 21:00).
func StartClosingScheduler(orders *repository.OrderRepository) error {
	at := config.ConfigOr("CLOSING_REPORT_AT", "21:00")
	h, m, err := parseAtTime(at)
	if err != nil {
		return err
	}

	s, err := gocron.NewScheduler(gocron.WithLocation(Location()))
	if err != nil {
		return err
	}

	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(h, m, 0),
			),
		),
		gocron.NewTask(func() {
			today := Now().In(Location()).Format("2006-01-02")
			if _, err := RunClosingReport(context.Background(), orders, today); err != nil {
				log.Printf("Closing report for %s failed: %v", today, err)
			}
		}),
	)
	if err != nil {
		return err
	}

	closingCronJob = s
	s.Start()
	log.Printf("Closing report scheduler started (%s)", at)
	return nil
}

func StopClosingScheduler() {
	if closingCronJob != nil {
		if err := closingCronJob.Shutdown(); err != nil {
			log.Printf("Closing report scheduler shutdown: %v", err)
		}
	}
}
