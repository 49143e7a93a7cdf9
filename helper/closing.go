package helper

import (
	"context"
	"log"

	"quentinhas/config"
	"quentinhas/model"
	"quentinhas/repository"
	"quentinhas/utils"
)

// DailyReport re-reads the order sheet and aggregates date. Sheet warnings
// (bad dates or totals) come back next to the report.
func DailyReport(ctx context.Context, orders *repository.OrderRepository, date string) (model.DailyReport, []string, error) {
	snapshot, warnings, err := orders.Snapshot(ctx)
	if err != nil {
		return model.DailyReport{}, nil, err
	}
	return BuildReport(snapshot, date), warnings, nil
}

// RunClosingReport logs the day's report and mails it when REPORT_EMAIL and SMTP are set.
func RunClosingReport(ctx context.Context, orders *repository.OrderRepository, date string) (model.DailyReport, error) {
	report, _, err := DailyReport(ctx, orders, date)
	if err != nil {
		return report, err
	}
	log.Printf("Closing %s: %d orders, total R$ %s", date, report.Orders, report.Total.StringFixed(2))

	to := config.Config("REPORT_EMAIL")
	if to == "" || !utils.SMTPConfigured() {
		return report, nil
	}
	if err := utils.SendClosingReportEmail(to, report); err != nil {
		return report, err
	}
	return report, nil
}
